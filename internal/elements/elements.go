// Package elements holds the static periodic-table dataset. The table is
// ordered by atomic number and treated as append-only for the session; the
// simulation core only reads Number, Weight and Symbol.
package elements

// Element is one periodic-table record. Electronegativity is the Pauling
// value, 0 where none is defined.
type Element struct {
	Number            int
	Symbol            string
	Name              string
	Weight            float64
	Electronegativity float64
}

// Table lists all 118 elements in atomic-number order.
var Table = []Element{
	{1, "H", "Hydrogen", 1.008, 2.20},
	{2, "He", "Helium", 4.0026, 0},
	{3, "Li", "Lithium", 6.94, 0.98},
	{4, "Be", "Beryllium", 9.0122, 1.57},
	{5, "B", "Boron", 10.81, 2.04},
	{6, "C", "Carbon", 12.011, 2.55},
	{7, "N", "Nitrogen", 14.007, 3.04},
	{8, "O", "Oxygen", 15.999, 3.44},
	{9, "F", "Fluorine", 18.998, 3.98},
	{10, "Ne", "Neon", 20.180, 0},
	{11, "Na", "Sodium", 22.990, 0.93},
	{12, "Mg", "Magnesium", 24.305, 1.31},
	{13, "Al", "Aluminium", 26.982, 1.61},
	{14, "Si", "Silicon", 28.085, 1.90},
	{15, "P", "Phosphorus", 30.974, 2.19},
	{16, "S", "Sulfur", 32.06, 2.58},
	{17, "Cl", "Chlorine", 35.45, 3.16},
	{18, "Ar", "Argon", 39.948, 0},
	{19, "K", "Potassium", 39.098, 0.82},
	{20, "Ca", "Calcium", 40.078, 1.00},
	{21, "Sc", "Scandium", 44.956, 1.36},
	{22, "Ti", "Titanium", 47.867, 1.54},
	{23, "V", "Vanadium", 50.942, 1.63},
	{24, "Cr", "Chromium", 51.996, 1.66},
	{25, "Mn", "Manganese", 54.938, 1.55},
	{26, "Fe", "Iron", 55.845, 1.83},
	{27, "Co", "Cobalt", 58.933, 1.88},
	{28, "Ni", "Nickel", 58.693, 1.91},
	{29, "Cu", "Copper", 63.546, 1.90},
	{30, "Zn", "Zinc", 65.38, 1.65},
	{31, "Ga", "Gallium", 69.723, 1.81},
	{32, "Ge", "Germanium", 72.630, 2.01},
	{33, "As", "Arsenic", 74.922, 2.18},
	{34, "Se", "Selenium", 78.971, 2.55},
	{35, "Br", "Bromine", 79.904, 2.96},
	{36, "Kr", "Krypton", 83.798, 3.00},
	{37, "Rb", "Rubidium", 85.468, 0.82},
	{38, "Sr", "Strontium", 87.62, 0.95},
	{39, "Y", "Yttrium", 88.906, 1.22},
	{40, "Zr", "Zirconium", 91.224, 1.33},
	{41, "Nb", "Niobium", 92.906, 1.60},
	{42, "Mo", "Molybdenum", 95.95, 2.16},
	{43, "Tc", "Technetium", 98, 1.90},
	{44, "Ru", "Ruthenium", 101.07, 2.20},
	{45, "Rh", "Rhodium", 102.91, 2.28},
	{46, "Pd", "Palladium", 106.42, 2.20},
	{47, "Ag", "Silver", 107.87, 1.93},
	{48, "Cd", "Cadmium", 112.41, 1.69},
	{49, "In", "Indium", 114.82, 1.78},
	{50, "Sn", "Tin", 118.71, 1.96},
	{51, "Sb", "Antimony", 121.76, 2.05},
	{52, "Te", "Tellurium", 127.60, 2.10},
	{53, "I", "Iodine", 126.90, 2.66},
	{54, "Xe", "Xenon", 131.29, 2.60},
	{55, "Cs", "Caesium", 132.91, 0.79},
	{56, "Ba", "Barium", 137.33, 0.89},
	{57, "La", "Lanthanum", 138.91, 1.10},
	{58, "Ce", "Cerium", 140.12, 1.12},
	{59, "Pr", "Praseodymium", 140.91, 1.13},
	{60, "Nd", "Neodymium", 144.24, 1.14},
	{61, "Pm", "Promethium", 145, 1.13},
	{62, "Sm", "Samarium", 150.36, 1.17},
	{63, "Eu", "Europium", 151.96, 1.20},
	{64, "Gd", "Gadolinium", 157.25, 1.20},
	{65, "Tb", "Terbium", 158.93, 1.10},
	{66, "Dy", "Dysprosium", 162.50, 1.22},
	{67, "Ho", "Holmium", 164.93, 1.23},
	{68, "Er", "Erbium", 167.26, 1.24},
	{69, "Tm", "Thulium", 168.93, 1.25},
	{70, "Yb", "Ytterbium", 173.05, 1.10},
	{71, "Lu", "Lutetium", 174.97, 1.27},
	{72, "Hf", "Hafnium", 178.49, 1.30},
	{73, "Ta", "Tantalum", 180.95, 1.50},
	{74, "W", "Tungsten", 183.84, 2.36},
	{75, "Re", "Rhenium", 186.21, 1.90},
	{76, "Os", "Osmium", 190.23, 2.20},
	{77, "Ir", "Iridium", 192.22, 2.20},
	{78, "Pt", "Platinum", 195.08, 2.28},
	{79, "Au", "Gold", 196.97, 2.54},
	{80, "Hg", "Mercury", 200.59, 2.00},
	{81, "Tl", "Thallium", 204.38, 1.62},
	{82, "Pb", "Lead", 207.2, 2.33},
	{83, "Bi", "Bismuth", 208.98, 2.02},
	{84, "Po", "Polonium", 209, 2.00},
	{85, "At", "Astatine", 210, 2.20},
	{86, "Rn", "Radon", 222, 2.20},
	{87, "Fr", "Francium", 223, 0.70},
	{88, "Ra", "Radium", 226, 0.90},
	{89, "Ac", "Actinium", 227, 1.10},
	{90, "Th", "Thorium", 232.04, 1.30},
	{91, "Pa", "Protactinium", 231.04, 1.50},
	{92, "U", "Uranium", 238.03, 1.38},
	{93, "Np", "Neptunium", 237, 1.36},
	{94, "Pu", "Plutonium", 244, 1.28},
	{95, "Am", "Americium", 243, 1.13},
	{96, "Cm", "Curium", 247, 1.28},
	{97, "Bk", "Berkelium", 247, 1.30},
	{98, "Cf", "Californium", 251, 1.30},
	{99, "Es", "Einsteinium", 252, 1.30},
	{100, "Fm", "Fermium", 257, 1.30},
	{101, "Md", "Mendelevium", 258, 1.30},
	{102, "No", "Nobelium", 259, 1.30},
	{103, "Lr", "Lawrencium", 266, 1.30},
	{104, "Rf", "Rutherfordium", 267, 0},
	{105, "Db", "Dubnium", 268, 0},
	{106, "Sg", "Seaborgium", 269, 0},
	{107, "Bh", "Bohrium", 270, 0},
	{108, "Hs", "Hassium", 277, 0},
	{109, "Mt", "Meitnerium", 278, 0},
	{110, "Ds", "Darmstadtium", 281, 0},
	{111, "Rg", "Roentgenium", 282, 0},
	{112, "Cn", "Copernicium", 285, 0},
	{113, "Nh", "Nihonium", 286, 0},
	{114, "Fl", "Flerovium", 289, 0},
	{115, "Mc", "Moscovium", 290, 0},
	{116, "Lv", "Livermorium", 293, 0},
	{117, "Ts", "Tennessine", 294, 0},
	{118, "Og", "Oganesson", 294, 0},
}

// ByNumber returns the element with the given atomic number, or false.
func ByNumber(n int) (Element, bool) {
	if n < 1 || n > len(Table) {
		return Element{}, false
	}
	return Table[n-1], true
}

// BySymbol returns the element with the given symbol, or false.
func BySymbol(symbol string) (Element, bool) {
	for _, el := range Table {
		if el.Symbol == symbol {
			return el, true
		}
	}
	return Element{}, false
}
