package elements

// Isotope is an opaque data record; the simulation core never touches it.
// It is surfaced only by the CLI element listing.
type Isotope struct {
	MassNumber int
	Mass       float64
	Abundance  float64 // fraction, 0 for trace/synthetic
}

// Isotopes maps an element symbol to its naturally occurring isotopes.
// Only the common elements are tabulated.
var Isotopes = map[string][]Isotope{
	"H":  {{1, 1.00783, 0.99989}, {2, 2.01410, 0.00011}, {3, 3.01605, 0}},
	"He": {{3, 3.01603, 0.000002}, {4, 4.00260, 0.999998}},
	"C":  {{12, 12.0000, 0.9893}, {13, 13.00335, 0.0107}, {14, 14.00324, 0}},
	"N":  {{14, 14.00307, 0.99636}, {15, 15.00011, 0.00364}},
	"O":  {{16, 15.99491, 0.99757}, {17, 16.99913, 0.00038}, {18, 17.99916, 0.00205}},
	"Ne": {{20, 19.99244, 0.9048}, {21, 20.99385, 0.0027}, {22, 21.99139, 0.0925}},
	"Cl": {{35, 34.96885, 0.7576}, {37, 36.96590, 0.2424}},
	"Fe": {{54, 53.93961, 0.05845}, {56, 55.93494, 0.91754}, {57, 56.93539, 0.02119}, {58, 57.93327, 0.00282}},
	"Cu": {{63, 62.92960, 0.6915}, {65, 64.92779, 0.3085}},
	"U":  {{235, 235.04393, 0.0072}, {238, 238.05079, 0.9927}},
}

// IsotopesOf returns the tabulated isotopes for an element symbol, nil when
// none are recorded.
func IsotopesOf(symbol string) []Isotope {
	return Isotopes[symbol]
}
