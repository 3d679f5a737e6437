package atom

import (
	"testing"

	. "github.com/onsi/gomega"
)

func TestStyleDefaults(t *testing.T) {
	g := NewWithT(t)

	st := New(Config{}).Style()

	g.Expect(st.Color).To(Equal(ColorNeutral))
	g.Expect(st.AtomicNumberSize).To(Equal(10.0))
	g.Expect(st.AtomicMassSize).To(Equal(8.0))
	g.Expect(st.SymbolFontSize).To(Equal(24.0))
}

func TestStyleElectronegativityBands(t *testing.T) {
	g := NewWithT(t)

	band := func(en float64) string {
		return New(Config{Props: Properties{Electronegativity: en}}).Style().Color
	}

	g.Expect(band(0.79)).To(Equal(ColorLowEN))
	g.Expect(band(1.0)).To(Equal(ColorLowEN))
	g.Expect(band(1.5)).To(Equal(ColorMidEN))
	g.Expect(band(2.0)).To(Equal(ColorMidEN))
	g.Expect(band(3.98)).To(Equal(ColorHighEN))
}

func TestStyleClampBounds(t *testing.T) {
	g := NewWithT(t)

	cases := []Properties{
		{},
		{AtomicNumber: 1},
		{AtomicNumber: 118},
		{AtomicMass: 1.008},
		{AtomicMass: 294},
		{Symbol: "H"},
		{Symbol: "Og"},
		{Symbol: "Uuo"},
		{AtomicNumber: 79, AtomicMass: 196.97, Symbol: "Au", Electronegativity: 2.54},
	}

	for _, props := range cases {
		st := New(Config{Props: props}).Style()
		g.Expect(st.AtomicNumberSize).To(And(BeNumerically(">=", 8), BeNumerically("<=", 20)))
		g.Expect(st.AtomicMassSize).To(And(BeNumerically(">=", 6), BeNumerically("<=", 14)))
		g.Expect(st.SymbolFontSize).To(And(BeNumerically(">=", 16), BeNumerically("<=", 32)))
	}
}

func TestStyleValues(t *testing.T) {
	g := NewWithT(t)

	st := New(Config{Props: Properties{AtomicNumber: 118, AtomicMass: 294, Symbol: "Og"}}).Style()

	g.Expect(st.AtomicNumberSize).To(Equal(11.8))
	g.Expect(st.AtomicMassSize).To(Equal(7.35))
	g.Expect(st.SymbolFontSize).To(Equal(26.0))
}

func TestStyleNotCached(t *testing.T) {
	g := NewWithT(t)

	a := New(Config{})
	g.Expect(a.Style().Color).To(Equal(ColorNeutral))

	a.Props.Electronegativity = 3.5
	g.Expect(a.Style().Color).To(Equal(ColorHighEN))
}

func TestHueIndependentOfStyleColor(t *testing.T) {
	g := NewWithT(t)

	a := New(Config{Props: Properties{AtomicNumber: 26, Electronegativity: 1.83}})
	b := New(Config{Props: Properties{AtomicNumber: 26, Electronegativity: 3.5}})

	// the ring hue comes from the atomic number alone
	g.Expect(a.Hue()).To(Equal(b.Hue()))
	g.Expect(a.Style().Color).NotTo(Equal(b.Style().Color))

	c := New(Config{Props: Properties{AtomicNumber: 27}})
	g.Expect(a.Hue()).NotTo(Equal(c.Hue()))
}
