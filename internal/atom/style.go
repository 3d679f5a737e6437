package atom

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Electronegativity bands and the neutral fallback.
var (
	ColorLowEN   = "#4a90d9"
	ColorMidEN   = "#d9a24a"
	ColorHighEN  = "#d94a4a"
	ColorNeutral = "#999999"
	ColorWhite   = "#ffffff"
)

// GoldenAngle spaces ring hues across the periodic table so neighbouring
// atomic numbers get visually distinct colors.
const GoldenAngle = 137.508

// Style is the rendering parameter set derived from an atom's chemical
// properties.
type Style struct {
	Color            string
	AtomicNumberSize float64
	AtomicMassSize   float64
	SymbolFontSize   float64
}

// Style derives rendering parameters from the current properties. It is
// recomputed on every call, never cached, so late property mutation shows
// up immediately.
func (a *Atom) Style() Style {
	st := Style{
		Color:            ColorNeutral,
		AtomicNumberSize: 10,
		AtomicMassSize:   8,
		SymbolFontSize:   24,
	}

	switch en := a.Props.Electronegativity; {
	case en == 0:
		// absent, keep neutral
	case en <= 1.0:
		st.Color = ColorLowEN
	case en <= 2.0:
		st.Color = ColorMidEN
	default:
		st.Color = ColorHighEN
	}

	if a.Props.AtomicNumber != 0 {
		st.AtomicNumberSize = clamp(float64(a.Props.AtomicNumber)/10, 8, 20)
	}
	if a.Props.AtomicMass != 0 {
		st.AtomicMassSize = clamp(a.Props.AtomicMass/40, 6, 14)
	}
	if a.Props.Symbol != "" {
		extra := float64(len([]rune(a.Props.Symbol)) - 1)
		st.SymbolFontSize = clamp(24+2*extra, 16, 32)
	}

	return st
}

// Hue returns the golden-angle ring/fill color for the atom. It is derived
// from the atomic number directly and is independent of Style().Color.
func (a *Atom) Hue() string {
	h := math.Mod(float64(a.Props.AtomicNumber)*GoldenAngle, 360)
	return colorful.Hsl(h, 0.6, 0.55).Hex()
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
