package atom

// Surface is the drawing collaborator atoms render themselves onto. It
// consumes an ordered sequence of primitive calls and returns nothing back
// into the model.
type Surface interface {
	// StrokeCircle draws an unfilled circle outline.
	StrokeCircle(center Vector2, radius float64, color string, width float64)
	// FillCircle draws a filled disc.
	FillCircle(center Vector2, radius float64, color string)
	// Text draws s horizontally centered on center, with the baseline
	// shifted down by dy.
	Text(center Vector2, s string, size, dy float64, color string)
}

// Draw emits the atom's primitives: the outer ring, the filled disc, and
// the chemical symbol when one is set. A selected atom gets a white ring
// pushed out by 5; otherwise the ring sits on the disc edge in the
// golden-angle hue.
func (a *Atom) Draw(s Surface) {
	r := a.AnimatedSize()

	ringRadius, ringColor := r, a.Hue()
	if a.Selected {
		ringRadius, ringColor = r+5, ColorWhite
	}
	s.StrokeCircle(a.Position, ringRadius, ringColor, 2)
	s.FillCircle(a.Position, r, a.Hue())

	if a.Props.Symbol != "" {
		st := a.Style()
		s.Text(a.Position, a.Props.Symbol, st.SymbolFontSize, st.SymbolFontSize/4+2, ColorWhite)
	}
}
