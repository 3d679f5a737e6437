package atom

// Bond is an undirected relation between two atoms. It does not own its
// endpoints; whichever collection holds the bond governs their lifetime,
// and the core never mutates a bond list, only scans it.
type Bond struct {
	A, B *Atom
}

// NewBond keeps the endpoints in the order given; membership queries treat
// the pair as unordered.
func NewBond(a, b *Atom) *Bond {
	return &Bond{A: a, B: b}
}

// Involves reports whether this bond connects exactly a and b, in either
// order, by pointer identity.
func (bd *Bond) Involves(a, b *Atom) bool {
	return (bd.A == a && bd.B == b) || (bd.A == b && bd.B == a)
}
