// Package sim owns the simulation loop around the atom core: the collection
// of atoms and bonds, the per-frame integration step, and the run loop with
// observers and metrics. Atoms integrate independently; bonds only feed
// geometric queries. Collection mutation is not synchronized and must happen
// between frames.
package sim

import "github.com/san-kum/atomsim/internal/atom"

// World holds the live collections. The bond list is the single source of
// truth for bonded-set queries; atoms never store their own topology.
type World struct {
	Atoms []*atom.Atom
	Bonds []*atom.Bond
}

func NewWorld() *World {
	return &World{
		Atoms: make([]*atom.Atom, 0),
		Bonds: make([]*atom.Bond, 0),
	}
}

func (w *World) AddAtom(a *atom.Atom) *atom.Atom {
	w.Atoms = append(w.Atoms, a)
	return a
}

// Bond connects two atoms already held by the world.
func (w *World) Bond(a, b *atom.Atom) *atom.Bond {
	bd := atom.NewBond(a, b)
	w.Bonds = append(w.Bonds, bd)
	return bd
}

// RemoveAtom drops the atom and every bond referencing it. Dangling bonds
// must not survive their endpoints.
func (w *World) RemoveAtom(a *atom.Atom) {
	atoms := w.Atoms[:0]
	for _, other := range w.Atoms {
		if other != a {
			atoms = append(atoms, other)
		}
	}
	w.Atoms = atoms

	bonds := w.Bonds[:0]
	for _, bd := range w.Bonds {
		if bd.A != a && bd.B != a {
			bonds = append(bonds, bd)
		}
	}
	w.Bonds = bonds
}

// Step integrates every atom once with the elapsed time delta. Order does
// not matter, atoms are independent.
func (w *World) Step(delta float64) {
	for _, a := range w.Atoms {
		a.CalcPosition(delta)
	}
}

// Angle is the bonded-triangle angle query against this world's bond list.
func (w *World) Angle(a, b, c *atom.Atom) (float64, bool) {
	return atom.Angle(w.Bonds, a, b, c)
}

// Valid reports whether every atom's position and velocity are finite.
func (w *World) Valid() bool {
	for _, a := range w.Atoms {
		if !a.Position.IsValid() || !a.Velocity.IsValid() {
			return false
		}
	}
	return true
}

// Snapshot copies the current atom positions, in collection order.
func (w *World) Snapshot() []atom.Vector2 {
	frame := make([]atom.Vector2, len(w.Atoms))
	for i, a := range w.Atoms {
		frame[i] = a.Position
	}
	return frame
}
