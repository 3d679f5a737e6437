package metrics

import (
	"github.com/san-kum/atomsim/internal/atom"
	"github.com/san-kum/atomsim/internal/sim"
)

// Momentum averages the magnitude of the world's total linear momentum.
type Momentum struct {
	name    string
	samples int
	total   float64
}

func NewMomentum() *Momentum {
	return &Momentum{name: "momentum"}
}

func (m *Momentum) Name() string { return m.name }

func (m *Momentum) Observe(w *sim.World, t float64) {
	p := atom.Vector2{}
	for _, a := range w.Atoms {
		p = p.Add(a.Velocity.Scale(a.Props.MassOr(1)))
	}
	m.total += p.Length()
	m.samples++
}

func (m *Momentum) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.total / float64(m.samples)
}

func (m *Momentum) Reset() {
	m.samples = 0
	m.total = 0
}
