package metrics

import (
	"github.com/san-kum/atomsim/internal/sim"
)

// MaxSpeed tracks the fastest atom speed seen over the run.
type MaxSpeed struct {
	name string
	max  float64
}

func NewMaxSpeed() *MaxSpeed {
	return &MaxSpeed{name: "max_speed"}
}

func (m *MaxSpeed) Name() string { return m.name }

func (m *MaxSpeed) Observe(w *sim.World, t float64) {
	for _, a := range w.Atoms {
		if v := a.Velocity.Length(); v > m.max {
			m.max = v
		}
	}
}

func (m *MaxSpeed) Value() float64 { return m.max }

func (m *MaxSpeed) Reset() { m.max = 0 }
