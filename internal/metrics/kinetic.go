package metrics

import (
	"github.com/san-kum/atomsim/internal/sim"
)

// KineticEnergy averages the world's total kinetic energy over the run.
// Atoms without a mass count as mass 1.
type KineticEnergy struct {
	name    string
	samples int
	total   float64
}

func NewKineticEnergy() *KineticEnergy {
	return &KineticEnergy{name: "kinetic_energy"}
}

func (k *KineticEnergy) Name() string { return k.name }

func (k *KineticEnergy) Observe(w *sim.World, t float64) {
	k.total += Kinetic(w)
	k.samples++
}

func (k *KineticEnergy) Value() float64 {
	if k.samples == 0 {
		return 0
	}
	return k.total / float64(k.samples)
}

func (k *KineticEnergy) Reset() {
	k.samples = 0
	k.total = 0
}

// Kinetic returns the instantaneous total kinetic energy of the world.
func Kinetic(w *sim.World) float64 {
	e := 0.0
	for _, a := range w.Atoms {
		v := a.Velocity.Length()
		e += 0.5 * a.Props.MassOr(1) * v * v
	}
	return e
}
