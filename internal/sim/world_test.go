package sim_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/atomsim/internal/atom"
	"github.com/san-kum/atomsim/internal/sim"
)

type countingMetric struct {
	observations int
}

func (m *countingMetric) Name() string                    { return "observations" }
func (m *countingMetric) Observe(w *sim.World, t float64) { m.observations++ }
func (m *countingMetric) Value() float64                  { return float64(m.observations) }
func (m *countingMetric) Reset()                          { m.observations = 0 }

var _ = Describe("World", func() {
	var world *sim.World

	BeforeEach(func() {
		world = sim.NewWorld()
	})

	It("holds added atoms and bonds", func() {
		a := world.AddAtom(atom.New(atom.Config{}))
		b := world.AddAtom(atom.New(atom.Config{}))
		world.Bond(a, b)

		Expect(world.Atoms).To(HaveLen(2))
		Expect(world.Bonds).To(HaveLen(1))
		Expect(a.IsBondedWith(world.Bonds, b)).To(BeTrue())
	})

	It("drops referencing bonds when an atom is removed", func() {
		a := world.AddAtom(atom.New(atom.Config{}))
		b := world.AddAtom(atom.New(atom.Config{}))
		c := world.AddAtom(atom.New(atom.Config{}))
		world.Bond(a, b)
		world.Bond(b, c)
		world.Bond(c, a)

		world.RemoveAtom(a)

		Expect(world.Atoms).To(HaveLen(2))
		Expect(world.Bonds).To(HaveLen(1))
		Expect(b.IsBondedWith(world.Bonds, c)).To(BeTrue())
	})

	It("integrates every atom on Step", func() {
		a := world.AddAtom(atom.New(atom.Config{
			Velocity: atom.Vector2{X: 10},
			Props:    atom.Properties{AtomicMass: 4},
		}))
		b := world.AddAtom(atom.New(atom.Config{
			Velocity: atom.Vector2{Y: -10},
			Props:    atom.Properties{AtomicMass: 4},
		}))

		world.Step(0.016)

		Expect(a.Position.X).To(BeNumerically(">", 0))
		Expect(b.Position.Y).To(BeNumerically("<", 0))
	})

	It("answers angle queries against its bond list", func() {
		a := world.AddAtom(atom.New(atom.Config{Position: atom.Vector2{X: 1, Y: 1}}))
		b := world.AddAtom(atom.New(atom.Config{Position: atom.Vector2{X: 1, Y: 0}}))
		c := world.AddAtom(atom.New(atom.Config{Position: atom.Vector2{}}))

		_, ok := world.Angle(a, b, c)
		Expect(ok).To(BeFalse())

		world.Bond(a, b)
		world.Bond(b, c)
		world.Bond(c, a)

		deg, ok := world.Angle(a, b, c)
		Expect(ok).To(BeTrue())
		Expect(deg).To(BeNumerically("~", 90, 1e-9))
	})

	It("detects corrupted state", func() {
		a := world.AddAtom(atom.New(atom.Config{
			Velocity: atom.Vector2{X: 10},
			Props:    atom.Properties{AtomicMass: 1},
		}))

		Expect(world.Valid()).To(BeTrue())
		world.Step(0.016)
		Expect(world.Valid()).To(BeFalse())
		Expect(a.Velocity.IsValid()).To(BeFalse())
	})
})

var _ = Describe("Runner", func() {
	var (
		world  *sim.World
		runner *sim.Runner
	)

	BeforeEach(func() {
		world = sim.NewWorld()
		world.AddAtom(atom.New(atom.Config{
			Velocity: atom.Vector2{X: 50},
			Props:    atom.Properties{AtomicMass: 12.011},
		}))
		runner = sim.NewRunner(world)
	})

	It("rejects invalid configs", func() {
		_, err := runner.Run(context.Background(), sim.Config{Dt: 0, Duration: 1})
		Expect(err).To(HaveOccurred())

		_, err = runner.Run(context.Background(), sim.Config{Dt: 0.016, Duration: -1})
		Expect(err).To(HaveOccurred())
	})

	It("records one frame per step plus the initial frame", func() {
		cfg := sim.Config{Dt: 0.01, Duration: 0.1, ValidateState: true}

		result, err := runner.Run(context.Background(), cfg)
		Expect(err).NotTo(HaveOccurred())

		Expect(result.StepsTaken).To(Equal(10))
		Expect(result.Frames).To(HaveLen(11))
		Expect(result.Times).To(HaveLen(11))
		Expect(result.Frames[0]).To(HaveLen(1))
		Expect(result.Errors).To(BeEmpty())
	})

	It("feeds metrics every step", func() {
		m := &countingMetric{observations: 99}
		runner.AddMetric(m)

		result, err := runner.Run(context.Background(), sim.Config{Dt: 0.01, Duration: 0.05})
		Expect(err).NotTo(HaveOccurred())

		// Reset runs before the loop, so the stale count is discarded
		Expect(result.Metrics["observations"]).To(Equal(5.0))
	})

	It("halts on corrupted state when validation is on", func() {
		world.AddAtom(atom.New(atom.Config{
			Velocity: atom.Vector2{X: 10},
			Props:    atom.Properties{AtomicMass: 1},
		}))

		result, err := runner.Run(context.Background(), sim.Config{
			Dt: 0.016, Duration: 10, ValidateState: true,
		})
		Expect(err).NotTo(HaveOccurred())

		Expect(result.Errors).To(HaveLen(1))
		Expect(result.StepsTaken).To(Equal(1))
	})

	It("stops when the context is canceled", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := runner.Run(ctx, sim.Config{Dt: 0.016, Duration: 10})
		Expect(err).To(MatchError(context.Canceled))
	})

	It("stops when the callback declines", func() {
		calls := 0
		err := runner.RunWithCallback(context.Background(), sim.Config{Dt: 0.01, Duration: 1},
			func(w *sim.World, t float64) bool {
				calls++
				return calls < 3
			})

		Expect(err).NotTo(HaveOccurred())
		Expect(calls).To(Equal(3))
	})
})
