package atom

import (
	cryptorand "crypto/rand"
	"encoding/hex"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/san-kum/atomsim/internal/elements"
)

const (
	// Velocities below this magnitude snap to exact zero instead of
	// drifting forever.
	restEpsilon = 1e-5

	// DefaultSize is the base visual radius before the mass contribution.
	DefaultSize = 25.0

	// RegionSize is the side length of the square the random factory
	// places atoms in.
	RegionSize = 500.0
)

// Properties is an open record of chemical attributes. The zero value of a
// field means "absent"; defaults are applied where the field is read, not at
// construction, because they differ per call site.
type Properties struct {
	AtomicNumber      int
	AtomicMass        float64
	Symbol            string
	Electronegativity float64
}

// MassOr returns the atomic mass, or def when it is unset.
func (p Properties) MassOr(def float64) float64 {
	if p.AtomicMass != 0 {
		return p.AtomicMass
	}
	return def
}

// Atom is a simulated particle: position, velocity, and chemical-like
// properties that drive its visual styling. Position and Velocity are
// mutated only by CalcPosition.
type Atom struct {
	Position Vector2
	Velocity Vector2
	Selected bool
	Size     float64
	ID       string
	Friction float64
	Props    Properties
}

// Config carries optional construction parameters. Zero-valued fields fall
// back to defaults: origin position, zero velocity, size 25, generated ID,
// friction 1, empty properties.
type Config struct {
	Position Vector2
	Velocity Vector2
	Size     float64
	ID       string
	Friction float64
	Props    Properties
}

// New builds an Atom from cfg. The visual size is fixed here and never
// recomputed: base size plus mass^1.2/10, with mass defaulting to 1.
func New(cfg Config) *Atom {
	size := cfg.Size
	if size == 0 {
		size = DefaultSize
	}
	size += math.Pow(cfg.Props.MassOr(1), 1.2) / 10

	friction := cfg.Friction
	if friction == 0 {
		friction = 1
	}

	id := cfg.ID
	if id == "" {
		id = NewID()
	}

	return &Atom{
		Position: cfg.Position,
		Velocity: cfg.Velocity,
		Size:     size,
		ID:       id,
		Friction: friction,
		Props:    cfg.Props,
	}
}

// NewID returns a probabilistically unique string: hex nanotime plus a
// random suffix.
func NewID() string {
	b := make([]byte, 4)
	_, _ = cryptorand.Read(b)
	return fmt.Sprintf("%x-%s", time.Now().UnixNano(), hex.EncodeToString(b))
}

// AnimatedSize returns the velocity-responsive rendering radius. The
// velocity contribution is capped at twice the base size, so the result
// never exceeds Size * 1.2.
func (a *Atom) AnimatedSize() float64 {
	v := math.Min(a.Velocity.Length(), a.Size*2)
	return a.Size * (1 + v/(a.Size*10))
}

// CalcPosition advances the atom by one tick of elapsed time delta.
//
// Damping follows 20/ln(mass): heavier atoms damp and move more slowly per
// unit delta. The position update uses the already-damped velocity
// (semi-implicit Euler). A mass of exactly 1 makes ln(mass) zero and the
// step degenerate; callers that care should validate state afterwards.
func (a *Atom) CalcPosition(delta float64) {
	if a.Velocity.Length() < restEpsilon {
		a.Velocity = Vector2{}
		return
	}
	k := 20 / math.Log(a.Props.MassOr(2))
	a.Velocity = a.Velocity.Add(a.Velocity.Scale(-a.Friction).Scale(delta * k))
	a.Position = a.Position.Add(a.Velocity.Scale(delta * k))
}

// IsBondedWith reports whether bonds contains a bond connecting a and other,
// in either order. Identity is by pointer, not by ID.
func (a *Atom) IsBondedWith(bonds []*Bond, other *Atom) bool {
	for _, b := range bonds {
		if b.Involves(a, other) {
			return true
		}
	}
	return false
}

// Angle returns the angle at vertex b between rays b->a and b->c, in degrees
// in [0, 360). It requires the triple to form a closed bonded triangle
// (a-b, b-c and c-a all present in bonds); otherwise ok is false.
func Angle(bonds []*Bond, a, b, c *Atom) (deg float64, ok bool) {
	if !a.IsBondedWith(bonds, b) || !b.IsBondedWith(bonds, c) || !c.IsBondedWith(bonds, a) {
		return 0, false
	}
	v1 := a.Position.Sub(b.Position)
	v2 := c.Position.Sub(b.Position)
	rad := math.Atan2(v2.Y, v2.X) - math.Atan2(v1.Y, v1.X)
	if rad < 0 {
		rad += 2 * math.Pi
	}
	return rad * 180 / math.Pi, true
}

// RandomAtom builds an atom from a uniformly chosen element of the periodic
// table, placed at a uniform random point in the RegionSize square.
func RandomAtom(rng *rand.Rand) *Atom {
	return RandomAtomAt(rng, Vector2{
		X: rng.Float64() * RegionSize,
		Y: rng.Float64() * RegionSize,
	})
}

// RandomAtomAt is RandomAtom at an explicit position.
func RandomAtomAt(rng *rand.Rand, pos Vector2) *Atom {
	el := elements.Table[rng.Intn(len(elements.Table))]
	return New(Config{
		Position: pos,
		Props: Properties{
			AtomicNumber:      el.Number,
			AtomicMass:        el.Weight,
			Symbol:            el.Symbol,
			Electronegativity: el.Electronegativity,
		},
	})
}
