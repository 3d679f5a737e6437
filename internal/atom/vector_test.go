package atom

import (
	"math"
	"testing"
)

func TestVectorArithmetic(t *testing.T) {
	a := Vector2{X: 1, Y: 2}
	b := Vector2{X: 3, Y: -1}

	sum := a.Add(b)
	if sum.X != 4 || sum.Y != 1 {
		t.Errorf("expected (4, 1), got (%f, %f)", sum.X, sum.Y)
	}

	diff := a.Sub(b)
	if diff.X != -2 || diff.Y != 3 {
		t.Errorf("expected (-2, 3), got (%f, %f)", diff.X, diff.Y)
	}

	scaled := a.Scale(2)
	if scaled.X != 2 || scaled.Y != 4 {
		t.Errorf("expected (2, 4), got (%f, %f)", scaled.X, scaled.Y)
	}
}

func TestVectorOperandsUnchanged(t *testing.T) {
	a := Vector2{X: 1, Y: 2}
	b := Vector2{X: 3, Y: 4}

	_ = a.Add(b)
	_ = a.Sub(b)
	_ = a.Scale(5)

	if a.X != 1 || a.Y != 2 {
		t.Errorf("operand mutated: (%f, %f)", a.X, a.Y)
	}
	if b.X != 3 || b.Y != 4 {
		t.Errorf("operand mutated: (%f, %f)", b.X, b.Y)
	}
}

func TestVectorLength(t *testing.T) {
	v := Vector2{X: 3, Y: 4}
	if v.Length() != 5 {
		t.Errorf("expected length 5, got %f", v.Length())
	}

	if (Vector2{}).Length() != 0 {
		t.Error("zero vector should have zero length")
	}
}

func TestVectorIsValid(t *testing.T) {
	if !(Vector2{X: 1, Y: 2}).IsValid() {
		t.Error("finite vector should be valid")
	}
	if (Vector2{X: math.NaN(), Y: 0}).IsValid() {
		t.Error("NaN vector should be invalid")
	}
	if (Vector2{X: 0, Y: math.Inf(1)}).IsValid() {
		t.Error("Inf vector should be invalid")
	}
}
