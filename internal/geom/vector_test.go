package geom

import (
	"math"
	"testing"
)

func TestVectorArithmetic(t *testing.T) {
	a := V(3, 4)
	b := V(1, -2)

	if got := a.Add(b); got != V(4, 2) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); got != V(2, 6) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Scale(2); got != V(6, 8) {
		t.Errorf("Scale = %v", got)
	}
	if got := a.Dot(b); got != -5 {
		t.Errorf("Dot = %v", got)
	}
	if a.Length() != 5 || a.LengthSq() != 25 {
		t.Errorf("Length = %v, LengthSq = %v", a.Length(), a.LengthSq())
	}
	if a != V(3, 4) {
		t.Error("value methods must not mutate the receiver")
	}
}

func TestVectorNormalize(t *testing.T) {
	n := V(0, -7).Normalize()
	if n != V(0, -1) {
		t.Errorf("Normalize = %v", n)
	}
	if z := (Vector{}).Normalize(); !z.IsZero() {
		t.Errorf("zero vector should normalize to zero, got %v", z)
	}

	v := V(6, 8)
	v.SetLength(5)
	if !near(v.X, 3) || !near(v.Y, 4) {
		t.Errorf("SetLength = %v", v)
	}
}

func TestVectorInPlace(t *testing.T) {
	v := V(1, 1)
	v.AddAssign(V(2, 3))
	v.ScaleAssign(2)
	v.SubAssign(V(1, 1))
	if v != V(5, 7) {
		t.Errorf("in-place chain = %v, expected (5,7)", v)
	}
}

func TestFromAngle(t *testing.T) {
	v := FromAngle(math.Pi/2, 10)
	if !near(v.X, 0) || !near(v.Y, 10) {
		t.Errorf("FromAngle(pi/2, 10) = %v", v)
	}
	if !near(FromAngle(1.234, 3).Length(), 3) {
		t.Error("FromAngle magnitude mismatch")
	}
}

func TestVectorIsFinite(t *testing.T) {
	if !V(1, 2).IsFinite() {
		t.Error("finite vector reported as non-finite")
	}
	if V(math.NaN(), 0).IsFinite() || V(0, math.Inf(1)).IsFinite() {
		t.Error("NaN/Inf vector reported as finite")
	}
}
