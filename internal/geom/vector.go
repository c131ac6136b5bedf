// Package geom provides the float geometry used by the simulation: a 2D
// vector and an axis-aligned rectangle stored as center and size.
//
// Value methods (Add, Scale, Normalize, ...) return a new value. Methods with
// an Assign suffix or Set prefix take a pointer receiver and mutate in place,
// so the two forms are distinguishable at the call site.
package geom

import "math"

// Vector is a 2D vector.
type Vector struct {
	X, Y float64
}

// V is shorthand for Vector{X: x, Y: y}.
func V(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// FromAngle returns a vector pointing along angle (radians) with the given magnitude.
func FromAngle(angle, magnitude float64) Vector {
	return Vector{X: math.Cos(angle) * magnitude, Y: math.Sin(angle) * magnitude}
}

// Add returns v + o.
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vector) Sub(o Vector) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * k.
func (v Vector) Scale(k float64) Vector {
	return Vector{X: v.X * k, Y: v.Y * k}
}

// Dot returns the dot product of v and o.
func (v Vector) Dot(o Vector) float64 {
	return v.X*o.X + v.Y*o.Y
}

// LengthSq returns the squared length.
func (v Vector) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Length returns the euclidean length.
func (v Vector) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns a unit vector with the same direction.
// The zero vector normalizes to itself.
func (v Vector) Normalize() Vector {
	l := v.Length()
	if l == 0 {
		return Vector{}
	}
	return Vector{X: v.X / l, Y: v.Y / l}
}

// WithLength returns a vector with v's direction and the given length.
func (v Vector) WithLength(length float64) Vector {
	return v.Normalize().Scale(length)
}

// IsZero reports whether both components are zero.
func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// IsFinite reports whether neither component is NaN or infinite.
func (v Vector) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

// Set overwrites v with o.
func (v *Vector) Set(o Vector) {
	v.X, v.Y = o.X, o.Y
}

// AddAssign adds o to v in place.
func (v *Vector) AddAssign(o Vector) {
	v.X += o.X
	v.Y += o.Y
}

// SubAssign subtracts o from v in place.
func (v *Vector) SubAssign(o Vector) {
	v.X -= o.X
	v.Y -= o.Y
}

// ScaleAssign multiplies v by k in place.
func (v *Vector) ScaleAssign(k float64) {
	v.X *= k
	v.Y *= k
}

// NormalizeAssign normalizes v in place.
func (v *Vector) NormalizeAssign() {
	*v = v.Normalize()
}

// SetLength rescales v in place to the given length.
func (v *Vector) SetLength(length float64) {
	*v = v.WithLength(length)
}
