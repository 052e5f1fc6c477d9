package field

import "math"

// Vec2 is a point or direction in device pixels.
type Vec2 struct {
	X, Y float64
}

// Absent is the pointer-not-present sentinel. It sits far enough outside any
// viewport that field strength evaluates below every draw threshold.
var Absent = Vec2{X: -1e6, Y: -1e6}

// Add returns the vector sum of v and o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the vector difference of v and o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the magnitude of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist returns the Euclidean distance between v and o treated as points.
func (v Vec2) Dist(o Vec2) float64 {
	return math.Hypot(v.X-o.X, v.Y-o.Y)
}

// Unit returns the unit vector in the direction of v, or the zero vector for
// near-zero input.
func (v Vec2) Unit() Vec2 {
	m := v.Len()
	if m < 1e-9 {
		return Vec2{}
	}
	return Vec2{X: v.X / m, Y: v.Y / m}
}

// Angle returns the direction of v in radians.
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}
