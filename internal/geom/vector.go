package geom

import "math"

// Vector helpers treat a Point as a direction.

// CreateVector returns the vector pointing from "from" to "to".
func CreateVector(from, to Point) Point {
	return to.Sub(from)
}

// Magnitude returns the length of v.
func Magnitude(v Point) float64 {
	return math.Hypot(v.X, v.Y)
}

// UnitVector returns v scaled to length 1.
// A zero vector yields NaN components.
func UnitVector(v Point) Point {
	return v.Div(Magnitude(v))
}

// OrthonormalVector returns the unit normal of v: (-v.Y, v.X) when ccw is
// set, (v.Y, -v.X) otherwise.
func OrthonormalVector(v Point, ccw bool) Point {
	n := Point{X: -v.Y, Y: v.X}
	if !ccw {
		n = n.Neg()
	}
	return UnitVector(n)
}

// VectorRotation returns the angle of v in radians, in (-π, π].
func VectorRotation(v Point) float64 {
	return math.Atan2(v.Y, v.X)
}

// AngleBetweenVectors returns the signed angle from a to b in radians.
func AngleBetweenVectors(a, b Point) float64 {
	return math.Atan2(a.Cross(b), a.Dot(b))
}

// IsBetweenVectors reports whether t lies inside the angle swept from a to b.
func IsBetweenVectors(t, a, b Point) bool {
	if t.Eq(a) || t.Eq(b) {
		return true
	}
	ab := a.Cross(b)
	at := a.Cross(t)
	tb := t.Cross(b)
	if ab >= 0 {
		return at >= 0 && tb >= 0
	}
	return !(at <= 0 && tb <= 0)
}
