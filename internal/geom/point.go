package geom

import "math"

// Point is a 2D point or vector. All operations return a new Point.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Multiply returns the component-wise product of p and q.
func (p Point) Multiply(q Point) Point {
	return Point{X: p.X * q.X, Y: p.Y * q.Y}
}

// Divide returns the component-wise quotient of p and q.
func (p Point) Divide(q Point) Point {
	return Point{X: p.X / q.X, Y: p.Y / q.Y}
}

// Mul returns the point scaled by s.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Div returns the point divided by s.
func (p Point) Div(s float64) Point {
	return Point{X: p.X / s, Y: p.Y / s}
}

// ScalarAdd adds s to both components.
func (p Point) ScalarAdd(s float64) Point {
	return Point{X: p.X + s, Y: p.Y + s}
}

// Neg returns -p.
func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// Eq reports exact equality.
func (p Point) Eq(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

// Min returns the component-wise minimum of p and q.
func (p Point) Min(q Point) Point {
	return Point{X: math.Min(p.X, q.X), Y: math.Min(p.Y, q.Y)}
}

// Max returns the component-wise maximum of p and q.
func (p Point) Max(q Point) Point {
	return Point{X: math.Max(p.X, q.X), Y: math.Max(p.Y, q.Y)}
}

// Dot returns the dot product.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the z component of the 3D cross product.
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the euclidean length of p.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// DistanceFrom returns the distance between p and q.
func (p Point) DistanceFrom(q Point) float64 {
	return p.Sub(q).Length()
}

// MidPointFrom returns the point halfway between p and q.
func (p Point) MidPointFrom(q Point) Point {
	return p.Lerp(q, 0.5)
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Rotate returns p rotated by radians around origin.
// Quarter turns are exact.
func (p Point) Rotate(radians float64, origin Point) Point {
	sin, cos := Sin(radians), Cos(radians)
	d := p.Sub(origin)
	return Point{
		X: d.X*cos - d.Y*sin + origin.X,
		Y: d.X*sin + d.Y*cos + origin.Y,
	}
}

// Transform applies m to p.
func (p Point) Transform(m Matrix) Point {
	return m.TransformPoint(p)
}

// IsFinite reports whether both components are finite.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}
