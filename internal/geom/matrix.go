package geom

import "math"

// Matrix represents a 2D affine transformation matrix.
// Layout: [a, b, c, d, e, f] representing:
// | a  c  e |
// | b  d  f |
// | 0  0  1 |
//
// x' = a*x + c*y + e
// y' = b*x + d*y + f
//
// Matrices are values; a Matrix handed out by any accessor can be modified
// by the caller without affecting its source.
type Matrix [6]float64

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{1, 0, 0, 1, 0, 0}
}

// TranslateMatrix returns a translation matrix.
func TranslateMatrix(tx, ty float64) Matrix {
	return Matrix{1, 0, 0, 1, tx, ty}
}

// ScaleMatrix returns a scale matrix.
func ScaleMatrix(sx, sy float64) Matrix {
	return Matrix{sx, 0, 0, sy, 0, 0}
}

// RotateMatrix returns a rotation of degrees around pivot.
func RotateMatrix(degrees float64, pivot Point) Matrix {
	sin, cos := SinCosDegrees(degrees)
	m := Matrix{cos, sin, -sin, cos, 0, 0}
	if pivot.X != 0 {
		m[4] = pivot.X - (cos*pivot.X - sin*pivot.Y)
	}
	if pivot.Y != 0 {
		m[5] = pivot.Y - (sin*pivot.X + cos*pivot.Y)
	}
	return m
}

// SkewXMatrix returns a horizontal skew of degrees.
func SkewXMatrix(degrees float64) Matrix {
	return Matrix{1, 0, math.Tan(DegreesToRadians(degrees)), 1, 0, 0}
}

// SkewYMatrix returns a vertical skew of degrees.
func SkewYMatrix(degrees float64) Matrix {
	return Matrix{1, math.Tan(DegreesToRadians(degrees)), 0, 1, 0, 0}
}

// BaseChange returns the matrix whose columns are the given axes and origin:
// (1,0) maps to origin+xAxis, (0,1) to origin+yAxis, (0,0) to origin.
func BaseChange(xAxis, yAxis, origin Point) Matrix {
	return Matrix{xAxis.X, xAxis.Y, yAxis.X, yAxis.Y, origin.X, origin.Y}
}

// Multiply multiplies this matrix by another: result = m * other
// This applies 'other' first, then 'm'.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		m[0]*other[0] + m[2]*other[1],        // a
		m[1]*other[0] + m[3]*other[1],        // b
		m[0]*other[2] + m[2]*other[3],        // c
		m[1]*other[2] + m[3]*other[3],        // d
		m[0]*other[4] + m[2]*other[5] + m[4], // e
		m[1]*other[4] + m[3]*other[5] + m[5], // f
	}
}

// Multiply2x2 multiplies the linear parts only; the result has no translation.
func (m Matrix) Multiply2x2(other Matrix) Matrix {
	r := m.Multiply(other)
	r[4], r[5] = 0, 0
	return r
}

// MultiplyChain composes matrices left to right: MultiplyChain(A, B) applies
// B first, then A. An empty chain is the identity.
func MultiplyChain(ms ...Matrix) Matrix {
	result := Identity()
	for i := len(ms) - 1; i >= 0; i-- {
		result = ms[i].Multiply(result)
	}
	return result
}

// TransformPoint applies the matrix to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// TransformVector applies the linear part of the matrix (no translation).
func (m Matrix) TransformVector(p Point) Point {
	return Point{
		X: m[0]*p.X + m[2]*p.Y,
		Y: m[1]*p.X + m[3]*p.Y,
	}
}

// TransformRect transforms a rectangle and returns its axis-aligned bounding box.
func (m Matrix) TransformRect(r Rect) Rect {
	return BoundingRect(
		m.TransformPoint(Point{X: r.X, Y: r.Y}),
		m.TransformPoint(Point{X: r.X + r.Width, Y: r.Y}),
		m.TransformPoint(Point{X: r.X + r.Width, Y: r.Y + r.Height}),
		m.TransformPoint(Point{X: r.X, Y: r.Y + r.Height}),
	)
}

// Determinant returns the determinant of the linear part.
func (m Matrix) Determinant() float64 {
	return m[0]*m[3] - m[1]*m[2]
}

// IsInvertible reports whether the matrix has a finite, non-zero determinant.
func (m Matrix) IsInvertible() bool {
	det := m.Determinant()
	return det != 0 && !math.IsNaN(det) && !math.IsInf(det, 0)
}

// Invert returns the inverse of the matrix.
// A singular matrix yields a matrix of NaNs, which propagates through any
// point it transforms.
func (m Matrix) Invert() Matrix {
	det := m.Determinant()
	if det == 0 {
		nan := math.NaN()
		return Matrix{nan, nan, nan, nan, nan, nan}
	}

	invDet := 1.0 / det
	return Matrix{
		m[3] * invDet,
		-m[1] * invDet,
		-m[2] * invDet,
		m[0] * invDet,
		(m[2]*m[5] - m[3]*m[4]) * invDet,
		(m[1]*m[4] - m[0]*m[5]) * invDet,
	}
}

// Translation returns the (e, f) offset.
func (m Matrix) Translation() Point {
	return Point{X: m[4], Y: m[5]}
}

// ToSlice returns the matrix as a float64 slice for JSON serialization.
func (m Matrix) ToSlice() []float64 {
	return []float64{m[0], m[1], m[2], m[3], m[4], m[5]}
}

// MatrixFromSlice builds a matrix from a 6-element slice. Any other length
// yields the identity and false.
func MatrixFromSlice(s []float64) (Matrix, bool) {
	if len(s) != 6 {
		return Identity(), false
	}
	return Matrix{s[0], s[1], s[2], s[3], s[4], s[5]}, true
}

// IsIdentity reports exact equality with the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

// NearlyEqual compares component-wise within eps.
func (m Matrix) NearlyEqual(other Matrix, eps float64) bool {
	for i := range m {
		if math.Abs(m[i]-other[i]) > eps {
			return false
		}
	}
	return true
}

// SizeAfterTransform returns the size of the axis-aligned box around a
// width x height box centered at the origin after the linear part of m.
func SizeAfterTransform(width, height float64, m Matrix) Point {
	hw, hh := width/2, height/2
	linear := m
	linear[4], linear[5] = 0, 0
	r := BoundingRect(
		linear.TransformPoint(Point{X: -hw, Y: -hh}),
		linear.TransformPoint(Point{X: hw, Y: -hh}),
		linear.TransformPoint(Point{X: -hw, Y: hh}),
		linear.TransformPoint(Point{X: hw, Y: hh}),
	)
	return Point{X: r.Width, Y: r.Height}
}
