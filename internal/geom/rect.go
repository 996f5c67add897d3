package geom

import "math"

// Rect represents an axis-aligned bounding box.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// BoundingRect returns the smallest rect containing all points.
// No points yields the zero Rect.
func BoundingRect(points ...Point) Rect {
	if len(points) == 0 {
		return Rect{}
	}
	lo, hi := points[0], points[0]
	for _, p := range points[1:] {
		lo = lo.Min(p)
		hi = hi.Max(p)
	}
	return Rect{X: lo.X, Y: lo.Y, Width: hi.X - lo.X, Height: hi.Y - lo.Y}
}

// Contains checks if a point is inside the rect, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width && p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// IsEmpty checks if the rect has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// IsValid reports whether r has a finite, non-negative size. A rect of zero
// width or height is valid: it is the extent of a line.
func (r Rect) IsValid() bool {
	return Pt(r.X, r.Y).IsFinite() && Pt(r.Width, r.Height).IsFinite() && r.Width >= 0 && r.Height >= 0
}

// Union returns the smallest rect containing both rects, by point extent.
// An invalid rect contributes nothing.
func (r Rect) Union(other Rect) Rect {
	if !r.IsValid() {
		return other
	}
	if !other.IsValid() {
		return r
	}

	minX := math.Min(r.X, other.X)
	minY := math.Min(r.Y, other.Y)
	maxX := math.Max(r.X+r.Width, other.X+other.Width)
	maxY := math.Max(r.Y+r.Height, other.Y+other.Height)

	return Rect{
		X:      minX,
		Y:      minY,
		Width:  maxX - minX,
		Height: maxY - minY,
	}
}

// UnionRects returns the union of the valid rects, or false when there is
// none.
func UnionRects(rects ...Rect) (Rect, bool) {
	var out Rect
	found := false
	for _, r := range rects {
		if !r.IsValid() {
			continue
		}
		if !found {
			out, found = r, true
			continue
		}
		out = out.Union(r)
	}
	return out, found
}

// Min returns the top-left corner.
func (r Rect) Min() Point {
	return Point{X: r.X, Y: r.Y}
}

// Max returns the bottom-right corner.
func (r Rect) Max() Point {
	return Point{X: r.X + r.Width, Y: r.Y + r.Height}
}

// Center returns the center point of the rect.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Corners returns the corners clockwise from the top-left (y down).
func (r Rect) Corners() []Point {
	lo, hi := r.Min(), r.Max()
	return []Point{lo, {X: hi.X, Y: lo.Y}, hi, {X: lo.X, Y: hi.Y}}
}
