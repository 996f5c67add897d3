package geom

import (
	"math"

	"github.com/samber/lo"
)

// Status classifies the outcome of an intersection test.
type Status int

const (
	StatusNone Status = iota
	StatusIntersection
	StatusCoincident
	StatusParallel
)

func (s Status) String() string {
	switch s {
	case StatusIntersection:
		return "Intersection"
	case StatusCoincident:
		return "Coincident"
	case StatusParallel:
		return "Parallel"
	default:
		return "None"
	}
}

// LineKind bounds the parameter of a line through two points.
type LineKind int

const (
	// Line is unbounded in both directions.
	Line LineKind = iota
	// Ray starts at the first point and extends through the second.
	Ray
	// Segment is bounded by both points.
	Segment
)

func (k LineKind) accepts(t float64) bool {
	switch k {
	case Ray:
		return t >= 0
	case Segment:
		return t >= 0 && t <= 1
	default:
		return !math.IsNaN(t)
	}
}

// Intersection is the result of an intersection test. Points never holds
// duplicates.
type Intersection struct {
	Status Status
	Points []Point
}

// Includes reports whether p is one of the intersection points.
func (in Intersection) Includes(p Point) bool {
	return lo.ContainsBy(in.Points, p.Eq)
}

func (in *Intersection) append(points ...Point) {
	for _, p := range points {
		if !in.Includes(p) {
			in.Points = append(in.Points, p)
		}
	}
}

// IsPointContained reports whether t lies on the line through a and b,
// bounded by kind. The test is exact.
func IsPointContained(t, a, b Point, kind LineKind) bool {
	if a.Eq(b) {
		return t.Eq(a)
	}
	var s float64
	switch {
	case a.X == b.X:
		if t.X != a.X {
			return false
		}
		s = (t.Y - a.Y) / (b.Y - a.Y)
	case a.Y == b.Y:
		if t.Y != a.Y {
			return false
		}
		s = (t.X - a.X) / (b.X - a.X)
	default:
		sx := (t.X - a.X) / (b.X - a.X)
		sy := (t.Y - a.Y) / (b.Y - a.Y)
		if sx != sy {
			return false
		}
		s = sx
	}
	return kind.accepts(s)
}

// IntersectLineLine intersects line a1a2 of kind aKind with b1b2 of kind bKind.
//
// Collinear inputs are Coincident when either is a Line or an endpoint of one
// lies on the other, and None when they are disjoint. Parallel, non-collinear
// inputs are Parallel.
func IntersectLineLine(a1, a2, b1, b2 Point, aKind, bKind LineKind) Intersection {
	uaT := (b2.X-b1.X)*(a1.Y-b1.Y) - (b2.Y-b1.Y)*(a1.X-b1.X)
	ubT := (a2.X-a1.X)*(a1.Y-b1.Y) - (a2.Y-a1.Y)*(a1.X-b1.X)
	uB := (b2.Y-b1.Y)*(a2.X-a1.X) - (b2.X-b1.X)*(a2.Y-a1.Y)

	if uB != 0 {
		ua, ub := uaT/uB, ubT/uB
		if aKind.accepts(ua) && bKind.accepts(ub) {
			return Intersection{Status: StatusIntersection, Points: []Point{a1.Lerp(a2, ua)}}
		}
		return Intersection{}
	}

	if uaT == 0 || ubT == 0 {
		if aKind == Line || bKind == Line ||
			IsPointContained(a1, b1, b2, bKind) || IsPointContained(a2, b1, b2, bKind) ||
			IsPointContained(b1, a1, a2, aKind) || IsPointContained(b2, a1, a2, aKind) {
			return Intersection{Status: StatusCoincident}
		}
		return Intersection{}
	}
	return Intersection{Status: StatusParallel}
}

// IsPointInPolygon reports whether p is inside the closed polygon. Points on
// the boundary are inside.
//
// A ray from p along +x is tested against every edge. A vertex hit is counted
// only for the edge that ends above it, so a ray passing through a vertex is
// not counted twice. The rule is half-open on purpose: an edge is crossed
// when exactly one of its endpoints lies strictly below p.
func IsPointInPolygon(p Point, polygon []Point) bool {
	ray := p.Add(Point{X: 1})
	count := 0
	for i, b1 := range polygon {
		b2 := polygon[(i+1)%len(polygon)]
		in := IntersectLineLine(p, ray, b1, b2, Ray, Segment)
		switch in.Status {
		case StatusCoincident:
			if IsPointContained(p, b1, b2, Segment) {
				return true
			}
		case StatusIntersection:
			if in.Includes(p) {
				return true
			}
			if (b1.Y > p.Y) != (b2.Y > p.Y) {
				count++
			}
		}
	}
	return count%2 == 1
}

// IntersectLinePolygon intersects line a1a2 of the given kind with every
// edge of the closed polygon. A coincident edge short-circuits the result.
func IntersectLinePolygon(a1, a2 Point, polygon []Point, kind LineKind) Intersection {
	var result Intersection
	for i, b1 := range polygon {
		b2 := polygon[(i+1)%len(polygon)]
		in := IntersectLineLine(a1, a2, b1, b2, kind, Segment)
		if in.Status == StatusCoincident {
			return in
		}
		result.append(in.Points...)
	}
	if len(result.Points) > 0 {
		result.Status = StatusIntersection
	}
	return result
}

// IntersectSegmentPolygon intersects segment a1a2 with the closed polygon.
func IntersectSegmentPolygon(a1, a2 Point, polygon []Point) Intersection {
	return IntersectLinePolygon(a1, a2, polygon, Segment)
}

// IntersectPolygonPolygon intersects two closed polygons edge by edge.
// The result is Coincident only when every edge of a is coincident with b.
func IntersectPolygonPolygon(a, b []Point) Intersection {
	var result Intersection
	coincident := 0
	for i, a1 := range a {
		a2 := a[(i+1)%len(a)]
		in := IntersectSegmentPolygon(a1, a2, b)
		if in.Status == StatusCoincident {
			coincident++
			result.append(a1, a2)
			continue
		}
		result.append(in.Points...)
	}
	if len(a) > 0 && coincident == len(a) {
		return Intersection{Status: StatusCoincident}
	}
	if len(result.Points) > 0 {
		result.Status = StatusIntersection
	}
	return result
}

// IntersectPolygonRectangle intersects a polygon with the axis-aligned
// rectangle spanned by two opposite corners.
func IntersectPolygonRectangle(polygon []Point, r1, r2 Point) Intersection {
	tl, br := r1.Min(r2), r1.Max(r2)
	rect := []Point{tl, {X: br.X, Y: tl.Y}, br, {X: tl.X, Y: br.Y}}
	return IntersectPolygonPolygon(polygon, rect)
}
