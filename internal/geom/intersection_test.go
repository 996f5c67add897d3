package geom

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestIntersectLineLineStatus(t *testing.T) {
	tests := []struct {
		name           string
		a1, a2, b1, b2 Point
		aKind, bKind   LineKind
		want           Intersection
	}{
		{
			name: "parallel segments",
			a1:   Pt(0, 0), a2: Pt(1, 0), b1: Pt(0, 1), b2: Pt(1, 1),
			aKind: Segment, bKind: Segment,
			want: Intersection{Status: StatusParallel},
		},
		{
			name: "identical segments",
			a1:   Pt(0, 0), a2: Pt(4, 4), b1: Pt(0, 0), b2: Pt(4, 4),
			aKind: Segment, bKind: Segment,
			want: Intersection{Status: StatusCoincident},
		},
		{
			name: "overlapping collinear segments",
			a1:   Pt(0, 0), a2: Pt(2, 0), b1: Pt(1, 0), b2: Pt(5, 0),
			aKind: Segment, bKind: Segment,
			want: Intersection{Status: StatusCoincident},
		},
		{
			name: "disjoint collinear segments",
			a1:   Pt(0, 0), a2: Pt(1, 0), b1: Pt(2, 0), b2: Pt(3, 0),
			aKind: Segment, bKind: Segment,
			want: Intersection{Status: StatusNone},
		},
		{
			name: "collinear lines",
			a1:   Pt(0, 0), a2: Pt(1, 1), b1: Pt(5, 5), b2: Pt(6, 6),
			aKind: Line, bKind: Segment,
			want: Intersection{Status: StatusCoincident},
		},
		{
			name: "crossing segments",
			a1:   Pt(0, 0), a2: Pt(2, 2), b1: Pt(0, 2), b2: Pt(2, 0),
			aKind: Segment, bKind: Segment,
			want: Intersection{Status: StatusIntersection, Points: []Point{Pt(1, 1)}},
		},
		{
			name: "segments missing each other",
			a1:   Pt(0, 0), a2: Pt(1, 1), b1: Pt(0, 4), b2: Pt(4, 0),
			aKind: Segment, bKind: Segment,
			want: Intersection{Status: StatusNone},
		},
		{
			name: "lines meet beyond the segments",
			a1:   Pt(0, 0), a2: Pt(1, 1), b1: Pt(0, 4), b2: Pt(4, 0),
			aKind: Line, bKind: Line,
			want: Intersection{Status: StatusIntersection, Points: []Point{Pt(2, 2)}},
		},
		{
			name: "ray behind its origin",
			a1:   Pt(3, 1), a2: Pt(4, 1), b1: Pt(1, 0), b2: Pt(1, 2),
			aKind: Ray, bKind: Segment,
			want: Intersection{Status: StatusNone},
		},
		{
			name: "ray ahead of its origin",
			a1:   Pt(0, 1), a2: Pt(0.5, 1), b1: Pt(1, 0), b2: Pt(1, 2),
			aKind: Ray, bKind: Segment,
			want: Intersection{Status: StatusIntersection, Points: []Point{Pt(1, 1)}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IntersectLineLine(tt.a1, tt.a2, tt.b1, tt.b2, tt.aKind, tt.bKind)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("IntersectLineLine mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestIsPointContained(t *testing.T) {
	tests := []struct {
		name    string
		p, a, b Point
		kind    LineKind
		want    bool
	}{
		{"vertical inside", Pt(1, 0.5), Pt(1, 0), Pt(1, 1), Segment, true},
		{"vertical past end", Pt(1, 1.5), Pt(1, 0), Pt(1, 1), Segment, false},
		{"vertical ray past end", Pt(1, 1.5), Pt(1, 0), Pt(1, 1), Ray, true},
		{"vertical off line", Pt(1.1, 0.5), Pt(1, 0), Pt(1, 1), Line, false},
		{"horizontal endpoint", Pt(0, 0), Pt(0, 0), Pt(1, 0), Segment, true},
		{"horizontal behind ray", Pt(-1, 0), Pt(0, 0), Pt(1, 0), Ray, false},
		{"horizontal line", Pt(-1, 0), Pt(0, 0), Pt(1, 0), Line, true},
		{"diagonal", Pt(2, 4), Pt(0, 0), Pt(1, 2), Ray, true},
		{"diagonal off slope", Pt(2, 4.5), Pt(0, 0), Pt(1, 2), Line, false},
		{"degenerate segment", Pt(3, 3), Pt(3, 3), Pt(3, 3), Segment, true},
		{"degenerate segment miss", Pt(3, 4), Pt(3, 3), Pt(3, 3), Segment, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsPointContained(tt.p, tt.a, tt.b, tt.kind); got != tt.want {
				t.Errorf("IsPointContained(%v, %v, %v) = %v, want %v", tt.p, tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestIsPointInPolygonSquare(t *testing.T) {
	square := []Point{Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1)}
	const e = Epsilon

	tests := []struct {
		p    Point
		want bool
	}{
		{Pt(0, 0), true},
		{Pt(0, 0).Add(Pt(e, 0)), true},
		{Pt(0, 0).Add(Pt(-e, 0)), false},
		{Pt(1, 1).Add(Pt(e, 0)), false},
	}
	corners := []Point{Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1)}
	for _, c := range corners {
		tests = append(tests, struct {
			p    Point
			want bool
		}{c, true})
		for _, d := range []Point{Pt(e, 0), Pt(-e, 0), Pt(0, e), Pt(0, -e)} {
			p := c.Add(d)
			// Moving along an edge stays on the boundary, moving away leaves.
			inside := p.X >= 0 && p.X <= 1 && p.Y >= 0 && p.Y <= 1
			tests = append(tests, struct {
				p    Point
				want bool
			}{p, inside})
		}
		for _, d := range []Point{Pt(e, e), Pt(e, -e), Pt(-e, e), Pt(-e, -e)} {
			p := c.Add(d)
			inside := p.X >= 0 && p.X <= 1 && p.Y >= 0 && p.Y <= 1
			tests = append(tests, struct {
				p    Point
				want bool
			}{p, inside})
		}
	}
	center := Pt(0.5, 0.5)
	for _, d := range []Point{Pt(0, 0), Pt(e, e), Pt(e, -e), Pt(-e, e), Pt(-e, -e), Pt(e, 0), Pt(0, -e)} {
		tests = append(tests, struct {
			p    Point
			want bool
		}{center.Add(d), true})
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v", tt.p), func(t *testing.T) {
			if got := IsPointInPolygon(tt.p, square); got != tt.want {
				t.Errorf("IsPointInPolygon(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestIsPointInPolygonVertexOnRay(t *testing.T) {
	diamond := []Point{Pt(0, -1), Pt(1, 0), Pt(0, 1), Pt(-1, 0)}
	tests := []struct {
		p    Point
		want bool
	}{
		{Pt(0, 0), true},
		{Pt(-0.5, 0), true},
		{Pt(-2, 0), false},
		{Pt(2, 0), false},
		{Pt(-1, 0), true},
		{Pt(0, 1), true},
		{Pt(0, 1.5), false},
		// Rays grazing the top and bottom vertices from outside.
		{Pt(-2, -1), false},
		{Pt(-2, 1), false},
	}
	for _, tt := range tests {
		if got := IsPointInPolygon(tt.p, diamond); got != tt.want {
			t.Errorf("IsPointInPolygon(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
	if IsPointInPolygon(Pt(0, 0), nil) {
		t.Error("empty polygon contains a point")
	}
}

func TestIntersectPolygonPolygon(t *testing.T) {
	square := []Point{Pt(0, 0), Pt(2, 0), Pt(2, 2), Pt(0, 2)}

	t.Run("same polygon", func(t *testing.T) {
		got := IntersectPolygonPolygon(square, square)
		if got.Status != StatusCoincident {
			t.Errorf("status = %v, want Coincident", got.Status)
		}
	})
	t.Run("overlapping", func(t *testing.T) {
		other := []Point{Pt(1, 1), Pt(3, 1), Pt(3, 3), Pt(1, 3)}
		got := IntersectPolygonPolygon(square, other)
		want := Intersection{Status: StatusIntersection, Points: []Point{Pt(2, 1), Pt(1, 2)}}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	})
	t.Run("shared edge", func(t *testing.T) {
		other := []Point{Pt(2, 0), Pt(4, 0), Pt(4, 2), Pt(2, 2)}
		got := IntersectPolygonPolygon(square, other)
		if got.Status != StatusIntersection {
			t.Fatalf("status = %v, want Intersection", got.Status)
		}
		for _, p := range []Point{Pt(2, 0), Pt(2, 2)} {
			if !got.Includes(p) {
				t.Errorf("points %v do not include %v", got.Points, p)
			}
		}
	})
	t.Run("disjoint", func(t *testing.T) {
		other := []Point{Pt(5, 5), Pt(6, 5), Pt(6, 6), Pt(5, 6)}
		got := IntersectPolygonPolygon(square, other)
		if diff := cmp.Diff(Intersection{}, got); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	})
	t.Run("nested", func(t *testing.T) {
		inner := []Point{Pt(0.5, 0.5), Pt(1.5, 0.5), Pt(1.5, 1.5), Pt(0.5, 1.5)}
		if got := IntersectPolygonPolygon(square, inner); got.Status != StatusNone {
			t.Errorf("status = %v, want None", got.Status)
		}
	})
}

func TestIntersectPolygonRectangle(t *testing.T) {
	triangle := []Point{Pt(0, 0), Pt(4, 0), Pt(0, 4)}
	// Corners given in reverse order are normalized.
	got := IntersectPolygonRectangle(triangle, Pt(3, 3), Pt(1, 1))
	if got.Status != StatusIntersection {
		t.Fatalf("status = %v, want Intersection", got.Status)
	}
	for _, p := range []Point{Pt(3, 1), Pt(1, 3)} {
		if !got.Includes(p) {
			t.Errorf("points %v do not include %v", got.Points, p)
		}
	}
}

func TestIntersectionDeduplicates(t *testing.T) {
	// The diagonal passes through the square's corners, each hit by two edges.
	square := []Point{Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1)}
	got := IntersectLinePolygon(Pt(-1, -1), Pt(2, 2), square, Segment)
	want := Intersection{Status: StatusIntersection, Points: []Point{Pt(0, 0), Pt(1, 1)}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}
