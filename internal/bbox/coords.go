package bbox

import (
	"github.com/samber/lo"

	"github.com/inamate/inamate/canvas-go/internal/geom"
)

// Coords are the corners of a box in fixed winding: top-left, top-right,
// bottom-right, bottom-left.
type Coords struct {
	TL geom.Point `json:"tl"`
	TR geom.Point `json:"tr"`
	BR geom.Point `json:"br"`
	BL geom.Point `json:"bl"`
}

// unitCoords are the corners of the normalized origin space.
var unitCoords = Coords{
	TL: geom.Pt(-0.5, -0.5),
	TR: geom.Pt(0.5, -0.5),
	BR: geom.Pt(0.5, 0.5),
	BL: geom.Pt(-0.5, 0.5),
}

// CoordsFromRect returns the corners of an axis-aligned rect.
func CoordsFromRect(r geom.Rect) Coords {
	c := r.Corners()
	return Coords{TL: c[0], TR: c[1], BR: c[2], BL: c[3]}
}

// Points returns the corners as a closed polygon.
func (c Coords) Points() []geom.Point {
	return []geom.Point{c.TL, c.TR, c.BR, c.BL}
}

// Transform applies m to every corner.
func (c Coords) Transform(m geom.Matrix) Coords {
	return c.Map(m.TransformPoint)
}

// Map applies fn to every corner.
func (c Coords) Map(fn func(geom.Point) geom.Point) Coords {
	p := lo.Map(c.Points(), func(p geom.Point, _ int) geom.Point { return fn(p) })
	return Coords{TL: p[0], TR: p[1], BR: p[2], BL: p[3]}
}

// BoundingRect returns the axis-aligned rect around the corners.
func (c Coords) BoundingRect() geom.Rect {
	return geom.BoundingRect(c.Points()...)
}

// IsFinite reports whether no corner is NaN or infinite.
func (c Coords) IsFinite() bool {
	return lo.EveryBy(c.Points(), geom.Point.IsFinite)
}
