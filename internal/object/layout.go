package object

import "github.com/inamate/inamate/canvas-go/internal/geom"

// Dimensions returns the untransformed size. A non-uniform stroke is
// included; a uniform one is added later as StrokePadding.
func (o *Object) Dimensions() geom.Point {
	stroke := o.StrokeWidth
	if o.StrokeUniform {
		stroke = 0
	}
	return geom.Pt(o.Width, o.Height).ScalarAdd(stroke)
}

// StrokePadding is the stroke added after the object's own transform.
func (o *Object) StrokePadding() float64 {
	if o.StrokeUniform {
		return o.StrokeWidth
	}
	return 0
}

// TransformedDimensions returns the size after the object's own scale and
// skew, stroke included, ignoring rotation and ancestors.
func (o *Object) TransformedDimensions() geom.Point {
	return o.transformedDimensions(o.ScaleX, o.ScaleY)
}

func (o *Object) transformedDimensions(scaleX, scaleY float64) geom.Point {
	dim := o.Dimensions()
	var size geom.Point
	if o.SkewX == 0 && o.SkewY == 0 {
		size = geom.Pt(dim.X*scaleX, dim.Y*scaleY)
	} else {
		size = geom.SizeAfterTransform(dim.X, dim.Y, geom.DimensionsMatrix(geom.ComposeOptions{
			ScaleX: scaleX,
			ScaleY: scaleY,
			SkewX:  o.SkewX,
			SkewY:  o.SkewY,
		}))
	}
	return size.ScalarAdd(o.StrokePadding())
}

// ScaledWidth returns the transformed width.
func (o *Object) ScaledWidth() float64 {
	return o.TransformedDimensions().X
}

// ScaledHeight returns the transformed height.
func (o *Object) ScaledHeight() float64 {
	return o.TransformedDimensions().Y
}

// TranslateToGivenOrigin moves p, taken as the "from" origin point, to the
// "to" origin point of an unrotated box of the transformed size.
func (o *Object) TranslateToGivenOrigin(p geom.Point, fromX, fromY, toX, toY float64) geom.Point {
	offset := geom.Pt(toX-fromX, toY-fromY)
	if offset.X == 0 && offset.Y == 0 {
		return p
	}
	return p.Add(offset.Multiply(o.TransformedDimensions()))
}

// TranslateToCenterPoint returns the center of the object whose origin
// point (originX, originY) is at p, taking its angle into account.
func (o *Object) TranslateToCenterPoint(p geom.Point, originX, originY float64) geom.Point {
	if originX == OriginCenter && originY == OriginCenter {
		return p
	}
	c := o.TranslateToGivenOrigin(p, originX, originY, OriginCenter, OriginCenter)
	if o.Angle != 0 {
		return c.Rotate(geom.DegreesToRadians(o.Angle), p)
	}
	return c
}

// TranslateToOriginPoint returns the origin point (originX, originY) of the
// object centered at center.
func (o *Object) TranslateToOriginPoint(center geom.Point, originX, originY float64) geom.Point {
	p := o.TranslateToGivenOrigin(center, OriginCenter, OriginCenter, originX, originY)
	if o.Angle != 0 {
		return p.Rotate(geom.DegreesToRadians(o.Angle), center)
	}
	return p
}

// RelativeCenterPoint returns the center in the parent plane.
func (o *Object) RelativeCenterPoint() geom.Point {
	return o.TranslateToCenterPoint(geom.Pt(o.Left, o.Top), o.OriginX, o.OriginY)
}

// CenterPoint returns the center in scene coordinates.
func (o *Object) CenterPoint() geom.Point {
	c := o.RelativeCenterPoint()
	if o.parent != nil {
		return o.parent.CalcTransformMatrix(false).TransformPoint(c)
	}
	return c
}

// PointByOrigin returns the origin point (originX, originY) in the parent
// plane.
func (o *Object) PointByOrigin(originX, originY float64) geom.Point {
	return o.TranslateToOriginPoint(o.RelativeCenterPoint(), originX, originY)
}

// SetPositionByOrigin places the object so that its origin point
// (originX, originY) lands on p, in the parent plane.
func (o *Object) SetPositionByOrigin(p geom.Point, originX, originY float64) {
	center := o.TranslateToCenterPoint(p, originX, originY)
	pos := o.TranslateToOriginPoint(center, o.OriginX, o.OriginY)
	o.Left, o.Top = pos.X, pos.Y
}

// RelativeXY returns Left and Top.
func (o *Object) RelativeXY() geom.Point {
	return geom.Pt(o.Left, o.Top)
}

// SetRelativeXY places the object's own origin point at p in the parent
// plane. An explicit origin pair places that point instead.
func (o *Object) SetRelativeXY(p geom.Point, origin ...float64) {
	originX, originY := o.OriginX, o.OriginY
	if len(origin) == 2 {
		originX, originY = origin[0], origin[1]
	}
	o.SetPositionByOrigin(p, originX, originY)
}

// XY returns the origin point in scene coordinates.
func (o *Object) XY() geom.Point {
	p := o.RelativeXY()
	if o.parent != nil {
		return o.parent.CalcTransformMatrix(false).TransformPoint(p)
	}
	return p
}

// SetXY is SetRelativeXY for a point in scene coordinates.
func (o *Object) SetXY(p geom.Point, origin ...float64) {
	if o.parent != nil {
		p = o.parent.CalcTransformMatrix(false).Invert().TransformPoint(p)
	}
	o.SetRelativeXY(p, origin...)
}
