package geom

import "math"

const (
	halfPi  = math.Pi / 2
	piBy180 = math.Pi / 180
)

// Epsilon is the difference between 1 and the next representable float64.
const Epsilon = 0x1p-52

// DegreesToRadians converts degrees to radians.
func DegreesToRadians(deg float64) float64 {
	return deg * piBy180
}

// RadiansToDegrees converts radians to degrees.
func RadiansToDegrees(rad float64) float64 {
	return rad / piBy180
}

// quarterTurns returns the number of quarter turns in rad and whether rad is
// an exact multiple of a quarter turn.
func quarterTurns(rad float64) (int, bool) {
	q := rad / halfPi
	if q != math.Trunc(q) || math.Abs(q) > 1<<30 {
		return 0, false
	}
	n := int(q) % 4
	if n < 0 {
		n += 4
	}
	return n, true
}

// Cos is math.Cos with exact results at multiples of a quarter turn.
func Cos(rad float64) float64 {
	if rad == 0 {
		return 1
	}
	if n, ok := quarterTurns(rad); ok {
		return [4]float64{1, 0, -1, 0}[n]
	}
	return math.Cos(rad)
}

// Sin is math.Sin with exact results at multiples of a quarter turn.
func Sin(rad float64) float64 {
	if n, ok := quarterTurns(rad); ok {
		return [4]float64{0, 1, 0, -1}[n]
	}
	return math.Sin(rad)
}

// SinCosDegrees returns the sine and cosine of deg, exact at multiples of 90.
func SinCosDegrees(deg float64) (sin, cos float64) {
	if q := deg / 90; q == math.Trunc(q) && math.Abs(q) <= 1<<30 {
		n := int(q) % 4
		if n < 0 {
			n += 4
		}
		return [4]float64{0, 1, 0, -1}[n], [4]float64{1, 0, -1, 0}[n]
	}
	rad := DegreesToRadians(deg)
	return math.Sin(rad), math.Cos(rad)
}

// NormalizeDegrees maps deg into (-180, 180].
func NormalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg <= -180 {
		deg += 360
	} else if deg > 180 {
		deg -= 360
	}
	return deg
}
