package geom

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPointArithmetic(t *testing.T) {
	p, q := Pt(3, 4), Pt(1, -2)
	tests := []struct {
		name      string
		got, want Point
	}{
		{"Add", p.Add(q), Pt(4, 2)},
		{"Sub", p.Sub(q), Pt(2, 6)},
		{"Multiply", p.Multiply(q), Pt(3, -8)},
		{"Divide", p.Divide(q), Pt(3, -2)},
		{"Mul", p.Mul(2), Pt(6, 8)},
		{"Div", p.Div(2), Pt(1.5, 2)},
		{"ScalarAdd", p.ScalarAdd(1), Pt(4, 5)},
		{"Neg", p.Neg(), Pt(-3, -4)},
		{"Min", p.Min(q), Pt(1, -2)},
		{"Max", p.Max(q), Pt(3, 4)},
		{"MidPointFrom", p.MidPointFrom(q), Pt(2, 1)},
		{"Lerp", p.Lerp(q, 0.25), Pt(2.5, 2.5)},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
	if got := p.Length(); got != 5 {
		t.Errorf("Length = %v, want 5", got)
	}
	if got := p.DistanceFrom(Pt(0, 0)); got != 5 {
		t.Errorf("DistanceFrom = %v, want 5", got)
	}
}

func TestPointRotate(t *testing.T) {
	tests := []struct {
		name   string
		p      Point
		rad    float64
		origin Point
		want   Point
	}{
		{"quarter turn", Pt(1, 0), math.Pi / 2, Point{}, Pt(0, 1)},
		{"half turn about origin", Pt(3, 1), math.Pi, Pt(2, 1), Pt(1, 1)},
		{"eighth turn", Pt(1, 0), math.Pi / 4, Point{}, Pt(math.Sqrt2/2, math.Sqrt2/2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.p.Rotate(tt.rad, tt.origin)
			if diff := cmp.Diff(tt.want, got, approx); diff != "" {
				t.Errorf("Rotate mismatch (-want +got):\n%s", diff)
			}
		})
	}
	// Quarter turns are exact.
	if got := Pt(1, 0).Rotate(math.Pi/2, Point{}); got != Pt(0, 1) {
		t.Errorf("quarter turn = %v, want exactly (0, 1)", got)
	}
}

func TestVectors(t *testing.T) {
	v := CreateVector(Pt(1, 1), Pt(4, 5))
	if v != Pt(3, 4) {
		t.Fatalf("CreateVector = %v, want (3, 4)", v)
	}
	if got := Magnitude(v); got != 5 {
		t.Errorf("Magnitude = %v, want 5", got)
	}
	if diff := cmp.Diff(Pt(0.6, 0.8), UnitVector(v), approx); diff != "" {
		t.Errorf("UnitVector mismatch (-want +got):\n%s", diff)
	}
	if u := UnitVector(Point{}); !math.IsNaN(u.X) || !math.IsNaN(u.Y) {
		t.Errorf("UnitVector(0) = %v, want NaN components", u)
	}
	if diff := cmp.Diff(Pt(-0.8, 0.6), OrthonormalVector(v, true), approx); diff != "" {
		t.Errorf("OrthonormalVector ccw mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(Pt(0.8, -0.6), OrthonormalVector(v, false), approx); diff != "" {
		t.Errorf("OrthonormalVector cw mismatch (-want +got):\n%s", diff)
	}
	if got := VectorRotation(Pt(0, 1)); got != math.Pi/2 {
		t.Errorf("VectorRotation = %v, want π/2", got)
	}
}

func TestAngleBetweenVectorsIsSigned(t *testing.T) {
	x, y := Pt(1, 0), Pt(0, 1)
	if got := AngleBetweenVectors(x, y); math.Abs(got-math.Pi/2) > 1e-12 {
		t.Errorf("angle(x, y) = %v, want π/2", got)
	}
	if got := AngleBetweenVectors(y, x); math.Abs(got+math.Pi/2) > 1e-12 {
		t.Errorf("angle(y, x) = %v, want -π/2", got)
	}
}

func TestIsBetweenVectors(t *testing.T) {
	a, b := Pt(1, 0), Pt(0, 1)
	tests := []struct {
		t    Point
		want bool
	}{
		{Pt(1, 1), true},
		{a, true},
		{b, true},
		{Pt(-1, -1), false},
		{Pt(1, -1), false},
	}
	for _, tt := range tests {
		if got := IsBetweenVectors(tt.t, a, b); got != tt.want {
			t.Errorf("IsBetweenVectors(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestNormalizeDegrees(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{0, 0}, {180, 180}, {-180, 180}, {190, -170}, {540, 180}, {-370, -10},
	}
	for _, tt := range tests {
		if got := NormalizeDegrees(tt.in); got != tt.want {
			t.Errorf("NormalizeDegrees(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
