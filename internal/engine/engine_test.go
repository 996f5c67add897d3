package engine

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/inamate/inamate/canvas-go/internal/bbox"
	"github.com/inamate/inamate/canvas-go/internal/document"
	"github.com/inamate/inamate/canvas-go/internal/geom"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func rectNode(id string, x, y, w, h float64) document.ObjectNode {
	data, _ := json.Marshal(map[string]float64{"width": w, "height": h})
	return document.ObjectNode{
		ID:        id,
		Type:      document.ObjectTypeShapeRect,
		Transform: document.Transform{X: x, Y: y, SX: 1, SY: 1},
		Style:     document.Style{Fill: "#fff", Opacity: 1},
		Visible:   true,
		Data:      data,
	}
}

// testDocument lays out, on a 200x100 scene:
//
//	a:   rect 10..50 x 10..30
//	b:   rect 30..70 x 10..30, in front of a
//	g:   group at (150, 50) rotated 30 degrees, holding
//	c:   a 20x20 rect centered on the group origin
//	off: rect far outside the viewport
func testDocument(t *testing.T) string {
	t.Helper()
	doc := document.NewEmptyDocument("proj_1", "Test", "scene_1", "root")
	scene := doc.Scenes["scene_1"]
	scene.Width, scene.Height = 200, 100
	doc.Scenes["scene_1"] = scene

	doc.AddObject("root", rectNode("a", 10, 10, 40, 20))
	doc.AddObject("root", rectNode("b", 30, 10, 40, 20))
	doc.AddObject("root", document.ObjectNode{
		ID:        "g",
		Type:      document.ObjectTypeGroup,
		Transform: document.Transform{X: 150, Y: 50, SX: 1, SY: 1, R: 30},
		Style:     document.Style{Opacity: 1},
		Visible:   true,
	})
	c := rectNode("c", 0, 0, 20, 20)
	c.Transform.OriginX, c.Transform.OriginY = "center", "center"
	doc.AddObject("g", c)
	doc.AddObject("root", rectNode("off", 500, 500, 40, 20))

	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func loaded(t *testing.T) *Engine {
	t.Helper()
	e := NewEngine()
	if err := e.LoadDocument(testDocument(t)); err != nil {
		t.Fatalf("LoadDocument: %v", err)
	}
	return e
}

func TestNoDocument(t *testing.T) {
	e := NewEngine()
	if _, err := e.Render(); !errors.Is(err, ErrNoDocument) {
		t.Errorf("Render error = %v", err)
	}
	if _, err := e.HitTest(0, 0); !errors.Is(err, ErrNoDocument) {
		t.Errorf("HitTest error = %v", err)
	}
	if err := e.MoveObject("a", 0, 0); !errors.Is(err, ErrNoDocument) {
		t.Errorf("MoveObject error = %v", err)
	}
	if err := e.SetScene("scene_1"); !errors.Is(err, ErrNoDocument) {
		t.Errorf("SetScene error = %v", err)
	}
}

func TestLoadDocumentErrors(t *testing.T) {
	e := NewEngine()
	if err := e.LoadDocument("{"); err == nil {
		t.Error("malformed JSON accepted")
	}

	doc := document.NewEmptyDocument("proj_1", "Test", "scene_1", "root")
	bad := rectNode("a", 0, 0, 10, 10)
	bad.Transform.OriginX = "middle"
	doc.AddObject("root", bad)
	data, _ := json.Marshal(doc)
	if err := e.LoadDocument(string(data)); err != nil {
		t.Fatalf("LoadDocument: %v", err)
	}
	if _, err := e.Render(); err == nil {
		t.Error("Render accepted an unknown origin")
	}

	if err := e.SetScene("missing"); !errors.Is(err, ErrSceneNotFound) {
		t.Errorf("SetScene error = %v", err)
	}
}

func TestRenderCullsOffscreen(t *testing.T) {
	e := loaded(t)
	out, err := e.Render()
	if err != nil {
		t.Fatal(err)
	}
	var commands []DrawCommand
	if err := json.Unmarshal([]byte(out), &commands); err != nil {
		t.Fatal(err)
	}
	if len(commands) == 0 || commands[0].Op != "viewport" {
		t.Fatalf("first command = %+v, want viewport", commands)
	}
	var ids []string
	for _, cmd := range commands[1:] {
		ids = append(ids, cmd.ObjectID)
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, ids); diff != "" {
		t.Errorf("drawn objects mismatch (-want +got):\n%s", diff)
	}

	want := geom.Compose(geom.ComposeOptions{Angle: 30, ScaleX: 1, ScaleY: 1, TranslateX: 150, TranslateY: 50}).ToSlice()
	if diff := cmp.Diff(want, commands[3].Transform, approx); diff != "" {
		t.Errorf("group member transform mismatch (-want +got):\n%s", diff)
	}
}

func TestHitTest(t *testing.T) {
	e := loaded(t)
	tests := []struct {
		name string
		x, y float64
		want string
	}{
		{"front wins", 35, 20, "b"},
		{"back only", 15, 20, "a"},
		{"group member", 150, 50, "c"},
		{"empty", 100, 90, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.HitTest(tt.x, tt.y)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("HitTest(%v, %v) = %q, want %q", tt.x, tt.y, got, tt.want)
			}
		})
	}

	if err := e.ZoomToPoint(0, 0, 2); err != nil {
		t.Fatal(err)
	}
	if got, _ := e.HitTest(30, 40); got != "a" {
		t.Errorf("zoomed HitTest = %q, want a", got)
	}
}

func TestMoveObjectWritesBack(t *testing.T) {
	e := loaded(t)
	if err := e.MoveObject("a", 0, 5); err != nil {
		t.Fatal(err)
	}
	tr := e.Document().Objects["a"].Transform
	if tr.X != 0 || tr.Y != 5 {
		t.Errorf("document transform = %+v", tr)
	}

	if err := e.MoveObject("c", 160, 50); err != nil {
		t.Fatal(err)
	}
	tr = e.Document().Objects["c"].Transform
	got := geom.Pt(tr.X, tr.Y)
	want := geom.Pt(10, 0).Rotate(geom.DegreesToRadians(-30), geom.Point{})
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("group-relative position mismatch (-want +got):\n%s", diff)
	}
	if hit, _ := e.HitTest(160, 50); hit != "c" {
		t.Errorf("moved object not hit at its new center: %q", hit)
	}

	if err := e.MoveObject("missing", 0, 0); !errors.Is(err, ErrObjectNotFound) {
		t.Errorf("error = %v, want ErrObjectNotFound", err)
	}
}

func TestRotateObjectInsideGroup(t *testing.T) {
	e := loaded(t)
	if err := e.RotateObject("c", 90); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(60.0, e.Document().Objects["c"].Transform.R, approx); diff != "" {
		t.Errorf("own angle mismatch (-want +got):\n%s", diff)
	}
}

func TestScaleObjects(t *testing.T) {
	e := loaded(t)
	if err := e.ScaleObjectToWidth("a", 80, false); err != nil {
		t.Fatal(err)
	}
	tr := e.Document().Objects["a"].Transform
	if diff := cmp.Diff([]float64{2, 2}, []float64{tr.SX, tr.SY}, approx); diff != "" {
		t.Errorf("scale mismatch (-want +got):\n%s", diff)
	}
	coords, err := e.ObjectCoords("a", bbox.KindRotated)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(80.0, coords.TR.Sub(coords.TL).Length(), approx); diff != "" {
		t.Errorf("width mismatch (-want +got):\n%s", diff)
	}

	if err := e.ScaleObjectToHeight("b", 10, false); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(0.5, e.Document().Objects["b"].Transform.SY, approx); diff != "" {
		t.Errorf("height scale mismatch (-want +got):\n%s", diff)
	}

	if err := e.ScaleObject("b", 3, 1); err != nil {
		t.Fatal(err)
	}
	if tr := e.Document().Objects["b"].Transform; tr.SX != 3 || tr.SY != 1 {
		t.Errorf("transform = %+v", tr)
	}
}

func TestSelectionBoundsIncludeLines(t *testing.T) {
	doc := document.NewEmptyDocument("proj_1", "Test", "scene_1", "root")
	doc.AddObject("root", rectNode("a", 10, 10, 40, 20))
	doc.AddObject("root", rectNode("line", 10, 60, 80, 0))
	doc.AddObject("root", document.ObjectNode{
		ID:        "g",
		Type:      document.ObjectTypeGroup,
		Transform: document.Transform{SX: 1, SY: 1},
		Style:     document.Style{Opacity: 1},
		Visible:   true,
	})
	doc.AddObject("g", rectNode("v", 120, 0, 0, 40))
	doc.AddObject("root", document.ObjectNode{
		ID:        "empty",
		Type:      document.ObjectTypeGroup,
		Transform: document.Transform{SX: 1, SY: 1},
		Style:     document.Style{Opacity: 1},
		Visible:   true,
	})

	e := NewEngine()
	e.SetDocument(doc)

	tests := []struct {
		name      string
		selection []string
		want      geom.Rect
	}{
		{"rect and line", []string{"a", "line"}, geom.Rect{X: 10, Y: 10, Width: 80, Height: 50}},
		{"group of a line", []string{"g"}, geom.Rect{X: 120, Y: 0, Width: 0, Height: 40}},
		{"empty group adds nothing", []string{"a", "empty"}, geom.Rect{X: 10, Y: 10, Width: 40, Height: 20}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e.SetSelection(tt.selection)
			got, err := e.SelectionBounds()
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got, approx); diff != "" {
				t.Errorf("bounds mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDegenerateInputKeepsDocument(t *testing.T) {
	e := loaded(t)
	before := e.Document().Objects["g"].Transform

	tests := []struct {
		name    string
		apply   func() error
		wantErr error
	}{
		{"zero scale", func() error { return e.ScaleObject("g", 0, 0) }, ErrInvalidScale},
		{"zero sy", func() error { return e.ScaleObject("g", 2, 0) }, ErrInvalidScale},
		{"nan scale", func() error { return e.ScaleObject("g", math.NaN(), 1) }, ErrInvalidScale},
		{"zero width", func() error { return e.ScaleObjectToWidth("g", 0, true) }, ErrInvalidScale},
		{"negative height", func() error { return e.ScaleObjectToHeight("g", -1, true) }, ErrInvalidScale},
		{"infinite move", func() error { return e.MoveObject("g", math.Inf(1), 0) }, ErrInvalidValue},
		{"nan angle", func() error { return e.RotateObject("g", math.NaN()) }, ErrInvalidValue},
		{"nan pan", func() error { return e.Pan(math.NaN(), 0) }, ErrInvalidViewport},
		{"zero zoom", func() error { return e.ZoomToPoint(0, 0, 0) }, ErrInvalidViewport},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.apply(); !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
	if diff := cmp.Diff(before, e.Document().Objects["g"].Transform); diff != "" {
		t.Errorf("rejected input changed g (-want +got):\n%s", diff)
	}

	// A member of the group still moves and the document still encodes.
	if err := e.MoveObject("c", 160, 60); err != nil {
		t.Fatal(err)
	}
	out, err := e.GetDocument()
	if err != nil {
		t.Fatalf("GetDocument: %v", err)
	}
	var doc document.InDocument
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("document does not parse: %v", err)
	}
	if hit, _ := e.HitTest(160, 60); hit != "c" {
		t.Errorf("moved member not hit: %q", hit)
	}
}

func TestTinyScaleIsClamped(t *testing.T) {
	e := loaded(t)
	if err := e.ScaleObject("g", 1e-9, -1e-9); err != nil {
		t.Fatal(err)
	}
	tr := e.Document().Objects["g"].Transform
	if diff := cmp.Diff([]float64{MinScale, -MinScale}, []float64{tr.SX, tr.SY}); diff != "" {
		t.Errorf("scale mismatch (-want +got):\n%s", diff)
	}
	if err := e.MoveObject("c", 160, 60); err != nil {
		t.Fatal(err)
	}
	if _, err := e.GetDocument(); err != nil {
		t.Fatal(err)
	}
	c := e.Document().Objects["c"].Transform
	if !geom.Pt(c.X, c.Y).IsFinite() || !geom.Pt(c.SX, c.SY).IsFinite() {
		t.Errorf("member transform not finite: %+v", c)
	}
}

func TestViewportCommands(t *testing.T) {
	e := loaded(t)
	if err := e.SetViewport([]float64{1, 2, 3}); !errors.Is(err, ErrInvalidViewport) {
		t.Errorf("error = %v, want ErrInvalidViewport", err)
	}

	if err := e.Pan(-450, -470); err != nil {
		t.Fatal(err)
	}
	ids, err := e.ObjectsOnScreen()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"off"}, ids); diff != "" {
		t.Errorf("on-screen mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{1, 0, 0, 1, -450, -470}, e.Document().Scenes["scene_1"].Viewport); diff != "" {
		t.Errorf("stored viewport mismatch (-want +got):\n%s", diff)
	}

	// A rebuild from the document keeps the viewport.
	e.SetCanvasSize(200, 100)
	vpt, err := e.Viewport()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]float64{1, 0, 0, 1, -450, -470}, vpt); diff != "" {
		t.Errorf("rebuilt viewport mismatch (-want +got):\n%s", diff)
	}

	if err := e.SetRetinaScaling(2); err != nil {
		t.Fatal(err)
	}
	out, _ := e.Render()
	var commands []DrawCommand
	if err := json.Unmarshal([]byte(out), &commands); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]float64{2, 0, 0, 2, -900, -940}, commands[0].Transform); diff != "" {
		t.Errorf("device transform mismatch (-want +got):\n%s", diff)
	}
}

func TestSelectionBounds(t *testing.T) {
	e := loaded(t)
	e.SetSelection([]string{"a", "missing"})
	got, err := e.SelectionBounds()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(geom.Rect{X: 10, Y: 10, Width: 40, Height: 20}, got, approx); diff != "" {
		t.Errorf("bounds mismatch (-want +got):\n%s", diff)
	}

	e.SetSelection([]string{"a", "b"})
	got, _ = e.SelectionBounds()
	if diff := cmp.Diff(geom.Rect{X: 10, Y: 10, Width: 60, Height: 20}, got, approx); diff != "" {
		t.Errorf("union mismatch (-want +got):\n%s", diff)
	}

	e.SetSelection(nil)
	if got := e.GetSelectionBounds(); got != `{"x":0,"y":0,"width":0,"height":0}` {
		t.Errorf("empty selection = %s", got)
	}
}

func TestGroupBoundsAreMemberUnion(t *testing.T) {
	e := loaded(t)
	e.SetSelection([]string{"g"})
	got, err := e.SelectionBounds()
	if err != nil {
		t.Fatal(err)
	}
	coords, _ := e.ObjectCoords("c", bbox.KindRotated)
	if diff := cmp.Diff(coords.BoundingRect(), got, approx); diff != "" {
		t.Errorf("group bounds mismatch (-want +got):\n%s", diff)
	}
}

func TestSampleDocumentRenders(t *testing.T) {
	e := NewEngine()
	e.LoadSampleDocument("proj_sample")
	out, err := e.Render()
	if err != nil {
		t.Fatal(err)
	}
	var commands []DrawCommand
	if err := json.Unmarshal([]byte(out), &commands); err != nil {
		t.Fatal(err)
	}
	// viewport plus the six shapes
	if len(commands) != 7 {
		t.Errorf("got %d commands, want 7", len(commands))
	}
}

func TestPathHelpers(t *testing.T) {
	path := []PathCommand{
		{"M", 0.0, 150.0},
		{"L", 100.0, 0.0},
		{"Q", 150.0, -20.0, 200.0, 150.0},
		{"Z"},
	}
	want := geom.Rect{X: 0, Y: -20, Width: 200, Height: 170}
	if diff := cmp.Diff(want, computePathBounds(path)); diff != "" {
		t.Errorf("bounds mismatch (-want +got):\n%s", diff)
	}

	moved := offsetPath(path, geom.Pt(-100, -65))
	if diff := cmp.Diff(PathCommand{"M", -100.0, 85.0}, moved[0]); diff != "" {
		t.Errorf("offset mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(PathCommand{"Z"}, moved[3]); diff != "" {
		t.Errorf("close mismatch (-want +got):\n%s", diff)
	}
	if path[0][1] != 0.0 {
		t.Error("offsetPath modified its input")
	}
}
