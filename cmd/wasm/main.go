//go:build js && wasm

package main

import (
	"encoding/json"
	"syscall/js"

	"github.com/inamate/inamate/canvas-go/internal/bbox"
	"github.com/inamate/inamate/canvas-go/internal/engine"
)

var eng *engine.Engine

func main() {
	eng = engine.NewEngine()

	// Create the engine API object
	canvasEngine := js.Global().Get("Object").New()

	// --- Commands (frontend → backend) ---
	canvasEngine.Set("loadDocument", js.FuncOf(loadDocument))
	canvasEngine.Set("updateDocument", js.FuncOf(updateDocument))
	canvasEngine.Set("loadSampleDocument", js.FuncOf(loadSampleDocument))
	canvasEngine.Set("setScene", js.FuncOf(setScene))
	canvasEngine.Set("setCanvasSize", js.FuncOf(setCanvasSize))
	canvasEngine.Set("setSelection", js.FuncOf(setSelection))
	canvasEngine.Set("setViewport", js.FuncOf(setViewport))
	canvasEngine.Set("zoomToPoint", js.FuncOf(zoomToPoint))
	canvasEngine.Set("pan", js.FuncOf(pan))
	canvasEngine.Set("setRetinaScaling", js.FuncOf(setRetinaScaling))
	canvasEngine.Set("moveObject", js.FuncOf(moveObject))
	canvasEngine.Set("rotateObject", js.FuncOf(rotateObject))
	canvasEngine.Set("scaleObject", js.FuncOf(scaleObject))
	canvasEngine.Set("scaleObjectToWidth", js.FuncOf(scaleObjectToWidth))
	canvasEngine.Set("scaleObjectToHeight", js.FuncOf(scaleObjectToHeight))

	// --- Queries (frontend ← backend) ---
	canvasEngine.Set("render", js.FuncOf(render))
	canvasEngine.Set("hitTest", js.FuncOf(hitTest))
	canvasEngine.Set("getSelectionBounds", js.FuncOf(getSelectionBounds))
	canvasEngine.Set("getScene", js.FuncOf(getScene))
	canvasEngine.Set("getDocument", js.FuncOf(getDocument))
	canvasEngine.Set("getSelection", js.FuncOf(getSelection))
	canvasEngine.Set("getViewport", js.FuncOf(getViewport))
	canvasEngine.Set("objectCoords", js.FuncOf(objectCoords))
	canvasEngine.Set("objectsOnScreen", js.FuncOf(objectsOnScreen))

	// Register on global scope
	js.Global().Set("canvasEngine", canvasEngine)

	// Signal that WASM is ready
	js.Global().Set("canvasWasmReady", js.ValueOf(true))

	// Keep Go runtime alive
	select {}
}

func result(err error) interface{} {
	if err != nil {
		return js.ValueOf(map[string]interface{}{"error": err.Error()})
	}
	return js.ValueOf(map[string]interface{}{"ok": true})
}

func missing(what string) interface{} {
	return js.ValueOf(map[string]interface{}{"error": "missing " + what})
}

// jsonResult returns v as a JSON string, or an error object.
func jsonResult(v interface{}, err error) interface{} {
	if err != nil {
		return result(err)
	}
	data, err := json.Marshal(v)
	if err != nil {
		return result(err)
	}
	return js.ValueOf(string(data))
}

func floats(args []js.Value) []float64 {
	out := make([]float64, len(args))
	for i, a := range args {
		out[i] = a.Float()
	}
	return out
}

// --- Command Handlers ---

func loadDocument(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return missing("document JSON")
	}
	return result(eng.LoadDocument(args[0].String()))
}

func updateDocument(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return missing("document JSON")
	}
	return result(eng.UpdateDocument(args[0].String()))
}

func loadSampleDocument(this js.Value, args []js.Value) interface{} {
	projectID := "proj_sample"
	if len(args) > 0 && args[0].Type() == js.TypeString {
		projectID = args[0].String()
	}

	eng.LoadSampleDocument(projectID)
	return result(nil)
}

func setScene(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return missing("scene id")
	}
	return result(eng.SetScene(args[0].String()))
}

func setCanvasSize(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return missing("width and height")
	}
	eng.SetCanvasSize(args[0].Float(), args[1].Float())
	return result(nil)
}

func setSelection(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 || args[0].Type() != js.TypeObject {
		eng.SetSelection(nil)
		return nil
	}

	arr := args[0]
	length := arr.Length()
	ids := make([]string, length)
	for i := 0; i < length; i++ {
		ids[i] = arr.Index(i).String()
	}
	eng.SetSelection(ids)
	return nil
}

// setViewport takes the six matrix entries, either as an array or as
// separate arguments.
func setViewport(this js.Value, args []js.Value) interface{} {
	if len(args) == 1 && args[0].Type() == js.TypeObject {
		arr := args[0]
		m := make([]float64, arr.Length())
		for i := range m {
			m[i] = arr.Index(i).Float()
		}
		return result(eng.SetViewport(m))
	}
	return result(eng.SetViewport(floats(args)))
}

func zoomToPoint(this js.Value, args []js.Value) interface{} {
	if len(args) < 3 {
		return missing("x, y and zoom")
	}
	return result(eng.ZoomToPoint(args[0].Float(), args[1].Float(), args[2].Float()))
}

func pan(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return missing("dx and dy")
	}
	return result(eng.Pan(args[0].Float(), args[1].Float()))
}

func setRetinaScaling(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return missing("scale")
	}
	return result(eng.SetRetinaScaling(args[0].Float()))
}

func moveObject(this js.Value, args []js.Value) interface{} {
	if len(args) < 3 {
		return missing("id, x and y")
	}
	return result(eng.MoveObject(args[0].String(), args[1].Float(), args[2].Float()))
}

func rotateObject(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return missing("id and angle")
	}
	return result(eng.RotateObject(args[0].String(), args[1].Float()))
}

func scaleObject(this js.Value, args []js.Value) interface{} {
	if len(args) < 3 {
		return missing("id, sx and sy")
	}
	return result(eng.ScaleObject(args[0].String(), args[1].Float(), args[2].Float()))
}

func scaleObjectToWidth(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return missing("id and width")
	}
	absolute := len(args) > 2 && args[2].Truthy()
	return result(eng.ScaleObjectToWidth(args[0].String(), args[1].Float(), absolute))
}

func scaleObjectToHeight(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return missing("id and height")
	}
	absolute := len(args) > 2 && args[2].Truthy()
	return result(eng.ScaleObjectToHeight(args[0].String(), args[1].Float(), absolute))
}

// --- Query Handlers ---

func render(this js.Value, args []js.Value) interface{} {
	out, err := eng.Render()
	if err != nil {
		return result(err)
	}
	return js.ValueOf(out)
}

func hitTest(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return js.ValueOf("")
	}
	id, err := eng.HitTest(args[0].Float(), args[1].Float())
	if err != nil {
		return js.ValueOf("")
	}
	return js.ValueOf(id)
}

func getSelectionBounds(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(eng.GetSelectionBounds())
}

func getScene(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(eng.GetScene())
}

func getDocument(this js.Value, args []js.Value) interface{} {
	doc, err := eng.GetDocument()
	if err != nil {
		return result(err)
	}
	return js.ValueOf(doc)
}

func getSelection(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(eng.GetSelection())
}

func getViewport(this js.Value, args []js.Value) interface{} {
	return jsonResult(eng.Viewport())
}

// objectCoords returns the corners of an object's box as JSON. The optional
// second argument names the box: "rotated", "canvas", "transformed" or
// "legacy".
func objectCoords(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return missing("object id")
	}
	kind := bbox.KindRotated
	if len(args) > 1 && args[1].Type() == js.TypeString {
		k, err := bbox.ParseKind(args[1].String())
		if err != nil {
			return result(err)
		}
		kind = k
	}
	return jsonResult(eng.ObjectCoords(args[0].String(), kind))
}

func objectsOnScreen(this js.Value, args []js.Value) interface{} {
	return jsonResult(eng.ObjectsOnScreen())
}
