package engine_test

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/der-antikeks/flatscene/engine"
	"github.com/der-antikeks/flatscene/engine/enginetest"
	"github.com/go-gl/mathgl/mgl32"
)

type panel struct {
	controls engine.Controls
	reads    int
}

func (p *panel) Controls() engine.Controls {
	p.reads++
	return p.controls
}

func recordDeltas(m *engine.Mesh) *[]float32 {
	var deltas []float32
	m.SetBehavior(engine.BehaviorFunc(func(m *engine.Mesh, delta float32) {
		deltas = append(deltas, delta)
	}))
	return &deltas
}

func newScene(t *testing.T) (*enginetest.Recorder, *engine.Program, *engine.Mesh, *engine.Mesh) {
	rec := enginetest.NewRecorder()

	prg, err := engine.NewProgram(rec, "vertex", "fragment")
	if err != nil {
		t.Fatalf("NewProgram: %v", err)
	}

	background := engine.NewMesh(engine.NewRectangle(rec, 1, 1), prg)
	background.SetColor(0, 0, 0, 1)
	background.SetScale(800, 800, 1)

	tri := engine.NewMesh(engine.NewTriangle(rec, 1, 1), prg)
	tri.SetColor(1, 0, 0, 0.8)
	tri.SetScale(50, 50, 50)

	return rec, prg, background, tri
}

func TestRenderer_RenderFrame(t *testing.T) {
	rec, _, background, tri := newScene(t)
	cam := engine.NewOrthographicCamera(800, 800, engine.Viewport{800, 800})

	r := engine.NewRenderer(rec, cam, nil, engine.Viewport{800, 800}, background, tri)

	rec.Reset()
	if err := r.RenderFrame(0); err != nil {
		t.Fatalf("RenderFrame: %v", err)
	}

	prelude := []string{
		"ClearColor(0.2, 0.2, 0.2, 1)",
		"CullBackFaces()",
		"EnableAlphaBlending()",
		"Clear()",
	}
	if len(rec.Calls) < len(prelude) || !reflect.DeepEqual(rec.Calls[:len(prelude)], prelude) {
		t.Errorf("frame starts with %v, expected %v", rec.Calls, prelude)
	}

	draws := rec.Filter("Uniform4", "DrawTriangles")
	expected := []string{
		"Uniform4(2, [0 0 0 1])",
		"DrawTriangles(0, 6)",
		"Uniform4(2, [1 0 0 0.8])",
		"DrawTriangles(0, 3)",
	}
	if !reflect.DeepEqual(draws, expected) {
		t.Errorf("draw order = %v, expected %v", draws, expected)
	}

	if attrs := r.Attributes(); !attrs.Projection.ApproxEqual(mgl32.Ortho(-400, 400, -400, 400, 0.1, 1000)) {
		t.Errorf("frame projection = %v", attrs.Projection)
	}
}

func TestRenderer_DrawOrderFollowsList(t *testing.T) {
	rec, _, background, tri := newScene(t)
	cam := engine.NewOrthographicCamera(800, 800, engine.Viewport{800, 800})

	r := engine.NewRenderer(rec, cam, nil, engine.Viewport{800, 800}, tri)
	r.Add(background)

	rec.Reset()
	if err := r.RenderFrame(0); err != nil {
		t.Fatalf("RenderFrame: %v", err)
	}

	if draws := rec.Filter("DrawTriangles"); !reflect.DeepEqual(draws, []string{"DrawTriangles(0, 3)", "DrawTriangles(0, 6)"}) {
		t.Errorf("draw order = %v", draws)
	}
	if len(r.Objects()) != 2 || r.Objects()[1] != background {
		t.Errorf("Objects() = %v", r.Objects())
	}
}

func TestRenderer_Controls(t *testing.T) {
	tests := []struct {
		Controls engine.Controls
		Delta    float32
		Expected float32
	}{
		{engine.Controls{AnimationEnabled: true, AnimationSpeed: 1, CameraZoom: 1}, 0.5, 0.5},
		{engine.Controls{AnimationEnabled: true, AnimationSpeed: 2, CameraZoom: 1}, 0.5, 1},
		{engine.Controls{AnimationEnabled: false, AnimationSpeed: 2, CameraZoom: 1}, 0.5, 0},
		{engine.Controls{AnimationEnabled: true, AnimationSpeed: 0.5, CameraZoom: 1}, 0, 0},
	}

	for _, c := range tests {
		rec, _, background, tri := newScene(t)
		bgDeltas, triDeltas := recordDeltas(background), recordDeltas(tri)

		p := &panel{controls: c.Controls}
		cam := engine.NewOrthographicCamera(800, 800, engine.Viewport{800, 800})
		r := engine.NewRenderer(rec, cam, p, engine.Viewport{800, 800}, background, tri)

		if err := r.RenderFrame(c.Delta); err != nil {
			t.Fatalf("RenderFrame: %v", err)
		}

		for _, d := range [][]float32{*bgDeltas, *triDeltas} {
			if len(d) != 1 || d[0] != c.Expected {
				t.Errorf("%+v delta %v: mesh got %v, expected %v", c.Controls, c.Delta, d, c.Expected)
			}
		}
		if p.reads != 1 {
			t.Errorf("controls read %v times in one frame", p.reads)
		}
	}
}

func TestRenderer_CameraControls(t *testing.T) {
	rec, _, background, _ := newScene(t)

	p := &panel{controls: engine.Controls{AnimationEnabled: true, AnimationSpeed: 1, CameraX: 100, CameraY: -50, CameraZoom: 0.5}}
	ortho := engine.NewOrthographicCamera(800, 800, engine.Viewport{800, 800})
	r := engine.NewRenderer(rec, ortho, p, engine.Viewport{800, 800}, background)

	if err := r.RenderFrame(0.016); err != nil {
		t.Fatalf("RenderFrame: %v", err)
	}
	if pos := r.Attributes().CameraPosition; pos != (mgl32.Vec3{100, -50, 1}) {
		t.Errorf("camera position = %v, expected [100 -50 1]", pos)
	}
	if ortho.Zoom() != 0.5 {
		t.Errorf("zoom = %v, expected 0.5", ortho.Zoom())
	}

	// perspective cameras ignore the panel
	persp := engine.NewPerspectiveCamera(45, 0.1, 100, engine.Viewport{800, 800})
	persp.SetPosition(0, 0, 10)
	r.SetCamera(persp)

	if err := r.RenderFrame(0.016); err != nil {
		t.Fatalf("RenderFrame: %v", err)
	}
	if pos := r.Attributes().CameraPosition; pos != (mgl32.Vec3{0, 0, 10}) {
		t.Errorf("perspective camera moved to %v", pos)
	}
}

func TestRenderer_Resize(t *testing.T) {
	rec, _, background, _ := newScene(t)
	cam := engine.NewOrthographicCamera(800, 800, engine.Viewport{800, 800})
	r := engine.NewRenderer(rec, cam, nil, engine.Viewport{800, 800}, background)

	rec.Reset()
	r.Resize(engine.Viewport{400, 200})

	if len(rec.Calls) != 0 {
		t.Errorf("Resize issued calls outside a frame: %v", rec.Calls)
	}
	if l, _, _, _ := cam.Extents(); l != -400 {
		t.Errorf("camera resized outside a frame")
	}
	if vp := r.Viewport(); vp != (engine.Viewport{800, 800}) {
		t.Errorf("Viewport() = %v before the next frame", vp)
	}

	if err := r.RenderFrame(0); err != nil {
		t.Fatalf("RenderFrame: %v", err)
	}

	if rec.Calls[0] != "Viewport(0, 0, 400, 200)" {
		t.Errorf("frame started with %v, expected the viewport", rec.Calls[0])
	}
	if l, rt, b, tp := cam.Extents(); l != -400 || rt != 400 || b != -200 || tp != 200 {
		t.Errorf("extents = %v %v %v %v, expected -400 400 -200 200", l, rt, b, tp)
	}
	if expected := mgl32.Ortho(-400, 400, -200, 200, 0.1, 1000); !r.Attributes().Projection.ApproxEqual(expected) {
		t.Errorf("projection not updated after resize: %v", r.Attributes().Projection)
	}

	// applied once
	rec.Reset()
	if err := r.RenderFrame(0); err != nil {
		t.Fatalf("RenderFrame: %v", err)
	}
	if n := rec.Count("Viewport"); n != 0 {
		t.Errorf("resize applied again")
	}
}

func TestRenderer_ProgramSwitch(t *testing.T) {
	rec, _, background, tri := newScene(t)

	other, err := engine.NewProgram(rec, "vertex", "fragment")
	if err != nil {
		t.Fatalf("NewProgram: %v", err)
	}
	// programs 3 and 12, buffers in between
	tri2 := engine.NewMesh(tri.Geometry(), other)

	cam := engine.NewOrthographicCamera(800, 800, engine.Viewport{800, 800})
	r := engine.NewRenderer(rec, cam, nil, engine.Viewport{800, 800}, background, tri, tri2)

	rec.Reset()
	if err := r.RenderFrame(0); err != nil {
		t.Fatalf("RenderFrame: %v", err)
	}

	calls := rec.Filter("UseProgram", "DisableVertexAttribArray")
	expected := []string{
		"UseProgram(3)",
		"UseProgram(3)",
		"DisableVertexAttribArray(0)",
		"DisableVertexAttribArray(1)",
		"DisableVertexAttribArray(4)",
		"UseProgram(12)",
	}
	if !reflect.DeepEqual(calls, expected) {
		t.Errorf("calls = %v, expected %v", calls, expected)
	}
}

func TestRenderer_DrawError(t *testing.T) {
	rec, prg, background, tri := newScene(t)

	broken := engine.NewGeometry(rec)
	if _, err := broken.UploadAttribute([]float32{1, 1, 1}, engine.AttributeNormal, 3); err != nil {
		t.Fatal(err)
	}

	cam := engine.NewOrthographicCamera(800, 800, engine.Viewport{800, 800})
	r := engine.NewRenderer(rec, cam, nil, engine.Viewport{800, 800}, background, engine.NewMesh(broken, prg), tri)

	rec.Reset()
	err := r.RenderFrame(0)

	var missing *engine.MissingAttributeError
	if !errors.As(err, &missing) {
		t.Fatalf("RenderFrame = %v, expected MissingAttributeError", err)
	}
	if n := rec.Count("DrawTriangles"); n != 1 {
		t.Errorf("%v draws before the error, expected 1", n)
	}
}

func TestAnimator_Tick(t *testing.T) {
	rec, _, background, _ := newScene(t)
	deltas := recordDeltas(background)

	cam := engine.NewOrthographicCamera(800, 800, engine.Viewport{800, 800})
	a := engine.NewAnimator(engine.NewRenderer(rec, cam, nil, engine.Viewport{800, 800}, background))

	for _, ts := range []time.Duration{500 * time.Millisecond, 750 * time.Millisecond, 750 * time.Millisecond, 2 * time.Second} {
		if err := a.Tick(ts); err != nil {
			t.Fatalf("Tick(%v): %v", ts, err)
		}
	}

	if expected := []float32{0.5, 0.25, 0, 1.25}; !reflect.DeepEqual(*deltas, expected) {
		t.Errorf("deltas = %v, expected %v", *deltas, expected)
	}
}
