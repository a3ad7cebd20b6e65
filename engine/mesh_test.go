package engine_test

import (
	"math"
	"testing"

	"github.com/der-antikeks/flatscene/engine"
	"github.com/der-antikeks/flatscene/engine/enginetest"
	"github.com/go-gl/mathgl/mgl32"
)

const epsilon = 1e-4

// absolute tolerance, mgl32 thresholds turn relative away from zero and
// square the epsilon against an exact zero
func closeTo(a, b float32) bool {
	return mgl32.Abs(a-b) < epsilon
}

func matClose(a, b mgl32.Mat4) bool {
	return a.ApproxFuncEqual(b, closeTo)
}

func vecClose(a, b mgl32.Vec3) bool {
	return a.ApproxFuncEqual(b, closeTo)
}

func quatClose(a, b mgl32.Quat) bool {
	return closeTo(a.W, b.W) && vecClose(a.V, b.V)
}

func TestMesh_Defaults(t *testing.T) {
	m := engine.NewMesh(nil, nil)

	if p := m.Position(); p != (mgl32.Vec3{}) {
		t.Errorf("Position() = %v, expected origin", p)
	}
	if s := m.Scale(); s != (mgl32.Vec3{1, 1, 1}) {
		t.Errorf("Scale() = %v, expected unit scale", s)
	}
	if r := m.Rotation(); r != mgl32.QuatIdent() {
		t.Errorf("Rotation() = %v, expected identity", r)
	}
	if c := m.Color(); c != (mgl32.Vec4{1, 1, 1, 1}) {
		t.Errorf("Color() = %v, expected white", c)
	}

	// no behavior, no motion
	m.Update(1.5)
	if !m.ModelMatrix().ApproxEqual(mgl32.Ident4()) {
		t.Errorf("ModelMatrix() after Update = %v, expected identity", m.ModelMatrix())
	}
	if m.Phase() != 0 {
		t.Errorf("Phase() = %v, expected 0", m.Phase())
	}
}

func TestMesh_Translate(t *testing.T) {
	m := engine.NewMesh(nil, nil)

	m.SetPosition(1, 2, 3)
	m.Translate(1, 1, 1)
	m.TranslateX(10)
	m.TranslateY(20)
	m.TranslateZ(30)

	if p := m.Position(); p != (mgl32.Vec3{12, 23, 34}) {
		t.Errorf("Position() = %v, expected [12 23 34]", p)
	}

	m.SetPosition(0, 0, 0)
	if p := m.Position(); p != (mgl32.Vec3{}) {
		t.Errorf("SetPosition did not overwrite: %v", p)
	}
}

func TestMesh_RotateZ(t *testing.T) {
	tests := []struct {
		A, B float32
	}{
		{0, 0},
		{0.3, 1.1},
		{math.Pi / 2, math.Pi / 2},
		{-0.7, 0.2},
		{2, -3},
	}

	for _, c := range tests {
		twice := engine.NewMesh(nil, nil)
		twice.RotateZ(c.A)
		twice.RotateZ(c.B)

		once := engine.NewMesh(nil, nil)
		once.RotateZ(c.A + c.B)

		if !matClose(twice.ModelMatrix(), once.ModelMatrix()) {
			t.Errorf("RotateZ(%v) RotateZ(%v) = \n%v, expected RotateZ(%v) = \n%v", c.A, c.B, twice.ModelMatrix(), c.A+c.B, once.ModelMatrix())
		}
	}
}

func TestMesh_RotateAccumulates(t *testing.T) {
	m := engine.NewMesh(nil, nil)
	m.RotateX(math.Pi / 2)
	m.RotateY(math.Pi / 2)

	expected := mgl32.QuatRotate(math.Pi/2, mgl32.Vec3{1, 0, 0}).Mul(mgl32.QuatRotate(math.Pi/2, mgl32.Vec3{0, 1, 0}))
	if !quatClose(m.Rotation(), expected) {
		t.Errorf("Rotation() = %v, expected %v", m.Rotation(), expected)
	}
}

func TestMesh_SetRotation(t *testing.T) {
	m := engine.NewMesh(nil, nil)
	m.RotateX(1)

	// replaces, does not compose
	m.SetRotation(mgl32.QuatRotate(math.Pi/2, mgl32.Vec3{0, 0, 1}))
	if w := m.ModelMatrix().Mul4x1(mgl32.Vec4{1, 0, 0, 1}).Vec3(); !vecClose(w, mgl32.Vec3{0, 1, 0}) {
		t.Errorf("x axis -> %v, expected [0 1 0]", w)
	}

	m.RotateZ(math.Pi / 2)
	if !quatClose(m.Rotation(), mgl32.QuatRotate(math.Pi, mgl32.Vec3{0, 0, 1})) {
		t.Errorf("Rotation() after RotateZ = %v, expected a half turn", m.Rotation())
	}
}

func TestMesh_ModelMatrix(t *testing.T) {
	tests := []struct {
		Position, Scale mgl32.Vec3
		RotateZ         float32
		Local, World    mgl32.Vec3
	}{
		{
			mgl32.Vec3{0, 100, 0}, mgl32.Vec3{300, 100, 1}, 0,
			mgl32.Vec3{-0.5, 0.5, 0}, mgl32.Vec3{-150, 150, 0},
		}, {
			mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 1, 1}, 0,
			mgl32.Vec3{1, 2, 3}, mgl32.Vec3{1, 2, 3},
		}, {
			// scale before rotating: x stretched, then turned onto y
			mgl32.Vec3{10, 0, 0}, mgl32.Vec3{2, 1, 1}, math.Pi / 2,
			mgl32.Vec3{1, 0, 0}, mgl32.Vec3{10, 2, 0},
		}, {
			mgl32.Vec3{-5, 5, 1}, mgl32.Vec3{50, 50, 50}, math.Pi,
			mgl32.Vec3{0, 0.5, 0}, mgl32.Vec3{-5, -20, 1},
		},
	}

	for _, c := range tests {
		m := engine.NewMesh(nil, nil)
		m.SetPosition(c.Position[0], c.Position[1], c.Position[2])
		m.SetScale(c.Scale[0], c.Scale[1], c.Scale[2])
		m.RotateZ(c.RotateZ)

		w := m.ModelMatrix().Mul4x1(c.Local.Vec4(1)).Vec3()
		if !vecClose(w, c.World) {
			t.Errorf("position %v scale %v rotation %v: local %v -> %v, expected %v", c.Position, c.Scale, c.RotateZ, c.Local, w, c.World)
		}
	}
}

func TestMesh_RectangleCorner(t *testing.T) {
	rec := enginetest.NewRecorder()
	rect := engine.NewRectangle(rec, 1, 1)

	m := engine.NewMesh(rect, nil)
	m.SetScale(300, 100, 1)
	m.SetPosition(0, 100, 0)

	pos, _ := rect.Buffer(engine.AttributePosition)
	data := rec.Buffers[pos.Handle()]
	corner := mgl32.Vec3{data[0], data[1], data[2]}

	w := m.ModelMatrix().Mul4x1(corner.Vec4(1)).Vec3()
	if !vecClose(w, mgl32.Vec3{-150, 150, 0}) {
		t.Errorf("corner %v -> %v, expected [-150 150 0]", corner, w)
	}
}

func TestMesh_Behavior(t *testing.T) {
	m := engine.NewMesh(nil, nil)

	var deltas []float32
	m.SetBehavior(engine.BehaviorFunc(func(m *engine.Mesh, delta float32) {
		deltas = append(deltas, delta)
		m.TranslateX(m.AdvancePhase(delta))
	}))

	m.Update(0.5)
	m.Update(0.25)

	if len(deltas) != 2 || deltas[0] != 0.5 || deltas[1] != 0.25 {
		t.Errorf("behavior deltas = %v, expected [0.5 0.25]", deltas)
	}
	if m.Phase() != 0.75 {
		t.Errorf("Phase() = %v, expected 0.75", m.Phase())
	}
	if x := m.Position()[0]; x != 1.25 {
		t.Errorf("Position().X() = %v, expected 1.25", x)
	}
}

type drift struct {
	step float32
}

func (d drift) Update(m *engine.Mesh, delta float32) {
	m.TranslateY(d.step * delta)
}

func TestMesh_SetBehavior(t *testing.T) {
	m := engine.NewMesh(nil, nil)
	if m.Behavior() != nil {
		t.Fatalf("Behavior() = %v, expected none", m.Behavior())
	}

	m.SetBehavior(drift{step: 4})
	if b, ok := m.Behavior().(drift); !ok || b.step != 4 {
		t.Errorf("Behavior() = %v, expected drift{4}", m.Behavior())
	}
	m.Update(0.5)

	// swapping keeps the position reached so far
	m.SetBehavior(drift{step: -1})
	m.Update(1)
	if y := m.Position()[1]; y != 1 {
		t.Errorf("Position().Y() = %v, expected 1", y)
	}

	m.SetBehavior(nil)
	m.Update(1)
	if m.Behavior() != nil || m.Position()[1] != 1 {
		t.Errorf("cleared behavior still moves the mesh: %v", m.Position())
	}
}

func TestMesh_Bind(t *testing.T) {
	rec := enginetest.NewRecorder()
	prg, err := engine.NewProgram(rec, "vertex", "fragment")
	if err != nil {
		t.Fatalf("NewProgram: %v", err)
	}

	m := engine.NewMesh(engine.NewTriangle(rec, 1, 1), prg)
	m.SetPosition(3, 4, 0)
	m.SetColor(0, 1, 0, 0.8)

	attrs := &engine.FrameAttributes{
		Projection: mgl32.Ortho(-1, 1, -1, 1, 0.1, 10),
		View:       mgl32.Translate3D(0, 0, -1),
	}

	rec.Reset()
	m.Bind(attrs)

	if !rec.Matrices[0].ApproxEqual(attrs.Projection) {
		t.Errorf("projection uniform = %v, expected %v", rec.Matrices[0], attrs.Projection)
	}
	if expected := attrs.View.Mul4(m.ModelMatrix()); !rec.Matrices[1].ApproxEqual(expected) {
		t.Errorf("modelView uniform = %v, expected %v", rec.Matrices[1], expected)
	}
	if rec.Vectors[2] != (mgl32.Vec4{0, 1, 0, 0.8}) {
		t.Errorf("colour uniform = %v", rec.Vectors[2])
	}

	// program active before uniforms are set
	calls := rec.Filter("UseProgram", "UniformMatrix4", "Uniform4")
	if len(calls) != 4 || calls[0] != "UseProgram(3)" {
		t.Errorf("bind order = %v", calls)
	}
}
