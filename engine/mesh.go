package engine

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Animatable moves a mesh once per frame.
type Animatable interface {
	Update(m *Mesh, delta float32)
}

// BehaviorFunc adapts a function to Animatable.
type BehaviorFunc func(m *Mesh, delta float32)

func (f BehaviorFunc) Update(m *Mesh, delta float32) {
	f(m, delta)
}

// Mesh is one placed, coloured instance of a shared geometry and program.
type Mesh struct {
	geometry *Geometry
	program  *Program

	position mgl32.Vec3
	rotation mgl32.Quat
	scale    mgl32.Vec3
	color    mgl32.Vec4

	phase    float32
	behavior Animatable
}

func NewMesh(geo *Geometry, prg *Program) *Mesh {
	return &Mesh{
		geometry: geo,
		program:  prg,

		rotation: mgl32.QuatIdent(),
		scale:    mgl32.Vec3{1, 1, 1},
		color:    mgl32.Vec4{1, 1, 1, 1},
	}
}

func (m *Mesh) Geometry() *Geometry {
	return m.geometry
}

func (m *Mesh) Program() *Program {
	return m.program
}

func (m *Mesh) SetBehavior(b Animatable) {
	m.behavior = b
}

func (m *Mesh) Behavior() Animatable {
	return m.behavior
}

// Update runs the behavior, a mesh without one stays put.
func (m *Mesh) Update(delta float32) {
	if m.behavior != nil {
		m.behavior.Update(m, delta)
	}
}

// AdvancePhase adds delta to the animation phase and returns the new phase.
func (m *Mesh) AdvancePhase(delta float32) float32 {
	m.phase += delta
	return m.phase
}

func (m *Mesh) Phase() float32 {
	return m.phase
}

func (m *Mesh) SetColor(r, g, b, a float32) {
	m.color = mgl32.Vec4{r, g, b, a}
}

func (m *Mesh) Color() mgl32.Vec4 {
	return m.color
}

func (m *Mesh) SetPosition(x, y, z float32) {
	m.position = mgl32.Vec3{x, y, z}
}

func (m *Mesh) Position() mgl32.Vec3 {
	return m.position
}

func (m *Mesh) Translate(x, y, z float32) {
	m.position = m.position.Add(mgl32.Vec3{x, y, z})
}

func (m *Mesh) TranslateX(x float32) {
	m.position[0] += x
}

func (m *Mesh) TranslateY(y float32) {
	m.position[1] += y
}

func (m *Mesh) TranslateZ(z float32) {
	m.position[2] += z
}

// rotations accumulate onto the current orientation

func (m *Mesh) RotateX(rad float32) {
	m.rotation = m.rotation.Mul(mgl32.QuatRotate(rad, mgl32.Vec3{1, 0, 0}))
}

func (m *Mesh) RotateY(rad float32) {
	m.rotation = m.rotation.Mul(mgl32.QuatRotate(rad, mgl32.Vec3{0, 1, 0}))
}

func (m *Mesh) RotateZ(rad float32) {
	m.rotation = m.rotation.Mul(mgl32.QuatRotate(rad, mgl32.Vec3{0, 0, 1}))
}

func (m *Mesh) SetRotation(r mgl32.Quat) {
	m.rotation = r
}

func (m *Mesh) Rotation() mgl32.Quat {
	return m.rotation
}

func (m *Mesh) SetScale(x, y, z float32) {
	m.scale = mgl32.Vec3{x, y, z}
}

func (m *Mesh) Scale() mgl32.Vec3 {
	return m.scale
}

// ModelMatrix composes translation * rotation * scale, recomputed on every call.
func (m *Mesh) ModelMatrix() mgl32.Mat4 {
	return mgl32.Translate3D(m.position[0], m.position[1], m.position[2]).
		Mul4(m.rotation.Mat4()).
		Mul4(mgl32.Scale3D(m.scale[0], m.scale[1], m.scale[2]))
}

// Bind readies program and buffers for Draw using this frame's camera.
func (m *Mesh) Bind(attrs *FrameAttributes) {
	modelView := attrs.View.Mul4(m.ModelMatrix())

	m.program.BindForDraw(m.geometry.Buffers())
	m.program.SetFrameUniforms(attrs.Projection, modelView)
	m.program.SetColorUniform(m.color)
}

func (m *Mesh) Draw() error {
	return m.geometry.Draw()
}
