package engine

import (
	"github.com/go-gl/mathgl/mgl32"
)

const (
	orthoNear float32 = 0.1
	orthoFar  float32 = 1000
)

// Viewport is the framebuffer size in pixels, never smaller than 1x1.
type Viewport struct {
	Width, Height int
}

func (v Viewport) clamped() Viewport {
	if v.Width < 1 {
		v.Width = 1
	}
	if v.Height < 1 {
		v.Height = 1
	}
	return v
}

func (v Viewport) Aspect() float32 {
	v = v.clamped()
	return float32(v.Width) / float32(v.Height)
}

// FrameAttributes is written by the camera once per frame and read by every mesh.
type FrameAttributes struct {
	Projection     mgl32.Mat4
	View           mgl32.Mat4
	Camera         mgl32.Mat4 // inverse of View
	CameraPosition mgl32.Vec3
}

type Camera interface {
	// Update recomputes projection and view and publishes them into attrs.
	Update(attrs *FrameAttributes)
	OnResize(vp Viewport)
	Position() mgl32.Vec3
}

// Controllable cameras follow the camera offset and zoom of the controls.
type Controllable interface {
	ApplyControls(x, y, zoom float32)
}

type cameraBase struct {
	position mgl32.Vec3
	lookAt   mgl32.Vec3

	viewMatrix       mgl32.Mat4
	cameraMatrix     mgl32.Mat4
	projectionMatrix mgl32.Mat4
}

func (c *cameraBase) updateView(attrs *FrameAttributes) {
	c.viewMatrix = mgl32.LookAtV(c.position, c.lookAt, mgl32.Vec3{0, 1, 0})
	c.cameraMatrix = c.viewMatrix.Inv()

	attrs.Projection = c.projectionMatrix
	attrs.View = c.viewMatrix
	attrs.Camera = c.cameraMatrix
	attrs.CameraPosition = c.position
}

func (c *cameraBase) Position() mgl32.Vec3 {
	return c.position
}

func (c *cameraBase) LookAt() mgl32.Vec3 {
	return c.lookAt
}

func (c *cameraBase) SetLookAt(x, y, z float32) {
	c.lookAt = mgl32.Vec3{x, y, z}
}

func (c *cameraBase) ViewMatrix() mgl32.Mat4 {
	return c.viewMatrix
}

func (c *cameraBase) ProjectionMatrix() mgl32.Mat4 {
	return c.projectionMatrix
}

func (c *cameraBase) CameraMatrix() mgl32.Mat4 {
	return c.cameraMatrix
}

// OrthographicCamera looks down -z at the xy plane and keeps the requested
// view size visible whatever the window aspect.
type OrthographicCamera struct {
	cameraBase

	// requested size
	width, height float32

	left, right float32
	bottom, top float32
	zoom        float32

	viewport Viewport
}

func NewOrthographicCamera(width, height float32, vp Viewport) *OrthographicCamera {
	c := &OrthographicCamera{
		zoom:     1,
		viewport: vp.clamped(),
	}
	c.position[2] = 1
	c.SetOrthographic(width, height)

	return c
}

// SetOrthographic derives the half extents from the requested size. The
// longer viewport side keeps the requested extent, the other one shrinks to
// the viewport aspect.
func (c *OrthographicCamera) SetOrthographic(width, height float32) {
	c.width = width
	c.height = height

	vw, vh := float32(c.viewport.Width), float32(c.viewport.Height)
	if vw >= vh {
		height = width * (vh / vw)
	} else {
		width = height * (vw / vh)
	}

	width *= 0.5
	height *= 0.5

	c.left = -width
	c.right = width
	c.bottom = -height
	c.top = height
}

// Extents returns the half extents before zoom.
func (c *OrthographicCamera) Extents() (left, right, bottom, top float32) {
	return c.left, c.right, c.bottom, c.top
}

// SetPosition keeps the eye at z 1, z is used for the look-at target only.
func (c *OrthographicCamera) SetPosition(x, y, z float32) {
	c.position = mgl32.Vec3{x, y, 1}
	c.SetLookAt(x, y, z)
}

func (c *OrthographicCamera) SetZoom(zoom float32) {
	c.zoom = zoom
}

func (c *OrthographicCamera) Zoom() float32 {
	return c.zoom
}

func (c *OrthographicCamera) ApplyControls(x, y, zoom float32) {
	c.SetPosition(x, y, 0)
	c.SetZoom(zoom)
}

func (c *OrthographicCamera) OnResize(vp Viewport) {
	c.viewport = vp.clamped()
	c.SetOrthographic(c.width, c.height)
}

func (c *OrthographicCamera) Update(attrs *FrameAttributes) {
	x, y, zm := c.position[0], c.position[1], c.zoom

	c.projectionMatrix = mgl32.Ortho(
		x+c.left*zm,
		x+c.right*zm,
		y+c.bottom*zm,
		y+c.top*zm,
		orthoNear, orthoFar,
	)

	c.updateView(attrs)
}

// PerspectiveCamera projects with a vertical field of view given in degrees.
type PerspectiveCamera struct {
	cameraBase

	fov    float32
	aspect float32
	near   float32
	far    float32
}

func NewPerspectiveCamera(fov, near, far float32, vp Viewport) *PerspectiveCamera {
	c := &PerspectiveCamera{
		aspect: vp.Aspect(),
	}
	c.SetPerspective(fov, near, far)

	return c
}

func (c *PerspectiveCamera) SetPerspective(fov, near, far float32) {
	c.fov = fov
	c.near = near
	c.far = far
	c.updateProjection()
}

func (c *PerspectiveCamera) updateProjection() {
	c.projectionMatrix = mgl32.Perspective(mgl32.DegToRad(c.fov), c.aspect, c.near, c.far)
}

func (c *PerspectiveCamera) Perspective() (fov, aspect, near, far float32) {
	return c.fov, c.aspect, c.near, c.far
}

func (c *PerspectiveCamera) SetPosition(x, y, z float32) {
	c.position = mgl32.Vec3{x, y, z}
}

func (c *PerspectiveCamera) OnResize(vp Viewport) {
	c.aspect = vp.Aspect()
	c.updateProjection()
}

func (c *PerspectiveCamera) Update(attrs *FrameAttributes) {
	c.updateView(attrs)
}

// Up is the camera z axis (0, 0, 1) in world space, as of the last Update.
// Movement controllers treat it as the up direction of a camera looking down
// onto the xy plane.
func (c *PerspectiveCamera) Up() mgl32.Vec4 {
	return c.cameraMatrix.Mul4x1(mgl32.Vec4{0, 0, 1, 0})
}

// Right is the camera x axis in world space, as of the last Update.
func (c *PerspectiveCamera) Right() mgl32.Vec4 {
	return c.cameraMatrix.Mul4x1(mgl32.Vec4{1, 0, 0, 0})
}
