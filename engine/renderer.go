package engine

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

var DefaultClearColor = mgl32.Vec4{0.2, 0.2, 0.2, 1.0}

// Renderer draws an ordered list of meshes through one camera. Meshes are
// drawn in list order without depth sorting, later meshes cover earlier ones.
type Renderer struct {
	ctx      Context
	camera   Camera
	controls ControlPanel

	objects    []*Mesh
	attributes FrameAttributes

	viewport      Viewport
	pendingResize *Viewport

	clearColor mgl32.Vec4

	// program bound by the last drawn mesh
	currentProgram *Program
}

func NewRenderer(ctx Context, camera Camera, controls ControlPanel, vp Viewport, objects ...*Mesh) *Renderer {
	if controls == nil {
		controls = StaticControls(DefaultControls())
	}

	r := &Renderer{
		ctx:        ctx,
		camera:     camera,
		controls:   controls,
		objects:    objects,
		viewport:   vp.clamped(),
		clearColor: DefaultClearColor,
	}

	ctx.Viewport(0, 0, r.viewport.Width, r.viewport.Height)
	r.camera.Update(&r.attributes)

	return r
}

// Add appends meshes, they are drawn after the existing ones.
func (r *Renderer) Add(objects ...*Mesh) {
	r.objects = append(r.objects, objects...)
}

func (r *Renderer) Objects() []*Mesh {
	return r.objects
}

func (r *Renderer) Camera() Camera {
	return r.camera
}

// SetCamera switches the active camera, it is sized to the current viewport.
func (r *Renderer) SetCamera(c Camera) {
	c.OnResize(r.viewport)
	r.camera = c
}

func (r *Renderer) SetClearColor(c mgl32.Vec4) {
	r.clearColor = c
}

// Attributes returns the frame attributes of the last camera update.
func (r *Renderer) Attributes() FrameAttributes {
	return r.attributes
}

func (r *Renderer) Viewport() Viewport {
	return r.viewport
}

// Resize records a new framebuffer size. It takes effect at the start of the
// next frame, never in the middle of one.
func (r *Renderer) Resize(vp Viewport) {
	vp = vp.clamped()
	r.pendingResize = &vp
}

func (r *Renderer) applyResize() {
	if r.pendingResize == nil {
		return
	}

	r.viewport = *r.pendingResize
	r.pendingResize = nil

	r.ctx.Viewport(0, 0, r.viewport.Width, r.viewport.Height)
	r.camera.OnResize(r.viewport)

	logger.Infof("viewport resized to %vx%v", r.viewport.Width, r.viewport.Height)
}

// RenderFrame advances every mesh by delta seconds and draws the frame. The
// first draw error aborts the frame.
func (r *Renderer) RenderFrame(delta float32) error {
	r.applyResize()

	controls := r.controls.Controls()
	delta = controls.Scale(delta)

	// clear and set scene
	r.ctx.ClearColor(r.clearColor[0], r.clearColor[1], r.clearColor[2], r.clearColor[3])
	r.ctx.CullBackFaces()
	r.ctx.EnableAlphaBlending()
	r.ctx.Clear()

	if c, ok := r.camera.(Controllable); ok {
		c.ApplyControls(controls.CameraX, controls.CameraY, controls.CameraZoom)
	}
	r.camera.Update(&r.attributes)

	for _, m := range r.objects {
		m.Update(delta)

		if prg := m.Program(); r.currentProgram != prg {
			if r.currentProgram != nil {
				r.currentProgram.DisableAttributes()
			}
			r.currentProgram = prg
		}

		m.Bind(&r.attributes)
		if err := m.Draw(); err != nil {
			return err
		}
	}

	return nil
}

// Animator feeds a renderer from a clock of monotonically increasing timestamps.
type Animator struct {
	renderer *Renderer
	previous time.Duration
}

func NewAnimator(r *Renderer) *Animator {
	return &Animator{renderer: r}
}

// Tick renders one frame with the time since the previous tick, the first
// tick measures from zero.
func (a *Animator) Tick(timestamp time.Duration) error {
	delta := float32((timestamp - a.previous).Seconds())
	a.previous = timestamp

	return a.renderer.RenderFrame(delta)
}
