package engine

import (
	"github.com/go-gl/mathgl/mgl32"
)

// control ranges
const (
	MinAnimationSpeed float32 = 0.1
	MaxAnimationSpeed float32 = 4.0
	MinCameraZoom     float32 = 0.25
	MaxCameraZoom     float32 = 4.0
)

// Controls are the live tweakable inputs read once at the start of every frame.
type Controls struct {
	AnimationEnabled bool
	AnimationSpeed   float32

	CameraX    float32
	CameraY    float32
	CameraZoom float32
}

func DefaultControls() Controls {
	return Controls{
		AnimationEnabled: true,
		AnimationSpeed:   1,
		CameraZoom:       1,
	}
}

// Scale applies the animation gate and speed to a frame delta.
func (c Controls) Scale(delta float32) float32 {
	if !c.AnimationEnabled {
		return 0
	}
	return delta * c.AnimationSpeed
}

// Clamp limits the values to the control ranges, the camera offset to half
// of the view size on each axis.
func (c Controls) Clamp(viewWidth, viewHeight float32) Controls {
	c.AnimationSpeed = mgl32.Clamp(c.AnimationSpeed, MinAnimationSpeed, MaxAnimationSpeed)
	c.CameraX = mgl32.Clamp(c.CameraX, -viewWidth/2, viewWidth/2)
	c.CameraY = mgl32.Clamp(c.CameraY, -viewHeight/2, viewHeight/2)
	c.CameraZoom = mgl32.Clamp(c.CameraZoom, MinCameraZoom, MaxCameraZoom)
	return c
}

// ControlPanel supplies the controls, the renderer never writes them.
type ControlPanel interface {
	Controls() Controls
}

// StaticControls is a ControlPanel that never changes.
type StaticControls Controls

func (s StaticControls) Controls() Controls {
	return Controls(s)
}
