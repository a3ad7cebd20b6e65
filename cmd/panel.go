package cmd

import (
	"time"

	"github.com/der-antikeks/flatscene/engine"
	"github.com/der-antikeks/flatscene/glcontext"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	speedStep float32 = 0.1
	zoomStep  float32 = 0.05

	// world units per second while an arrow key is held
	moveSpeed float32 = 200
)

type Action int

const (
	ToggleAnimation Action = iota
	SpeedUp
	SlowDown
	ZoomIn
	ZoomOut
	Reset
)

var keyBindings = map[glcontext.Key]Action{
	glcontext.KeySpace:      ToggleAnimation,
	glcontext.KeyEqual:      SpeedUp,
	glcontext.KeyKPAdd:      SpeedUp,
	glcontext.KeyMinus:      SlowDown,
	glcontext.KeyKPSubtract: SlowDown,
	glcontext.KeyE:          ZoomIn,
	glcontext.KeyQ:          ZoomOut,
	glcontext.KeyR:          Reset,
}

// polled every frame instead of bound to presses
var holdBindings = map[glcontext.Key]mgl32.Vec2{
	glcontext.KeyLeft:  {-1, 0},
	glcontext.KeyRight: {1, 0},
	glcontext.KeyUp:    {0, 1},
	glcontext.KeyDown:  {0, -1},
}

// KeyboardPanel is a ControlPanel driven by key presses and the scroll
// wheel. Every change is clamped to the control ranges.
type KeyboardPanel struct {
	controls engine.Controls
	initial  engine.Controls

	// view size in world units, bounds the camera offset
	viewWidth, viewHeight float32
}

func NewKeyboardPanel(initial engine.Controls, viewWidth, viewHeight float32) *KeyboardPanel {
	initial = initial.Clamp(viewWidth, viewHeight)

	return &KeyboardPanel{
		controls:   initial,
		initial:    initial,
		viewWidth:  viewWidth,
		viewHeight: viewHeight,
	}
}

func (p *KeyboardPanel) Controls() engine.Controls {
	return p.controls
}

// HandleKey applies the action bound to key, unbound keys are ignored.
func (p *KeyboardPanel) HandleKey(key glcontext.Key) {
	if a, ok := keyBindings[key]; ok {
		p.Apply(a)
	}
}

func (p *KeyboardPanel) Apply(a Action) {
	c := p.controls

	switch a {
	case ToggleAnimation:
		c.AnimationEnabled = !c.AnimationEnabled
	case SpeedUp:
		c.AnimationSpeed += speedStep
	case SlowDown:
		c.AnimationSpeed -= speedStep
	case ZoomIn:
		c.CameraZoom -= zoomStep
	case ZoomOut:
		c.CameraZoom += zoomStep
	case Reset:
		c = p.initial
	}

	p.controls = c.Clamp(p.viewWidth, p.viewHeight)
	logger.Debugf("controls %+v", p.controls)
}

// Hold pans the camera along every held arrow key for the time elapsed since
// the previous poll. Opposite keys cancel out.
func (p *KeyboardPanel) Hold(isDown func(glcontext.Key) bool, elapsed time.Duration) {
	var dir mgl32.Vec2
	for key, d := range holdBindings {
		if isDown(key) {
			dir = dir.Add(d)
		}
	}
	if elapsed <= 0 || dir == (mgl32.Vec2{}) {
		return
	}

	step := dir.Mul(moveSpeed * float32(elapsed.Seconds()))

	c := p.controls
	c.CameraX += step[0]
	c.CameraY += step[1]
	p.controls = c.Clamp(p.viewWidth, p.viewHeight)
}

// Scroll zooms in for a positive offset.
func (p *KeyboardPanel) Scroll(yoff float64) {
	c := p.controls
	c.CameraZoom -= float32(yoff) * zoomStep
	p.controls = c.Clamp(p.viewWidth, p.viewHeight)
}
