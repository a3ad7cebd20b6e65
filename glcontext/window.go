package glcontext

import (
	"errors"
	"fmt"
	"time"

	"github.com/der-antikeks/flatscene/engine"
	"github.com/go-gl/glfw/v3.3/glfw"
)

var ErrInitWindow = errors.New("glcontext: could not create window")

type Key int

const (
	KeyUnknown = Key(glfw.KeyUnknown)
	KeyEscape  = Key(glfw.KeyEscape)
	KeySpace   = Key(glfw.KeySpace)

	KeyUp    = Key(glfw.KeyUp)
	KeyDown  = Key(glfw.KeyDown)
	KeyLeft  = Key(glfw.KeyLeft)
	KeyRight = Key(glfw.KeyRight)

	KeyEqual      = Key(glfw.KeyEqual)
	KeyMinus      = Key(glfw.KeyMinus)
	KeyKPAdd      = Key(glfw.KeyKPAdd)
	KeyKPSubtract = Key(glfw.KeyKPSubtract)

	KeyQ = Key(glfw.KeyQ)
	KeyE = Key(glfw.KeyE)
	KeyR = Key(glfw.KeyR)
)

type WindowOptions struct {
	Title    string
	Viewport engine.Viewport
	Samples  int
	VSync    bool
	Hidden   bool
}

// Window is a resizable glfw window holding an OpenGL 3.3 core context.
type Window struct {
	window *glfw.Window

	keyPressed map[Key]bool

	onResize func(engine.Viewport)
	onKey    func(Key)
	onScroll func(float64)
}

// NewWindow initializes glfw and makes the new window's context current.
func NewWindow(opts WindowOptions) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInitWindow, err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.Samples, opts.Samples)
	if opts.Hidden {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	window, err := glfw.CreateWindow(opts.Viewport.Width, opts.Viewport.Height, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("%w: %v", ErrInitWindow, err)
	}

	window.MakeContextCurrent()
	if opts.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	w := &Window{
		window:     window,
		keyPressed: map[Key]bool{},
	}

	// callbacks
	window.SetFramebufferSizeCallback(w.framebufferSize)
	window.SetKeyCallback(w.key)
	window.SetScrollCallback(w.scroll)

	logger.Infof("window %q opened at %vx%v", opts.Title, opts.Viewport.Width, opts.Viewport.Height)

	return w, nil
}

// FramebufferSize returns the drawable size, which differs from the window
// size on high dpi screens.
func (w *Window) FramebufferSize() engine.Viewport {
	width, height := w.window.GetFramebufferSize()
	return engine.Viewport{Width: width, Height: height}
}

func (w *Window) OnResize(f func(engine.Viewport)) { w.onResize = f }
func (w *Window) OnKey(f func(Key))                { w.onKey = f }
func (w *Window) OnScroll(f func(yoff float64))    { w.onScroll = f }

func (w *Window) framebufferSize(_ *glfw.Window, width, height int) {
	if w.onResize != nil {
		w.onResize(engine.Viewport{Width: width, Height: height})
	}
}

func (w *Window) key(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	switch action {
	case glfw.Press:
		w.keyPressed[Key(key)] = true
	case glfw.Release:
		delete(w.keyPressed, Key(key))
		return
	}

	// presses and repeats
	if w.onKey != nil {
		w.onKey(Key(key))
	}
}

func (w *Window) scroll(_ *glfw.Window, xoff, yoff float64) {
	if w.onScroll != nil {
		w.onScroll(yoff)
	}
}

func (w *Window) IsKeyDown(key Key) bool {
	return w.keyPressed[key]
}

// Time is the monotonic time since glfw was initialized.
func (w *Window) Time() time.Duration {
	return time.Duration(glfw.GetTime() * float64(time.Second))
}

func (w *Window) ShouldClose() bool {
	return w.window.ShouldClose()
}

func (w *Window) Close() {
	w.window.SetShouldClose(true)
}

// Update presents the frame and dispatches the pending window events.
func (w *Window) Update() {
	w.window.SwapBuffers()
	glfw.PollEvents()
}

func (w *Window) Dispose() {
	w.window.Destroy()
	glfw.Terminate()
}
