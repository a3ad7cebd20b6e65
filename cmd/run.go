package cmd

import (
	"github.com/der-antikeks/flatscene/engine"
	"github.com/der-antikeks/flatscene/glcontext"
	"github.com/der-antikeks/flatscene/scene"
	"github.com/der-antikeks/flatscene/shaders"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/urfave/cli"
)

// Open a window and animate the demo scene until it is closed.
func Run(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	setupLogging(ctx, cfg)
	if err != nil {
		return err
	}

	window, err := glcontext.NewWindow(glcontext.WindowOptions{
		Title:    cfg.Window.Title,
		Viewport: cfg.Viewport(),
		Samples:  cfg.Window.Samples,
		VSync:    cfg.Window.VSync,
	})
	if err != nil {
		return err
	}
	defer window.Dispose()

	gl, err := glcontext.New()
	if err != nil {
		return err
	}
	defer gl.Dispose()

	// a broken program still draws, report and carry on
	prg, err := shaders.Build(gl, cfg.Shader)
	if prg == nil {
		return err
	}
	if err != nil {
		logger.Errorf("shader %q: %v", cfg.Shader, err)
	}
	defer prg.Dispose()

	demo := scene.NewDemo(gl, prg, cfg.Camera.Width, cfg.Camera.Height)
	defer demo.Dispose()

	panel := NewKeyboardPanel(cfg.Controls.Engine(), cfg.Camera.Width, cfg.Camera.Height)

	r := engine.NewRenderer(gl, cfg.NewCamera(), panel, window.FramebufferSize(), demo.Meshes()...)
	r.SetClearColor(mgl32.Vec4(cfg.ClearColor))

	window.OnResize(r.Resize)
	window.OnScroll(panel.Scroll)
	window.OnKey(func(key glcontext.Key) {
		if key == glcontext.KeyEscape {
			window.Close()
			return
		}
		panel.HandleKey(key)
	})

	logger.Noticef("rendering %v meshes with %q, press escape to quit", len(r.Objects()), cfg.Shader)

	animator := engine.NewAnimator(r)
	fps := newFPSCounter(60)
	last := window.Time()
	for !window.ShouldClose() {
		now := window.Time()
		panel.Hold(window.IsKeyDown, now-last)
		last = now

		if err := animator.Tick(now); err != nil {
			return err
		}
		if fps.Frame(now) {
			logger.Infof("%.1f fps", fps.FPS())
		}
		if err := gl.CheckError(); err != nil {
			logger.Warning(err)
		}

		window.Update()
	}

	logger.Notice("window closed")
	return nil
}
