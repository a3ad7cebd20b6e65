// Package config reads the startup configuration from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/der-antikeks/flatscene/engine"
	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("config: invalid value")

type CameraKind string

const (
	Orthographic CameraKind = "orthographic"
	Perspective  CameraKind = "perspective"
)

type Window struct {
	Title   string `yaml:"title"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	Samples int    `yaml:"samples"`
	VSync   bool   `yaml:"vsync"`
}

type Camera struct {
	Kind CameraKind `yaml:"kind"`

	// orthographic view size in world units
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`

	// perspective
	FOV      float32    `yaml:"fov"`
	Near     float32    `yaml:"near"`
	Far      float32    `yaml:"far"`
	Position [3]float32 `yaml:"position,flow"`
}

type Controls struct {
	Animate bool    `yaml:"animate"`
	Speed   float32 `yaml:"speed"`
	X       float32 `yaml:"x"`
	Y       float32 `yaml:"y"`
	Zoom    float32 `yaml:"zoom"`
}

type Config struct {
	Window     Window     `yaml:"window"`
	Camera     Camera     `yaml:"camera"`
	Controls   Controls   `yaml:"controls"`
	Shader     string     `yaml:"shader"`
	ClearColor [4]float32 `yaml:"clear_color,flow"`
	LogLevel   string     `yaml:"log_level"`
}

func Default() Config {
	return Config{
		Window: Window{
			Title:   "flatscene",
			Width:   800,
			Height:  800,
			Samples: 4,
			VSync:   true,
		},
		Camera: Camera{
			Kind:     Orthographic,
			Width:    800,
			Height:   800,
			FOV:      45,
			Near:     0.1,
			Far:      2000,
			Position: [3]float32{0, 0, 1000},
		},
		Controls: Controls{
			Animate: true,
			Speed:   1,
			Zoom:    1,
		},
		Shader:     "passthrough",
		ClearColor: [4]float32(engine.DefaultClearColor),
		LogLevel:   "notice",
	}
}

// Load reads path over the defaults, keys missing from the file keep their
// default value. The result is validated and the controls are clamped.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: reading %v: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parsing %v: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	cfg.Controls = cfg.Controls.Clamp(cfg.Camera.Width, cfg.Camera.Height)

	return cfg, nil
}

// Validate rejects values no window or camera can be built from.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %vx%v", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Window.Samples < 0 {
		return fmt.Errorf("%w: %v samples", ErrInvalid, c.Window.Samples)
	}

	switch c.Camera.Kind {
	case Orthographic:
		if c.Camera.Width <= 0 || c.Camera.Height <= 0 {
			return fmt.Errorf("%w: orthographic size %vx%v", ErrInvalid, c.Camera.Width, c.Camera.Height)
		}
	case Perspective:
		if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
			return fmt.Errorf("%w: field of view %v", ErrInvalid, c.Camera.FOV)
		}
		if c.Camera.Near <= 0 || c.Camera.Near >= c.Camera.Far {
			return fmt.Errorf("%w: near %v, far %v", ErrInvalid, c.Camera.Near, c.Camera.Far)
		}
	default:
		return fmt.Errorf("%w: camera kind %q", ErrInvalid, c.Camera.Kind)
	}

	return nil
}

// Viewport is the initial window size.
func (c Config) Viewport() engine.Viewport {
	return engine.Viewport{Width: c.Window.Width, Height: c.Window.Height}
}

func (c Controls) Clamp(viewWidth, viewHeight float32) Controls {
	return FromEngine(c.Engine().Clamp(viewWidth, viewHeight))
}

func (c Controls) Engine() engine.Controls {
	return engine.Controls{
		AnimationEnabled: c.Animate,
		AnimationSpeed:   c.Speed,
		CameraX:          c.X,
		CameraY:          c.Y,
		CameraZoom:       c.Zoom,
	}
}

func FromEngine(c engine.Controls) Controls {
	return Controls{
		Animate: c.AnimationEnabled,
		Speed:   c.AnimationSpeed,
		X:       c.CameraX,
		Y:       c.CameraY,
		Zoom:    c.CameraZoom,
	}
}

// NewCamera builds the configured camera for the initial viewport.
func (c Config) NewCamera() engine.Camera {
	vp := c.Viewport()

	if c.Camera.Kind == Perspective {
		cam := engine.NewPerspectiveCamera(c.Camera.FOV, c.Camera.Near, c.Camera.Far, vp)
		cam.SetPosition(c.Camera.Position[0], c.Camera.Position[1], c.Camera.Position[2])
		return cam
	}
	return engine.NewOrthographicCamera(c.Camera.Width, c.Camera.Height, vp)
}
