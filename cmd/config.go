package cmd

import (
	"github.com/der-antikeks/flatscene/config"
	"github.com/urfave/cli"
)

// Flags shared by the commands that open a window.
var WindowFlags = []cli.Flag{
	cli.IntFlag{
		Name:  "width",
		Usage: "window width, overrides the config file",
	},
	cli.IntFlag{
		Name:  "height",
		Usage: "window height, overrides the config file",
	},
	cli.StringFlag{
		Name:  "camera",
		Usage: "camera kind, orthographic or perspective",
	},
	cli.StringFlag{
		Name:  "shader",
		Usage: "shader from the library the scene is drawn with",
	},
}

// Read the --config file if given, then apply the command flags.
func loadConfig(ctx *cli.Context) (config.Config, error) {
	cfg := config.Default()

	if path := ctx.GlobalString("config"); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return cfg, err
		}
	}

	cfg = applyFlags(cfg, ctx)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func applyFlags(cfg config.Config, ctx *cli.Context) config.Config {
	if ctx.IsSet("width") {
		cfg.Window.Width = ctx.Int("width")
	}
	if ctx.IsSet("height") {
		cfg.Window.Height = ctx.Int("height")
	}
	if ctx.IsSet("camera") {
		cfg.Camera.Kind = config.CameraKind(ctx.String("camera"))
	}
	if ctx.IsSet("shader") {
		cfg.Shader = ctx.String("shader")
	}
	return cfg
}
