package cmd

import (
	"io"

	"github.com/der-antikeks/flatscene/engine"
	"github.com/der-antikeks/flatscene/glcontext"
	"github.com/der-antikeks/flatscene/shaders"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Compile every library shader in a hidden window and print the attribute
// and uniform slots each one resolved.
func Locations(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	setupLogging(ctx, cfg)
	if err != nil {
		return err
	}

	window, err := glcontext.NewWindow(glcontext.WindowOptions{
		Title:    cfg.Window.Title,
		Viewport: engine.Viewport{Width: 1, Height: 1},
		Hidden:   true,
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

	var programs []namedProgram
	for _, name := range shaders.Names() {
		prg, err := shaders.Build(gl, name)
		if prg == nil {
			return err
		}
		if err != nil {
			logger.Errorf("shader %q: %v", name, err)
		}
		defer prg.Dispose()

		programs = append(programs, namedProgram{name, prg})
	}

	writeLocations(ctx.App.Writer, programs)
	return nil
}

type namedProgram struct {
	name string
	prg  *engine.Program
}

func writeLocations(w io.Writer, programs []namedProgram) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Shader", "Kind", "Name", "Variable", "Location"})

	for _, p := range programs {
		for _, a := range engine.Attributes {
			table.Append([]string{p.name, "attribute", string(a), a.Variable(), p.prg.Attribute(a).String()})
		}
		for _, u := range engine.Uniforms {
			table.Append([]string{p.name, "uniform", string(u), u.Variable(), p.prg.Uniform(u).String()})
		}
	}

	table.Render()
}
