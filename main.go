package main

import (
	"os"
	"runtime"

	"github.com/der-antikeks/flatscene/cmd"
	"github.com/urfave/cli"
)

// glfw and OpenGL calls must stay on the main thread
func init() {
	runtime.LockOSThread()
}

func main() {
	app := cli.NewApp()
	app.Name = "flatscene"
	app.Usage = "render an animated 2D scene with OpenGL"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
		cli.StringFlag{
			Name:  "config, c",
			Usage: "YAML configuration file",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "run",
			Usage: "open a window and animate the demo scene",
			Description: `
Draw a black backdrop, three orbiting triangles and three pulsing rectangles.

  space      pause or resume the animation
  + / -      animation speed
  arrows     pan the camera while held
  q / e      zoom out / in, also the scroll wheel
  r          reset the controls
  escape     quit`,
			Flags:  cmd.WindowFlags,
			Action: cmd.Run,
		},
		{
			Name:   "locations",
			Usage:  "compile the shader library and list the resolved attribute and uniform slots",
			Flags:  cmd.WindowFlags,
			Action: cmd.Locations,
		},
	}

	if err := app.Run(os.Args); err != nil {
		cmd.Fatal(err)
	}
}
