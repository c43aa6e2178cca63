package main

import (
	"fmt"
	"os"

	"github.com/df07/orbitrace/cmd"
	"github.com/urfave/cli"
)

func newApp() *cli.App {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "orbitrace"
	app.Usage = "ray cast spheres and triangles through a BVH from an orbit camera"
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
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a single frame to a png file",
			Description: `
Build the selected scene, construct its BVH and ray cast one frame with soft
shadows. Rows are split into one band per worker.`,
			Flags: withRenderFlags(
				[]cli.Flag{
					cli.StringFlag{
						Name:  "out, o",
						Value: "frame.png",
						Usage: "image filename for the rendered frame",
					},
				},
			),
			Action: cmd.RenderFrame,
		},
		{
			Name:  "orbit",
			Usage: "render a sequence of frames while orbiting the camera",
			Description: `
Feed a constant drag and wheel delta to the orbit camera every frame, ease it
towards its targets and re-render. Frames are written to --out-dir when set.
Unset --width and --height fall back to a 320x240 preview size.`,
			Flags: withRenderFlags(
				[]cli.Flag{
					cli.IntFlag{
						Name:  "frames, n",
						Value: 30,
						Usage: "number of frames",
					},
					cli.Float64Flag{
						Name:  "dt",
						Value: 1.0 / 60,
						Usage: "seconds of camera easing per frame",
					},
					cli.Float64Flag{
						Name:  "drag-x",
						Value: 8,
						Usage: "horizontal pointer drag per frame",
					},
					cli.Float64Flag{
						Name:  "drag-y",
						Value: 0,
						Usage: "vertical pointer drag per frame",
					},
					cli.Float64Flag{
						Name:  "wheel",
						Value: 0,
						Usage: "wheel steps per frame, positive zooms in",
					},
					cli.StringFlag{
						Name:  "out-dir",
						Usage: "directory for per-frame png files",
					},
				},
			),
			Action: cmd.RenderOrbit,
		},
		{
			Name:   "bvh",
			Usage:  "build a scene's BVH and print its statistics",
			Flags:  cmd.SceneFlags(),
			Action: cmd.DescribeBVH,
		},
		{
			Name:   "scenes",
			Usage:  "list built-in scenes",
			Action: cmd.ListScenes,
		},
	}

	return app
}

func withRenderFlags(local []cli.Flag) []cli.Flag {
	return append(local, cmd.RenderFlags()...)
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
