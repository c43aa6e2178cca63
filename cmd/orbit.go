package cmd

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"

	"github.com/df07/orbitrace/pkg/core"
	"github.com/df07/orbitrace/pkg/log"
	"github.com/df07/orbitrace/pkg/renderer"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Render a sequence of frames while orbiting the camera around the scene.
//
// Each frame feeds a constant drag and wheel delta through the camera input
// mapping, eases the camera and re-renders the scene into the same buffer.
func RenderOrbit(ctx *cli.Context) error {
	setupLogging(ctx)

	params := paramsFromFlags(ctx)
	sc, err := loadScene(ctx, &params)
	if err != nil {
		return err
	}
	camera := cameraFromFlags(ctx, sc)

	config := renderer.DefaultOrbitConfig()
	if ctx.IsSet("width") {
		config.Width = ctx.Int("width")
	}
	if ctx.IsSet("height") {
		config.Height = ctx.Int("height")
	}
	if ctx.IsSet("workers") {
		config.NumWorkers = ctx.Int("workers")
	}
	if ctx.IsSet("frames") {
		config.Frames = ctx.Int("frames")
	}
	if ctx.IsSet("dt") {
		config.FrameTime = ctx.Float64("dt")
	}
	if config.Width <= 0 || config.Height <= 0 {
		return fmt.Errorf("invalid frame size %dx%d", config.Width, config.Height)
	}
	input := renderer.FrameInput{
		DragX: ctx.Float64("drag-x"),
		DragY: ctx.Float64("drag-y"),
		Wheel: ctx.Float64("wheel"),
	}
	outDir := ctx.String("out-dir")

	// Per-frame lines are Info; skip formatting them when they would be dropped
	var frameLog core.Logger
	if log.IsEnabledFor(log.Info) {
		frameLog = log.PrintfAdapter{Logger: logger}
	}
	session := renderer.NewOrbitSession(sc.Objects, camera, &params, config, frameLog)
	logger.Infof("orbiting scene %q for %d frames", sc.Name, config.Frames)

	var frames []orbitRow
	err = session.Run(context.Background(), func(int) renderer.FrameInput {
		return input
	}, func(frame renderer.OrbitFrame) error {
		// Pixels is reused by the next frame
		frames = append(frames, orbitRow{frame, renderer.AverageLuminance(frame.Pixels)})
		if outDir == "" {
			return nil
		}
		path := filepath.Join(outDir, fmt.Sprintf("frame_%04d.png", frame.Index))
		return writePNG(path, renderer.ToImage(frame.Pixels, config.Width, config.Height))
	})
	if err != nil {
		return err
	}

	displayOrbitStats(frames)
	return nil
}

type orbitRow struct {
	renderer.OrbitFrame
	luminance float64
}

func displayOrbitStats(frames []orbitRow) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Frame", "Yaw", "Pitch", "Distance", "Luminance", "BVH build", "Render time"})

	var total float64
	for _, frame := range frames {
		table.Append([]string{
			fmt.Sprintf("%d", frame.Index),
			fmt.Sprintf("%.3f", frame.Yaw),
			fmt.Sprintf("%.3f", frame.Pitch),
			fmt.Sprintf("%.3f", frame.Distance),
			fmt.Sprintf("%.3f", frame.luminance),
			frame.Stats.BuildTime.String(),
			frame.Stats.RenderTime.String(),
		})
		total += frame.Stats.RenderTime.Seconds()
	}
	avg := 0.0
	if len(frames) > 0 {
		avg = total / float64(len(frames))
	}
	table.SetFooter([]string{"", "", "", "", "", "AVG FPS", fmt.Sprintf("%.1f", fps(avg))})

	table.Render()
	logger.Noticef("orbit statistics\n%s", buf.String())
}

func fps(secondsPerFrame float64) float64 {
	if secondsPerFrame <= 0 {
		return 0
	}
	return 1 / secondsPerFrame
}
