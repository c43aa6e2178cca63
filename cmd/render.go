package cmd

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/df07/orbitrace/pkg/renderer"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Render a still frame.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	params := paramsFromFlags(ctx)
	sc, err := loadScene(ctx, &params)
	if err != nil {
		return err
	}
	camera := cameraFromFlags(ctx, sc)

	width, height := ctx.Int("width"), ctx.Int("height")
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid frame size %dx%d", width, height)
	}

	logger.Infof("rendering scene %q (%d primitives) at %dx%d", sc.Name, len(sc.Objects), width, height)
	pixels, stats, err := renderer.RenderPrimitives(nil, width, height, camera, &params, sc.Objects, workersFromFlags(ctx))
	if err != nil {
		return err
	}

	imgFile := ctx.String("out")
	if err := writePNG(imgFile, renderer.ToImage(pixels, width, height)); err != nil {
		return err
	}
	logger.Noticef("wrote frame to %s", imgFile)

	displayFrameStats(stats)
	return nil
}

// writePNG encodes img to path, creating parent directories as needed.
func writePNG(path string, img image.Image) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}

func displayFrameStats(stats renderer.FrameStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Worker", "Rows", "% of frame", "Render time"})
	for _, stat := range stats.Bands {
		table.Append([]string{
			fmt.Sprintf("%d", stat.Worker),
			fmt.Sprintf("%d-%d", stat.Band.Start, stat.Band.End-1),
			fmt.Sprintf("%02.1f %%", stat.FramePercent(stats.Height)),
			stat.RenderTime.String(),
		})
	}
	table.SetFooter([]string{"", fmt.Sprintf("%d px", stats.TotalPixels()), "BVH " + stats.BuildTime.String(), stats.RenderTime.String()})

	table.Render()
	logger.Noticef("frame statistics\n%s", buf.String())
}
