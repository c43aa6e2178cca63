package renderer

import (
	"image/color"
	"time"

	"github.com/df07/orbitrace/pkg/core"
)

// BandStats records how long one worker spent on its rows
type BandStats struct {
	Worker     int
	Band       RowBand
	RenderTime time.Duration
}

// FramePercent returns the share of the frame's rows this band covered
func (bs BandStats) FramePercent(height int) float64 {
	if height <= 0 {
		return 0
	}
	return 100.0 * float64(bs.Band.Rows()) / float64(height)
}

// FrameStats contains statistics about a single render call
type FrameStats struct {
	Width, Height int
	Primitives    int
	BVH           core.BVHStats
	BuildTime     time.Duration // BVH construction
	RenderTime    time.Duration // Whole call, including the BVH build
	Bands         []BandStats
}

// TotalPixels returns the number of pixels written this frame
func (fs FrameStats) TotalPixels() int {
	return fs.Width * fs.Height
}

// AverageLuminance returns the mean Rec. 709 luminance of pixels in [0, 1]
func AverageLuminance(pixels []color.RGBA) float64 {
	if len(pixels) == 0 {
		return 0
	}
	total := 0.0
	for _, p := range pixels {
		total += 0.2126*float64(p.R) + 0.7152*float64(p.G) + 0.0722*float64(p.B)
	}
	return total / (255.0 * float64(len(pixels)))
}
