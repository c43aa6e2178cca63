package renderer

import (
	"image"
	"image/color"
	"math/rand"
	"time"

	"github.com/df07/orbitrace/pkg/core"
	"github.com/df07/orbitrace/pkg/log"
)

const (
	primaryTMin = 0.001
	primaryTMax = 1000.0

	// Seed hash multipliers for per-band random generators
	seedRowPrime   = 73856093
	seedWidthPrime = 19349663
)

var logger = log.New("renderer")

// Render draws one frame of the params scene into pixels and returns the
// buffer resized to width*height; callers must use the returned slice.
// Degenerate sizes return pixels unchanged.
func Render(pixels []color.RGBA, width, height int, camera *OrbitCamera, params *Params, numWorkers int) []color.RGBA {
	pixels, _ = RenderFrame(pixels, width, height, camera, params, numWorkers)
	return pixels
}

// RenderFrame is Render plus per-frame statistics
func RenderFrame(pixels []color.RGBA, width, height int, camera *OrbitCamera, params *Params, numWorkers int) ([]color.RGBA, FrameStats) {
	// The params scene always holds two primitives, so this cannot fail
	pixels, stats, _ := RenderPrimitives(pixels, width, height, camera, params, params.SceneObjects(), numWorkers)
	return pixels, stats
}

// RenderPrimitives renders a caller-supplied primitive list. The objects are
// only read, and must not change until the call returns.
func RenderPrimitives(pixels []color.RGBA, width, height int, camera *OrbitCamera, params *Params, objects []core.Hittable, numWorkers int) ([]color.RGBA, FrameStats, error) {
	if width <= 0 || height <= 0 {
		return pixels, FrameStats{}, nil
	}

	start := time.Now()
	root, err := core.BuildBVHWithConfig(objects, params.bvhConfig())
	if err != nil {
		return pixels, FrameStats{}, err
	}
	buildTime := time.Since(start)

	pixels = resizePixels(pixels, width*height)

	numWorkers = ClampWorkers(numWorkers, height)
	bands := PartitionRows(height, numWorkers)
	logger.Debugf("frame %dx%d: %d primitives, %d bands of %d rows", width, height, len(objects), len(bands), bands[0].Rows())

	tracer := &bandTracer{
		pixels: pixels,
		width:  width,
		height: height,
		aspect: float64(width) / float64(height),
		camera: camera,
		params: params,
		scene:  root,
	}
	bandStats := runBands(bands, tracer.renderBand)

	return pixels, FrameStats{
		Width:      width,
		Height:     height,
		Primitives: len(objects),
		BVH:        core.CollectBVHStats(root),
		BuildTime:  buildTime,
		RenderTime: time.Since(start),
		Bands:      bandStats,
	}, nil
}

// resizePixels returns a buffer of exactly n pixels, reusing capacity when possible
func resizePixels(pixels []color.RGBA, n int) []color.RGBA {
	if cap(pixels) >= n {
		return pixels[:n]
	}
	return append(pixels[:cap(pixels)], make([]color.RGBA, n-cap(pixels))...)
}

// BandSeed returns the random seed for the band starting at row yStart
func BandSeed(yStart, width int) int64 {
	return int64(uint32(yStart)*seedRowPrime + uint32(width)*seedWidthPrime)
}

// bandTracer holds the read-only frame state shared by all bands
type bandTracer struct {
	pixels []color.RGBA
	width  int
	height int
	aspect float64
	camera *OrbitCamera
	params *Params
	scene  core.Hittable
}

// renderBand traces every pixel in the band's rows
func (bt *bandTracer) renderBand(band RowBand) {
	random := rand.New(rand.NewSource(BandSeed(band.Start, bt.width)))

	for y := band.Start; y < band.End; y++ {
		for x := 0; x < bt.width; x++ {
			bt.pixels[y*bt.width+x] = toRGBA(bt.tracePixel(x, y, random))
		}
	}
}

// tracePixel returns the color at pixel (x, y) sampled through its center
func (bt *bandTracer) tracePixel(x, y int, random *rand.Rand) core.Vec3 {
	u, v := PixelNDC(x, y, bt.width, bt.height)
	ray := bt.camera.GetRay(u, v, bt.aspect)

	hit, isHit := bt.scene.Hit(ray, primaryTMin, primaryTMax)
	if !isHit {
		return BackgroundColor(v)
	}

	viewDir := ray.Direction.Negate().Normalize()
	return ShadeHit(hit, viewDir, bt.params, bt.scene, random)
}

// PixelNDC maps a pixel center to normalized device coordinates, with v = 1 at the top
func PixelNDC(x, y, width, height int) (u, v float64) {
	u = 2.0*(float64(x)+0.5)/float64(width) - 1.0
	v = 1.0 - 2.0*(float64(y)+0.5)/float64(height)
	return u, v
}

// ToImage wraps a rendered buffer as an image for encoding
func ToImage(pixels []color.RGBA, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, pixels[y*width+x])
		}
	}
	return img
}
