package renderer

import (
	"context"
	"image/color"

	"github.com/df07/orbitrace/pkg/core"
)

// OrbitConfig contains configuration for a multi-frame orbit session
type OrbitConfig struct {
	Width, Height int
	NumWorkers    int     // Parallel workers per frame (0 = use CPU count)
	Frames        int     // Frames rendered by Run
	FrameTime     float64 // Seconds of camera smoothing per frame
}

// DefaultOrbitConfig returns sensible default values
func DefaultOrbitConfig() OrbitConfig {
	return OrbitConfig{
		Width:      320,
		Height:     240,
		NumWorkers: 0,
		Frames:     30,
		FrameTime:  1.0 / 60,
	}
}

// FrameInput is the raw pointer input accumulated over one frame
type FrameInput struct {
	DragX, DragY float64 // Pointer motion while dragging
	Wheel        float64 // Wheel steps, positive zooms in
}

// OrbitFrame is the result of one session step. Pixels aliases the session
// buffer and is overwritten by the next step.
type OrbitFrame struct {
	Index    int
	Pixels   []color.RGBA
	Stats    FrameStats
	Yaw      float64
	Pitch    float64
	Distance float64
}

// OrbitSession re-renders a fixed primitive list every frame from a moving
// orbit camera, reusing one pixel buffer across frames.
type OrbitSession struct {
	objects []core.Hittable
	camera  *OrbitCamera
	params  *Params
	config  OrbitConfig
	pixels  []color.RGBA
	frame   int
	logger  core.Logger
}

// nopLogger discards session output
type nopLogger struct{}

func (nopLogger) Printf(string, ...interface{}) {}

// NewOrbitSession creates a session over objects viewed through camera.
// A nil logger discards the per-frame log lines.
func NewOrbitSession(objects []core.Hittable, camera *OrbitCamera, params *Params, config OrbitConfig, logger core.Logger) *OrbitSession {
	if config.NumWorkers <= 0 {
		config.NumWorkers = DefaultWorkers()
	}
	if logger == nil {
		logger = nopLogger{}
	}
	return &OrbitSession{
		objects: objects,
		camera:  camera,
		params:  params,
		config:  config,
		logger:  logger,
	}
}

// Camera returns the session camera
func (s *OrbitSession) Camera() *OrbitCamera {
	return s.camera
}

// Step applies one frame of input, eases the camera and renders the frame
func (s *OrbitSession) Step(input FrameInput) (OrbitFrame, error) {
	if input.DragX != 0 || input.DragY != 0 {
		s.camera.Orbit(input.DragX, input.DragY)
	}
	if input.Wheel != 0 {
		s.camera.Zoom(input.Wheel)
	}
	// Targets may have been written directly since the last frame
	s.camera.ClampTargets()
	s.camera.SmoothStep(s.config.FrameTime)

	pixels, stats, err := RenderPrimitives(s.pixels, s.config.Width, s.config.Height, s.camera, s.params, s.objects, s.config.NumWorkers)
	if err != nil {
		return OrbitFrame{}, err
	}
	s.pixels = pixels
	s.frame++

	s.logger.Printf("Frame %d: yaw %.3f pitch %.3f distance %.3f in %v\n",
		s.frame, s.camera.Yaw, s.camera.Pitch, s.camera.Distance, stats.RenderTime)

	return OrbitFrame{
		Index:    s.frame,
		Pixels:   pixels,
		Stats:    stats,
		Yaw:      s.camera.Yaw,
		Pitch:    s.camera.Pitch,
		Distance: s.camera.Distance,
	}, nil
}

// Run renders config.Frames frames, asking input for each frame's input and
// handing every result to callback. Cancellation is checked between frames.
func (s *OrbitSession) Run(ctx context.Context, input func(frame int) FrameInput, callback func(OrbitFrame) error) error {
	for i := 0; i < s.config.Frames; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		frame, err := s.Step(input(i))
		if err != nil {
			return err
		}
		if err := callback(frame); err != nil {
			return err
		}
	}
	return nil
}
