package scene

import (
	"github.com/df07/orbitrace/pkg/core"
	"github.com/df07/orbitrace/pkg/geometry"
	"github.com/df07/orbitrace/pkg/renderer"
)

const (
	gridSize      = 9
	gridSpacing   = 1.0
	gridRadius    = 0.3
	groundRadius  = 1000.0
	groundSurface = -1.5
)

// NewSphereGridScene places a gridSize x gridSize grid of small spheres on a
// ground sphere, leaving room around the params sphere.
func NewSphereGridScene(params *renderer.Params) *Scene {
	focus := params.Sphere
	ground := geometry.NewSphere(core.NewVec3(0, groundSurface-groundRadius, 0), groundRadius)
	objects := []core.Hittable{&focus, ground}

	half := float64(gridSize-1) / 2
	clearance := focus.Radius + gridRadius
	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			center := core.NewVec3(
				focus.Center.X+(float64(i)-half)*gridSpacing,
				groundSurface+gridRadius,
				focus.Center.Z+(float64(j)-half)*gridSpacing,
			)
			if center.Subtract(focus.Center).Length() < clearance {
				continue
			}
			objects = append(objects, geometry.NewSphere(center, gridRadius))
		}
	}

	return &Scene{
		Name:        "spheregrid",
		Description: sphereGridDescription,
		Objects:     objects,
		Target:      focus.Center,
		Yaw:         0.5,
		Pitch:       0.45,
		Distance:    11,
	}
}
