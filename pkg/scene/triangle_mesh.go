package scene

import (
	"math"

	"github.com/df07/orbitrace/pkg/core"
	"github.com/df07/orbitrace/pkg/geometry"
	"github.com/df07/orbitrace/pkg/renderer"
)

const (
	gemCount      = 6
	gemRadius     = 0.6
	gemRingRadius = 3.2
)

// NewOctahedron returns the 8 outward-wound triangles of an octahedron.
// Its faces are never axis-aligned, so no pair of them has a flat bounding box.
func NewOctahedron(center core.Vec3, radius float64) []core.Hittable {
	px := center.Add(core.NewVec3(radius, 0, 0))
	nx := center.Add(core.NewVec3(-radius, 0, 0))
	py := center.Add(core.NewVec3(0, radius, 0))
	ny := center.Add(core.NewVec3(0, -radius, 0))
	pz := center.Add(core.NewVec3(0, 0, radius))
	nz := center.Add(core.NewVec3(0, 0, -radius))

	return []core.Hittable{
		geometry.NewTriangle(px, py, pz),
		geometry.NewTriangle(pz, py, nx),
		geometry.NewTriangle(nx, py, nz),
		geometry.NewTriangle(nz, py, px),
		geometry.NewTriangle(px, pz, ny),
		geometry.NewTriangle(pz, nx, ny),
		geometry.NewTriangle(nx, nz, ny),
		geometry.NewTriangle(nz, px, ny),
	}
}

// NewGemsScene rings the params sphere with octahedron meshes
func NewGemsScene(params *renderer.Params) *Scene {
	focus := params.Sphere
	objects := []core.Hittable{&focus}

	for i := 0; i < gemCount; i++ {
		angle := 2 * math.Pi * float64(i) / gemCount
		center := focus.Center.Add(core.NewVec3(
			gemRingRadius*math.Sin(angle),
			0.4*math.Cos(3*angle),
			gemRingRadius*math.Cos(angle),
		))
		objects = append(objects, NewOctahedron(center, gemRadius)...)
	}

	return &Scene{
		Name:        "gems",
		Description: gemsDescription,
		Objects:     objects,
		Target:      focus.Center,
		Yaw:         0.3,
		Pitch:       0.35,
		Distance:    9,
	}
}
