package renderer

import (
	"github.com/df07/orbitrace/pkg/core"
	"github.com/df07/orbitrace/pkg/geometry"
)

// Params is the per-frame render configuration
type Params struct {
	Sphere geometry.Sphere

	LightPosition  core.Vec3
	LightRadius    float64 // Spherical area light radius; 0 gives hard shadows
	LightIntensity float64
	ShadowSamples  int // Clamped to at least 1

	Albedo    core.Vec3
	Roughness float64 // 0 = mirror-sharp highlight, 1 = broad
	Metallic  float64 // 0 = dielectric, 1 = conductor

	DebugNormals bool // Shade with the remapped surface normal instead of lighting

	// NarrowTraversal builds the BVH with tMax narrowing between siblings
	NarrowTraversal bool
}

// DefaultParams returns the default scene: a terracotta sphere lit from the upper right
func DefaultParams() Params {
	return Params{
		Sphere:         geometry.Sphere{Center: core.NewVec3(0, 0, 0), Radius: 1.5},
		LightPosition:  core.NewVec3(3.5, 4.0, 2.0),
		LightRadius:    1.0,
		LightIntensity: 3.0,
		ShadowSamples:  8,
		Albedo:         core.NewVec3(0.9, 0.35, 0.25),
		Roughness:      0.35,
		Metallic:       0.05,
	}
}

// backdrop is the fixed triangle behind the sphere
var backdrop = geometry.Triangle{
	V0: core.NewVec3(-2.0, -1.0, -2.0),
	V1: core.NewVec3(2.0, -1.0, -2.0),
	V2: core.NewVec3(0.0, 1.5, -3.0),
}

// SceneObjects returns this frame's primitive list: the configured sphere plus the backdrop
func (p *Params) SceneObjects() []core.Hittable {
	sphere := p.Sphere
	tri := backdrop
	return []core.Hittable{&sphere, &tri}
}

// bvhConfig returns the traversal config selected by the params
func (p *Params) bvhConfig() core.BVHConfig {
	return core.BVHConfig{NarrowTraversal: p.NarrowTraversal}
}
