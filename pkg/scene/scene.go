package scene

import (
	"fmt"
	"sort"

	"github.com/df07/orbitrace/pkg/core"
	"github.com/df07/orbitrace/pkg/renderer"
)

// Scene is a named primitive list with a suggested viewpoint
type Scene struct {
	Name        string
	Description string
	Objects     []core.Hittable

	// Suggested orbit; the renderer clamps pitch and distance
	Target   core.Vec3
	Yaw      float64
	Pitch    float64
	Distance float64
}

// SceneInfo describes a built-in scene for listings
type SceneInfo struct {
	Name        string
	Description string
}

const (
	defaultDescription    = "Single sphere in front of a triangle backdrop"
	sphereGridDescription = "The sphere surrounded by a grid of small spheres on a ground sphere"
	gemsDescription       = "The sphere ringed by octahedron triangle meshes"
)

type builder struct {
	description string
	build       func(params *renderer.Params) *Scene
}

var builtins = map[string]builder{
	"default": {
		description: defaultDescription,
		build:       NewDefaultScene,
	},
	"spheregrid": {
		description: sphereGridDescription,
		build:       NewSphereGridScene,
	},
	"gems": {
		description: gemsDescription,
		build:       NewGemsScene,
	},
}

// New builds the built-in scene called name from params
func New(name string, params *renderer.Params) (*Scene, error) {
	b, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q", name)
	}
	return b.build(params), nil
}

// List returns the built-in scenes sorted by name
func List() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtins))
	for name, b := range builtins {
		scenes = append(scenes, SceneInfo{Name: name, Description: b.description})
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})
	return scenes
}

// Camera returns an orbit camera settled on the scene's suggested viewpoint
func (s *Scene) Camera() *renderer.OrbitCamera {
	camera := renderer.NewOrbitCamera()
	camera.Target = s.Target
	camera.SetOrbit(s.Yaw, s.Pitch, s.Distance)
	return camera
}

// NewDefaultScene returns the params sphere and the fixed backdrop triangle
func NewDefaultScene(params *renderer.Params) *Scene {
	return &Scene{
		Name:        "default",
		Description: defaultDescription,
		Objects:     params.SceneObjects(),
		Yaw:         0,
		Pitch:       0.2,
		Distance:    6,
	}
}
