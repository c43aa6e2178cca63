package cmd

import (
	"github.com/df07/orbitrace/pkg/core"
	"github.com/df07/orbitrace/pkg/renderer"
	"github.com/df07/orbitrace/pkg/scene"
	"github.com/urfave/cli"
)

// Flags shared by every command that builds a scene.
var sceneFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "scene, s",
		Value: "default",
		Usage: "built-in scene name (see the scenes command)",
	},
	cli.Float64Flag{
		Name:  "radius",
		Value: 1.5,
		Usage: "radius of the focus sphere",
	},
	cli.BoolFlag{
		Name:  "narrow",
		Usage: "narrow the ray interval between BVH siblings",
	},
}

// Flags shared by every command that renders.
var renderFlags = []cli.Flag{
	cli.IntFlag{
		Name:  "width",
		Value: 640,
		Usage: "frame width",
	},
	cli.IntFlag{
		Name:  "height",
		Value: 480,
		Usage: "frame height",
	},
	cli.IntFlag{
		Name:  "workers, w",
		Value: 0,
		Usage: "number of render workers (0 = logical CPU count)",
	},
	cli.IntFlag{
		Name:  "shadow-samples",
		Value: 8,
		Usage: "soft shadow samples per hit",
	},
	cli.Float64Flag{
		Name:  "light-radius",
		Value: 1.0,
		Usage: "radius of the spherical area light (0 for hard shadows)",
	},
	cli.Float64Flag{
		Name:  "light-intensity",
		Value: 3.0,
		Usage: "light intensity",
	},
	cli.Float64Flag{
		Name:  "roughness",
		Value: 0.35,
		Usage: "surface roughness in [0, 1]",
	},
	cli.Float64Flag{
		Name:  "metallic",
		Value: 0.05,
		Usage: "surface metalness in [0, 1]",
	},
	cli.BoolFlag{
		Name:  "debug-normals",
		Usage: "shade with surface normals instead of lighting",
	},
}

// Flags overriding the scene's suggested viewpoint.
var cameraFlags = []cli.Flag{
	cli.Float64Flag{
		Name:  "yaw",
		Usage: "camera yaw in radians",
	},
	cli.Float64Flag{
		Name:  "pitch",
		Usage: "camera pitch in radians",
	},
	cli.Float64Flag{
		Name:  "distance",
		Usage: "camera distance from the target",
	},
	cli.Float64Flag{
		Name:  "fov",
		Value: 45,
		Usage: "vertical field of view in degrees",
	},
}

// SceneFlags returns the flags that select and shape a scene.
func SceneFlags() []cli.Flag {
	return append([]cli.Flag(nil), sceneFlags...)
}

// RenderFlags returns the scene, shading and camera flags of the render commands.
func RenderFlags() []cli.Flag {
	var flags []cli.Flag
	for _, group := range [][]cli.Flag{sceneFlags, renderFlags, cameraFlags} {
		flags = append(flags, group...)
	}
	return flags
}

// paramsFromFlags maps command flags onto the default render params.
func paramsFromFlags(ctx *cli.Context) renderer.Params {
	params := renderer.DefaultParams()
	params.NarrowTraversal = ctx.Bool("narrow")
	if ctx.IsSet("radius") {
		params.Sphere.Radius = ctx.Float64("radius")
	}
	if ctx.IsSet("shadow-samples") {
		params.ShadowSamples = ctx.Int("shadow-samples")
	}
	if ctx.IsSet("light-radius") {
		params.LightRadius = ctx.Float64("light-radius")
	}
	if ctx.IsSet("light-intensity") {
		params.LightIntensity = ctx.Float64("light-intensity")
	}
	if ctx.IsSet("roughness") {
		params.Roughness = ctx.Float64("roughness")
	}
	if ctx.IsSet("metallic") {
		params.Metallic = ctx.Float64("metallic")
	}
	params.DebugNormals = ctx.Bool("debug-normals")
	return params
}

// loadScene builds the selected scene from params.
func loadScene(ctx *cli.Context, params *renderer.Params) (*scene.Scene, error) {
	return scene.New(ctx.String("scene"), params)
}

// cameraFromFlags starts from the scene's viewpoint and applies flag overrides.
func cameraFromFlags(ctx *cli.Context, sc *scene.Scene) *renderer.OrbitCamera {
	camera := sc.Camera()
	yaw, pitch, distance := camera.Yaw, camera.Pitch, camera.Distance
	if ctx.IsSet("yaw") {
		yaw = ctx.Float64("yaw")
	}
	if ctx.IsSet("pitch") {
		pitch = ctx.Float64("pitch")
	}
	if ctx.IsSet("distance") {
		distance = ctx.Float64("distance")
	}
	camera.SetOrbit(yaw, pitch, distance)
	camera.ClampTargets()
	camera.Pitch, camera.Distance = camera.PitchTarget, camera.DistanceTarget
	if ctx.IsSet("fov") {
		camera.FOVDegrees = ctx.Float64("fov")
	}
	return camera
}

// workersFromFlags resolves the worker flag, 0 meaning one per logical CPU.
func workersFromFlags(ctx *cli.Context) int {
	if n := ctx.Int("workers"); n > 0 {
		return n
	}
	return renderer.DefaultWorkers()
}

// countPrimitives returns how many primitives of each kind a list holds.
func countPrimitives(objects []core.Hittable) map[string]int {
	counts := make(map[string]int)
	for _, obj := range objects {
		counts[primitiveKind(obj)]++
	}
	return counts
}
