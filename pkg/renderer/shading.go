package renderer

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/df07/orbitrace/pkg/core"
)

const (
	ambientFactor   = 0.12
	dielectricF0    = 0.04
	shadowBias      = 0.001 // Offset along the normal for shadow ray origins
	shadowTMin      = 0.001
	shadowLightGap  = 0.002 // Shadow rays stop this far short of the light
	minLightDist    = 1e-4
	specPowerMin    = 2.0
	specPowerRange  = 128.0
	fresnelExponent = 5.0
)

var (
	lightColor = core.NewVec3(1.0, 0.98, 0.92)

	backgroundBottom = core.NewVec3(0.12, 0.14, 0.18)
	backgroundTop    = core.NewVec3(0.02, 0.04, 0.08)
)

// FresnelSchlick approximates reflectance at the given cosine for base reflectance f0
func FresnelSchlick(cosTheta float64, f0 core.Vec3) core.Vec3 {
	t := math.Pow(1.0-clamp(cosTheta, 0, 1), fresnelExponent)
	return f0.Add(core.NewVec3(1, 1, 1).Subtract(f0).Multiply(t))
}

// SpecularPower maps roughness to a Blinn-Phong exponent in [2, 130]
func SpecularPower(roughness float64) float64 {
	return specPowerMin + math.Pow(1.0-roughness, 4.0)*specPowerRange
}

// BackgroundColor returns the vertical gradient for NDC v in [-1, 1]
func BackgroundColor(v float64) core.Vec3 {
	t := 0.5 * (v + 1.0)
	return backgroundBottom.Lerp(backgroundTop, t).Clamp(0, 1)
}

// ShadeHit lights a surface hit with a soft-shadowed spherical light. viewDir
// points from the hit towards the eye; scene answers shadow queries.
func ShadeHit(hit core.HitRecord, viewDir core.Vec3, params *Params, scene core.Hittable, random *rand.Rand) core.Vec3 {
	if params.DebugNormals {
		return hit.Normal.Add(core.NewVec3(1, 1, 1)).Multiply(0.5)
	}

	dielectric := core.NewVec3(dielectricF0, dielectricF0, dielectricF0)
	f0 := dielectric.Lerp(params.Albedo, params.Metallic)
	shaded := params.Albedo.Multiply(ambientFactor)

	diffuse := params.Albedo.Multiply(1.0 - params.Metallic)
	radiance := lightColor.Multiply(params.LightIntensity)
	specPower := SpecularPower(params.Roughness)

	samples := max(1, params.ShadowSamples)
	unoccluded := 0
	var lightAccum core.Vec3

	for i := 0; i < samples; i++ {
		lightPos := params.LightPosition.Add(sampleCubeDirection(random).Multiply(params.LightRadius))
		toLight := lightPos.Subtract(hit.Point)
		lightDist := toLight.Length()
		lightDir := toLight.Divide(max(minLightDist, lightDist))

		shadowRay := core.NewRay(hit.Point.Add(hit.Normal.Multiply(shadowBias)), lightDir)
		if _, occluded := scene.Hit(shadowRay, shadowTMin, lightDist-shadowLightGap); occluded {
			continue
		}

		nDotL := max(0, hit.Normal.Dot(lightDir))
		halfVec := lightDir.Add(viewDir).Normalize()
		nDotH := max(0, hit.Normal.Dot(halfVec))
		spec := math.Pow(nDotH, specPower)
		fresnel := FresnelSchlick(max(0, viewDir.Dot(halfVec)), f0)

		contribution := diffuse.Multiply(nDotL).Add(fresnel.Multiply(spec))
		lightAccum = lightAccum.Add(contribution.MultiplyVec(radiance))
		unoccluded++
	}

	if unoccluded > 0 {
		shaded = shaded.Add(lightAccum.Divide(float64(unoccluded)))
	}

	return shaded.Clamp(0, 1)
}

// sampleCubeDirection returns a normalized direction drawn uniformly from the [-1, 1] cube
func sampleCubeDirection(random *rand.Rand) core.Vec3 {
	return core.NewVec3(
		random.Float64()*2.0-1.0,
		random.Float64()*2.0-1.0,
		random.Float64()*2.0-1.0,
	).Normalize()
}

// toRGBA converts a [0, 1] color to 8-bit channels with rounding and full opacity
func toRGBA(c core.Vec3) color.RGBA {
	return color.RGBA{R: toByte(c.X), G: toByte(c.Y), B: toByte(c.Z), A: 255}
}

func toByte(v float64) uint8 {
	return uint8(clamp(v, 0, 1)*255.0 + 0.5)
}
