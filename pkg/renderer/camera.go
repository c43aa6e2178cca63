package renderer

import (
	"math"

	"github.com/df07/orbitrace/pkg/core"
)

const (
	pitchLimit  = 1.4
	minDistance = 2.0
	maxDistance = 20.0

	// smoothingRate gives an easing time constant of 1/8 s
	smoothingRate = 8.0

	// Input mapping scales for Orbit and Zoom
	orbitSensitivity = 0.01
	zoomSensitivity  = 0.6
)

// worldUp is the vertical axis yaw rotates around
var worldUp = core.NewVec3(0, 1, 0)

// OrbitCamera looks at Target from a point on a sphere around it. An input
// controller writes the *Target fields; SmoothStep eases the current values
// towards them once per frame.
type OrbitCamera struct {
	Target     core.Vec3
	Distance   float64
	Yaw        float64 // Radians around the vertical axis
	Pitch      float64 // Radians towards the vertical axis
	FOVDegrees float64 // Vertical field of view

	YawTarget      float64
	PitchTarget    float64
	DistanceTarget float64
}

// NewOrbitCamera creates a camera 6 units from the origin, tilted slightly down
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Target:         core.NewVec3(0, 0, 0),
		Distance:       6.0,
		Yaw:            0.0,
		Pitch:          0.2,
		FOVDegrees:     45.0,
		YawTarget:      0.0,
		PitchTarget:    0.2,
		DistanceTarget: 6.0,
	}
}

// SetOrbit sets both current and target yaw, pitch and distance, skipping smoothing
func (c *OrbitCamera) SetOrbit(yaw, pitch, distance float64) {
	c.Yaw, c.YawTarget = yaw, yaw
	c.Pitch, c.PitchTarget = pitch, pitch
	c.Distance, c.DistanceTarget = distance, distance
}

// ClampTargets bounds the pitch target to ±1.4 rad and the distance target to [2, 20]
func (c *OrbitCamera) ClampTargets() {
	c.PitchTarget = clamp(c.PitchTarget, -pitchLimit, pitchLimit)
	c.DistanceTarget = clamp(c.DistanceTarget, minDistance, maxDistance)
}

// Orbit moves the yaw and pitch targets by a pointer delta and clamps
func (c *OrbitCamera) Orbit(dx, dy float64) {
	c.YawTarget += dx * orbitSensitivity
	c.PitchTarget -= dy * orbitSensitivity
	c.ClampTargets()
}

// Zoom moves the distance target by a wheel delta and clamps
func (c *OrbitCamera) Zoom(wheel float64) {
	c.DistanceTarget -= wheel * zoomSensitivity
	c.ClampTargets()
}

// SmoothStep eases current values towards their targets, independent of frame rate
func (c *OrbitCamera) SmoothStep(dt float64) {
	t := 1.0 - math.Exp(-smoothingRate*dt)
	c.Yaw += (c.YawTarget - c.Yaw) * t
	c.Pitch += (c.PitchTarget - c.Pitch) * t
	c.Distance += (c.DistanceTarget - c.Distance) * t
}

// Position returns the eye point
func (c *OrbitCamera) Position() core.Vec3 {
	cosPitch := math.Cos(c.Pitch)
	return core.NewVec3(
		c.Target.X+c.Distance*cosPitch*math.Sin(c.Yaw),
		c.Target.Y+c.Distance*math.Sin(c.Pitch),
		c.Target.Z+c.Distance*cosPitch*math.Cos(c.Yaw),
	)
}

// GetRay returns a unit-direction ray through NDC coordinates (u, v) in [-1, 1]
func (c *OrbitCamera) GetRay(u, v, aspect float64) core.Ray {
	position := c.Position()
	forward := c.GetCameraForward()
	right := forward.Cross(worldUp).Normalize()
	up := right.Cross(forward)

	halfHeight := math.Tan(0.5 * c.FOVDegrees * math.Pi / 180.0)
	halfWidth := aspect * halfHeight

	direction := forward.
		Add(right.Multiply(u * halfWidth)).
		Add(up.Multiply(v * halfHeight)).
		Normalize()

	return core.NewRay(position, direction)
}

// GetCameraForward returns the unit view direction
func (c *OrbitCamera) GetCameraForward() core.Vec3 {
	return c.Target.Subtract(c.Position()).Normalize()
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(hi, v))
}
