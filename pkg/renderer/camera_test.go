package renderer

import (
	"math"
	"testing"

	"github.com/df07/orbitrace/pkg/core"
)

func TestOrbitCamera_ClampTargets(t *testing.T) {
	tests := []struct {
		name             string
		pitch, distance  float64
		expectedPitch    float64
		expectedDistance float64
	}{
		{"within bounds", 0.5, 6, 0.5, 6},
		{"pitch too high", 3, 6, 1.4, 6},
		{"pitch too low", -3, 6, -1.4, 6},
		{"distance too near", 0, 0.5, 0, 2},
		{"distance negative", 0, -100, 0, 2},
		{"distance too far", 0, 50, 0, 20},
		{"extreme values", 1e308, -1e308, 1.4, 2},
		{"infinities", math.Inf(-1), math.Inf(1), -1.4, 20},
		{"at the limits", 1.4, 20, 1.4, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewOrbitCamera()
			c.PitchTarget = tt.pitch
			c.DistanceTarget = tt.distance
			c.ClampTargets()

			if c.PitchTarget != tt.expectedPitch {
				t.Errorf("Expected pitch target %f, got %f", tt.expectedPitch, c.PitchTarget)
			}
			if c.DistanceTarget != tt.expectedDistance {
				t.Errorf("Expected distance target %f, got %f", tt.expectedDistance, c.DistanceTarget)
			}
		})
	}
}

func TestOrbitCamera_OrbitAndZoomStayClamped(t *testing.T) {
	c := NewOrbitCamera()
	for i := 0; i < 100; i++ {
		c.Orbit(37, -400)
		c.Zoom(-25)
	}
	if c.PitchTarget < -pitchLimit || c.PitchTarget > pitchLimit {
		t.Errorf("Pitch target %f left [-1.4, 1.4]", c.PitchTarget)
	}
	if c.DistanceTarget != maxDistance {
		t.Errorf("Expected distance target %f, got %f", maxDistance, c.DistanceTarget)
	}
	if math.Abs(c.YawTarget-37) > 1e-9 {
		t.Errorf("Expected yaw target 37, got %f", c.YawTarget)
	}

	c.Zoom(1000)
	if c.DistanceTarget != minDistance {
		t.Errorf("Expected distance target %f, got %f", minDistance, c.DistanceTarget)
	}
}

func TestOrbitCamera_SmoothStepEquilibrium(t *testing.T) {
	c := NewOrbitCamera()
	c.SetOrbit(0.6, -0.3, 9)
	before := *c

	for _, dt := range []float64{0, 0.001, 1.0 / 60, 0.5, 10, 1e6} {
		c.SmoothStep(dt)
		if *c != before {
			t.Fatalf("dt=%f: state changed at equilibrium: %+v -> %+v", dt, before, *c)
		}
	}
}

func TestOrbitCamera_SmoothStepConverges(t *testing.T) {
	c := NewOrbitCamera()
	c.YawTarget = 1
	c.PitchTarget = -0.5
	c.DistanceTarget = 10

	// One step of 1/8 s closes 1 - e^-1 of the gap
	c.SmoothStep(0.125)
	expected := 1 - math.Exp(-1)
	if math.Abs(c.Yaw-expected) > 1e-12 {
		t.Errorf("Expected yaw %f after one time constant, got %f", expected, c.Yaw)
	}

	// Splitting the step in two lands on the same value
	split := NewOrbitCamera()
	split.YawTarget = 1
	split.SmoothStep(0.0625)
	split.SmoothStep(0.0625)
	if math.Abs(split.Yaw-c.Yaw) > 1e-12 {
		t.Errorf("Expected frame-rate independent easing, got %f vs %f", split.Yaw, c.Yaw)
	}

	for i := 0; i < 600; i++ {
		c.SmoothStep(1.0 / 60)
	}
	if math.Abs(c.Yaw-1) > 1e-9 || math.Abs(c.Pitch+0.5) > 1e-9 || math.Abs(c.Distance-10) > 1e-9 {
		t.Errorf("Expected convergence to targets, got yaw=%f pitch=%f distance=%f", c.Yaw, c.Pitch, c.Distance)
	}
}

func TestOrbitCamera_Position(t *testing.T) {
	tests := []struct {
		name             string
		yaw, pitch, dist float64
		expected         core.Vec3
	}{
		{"front", 0, 0, 6, core.NewVec3(0, 0, 6)},
		{"quarter turn", math.Pi / 2, 0, 4, core.NewVec3(4, 0, 0)},
		{"overhead tilt", 0, math.Pi / 2, 3, core.NewVec3(0, 3, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewOrbitCamera()
			c.SetOrbit(tt.yaw, tt.pitch, tt.dist)
			if got := c.Position(); got.Subtract(tt.expected).Length() > 1e-9 {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}

	c := NewOrbitCamera()
	c.Target = core.NewVec3(1, 2, 3)
	c.SetOrbit(0.7, 0.3, 5)
	if d := c.Position().Subtract(c.Target).Length(); math.Abs(d-5) > 1e-9 {
		t.Errorf("Expected eye 5 units from target, got %f", d)
	}
}

func TestOrbitCamera_GetRay(t *testing.T) {
	c := NewOrbitCamera()
	c.SetOrbit(0, 0, 6)

	center := c.GetRay(0, 0, 1)
	if center.Origin.Subtract(core.NewVec3(0, 0, 6)).Length() > 1e-9 {
		t.Errorf("Expected ray from the eye, got origin %v", center.Origin)
	}
	if center.Direction.Subtract(core.NewVec3(0, 0, -1)).Length() > 1e-9 {
		t.Errorf("Expected center ray towards target, got %v", center.Direction)
	}
	if center.Direction.Subtract(c.GetCameraForward()).Length() > 1e-12 {
		t.Errorf("Expected center ray along the camera forward %v, got %v", c.GetCameraForward(), center.Direction)
	}

	// Top edge of the viewport sits at the half field of view
	top := c.GetRay(0, 1, 1)
	angle := math.Acos(top.Direction.Dot(center.Direction))
	if math.Abs(angle-22.5*math.Pi/180) > 1e-9 {
		t.Errorf("Expected 22.5 degree half angle, got %f", angle*180/math.Pi)
	}
	if top.Direction.Y <= 0 {
		t.Errorf("Expected v=1 to point up, got %v", top.Direction)
	}

	// Positive u points right, and aspect widens the horizontal extent
	right := c.GetRay(1, 0, 2)
	if right.Direction.X <= 0 {
		t.Errorf("Expected u=1 to point right, got %v", right.Direction)
	}
	expectedTan := 2 * math.Tan(22.5*math.Pi/180)
	if got := right.Direction.X / -right.Direction.Z; math.Abs(got-expectedTan) > 1e-9 {
		t.Errorf("Expected horizontal tangent %f, got %f", expectedTan, got)
	}

	for _, uv := range [][2]float64{{-1, -1}, {0.3, -0.7}, {1, 1}} {
		ray := c.GetRay(uv[0], uv[1], 1.5)
		if math.Abs(ray.Direction.Length()-1) > 1e-9 {
			t.Errorf("Expected unit direction for %v, got length %f", uv, ray.Direction.Length())
		}
	}
}

func TestOrbitCamera_GetCameraForward(t *testing.T) {
	c := NewOrbitCamera()
	c.SetOrbit(math.Pi/2, 0, 6)

	forward := c.GetCameraForward()
	if forward.Subtract(core.NewVec3(-1, 0, 0)).Length() > 1e-9 {
		t.Errorf("Expected forward (-1, 0, 0), got %v", forward)
	}
}
