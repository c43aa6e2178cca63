package core

import (
	"math/rand"
	"testing"
)

func TestAABB_Hit(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))

	tests := []struct {
		name     string
		ray      Ray
		tMin     float64
		tMax     float64
		expected bool
	}{
		{"straight through", NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, 1)), 0, 100, true},
		{"diagonal through", NewRay(NewVec3(-5, -5, -5), NewVec3(1, 1, 1)), 0, 100, true},
		{"negative direction", NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, -1)), 0, 100, true},
		{"origin inside", NewRay(NewVec3(0, 0, 0), NewVec3(1, 0, 0)), 0, 100, true},
		{"parallel outside slab", NewRay(NewVec3(2, 0, -5), NewVec3(0, 0, 1)), 0, 100, false},
		{"parallel inside slab", NewRay(NewVec3(0.5, 0.5, -5), NewVec3(0, 0, 1)), 0, 100, true},
		{"pointing away", NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, -1)), 0, 100, false},
		{"passes beside", NewRay(NewVec3(0, 3, -5), NewVec3(0, 0, 1)), 0, 100, false},
		{"interval ends before box", NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, 1)), 0, 3, false},
		{"interval starts after box", NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, 1)), 7, 100, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := box.Hit(tt.ray, tt.tMin, tt.tMax); got != tt.expected {
				t.Errorf("Expected hit=%v, got %v", tt.expected, got)
			}
		})
	}
}

func TestAABB_HitRequiresNonEmptyInterval(t *testing.T) {
	// A flat box collapses entry and exit onto the same t, which is not a hit
	flat := NewAABB(NewVec3(-1, -1, 0), NewVec3(1, 1, 0))
	ray := NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, 1))
	if flat.Hit(ray, 0, 100) {
		t.Error("Expected zero-thickness box to report a miss")
	}
}

func TestAABB_FromPoints(t *testing.T) {
	single := NewAABBFromPoints(NewVec3(1, 2, 3))
	if single.Min != single.Max || single.Size() != (Vec3{}) {
		t.Errorf("Expected zero-extent box, got %v", single)
	}

	box := NewAABBFromPoints(NewVec3(1, -2, 3), NewVec3(-1, 2, 0), NewVec3(0, 0, 5))
	if box.Min != NewVec3(-1, -2, 0) || box.Max != NewVec3(1, 2, 5) {
		t.Errorf("Unexpected bounds %v", box)
	}
}

func TestSurroundingBox_ContainsBoth(t *testing.T) {
	random := rand.New(rand.NewSource(7))
	randomBox := func() AABB {
		a := NewVec3(random.Float64()*10-5, random.Float64()*10-5, random.Float64()*10-5)
		b := NewVec3(random.Float64()*10-5, random.Float64()*10-5, random.Float64()*10-5)
		return NewAABBFromPoints(a, b)
	}

	for i := 0; i < 200; i++ {
		a, b := randomBox(), randomBox()
		u := SurroundingBox(a, b)

		if !u.Contains(a) || !u.Contains(b) {
			t.Fatalf("Union %v does not contain %v and %v", u, a, b)
		}
		if u.Min != a.Min.Min(b.Min) || u.Max != a.Max.Max(b.Max) {
			t.Fatalf("Union %v is not the tightest box around %v and %v", u, a, b)
		}
		if a.Union(b) != u {
			t.Fatalf("Union and SurroundingBox disagree")
		}
	}
}

func TestAABB_LongestAxis(t *testing.T) {
	tests := []struct {
		name     string
		size     Vec3
		expected int
	}{
		{"x longest", NewVec3(3, 1, 1), 0},
		{"y longest", NewVec3(1, 3, 1), 1},
		{"z longest", NewVec3(1, 1, 3), 2},
		{"x ties y", NewVec3(2, 2, 1), 1},
		{"y ties z", NewVec3(1, 2, 2), 2},
		{"all equal", NewVec3(1, 1, 1), 2},
		{"zero extent", NewVec3(0, 0, 0), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			box := NewAABB(Vec3{}, tt.size)
			if got := box.LongestAxis(); got != tt.expected {
				t.Errorf("Expected axis %d, got %d", tt.expected, got)
			}
		})
	}
}
