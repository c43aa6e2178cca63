package geometry

import (
	"math"

	"github.com/df07/orbitrace/pkg/core"
)

// triangleEpsilon rejects rays that are parallel or nearly parallel to the triangle plane
const triangleEpsilon = 1e-6

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	V0, V1, V2 core.Vec3 // The three vertices
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(v0, v1, v2 core.Vec3) *Triangle {
	return &Triangle{V0: v0, V1: v1, V2: v2}
}

// Normal returns the flat face normal. Swapping the winding flips it.
func (t *Triangle) Normal() core.Vec3 {
	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)
	return edge1.Cross(edge2).Normalize()
}

// Hit tests if a ray intersects with the triangle using the Möller-Trumbore algorithm.
// Both faces are hittable and the normal is never flipped towards the ray.
func (t *Triangle) Hit(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)

	h := ray.Direction.Cross(edge2)
	det := edge1.Dot(h)
	if math.Abs(det) < triangleEpsilon {
		return core.HitRecord{}, false
	}

	f := 1.0 / det
	s := ray.Origin.Subtract(t.V0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return core.HitRecord{}, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return core.HitRecord{}, false
	}

	tParam := f * edge2.Dot(q)
	if tParam < tMin || tParam > tMax {
		return core.HitRecord{}, false
	}

	return core.HitRecord{
		T:      tParam,
		Point:  ray.At(tParam),
		Normal: edge1.Cross(edge2).Normalize(),
	}, true
}

// BoundingBox returns the axis-aligned bounding box for this triangle
func (t *Triangle) BoundingBox() core.AABB {
	return core.NewAABBFromPoints(t.V0, t.V1, t.V2)
}

// Centroid returns the mean of the three vertices
func (t *Triangle) Centroid() core.Vec3 {
	return t.V0.Add(t.V1).Add(t.V2).Divide(3)
}
