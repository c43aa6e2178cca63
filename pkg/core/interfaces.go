package core

import "errors"

// ErrEmptyScene is returned when a BVH or render is requested over no primitives
var ErrEmptyScene = errors.New("scene has no primitives")

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	T      float64 // Parameter t along the ray
	Point  Vec3    // Point of intersection
	Normal Vec3    // Unit surface normal, not oriented towards the ray
}

// Hittable is implemented by primitives and by BVH nodes
type Hittable interface {
	Hit(ray Ray, tMin, tMax float64) (HitRecord, bool)
	BoundingBox() AABB
	Centroid() Vec3
}

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}
