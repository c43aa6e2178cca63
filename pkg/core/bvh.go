package core

import (
	"sort"
)

// BVHConfig controls how BVH nodes traverse their children
type BVHConfig struct {
	// NarrowTraversal shrinks tMax to the left child's hit before testing the
	// right child. Results are identical; fewer primitives get tested.
	NarrowTraversal bool
}

// BVHNode is an internal node of a bounding volume hierarchy. Children are
// either other nodes or leaf primitives.
type BVHNode struct {
	Left   Hittable
	Right  Hittable
	Box    AABB
	narrow bool
}

// NewBVHNode wraps two children and caches the box surrounding both
func NewBVHNode(left, right Hittable) *BVHNode {
	return &BVHNode{
		Left:  left,
		Right: right,
		Box:   SurroundingBox(left.BoundingBox(), right.BoundingBox()),
	}
}

// BuildBVH builds a hierarchy over objects using a median split on centroids.
// The input slice is left untouched.
func BuildBVH(objects []Hittable) (Hittable, error) {
	return BuildBVHWithConfig(objects, BVHConfig{})
}

// BuildBVHWithConfig builds a hierarchy using the given traversal config
func BuildBVHWithConfig(objects []Hittable, config BVHConfig) (Hittable, error) {
	if len(objects) == 0 {
		return nil, ErrEmptyScene
	}

	// Sorting reorders in place, so work on a copy
	objectsCopy := make([]Hittable, len(objects))
	copy(objectsCopy, objects)

	b := bvhBuilder{objects: objectsCopy, config: config}
	return b.build(0, len(objectsCopy)), nil
}

type bvhBuilder struct {
	objects []Hittable
	config  BVHConfig
}

func (b *bvhBuilder) node(left, right Hittable) *BVHNode {
	n := NewBVHNode(left, right)
	n.narrow = b.config.NarrowTraversal
	return n
}

// build recursively partitions objects[start:end]
func (b *bvhBuilder) build(start, end int) Hittable {
	count := end - start
	switch count {
	case 1:
		return b.objects[start]
	case 2:
		return b.node(b.objects[start], b.objects[start+1])
	}

	// Split along the longest axis of the centroid bounds, not the primitive bounds
	centroidBounds := NewAABBFromPoints(b.objects[start].Centroid())
	for i := start + 1; i < end; i++ {
		c := b.objects[i].Centroid()
		centroidBounds.Min = centroidBounds.Min.Min(c)
		centroidBounds.Max = centroidBounds.Max.Max(c)
	}

	axis := centroidBounds.LongestAxis()
	sortByCentroid(b.objects[start:end], axis)

	mid := start + count/2
	return b.node(b.build(start, mid), b.build(mid, end))
}

// sortByCentroid sorts objects by their centroid along the specified axis
func sortByCentroid(objects []Hittable, axis int) {
	sort.Slice(objects, func(i, j int) bool {
		return objects[i].Centroid().Index(axis) < objects[j].Centroid().Index(axis)
	})
}

// Hit returns the nearest hit among both children
func (n *BVHNode) Hit(ray Ray, tMin, tMax float64) (HitRecord, bool) {
	if !n.Box.Hit(ray, tMin, tMax) {
		return HitRecord{}, false
	}

	leftHit, hitLeft := n.Left.Hit(ray, tMin, tMax)

	rightMax := tMax
	if n.narrow && hitLeft {
		rightMax = leftHit.T
	}
	rightHit, hitRight := n.Right.Hit(ray, tMin, rightMax)

	switch {
	case hitLeft && hitRight:
		if leftHit.T <= rightHit.T {
			return leftHit, true
		}
		return rightHit, true
	case hitLeft:
		return leftHit, true
	case hitRight:
		return rightHit, true
	}
	return HitRecord{}, false
}

// BoundingBox returns the cached box surrounding both children
func (n *BVHNode) BoundingBox() AABB {
	return n.Box
}

// Centroid returns the center of the node's bounding box
func (n *BVHNode) Centroid() Vec3 {
	return n.Box.Center()
}

// BVHStats contains statistics about the BVH structure
type BVHStats struct {
	TotalNodes    int // Internal nodes plus leaves
	InternalNodes int
	LeafNodes     int
	MaxDepth      int
	AvgDepth      float64 // Mean leaf depth
}

// CollectBVHStats walks the hierarchy rooted at root
func CollectBVHStats(root Hittable) BVHStats {
	if root == nil {
		return BVHStats{}
	}

	stats := BVHStats{}
	collectStats(root, 0, &stats)

	if stats.LeafNodes > 0 {
		stats.AvgDepth = stats.AvgDepth / float64(stats.LeafNodes)
	}
	return stats
}

func collectStats(node Hittable, depth int, stats *BVHStats) {
	stats.TotalNodes++
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}

	inner, ok := node.(*BVHNode)
	if !ok {
		stats.LeafNodes++
		stats.AvgDepth += float64(depth) // Accumulate depth for average calculation
		return
	}

	stats.InternalNodes++
	collectStats(inner.Left, depth+1, stats)
	collectStats(inner.Right, depth+1, stats)
}
