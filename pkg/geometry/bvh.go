package geometry

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// noIndex marks a missing child or primitive reference in a bvhNode
const noIndex = -1

// bvhNode is a node of the flattened hierarchy. Leaves reference exactly one
// primitive; interior nodes reference two child nodes by index.
type bvhNode struct {
	box       core.AABB
	left      int32
	right     int32
	primitive int32
}

func (n *bvhNode) isLeaf() bool {
	return n.primitive != noIndex
}

// BVH represents a Bounding Volume Hierarchy for fast ray-object intersection.
// It is immutable after construction and safe for concurrent queries.
type BVH struct {
	nodes      []bvhNode
	primitives []Primitive
	root       int32
	depth      int
}

// NewBVH constructs a BVH from a slice of bounded primitives.
// Each node sorts its primitives along an axis drawn from rng by the minimum
// corner of their bounding boxes and splits the list at the midpoint.
func NewBVH(primitives []Primitive, rng *rand.Rand) (*BVH, error) {
	if len(primitives) == 0 {
		return nil, ErrEmptyBVH
	}

	// Copy so the caller's slice is never reordered
	bvh := &BVH{
		primitives: make([]Primitive, len(primitives)),
		nodes:      make([]bvhNode, 0, 2*len(primitives)),
	}
	copy(bvh.primitives, primitives)

	boxes := make([]core.AABB, len(primitives))
	indices := make([]int32, len(primitives))
	for i := range bvh.primitives {
		box, bounded := bvh.primitives[i].BoundingBox()
		if !bounded {
			return nil, fmt.Errorf("%w: primitive %d is a %s", ErrUnboundedPrimitive, i, bvh.primitives[i].Kind)
		}
		boxes[i] = box
		indices[i] = int32(i)
	}

	bvh.root = bvh.build(indices, boxes, rng, 1)
	return bvh, nil
}

// build appends the subtree for indices and returns the index of its root node
func (bvh *BVH) build(indices []int32, boxes []core.AABB, rng *rand.Rand, depth int) int32 {
	if depth > bvh.depth {
		bvh.depth = depth
	}

	axis := rng.Intn(3)
	sort.SliceStable(indices, func(i, j int) bool {
		return boxes[indices[i]].Min.Axis(axis) < boxes[indices[j]].Min.Axis(axis)
	})

	switch len(indices) {
	case 1:
		return bvh.addLeaf(indices[0], boxes)
	case 2:
		if depth+1 > bvh.depth {
			bvh.depth = depth + 1
		}
		left := bvh.addLeaf(indices[0], boxes)
		right := bvh.addLeaf(indices[1], boxes)
		return bvh.addInterior(left, right)
	default:
		mid := len(indices) / 2
		left := bvh.build(indices[:mid], boxes, rng, depth+1)
		right := bvh.build(indices[mid:], boxes, rng, depth+1)
		return bvh.addInterior(left, right)
	}
}

func (bvh *BVH) addLeaf(primitive int32, boxes []core.AABB) int32 {
	bvh.nodes = append(bvh.nodes, bvhNode{
		box:       boxes[primitive],
		left:      noIndex,
		right:     noIndex,
		primitive: primitive,
	})
	return int32(len(bvh.nodes) - 1)
}

func (bvh *BVH) addInterior(left, right int32) int32 {
	bvh.nodes = append(bvh.nodes, bvhNode{
		box:       core.Surrounding(bvh.nodes[left].box, bvh.nodes[right].box),
		left:      left,
		right:     right,
		primitive: noIndex,
	})
	return int32(len(bvh.nodes) - 1)
}

// Hit returns the nearest intersection inside the open interval (tMin, tMax)
func (bvh *BVH) Hit(ray core.Ray, tMin, tMax float64) (*material.SurfaceInteraction, bool) {
	return bvh.hitNode(bvh.root, ray, tMin, tMax)
}

// hitNode recursively tests ray intersection with BVH nodes
func (bvh *BVH) hitNode(index int32, ray core.Ray, tMin, tMax float64) (*material.SurfaceInteraction, bool) {
	node := &bvh.nodes[index]
	if !node.box.Hit(ray, tMin, tMax) {
		return nil, false
	}

	if node.isLeaf() {
		return bvh.primitives[node.primitive].Hit(ray, tMin, tMax)
	}

	// The right subtree only needs to beat the left hit
	closest, hitLeft := bvh.hitNode(node.left, ray, tMin, tMax)
	if hitLeft {
		tMax = closest.T
	}
	if hit, hitRight := bvh.hitNode(node.right, ray, tMin, tMax); hitRight {
		return hit, true
	}
	return closest, hitLeft
}

// BoundingBox returns the box enclosing every primitive in the hierarchy
func (bvh *BVH) BoundingBox() core.AABB {
	return bvh.nodes[bvh.root].box
}

// NodeCount returns the number of nodes in the flattened hierarchy
func (bvh *BVH) NodeCount() int {
	return len(bvh.nodes)
}

// Depth returns the number of levels from the root to the deepest leaf
func (bvh *BVH) Depth() int {
	return bvh.depth
}

// PrimitiveCount returns the number of primitives stored in the hierarchy
func (bvh *BVH) PrimitiveCount() int {
	return len(bvh.primitives)
}
