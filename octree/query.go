package octree

import (
	"iter"
	"math"

	"github.com/golang/geo/r3"

	"go.viam.com/spatialindex/spatialmath"
)

// NearestNeighbor returns the stored entry closest to pos. ok is false, with zero values, when the
// octree is empty. When several entries are equally close the first one reached in traversal order
// wins.
//
// NearestNeighbor panics if pos has a NaN or infinite coordinate.
func (octree *Octree[T]) NearestNeighbor(pos r3.Vector) (r3.Vector, T, bool) {
	p, v, _, ok := octree.NearestNeighborDistance(pos)
	return p, v, ok
}

// NearestNeighborDistance is NearestNeighbor that also returns the distance from pos to the entry.
func (octree *Octree[T]) NearestNeighborDistance(pos r3.Vector) (r3.Vector, T, float64, bool) {
	spatialmath.MustBeFinite(pos, "nearest neighbor query position")

	var zero T
	if octree.size == 0 {
		return r3.Vector{}, zero, 0, false
	}

	s := nearestSearch[T]{pos: pos, bestDist2: math.Inf(1)}
	s.visit(&octree.root, octree.aabb)
	return s.best.Position, s.best.Value, math.Sqrt(s.bestDist2), true
}

type nearestSearch[T any] struct {
	pos       r3.Vector
	best      *Entry[T]
	bestDist2 float64
}

// visit descends the octant holding pos first, so that siblings can be skipped once the
// best distance found is no farther than their region.
func (s *nearestSearch[T]) visit(n *node[T], region spatialmath.AABB) {
	switch n.nodeType {
	case leafNodeFilled:
		for i := range n.entries {
			d2 := n.entries[i].Position.Sub(s.pos).Norm2()
			if s.best == nil || d2 < s.bestDist2 {
				s.best = &n.entries[i]
				s.bestDist2 = d2
			}
		}

	case internalNode:
		first := octantIndex(s.pos, n.split)
		s.visit(&n.children[first], childRegion(region, n.split, first))
		for i := range n.children {
			if i == first || n.children[i].nodeType == leafNodeEmpty {
				continue
			}
			child := childRegion(region, n.split, i)
			if s.best == nil || child.DistanceSquaredTo(s.pos) < s.bestDist2 {
				s.visit(&n.children[i], child)
			}
		}

	case leafNodeEmpty:
	}
}

// Search returns every entry within radius of pos, boundary included. The sequence is lazy and can
// be ranged over any number of times; for a given tree it always yields entries in the same order.
// It must not be ranged over while the octree is being modified.
//
// Search panics if pos or radius is non-finite or radius is negative.
func (octree *Octree[T]) Search(pos r3.Vector, radius float64) iter.Seq2[r3.Vector, T] {
	spatialmath.MustBeFinite(pos, "search position")
	spatialmath.MustBeValidRadius(radius)

	return func(yield func(r3.Vector, T) bool) {
		if octree.size == 0 {
			return
		}
		q := radiusSearch[T]{pos: pos, radius: radius, r2: radius * radius, yield: yield}
		q.visit(&octree.root, octree.aabb, false)
	}
}

// SearchSlice collects Search into a slice. It is nil when nothing is in range.
func (octree *Octree[T]) SearchSlice(pos r3.Vector, radius float64) []Entry[T] {
	var found []Entry[T]
	for p, v := range octree.Search(pos, radius) {
		found = append(found, Entry[T]{Position: p, Value: v})
	}
	return found
}

type radiusSearch[T any] struct {
	pos    r3.Vector
	radius float64
	r2     float64
	yield  func(r3.Vector, T) bool
}

// visit reports false once the consumer has stopped the iteration. enclosed is set below an
// internal node whose whole region is inside the sphere, where classifying is no longer needed.
func (q *radiusSearch[T]) visit(n *node[T], region spatialmath.AABB, enclosed bool) bool {
	switch n.nodeType {
	case leafNodeEmpty:
		return true

	case leafNodeFilled:
		for _, e := range n.entries {
			if e.Position.Sub(q.pos).Norm2() <= q.r2 {
				if !q.yield(e.Position, e.Value) {
					return false
				}
			}
		}
		return true

	case internalNode:
	}

	if !enclosed {
		switch spatialmath.ClassifySphere(region, q.pos, q.radius, false) {
		case spatialmath.Disjoint:
			// Disjoint is strict, so a region tangent to the sphere may still hold a point at
			// exactly radius.
			if region.DistanceSquaredTo(q.pos) > q.r2 {
				return true
			}
		case spatialmath.ContainsAABB:
			enclosed = true
		case spatialmath.SubsetOfAABB, spatialmath.IntersectsAABB:
		}
	}

	for i := range n.children {
		child := &n.children[i]
		if child.nodeType == leafNodeEmpty {
			continue
		}
		if !q.visit(child, childRegion(region, n.split, i), enclosed) {
			return false
		}
	}
	return true
}

// All returns every entry in the octree in traversal order.
func (octree *Octree[T]) All() iter.Seq2[r3.Vector, T] {
	return func(yield func(r3.Vector, T) bool) {
		walk(&octree.root, yield)
	}
}

func walk[T any](n *node[T], yield func(r3.Vector, T) bool) bool {
	switch n.nodeType {
	case leafNodeFilled:
		for _, e := range n.entries {
			if !yield(e.Position, e.Value) {
				return false
			}
		}
	case internalNode:
		for i := range n.children {
			if !walk(&n.children[i], yield) {
				return false
			}
		}
	case leafNodeEmpty:
	}
	return true
}
