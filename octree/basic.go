package octree

import (
	"github.com/golang/geo/r3"

	"go.viam.com/spatialindex/spatialmath"
	"go.viam.com/spatialindex/utils"
)

// Insert stores value at pos. If pos lies outside the current bounds they are grown to include it;
// splits are absolute coordinates so no existing node has to move. It then descends to the leaf
// whose octant chain holds pos. An empty leaf takes the entry; a filled leaf either keeps it
// alongside its current entries or, if the split policy says so, becomes an internal node and
// every entry is reinserted below it. Entries never overwrite each other.
//
// Insert panics if pos has a NaN or infinite coordinate.
func (octree *Octree[T]) Insert(pos r3.Vector, value T) {
	spatialmath.MustBeFinite(pos, "octree insert position")

	if !octree.aabb.Contains(pos) {
		grown := octree.aabb.Grow(pos)
		if octree.size > 0 {
			octree.logger.Debugw("growing octree bounds", "from", octree.aabb, "to", grown)
		}
		octree.aabb = grown
	}

	octree.insert(&octree.root, Entry[T]{Position: pos, Value: value}, 0)
	octree.size++
}

func (octree *Octree[T]) insert(n *node[T], e Entry[T], depth int) {
	for n.nodeType == internalNode {
		n = &n.children[octantIndex(e.Position, n.split)]
		depth++
	}

	switch n.nodeType {
	case leafNodeEmpty:
		*n = newLeafNodeFilled(e)

	case leafNodeFilled:
		if !octree.policy.NeedsSplit(len(n.entries)) {
			n.entries = append(n.entries, e)
			return
		}
		if coincident(n.entries, e.Position) {
			// Identical positions can never be separated by a split.
			octree.logger.Debugw("keeping coincident entries in one leaf",
				"position", spatialmath.LogVector(e.Position), "entries", len(n.entries)+1, "depth", depth)
			n.entries = append(n.entries, e)
			return
		}
		octree.splitIntoOctants(n, e, depth)

	case internalNode:
	}
}

// splitIntoOctants turns the filled leaf n into an internal node and reinserts its entries plus e
// below it. Entries that land in the same octant recurse into a further split of that child.
func (octree *Octree[T]) splitIntoOctants(n *node[T], e Entry[T], depth int) {
	entries := make([]Entry[T], 0, len(n.entries)+1)
	entries = append(entries, n.entries...)
	entries = append(entries, e)

	bounds := spatialmath.EmptyAABB()
	for _, entry := range entries {
		bounds = bounds.Grow(entry.Position)
	}
	split := splitPoint(bounds)

	octree.logger.Debugw("splitting leaf",
		"split", spatialmath.LogVector(split), "entries", len(entries), "depth", depth)

	*n = newInternalNode[T](split)
	for _, entry := range entries {
		octree.insert(n, entry, depth)
	}
}

// splitPoint returns the center of bounds, nudged so that on every axis where bounds has extent
// the lowest coordinate falls strictly below the split and the highest does not. For two points
// this is their midpoint unless rounding put the midpoint on the lower one.
func splitPoint(bounds spatialmath.AABB) r3.Vector {
	return r3.Vector{
		X: splitAxis(bounds.Min.X, bounds.Max.X),
		Y: splitAxis(bounds.Min.Y, bounds.Max.Y),
		Z: splitAxis(bounds.Min.Z, bounds.Max.Z),
	}
}

func splitAxis(lo, hi float64) float64 {
	if lo == hi {
		return lo
	}
	mid := utils.Midpoint(lo, hi)
	if mid <= lo || mid > hi {
		return hi
	}
	return mid
}

func coincident[T any](entries []Entry[T], p r3.Vector) bool {
	for _, entry := range entries {
		if entry.Position != p {
			return false
		}
	}
	return true
}
