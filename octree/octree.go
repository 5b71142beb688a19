// Package octree implements a point octree over 3D space. Values are stored at point positions
// and found again with exact nearest neighbor and radius queries that prune whole subtrees by the
// region each one covers.
//
// An Octree is not safe for concurrent use. Queries may run in parallel with each other but never
// alongside an Insert; wrap the tree in a Locked for whole-tree reader/writer exclusion.
package octree

import (
	"github.com/golang/geo/r3"

	"go.viam.com/spatialindex/logging"
	"go.viam.com/spatialindex/spatialmath"
)

// Each node in the octree is either an empty leaf, a filled leaf holding one or more entries, or an
// internal node which links to exactly eight children split around a point. The empty leaf is the
// zero value so a freshly allocated set of children is all empty.
const (
	leafNodeEmpty = nodeType(iota)
	leafNodeFilled
	internalNode
)

// nodeType represents the possible types of nodes in an octree.
type nodeType uint8

// Entry is a value stored at a position.
type Entry[T any] struct {
	Position r3.Vector
	Value    T
}

// node is one slot in the tree. Internal node regions are not stored: they follow from the root
// bounds and the chain of splits above them.
type node[T any] struct {
	nodeType nodeType
	children *[8]node[T]
	split    r3.Vector
	entries  []Entry[T]
}

func newLeafNodeFilled[T any](e Entry[T]) node[T] {
	return node[T]{
		nodeType: leafNodeFilled,
		entries:  []Entry[T]{e},
	}
}

func newInternalNode[T any](split r3.Vector) node[T] {
	return node[T]{
		nodeType: internalNode,
		children: &[8]node[T]{},
		split:    split,
	}
}

// Octree stores values at points in 3D space.
type Octree[T any] struct {
	logger logging.Logger
	policy SplitPolicy
	root   node[T]
	aabb   spatialmath.AABB
	size   int
}

type options struct {
	logger logging.Logger
	policy SplitPolicy
}

// Option configures an Octree at construction.
type Option func(*options)

// WithLogger sets the logger the octree reports bounds growth and leaf splits to.
func WithLogger(logger logging.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithSplitPolicy sets the policy deciding when a filled leaf subdivides.
func WithSplitPolicy(policy SplitPolicy) Option {
	return func(o *options) {
		o.policy = policy
	}
}

// New creates an empty octree. Without options it logs nothing below WARN and subdivides a leaf
// as soon as a second distinct point arrives.
func New[T any](opts ...Option) *Octree[T] {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logging.NewBlankLogger("octree")
		o.logger.SetLevel(logging.WARN)
	}
	if o.policy == nil {
		o.policy = DefaultSplitPolicy
	}

	return &Octree[T]{
		logger: o.logger,
		policy: o.policy,
		aabb:   spatialmath.EmptyAABB(),
	}
}

// Size returns the number of entries stored in the octree.
func (octree *Octree[T]) Size() int {
	return octree.size
}

// Bounds returns the tight bounding box of every inserted position, or the empty sentinel box
// before the first insertion.
func (octree *Octree[T]) Bounds() spatialmath.AABB {
	return octree.aabb
}

// octantIndex packs the per-axis "less than split" tests into bits 0 (x), 1 (y) and 2 (z).
func octantIndex(p, split r3.Vector) int {
	idx := 0
	if p.X < split.X {
		idx |= 1
	}
	if p.Y < split.Y {
		idx |= 2
	}
	if p.Z < split.Z {
		idx |= 4
	}
	return idx
}

// childRegion narrows region to the octant idx of an internal node split at split. A set bit keeps
// the part of the axis below the split.
func childRegion(region spatialmath.AABB, split r3.Vector, idx int) spatialmath.AABB {
	child := region
	if idx&1 != 0 {
		child.Max.X = split.X
	} else {
		child.Min.X = split.X
	}
	if idx&2 != 0 {
		child.Max.Y = split.Y
	} else {
		child.Min.Y = split.Y
	}
	if idx&4 != 0 {
		child.Max.Z = split.Z
	} else {
		child.Min.Z = split.Z
	}
	return child
}
