// Package spatialmath defines the axis-aligned box geometry the octree prunes with.
package spatialmath

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

// AABB is an axis-aligned bounding box given by its minimum and maximum corners. The box is
// closed: points on its faces are contained.
type AABB struct {
	Min r3.Vector
	Max r3.Vector
}

// NewAABB returns the box spanning minPt to maxPt. It panics if either corner is non-finite or if
// minPt exceeds maxPt on any axis.
func NewAABB(minPt, maxPt r3.Vector) AABB {
	MustBeFinite(minPt, "aabb min")
	MustBeFinite(maxPt, "aabb max")
	if minPt.X > maxPt.X || minPt.Y > maxPt.Y || minPt.Z > maxPt.Z {
		panic(errors.Wrapf(ErrInvertedAABB, "min %v max %v", minPt, maxPt))
	}
	return AABB{Min: minPt, Max: maxPt}
}

// EmptyAABB returns the sentinel box that contains nothing. Growing it by a point yields the
// zero-volume box at that point.
func EmptyAABB() AABB {
	inf := math.Inf(1)
	return AABB{
		Min: r3.Vector{X: inf, Y: inf, Z: inf},
		Max: r3.Vector{X: -inf, Y: -inf, Z: -inf},
	}
}

// IsEmpty reports whether the box contains no points at all.
func (b AABB) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// Size returns the extent of the box along each axis.
func (b AABB) Size() r3.Vector {
	return b.Max.Sub(b.Min)
}

// Center returns the midpoint of the box.
func (b AABB) Center() r3.Vector {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Contains reports whether p lies inside or on the boundary of the box.
func (b AABB) Contains(p r3.Vector) bool {
	return b.Min.X <= p.X && p.X <= b.Max.X &&
		b.Min.Y <= p.Y && p.Y <= b.Max.Y &&
		b.Min.Z <= p.Z && p.Z <= b.Max.Z
}

// Points returns the eight corners of the box. Corner i takes the max coordinate on axis k iff
// bit k of i is set (x is bit 0, y bit 1, z bit 2).
func (b AABB) Points() [8]r3.Vector {
	var corners [8]r3.Vector
	for i := range corners {
		corner := b.Min
		if i&1 != 0 {
			corner.X = b.Max.X
		}
		if i&2 != 0 {
			corner.Y = b.Max.Y
		}
		if i&4 != 0 {
			corner.Z = b.Max.Z
		}
		corners[i] = corner
	}
	return corners
}

// Grow returns the smallest box containing both b and p. b is not modified.
func (b AABB) Grow(p r3.Vector) AABB {
	return AABB{
		Min: r3.Vector{X: math.Min(b.Min.X, p.X), Y: math.Min(b.Min.Y, p.Y), Z: math.Min(b.Min.Z, p.Z)},
		Max: r3.Vector{X: math.Max(b.Max.X, p.X), Y: math.Max(b.Max.Y, p.Y), Z: math.Max(b.Max.Z, p.Z)},
	}
}

// DistanceSquaredTo returns the squared distance from p to the closest point of the box, which is
// zero when p is contained.
func (b AABB) DistanceSquaredTo(p r3.Vector) float64 {
	var d2 float64
	for axis := 0; axis < 3; axis++ {
		v := component(p, axis)
		if lo := component(b.Min, axis); v < lo {
			d2 += (lo - v) * (lo - v)
		} else if hi := component(b.Max, axis); v > hi {
			d2 += (v - hi) * (v - hi)
		}
	}
	return d2
}

// String returns a human readable string that represents the box.
func (b AABB) String() string {
	if b.IsEmpty() {
		return "AABB(empty)"
	}
	return fmt.Sprintf("AABB(min: [%g %g %g], max: [%g %g %g])",
		b.Min.X, b.Min.Y, b.Min.Z, b.Max.X, b.Max.Y, b.Max.Z)
}

// component returns v's coordinate along axis 0 (x), 1 (y) or 2 (z).
func component(v r3.Vector, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}
