package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"

	"go.viam.com/spatialindex/utils"
)

// SphereOverlap describes how a sphere relates to an AABB.
type SphereOverlap uint8

const (
	// Disjoint means the sphere and the box share no point.
	Disjoint SphereOverlap = iota
	// SubsetOfAABB means the whole sphere lies inside the box without crossing any face.
	SubsetOfAABB
	// IntersectsAABB means the shapes overlap without either containing the other.
	IntersectsAABB
	// ContainsAABB means every point of the box lies strictly inside the sphere.
	ContainsAABB
)

func (o SphereOverlap) String() string {
	switch o {
	case Disjoint:
		return "Disjoint"
	case SubsetOfAABB:
		return "SubsetOfAABB"
	case IntersectsAABB:
		return "IntersectsAABB"
	case ContainsAABB:
		return "ContainsAABB"
	default:
		return "SphereOverlap(?)"
	}
}

// SphereIntersect classifies the sphere at origin with the given radius against the box. See
// ClassifySphere.
func (b AABB) SphereIntersect(origin r3.Vector, radius float64, assumeIntersects bool) SphereOverlap {
	return ClassifySphere(b, origin, radius, assumeIntersects)
}

// ClassifySphere returns how the sphere at origin with the given radius overlaps box. All
// comparisons are strict, so a sphere that only touches the box (tangent to a face, or passing
// exactly through a corner) is not considered to overlap it. assumeIntersects is a caller hint
// that the shapes are already known to touch; when no corner of the box is inside the sphere the
// result is then IntersectsAABB without running the face test.
//
// ClassifySphere panics if origin or radius is non-finite or radius is negative.
func ClassifySphere(box AABB, origin r3.Vector, radius float64, assumeIntersects bool) SphereOverlap {
	MustBeFinite(origin, "sphere origin")
	MustBeValidRadius(radius)
	if box.IsEmpty() {
		return Disjoint
	}

	r2 := radius * radius

	// The sphere reaches no point of the box when the box's closest point is at least radius away.
	// An origin inside the box is never disjoint, even with a zero radius.
	if !box.Contains(origin) && box.DistanceSquaredTo(origin) >= r2 {
		return Disjoint
	}
	// Coarse containment test against the box's bounding sphere, centered on the box with half
	// its diagonal as radius.
	halfDiagonal := box.Size().Norm() / 2
	if radius > halfDiagonal && box.Center().Sub(origin).Norm2() < utils.Square(radius-halfDiagonal) {
		return ContainsAABB
	}

	anyInside := false
	allInside := true
	for _, corner := range box.Points() {
		if corner.Sub(origin).Norm2() < r2 {
			anyInside = true
		} else {
			allInside = false
		}
	}
	switch {
	case allInside:
		return ContainsAABB
	case anyInside, assumeIntersects:
		return IntersectsAABB
	}

	// No corner is inside the sphere, so any overlap has to cross a face.
	if sphereCrossesFace(box, origin, r2) {
		return IntersectsAABB
	}
	if box.Contains(origin) {
		return SubsetOfAABB
	}
	return Disjoint
}

// sphereCrossesFace reports whether the sphere of squared radius r2 at origin passes through the
// interior of any face of box. It assumes no corner of box is strictly inside the sphere.
//
// A face lies in a plane at distance c from origin; the sphere cuts that plane in a disk of radius
// sqrt(r2 - c^2) centered on origin's projection. Parameterizing the face rectangle by u, v in
// [0, 1] along its two in-plane axes, the disk reaches the rectangle iff the parametric spans
// [(t-R)/s, (t+R)/s] clipped to [0, 1] are non-empty on both axes, with t the projected center
// offset from the face's min corner and s the face's extent along that axis.
func sphereCrossesFace(box AABB, origin r3.Vector, r2 float64) bool {
	size := box.Size()
	for _, plane := range [2]r3.Vector{box.Min, box.Max} {
		for normal := 0; normal < 3; normal++ {
			c := component(origin, normal) - component(plane, normal)
			if c*c > r2 {
				continue
			}
			reduced := math.Sqrt(r2 - c*c)

			u, v := (normal+1)%3, (normal+2)%3
			tu := component(origin, u) - component(box.Min, u)
			tv := component(origin, v) - component(box.Min, v)
			su, sv := component(size, u), component(size, v)
			if !spanOverlaps(tu, su, reduced) || !spanOverlaps(tv, sv, reduced) {
				continue
			}
			// The disk center projects past the rectangle on both axes, so the nearest face point
			// is a corner, and no corner is inside the sphere.
			if outsideSpan(tu, su) && outsideSpan(tv, sv) {
				continue
			}
			return true
		}
	}
	return false
}

// spanOverlaps reports whether the open interval (t-reduced, t+reduced) meets the face extent
// [0, s]. A zero-length extent is a single point and is never divided by.
func spanOverlaps(t, s, reduced float64) bool {
	if s == 0 {
		return math.Abs(t) < reduced
	}
	lo := utils.Clamp((t-reduced)/s, 0, 1)
	hi := utils.Clamp((t+reduced)/s, 0, 1)
	return hi > lo
}

func outsideSpan(t, s float64) bool {
	return t < 0 || t > s
}
