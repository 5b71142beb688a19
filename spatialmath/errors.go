package spatialmath

import (
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"go.viam.com/spatialindex/utils"
)

var (
	// ErrNonFinite is wrapped by the panic value raised when a NaN or infinite coordinate or radius
	// reaches a geometric routine.
	ErrNonFinite = errors.New("non-finite geometric input")
	// ErrNegativeRadius is wrapped by the panic value raised when a sphere radius is negative.
	ErrNegativeRadius = errors.New("negative radius")
	// ErrInvertedAABB is wrapped by the panic value raised when an AABB is constructed with min
	// greater than max on some axis.
	ErrInvertedAABB = errors.New("aabb min exceeds max")
)

// VectorIsFinite reports whether every component of v is finite.
func VectorIsFinite(v r3.Vector) bool {
	return utils.IsFinite(v.X) && utils.IsFinite(v.Y) && utils.IsFinite(v.Z)
}

// MustBeFinite panics with an error wrapping ErrNonFinite if any component of v is non-finite.
// what names the offending argument in the panic message.
func MustBeFinite(v r3.Vector, what string) {
	if !VectorIsFinite(v) {
		panic(errors.Wrapf(ErrNonFinite, "%s (%v, %v, %v)", what, v.X, v.Y, v.Z))
	}
}

// MustBeValidRadius panics unless radius is finite and non-negative.
func MustBeValidRadius(radius float64) {
	if !utils.IsFinite(radius) {
		panic(errors.Wrapf(ErrNonFinite, "radius %v", radius))
	}
	if radius < 0 {
		panic(errors.Wrapf(ErrNegativeRadius, "radius %v", radius))
	}
}
