package aabb

import (
	"slices"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/ajroetker/go-aabb/hwy"
)

// TransformFunc is the common signature of every realization.
type TransformFunc func(box AABB, xf Affine) AABB

// Implementation names accepted by Implementation.
const (
	ImplAuto   = "auto"
	ImplScalar = "scalar"
	ImplVector = "vector"
)

// ErrUnknownImpl is returned by Implementation for an unrecognized name.
var ErrUnknownImpl = errors.New("aabb: unknown implementation")

// Transform computes the bounds of box under xf using the realization
// selected for this process at init time.
//
// This function variable is initialized by the scalar implementation and
// replaced by the vector one when a SIMD dispatch level is detected.
var Transform TransformFunc = TransformScalar

func init() {
	Transform = Best()
}

// Best returns the vector realization when hwy detected SIMD support and
// the scalar one otherwise (including when HWY_NO_SIMD is set).
func Best() TransformFunc {
	if BestName() == ImplVector {
		return TransformVector
	}
	return TransformScalar
}

// BestName is the name of the realization Best returns.
func BestName() string {
	if hwy.HasSIMD() {
		return ImplVector
	}
	return ImplScalar
}

var implementations = map[string]func() TransformFunc{
	ImplAuto:   Best,
	ImplScalar: func() TransformFunc { return TransformScalar },
	ImplVector: func() TransformFunc { return TransformVector },
}

// Implementation returns the realization registered under name.
func Implementation(name string) (TransformFunc, error) {
	fn, ok := implementations[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownImpl, "%q", name)
	}
	return fn(), nil
}

// Implementations lists the accepted implementation names in sorted order.
func Implementations() []string {
	names := lo.Keys(implementations)
	slices.Sort(names)
	return names
}
