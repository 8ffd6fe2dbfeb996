package aabb

import (
	"math"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidBox is returned when Min > Max on some axis.
	ErrInvalidBox = errors.New("aabb: min exceeds max")
	// ErrNonFinite is returned when a box or transform has a NaN or Inf component.
	ErrNonFinite = errors.New("aabb: non-finite component")
)

var axisNames = [3]string{"x", "y", "z"}

// Validate checks that box is finite and satisfies Min <= Max.
func Validate(box AABB) error {
	if i := nonFinite(box.Min[:]); i >= 0 {
		return errors.Wrapf(ErrNonFinite, "min.%s = %v", axisNames[i], box.Min[i])
	}
	if i := nonFinite(box.Max[:]); i >= 0 {
		return errors.Wrapf(ErrNonFinite, "max.%s = %v", axisNames[i], box.Max[i])
	}
	for i := 0; i < 3; i++ {
		if box.Min[i] > box.Max[i] {
			return errors.Wrapf(ErrInvalidBox, "%s axis: %v > %v", axisNames[i], box.Min[i], box.Max[i])
		}
	}
	return nil
}

// ValidateAffine checks that every component of xf is finite.
func ValidateAffine(xf Affine) error {
	if i := nonFinite(xf.Linear[:]); i >= 0 {
		return errors.Wrapf(ErrNonFinite, "linear[%d] = %v", i, xf.Linear[i])
	}
	if i := nonFinite(xf.Translation[:]); i >= 0 {
		return errors.Wrapf(ErrNonFinite, "translation.%s = %v", axisNames[i], xf.Translation[i])
	}
	return nil
}

// CheckedFunc is a TransformFunc that reports precondition violations.
type CheckedFunc func(box AABB, xf Affine) (AABB, error)

// Checked wraps fn with input and output validation. The realizations
// themselves never check anything; this is an opt-in hardening layer.
func Checked(fn TransformFunc) CheckedFunc {
	return func(box AABB, xf Affine) (AABB, error) {
		if err := Validate(box); err != nil {
			return AABB{}, errors.Wrap(err, "input")
		}
		if err := ValidateAffine(xf); err != nil {
			return AABB{}, errors.Wrap(err, "transform")
		}
		out := fn(box, xf)
		if err := Validate(out); err != nil {
			return out, errors.Wrap(err, "output")
		}
		return out, nil
	}
}

func nonFinite(v []float32) int {
	for i, f := range v {
		if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
			return i
		}
	}
	return -1
}

