//go:build !amd64 || !goexperiment.simd

package aabb

// transformVectorImpl is the portable lane implementation.
func transformVectorImpl(box AABB, xf Affine) AABB {
	return transformPortable(box, xf)
}
