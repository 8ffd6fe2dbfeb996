//go:build amd64 && goexperiment.simd

package aabb

import "simd/archsimd"

// transformVectorImpl uses a single XMM register per vector when AVX2 is
// available (the 128-bit broadcasts need it), otherwise the portable lanes.
func transformVectorImpl(box AABB, xf Affine) AABB {
	if archsimd.X86.AVX2() {
		return Transform_AVX2_F32x4(box, xf)
	}
	return transformPortable(box, xf)
}
