// Package aabb transforms axis-aligned bounding boxes through affine maps.
//
// # Transform
//
// Given a local-space box [Min, Max] and an affine map p' = L*p + T, the
// package computes the tightest axis-aligned box enclosing the image of
// the input box. Rather than transforming the 8 corners and re-bounding
// them, the box is re-centered at the origin and each local axis
// contributes two candidate offsets (one per face), mapped through the
// matching column of L:
//
//  1. center = (Min + Max) * 0.5
//  2. localMin = Min - center, localMax = Max - center
//  3. a_i = L.Col(i) * localMin[i], b_i = L.Col(i) * localMax[i]
//  4. origin = T + L.Col(0)*center.x + L.Col(1)*center.y + L.Col(2)*center.z
//  5. newMin = origin + (min(a_0,b_0) + min(a_1,b_1) + min(a_2,b_2))
//  6. newMax = origin + (max(a_0,b_0) + max(a_1,b_1) + max(a_2,b_2))
//
// # Matrix Convention
//
// Linear parts are mgl32.Mat3 values, which are column-major: Col(i) is
// the image of the local basis vector e_i, and points are column vectors
// multiplied with the matrix on the left.
//
// # Implementations
//
// Two realizations share the TransformFunc signature:
//   - TransformScalar: per-component Vec3 arithmetic
//   - TransformVector: 4-lane arithmetic with lane 3 fixed at zero. On
//     amd64 with GOEXPERIMENT=simd and AVX2 it runs on archsimd.Float32x4,
//     otherwise on the portable hwy.Float32x4.
//
// Both perform the same floating-point operations in the same order. The
// package-level Transform variable is bound to the best one at init time,
// honouring HWY_NO_SIMD.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-aabb/aabb"
//
//	box := aabb.New(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{2, 4, 6})
//	xf := aabb.Scale(mgl32.Vec3{2, 1, 0.5})
//	out := aabb.Transform(box, xf) // {0 0 0} - {4 4 3}
//
// The transforms never allocate, never panic and keep no state, so they
// are safe for concurrent use. Non-finite inputs produce unspecified
// output; use Validate or Checked when inputs are untrusted.
package aabb
