//go:build amd64 && goexperiment.simd

package aabb

import (
	"simd/archsimd"

	"github.com/go-gl/mathgl/mgl32"
)

// Transform_AVX2_F32x4 computes the transformed bounds with archsimd
// Float32x4 registers. The operation sequence matches transformLanes.
//
// The caller is responsible for checking AVX2 support.
func Transform_AVX2_F32x4(box AABB, xf Affine) AABB {
	vmin := load3(box.Min)
	vmax := load3(box.Max)
	t := load3(xf.Translation)
	c0 := load3(xf.Linear.Col(0))
	c1 := load3(xf.Linear.Col(1))
	c2 := load3(xf.Linear.Col(2))

	// center = (min + max) * 0.5
	center := vmin.Add(vmax).Mul(archsimd.BroadcastFloat32x4(0.5))
	localMin := vmin.Sub(center)
	localMax := vmax.Sub(center)

	// Spill once to read the per-axis scalars for broadcasting.
	var cs, lmin, lmax [4]float32
	center.StoreSlice(cs[:])
	localMin.StoreSlice(lmin[:])
	localMax.StoreSlice(lmax[:])

	ax := c0.Mul(archsimd.BroadcastFloat32x4(lmin[0]))
	bx := c0.Mul(archsimd.BroadcastFloat32x4(lmax[0]))
	ay := c1.Mul(archsimd.BroadcastFloat32x4(lmin[1]))
	by := c1.Mul(archsimd.BroadcastFloat32x4(lmax[1]))
	az := c2.Mul(archsimd.BroadcastFloat32x4(lmin[2]))
	bz := c2.Mul(archsimd.BroadcastFloat32x4(lmax[2]))

	origin := t.
		Add(c0.Mul(archsimd.BroadcastFloat32x4(cs[0]))).
		Add(c1.Mul(archsimd.BroadcastFloat32x4(cs[1]))).
		Add(c2.Mul(archsimd.BroadcastFloat32x4(cs[2])))

	lo := origin.Add(ax.Min(bx).Add(ay.Min(by)).Add(az.Min(bz)))
	hi := origin.Add(ax.Max(bx).Add(ay.Max(by)).Add(az.Max(bz)))

	var outMin, outMax [4]float32
	lo.StoreSlice(outMin[:])
	hi.StoreSlice(outMax[:])
	return AABB{
		Min: mgl32.Vec3{outMin[0], outMin[1], outMin[2]},
		Max: mgl32.Vec3{outMax[0], outMax[1], outMax[2]},
	}
}

// load3 loads v into lanes 0..2 with lane 3 zeroed.
func load3(v mgl32.Vec3) archsimd.Float32x4 {
	lanes := [4]float32{v[0], v[1], v[2], 0}
	return archsimd.LoadFloat32x4Slice(lanes[:])
}
