package aabb

import "github.com/ajroetker/go-aabb/hwy"

// TransformVector computes the same bounds as TransformScalar using 4-lane
// vector arithmetic. Lane 3 is zero in every input and is discarded on
// output.
func TransformVector(box AABB, xf Affine) AABB {
	return transformVectorImpl(box, xf)
}

// transformPortable runs the lane kernel on hwy.Float32x4.
func transformPortable(box AABB, xf Affine) AABB {
	cols := [3]hwy.Float32x4{
		hwy.Load3Float32x4(xf.Linear.Col(0)),
		hwy.Load3Float32x4(xf.Linear.Col(1)),
		hwy.Load3Float32x4(xf.Linear.Col(2)),
	}
	lo, hi := transformLanes(
		hwy.Load3Float32x4(box.Min),
		hwy.Load3Float32x4(box.Max),
		hwy.Load3Float32x4(xf.Translation),
		&cols,
	)
	return AABB{Min: lo.Store3(), Max: hi.Store3()}
}

// transformLanes is the lane kernel. Lanes are only ever combined
// lane-wise, and broadcasts read lanes 0..2, so lane 3 of the result is
// a function of lane 3 of the inputs alone.
func transformLanes(vmin, vmax, t hwy.Float32x4, cols *[3]hwy.Float32x4) (lo, hi hwy.Float32x4) {
	half := hwy.BroadcastFloat32x4(0.5)

	// center = (min + max) * 0.5
	center := vmin.Add(vmax).Mul(half)
	localMin := vmin.Sub(center)
	localMax := vmax.Sub(center)

	ax := cols[0].Mul(hwy.BroadcastFloat32x4(localMin.GetElem(0)))
	bx := cols[0].Mul(hwy.BroadcastFloat32x4(localMax.GetElem(0)))
	ay := cols[1].Mul(hwy.BroadcastFloat32x4(localMin.GetElem(1)))
	by := cols[1].Mul(hwy.BroadcastFloat32x4(localMax.GetElem(1)))
	az := cols[2].Mul(hwy.BroadcastFloat32x4(localMin.GetElem(2)))
	bz := cols[2].Mul(hwy.BroadcastFloat32x4(localMax.GetElem(2)))

	origin := t.
		Add(cols[0].Mul(hwy.BroadcastFloat32x4(center.GetElem(0)))).
		Add(cols[1].Mul(hwy.BroadcastFloat32x4(center.GetElem(1)))).
		Add(cols[2].Mul(hwy.BroadcastFloat32x4(center.GetElem(2))))

	lo = origin.Add(ax.Min(bx).Add(ay.Min(by)).Add(az.Min(bz)))
	hi = origin.Add(ax.Max(bx).Add(ay.Max(by)).Add(az.Max(bz)))
	return lo, hi
}
