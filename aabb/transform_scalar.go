package aabb

import "github.com/go-gl/mathgl/mgl32"

// TransformScalar computes the bounds of box under xf with per-component
// Vec3 arithmetic.
func TransformScalar(box AABB, xf Affine) AABB {
	mtx := &xf.Linear

	// Move the box to the origin.
	center := box.Min.Add(box.Max).Mul(0.5)
	localMin := box.Min.Sub(center)
	localMax := box.Max.Sub(center)

	// Signed extents of each local axis in the target frame.
	aX := mtx.Col(0).Mul(localMin[0])
	bX := mtx.Col(0).Mul(localMax[0])
	aY := mtx.Col(1).Mul(localMin[1])
	bY := mtx.Col(1).Mul(localMax[1])
	aZ := mtx.Col(2).Mul(localMin[2])
	bZ := mtx.Col(2).Mul(localMax[2])

	// Start at the transformed center.
	origin := xf.Translation.
		Add(mtx.Col(0).Mul(center[0])).
		Add(mtx.Col(1).Mul(center[1])).
		Add(mtx.Col(2).Mul(center[2]))

	return AABB{
		Min: origin.Add(minVec3Lane(aX, bX).Add(minVec3Lane(aY, bY)).Add(minVec3Lane(aZ, bZ))),
		Max: origin.Add(maxVec3Lane(aX, bX).Add(maxVec3Lane(aY, bY)).Add(maxVec3Lane(aZ, bZ))),
	}
}

// minVec3Lane follows the vector min rule: b unless a < b. This keeps the
// choice between equal or signed-zero operands identical to the lane path.
func minVec3Lane(a, b mgl32.Vec3) mgl32.Vec3 {
	for i := 0; i < 3; i++ {
		if !(a[i] < b[i]) {
			a[i] = b[i]
		}
	}
	return a
}

func maxVec3Lane(a, b mgl32.Vec3) mgl32.Vec3 {
	for i := 0; i < 3; i++ {
		if !(a[i] > b[i]) {
			a[i] = b[i]
		}
	}
	return a
}
