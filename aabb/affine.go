package aabb

import "github.com/go-gl/mathgl/mgl32"

// Affine is a linear map followed by a translation: p' = Linear*p + Translation.
//
// Linear is column-major (mgl32 convention); Linear.Col(i) is the image of
// the local basis vector e_i. It may contain rotation, non-uniform scale
// and shear. Orthogonality is not required.
type Affine struct {
	Linear      mgl32.Mat3
	Translation mgl32.Vec3
}

// Identity returns the identity transform.
func Identity() Affine {
	return Affine{Linear: mgl32.Ident3()}
}

// Translate returns a pure translation by t.
func Translate(t mgl32.Vec3) Affine {
	return Affine{Linear: mgl32.Ident3(), Translation: t}
}

// Scale returns an axis-aligned scale by s.
func Scale(s mgl32.Vec3) Affine {
	return Affine{Linear: mgl32.Diag3(s)}
}

// RotateZ returns a counter-clockwise rotation about +Z by angle radians.
func RotateZ(angle float32) Affine {
	return Affine{Linear: mgl32.Rotate3DZ(angle)}
}

// FromCols builds a transform from the images of the local basis vectors.
func FromCols(x, y, z, translation mgl32.Vec3) Affine {
	return Affine{Linear: mgl32.Mat3FromCols(x, y, z), Translation: translation}
}

// FromMat4 extracts the affine part of a homogeneous 4x4 matrix: the
// upper-left 3x3 block and the first three rows of the 4th column. The
// bottom row is ignored, so projective matrices lose their projection.
func FromMat4(m mgl32.Mat4) Affine {
	return Affine{Linear: m.Mat3(), Translation: m.Col(3).Vec3()}
}

// Then returns the transform that applies a first and then o.
func (a Affine) Then(o Affine) Affine {
	return Affine{
		Linear:      o.Linear.Mul3(a.Linear),
		Translation: o.Linear.Mul3x1(a.Translation).Add(o.Translation),
	}
}

// Apply maps a point through the transform.
func (a Affine) Apply(p mgl32.Vec3) mgl32.Vec3 {
	return a.Linear.Mul3x1(p).Add(a.Translation)
}
