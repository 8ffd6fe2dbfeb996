package aabb

import "github.com/go-gl/mathgl/mgl32"

// AABB is an axis-aligned box. A valid box has Min[i] <= Max[i] on every
// axis; Min == Max describes a single point and is valid.
type AABB struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// New returns the box spanning min and max. No reordering is done.
func New(min, max mgl32.Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// FromPoint returns the degenerate box containing only p.
func FromPoint(p mgl32.Vec3) AABB {
	return AABB{Min: p, Max: p}
}

// FromPoints returns the smallest box containing all points.
// It returns the zero box if pts is empty.
func FromPoints(pts ...mgl32.Vec3) AABB {
	if len(pts) == 0 {
		return AABB{}
	}
	b := FromPoint(pts[0])
	for _, p := range pts[1:] {
		b.Min = minVec3(b.Min, p)
		b.Max = maxVec3(b.Max, p)
	}
	return b
}

// Center returns the midpoint of the box.
func (b AABB) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Size returns Max - Min.
func (b AABB) Size() mgl32.Vec3 {
	return b.Max.Sub(b.Min)
}

// IsValid reports whether Min <= Max on every axis. NaN components make
// the box invalid.
func (b AABB) IsValid() bool {
	for i := 0; i < 3; i++ {
		if !(b.Min[i] <= b.Max[i]) {
			return false
		}
	}
	return true
}

// Corners returns the 8 corners of the box. Bit i of the index selects
// Max over Min on axis i.
func (b AABB) Corners() [8]mgl32.Vec3 {
	var c [8]mgl32.Vec3
	for i := range c {
		for axis := 0; axis < 3; axis++ {
			if i&(1<<axis) != 0 {
				c[i][axis] = b.Max[axis]
			} else {
				c[i][axis] = b.Min[axis]
			}
		}
	}
	return c
}

// ContainsPoint reports whether p lies inside the box, boundary included.
func (b AABB) ContainsPoint(p mgl32.Vec3) bool {
	return p.X() >= b.Min.X() && p.X() <= b.Max.X() &&
		p.Y() >= b.Min.Y() && p.Y() <= b.Max.Y() &&
		p.Z() >= b.Min.Z() && p.Z() <= b.Max.Z()
}

// ContainsBox reports whether o lies entirely inside b.
func (b AABB) ContainsBox(o AABB) bool {
	return b.ContainsPoint(o.Min) && b.ContainsPoint(o.Max)
}

func minVec3(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{min(a[0], b[0]), min(a[1], b[1]), min(a[2], b[2])}
}

func maxVec3(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{max(a[0], b[0]), max(a[1], b[1]), max(a[2], b[2])}
}
