package geometry

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// AABB2 is an axis-aligned 2D box. Min <= Max on every axis.
type AABB2 struct {
	Min mgl64.Vec2
	Max mgl64.Vec2
}

// NewAABB2 creates a box from its corners.
// Panics if min > max on any axis: such a box means the geometry is malformed.
func NewAABB2(min, max mgl64.Vec2) AABB2 {
	for i := 0; i < 2; i++ {
		if min[i] > max[i] {
			panic(fmt.Sprintf("geometry: malformed AABB2 min=%v max=%v", min, max))
		}
	}
	return AABB2{Min: min, Max: max}
}

// AABB2FromPoints returns the smallest box containing both points
func AABB2FromPoints(a, b mgl64.Vec2) AABB2 {
	return AABB2{
		Min: mgl64.Vec2{min(a[0], b[0]), min(a[1], b[1])},
		Max: mgl64.Vec2{max(a[0], b[0]), max(a[1], b[1])},
	}
}

// Overlaps reports whether the boxes share any point (bounds inclusive)
func (b AABB2) Overlaps(o AABB2) bool {
	return b.Min[0] <= o.Max[0] && b.Max[0] >= o.Min[0] &&
		b.Min[1] <= o.Max[1] && b.Max[1] >= o.Min[1]
}

// Union returns the smallest box containing both boxes
func (b AABB2) Union(o AABB2) AABB2 {
	return AABB2{
		Min: mgl64.Vec2{min(b.Min[0], o.Min[0]), min(b.Min[1], o.Min[1])},
		Max: mgl64.Vec2{max(b.Max[0], o.Max[0]), max(b.Max[1], o.Max[1])},
	}
}

// Offset translates both corners by v
func (b AABB2) Offset(v mgl64.Vec2) AABB2 {
	return AABB2{Min: b.Min.Add(v), Max: b.Max.Add(v)}
}

// Corners returns the four corners walking min/min, min/max, max/max, max/min.
// Edge i runs from corner i to corner (i+1)%4, so edges are left, top, right, bottom.
func (b AABB2) Corners() [4]mgl64.Vec2 {
	return [4]mgl64.Vec2{
		{b.Min[0], b.Min[1]},
		{b.Min[0], b.Max[1]},
		{b.Max[0], b.Max[1]},
		{b.Max[0], b.Min[1]},
	}
}

// AABB3 is an axis-aligned 3D box. Min <= Max on every axis.
type AABB3 struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// NewAABB3 creates a box from its corners.
// Panics if min > max on any axis.
func NewAABB3(min, max mgl64.Vec3) AABB3 {
	for i := 0; i < 3; i++ {
		if min[i] > max[i] {
			panic(fmt.Sprintf("geometry: malformed AABB3 min=%v max=%v", min, max))
		}
	}
	return AABB3{Min: min, Max: max}
}

// FromRadiusHeight builds the ground-anchored actor box [-r,-r,0]..[r,r,h]
func FromRadiusHeight(radius, height float64) AABB3 {
	return NewAABB3(
		mgl64.Vec3{-radius, -radius, 0},
		mgl64.Vec3{radius, radius, height},
	)
}

// Overlaps reports whether the boxes share any point (bounds inclusive)
func (b AABB3) Overlaps(o AABB3) bool {
	for i := 0; i < 3; i++ {
		if b.Min[i] > o.Max[i] || b.Max[i] < o.Min[i] {
			return false
		}
	}
	return true
}

// Union returns the smallest box containing both boxes
func (b AABB3) Union(o AABB3) AABB3 {
	var out AABB3
	for i := 0; i < 3; i++ {
		out.Min[i] = min(b.Min[i], o.Min[i])
		out.Max[i] = max(b.Max[i], o.Max[i])
	}
	return out
}

// Offset translates both corners by v
func (b AABB3) Offset(v mgl64.Vec3) AABB3 {
	return AABB3{Min: b.Min.Add(v), Max: b.Max.Add(v)}
}

// XY drops the vertical axis.
func (b AABB3) XY() AABB2 {
	return AABB2{Min: b.Min.Vec2(), Max: b.Max.Vec2()}
}
