// Package geometry provides the small amount of 2D/3D math the movement code needs:
// parametric line segments, axis-aligned boxes and their intersection tests.
//
// Vectors are mgl64 types. Everything in here is pure and allocation free.
package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// parallelEpsilon is the determinant magnitude below which two lines are
// treated as parallel (or degenerate) and never intersect.
const parallelEpsilon = 1e-10

// Line2 is a 2D segment: Point + t*Dir for t in [0,1].
type Line2 struct {
	Point mgl64.Vec2
	Dir   mgl64.Vec2
}

// NewLine2 creates a segment starting at point spanning dir
func NewLine2(point, dir mgl64.Vec2) Line2 {
	return Line2{Point: point, Dir: dir}
}

// End returns the far endpoint of the segment
func (l Line2) End() mgl64.Vec2 {
	return l.Point.Add(l.Dir)
}

// Intersect solves l.Point + tA*l.Dir == o.Point + tB*o.Dir.
// ok is false when the lines are parallel or either direction is zero; that is
// not an error, the lines simply never cross. No range check is applied to
// tA or tB, callers decide which parameter domain is relevant.
func (l Line2) Intersect(o Line2) (tA, tB float64, ok bool) {
	det := Cross(l.Dir, o.Dir)
	if math.Abs(det) < parallelEpsilon {
		return 0, 0, false
	}

	diff := o.Point.Sub(l.Point)
	tA = Cross(diff, o.Dir) / det
	tB = Cross(diff, l.Dir) / det
	return tA, tB, true
}

// Line3 is a 3D segment: Point + t*Dir for t in [0,1].
type Line3 struct {
	Point mgl64.Vec3
	Dir   mgl64.Vec3
}

// NewLine3 creates a segment starting at point spanning dir
func NewLine3(point, dir mgl64.Vec3) Line3 {
	return Line3{Point: point, Dir: dir}
}

// XY drops the vertical axis.
func (l Line3) XY() Line2 {
	return Line2{Point: l.Point.Vec2(), Dir: l.Dir.Vec2()}
}

// Cross returns the 2D cross product (a.x*b.y - a.y*b.x).
// Positive when b points to the left of a.
func Cross(a, b mgl64.Vec2) float64 {
	return a[0]*b[1] - a[1]*b[0]
}
