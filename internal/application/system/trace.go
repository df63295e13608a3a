package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/sectorphys/internal/domain/level"
	"github.com/younwookim/sectorphys/internal/geometry"
)

// Intersect is the earliest blocking contact found along a move
type Intersect struct {
	Fraction float64    // 0 = move start, 1 = move end; always < 1
	Normal   mgl64.Vec3 // horizontal, opposes the approach
	Linedef  int        // index into Map.Linedefs
}

// boxEdgeNormals are the outward normals of the footprint edges as returned
// by AABB2.Corners: left, top, right, bottom.
var boxEdgeNormals = [4]mgl64.Vec3{
	{-1, 0, 0},
	{0, 1, 0},
	{1, 0, 0},
	{0, -1, 0},
}

// Trace sweeps entityBox (relative to moveStep.Point) along moveStep against
// every linedef of the instance's map and returns the earliest blocking
// contact, or nil if the move is unobstructed.
//
// Ties keep the first contact found: linedefs in index order, and within a
// linedef corners before edges, box corner/edge index ascending.
// Only the horizontal part of moveStep is swept; the vertical extent at the
// start point decides portal passability.
func Trace(moveStep geometry.Line3, entityBox geometry.AABB3, mi *level.MapInstance) *Intersect {
	move := moveStep.XY()
	currentBox := entityBox.XY().Offset(move.Point)
	moveBox := currentBox.Union(currentBox.Offset(move.Dir))
	corners := currentBox.Corners()

	zMin := moveStep.Point[2] + entityBox.Min[2]
	zMax := moveStep.Point[2] + entityBox.Max[2]

	var best *Intersect
	for i := range mi.Map.Linedefs {
		linedef := &mi.Map.Linedefs[i]

		hit := intersectLinedef(move, moveBox, corners, linedef)
		if hit == nil || hit.Fraction >= bestFraction(best) {
			continue
		}

		if mi.PortalFits(linedef, zMin, zMax) {
			continue
		}

		hit.Linedef = i
		best = hit
	}

	return best
}

// intersectLinedef finds the earliest contact between the moving footprint and one linedef.
// Two sub-tests are needed because a box is not a point: the box corners can
// run into the wall segment, and the wall endpoints can run into the box edges.
func intersectLinedef(move geometry.Line2, moveBox geometry.AABB2, corners [4]mgl64.Vec2, linedef *level.Linedef) *Intersect {
	if !moveBox.Overlaps(linedef.BBox) {
		return nil
	}

	vertices := [2]mgl64.Vec2{linedef.Line.Point, linedef.Line.End()}
	reverse := move.Dir.Mul(-1)

	var best *Intersect
	for i := 0; i < 4; i++ {
		// Box corner against the linedef
		fraction, along, ok := geometry.NewLine2(corners[i], move.Dir).Intersect(linedef.Line)
		if ok && fraction >= 0 && fraction < bestFraction(best) && along >= 0 && along <= 1 {
			normal := linedef.Normal
			if move.Dir.Dot(normal) > 0 {
				normal = normal.Mul(-1)
			}
			best = &Intersect{
				Fraction: fraction,
				Normal:   mgl64.Vec3{normal[0], normal[1], 0},
			}
		}

		// Linedef vertices against the box edge
		edge := geometry.NewLine2(corners[i], corners[(i+1)%4].Sub(corners[i]))
		for _, vertex := range vertices {
			fraction, along, ok := geometry.NewLine2(vertex, reverse).Intersect(edge)
			if ok && fraction >= 0 && fraction < bestFraction(best) && along >= 0 && along <= 1 {
				best = &Intersect{
					Fraction: fraction,
					Normal:   boxEdgeNormals[i].Mul(-1),
				}
			}
		}
	}

	return best
}

func bestFraction(best *Intersect) float64 {
	if best == nil {
		return 1
	}
	return best.Fraction
}
