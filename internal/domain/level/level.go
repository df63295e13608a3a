// Package level holds the static description of a loaded level (vertices,
// linedefs, sectors and the BSP used for point location) and the mutable
// per-instance sector state that doors and lights write and physics reads.
package level

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/sectorphys/internal/geometry"
)

// Sidedef references the sector bounding one side of a linedef
type Sidedef struct {
	SectorIndex int
}

// Linedef is a static wall segment.
// With one sidedef it is a solid wall; with two it is a portal whose
// passability depends on the current heights of both sectors.
type Linedef struct {
	Line     geometry.Line2
	BBox     geometry.AABB2
	Normal   mgl64.Vec2
	Sidedefs [2]*Sidedef // front, back (nil = absent)
}

// NewLinedef builds a linedef from v1 to v2.
// The normal is the unit right-hand normal of the segment direction.
func NewLinedef(v1, v2 mgl64.Vec2, front, back *Sidedef) Linedef {
	dir := v2.Sub(v1)
	var normal mgl64.Vec2
	if l := dir.Len(); l > 0 {
		normal = mgl64.Vec2{dir[1] / l, -dir[0] / l}
	}
	return Linedef{
		Line:     geometry.NewLine2(v1, dir),
		BBox:     geometry.AABB2FromPoints(v1, v2),
		Normal:   normal,
		Sidedefs: [2]*Sidedef{front, back},
	}
}

// IsPortal returns true if both sides reference a sector
func (l *Linedef) IsPortal() bool {
	return l.Sidedefs[0] != nil && l.Sidedefs[1] != nil
}

// Sector is the static template of a sector
type Sector struct {
	FloorHeight   float64
	CeilingHeight float64
	LightLevel    float64
	Tag           string
	Neighbours    []int // indices of sectors sharing a two-sided linedef
}

// Subsector is a convex BSP leaf, tagged with its owning sector
type Subsector struct {
	SectorIndex int
}

// NodeChild points at either another node or a subsector
type NodeChild struct {
	Index     int
	Subsector bool
}

// Node is an interior BSP node.
// Children[0] is the front (right of the partition), Children[1] the back.
type Node struct {
	Partition geometry.Line2
	Children  [2]NodeChild
}

// Map is the immutable level description
type Map struct {
	Name       string
	Vertices   []mgl64.Vec2
	Linedefs   []Linedef
	Sectors    []Sector
	Subsectors []Subsector
	Nodes      []Node // root is the last node
	Spawn      mgl64.Vec3
	SpawnYaw   float64
}

// FindSubsector returns the subsector containing point p.
// A map without nodes consists of a single subsector.
func (m *Map) FindSubsector(p mgl64.Vec2) *Subsector {
	if len(m.Subsectors) == 0 {
		panic(fmt.Sprintf("level %q: map has no subsectors", m.Name))
	}
	if len(m.Nodes) == 0 {
		return &m.Subsectors[0]
	}

	child := NodeChild{Index: len(m.Nodes) - 1}
	for !child.Subsector {
		node := &m.Nodes[child.Index]
		child = node.Children[PointOnSide(node.Partition, p)]
	}
	return &m.Subsectors[child.Index]
}

// SectorAt returns the index of the sector under point p
func (m *Map) SectorAt(p mgl64.Vec2) int {
	return m.FindSubsector(p).SectorIndex
}

// PointOnSide returns 0 if p is on the front (right) side of the partition or on
// it, 1 if it lies on the back (left) side.
func PointOnSide(partition geometry.Line2, p mgl64.Vec2) int {
	if geometry.Cross(partition.Dir, p.Sub(partition.Point)) > 0 {
		return 1
	}
	return 0
}

// MinNeighbourLight returns the lowest template light level among the
// neighbours of sector i, or 0 if it has none.
func (m *Map) MinNeighbourLight(i int) float64 {
	neighbours := m.Sectors[i].Neighbours
	if len(neighbours) == 0 {
		return 0
	}
	light := math.Inf(1)
	for _, n := range neighbours {
		light = min(light, m.Sectors[n].LightLevel)
	}
	return light
}

// Bounds returns the box enclosing every vertex
func (m *Map) Bounds() geometry.AABB2 {
	if len(m.Vertices) == 0 {
		return geometry.AABB2{}
	}
	b := geometry.AABB2{Min: m.Vertices[0], Max: m.Vertices[0]}
	for _, v := range m.Vertices[1:] {
		b = b.Union(geometry.AABB2{Min: v, Max: v})
	}
	return b
}
