package level

import (
	"fmt"

	"github.com/google/uuid"
)

// SectorDynamic is the live state of one sector in a map instance
type SectorDynamic struct {
	FloorHeight   float64
	CeilingHeight float64
	LightLevel    float64
}

// Fits reports whether the vertical range [zMin, zMax] lies inside the sector.
// An inverted sector (floor above ceiling) fits nothing.
func (s SectorDynamic) Fits(zMin, zMax float64) bool {
	return s.FloorHeight <= zMin && s.CeilingHeight >= zMax
}

// MapInstance owns the mutable sector state of one live map.
// Sectors are indexed exactly like Map.Sectors.
//
// Door and light updates write through the setters; the physics phase only
// reads. Updates must be committed before physics runs in a tick, which is
// why there is no locking here.
type MapInstance struct {
	ID      uuid.UUID
	Map     *Map
	sectors []SectorDynamic
}

// NewMapInstance creates dynamic state seeded from the map's sector templates
func NewMapInstance(m *Map) *MapInstance {
	sectors := make([]SectorDynamic, len(m.Sectors))
	for i, s := range m.Sectors {
		sectors[i] = SectorDynamic{
			FloorHeight:   s.FloorHeight,
			CeilingHeight: s.CeilingHeight,
			LightLevel:    s.LightLevel,
		}
	}
	return &MapInstance{
		ID:      uuid.New(),
		Map:     m,
		sectors: sectors,
	}
}

// NumSectors returns the number of dynamic sectors
func (mi *MapInstance) NumSectors() int {
	return len(mi.sectors)
}

// Sector returns the current state of sector i.
// Panics if i has no dynamic entry: the static/dynamic pairing is corrupted.
func (mi *MapInstance) Sector(i int) SectorDynamic {
	return *mi.sector(i)
}

// SetFloorHeight sets the current floor height of sector i
func (mi *MapInstance) SetFloorHeight(i int, h float64) {
	mi.sector(i).FloorHeight = h
}

// SetCeilingHeight sets the current ceiling height of sector i
func (mi *MapInstance) SetCeilingHeight(i int, h float64) {
	mi.sector(i).CeilingHeight = h
}

// SetLightLevel sets the current light level of sector i
func (mi *MapInstance) SetLightLevel(i int, l float64) {
	mi.sector(i).LightLevel = l
}

// ResetSector restores sector i to its template values
func (mi *MapInstance) ResetSector(i int) {
	s := mi.sector(i)
	t := mi.Map.Sectors[i]
	s.FloorHeight = t.FloorHeight
	s.CeilingHeight = t.CeilingHeight
	s.LightLevel = t.LightLevel
}

// PortalFits reports whether the vertical range [zMin, zMax] currently fits
// both sectors of ld. Solid walls never fit.
func (mi *MapInstance) PortalFits(ld *Linedef, zMin, zMax float64) bool {
	if !ld.IsPortal() {
		return false
	}
	return mi.Sector(ld.Sidedefs[0].SectorIndex).Fits(zMin, zMax) &&
		mi.Sector(ld.Sidedefs[1].SectorIndex).Fits(zMin, zMax)
}

func (mi *MapInstance) sector(i int) *SectorDynamic {
	if i < 0 || i >= len(mi.sectors) {
		panic(fmt.Sprintf("map instance %s: no dynamic sector %d (have %d)", mi.ID, i, len(mi.sectors)))
	}
	return &mi.sectors[i]
}
