package system

import (
	"errors"
	"fmt"
	"slices"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/sectorphys/internal/domain/level"
	"github.com/younwookim/sectorphys/internal/geometry"
	"github.com/younwookim/sectorphys/internal/infrastructure/config"
)

// ErrInvalidLevel is wrapped by every LoadLevel validation error
var ErrInvalidLevel = errors.New("invalid level")

// LoadLevel converts a LevelConfig into a static level.Map.
// Every index in the config is checked so that physics can trust the result.
func LoadLevel(cfg *config.LevelConfig) (*level.Map, error) {
	if len(cfg.Sectors) == 0 {
		return nil, fmt.Errorf("level %s: no sectors: %w", cfg.ID, ErrInvalidLevel)
	}
	if len(cfg.Subsectors) == 0 {
		return nil, fmt.Errorf("level %s: no subsectors: %w", cfg.ID, ErrInvalidLevel)
	}

	m := &level.Map{
		Name:     cfg.ID,
		Vertices: make([]mgl64.Vec2, len(cfg.Vertices)),
		Sectors:  make([]level.Sector, len(cfg.Sectors)),
		Spawn:    mgl64.Vec3{cfg.Spawn.X, cfg.Spawn.Y, cfg.Spawn.Z},
		SpawnYaw: cfg.Spawn.Yaw,
	}

	for i, v := range cfg.Vertices {
		m.Vertices[i] = mgl64.Vec2{v[0], v[1]}
	}

	for i, s := range cfg.Sectors {
		m.Sectors[i] = level.Sector{
			FloorHeight:   s.Floor,
			CeilingHeight: s.Ceiling,
			LightLevel:    s.Light,
			Tag:           s.Tag,
		}
	}

	checkSector := func(what string, idx int) error {
		if idx < 0 || idx >= len(m.Sectors) {
			return fmt.Errorf("level %s: %s references sector %d of %d: %w", cfg.ID, what, idx, len(m.Sectors), ErrInvalidLevel)
		}
		return nil
	}

	m.Linedefs = make([]level.Linedef, len(cfg.Linedefs))
	for i, ld := range cfg.Linedefs {
		what := fmt.Sprintf("linedef %d", i)
		if ld.V1 < 0 || ld.V1 >= len(m.Vertices) || ld.V2 < 0 || ld.V2 >= len(m.Vertices) {
			return nil, fmt.Errorf("level %s: %s references missing vertex: %w", cfg.ID, what, ErrInvalidLevel)
		}
		v1, v2 := m.Vertices[ld.V1], m.Vertices[ld.V2]
		if v1 == v2 {
			return nil, fmt.Errorf("level %s: %s has zero length: %w", cfg.ID, what, ErrInvalidLevel)
		}
		if err := checkSector(what, ld.Front); err != nil {
			return nil, err
		}

		front := &level.Sidedef{SectorIndex: ld.Front}
		var back *level.Sidedef
		if ld.Back != nil {
			if err := checkSector(what, *ld.Back); err != nil {
				return nil, err
			}
			back = &level.Sidedef{SectorIndex: *ld.Back}
			linkNeighbours(m.Sectors, ld.Front, *ld.Back)
		}

		m.Linedefs[i] = level.NewLinedef(v1, v2, front, back)
	}

	m.Subsectors = make([]level.Subsector, len(cfg.Subsectors))
	for i, ss := range cfg.Subsectors {
		if err := checkSector(fmt.Sprintf("subsector %d", i), ss.Sector); err != nil {
			return nil, err
		}
		m.Subsectors[i] = level.Subsector{SectorIndex: ss.Sector}
	}

	m.Nodes = make([]level.Node, len(cfg.Nodes))
	for i, n := range cfg.Nodes {
		if n.DX == 0 && n.DY == 0 {
			return nil, fmt.Errorf("level %s: node %d has zero-length partition: %w", cfg.ID, i, ErrInvalidLevel)
		}
		node := level.Node{
			Partition: geometry.NewLine2(mgl64.Vec2{n.X, n.Y}, mgl64.Vec2{n.DX, n.DY}),
		}
		for side, child := range [2]config.NodeChildConfig{n.Front, n.Back} {
			limit := len(cfg.Subsectors)
			if !child.Subsector {
				// Children must come before their parent so the walk always terminates
				limit = i
			}
			if child.Index < 0 || child.Index >= limit {
				return nil, fmt.Errorf("level %s: node %d child %d index %d out of range: %w", cfg.ID, i, side, child.Index, ErrInvalidLevel)
			}
			node.Children[side] = level.NodeChild{Index: child.Index, Subsector: child.Subsector}
		}
		m.Nodes[i] = node
	}

	return m, nil
}

// linkNeighbours records a and b as adjacent sectors, once
func linkNeighbours(sectors []level.Sector, a, b int) {
	if a == b {
		return
	}
	add := func(from, to int) {
		n := sectors[from].Neighbours
		idx, found := slices.BinarySearch(n, to)
		if !found {
			sectors[from].Neighbours = slices.Insert(n, idx, to)
		}
	}
	add(a, b)
	add(b, a)
}
