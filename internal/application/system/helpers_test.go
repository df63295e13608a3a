package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/sectorphys/internal/domain/level"
	"github.com/younwookim/sectorphys/internal/ecs"
	"github.com/younwookim/sectorphys/internal/geometry"
	"github.com/younwookim/sectorphys/internal/infrastructure/config"
)

func intPtr(v int) *int { return &v }

// createBoxRoomConfig is a single 128x128 sector walled on all four sides.
// Linedefs: 0 left, 1 top, 2 right, 3 bottom.
func createBoxRoomConfig() *config.LevelConfig {
	return &config.LevelConfig{
		ID:       "box-room",
		Vertices: [][2]float64{{0, 0}, {0, 128}, {128, 128}, {128, 0}},
		Linedefs: []config.LinedefConfig{
			{V1: 0, V2: 1, Front: 0},
			{V1: 1, V2: 2, Front: 0},
			{V1: 2, V2: 3, Front: 0},
			{V1: 3, V2: 0, Front: 0},
		},
		Sectors:    []config.SectorConfig{{Floor: 0, Ceiling: 128, Light: 1}},
		Subsectors: []config.SubsectorConfig{{Sector: 0}},
	}
}

// createTwoRoomConfig joins two 128x128 sectors with a portal at x=128 (linedef 2).
func createTwoRoomConfig() *config.LevelConfig {
	return &config.LevelConfig{
		ID: "two-rooms",
		Vertices: [][2]float64{
			{0, 0}, {0, 128}, {128, 128}, {128, 0}, {256, 128}, {256, 0},
		},
		Linedefs: []config.LinedefConfig{
			{V1: 0, V2: 1, Front: 0},
			{V1: 1, V2: 2, Front: 0},
			{V1: 2, V2: 3, Front: 0, Back: intPtr(1)},
			{V1: 3, V2: 0, Front: 0},
			{V1: 2, V2: 4, Front: 1},
			{V1: 4, V2: 5, Front: 1},
			{V1: 5, V2: 3, Front: 1},
		},
		Sectors: []config.SectorConfig{
			{Floor: 0, Ceiling: 128, Light: 1},
			{Floor: 0, Ceiling: 128, Light: 0.5},
		},
		Subsectors: []config.SubsectorConfig{{Sector: 0}, {Sector: 1}},
		Nodes: []config.NodeConfig{
			{X: 128, Y: 0, DX: 0, DY: 1,
				Front: config.NodeChildConfig{Subsector: true, Index: 1},
				Back:  config.NodeChildConfig{Subsector: true, Index: 0}},
		},
	}
}

// createWallConfig is one solid wall at x=50 spanning y -100..100
func createWallConfig() *config.LevelConfig {
	return &config.LevelConfig{
		ID:         "wall",
		Vertices:   [][2]float64{{50, -100}, {50, 100}},
		Linedefs:   []config.LinedefConfig{{V1: 0, V2: 1, Front: 0}},
		Sectors:    []config.SectorConfig{{Floor: 0, Ceiling: 128, Light: 1}},
		Subsectors: []config.SubsectorConfig{{Sector: 0}},
	}
}

func createTestInstance(t *testing.T, cfg *config.LevelConfig) *level.MapInstance {
	t.Helper()
	m, err := LoadLevel(cfg)
	require.NoError(t, err)
	return level.NewMapInstance(m)
}

func createTestPhysics() *PhysicsSystem {
	return NewPhysicsSystem(config.DefaultPhysics(), nil)
}

func boxOf(radius, height float64) geometry.AABB3 {
	return ecs.BoxCollider{Radius: radius, Height: height}.BBox()
}

func assertVec3InDelta(t *testing.T, want, got mgl64.Vec3, delta float64, msgAndArgs ...interface{}) {
	t.Helper()
	for i := 0; i < 3; i++ {
		require.InDelta(t, want[i], got[i], delta, msgAndArgs...)
	}
}
