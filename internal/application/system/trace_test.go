package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/sectorphys/internal/infrastructure/config"
	"github.com/younwookim/sectorphys/internal/geometry"
)

func move(from, dir mgl64.Vec3) geometry.Line3 {
	return geometry.NewLine3(from, dir)
}

func TestTrace_CornerHitsWall(t *testing.T) {
	mi := createTestInstance(t, createWallConfig())

	hit := Trace(move(mgl64.Vec3{}, mgl64.Vec3{100, 0, 0}), boxOf(8, 56), mi)

	require.NotNil(t, hit)
	assert.InDelta(t, 0.42, hit.Fraction, 1e-12)
	assert.Equal(t, mgl64.Vec3{-1, 0, 0}, hit.Normal)
	assert.Equal(t, 0, hit.Linedef)
}

func TestTrace_NormalOpposesApproach(t *testing.T) {
	mi := createTestInstance(t, createWallConfig())

	hit := Trace(move(mgl64.Vec3{100, 0, 0}, mgl64.Vec3{-100, 0, 0}), boxOf(8, 56), mi)

	require.NotNil(t, hit)
	assert.InDelta(t, 0.42, hit.Fraction, 1e-12)
	assert.Equal(t, mgl64.Vec3{1, 0, 0}, hit.Normal)
}

func TestTrace_WallEndpointHitsBoxEdge(t *testing.T) {
	// A wall stub pointing at the actor: no corner ever touches it,
	// only its near endpoint runs into the leading box edge.
	cfg := createWallConfig()
	cfg.Vertices = [][2]float64{{50, 0}, {80, 0}}
	mi := createTestInstance(t, cfg)

	hit := Trace(move(mgl64.Vec3{}, mgl64.Vec3{100, 0, 0}), boxOf(8, 56), mi)

	require.NotNil(t, hit)
	assert.InDelta(t, 0.42, hit.Fraction, 1e-12)
	assert.Equal(t, mgl64.Vec3{-1, 0, 0}, hit.Normal)

	// The edge normal is fixed per box edge, whatever the approach angle
	hit = Trace(move(mgl64.Vec3{}, mgl64.Vec3{100, 4, 0}), boxOf(8, 56), mi)
	require.NotNil(t, hit)
	assert.Equal(t, mgl64.Vec3{-1, 0, 0}, hit.Normal)
}

func TestTrace_Misses(t *testing.T) {
	mi := createTestInstance(t, createWallConfig())
	box := boxOf(8, 56)

	tests := []struct {
		name string
		from mgl64.Vec3
		dir  mgl64.Vec3
	}{
		{"too short", mgl64.Vec3{}, mgl64.Vec3{30, 0, 0}},
		{"touching at the end is not a hit", mgl64.Vec3{}, mgl64.Vec3{42, 0, 0}},
		{"moving away", mgl64.Vec3{}, mgl64.Vec3{-100, 0, 0}},
		{"parallel", mgl64.Vec3{}, mgl64.Vec3{0, 100, 0}},
		{"passes beyond the end", mgl64.Vec3{0, 200, 0}, mgl64.Vec3{100, 0, 0}},
		{"zero move", mgl64.Vec3{}, mgl64.Vec3{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, Trace(move(tt.from, tt.dir), box, mi))
		})
	}
}

func TestTrace_IgnoresVerticalDisplacement(t *testing.T) {
	mi := createTestInstance(t, createWallConfig())

	flat := Trace(move(mgl64.Vec3{}, mgl64.Vec3{100, 0, 0}), boxOf(8, 56), mi)
	steep := Trace(move(mgl64.Vec3{}, mgl64.Vec3{100, 0, 500}), boxOf(8, 56), mi)

	require.NotNil(t, flat)
	assert.Equal(t, flat, steep)
}

func TestTrace_Portal(t *testing.T) {
	box := boxOf(16, 56)
	step := move(mgl64.Vec3{64, 64, 0}, mgl64.Vec3{100, 0, 0})

	mi := createTestInstance(t, createTwoRoomConfig())
	assert.Nil(t, Trace(step, box, mi), "open portal does not block")

	mi.SetFloorHeight(1, 24)
	hit := Trace(step, box, mi)
	require.NotNil(t, hit)
	assert.Equal(t, 2, hit.Linedef)

	// Standing on the step height fits again
	assert.Nil(t, Trace(move(mgl64.Vec3{64, 64, 24}, mgl64.Vec3{100, 0, 0}), box, mi))

	mi.ResetSector(1)
	mi.SetFloorHeight(1, 64)
	mi.SetCeilingHeight(1, 0)
	assert.NotNil(t, Trace(step, box, mi), "inverted sector always blocks")
}

func TestTrace_FarWallBehindPortal(t *testing.T) {
	mi := createTestInstance(t, createTwoRoomConfig())

	hit := Trace(move(mgl64.Vec3{64, 64, 0}, mgl64.Vec3{400, 0, 0}), boxOf(16, 56), mi)

	require.NotNil(t, hit)
	assert.Equal(t, 5, hit.Linedef)
	assert.InDelta(t, (256.0-80.0)/400.0, hit.Fraction, 1e-12)
}

func TestTrace_EarliestContactWins(t *testing.T) {
	cfg := createWallConfig()
	cfg.Vertices = append(cfg.Vertices, [2]float64{30, -100}, [2]float64{30, 100})
	cfg.Linedefs = append(cfg.Linedefs, config.LinedefConfig{V1: 2, V2: 3, Front: 0})
	mi := createTestInstance(t, cfg)

	hit := Trace(move(mgl64.Vec3{}, mgl64.Vec3{100, 0, 0}), boxOf(8, 56), mi)

	require.NotNil(t, hit)
	assert.Equal(t, 1, hit.Linedef)
	assert.InDelta(t, 0.22, hit.Fraction, 1e-12)
}

func TestTrace_TieBreakIsDeterministic(t *testing.T) {
	// Two coincident walls report the same fraction
	cfg := createWallConfig()
	cfg.Vertices = append(cfg.Vertices, [2]float64{50, 100}, [2]float64{50, -100})
	cfg.Linedefs = append(cfg.Linedefs, config.LinedefConfig{V1: 2, V2: 3, Front: 0})
	mi := createTestInstance(t, cfg)

	step := move(mgl64.Vec3{}, mgl64.Vec3{100, 0, 0})
	first := Trace(step, boxOf(8, 56), mi)
	require.NotNil(t, first)
	assert.Equal(t, 0, first.Linedef, "lowest linedef index wins a tie")

	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Trace(step, boxOf(8, 56), mi))
	}
}
