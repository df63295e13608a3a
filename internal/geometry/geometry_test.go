package geometry

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLine2_Intersect(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Line2
		wantOK bool
		tA, tB float64
	}{
		{
			name:   "perpendicular crossing",
			a:      NewLine2(mgl64.Vec2{0, 0}, mgl64.Vec2{100, 0}),
			b:      NewLine2(mgl64.Vec2{50, -100}, mgl64.Vec2{0, 200}),
			wantOK: true,
			tA:     0.5, tB: 0.5,
		},
		{
			name:   "crossing outside both segments still reports parameters",
			a:      NewLine2(mgl64.Vec2{0, 0}, mgl64.Vec2{10, 0}),
			b:      NewLine2(mgl64.Vec2{20, 10}, mgl64.Vec2{0, 5}),
			wantOK: true,
			tA:     2, tB: -2,
		},
		{
			name:   "parallel",
			a:      NewLine2(mgl64.Vec2{0, 0}, mgl64.Vec2{10, 0}),
			b:      NewLine2(mgl64.Vec2{0, 5}, mgl64.Vec2{20, 0}),
			wantOK: false,
		},
		{
			name:   "collinear",
			a:      NewLine2(mgl64.Vec2{0, 0}, mgl64.Vec2{10, 10}),
			b:      NewLine2(mgl64.Vec2{5, 5}, mgl64.Vec2{1, 1}),
			wantOK: false,
		},
		{
			name:   "zero length direction",
			a:      NewLine2(mgl64.Vec2{0, 0}, mgl64.Vec2{0, 0}),
			b:      NewLine2(mgl64.Vec2{-5, -5}, mgl64.Vec2{10, 10}),
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tA, tB, ok := tt.a.Intersect(tt.b)
			require.Equal(t, tt.wantOK, ok)
			if !ok {
				return
			}
			assert.InDelta(t, tt.tA, tA, 1e-12)
			assert.InDelta(t, tt.tB, tB, 1e-12)
		})
	}
}

func TestLine2_IntersectPointsAgree(t *testing.T) {
	a := NewLine2(mgl64.Vec2{3, -7}, mgl64.Vec2{11, 13})
	b := NewLine2(mgl64.Vec2{-4, 9}, mgl64.Vec2{17, -5})

	tA, tB, ok := a.Intersect(b)
	require.True(t, ok)

	pa := a.Point.Add(a.Dir.Mul(tA))
	pb := b.Point.Add(b.Dir.Mul(tB))
	assert.InDelta(t, pa[0], pb[0], 1e-9)
	assert.InDelta(t, pa[1], pb[1], 1e-9)
}

func TestLine3_XY(t *testing.T) {
	l := NewLine3(mgl64.Vec3{1, 2, 3}, mgl64.Vec3{4, 5, 6})
	l2 := l.XY()

	assert.Equal(t, mgl64.Vec2{1, 2}, l2.Point)
	assert.Equal(t, mgl64.Vec2{4, 5}, l2.Dir)
	assert.Equal(t, mgl64.Vec2{5, 7}, l2.End())
}

func TestAABB2_Overlaps(t *testing.T) {
	base := NewAABB2(mgl64.Vec2{0, 0}, mgl64.Vec2{10, 10})

	tests := []struct {
		name  string
		other AABB2
		want  bool
	}{
		{"inside", NewAABB2(mgl64.Vec2{2, 2}, mgl64.Vec2{3, 3}), true},
		{"partial", NewAABB2(mgl64.Vec2{5, 5}, mgl64.Vec2{15, 15}), true},
		{"touching edge is inclusive", NewAABB2(mgl64.Vec2{10, 0}, mgl64.Vec2{20, 10}), true},
		{"touching corner is inclusive", NewAABB2(mgl64.Vec2{10, 10}, mgl64.Vec2{20, 20}), true},
		{"separated on x", NewAABB2(mgl64.Vec2{11, 0}, mgl64.Vec2{20, 10}), false},
		{"separated on y", NewAABB2(mgl64.Vec2{0, -5}, mgl64.Vec2{10, -0.5}), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(base), "overlap must be symmetric")
		})
	}
}

func TestAABB2_UnionOffset(t *testing.T) {
	a := NewAABB2(mgl64.Vec2{-8, -8}, mgl64.Vec2{8, 8})
	moved := a.Offset(mgl64.Vec2{100, -20})

	assert.Equal(t, mgl64.Vec2{92, -28}, moved.Min)
	assert.Equal(t, mgl64.Vec2{108, -12}, moved.Max)

	u := a.Union(moved)
	assert.Equal(t, mgl64.Vec2{-8, -28}, u.Min)
	assert.Equal(t, mgl64.Vec2{108, 8}, u.Max)
}

func TestAABB2_Corners(t *testing.T) {
	b := NewAABB2(mgl64.Vec2{1, 2}, mgl64.Vec2{3, 4})
	c := b.Corners()

	assert.Equal(t, mgl64.Vec2{1, 2}, c[0])
	assert.Equal(t, mgl64.Vec2{1, 4}, c[1])
	assert.Equal(t, mgl64.Vec2{3, 4}, c[2])
	assert.Equal(t, mgl64.Vec2{3, 2}, c[3])
}

func TestAABB2FromPoints(t *testing.T) {
	b := AABB2FromPoints(mgl64.Vec2{5, -1}, mgl64.Vec2{-3, 7})

	assert.Equal(t, mgl64.Vec2{-3, -1}, b.Min)
	assert.Equal(t, mgl64.Vec2{5, 7}, b.Max)
}

func TestNewAABB_PanicsOnMalformed(t *testing.T) {
	assert.Panics(t, func() {
		NewAABB2(mgl64.Vec2{1, 0}, mgl64.Vec2{0, 1})
	})
	assert.Panics(t, func() {
		NewAABB3(mgl64.Vec3{0, 0, 5}, mgl64.Vec3{1, 1, 4})
	})
	assert.NotPanics(t, func() {
		NewAABB3(mgl64.Vec3{1, 1, 1}, mgl64.Vec3{1, 1, 1})
	})
}

func TestFromRadiusHeight(t *testing.T) {
	b := FromRadiusHeight(16, 56)

	assert.Equal(t, mgl64.Vec3{-16, -16, 0}, b.Min)
	assert.Equal(t, mgl64.Vec3{16, 16, 56}, b.Max)

	flat := b.XY()
	assert.Equal(t, mgl64.Vec2{-16, -16}, flat.Min)
	assert.Equal(t, mgl64.Vec2{16, 16}, flat.Max)
}

func TestAABB3_OverlapsUnionOffset(t *testing.T) {
	a := FromRadiusHeight(1, 2)
	b := a.Offset(mgl64.Vec3{0, 0, 3})

	assert.False(t, a.Overlaps(b))
	assert.True(t, a.Overlaps(a.Offset(mgl64.Vec3{2, 2, 2})))

	u := a.Union(b)
	assert.Equal(t, mgl64.Vec3{-1, -1, 0}, u.Min)
	assert.Equal(t, mgl64.Vec3{1, 1, 5}, u.Max)
}
