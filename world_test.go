package collide2d

import (
	"testing"

	"github.com/akmonengine/collide2d/collider"
	"github.com/akmonengine/collide2d/event"
	"github.com/akmonengine/collide2d/tilemap"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorld(t *testing.T) *World {
	t.Helper()
	w, err := NewWorld(WorldConfig{
		CellSize:            2,
		Dt:                  1.0 / 60,
		EnableOverlapEvents: true,
		EnableSweepEvents:   true,
		TileEps:             0.01,
	})
	require.NoError(t, err)
	return w
}

func TestWorldFrameLifecycleResetsArena(t *testing.T) {
	w := newTestWorld(t)
	w.BeginFrame()
	w.PushAABB(mgl32.Vec2{0, 0}, mgl32.Vec2{1, 1}, mgl32.Vec2{}, collider.LayerMask{}, nil)
	w.EndFrame()
	assert.Equal(t, 1, w.DebugStats().Entries)

	w.BeginFrame()
	assert.Equal(t, 0, w.arena.Len())
}

func TestWorldPushBatch(t *testing.T) {
	w := newTestWorld(t)
	w.BeginFrame()

	ids := w.PushBatch([]ColliderSpec{
		{Kind: collider.ShapeAABB, Center: mgl32.Vec2{0, 0}, HalfExtents: mgl32.Vec2{1, 1}},
		{Kind: collider.ShapeCircle, Center: mgl32.Vec2{5, 5}, Radius: 1},
		{Kind: collider.ShapePoint, Center: mgl32.Vec2{9, 9}},
	})

	require.Len(t, ids, 3)
	w.EndFrame()
	assert.Equal(t, 3, w.DebugStats().Entries)
}

func TestWorldGenerateEventsOverlappingPair(t *testing.T) {
	w := newTestWorld(t)
	w.BeginFrame()
	w.PushAABB(mgl32.Vec2{0, 0}, mgl32.Vec2{1, 1}, mgl32.Vec2{}, collider.LayerMask{Layer: 1, CollidesWith: 1}, nil)
	w.PushAABB(mgl32.Vec2{1.5, 0}, mgl32.Vec2{1, 1}, mgl32.Vec2{}, collider.LayerMask{Layer: 1, CollidesWith: 1}, nil)
	w.EndFrame()

	w.GenerateEvents()
	events := w.DrainEvents()
	// Both colliders are stationary: the overlap test fires, but the sweep
	// test must not, since there is no relative velocity to sweep along.
	require.Len(t, events, 1)
	assert.Equal(t, event.KindOverlap, events[0].Kind)
}

func TestWorldGenerateEventsRespectsLayerMaskExclusion(t *testing.T) {
	w := newTestWorld(t)
	w.BeginFrame()
	w.PushAABB(mgl32.Vec2{0, 0}, mgl32.Vec2{1, 1}, mgl32.Vec2{}, collider.LayerMask{Layer: 1, CollidesWith: 1, Exclude: 2}, nil)
	w.PushAABB(mgl32.Vec2{1.5, 0}, mgl32.Vec2{1, 1}, mgl32.Vec2{}, collider.LayerMask{Layer: 2, CollidesWith: 1}, nil)
	w.EndFrame()

	w.GenerateEvents()
	assert.Empty(t, w.DrainEvents())
}

func TestWorldGenerateEventsCapsAndCountsDropped(t *testing.T) {
	w := newTestWorld(t)
	w.cfg.MaxEvents = 0
	w.events.SetCap(0)
	w.BeginFrame()

	mask := collider.LayerMask{Layer: 1, CollidesWith: 1}
	// Pack overlapping colliders densely enough to generate multiple pairs.
	for i := 0; i < 4; i++ {
		w.PushAABB(mgl32.Vec2{float32(i) * 0.1, 0}, mgl32.Vec2{1, 1}, mgl32.Vec2{}, mask, nil)
	}
	w.EndFrame()
	w.events.SetCap(1)
	w.GenerateEvents()

	stats := w.DebugStats()
	assert.Equal(t, 1, len(w.DrainEvents()))
	assert.Greater(t, stats.EventsEmitted, 1)
	assert.Greater(t, stats.EventsDropped, 0)
}

func TestWorldAttachAndSweepTiles(t *testing.T) {
	w, err := NewWorld(WorldConfig{CellSize: 2, Dt: 1, TileEps: 0.01})
	require.NoError(t, err)

	solids := make([]bool, 100)
	for cy := 0; cy < 10; cy++ {
		solids[cy*10+5] = true
	}
	mask := collider.LayerMask{Layer: 1, CollidesWith: 1}
	_, err = w.AttachTilemap(tilemap.Desc{Cell: 1, Width: 10, Height: 10, Solids: solids, Mask: mask})
	require.NoError(t, err)

	_, hit, ok := w.SweepAABBTiles(mgl32.Vec2{0.5, 0.5}, mgl32.Vec2{0.5, 0.5}, mgl32.Vec2{10, 0}, mask)
	require.True(t, ok)
	assert.Greater(t, float64(hit.T), 0.0)
}
