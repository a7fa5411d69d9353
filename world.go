// Package collide2d implements a stateless-per-frame 2D collision detection
// engine: a uniform-grid broadphase, exact AABB/circle/point narrowphase
// (static overlap and swept time-of-impact), tile raycasting, and a unified
// query surface over both colliders and tilemaps. It detects; it never
// resolves or integrates motion, mirroring the split the teacher engine
// draws between its physics World and its higher-level gameplay layer.
package collide2d

import (
	"time"

	"github.com/akmonengine/collide2d/collider"
	"github.com/akmonengine/collide2d/event"
	"github.com/akmonengine/collide2d/tilemap"
	"github.com/go-gl/mathgl/mgl32"
)

// World is the engine's entry point: push this frame's colliders, end the
// frame to freeze AABBs and rebuild the broadphase grid, then generate and
// drain events. Every field a caller reaches is rebuilt or reset every
// frame except the attached tilemaps, which persist across frames the way
// the teacher's World persists its rigid bodies across ticks.
type World struct {
	cfg WorldConfig

	arena *collider.FrameArena
	grid  *grid
	tiles *tilemap.Registry
	events *event.Buffer

	timing WorldTiming
	stats  WorldStats
}

// NewWorld validates cfg and constructs a World ready for its first frame.
func NewWorld(cfg WorldConfig) (*World, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	arena := collider.NewFrameArena()
	arena.StrictKeys = cfg.StrictKeys

	return &World{
		cfg:    cfg,
		arena:  arena,
		grid:   newGrid(cfg.CellSize),
		tiles:  tilemap.NewRegistry(),
		events: event.NewBuffer(cfg.MaxEvents),
	}, nil
}

// BeginFrame resets the collider arena, the broadphase grid and the event
// buffer, keeping their backing capacity from the previous frame. Attached
// tilemaps are untouched.
func (w *World) BeginFrame() {
	w.arena.Reset()
	w.grid.reset()
	w.events.Reset()
	w.timing = WorldTiming{}
}

// PushAABB records an AABB collider for the current frame and returns its
// FrameId. key, if non-nil, lets the caller resolve the collider later by
// its own identity via OverlapByKey/SweepByKey.
func (w *World) PushAABB(center, half, vel mgl32.Vec2, mask collider.LayerMask, key *collider.ColKey) collider.FrameId {
	return w.arena.PushAABB(center, half, vel, mask, key)
}

// PushCircle records a circle collider for the current frame.
func (w *World) PushCircle(center mgl32.Vec2, radius float32, vel mgl32.Vec2, mask collider.LayerMask, key *collider.ColKey) collider.FrameId {
	return w.arena.PushCircle(center, radius, vel, mask, key)
}

// PushPoint records a zero-extent point collider for the current frame.
func (w *World) PushPoint(pos, vel mgl32.Vec2, mask collider.LayerMask, key *collider.ColKey) collider.FrameId {
	return w.arena.PushPoint(pos, vel, mask, key)
}

// ColliderSpec describes one collider for PushBatch, letting a caller stage
// a frame's worth of pushes as a single slice instead of one call per
// shape.
type ColliderSpec struct {
	Kind        collider.ShapeKind
	Center      mgl32.Vec2
	HalfExtents mgl32.Vec2
	Radius      float32
	Velocity    mgl32.Vec2
	Mask        collider.LayerMask
	Key         *collider.ColKey
}

// PushBatch pushes every spec in order and returns their FrameIds in the
// same order, the batched counterpart to the teacher's single AddBody call.
func (w *World) PushBatch(specs []ColliderSpec) []collider.FrameId {
	ids := make([]collider.FrameId, len(specs))
	for i, s := range specs {
		switch s.Kind {
		case collider.ShapeCircle:
			ids[i] = w.PushCircle(s.Center, s.Radius, s.Velocity, s.Mask, s.Key)
		case collider.ShapePoint:
			ids[i] = w.PushPoint(s.Center, s.Velocity, s.Mask, s.Key)
		default:
			ids[i] = w.PushAABB(s.Center, s.HalfExtents, s.Velocity, s.Mask, s.Key)
		}
	}
	return ids
}

// EndFrame freezes every pushed collider's static and swept AABB and
// rebuilds the broadphase grid from them. Must be called once after all of
// the frame's pushes and before GenerateEvents or any query.
func (w *World) EndFrame() {
	if w.cfg.EnableTiming {
		t0 := time.Now()
		w.arena.ComputeFrameAABBs(w.cfg.Dt)
		w.timing.EndFrameAABBsMs = msSince(t0)

		t1 := time.Now()
		w.grid.build(w.arena.All(), w.cfg.TightenSweptAABB)
		w.timing.EndFrameGridMs = msSince(t1)
	} else {
		w.arena.ComputeFrameAABBs(w.cfg.Dt)
		w.grid.build(w.arena.All(), w.cfg.TightenSweptAABB)
	}

	w.stats.Entries = w.arena.Len()
	w.stats.OccupiedCells = len(w.grid.cellsInOrder())
}

// AttachTilemap registers a new tilemap, valid across frame boundaries
// until Detach.
func (w *World) AttachTilemap(desc tilemap.Desc) (tilemap.TileMapRef, error) {
	return w.tiles.Attach(desc)
}

// UpdateTiles overwrites the solid bits of an attached tilemap within rect.
func (w *World) UpdateTiles(ref tilemap.TileMapRef, rect tilemap.Rect, data []bool) error {
	return w.tiles.UpdateTiles(ref, rect, data)
}

// DetachTilemap removes a tilemap from the world.
func (w *World) DetachTilemap(ref tilemap.TileMapRef) {
	w.tiles.Detach(ref)
}

// Tilemap returns the attached tilemap for ref, if any.
func (w *World) Tilemap(ref tilemap.TileMapRef) (*tilemap.Tilemap, bool) {
	return w.tiles.Get(ref)
}

// DrainEvents returns every event produced by the most recent GenerateEvents
// call and clears the buffer for the next one.
func (w *World) DrainEvents() []event.Event {
	return w.events.Drain()
}

// Timing returns the most recent frame's instrumentation. Always zero
// unless WorldConfig.EnableTiming is set.
func (w *World) Timing() WorldTiming {
	return w.timing
}

// DebugStats returns the most recent frame's counters.
func (w *World) DebugStats() WorldStats {
	return w.stats
}

func msSince(t0 time.Time) float64 {
	return float64(time.Since(t0).Nanoseconds()) / 1e6
}
