package collide2d

import (
	"math"

	"github.com/akmonengine/collide2d/collider"
	"github.com/akmonengine/collide2d/event"
	"github.com/akmonengine/collide2d/narrowphase"
	"github.com/akmonengine/collide2d/tilemap"
	"github.com/go-gl/mathgl/mgl32"
)

// QueryPoint returns every collider whose shape contains p and consents to
// mask.
func (w *World) QueryPoint(p mgl32.Vec2, mask collider.LayerMask) []collider.FrameId {
	box := collider.AABB{Min: p, Max: p}
	return w.queryShape(box, mask, func(c *collider.Collider) bool {
		return shapeContainsPoint(c, p)
	})
}

// QueryAABB returns every collider whose shape overlaps box and consents to
// mask.
func (w *World) QueryAABB(box collider.AABB, mask collider.LayerMask) []collider.FrameId {
	return w.queryShape(box, mask, func(c *collider.Collider) bool {
		return shapeOverlapsAABB(c, box)
	})
}

// QueryCircle returns every collider whose shape overlaps a circle and
// consents to mask.
func (w *World) QueryCircle(center mgl32.Vec2, radius float32, mask collider.LayerMask) []collider.FrameId {
	r := mgl32.Vec2{radius, radius}
	box := collider.AABB{Min: center.Sub(r), Max: center.Add(r)}
	return w.queryShape(box, mask, func(c *collider.Collider) bool {
		return shapeOverlapsCircle(c, center, radius)
	})
}

// queryShape scans the grid cells covering box, deduplicates candidates via
// the grid's visit epoch, filters them by consent against mask, and returns
// those accepted by test in ascending FrameId order (the arena's push
// order, hence deterministic).
func (w *World) queryShape(box collider.AABB, mask collider.LayerMask, test func(c *collider.Collider) bool) []collider.FrameId {
	colliders := w.arena.All()
	epoch := w.grid.nextVisitEpoch(len(colliders))

	var hits []collider.FrameId
	w.grid.queryCells(box, func(ids []collider.FrameId) {
		for _, id := range ids {
			if !w.grid.markVisited(epoch, id) {
				continue
			}
			c := &colliders[id]
			if !collider.Consent(mask, c.Mask, w.cfg.RequireMutualConsent) {
				continue
			}
			if test(c) {
				hits = append(hits, id)
			}
		}
	})

	sortFrameIds(hits)
	return hits
}

func sortFrameIds(ids []collider.FrameId) {
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j-1] > ids[j]; j-- {
			ids[j-1], ids[j] = ids[j], ids[j-1]
		}
	}
}

// QueryPointAll returns every collider and solid tile containing p that
// consents to mask, as a unified, order-stable set of body references:
// colliders first in FrameId order, then tiles in attach/row-major order.
func (w *World) QueryPointAll(p mgl32.Vec2, mask collider.LayerMask) []event.BodyRef {
	refs := colliderRefs(w.QueryPoint(p, mask))
	for _, tm := range w.tiles.All() {
		if !collider.Consent(mask, tm.Mask(), w.cfg.RequireMutualConsent) {
			continue
		}
		cx, cy := tm.WorldToCell(p)
		if tm.IsSolid(cx, cy) {
			refs = append(refs, event.TileBodyRef(tilemap.TileRef{Map: tm.Ref(), CX: cx, CY: cy}))
		}
	}
	return refs
}

// QueryAABBAll returns every collider and solid tile overlapping box that
// consents to mask.
func (w *World) QueryAABBAll(box collider.AABB, mask collider.LayerMask) []event.BodyRef {
	refs := colliderRefs(w.QueryAABB(box, mask))
	for _, tm := range w.tiles.All() {
		if !collider.Consent(mask, tm.Mask(), w.cfg.RequireMutualConsent) {
			continue
		}
		minX, minY, maxX, maxY := tm.CellRange(box)
		for cy := minY; cy <= maxY; cy++ {
			for cx := minX; cx <= maxX; cx++ {
				if tm.IsSolid(cx, cy) {
					refs = append(refs, event.TileBodyRef(tilemap.TileRef{Map: tm.Ref(), CX: cx, CY: cy}))
				}
			}
		}
	}
	return refs
}

// QueryCircleAll returns every collider and solid tile overlapping a circle
// that consents to mask.
func (w *World) QueryCircleAll(center mgl32.Vec2, radius float32, mask collider.LayerMask) []event.BodyRef {
	refs := colliderRefs(w.QueryCircle(center, radius, mask))
	r := mgl32.Vec2{radius, radius}
	box := collider.AABB{Min: center.Sub(r), Max: center.Add(r)}
	for _, tm := range w.tiles.All() {
		if !collider.Consent(mask, tm.Mask(), w.cfg.RequireMutualConsent) {
			continue
		}
		minX, minY, maxX, maxY := tm.CellRange(box)
		for cy := minY; cy <= maxY; cy++ {
			for cx := minX; cx <= maxX; cx++ {
				if !tm.IsSolid(cx, cy) {
					continue
				}
				if circleOverlapsTile(center, radius, tm.CellAABB(cx, cy)) {
					refs = append(refs, event.TileBodyRef(tilemap.TileRef{Map: tm.Ref(), CX: cx, CY: cy}))
				}
			}
		}
	}
	return refs
}

func colliderRefs(ids []collider.FrameId) []event.BodyRef {
	refs := make([]event.BodyRef, len(ids))
	for i, id := range ids {
		refs[i] = event.ColliderRef(id)
	}
	return refs
}

// Raycast casts a ray from origin along dir out to maxT (in dir's own
// units: position(t) = origin + dir*t), returning the nearest body hit
// among both colliders and attached tilemaps that consent to mask.
func (w *World) Raycast(origin, dir mgl32.Vec2, maxT float32, mask collider.LayerMask) (event.BodyRef, narrowphase.SweepHit, bool) {
	end := origin.Add(dir.Mul(maxT))
	segBox := collider.AABB{Min: origin, Max: origin}.Union(collider.AABB{Min: end, Max: end})

	colliders := w.arena.All()
	epoch := w.grid.nextVisitEpoch(len(colliders))

	bestT := float32(math.MaxFloat32)
	var bestRef event.BodyRef
	var bestHit narrowphase.SweepHit
	found := false

	w.grid.queryCells(segBox, func(ids []collider.FrameId) {
		for _, id := range ids {
			if !w.grid.markVisited(epoch, id) {
				continue
			}
			c := &colliders[id]
			if !collider.Consent(mask, c.Mask, w.cfg.RequireMutualConsent) {
				continue
			}
			t, n, ok := rayVsShape(c, origin, dir)
			if ok && t >= 0 && t <= maxT && t < bestT {
				bestT, found = t, true
				bestRef = event.ColliderRef(id)
				bestHit = narrowphase.SweepHit{T: t, Normal: n}
			}
		}
	})

	if tileRef, tileHit, ok := w.RaycastTiles(origin, dir, maxT, mask); ok && tileHit.T < bestT {
		bestT, found = tileHit.T, true
		bestRef = event.TileBodyRef(tileRef)
		bestHit = tileHit
	}

	return bestRef, bestHit, found
}

func rayVsShape(c *collider.Collider, origin, dir mgl32.Vec2) (float32, mgl32.Vec2, bool) {
	switch c.Kind {
	case collider.ShapeAABB:
		return narrowphase.RaySlab(origin, dir, c.StaticAABB)
	case collider.ShapeCircle:
		return narrowphase.RayCircle(origin, dir, c.Center, c.Radius)
	default:
		return narrowphase.RayCircle(origin, dir, c.Center, 0)
	}
}

// RaycastTiles casts a ray against attached tilemaps that consent to mask,
// returning the nearest solid-cell hit across every tilemap.
func (w *World) RaycastTiles(origin, dir mgl32.Vec2, maxT float32, mask collider.LayerMask) (tilemap.TileRef, narrowphase.SweepHit, bool) {
	bestT := float32(math.MaxFloat32)
	var bestRef tilemap.TileRef
	var bestHit narrowphase.SweepHit
	found := false

	for _, tm := range w.tiles.All() {
		if !collider.Consent(mask, tm.Mask(), w.cfg.RequireMutualConsent) {
			continue
		}
		if ref, hit, ok := tm.Raycast(origin, dir, maxT, w.cfg.TileEps); ok && hit.T < bestT {
			bestT, found = hit.T, true
			bestRef, bestHit = ref, hit
		}
	}
	return bestRef, bestHit, found
}

// SweepAABBTiles sweeps an AABB collider's shape (center/half-extents) by
// vel*Dt against every attached tilemap that consents to mask, returning
// the earliest hit.
func (w *World) SweepAABBTiles(center, half, vel mgl32.Vec2, mask collider.LayerMask) (tilemap.TileRef, narrowphase.SweepHit, bool) {
	box := collider.AABB{Min: center.Sub(half), Max: center.Add(half)}
	bestT := float32(math.MaxFloat32)
	var bestRef tilemap.TileRef
	var bestHit narrowphase.SweepHit
	found := false

	for _, tm := range w.tiles.All() {
		if !collider.Consent(mask, tm.Mask(), w.cfg.RequireMutualConsent) {
			continue
		}
		if ref, hit, ok := tilemap.SweptAABBVsTiles(tm, box, vel, w.cfg.Dt, w.cfg.TileEps); ok && hit.T < bestT {
			bestT, found = hit.T, true
			bestRef, bestHit = ref, hit
		}
	}
	return bestRef, bestHit, found
}

// SweepCircleTiles sweeps a circle by vel*Dt against every attached
// tilemap that consents to mask, returning the earliest hit.
func (w *World) SweepCircleTiles(center mgl32.Vec2, radius float32, vel mgl32.Vec2, mask collider.LayerMask) (tilemap.TileRef, narrowphase.SweepHit, bool) {
	bestT := float32(math.MaxFloat32)
	var bestRef tilemap.TileRef
	var bestHit narrowphase.SweepHit
	found := false

	for _, tm := range w.tiles.All() {
		if !collider.Consent(mask, tm.Mask(), w.cfg.RequireMutualConsent) {
			continue
		}
		if ref, hit, ok := tilemap.SweptCircleVsTiles(tm, center, radius, vel, w.cfg.Dt, w.cfg.TileEps); ok && hit.T < bestT {
			bestT, found = hit.T, true
			bestRef, bestHit = ref, hit
		}
	}
	return bestRef, bestHit, found
}

func shapeContainsPoint(c *collider.Collider, p mgl32.Vec2) bool {
	switch c.Kind {
	case collider.ShapeAABB:
		return c.StaticAABB.ContainsPoint(p)
	case collider.ShapeCircle:
		return c.Center.Sub(p).Len() <= c.Radius
	default:
		return c.Center == p
	}
}

func shapeOverlapsAABB(c *collider.Collider, box collider.AABB) bool {
	switch c.Kind {
	case collider.ShapeCircle:
		return circleOverlapsTile(c.Center, c.Radius, box)
	default:
		return c.StaticAABB.Overlaps(box)
	}
}

func shapeOverlapsCircle(c *collider.Collider, center mgl32.Vec2, radius float32) bool {
	switch c.Kind {
	case collider.ShapeAABB:
		return circleOverlapsTile(center, radius, c.StaticAABB)
	case collider.ShapeCircle:
		return c.Center.Sub(center).Len() <= c.Radius+radius
	default:
		return c.Center.Sub(center).Len() <= radius
	}
}

func circleOverlapsTile(center mgl32.Vec2, radius float32, box collider.AABB) bool {
	cx := clampf32(center.X(), box.Min.X(), box.Max.X())
	cy := clampf32(center.Y(), box.Min.Y(), box.Max.Y())
	dx := center.X() - cx
	dy := center.Y() - cy
	return dx*dx+dy*dy <= radius*radius
}

func clampf32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
