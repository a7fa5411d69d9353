package tilemap

import (
	"math"

	"github.com/akmonengine/collide2d/collider"
	"github.com/akmonengine/collide2d/narrowphase"
	"github.com/go-gl/mathgl/mgl32"
)

// SweptAABBVsTiles sweeps an AABB (given by its static bounds and a world
// velocity) against the tilemap, returning the earliest time of impact
// among every solid cell the swept AABB overlaps.
func SweptAABBVsTiles(tm *Tilemap, start collider.AABB, vel mgl32.Vec2, dt, tileEps float32) (TileRef, narrowphase.SweepHit, bool) {
	half := mgl32.Vec2{(start.Max.X() - start.Min.X()) / 2, (start.Max.Y() - start.Min.Y()) / 2}
	startCenter := start.Center()
	displacement := vel.Mul(dt)
	swept := start.Union(start.Translate(displacement))

	startEmbedded := tm.overlapsAnySolid(start)

	minX, minY, maxX, maxY := tm.CellRange(swept)
	bestT := float32(math.MaxFloat32)
	var bestNormal mgl32.Vec2
	var bestCX, bestCY int32
	found := false

	for cy := minY; cy <= maxY; cy++ {
		for cx := minX; cx <= maxX; cx++ {
			if !tm.IsSolid(cx, cy) {
				continue
			}
			expanded := tm.CellAABB(cx, cy).Expand(half)
			if t, n, ok := narrowphase.RaySlab(startCenter, displacement, expanded); ok && t >= 0 && t <= 1 {
				if t < bestT {
					bestT, bestNormal, bestCX, bestCY, found = t, n, cx, cy, true
				}
			}
		}
	}

	if !found {
		if startEmbedded {
			return TileRef{}, narrowphase.SweepHit{
				T: 0,
				Hint: narrowphase.ResolutionHint{
					StartEmbedded: true,
					FullyEmbedded: tm.fullyEmbeddedAABB(start),
				},
			}, true
		}
		return TileRef{}, narrowphase.SweepHit{}, false
	}

	safe := startCenter.Add(displacement.Mul(maxf32(0, bestT-tileEps)))
	return TileRef{Map: tm.ref, CX: bestCX, CY: bestCY}, narrowphase.SweepHit{
		T:      bestT,
		Normal: bestNormal,
		Hint: narrowphase.ResolutionHint{
			SafePos:       safe,
			HasSafePos:    true,
			StartEmbedded: startEmbedded,
			FullyEmbedded: startEmbedded && tm.fullyEmbeddedAABB(start),
		},
	}, true
}

// SweptCircleVsTiles sweeps a circle against the tilemap using the same
// rounded-rectangle Minkowski test the collider-pair narrowphase uses for
// AABB-vs-circle sweeps, one solid cell at a time.
func SweptCircleVsTiles(tm *Tilemap, center mgl32.Vec2, radius float32, vel mgl32.Vec2, dt, tileEps float32) (TileRef, narrowphase.SweepHit, bool) {
	displacement := vel.Mul(dt)
	r := mgl32.Vec2{radius, radius}
	startAABB := collider.AABB{Min: center.Sub(r), Max: center.Add(r)}
	swept := startAABB.Union(startAABB.Translate(displacement))

	startEmbedded := tm.overlapsAnySolidCircle(center, radius)

	minX, minY, maxX, maxY := tm.CellRange(swept)
	bestT := float32(math.MaxFloat32)
	var bestNormal mgl32.Vec2
	var bestCX, bestCY int32
	found := false

	for cy := minY; cy <= maxY; cy++ {
		for cx := minX; cx <= maxX; cx++ {
			if !tm.IsSolid(cx, cy) {
				continue
			}
			tileBox := tm.CellAABB(cx, cy)
			if t, n, ok := narrowphase.SweepRoundedRect(center, displacement, tileBox, radius); ok && t >= 0 && t <= 1 {
				if t < bestT {
					bestT, bestNormal, bestCX, bestCY, found = t, n, cx, cy, true
				}
			}
		}
	}

	if !found {
		if startEmbedded {
			return TileRef{}, narrowphase.SweepHit{T: 0, Hint: narrowphase.ResolutionHint{StartEmbedded: true}}, true
		}
		return TileRef{}, narrowphase.SweepHit{}, false
	}

	safe := center.Add(displacement.Mul(maxf32(0, bestT-tileEps)))
	return TileRef{Map: tm.ref, CX: bestCX, CY: bestCY}, narrowphase.SweepHit{
		T:      bestT,
		Normal: bestNormal,
		Hint: narrowphase.ResolutionHint{
			SafePos:       safe,
			HasSafePos:    true,
			StartEmbedded: startEmbedded,
		},
	}, true
}

func (tm *Tilemap) overlapsAnySolid(box collider.AABB) bool {
	minX, minY, maxX, maxY := tm.CellRange(box)
	for cy := minY; cy <= maxY; cy++ {
		for cx := minX; cx <= maxX; cx++ {
			if tm.IsSolid(cx, cy) {
				return true
			}
		}
	}
	return false
}

func (tm *Tilemap) overlapsAnySolidCircle(center mgl32.Vec2, radius float32) bool {
	r := mgl32.Vec2{radius, radius}
	box := collider.AABB{Min: center.Sub(r), Max: center.Add(r)}
	minX, minY, maxX, maxY := tm.CellRange(box)
	for cy := minY; cy <= maxY; cy++ {
		for cx := minX; cx <= maxX; cx++ {
			if !tm.IsSolid(cx, cy) {
				continue
			}
			if circleOverlapsBox(center, radius, tm.CellAABB(cx, cy)) {
				return true
			}
		}
	}
	return false
}

// fullyEmbeddedAABB reports whether box has no separating direction against
// the solid cells it overlaps: every cardinal neighbor of its own cell
// range is solid too, so no axis offers a pushout.
func (tm *Tilemap) fullyEmbeddedAABB(box collider.AABB) bool {
	minX, minY, maxX, maxY := tm.CellRange(box)
	for cy := minY; cy <= maxY; cy++ {
		for cx := minX; cx <= maxX; cx++ {
			if !tm.IsSolid(cx, cy) {
				continue
			}
			if !tm.IsSolid(cx-1, cy) || !tm.IsSolid(cx+1, cy) ||
				!tm.IsSolid(cx, cy-1) || !tm.IsSolid(cx, cy+1) {
				return false
			}
		}
	}
	return true
}

func circleOverlapsBox(center mgl32.Vec2, radius float32, box collider.AABB) bool {
	clampedX := clampf32(center.X(), box.Min.X(), box.Max.X())
	clampedY := clampf32(center.Y(), box.Min.Y(), box.Max.Y())
	dx := center.X() - clampedX
	dy := center.Y() - clampedY
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
