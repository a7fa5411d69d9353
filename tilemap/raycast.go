package tilemap

import (
	"math"

	"github.com/akmonengine/collide2d/narrowphase"
	"github.com/go-gl/mathgl/mgl32"
)

// Raycast traverses cells from origin along dir using a standard grid DDA
// (Amanatides-Woo), halting on the first solid cell within maxT. A zero
// direction bails out immediately rather than looping forever (spec §7).
func (tm *Tilemap) Raycast(origin, dir mgl32.Vec2, maxT, tileEps float32) (TileRef, narrowphase.SweepHit, bool) {
	if dir.X() == 0 && dir.Y() == 0 {
		return TileRef{}, narrowphase.SweepHit{}, false
	}

	rel := origin.Sub(tm.origin)
	cx := int32(floorDiv(rel.X(), tm.cell))
	cy := int32(floorDiv(rel.Y(), tm.cell))

	stepX, stepY := int32(1), int32(1)
	if dir.X() < 0 {
		stepX = -1
	}
	if dir.Y() < 0 {
		stepY = -1
	}

	tMaxX, tDeltaX := axisDDA(rel.X(), dir.X(), cx, stepX, tm.cell)
	tMaxY, tDeltaY := axisDDA(rel.Y(), dir.Y(), cy, stepY, tm.cell)

	travelled := float32(0)
	var normal mgl32.Vec2

	for travelled <= maxT {
		if tm.IsSolid(cx, cy) {
			safe := origin.Add(dir.Mul(maxf32(0, travelled-tileEps)))
			return TileRef{Map: tm.ref, CX: cx, CY: cy}, narrowphase.SweepHit{
				T:      travelled,
				Normal: normal,
				Hint: narrowphase.ResolutionHint{
					SafePos:    safe,
					HasSafePos: true,
				},
			}, true
		}

		// Tie-break: when both axes cross a boundary at the same t, step
		// X first for a deterministic traversal order.
		if tMaxX <= tMaxY {
			travelled = tMaxX
			tMaxX += tDeltaX
			cx += stepX
			normal = mgl32.Vec2{-float32(stepX), 0}
		} else {
			travelled = tMaxY
			tMaxY += tDeltaY
			cy += stepY
			normal = mgl32.Vec2{0, -float32(stepY)}
		}
	}

	return TileRef{}, narrowphase.SweepHit{}, false
}

func axisDDA(relCoord, d float32, cell, step int32, size float32) (tMax, tDelta float32) {
	if d == 0 {
		return math.MaxFloat32, math.MaxFloat32
	}
	boundary := float32(cell) * size
	if step > 0 {
		boundary += size
	}
	tMax = (boundary - relCoord) / d
	tDelta = size / absf32(d)
	return
}

func absf32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func maxf32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
