package collide2d

import (
	"github.com/akmonengine/collide2d/collider"
	"github.com/akmonengine/collide2d/tilemap"
	"github.com/go-gl/mathgl/mgl32"
)

// TileDepthHit reports the signed penetration of a shape against one solid
// tile cell: Depth > 0 is overlap, Depth < 0 is separating gap, Depth == 0
// is exact tangency. For a box, Normal is the axis of the reported depth,
// pointing from the tile toward the box, whether overlapping or separated.
// For a circle, Normal points from the tile's nearest point toward the
// center on overlap and is zero on separation or when the center lies
// inside the tile.
type TileDepthHit struct {
	Tile   tilemap.TileRef
	Depth  float32
	Normal mgl32.Vec2
}

// AABBDepthAgainstTiles reports the deepest penetration of box against any
// attached tilemap's solid cells overlapping it. Useful for resolving a
// contact that QueryAABBAll already found but GenerateEvents never tests
// (tile contacts are not pushed through the collider pairwise pipeline).
func (w *World) AABBDepthAgainstTiles(box collider.AABB) (TileDepthHit, bool) {
	best := TileDepthHit{}
	found := false

	for _, tm := range w.tiles.All() {
		minX, minY, maxX, maxY := tm.CellRange(box)
		for cy := minY; cy <= maxY; cy++ {
			for cx := minX; cx <= maxX; cx++ {
				if !tm.IsSolid(cx, cy) {
					continue
				}
				depth, normal := tilemap.SignedDepthAABB(tm, box, cx, cy)
				if !found || depth > best.Depth {
					best = TileDepthHit{Tile: tilemap.TileRef{Map: tm.Ref(), CX: cx, CY: cy}, Depth: depth, Normal: normal}
					found = true
				}
			}
		}
	}
	return best, found
}

// CircleDepthAgainstTiles reports the deepest penetration of a circle
// against any attached tilemap's solid cells overlapping it.
func (w *World) CircleDepthAgainstTiles(center mgl32.Vec2, radius float32) (TileDepthHit, bool) {
	r := mgl32.Vec2{radius, radius}
	box := collider.AABB{Min: center.Sub(r), Max: center.Add(r)}
	best := TileDepthHit{}
	found := false

	for _, tm := range w.tiles.All() {
		minX, minY, maxX, maxY := tm.CellRange(box)
		for cy := minY; cy <= maxY; cy++ {
			for cx := minX; cx <= maxX; cx++ {
				if !tm.IsSolid(cx, cy) {
					continue
				}
				depth, normal := tilemap.SignedDepthCircle(tm, center, radius, cx, cy)
				if !found || depth > best.Depth {
					best = TileDepthHit{Tile: tilemap.TileRef{Map: tm.Ref(), CX: cx, CY: cy}, Depth: depth, Normal: normal}
					found = true
				}
			}
		}
	}
	return best, found
}
