package tilemap

import (
	"github.com/akmonengine/collide2d/collider"
	"github.com/go-gl/mathgl/mgl32"
)

// SignedDepthAABB returns the signed penetration of box against the solid
// cell at (cx,cy): positive is the min-axis penetration depth (0 =
// tangent), negative is the axis-aligned separating gap. The skin
// convention lets a caller decide "nearly touching" via depth >= -skin
// without branching on a separate enum (spec §9).
func SignedDepthAABB(tm *Tilemap, box collider.AABB, cx, cy int32) (float32, mgl32.Vec2) {
	tileBox := tm.CellAABB(cx, cy)
	bc, tc := box.Center(), tileBox.Center()
	bh := mgl32.Vec2{(box.Max.X() - box.Min.X()) / 2, (box.Max.Y() - box.Min.Y()) / 2}
	th := mgl32.Vec2{(tileBox.Max.X() - tileBox.Min.X()) / 2, (tileBox.Max.Y() - tileBox.Min.Y()) / 2}

	dx := (bh.X() + th.X()) - absf32(bc.X()-tc.X())
	dy := (bh.Y() + th.Y()) - absf32(bc.Y()-tc.Y())

	if dx <= dy {
		if bc.X() >= tc.X() {
			return dx, mgl32.Vec2{1, 0}
		}
		return dx, mgl32.Vec2{-1, 0}
	}
	if bc.Y() >= tc.Y() {
		return dy, mgl32.Vec2{0, 1}
	}
	return dy, mgl32.Vec2{0, -1}
}

// SignedDepthCircle returns the signed penetration of a circle against the
// solid cell at (cx,cy): positive is r - d_nearest (overlap), negative is
// the separating gap. The normal is zero on separation by convention; on
// overlap it points from the tile's nearest point toward the circle center.
func SignedDepthCircle(tm *Tilemap, center mgl32.Vec2, radius float32, cx, cy int32) (float32, mgl32.Vec2) {
	tileBox := tm.CellAABB(cx, cy)
	nearest := mgl32.Vec2{
		clampf32(center.X(), tileBox.Min.X(), tileBox.Max.X()),
		clampf32(center.Y(), tileBox.Min.Y(), tileBox.Max.Y()),
	}
	delta := center.Sub(nearest)
	d := delta.Len()
	depth := radius - d

	if depth < 0 {
		return depth, mgl32.Vec2{}
	}
	if d == 0 {
		return depth, mgl32.Vec2{}
	}
	return depth, delta.Mul(1 / d)
}
