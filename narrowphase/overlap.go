package narrowphase

import (
	"math"

	"github.com/akmonengine/collide2d/collider"
	"github.com/go-gl/mathgl/mgl32"
)

// OverlapPair runs the static overlap test appropriate to a and b's shapes.
// The normal, when present, points from b into a.
func OverlapPair(a, b *collider.Collider) (Overlap, bool) {
	switch {
	case a.Kind == collider.ShapeAABB && b.Kind == collider.ShapeAABB:
		return overlapAABBAABB(a, b)
	case a.Kind == collider.ShapeCircle && b.Kind == collider.ShapeCircle:
		return overlapCircleCircle(a, b)
	case a.Kind == collider.ShapeAABB && b.Kind == collider.ShapeCircle:
		return overlapAABBCircle(a, b)
	case a.Kind == collider.ShapeCircle && b.Kind == collider.ShapeAABB:
		ov, ok := overlapAABBCircle(b, a)
		if ok {
			ov.Normal = ov.Normal.Mul(-1)
		}
		return ov, ok
	case a.Kind == collider.ShapeAABB && b.Kind == collider.ShapePoint:
		return overlapAABBCircle(a, b)
	case a.Kind == collider.ShapePoint && b.Kind == collider.ShapeAABB:
		ov, ok := overlapAABBCircle(b, a)
		if ok {
			ov.Normal = ov.Normal.Mul(-1)
		}
		return ov, ok
	default:
		// Point/Circle and Point/Point: a point is a zero-radius circle.
		return overlapAsCircles(a, b)
	}
}

// overlapAABBAABB: axis-wise depth = (ah+bh) - |ac-bc|; overlap iff both
// axes positive; the smaller-depth axis wins and carries the normal.
func overlapAABBAABB(a, b *collider.Collider) (Overlap, bool) {
	ac, bc := a.Center, b.Center
	ah, bh := a.HalfExtents, b.HalfExtents

	dx := (ah.X() + bh.X()) - float32(math.Abs(float64(ac.X()-bc.X())))
	dy := (ah.Y() + bh.Y()) - float32(math.Abs(float64(ac.Y()-bc.Y())))
	if dx <= 0 || dy <= 0 {
		return Overlap{}, false
	}

	var normal mgl32.Vec2
	var depth float32
	// Tie (dx == dy): x-axis wins, per spec scenario S2.
	if dx <= dy {
		depth = dx
		if ac.X() >= bc.X() {
			normal = mgl32.Vec2{1, 0}
		} else {
			normal = mgl32.Vec2{-1, 0}
		}
	} else {
		depth = dy
		if ac.Y() >= bc.Y() {
			normal = mgl32.Vec2{0, 1}
		} else {
			normal = mgl32.Vec2{0, -1}
		}
	}

	return Overlap{Depth: depth, Normal: normal}, true
}

func overlapCircleCircle(a, b *collider.Collider) (Overlap, bool) {
	delta := a.Center.Sub(b.Center)
	d := delta.Len()
	depth := a.Radius + b.Radius - d
	if depth <= 0 {
		return Overlap{}, false
	}

	var normal mgl32.Vec2
	if d == 0 {
		normal = mgl32.Vec2{0, 0}
	} else {
		normal = delta.Mul(1 / d)
	}

	return Overlap{Depth: depth, Normal: normal}, true
}

// overlapAABBCircle returns the spec's deliberately imprecise representative
// result (depth=0, normal=0) when the two bounds overlap: a box vs circle
// pair gives no exact contact normal in the static overlap path, only in
// the sweep path, which can distinguish edge from corner contact.
func overlapAABBCircle(box, circle *collider.Collider) (Overlap, bool) {
	if !box.StaticAABB.Overlaps(circle.StaticAABB) {
		return Overlap{}, false
	}
	return Overlap{Depth: 0, Normal: mgl32.Vec2{0, 0}}, true
}

func overlapAsCircles(a, b *collider.Collider) (Overlap, bool) {
	ra, rb := radiusOf(a), radiusOf(b)
	delta := a.Center.Sub(b.Center)
	d := delta.Len()
	depth := ra + rb - d
	if depth <= 0 {
		return Overlap{}, false
	}
	var normal mgl32.Vec2
	if d != 0 {
		normal = delta.Mul(1 / d)
	}
	return Overlap{Depth: depth, Normal: normal}, true
}

func radiusOf(c *collider.Collider) float32 {
	if c.Kind == collider.ShapeCircle {
		return c.Radius
	}
	return 0
}
