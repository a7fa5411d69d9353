package narrowphase

import (
	"math"

	"github.com/akmonengine/collide2d/collider"
	"github.com/go-gl/mathgl/mgl32"
)

// SweepPair runs the swept time-of-impact test appropriate to a and b's
// shapes, using relative velocity v=(vA-vB)*dt and the Minkowski trick:
// mover=A, static=B expanded by A. Normal points from b into a. If a and b
// already overlap at t=0 and are in relative motion, the sweep still
// returns t=0 with a best-effort normal from the overlap test and
// Hint.StartEmbedded set, per §4.D. A pair with no relative velocity never
// produces a SweepHit, overlapping or not — that's an Overlap event's job.
func SweepPair(a, b *collider.Collider, dt float32) (SweepHit, bool) {
	v := a.Velocity.Sub(b.Velocity).Mul(dt)
	if v.X() == 0 && v.Y() == 0 {
		return SweepHit{}, false
	}

	if ov, overlapping := OverlapPair(a, b); overlapping {
		return SweepHit{T: 0, Normal: ov.Normal, Hint: ResolutionHint{StartEmbedded: true}}, true
	}

	var t float32
	var normal mgl32.Vec2
	var ok bool

	switch {
	case a.Kind == collider.ShapeCircle && b.Kind == collider.ShapeCircle:
		t, normal, ok = RayCircle(a.Center, v, b.Center, a.Radius+b.Radius)
	case a.Kind == collider.ShapeCircle && b.Kind == collider.ShapePoint:
		t, normal, ok = RayCircle(a.Center, v, b.Center, a.Radius)
	case a.Kind == collider.ShapePoint && b.Kind == collider.ShapeCircle:
		t, normal, ok = RayCircle(a.Center, v, b.Center, b.Radius)
	case a.Kind == collider.ShapePoint && b.Kind == collider.ShapePoint:
		t, normal, ok = RayCircle(a.Center, v, b.Center, 0)
	case a.Kind == collider.ShapeAABB && b.Kind == collider.ShapeAABB:
		expanded := b.StaticAABB.Expand(a.HalfExtents)
		t, normal, ok = RaySlab(a.Center, v, expanded)
	case a.Kind == collider.ShapeAABB && b.Kind == collider.ShapePoint:
		t, normal, ok = RaySlab(a.Center, v, b.StaticAABB.Expand(a.HalfExtents))
	case a.Kind == collider.ShapePoint && b.Kind == collider.ShapeAABB:
		t, normal, ok = RaySlab(a.Center, v, b.StaticAABB)
	case a.Kind == collider.ShapeAABB && b.Kind == collider.ShapeCircle:
		box := collider.AABB{Min: b.Center.Sub(a.HalfExtents), Max: b.Center.Add(a.HalfExtents)}
		t, normal, ok = SweepRoundedRect(a.Center, v, box, b.Radius)
	case a.Kind == collider.ShapeCircle && b.Kind == collider.ShapeAABB:
		t, normal, ok = SweepRoundedRect(a.Center, v, b.StaticAABB, a.Radius)
	default:
		return SweepHit{}, false
	}

	if !ok || t < 0 || t > 1 {
		return SweepHit{}, false
	}

	return SweepHit{T: t, Normal: normal}, true
}

// RaySlab intersects a ray with an AABB, returning the entry t and the
// outward normal of the entered face. The ray is assumed to start outside
// the box (embedded starts are handled by the caller). Exported so the
// tilemap package can reuse it for swept AABB-vs-tile traversal.
func RaySlab(origin, dir mgl32.Vec2, box collider.AABB) (float32, mgl32.Vec2, bool) {
	o := [2]float32{origin.X(), origin.Y()}
	d := [2]float32{dir.X(), dir.Y()}
	bmin := [2]float32{box.Min.X(), box.Min.Y()}
	bmax := [2]float32{box.Max.X(), box.Max.Y()}

	tmin := float32(0)
	tmax := float32(math.MaxFloat32)
	var normal mgl32.Vec2

	for axis := 0; axis < 2; axis++ {
		if d[axis] == 0 {
			if o[axis] < bmin[axis] || o[axis] > bmax[axis] {
				return 0, mgl32.Vec2{}, false
			}
			continue
		}

		inv := 1 / d[axis]
		t1 := (bmin[axis] - o[axis]) * inv
		t2 := (bmax[axis] - o[axis]) * inv

		near, far := t1, t2
		sign := float32(-1)
		if t1 > t2 {
			near, far = t2, t1
			sign = 1
		}

		if near > tmin {
			tmin = near
			if axis == 0 {
				normal = mgl32.Vec2{sign, 0}
			} else {
				normal = mgl32.Vec2{0, sign}
			}
		}
		if far < tmax {
			tmax = far
		}
		if tmin > tmax {
			return 0, mgl32.Vec2{}, false
		}
	}

	return tmin, normal, true
}

// RayCircle intersects a ray with a circle, returning the earliest t >= 0
// and the outward surface normal at the hit point. Exported for reuse by
// the tilemap package's circle-vs-tile sweep.
func RayCircle(origin, dir, center mgl32.Vec2, radius float32) (float32, mgl32.Vec2, bool) {
	toCenter := origin.Sub(center)
	a := dir.Dot(dir)
	if a == 0 {
		return 0, mgl32.Vec2{}, false
	}
	b := 2 * toCenter.Dot(dir)
	c := toCenter.Dot(toCenter) - radius*radius
	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, mgl32.Vec2{}, false
	}

	sqrtDisc := float32(math.Sqrt(float64(disc)))
	t0 := (-b - sqrtDisc) / (2 * a)
	t1 := (-b + sqrtDisc) / (2 * a)

	t := t0
	if t < 0 {
		t = t1
	}
	if t < 0 {
		return 0, mgl32.Vec2{}, false
	}

	hit := origin.Add(dir.Mul(t))
	normal := hit.Sub(center)
	if n := normal.Len(); n != 0 {
		normal = normal.Mul(1 / n)
	}
	return t, normal, true
}

// SweepRoundedRect intersects a ray with a rounded rectangle: box's straight
// edges extended by radius, with a quarter-circle of that radius at each
// corner. This is the Minkowski sum of an AABB and a circle, so it serves
// both an AABB sweeping past a circle and a circle sweeping past an AABB.
func SweepRoundedRect(origin, dir mgl32.Vec2, box collider.AABB, radius float32) (float32, mgl32.Vec2, bool) {
	outer := box.Expand(mgl32.Vec2{radius, radius})
	tr, nr, okr := RaySlab(origin, dir, outer)
	if !okr {
		return 0, mgl32.Vec2{}, false
	}

	hit := origin.Add(dir.Mul(tr))
	if inStraightRegion(hit, box, nr) {
		return tr, nr, true
	}

	corners := [4]mgl32.Vec2{
		{box.Min.X(), box.Min.Y()}, {box.Max.X(), box.Min.Y()},
		{box.Min.X(), box.Max.Y()}, {box.Max.X(), box.Max.Y()},
	}

	bestT := float32(math.MaxFloat32)
	var bestN mgl32.Vec2
	found := false
	for _, c := range corners {
		if ct, cn, cok := RayCircle(origin, dir, c, radius); cok && ct < bestT {
			bestT, bestN, found = ct, cn, true
		}
	}
	if !found {
		return 0, mgl32.Vec2{}, false
	}
	return bestT, bestN, true
}

func inStraightRegion(hit mgl32.Vec2, box collider.AABB, normal mgl32.Vec2) bool {
	if normal.X() != 0 {
		return hit.Y() >= box.Min.Y() && hit.Y() <= box.Max.Y()
	}
	if normal.Y() != 0 {
		return hit.X() >= box.Min.X() && hit.X() <= box.Max.X()
	}
	return false
}
