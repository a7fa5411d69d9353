// Package collider holds the frame-scoped collider types: shapes, layer
// masks and the per-frame arena that owns them. It mirrors the split the
// teacher engine keeps between its actor package (shapes, rigid bodies) and
// the rest of the world.
package collider

import "github.com/go-gl/mathgl/mgl32"

// AABB is an axis-aligned bounding box in world space.
type AABB struct {
	Min mgl32.Vec2
	Max mgl32.Vec2
}

// Overlaps reports whether two AABBs intersect on both axes, edges inclusive.
func (a AABB) Overlaps(b AABB) bool {
	return a.Max.X() >= b.Min.X() && a.Min.X() <= b.Max.X() &&
		a.Max.Y() >= b.Min.Y() && a.Min.Y() <= b.Max.Y()
}

// ContainsPoint reports whether p lies within the AABB, edges inclusive.
func (a AABB) ContainsPoint(p mgl32.Vec2) bool {
	return p.X() >= a.Min.X() && p.X() <= a.Max.X() &&
		p.Y() >= a.Min.Y() && p.Y() <= a.Max.Y()
}

// Union returns the minimal AABB enclosing both a and b.
func (a AABB) Union(b AABB) AABB {
	return AABB{
		Min: mgl32.Vec2{minf(a.Min.X(), b.Min.X()), minf(a.Min.Y(), b.Min.Y())},
		Max: mgl32.Vec2{maxf(a.Max.X(), b.Max.X()), maxf(a.Max.Y(), b.Max.Y())},
	}
}

// Translate returns the AABB shifted by d.
func (a AABB) Translate(d mgl32.Vec2) AABB {
	return AABB{Min: a.Min.Add(d), Max: a.Max.Add(d)}
}

// Expand returns the AABB grown outward by half on each axis, as used by
// the Minkowski sum when sweeping a shape against it.
func (a AABB) Expand(half mgl32.Vec2) AABB {
	return AABB{
		Min: mgl32.Vec2{a.Min.X() - half.X(), a.Min.Y() - half.Y()},
		Max: mgl32.Vec2{a.Max.X() + half.X(), a.Max.Y() + half.Y()},
	}
}

// Center returns the midpoint of the AABB.
func (a AABB) Center() mgl32.Vec2 {
	return mgl32.Vec2{(a.Min.X() + a.Max.X()) / 2, (a.Min.Y() + a.Max.Y()) / 2}
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
