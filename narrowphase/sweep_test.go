package narrowphase

import (
	"testing"

	"github.com/akmonengine/collide2d/collider"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func movingAABB(center, half, vel mgl32.Vec2) *collider.Collider {
	c := &collider.Collider{Kind: collider.ShapeAABB, Center: center, HalfExtents: half, Velocity: vel}
	c.ComputeFrameAABB(1)
	return c
}

func movingCircle(center mgl32.Vec2, radius float32, vel mgl32.Vec2) *collider.Collider {
	c := &collider.Collider{Kind: collider.ShapeCircle, Center: center, Radius: radius, Velocity: vel}
	c.ComputeFrameAABB(1)
	return c
}

func TestSweepPair_AABBApproachingStaticAABB(t *testing.T) {
	mover := movingAABB(mgl32.Vec2{0, 0}, mgl32.Vec2{1, 1}, mgl32.Vec2{10, 0})
	static := movingAABB(mgl32.Vec2{5, 0}, mgl32.Vec2{1, 1}, mgl32.Vec2{0, 0})

	hit, ok := SweepPair(mover, static, 1)
	require.True(t, ok)
	assert.InDelta(t, 0.3, float64(hit.T), 1e-4)
	assert.Equal(t, mgl32.Vec2{-1, 0}, hit.Normal)
}

func TestSweepPair_NoRelativeMotionNeverHits(t *testing.T) {
	a := movingAABB(mgl32.Vec2{0, 0}, mgl32.Vec2{1, 1}, mgl32.Vec2{5, 5})
	b := movingAABB(mgl32.Vec2{20, 20}, mgl32.Vec2{1, 1}, mgl32.Vec2{5, 5})

	_, ok := SweepPair(a, b, 1)
	assert.False(t, ok)
}

func TestSweepPair_AlreadyOverlappingReportsStartEmbedded(t *testing.T) {
	a := movingAABB(mgl32.Vec2{0, 0}, mgl32.Vec2{1, 1}, mgl32.Vec2{1, 0})
	b := movingAABB(mgl32.Vec2{0.5, 0}, mgl32.Vec2{1, 1}, mgl32.Vec2{0, 0})

	hit, ok := SweepPair(a, b, 1)
	require.True(t, ok)
	assert.Equal(t, float32(0), hit.T)
	assert.True(t, hit.Hint.StartEmbedded)
}

func TestSweepPair_StaticOverlapWithNoRelativeVelocityNeverHits(t *testing.T) {
	// Two overlapping boxes with zero relative velocity must never produce
	// a SweepHit: that pair is an Overlap event's job, not a Sweep event's.
	a := movingAABB(mgl32.Vec2{0, 0}, mgl32.Vec2{1, 1}, mgl32.Vec2{0, 0})
	b := movingAABB(mgl32.Vec2{0.5, 0}, mgl32.Vec2{1, 1}, mgl32.Vec2{0, 0})

	_, ok := SweepPair(a, b, 1)
	assert.False(t, ok)
}

func TestSweepPair_CircleApproachingStaticCircle(t *testing.T) {
	mover := movingCircle(mgl32.Vec2{0, 0}, 1, mgl32.Vec2{10, 0})
	static := movingCircle(mgl32.Vec2{5, 0}, 1, mgl32.Vec2{0, 0})

	hit, ok := SweepPair(mover, static, 1)
	require.True(t, ok)
	assert.InDelta(t, 0.3, float64(hit.T), 1e-4)
}

func TestSweepPair_AABBApproachingStaticCircle(t *testing.T) {
	mover := movingAABB(mgl32.Vec2{0, 0}, mgl32.Vec2{1, 1}, mgl32.Vec2{10, 0})
	static := movingCircle(mgl32.Vec2{6, 0}, 1, mgl32.Vec2{0, 0})

	hit, ok := SweepPair(mover, static, 1)
	require.True(t, ok)
	assert.InDelta(t, 0.4, float64(hit.T), 1e-4)
}

func TestRaySlab(t *testing.T) {
	box := collider.AABB{Min: mgl32.Vec2{5, -1}, Max: mgl32.Vec2{7, 1}}

	t_, n, ok := RaySlab(mgl32.Vec2{0, 0}, mgl32.Vec2{10, 0}, box)
	require.True(t, ok)
	assert.InDelta(t, 0.5, float64(t_), 1e-6)
	assert.Equal(t, mgl32.Vec2{-1, 0}, n)
}

func TestRaySlab_Miss(t *testing.T) {
	box := collider.AABB{Min: mgl32.Vec2{5, 5}, Max: mgl32.Vec2{7, 7}}
	_, _, ok := RaySlab(mgl32.Vec2{0, 0}, mgl32.Vec2{10, 0}, box)
	assert.False(t, ok)
}

func TestRayCircle(t *testing.T) {
	t_, n, ok := RayCircle(mgl32.Vec2{0, 0}, mgl32.Vec2{10, 0}, mgl32.Vec2{5, 0}, 1)
	require.True(t, ok)
	assert.InDelta(t, 0.4, float64(t_), 1e-6)
	assert.Equal(t, mgl32.Vec2{-1, 0}, n)
}

func TestRayCircle_Miss(t *testing.T) {
	_, _, ok := RayCircle(mgl32.Vec2{0, 0}, mgl32.Vec2{10, 0}, mgl32.Vec2{5, 10}, 1)
	assert.False(t, ok)
}

func TestSweepRoundedRect_StraightEdge(t *testing.T) {
	box := collider.AABB{Min: mgl32.Vec2{5, -1}, Max: mgl32.Vec2{7, 1}}
	t_, n, ok := SweepRoundedRect(mgl32.Vec2{0, 0}, mgl32.Vec2{10, 0}, box, 0.5)
	require.True(t, ok)
	assert.InDelta(t, 0.45, float64(t_), 1e-4)
	assert.Equal(t, mgl32.Vec2{-1, 0}, n)
}

func TestSweepRoundedRect_CornerRegion(t *testing.T) {
	box := collider.AABB{Min: mgl32.Vec2{5, 1}, Max: mgl32.Vec2{7, 3}}
	// Approaching along a diagonal that clears the straight top edge and
	// must hit the rounded top-left corner instead.
	t_, n, ok := SweepRoundedRect(mgl32.Vec2{0, 0}, mgl32.Vec2{10, 2}, box, 0.5)
	require.True(t, ok)
	assert.Greater(t, float64(t_), 0.0)
	assert.InDelta(t, 1.0, float64(n.Len()), 1e-4)
}
