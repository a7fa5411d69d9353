package collide2d

import (
	"testing"

	"github.com/akmonengine/collide2d/collider"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlapPairByFrameId(t *testing.T) {
	w := newTestWorld(t)
	w.BeginFrame()
	a := w.PushAABB(mgl32.Vec2{0, 0}, mgl32.Vec2{1, 1}, mgl32.Vec2{}, collider.LayerMask{}, nil)
	b := w.PushAABB(mgl32.Vec2{0.5, 0}, mgl32.Vec2{1, 1}, mgl32.Vec2{}, collider.LayerMask{}, nil)
	w.EndFrame()

	_, ok := w.OverlapPair(a, b)
	assert.True(t, ok)
}

func TestOverlapPairUnknownIdFails(t *testing.T) {
	w := newTestWorld(t)
	w.BeginFrame()
	a := w.PushAABB(mgl32.Vec2{0, 0}, mgl32.Vec2{1, 1}, mgl32.Vec2{}, collider.LayerMask{}, nil)
	w.EndFrame()

	_, ok := w.OverlapPair(a, collider.FrameId(99))
	assert.False(t, ok)
}

func TestOverlapByKeyResolvesPushedKeys(t *testing.T) {
	w := newTestWorld(t)
	w.BeginFrame()
	keyA := collider.ColKey(10)
	keyB := collider.ColKey(20)
	w.PushAABB(mgl32.Vec2{0, 0}, mgl32.Vec2{1, 1}, mgl32.Vec2{}, collider.LayerMask{}, &keyA)
	w.PushAABB(mgl32.Vec2{0.5, 0}, mgl32.Vec2{1, 1}, mgl32.Vec2{}, collider.LayerMask{}, &keyB)
	w.EndFrame()

	_, ok := w.OverlapByKey(keyA, keyB)
	assert.True(t, ok)

	_, ok = w.OverlapByKey(keyA, collider.ColKey(999))
	assert.False(t, ok)
}

func TestSweepByKeyResolvesPushedKeys(t *testing.T) {
	w := newTestWorld(t)
	w.cfg.Dt = 1
	w.BeginFrame()
	keyA := collider.ColKey(1)
	keyB := collider.ColKey(2)
	w.PushAABB(mgl32.Vec2{0, 0}, mgl32.Vec2{1, 1}, mgl32.Vec2{5, 0}, collider.LayerMask{}, &keyA)
	w.PushAABB(mgl32.Vec2{6, 0}, mgl32.Vec2{1, 1}, mgl32.Vec2{}, collider.LayerMask{}, &keyB)
	w.EndFrame()

	hit, ok := w.SweepByKey(keyA, keyB)
	require.True(t, ok)
	assert.Greater(t, float64(hit.T), 0.0)
}
