package collide2d

import (
	"testing"

	"github.com/akmonengine/collide2d/collider"
	"github.com/akmonengine/collide2d/tilemap"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAABBDepthAgainstTilesFindsDeepestCell(t *testing.T) {
	w := newTestWorld(t)
	solids := make([]bool, 16)
	solids[0] = true // cx=0, cy=0
	solids[1] = true // cx=1, cy=0
	_, err := w.AttachTilemap(tilemap.Desc{Cell: 1, Width: 4, Height: 4, Solids: solids})
	require.NoError(t, err)

	box := collider.AABB{Min: mgl32.Vec2{0.9, 0.25}, Max: mgl32.Vec2{1.6, 0.75}}
	hit, ok := w.AABBDepthAgainstTiles(box)
	require.True(t, ok)
	assert.Greater(t, hit.Depth, float32(0))
}

func TestAABBDepthAgainstTilesNoAttachedMapMisses(t *testing.T) {
	w := newTestWorld(t)
	_, ok := w.AABBDepthAgainstTiles(collider.AABB{Min: mgl32.Vec2{0, 0}, Max: mgl32.Vec2{1, 1}})
	assert.False(t, ok)
}

func TestCircleDepthAgainstTilesReportsOverlap(t *testing.T) {
	w := newTestWorld(t)
	solids := make([]bool, 4)
	solids[0] = true
	_, err := w.AttachTilemap(tilemap.Desc{Cell: 1, Width: 2, Height: 2, Solids: solids})
	require.NoError(t, err)

	hit, ok := w.CircleDepthAgainstTiles(mgl32.Vec2{0.5, 0.5}, 0.3)
	require.True(t, ok)
	assert.InDelta(t, 0.3, float64(hit.Depth), 1e-6)
	assert.Equal(t, int32(0), hit.Tile.CX)
}
