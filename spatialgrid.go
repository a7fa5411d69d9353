package collide2d

import (
	"math"

	"github.com/akmonengine/collide2d/collider"
)

// cellKey is a uniform-grid coordinate: (floor(x/cellSize), floor(y/cellSize)).
type cellKey struct {
	X, Y int32
}

// grid is the uniform-grid broadphase (component C of the design). It is
// rebuilt every frame from the collider arena's frozen swept AABBs and
// reused across frames the way the teacher's SpatialGrid.Clear/Insert pair
// reuses its cell backing array, generalized from a fixed power-of-two hash
// table of body indices to a map keyed directly by integer cell coordinate
// (this engine's cell space is unbounded and sparse, unlike the teacher's
// bounded 3D hash).
type grid struct {
	cellSize float32
	cells    map[cellKey][]collider.FrameId
	order    []cellKey

	visitStamp []uint32
	visitEpoch uint32

	pairStamp map[uint64]uint32
	pairEpoch uint32
}

func newGrid(cellSize float32) *grid {
	return &grid{
		cellSize:  cellSize,
		cells:     make(map[cellKey][]collider.FrameId),
		pairStamp: make(map[uint64]uint32),
	}
}

// reset clears the grid for a new frame, keeping backing capacity.
func (g *grid) reset() {
	clear(g.cells)
	g.order = g.order[:0]
}

// cellRange returns the inclusive cell-coordinate range box overlaps.
// NaN/Inf inputs clamp to the valid int32 range rather than panicking or
// producing an unbounded loop (spec §7).
func (g *grid) cellRange(box collider.AABB) (minX, minY, maxX, maxY int32) {
	minX = floorCell(box.Min.X(), g.cellSize)
	minY = floorCell(box.Min.Y(), g.cellSize)
	maxX = floorCell(box.Max.X(), g.cellSize)
	maxY = floorCell(box.Max.Y(), g.cellSize)
	return
}

func floorCell(v, size float32) int32 {
	q := float64(v) / float64(size)
	if math.IsNaN(q) {
		return 0
	}
	f := math.Floor(q)
	if f >= math.MaxInt32 {
		return math.MaxInt32
	}
	if f <= math.MinInt32 {
		return math.MinInt32
	}
	return int32(f)
}

func (g *grid) insertBox(id collider.FrameId, box collider.AABB) {
	minX, minY, maxX, maxY := g.cellRange(box)
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			g.insertCell(cellKey{x, y}, id)
		}
	}
}

func (g *grid) insertBoxDedup(id collider.FrameId, box collider.AABB, seen map[cellKey]bool) {
	minX, minY, maxX, maxY := g.cellRange(box)
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			key := cellKey{x, y}
			if seen[key] {
				continue
			}
			seen[key] = true
			g.insertCell(key, id)
		}
	}
}

func (g *grid) insertCell(key cellKey, id collider.FrameId) {
	if _, exists := g.cells[key]; !exists {
		g.order = append(g.order, key)
	}
	g.cells[key] = append(g.cells[key], id)
}

// build bins every collider's swept AABB into the grid. When tighten is
// true, each collider is binned using the union of its cell range at t=0
// and at t=dt (skipping the diagonal corridor a single enclosing cell range
// would otherwise include, per spec §3/§4.C); when false, the frozen
// SweptAABB (the enclosing bound) is used directly.
func (g *grid) build(colliders []collider.Collider, tighten bool) {
	g.reset()
	for i := range colliders {
		c := &colliders[i]
		if tighten {
			seen := make(map[cellKey]bool, 8)
			g.insertBoxDedup(c.ID, c.StaticAABB, seen)
			g.insertBoxDedup(c.ID, c.EndAABB, seen)
		} else {
			g.insertBox(c.ID, c.SweptAABB)
		}
	}
}

// cellsInOrder returns every occupied cell, in first-touched order, which is
// deterministic given deterministic push order and cell iteration order.
func (g *grid) cellsInOrder() []cellKey {
	return g.order
}

// cell returns the FrameIds binned into key, in insertion order.
func (g *grid) cell(key cellKey) []collider.FrameId {
	return g.cells[key]
}

// queryCells invokes fn for every occupied cell overlapping box.
func (g *grid) queryCells(box collider.AABB, fn func(ids []collider.FrameId)) {
	minX, minY, maxX, maxY := g.cellRange(box)
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if ids, ok := g.cells[cellKey{x, y}]; ok {
				fn(ids)
			}
		}
	}
}

// nextVisitEpoch advances the single-collider dedup epoch, resetting the
// scratch stamps on the rare wraparound.
func (g *grid) nextVisitEpoch(n int) uint32 {
	if len(g.visitStamp) < n {
		grown := make([]uint32, n)
		copy(grown, g.visitStamp)
		g.visitStamp = grown
	}
	g.visitEpoch++
	if g.visitEpoch == 0 {
		for i := range g.visitStamp {
			g.visitStamp[i] = 0
		}
		g.visitEpoch = 1
	}
	return g.visitEpoch
}

// markVisited reports whether id is newly visited at epoch, stamping it if
// so. Used to dedup candidate FrameIds seen across multiple grid cells
// within a single query.
func (g *grid) markVisited(epoch uint32, id collider.FrameId) bool {
	idx := int(id)
	if g.visitStamp[idx] == epoch {
		return false
	}
	g.visitStamp[idx] = epoch
	return true
}

// nextPairEpoch advances the unordered-pair dedup epoch, clearing the
// scratch map on the rare wraparound.
func (g *grid) nextPairEpoch() uint32 {
	g.pairEpoch++
	if g.pairEpoch == 0 {
		clear(g.pairStamp)
		g.pairEpoch = 1
	}
	return g.pairEpoch
}

// markPairVisited reports whether the unordered pair (a,b) is newly visited
// at epoch, stamping it if so. The symmetric encoding (min,max) matches the
// spec's "min*N + max" scheme without needing N fixed up front.
func (g *grid) markPairVisited(epoch uint32, a, b collider.FrameId) bool {
	if a > b {
		a, b = b, a
	}
	key := uint64(a)<<32 | uint64(b)
	if g.pairStamp[key] == epoch {
		return false
	}
	g.pairStamp[key] = epoch
	return true
}
