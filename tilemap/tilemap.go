// Package tilemap implements the solid-bitmap tile layer (component E of
// the design): attach/update/detach, and the DDA ray and swept-shape
// traversals used by the query surface and the unified raycast/sweep
// entrypoints. It has no teacher analogue in akmonengine/feather (a 3D
// rigid-body engine with no tile grid); its shape is grounded on the
// uniform-grid bookkeeping feather already uses for its broadphase
// (spatialgrid.go), generalized from a dynamic hash grid of bodies to a
// fixed-size solid bitset.
package tilemap

import (
	"github.com/akmonengine/collide2d/collider"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

// TileMapRef identifies an attached tilemap for its lifetime (attach to
// detach; it survives frame boundaries).
type TileMapRef uint32

// TileRef names one solid cell within a tilemap.
type TileRef struct {
	Map TileMapRef
	CX  int32
	CY  int32
}

// Rect bounds a region of tile coordinates, used by UpdateTiles.
type Rect struct {
	MinX, MinY int32
	MaxX, MaxY int32
}

// Desc describes a tilemap at attach time.
type Desc struct {
	Origin  mgl32.Vec2
	Cell    float32
	Width   uint32
	Height  uint32
	Solids  []bool // row-major, len == Width*Height, true == solid
	Mask    collider.LayerMask
	UserKey uint64
	HasUserKey bool
}

// Tilemap is a solid bitmap anchored at Origin with uniform cell size Cell.
type Tilemap struct {
	ref    TileMapRef
	origin mgl32.Vec2
	cell   float32
	width  uint32
	height uint32
	solids []bool
	mask   collider.LayerMask

	userKey    uint64
	hasUserKey bool
}

// Ref returns the tilemap's identity.
func (t *Tilemap) Ref() TileMapRef { return t.ref }

// Mask returns the tilemap's consent mask.
func (t *Tilemap) Mask() collider.LayerMask { return t.mask }

// Dimensions returns the tilemap's width and height in cells.
func (t *Tilemap) Dimensions() (uint32, uint32) { return t.width, t.height }

func (t *Tilemap) inBounds(cx, cy int32) bool {
	return cx >= 0 && cy >= 0 && uint32(cx) < t.width && uint32(cy) < t.height
}

func (t *Tilemap) index(cx, cy int32) int {
	return int(cy)*int(t.width) + int(cx)
}

// IsSolid reports whether the cell at (cx,cy) is solid. Out-of-bounds cells
// are never solid.
func (t *Tilemap) IsSolid(cx, cy int32) bool {
	if !t.inBounds(cx, cy) {
		return false
	}
	return t.solids[t.index(cx, cy)]
}

// WorldToCell converts a world position to the cell that contains it.
func (t *Tilemap) WorldToCell(p mgl32.Vec2) (int32, int32) {
	rel := p.Sub(t.origin)
	return int32(floorDiv(rel.X(), t.cell)), int32(floorDiv(rel.Y(), t.cell))
}

// CellAABB returns the world-space bounds of cell (cx,cy), regardless of
// whether it is solid.
func (t *Tilemap) CellAABB(cx, cy int32) collider.AABB {
	min := mgl32.Vec2{
		t.origin.X() + float32(cx)*t.cell,
		t.origin.Y() + float32(cy)*t.cell,
	}
	max := mgl32.Vec2{min.X() + t.cell, min.Y() + t.cell}
	return collider.AABB{Min: min, Max: max}
}

// CellRange returns the inclusive tile-coordinate range covered by box.
func (t *Tilemap) CellRange(box collider.AABB) (minX, minY, maxX, maxY int32) {
	minX, minY = t.WorldToCell(box.Min)
	maxX, maxY = t.WorldToCell(box.Max)
	return
}

func floorDiv(v, size float32) float32 {
	q := v / size
	f := float32(int32(q))
	if q < 0 && f != q {
		f--
	}
	return f
}

// Registry owns every attached tilemap for a World, keyed by TileMapRef and
// iterated in attach order for deterministic *_all query results.
type Registry struct {
	maps map[TileMapRef]*Tilemap
	order []TileMapRef
	next  TileMapRef
}

// NewRegistry creates an empty tilemap registry.
func NewRegistry() *Registry {
	return &Registry{maps: make(map[TileMapRef]*Tilemap)}
}

// Attach registers a new tilemap and returns its ref.
func (r *Registry) Attach(desc Desc) (TileMapRef, error) {
	if desc.Cell <= 0 {
		return 0, errors.Errorf("tilemap: cell size must be > 0, got %v", desc.Cell)
	}
	if desc.Width == 0 || desc.Height == 0 {
		return 0, errors.Errorf("tilemap: width and height must be > 0, got %dx%d", desc.Width, desc.Height)
	}
	if uint64(len(desc.Solids)) != uint64(desc.Width)*uint64(desc.Height) {
		return 0, errors.Errorf("tilemap: solids length %d does not match %dx%d", len(desc.Solids), desc.Width, desc.Height)
	}

	r.next++
	ref := r.next
	solids := make([]bool, len(desc.Solids))
	copy(solids, desc.Solids)

	r.maps[ref] = &Tilemap{
		ref:        ref,
		origin:     desc.Origin,
		cell:       desc.Cell,
		width:      desc.Width,
		height:     desc.Height,
		solids:     solids,
		mask:       desc.Mask,
		userKey:    desc.UserKey,
		hasUserKey: desc.HasUserKey,
	}
	r.order = append(r.order, ref)
	return ref, nil
}

// UpdateTiles overwrites the solid bits within rect from data, row-major
// over rect's span.
func (r *Registry) UpdateTiles(ref TileMapRef, rect Rect, data []bool) error {
	tm, ok := r.maps[ref]
	if !ok {
		return errors.Errorf("tilemap: unknown ref %d", ref)
	}

	w := rect.MaxX - rect.MinX
	h := rect.MaxY - rect.MinY
	if w <= 0 || h <= 0 {
		return errors.Errorf("tilemap: empty update rect %+v", rect)
	}
	if int64(len(data)) != int64(w)*int64(h) {
		return errors.Errorf("tilemap: update data length %d does not match rect %dx%d", len(data), w, h)
	}

	i := 0
	for cy := rect.MinY; cy < rect.MaxY; cy++ {
		for cx := rect.MinX; cx < rect.MaxX; cx++ {
			if tm.inBounds(cx, cy) {
				tm.solids[tm.index(cx, cy)] = data[i]
			}
			i++
		}
	}
	return nil
}

// Detach removes a tilemap from the registry.
func (r *Registry) Detach(ref TileMapRef) {
	if _, ok := r.maps[ref]; !ok {
		return
	}
	delete(r.maps, ref)
	for i, v := range r.order {
		if v == ref {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Get returns the tilemap for ref, if attached.
func (r *Registry) Get(ref TileMapRef) (*Tilemap, bool) {
	tm, ok := r.maps[ref]
	return tm, ok
}

// All returns every attached tilemap, in attach order.
func (r *Registry) All() []*Tilemap {
	out := make([]*Tilemap, 0, len(r.order))
	for _, ref := range r.order {
		out = append(out, r.maps[ref])
	}
	return out
}
