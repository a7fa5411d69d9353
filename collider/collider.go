package collider

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// FrameArena is the per-frame store of colliders (component B of the design:
// "Frame store"). It is reset at the start of every frame and hands out
// dense FrameIds as the caller pushes colliders. The teacher's World keeps
// its rigid bodies in a plain slice with an AddBody/RemoveBody pair; this
// arena generalizes that to per-frame churn instead of persistent identity.
type FrameArena struct {
	colliders []Collider
	keyIndex  map[ColKey]FrameId

	// StrictKeys turns a duplicate ColKey within a frame into a panic
	// instead of the release behavior of silently overwriting the
	// key->FrameId mapping (spec §7: debug-build contract assertion,
	// release last-write-wins). Off by default.
	StrictKeys bool
}

// NewFrameArena creates an empty arena ready for its first frame.
func NewFrameArena() *FrameArena {
	return &FrameArena{
		keyIndex: make(map[ColKey]FrameId),
	}
}

// Reset clears the arena for a new frame, keeping its backing capacity.
func (a *FrameArena) Reset() {
	a.colliders = a.colliders[:0]
	clear(a.keyIndex)
}

// Len returns the number of colliders pushed this frame.
func (a *FrameArena) Len() int {
	return len(a.colliders)
}

// All returns the frame's colliders, indexed by FrameId.
func (a *FrameArena) All() []Collider {
	return a.colliders
}

// Get returns the collider for id, or false if id is out of range.
func (a *FrameArena) Get(id FrameId) (*Collider, bool) {
	if int(id) >= len(a.colliders) {
		return nil, false
	}
	return &a.colliders[id], true
}

// ResolveKey looks up the FrameId last pushed with the given ColKey.
func (a *FrameArena) ResolveKey(key ColKey) (FrameId, bool) {
	id, ok := a.keyIndex[key]
	return id, ok
}

func (a *FrameArena) push(c Collider, key *ColKey) FrameId {
	id := FrameId(len(a.colliders))
	c.ID = id
	if key != nil {
		c.Key = *key
		c.HasKey = true
	}
	a.colliders = append(a.colliders, c)

	if key != nil {
		if _, dup := a.keyIndex[*key]; dup && a.StrictKeys {
			panic(fmt.Sprintf("collide2d: duplicate ColKey %d pushed in the same frame", *key))
		}
		a.keyIndex[*key] = id
	}
	return id
}

// PushAABB records an AABB collider and returns its FrameId.
func (a *FrameArena) PushAABB(center, half, vel mgl32.Vec2, mask LayerMask, key *ColKey) FrameId {
	return a.push(Collider{
		Kind:        ShapeAABB,
		Center:      center,
		HalfExtents: half,
		Velocity:    vel,
		Mask:        mask,
	}, key)
}

// PushCircle records a circle collider and returns its FrameId.
func (a *FrameArena) PushCircle(center mgl32.Vec2, radius float32, vel mgl32.Vec2, mask LayerMask, key *ColKey) FrameId {
	return a.push(Collider{
		Kind:     ShapeCircle,
		Center:   center,
		Radius:   radius,
		Velocity: vel,
		Mask:     mask,
	}, key)
}

// PushPoint records a zero-extent point collider and returns its FrameId.
func (a *FrameArena) PushPoint(pos, vel mgl32.Vec2, mask LayerMask, key *ColKey) FrameId {
	return a.push(Collider{
		Kind:     ShapePoint,
		Center:   pos,
		Velocity: vel,
		Mask:     mask,
	}, key)
}

// ComputeFrameAABBs freezes the static and swept AABB of every collider
// pushed this frame. Called once from World.EndFrame.
func (a *FrameArena) ComputeFrameAABBs(dt float32) {
	for i := range a.colliders {
		a.colliders[i].ComputeFrameAABB(dt)
	}
}
