// Package event defines the detection results the engine hands back to the
// caller: the BodyRef union naming either a collider or a tile, and the
// Event envelope carrying an Overlap or a SweepHit. It plays the role the
// teacher's trigger.go plays for its Enter/Stay/Exit callbacks, generalized
// to the spec's single-shot, re-derived-every-frame Overlap|Sweep events
// instead of persistent pair state (see DESIGN.md for why the teacher's
// previousActivePairs/currentActivePairs bookkeeping does not carry over).
package event

import (
	"github.com/akmonengine/collide2d/collider"
	"github.com/akmonengine/collide2d/narrowphase"
	"github.com/akmonengine/collide2d/tilemap"
)

// Kind discriminates an Event's payload.
type Kind uint8

const (
	KindOverlap Kind = iota
	KindSweep
)

// BodyKind discriminates a BodyRef.
type BodyKind uint8

const (
	BodyKindCollider BodyKind = iota
	BodyKindTile
)

// BodyRef names either a frame collider or a solid tile cell, the way a
// unified query result needs to when it interleaves both populations.
type BodyRef struct {
	Kind     BodyKind
	Collider collider.FrameId
	Tile     tilemap.TileRef
}

// ColliderRef builds a BodyRef naming a collider.
func ColliderRef(id collider.FrameId) BodyRef {
	return BodyRef{Kind: BodyKindCollider, Collider: id}
}

// TileBodyRef builds a BodyRef naming a tile.
func TileBodyRef(ref tilemap.TileRef) BodyRef {
	return BodyRef{Kind: BodyKindTile, Tile: ref}
}

// Event is a single overlap or sweep detection. The field matching Kind is
// populated; the other is the zero value.
type Event struct {
	Kind Kind
	A, B BodyRef

	AKey   collider.ColKey
	AHasKey bool
	BKey   collider.ColKey
	BHasKey bool

	Overlap narrowphase.Overlap
	Sweep   narrowphase.SweepHit
}
