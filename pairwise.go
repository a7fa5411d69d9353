package collide2d

import (
	"github.com/akmonengine/collide2d/collider"
	"github.com/akmonengine/collide2d/narrowphase"
)

// OverlapPair runs the static overlap test between two colliders named by
// FrameId, independent of the broadphase grid. Useful for a caller that
// already knows which pair it cares about.
func (w *World) OverlapPair(a, b collider.FrameId) (narrowphase.Overlap, bool) {
	ca, ok := w.arena.Get(a)
	if !ok {
		return narrowphase.Overlap{}, false
	}
	cb, ok := w.arena.Get(b)
	if !ok {
		return narrowphase.Overlap{}, false
	}
	return narrowphase.OverlapPair(ca, cb)
}

// SweepPair runs the swept time-of-impact test between two colliders named
// by FrameId.
func (w *World) SweepPair(a, b collider.FrameId) (narrowphase.SweepHit, bool) {
	ca, ok := w.arena.Get(a)
	if !ok {
		return narrowphase.SweepHit{}, false
	}
	cb, ok := w.arena.Get(b)
	if !ok {
		return narrowphase.SweepHit{}, false
	}
	return narrowphase.SweepPair(ca, cb, w.cfg.Dt)
}

// OverlapByKey resolves a and b through their application-supplied ColKeys
// before running the overlap test.
func (w *World) OverlapByKey(a, b collider.ColKey) (narrowphase.Overlap, bool) {
	aID, ok := w.arena.ResolveKey(a)
	if !ok {
		return narrowphase.Overlap{}, false
	}
	bID, ok := w.arena.ResolveKey(b)
	if !ok {
		return narrowphase.Overlap{}, false
	}
	return w.OverlapPair(aID, bID)
}

// SweepByKey resolves a and b through their application-supplied ColKeys
// before running the swept test.
func (w *World) SweepByKey(a, b collider.ColKey) (narrowphase.SweepHit, bool) {
	aID, ok := w.arena.ResolveKey(a)
	if !ok {
		return narrowphase.SweepHit{}, false
	}
	bID, ok := w.arena.ResolveKey(b)
	if !ok {
		return narrowphase.SweepHit{}, false
	}
	return w.SweepPair(aID, bID)
}
