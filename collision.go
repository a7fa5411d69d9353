package collide2d

import (
	"time"

	"github.com/akmonengine/collide2d/collider"
	"github.com/akmonengine/collide2d/event"
	"github.com/akmonengine/collide2d/narrowphase"
)

// GenerateEvents scans the broadphase grid for candidate collider pairs,
// filters them by layer-mask consent, runs the narrowphase tests enabled by
// WorldConfig, and pushes the resulting events into the drainable buffer.
// It may be called more than once per frame; each call clears and
// repopulates the buffer rather than accumulating across calls.
func (w *World) GenerateEvents() {
	w.events.Reset()

	colliders := w.arena.All()
	epoch := w.grid.nextPairEpoch()

	var scanStart time.Time
	var narrowphaseElapsed time.Duration
	if w.cfg.EnableTiming {
		scanStart = time.Now()
	}

	candidatePairs := 0
	uniquePairs := 0

	for _, key := range w.grid.cellsInOrder() {
		ids := w.grid.cell(key)
		for i := 0; i < len(ids); i++ {
			for j := i + 1; j < len(ids); j++ {
				candidatePairs++
				a, b := ids[i], ids[j]
				if !w.grid.markPairVisited(epoch, a, b) {
					continue
				}
				uniquePairs++

				ca := &colliders[a]
				cb := &colliders[b]
				if !collider.Consent(ca.Mask, cb.Mask, w.cfg.RequireMutualConsent) {
					continue
				}

				w.testPair(ca, cb, &narrowphaseElapsed)
			}
		}
	}

	if w.cfg.EnableTiming {
		total := time.Since(scanStart)
		w.timing.GenerateNarrowphaseMs = float64(narrowphaseElapsed.Nanoseconds()) / 1e6
		w.timing.GenerateScanMs = float64((total - narrowphaseElapsed).Nanoseconds()) / 1e6
	}

	w.stats.CandidatePairs = candidatePairs
	w.stats.UniquePairs = uniquePairs
	w.stats.EventsEmitted = int(w.events.Emitted())
	w.stats.EventsDropped = int(w.events.Dropped())
}

func (w *World) testPair(ca, cb *collider.Collider, narrowphaseElapsed *time.Duration) {
	if w.cfg.EnableOverlapEvents {
		var ov narrowphase.Overlap
		var ok bool
		if w.cfg.EnableTiming {
			t0 := time.Now()
			ov, ok = narrowphase.OverlapPair(ca, cb)
			*narrowphaseElapsed += time.Since(t0)
		} else {
			ov, ok = narrowphase.OverlapPair(ca, cb)
		}
		if ok {
			w.pushColliderEvent(event.KindOverlap, ca, cb, ov, narrowphase.SweepHit{})
		}
	}

	if w.cfg.EnableSweepEvents {
		var sh narrowphase.SweepHit
		var ok bool
		if w.cfg.EnableTiming {
			t0 := time.Now()
			sh, ok = narrowphase.SweepPair(ca, cb, w.cfg.Dt)
			*narrowphaseElapsed += time.Since(t0)
		} else {
			sh, ok = narrowphase.SweepPair(ca, cb, w.cfg.Dt)
		}
		if ok {
			w.pushColliderEvent(event.KindSweep, ca, cb, narrowphase.Overlap{}, sh)
		}
	}
}

func (w *World) pushColliderEvent(kind event.Kind, ca, cb *collider.Collider, ov narrowphase.Overlap, sh narrowphase.SweepHit) {
	e := event.Event{
		Kind:    kind,
		A:       event.ColliderRef(ca.ID),
		B:       event.ColliderRef(cb.ID),
		Overlap: ov,
		Sweep:   sh,
	}
	if ca.HasKey {
		e.AKey, e.AHasKey = ca.Key, true
	}
	if cb.HasKey {
		e.BKey, e.BHasKey = cb.Key, true
	}
	w.events.Push(e)
}
