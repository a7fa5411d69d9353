// Package narrowphase implements the exact pairwise overlap and swept
// time-of-impact tests (component D of the design). It plays the role the
// teacher splits across gjk/ (distance/overlap queries) and epa/ (contact
// resolution): here the two concerns collapse into overlap.go (static
// tests) and sweep.go (swept tests), since 2D axis-aligned shapes never
// need an iterative simplex solver.
package narrowphase

import "github.com/go-gl/mathgl/mgl32"

// ResolutionHint carries the caller-usable, non-authoritative data a
// response system might want alongside a detection result.
type ResolutionHint struct {
	SafePos       mgl32.Vec2
	HasSafePos    bool
	StartEmbedded bool
	FullyEmbedded bool
}

// Overlap is the result of a static pairwise overlap test.
type Overlap struct {
	Depth  float32
	Normal mgl32.Vec2
	Hint   ResolutionHint
}

// SweepHit is the result of a swept time-of-impact test or a raycast. For
// swept tests T is normalized to [0,1] over the frame's dt; for raycasts T
// is the ray parameter in the direction vector's own units
// (hit = origin + dir*T).
type SweepHit struct {
	T      float32
	Normal mgl32.Vec2
	Hint   ResolutionHint
}
