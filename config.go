package collide2d

import "github.com/pkg/errors"

// WorldConfig configures a World at construction time. Every field maps
// directly onto a setting named in the engine's own description of itself;
// none are tunable after NewWorld (a new config means a new World).
type WorldConfig struct {
	// CellSize is the uniform broadphase grid's cell edge length. Must be > 0.
	CellSize float32

	// Dt is the frame duration used to project swept AABBs and swept
	// narrowphase tests. Must be > 0.
	Dt float32

	// TightenSweptAABB bins each collider into the grid using the union of
	// its start- and end-of-frame cell ranges instead of the single
	// enclosing swept AABB, trading extra bookkeeping for fewer spurious
	// broadphase candidates on long, shallow sweeps.
	TightenSweptAABB bool

	// EnableOverlapEvents and EnableSweepEvents gate which detection passes
	// GenerateEvents runs. At least one should normally be set.
	EnableOverlapEvents bool
	EnableSweepEvents   bool

	// RequireMutualConsent selects symmetric layer-mask consent (both sides
	// must accept the other) over one-directional consent (only a toward b).
	RequireMutualConsent bool

	// MaxEvents caps the number of events buffered per frame; 0 means
	// unbounded. Excess pushes are counted in WorldStats.EventsDropped
	// rather than returned as an error.
	MaxEvents int

	// TileEps is the skin distance subtracted from a tile sweep's time of
	// impact when deriving a resolution hint's safe position.
	TileEps float32

	// EnableTiming turns on the wall-clock instrumentation surfaced through
	// World.Timing. Off by default since it costs a few time.Now calls per
	// frame.
	EnableTiming bool

	// StrictKeys turns a duplicate ColKey pushed within the same frame into
	// a panic instead of silently overwriting the previous mapping. Intended
	// for development builds; leave off in production.
	StrictKeys bool
}

func (c WorldConfig) validate() error {
	if c.CellSize <= 0 {
		return errors.Errorf("collide2d: CellSize must be > 0, got %v", c.CellSize)
	}
	if c.Dt <= 0 {
		return errors.Errorf("collide2d: Dt must be > 0, got %v", c.Dt)
	}
	if c.TileEps < 0 {
		return errors.Errorf("collide2d: TileEps must be >= 0, got %v", c.TileEps)
	}
	if c.MaxEvents < 0 {
		return errors.Errorf("collide2d: MaxEvents must be >= 0, got %v", c.MaxEvents)
	}
	return nil
}
