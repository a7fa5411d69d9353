package collide2d

// WorldTiming reports per-phase wall-clock cost for the most recent
// EndFrame/GenerateEvents pair, in milliseconds. Zero unless
// WorldConfig.EnableTiming is set.
type WorldTiming struct {
	EndFrameAABBsMs       float64
	EndFrameGridMs        float64
	GenerateScanMs        float64
	GenerateNarrowphaseMs float64
}

// WorldStats reports counters from the most recent EndFrame/GenerateEvents
// pair, useful for debugging and for tuning CellSize/MaxEvents.
type WorldStats struct {
	Entries        int
	OccupiedCells  int
	CandidatePairs int
	UniquePairs    int
	EventsEmitted  int
	EventsDropped  int
}
