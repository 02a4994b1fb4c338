package bfsearch

// FrontierSnapshot is a point-in-time summary of a Driver's frontier,
// adapted from the teacher's metrics.go aggregation shape but without its
// sharded-database rollup — there is exactly one frontier per run here, so
// a snapshot is just a direct read, not a merge across shards.
type FrontierSnapshot struct {
	Size          int
	BestScore     float64
	HasBest       bool
	NodesExpanded uint64
	SolutionsSeen int
}

// FrontierMetrics accumulates counters across a Driver's lifetime that the
// frontier/driver themselves don't need to track for correctness, only for
// reporting.
type FrontierMetrics struct {
	NodesExpanded uint64
}

// Expanded records that one NeedsExpansion outcome was handled.
func (m *FrontierMetrics) Expanded() {
	m.NodesExpanded++
}

// Snapshot captures d's current frontier size/best score alongside m's
// running counters.
func (m *FrontierMetrics) Snapshot(d *Driver) FrontierSnapshot {
	best, ok := d.BestScore()
	return FrontierSnapshot{
		Size:          d.FrontierLen(),
		BestScore:     best,
		HasBest:       ok,
		NodesExpanded: m.NodesExpanded,
		SolutionsSeen: d.nextNum,
	}
}
