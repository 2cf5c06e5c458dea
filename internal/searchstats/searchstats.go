// Package searchstats summarizes the A* driver's performance counters
// for the CLI's log output.
package searchstats

import (
	"fmt"
	"time"

	"github.com/sumofpairs/multialign/internal/astar"
)

// Report captures the counters a single alignment run produced.
type Report struct {
	NodesExpanded  int
	NodesGenerated int
	OpenSetPeak    int
	Elapsed        time.Duration
}

// FromSearch builds a Report from the driver's raw Stats plus the
// wall-clock duration measured by the caller.
func FromSearch(stats astar.Stats, elapsed time.Duration) *Report {
	return &Report{
		NodesExpanded:  stats.NodesExpanded,
		NodesGenerated: stats.NodesGenerated,
		OpenSetPeak:    stats.OpenSetPeak,
		Elapsed:        elapsed,
	}
}

// ElapsedSeconds returns the wall-clock runtime in seconds, unrounded;
// the CLI's log output and String format it to 2 decimals.
func (r *Report) ElapsedSeconds() float64 {
	return r.Elapsed.Seconds()
}

func (r *Report) String() string {
	return fmt.Sprintf(
		"SearchStats { nodes_expanded: %d, nodes_generated: %d, open_set_peak: %d, elapsed: %.2fs }",
		r.NodesExpanded, r.NodesGenerated, r.OpenSetPeak, r.ElapsedSeconds(),
	)
}
