package spread

import "blight/internal/core"

// ExposedCohorts tracks latent hosts by age in a fixed-capacity ring of
// grids, one per latency age. The ring holds latencyPeriod+1 cohorts; the
// head slot is the oldest. Rotation is a head-index move, not a copy.
type ExposedCohorts struct {
	grids []*core.IntGrid
	head  int
}

// NewExposedCohorts allocates latencyPeriod+1 zeroed cohort grids.
func NewExposedCohorts(latencyPeriod, rows, cols int) *ExposedCohorts {
	n := latencyPeriod + 1
	grids := make([]*core.IntGrid, n)
	for i := range grids {
		grids[i] = core.NewIntGrid(rows, cols)
	}
	return &ExposedCohorts{grids: grids}
}

// Len returns the fixed number of cohorts.
func (c *ExposedCohorts) Len() int { return len(c.grids) }

// Oldest returns the cohort about to complete the latency period.
func (c *ExposedCohorts) Oldest() *core.IntGrid { return c.grids[c.head] }

// Newest returns the cohort receiving this step's new exposures.
func (c *ExposedCohorts) Newest() *core.IntGrid {
	return c.grids[(c.head+len(c.grids)-1)%len(c.grids)]
}

// Cohort returns the cohort at the given age position; 0 is oldest.
func (c *ExposedCohorts) Cohort(i int) *core.IntGrid {
	return c.grids[(c.head+i)%len(c.grids)]
}

// Rotate advances the ring by one age step. The previous oldest slot
// becomes the new newest; callers zero it before rotating.
func (c *ExposedCohorts) Rotate() { c.head = (c.head + 1) % len(c.grids) }

// Sum returns the total exposed hosts across all cohorts.
func (c *ExposedCohorts) Sum() int {
	total := 0
	for _, g := range c.grids {
		total += g.Sum()
	}
	return total
}

// Zero clears every cohort.
func (c *ExposedCohorts) Zero() {
	for _, g := range c.grids {
		g.Zero()
	}
}
