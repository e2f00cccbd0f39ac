package spread

import (
	"fmt"
	"math"

	"blight/internal/core"
)

// MortalityTracker keeps per-year infection cohorts and decays them once
// the mortality onset year is reached. Cohort k holds hosts that became
// infected in year firstYear+k; infections established before the onset
// year fold into cohort 0.
type MortalityTracker struct {
	rows, cols int
	rate       float64
	firstYear  int
	cohorts    []*core.IntGrid
}

// NewMortalityTracker validates the decay parameters and allocates the
// initial cohort. A firstYear of -1 disables the tracker entirely: the
// current cohort still accumulates new infections, but Apply never decays.
func NewMortalityTracker(rate float64, firstYear, rows, cols int) (*MortalityTracker, error) {
	if rate < 0 || rate > 1 {
		return nil, fmt.Errorf("mortality rate must be in [0,1], got %g", rate)
	}
	if firstYear < -1 {
		return nil, fmt.Errorf("first mortality year must be -1 or non-negative, got %d", firstYear)
	}
	return &MortalityTracker{
		rows:      rows,
		cols:      cols,
		rate:      rate,
		firstYear: firstYear,
		cohorts:   []*core.IntGrid{core.NewIntGrid(rows, cols)},
	}, nil
}

// Enabled reports whether mortality decay is configured at all.
func (t *MortalityTracker) Enabled() bool { return t.firstYear >= 0 }

// Current returns the cohort accumulating this year's new infections.
func (t *MortalityTracker) Current() *core.IntGrid {
	return t.cohorts[len(t.cohorts)-1]
}

// Cohorts returns the number of tracked cohorts.
func (t *MortalityTracker) Cohorts() int { return len(t.cohorts) }

// AdvanceYear starts a fresh cohort for the given year. Years before the
// onset year keep accumulating into the initial cohort.
func (t *MortalityTracker) AdvanceYear(year int) {
	if !t.Enabled() || year <= t.firstYear {
		return
	}
	t.cohorts = append(t.cohorts, core.NewIntGrid(t.rows, t.cols))
}

// Apply decays every cohort up to the current year. Per cell, the
// decrement is round(rate * cohort value); it leaves the cohort, is
// removed from the live infected count (clamped so infected never goes
// negative) and is added to the cumulative mortality grid. Returns the
// total hosts removed this call. A no-op before the onset year.
//
// Cohorts are processed oldest-first; each is independent, but the fixed
// order keeps rounding reproducible.
func (t *MortalityTracker) Apply(year int, infected, cumulative *core.IntGrid) int {
	if !t.Enabled() || year < t.firstYear {
		return 0
	}
	maxIndex := year - t.firstYear
	if maxIndex >= len(t.cohorts) {
		maxIndex = len(t.cohorts) - 1
	}
	killed := 0
	for index := 0; index <= maxIndex; index++ {
		cohort := t.cohorts[index]
		for i := 0; i < t.rows; i++ {
			for j := 0; j < t.cols; j++ {
				value := cohort.At(i, j)
				if value <= 0 {
					continue
				}
				decrement := int(math.Round(t.rate * float64(value)))
				if decrement <= 0 {
					continue
				}
				cohort.Add(i, j, -decrement)
				live := infected.At(i, j)
				if decrement < live {
					live = decrement
				}
				infected.Add(i, j, -live)
				cumulative.Add(i, j, decrement)
				killed += decrement
			}
		}
	}
	return killed
}
