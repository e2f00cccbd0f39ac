package spread

import (
	"testing"

	"blight/internal/core"
)

func TestMortalityNoopBeforeFirstYear(t *testing.T) {
	tracker, err := NewMortalityTracker(0.5, 3, 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	infected := core.NewIntGrid(2, 2)
	cumulative := core.NewIntGrid(2, 2)
	tracker.Current().Set(0, 0, 100)
	infected.Set(0, 0, 100)

	for year := 0; year < 3; year++ {
		if killed := tracker.Apply(year, infected, cumulative); killed != 0 {
			t.Fatalf("year %d: killed %d before first mortality year", year, killed)
		}
	}
	if infected.At(0, 0) != 100 || cumulative.Sum() != 0 {
		t.Fatal("state changed before first mortality year")
	}
}

func TestMortalityGeometricDecay(t *testing.T) {
	tracker, err := NewMortalityTracker(0.5, 0, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	infected := core.NewIntGrid(1, 1)
	cumulative := core.NewIntGrid(1, 1)
	tracker.Current().Set(0, 0, 100)
	infected.Set(0, 0, 100)

	// round(0.5 * value) halves the cohort each year until exhausted.
	wantKilled := []int{50, 25, 13, 6, 3, 2, 1}
	remaining := 100
	for year, want := range wantKilled {
		killed := tracker.Apply(year, infected, cumulative)
		if killed != want {
			t.Fatalf("year %d: killed %d, want %d", year, killed, want)
		}
		remaining -= want
		if got := infected.At(0, 0); got != remaining {
			t.Fatalf("year %d: infected = %d, want %d", year, got, remaining)
		}
		tracker.AdvanceYear(year + 1)
	}

	if killed := tracker.Apply(len(wantKilled), infected, cumulative); killed != 0 {
		t.Fatalf("exhausted cohort still killed %d", killed)
	}
	if got := cumulative.At(0, 0); got != 100 {
		t.Fatalf("cumulative mortality = %d, want 100", got)
	}
	if got := infected.At(0, 0); got != 0 {
		t.Fatalf("infected = %d, want 0", got)
	}
}

func TestMortalityClampsInfected(t *testing.T) {
	tracker, err := NewMortalityTracker(1, 0, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	infected := core.NewIntGrid(1, 1)
	cumulative := core.NewIntGrid(1, 1)
	// Cohort larger than the live infected count (hosts may have been
	// removed by other processes since they were tracked).
	tracker.Current().Set(0, 0, 40)
	infected.Set(0, 0, 10)

	tracker.Apply(0, infected, cumulative)

	if got := infected.At(0, 0); got != 0 {
		t.Fatalf("infected = %d, want 0 (clamped, never negative)", got)
	}
	if got := cumulative.At(0, 0); got != 40 {
		t.Fatalf("cumulative = %d, want 40", got)
	}
}

func TestMortalityDisabled(t *testing.T) {
	tracker, err := NewMortalityTracker(0.5, -1, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if tracker.Enabled() {
		t.Fatal("tracker with first year -1 should be disabled")
	}
	infected := core.NewIntGrid(1, 1)
	cumulative := core.NewIntGrid(1, 1)
	tracker.Current().Set(0, 0, 10)
	infected.Set(0, 0, 10)
	tracker.AdvanceYear(1)
	if tracker.Cohorts() != 1 {
		t.Fatalf("disabled tracker grew to %d cohorts", tracker.Cohorts())
	}
	if killed := tracker.Apply(5, infected, cumulative); killed != 0 {
		t.Fatalf("disabled tracker killed %d", killed)
	}
}

func TestMortalityTrackerValidation(t *testing.T) {
	if _, err := NewMortalityTracker(1.5, 0, 1, 1); err == nil {
		t.Fatal("expected error for rate above 1")
	}
	if _, err := NewMortalityTracker(-0.1, 0, 1, 1); err == nil {
		t.Fatal("expected error for negative rate")
	}
	if _, err := NewMortalityTracker(0.5, -2, 1, 1); err == nil {
		t.Fatal("expected error for first year below -1")
	}
}
