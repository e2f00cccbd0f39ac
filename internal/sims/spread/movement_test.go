package spread

import (
	"math"
	"testing"

	"blight/internal/core"
)

func movementFixture(t *testing.T, seed int64) (*Simulation, *core.IntGrid, *core.IntGrid, *core.IntGrid) {
	t.Helper()
	sim, err := NewSimulation(seed, 1, 2, ModelSI, 0)
	if err != nil {
		t.Fatal(err)
	}
	infected := core.NewIntGrid(1, 2)
	susceptible := core.NewIntGrid(1, 2)
	totalPlants := core.NewIntGrid(1, 2)
	infected.Set(0, 0, 20)
	susceptible.Set(0, 0, 80)
	totalPlants.Set(0, 0, 100)
	susceptible.Set(0, 1, 50)
	totalPlants.Set(0, 1, 50)
	return sim, infected, susceptible, totalPlants
}

func TestMovementConservation(t *testing.T) {
	sim, infected, susceptible, totalPlants := movementFixture(t, 1)
	movements := []Movement{{RowFrom: 0, ColFrom: 0, RowTo: 0, ColTo: 1, Hosts: 30, Step: 0}}

	cursor := sim.ApplyMovements(infected, susceptible, totalPlants, 0, 0, movements)
	if cursor != 1 {
		t.Fatalf("cursor = %d, want 1", cursor)
	}

	if got := infected.Sum(); got != 20 {
		t.Fatalf("infected sum = %d, want 20", got)
	}
	if got := susceptible.Sum(); got != 130 {
		t.Fatalf("susceptible sum = %d, want 130", got)
	}
	if got := totalPlants.Sum(); got != 150 {
		t.Fatalf("total plants sum = %d, want 150", got)
	}
	for j := 0; j < 2; j++ {
		if totalPlants.At(0, j) != infected.At(0, j)+susceptible.At(0, j) {
			t.Fatalf("cell %d: total %d != infected %d + susceptible %d",
				j, totalPlants.At(0, j), infected.At(0, j), susceptible.At(0, j))
		}
	}
}

func TestMovementExpectedInfectedShare(t *testing.T) {
	// Moving 30 of 100 hosts with 20 infected carries 30*20/100 = 6
	// infected in expectation.
	const runs = 200
	sumInfectedMoved := 0
	for seed := int64(1); seed <= runs; seed++ {
		sim, infected, susceptible, totalPlants := movementFixture(t, seed)
		movements := []Movement{{RowFrom: 0, ColFrom: 0, RowTo: 0, ColTo: 1, Hosts: 30, Step: 0}}
		sim.ApplyMovements(infected, susceptible, totalPlants, 0, 0, movements)
		sumInfectedMoved += infected.At(0, 1)
	}
	mean := float64(sumInfectedMoved) / runs
	if math.Abs(mean-6) > 0.6 {
		t.Fatalf("mean infected moved = %.2f, want ~6", mean)
	}
}

func TestMovementClipsToAvailable(t *testing.T) {
	sim, infected, susceptible, totalPlants := movementFixture(t, 3)
	movements := []Movement{{RowFrom: 0, ColFrom: 0, RowTo: 0, ColTo: 1, Hosts: 500, Step: 0}}

	sim.ApplyMovements(infected, susceptible, totalPlants, 0, 0, movements)

	if got := totalPlants.At(0, 0); got != 0 {
		t.Fatalf("source total = %d, want 0 (everything movable moved)", got)
	}
	if got := totalPlants.At(0, 1); got != 150 {
		t.Fatalf("destination total = %d, want 150", got)
	}
	if got := infected.Sum() + susceptible.Sum(); got != 150 {
		t.Fatalf("hosts sum = %d, want 150", got)
	}
}

func TestMovementSingleCompartmentSource(t *testing.T) {
	sim, err := NewSimulation(5, 1, 2, ModelSI, 0)
	if err != nil {
		t.Fatal(err)
	}
	infected := core.NewIntGrid(1, 2)
	susceptible := core.NewIntGrid(1, 2)
	totalPlants := core.NewIntGrid(1, 2)
	infected.Set(0, 0, 12)
	totalPlants.Set(0, 0, 12)

	movements := []Movement{{RowFrom: 0, ColFrom: 0, RowTo: 0, ColTo: 1, Hosts: 5, Step: 0}}
	sim.ApplyMovements(infected, susceptible, totalPlants, 0, 0, movements)

	if got := infected.At(0, 1); got != 5 {
		t.Fatalf("infected-only source moved %d infected, want 5", got)
	}
	if got := susceptible.Sum(); got != 0 {
		t.Fatalf("susceptible appeared from nowhere: %d", got)
	}
}

func TestMovementEmptySourceSkipped(t *testing.T) {
	sim, err := NewSimulation(5, 1, 2, ModelSI, 0)
	if err != nil {
		t.Fatal(err)
	}
	infected := core.NewIntGrid(1, 2)
	susceptible := core.NewIntGrid(1, 2)
	totalPlants := core.NewIntGrid(1, 2)

	movements := []Movement{{RowFrom: 0, ColFrom: 0, RowTo: 0, ColTo: 1, Hosts: 5, Step: 0}}
	cursor := sim.ApplyMovements(infected, susceptible, totalPlants, 0, 0, movements)

	if cursor != 1 {
		t.Fatalf("cursor = %d, want 1 (empty source still consumed)", cursor)
	}
	if totalPlants.Sum() != 0 {
		t.Fatal("hosts moved from an empty source")
	}
}

func TestMovementCursorResumes(t *testing.T) {
	sim, err := NewSimulation(9, 1, 2, ModelSI, 0)
	if err != nil {
		t.Fatal(err)
	}
	infected := core.NewIntGrid(1, 2)
	susceptible := core.NewIntGrid(1, 2)
	totalPlants := core.NewIntGrid(1, 2)
	susceptible.Set(0, 0, 100)
	totalPlants.Set(0, 0, 100)

	movements := []Movement{
		{RowFrom: 0, ColFrom: 0, RowTo: 0, ColTo: 1, Hosts: 10, Step: 0},
		{RowFrom: 0, ColFrom: 0, RowTo: 0, ColTo: 1, Hosts: 10, Step: 0},
		{RowFrom: 0, ColFrom: 0, RowTo: 0, ColTo: 1, Hosts: 10, Step: 2},
	}

	cursor := sim.ApplyMovements(infected, susceptible, totalPlants, 0, 0, movements)
	if cursor != 2 {
		t.Fatalf("after step 0 cursor = %d, want 2", cursor)
	}
	if got := totalPlants.At(0, 1); got != 20 {
		t.Fatalf("after step 0 destination total = %d, want 20", got)
	}

	cursor = sim.ApplyMovements(infected, susceptible, totalPlants, 1, cursor, movements)
	if cursor != 2 {
		t.Fatalf("after step 1 cursor = %d, want 2 (future movement untouched)", cursor)
	}
	if got := totalPlants.At(0, 1); got != 20 {
		t.Fatalf("step 1 moved hosts early: destination total = %d", got)
	}

	cursor = sim.ApplyMovements(infected, susceptible, totalPlants, 2, cursor, movements)
	if cursor != 3 {
		t.Fatalf("after step 2 cursor = %d, want 3", cursor)
	}
	if got := totalPlants.At(0, 1); got != 30 {
		t.Fatalf("after step 2 destination total = %d, want 30", got)
	}
}
