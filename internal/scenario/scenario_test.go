package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"blight/internal/sims/spread"
)

func writeScenario(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadScenario(t *testing.T) {
	path := writeScenario(t, `
name: blight-test
seed: 7
rows: 32
cols: 40
model: SEI
latency_period: 3
kernel: cauchy-mixture
long_distance_scale: 20
short_distance_fraction: 0.8
steps: 24
movements:
  - {row_from: 0, col_from: 0, row_to: 10, col_to: 10, hosts: 5, step: 2}
output:
  stats: out.csv
  fps: 15
`)
	s, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.Name != "blight-test" || s.Seed != 7 {
		t.Fatalf("name/seed = %q/%d", s.Name, s.Seed)
	}

	cfg, movements, err := s.Build()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Rows != 32 || cfg.Cols != 40 {
		t.Fatalf("grid = %dx%d", cfg.Rows, cfg.Cols)
	}
	if cfg.Params.Model != spread.ModelSEI || cfg.Params.LatencyPeriod != 3 {
		t.Fatalf("model = %v latency = %d", cfg.Params.Model, cfg.Params.LatencyPeriod)
	}
	if cfg.Params.Kernel != spread.KernelCauchyMixture {
		t.Fatalf("kernel = %v", cfg.Params.Kernel)
	}
	if len(movements) != 1 || movements[0].Hosts != 5 || movements[0].Step != 2 {
		t.Fatalf("movements = %+v", movements)
	}
	if s.Output.Stats != "out.csv" || s.Output.FPS != 15 {
		t.Fatalf("output = %+v", s.Output)
	}
	// Fields absent from the file keep their defaults.
	if cfg.Params.ReproductiveRate != spread.DefaultConfig().Params.ReproductiveRate {
		t.Fatalf("reproductive rate = %g, want default", cfg.Params.ReproductiveRate)
	}
}

func TestLoadRejectsUnknownModel(t *testing.T) {
	path := writeScenario(t, "model: SIRS\nsteps: 10\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for unknown model name")
	}
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := writeScenario(t, "rows: [not an int\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestBuildValidatesMovements(t *testing.T) {
	s := Default()
	s.Steps = 10
	s.Movements = []MovementSpec{
		{RowFrom: 0, ColFrom: 0, RowTo: s.Rows, ColTo: 0, Hosts: 5, Step: 0},
	}
	if _, _, err := s.Build(); err == nil {
		t.Fatal("expected error for out-of-grid movement")
	}

	s.Movements = []MovementSpec{
		{RowFrom: 0, ColFrom: 0, RowTo: 1, ColTo: 1, Hosts: -1, Step: 0},
	}
	if _, _, err := s.Build(); err == nil {
		t.Fatal("expected error for negative hosts")
	}
}

func TestBuildRequiresPositiveSteps(t *testing.T) {
	s := Default()
	s.Steps = 0
	if _, _, err := s.Build(); err == nil {
		t.Fatal("expected error for zero steps")
	}
}

func TestScenarioWorld(t *testing.T) {
	s := Default()
	s.Rows = 24
	s.Cols = 24
	s.Steps = 6
	w, err := s.World()
	if err != nil {
		t.Fatal(err)
	}
	if got := w.Size(); got.W != 24 || got.H != 24 {
		t.Fatalf("world size = %dx%d", got.W, got.H)
	}
	if w.Totals().Infected == 0 {
		t.Fatal("world not seeded after construction")
	}
	w.Step()
}
