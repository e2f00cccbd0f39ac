package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"blight/internal/sims/spread"
)

var statsHeader = []string{
	"step", "susceptible", "exposed", "infected", "diseased", "dead", "outside_dispersers",
}

// StatsWriter streams per-step compartment totals as CSV.
type StatsWriter struct {
	w *csv.Writer
}

// NewStatsWriter writes the header row immediately.
func NewStatsWriter(w io.Writer) (*StatsWriter, error) {
	sw := &StatsWriter{w: csv.NewWriter(w)}
	if err := sw.w.Write(statsHeader); err != nil {
		return nil, fmt.Errorf("writing stats header: %w", err)
	}
	return sw, nil
}

// WriteStep appends one row of totals.
func (s *StatsWriter) WriteStep(t spread.Totals) error {
	row := []string{
		strconv.Itoa(t.Step),
		strconv.Itoa(t.Susceptible),
		strconv.Itoa(t.Exposed),
		strconv.Itoa(t.Infected),
		strconv.Itoa(t.Diseased),
		strconv.Itoa(t.Dead),
		strconv.Itoa(t.Outside),
	}
	return s.w.Write(row)
}

// Flush pushes buffered rows to the underlying writer.
func (s *StatsWriter) Flush() error {
	s.w.Flush()
	return s.w.Error()
}
