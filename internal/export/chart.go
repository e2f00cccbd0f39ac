package export

import (
	"fmt"
	"io"
	"os"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"blight/internal/sims/spread"
)

// Series is one named line on the compartment chart.
type Series struct {
	Name   string
	Values []float64
	Color  drawing.Color
}

// RenderChart writes a PNG time-series of compartment totals. steps is the
// shared X axis; every series must have the same length.
func RenderChart(w io.Writer, steps []float64, series []Series) error {
	if len(steps) < 2 {
		return fmt.Errorf("chart needs at least two steps, got %d", len(steps))
	}

	chartSeries := make([]chart.Series, 0, len(series))
	for _, s := range series {
		if len(s.Values) != len(steps) {
			return fmt.Errorf("series %s has %d values for %d steps", s.Name, len(s.Values), len(steps))
		}
		chartSeries = append(chartSeries, chart.ContinuousSeries{
			Name:    s.Name,
			XValues: steps,
			YValues: s.Values,
			Style: chart.Style{
				StrokeColor: s.Color,
				StrokeWidth: 2,
			},
		})
	}

	graph := chart.Chart{
		Width:  900,
		Height: 500,
		XAxis: chart.XAxis{
			Name: "Step",
		},
		YAxis: chart.YAxis{
			Name: "Hosts",
		},
		Series: chartSeries,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	return graph.Render(chart.PNG, w)
}

// CompartmentSeries turns a run history into the standard chart lines:
// susceptible, exposed (when any), infected and dead.
func CompartmentSeries(history []spread.Totals) ([]float64, []Series) {
	steps := make([]float64, len(history))
	susceptible := make([]float64, len(history))
	exposed := make([]float64, len(history))
	infected := make([]float64, len(history))
	dead := make([]float64, len(history))
	anyExposed := false
	for i, t := range history {
		steps[i] = float64(t.Step)
		susceptible[i] = float64(t.Susceptible)
		exposed[i] = float64(t.Exposed)
		infected[i] = float64(t.Infected)
		dead[i] = float64(t.Dead)
		if t.Exposed > 0 {
			anyExposed = true
		}
	}
	series := []Series{
		{Name: "susceptible", Values: susceptible, Color: chart.ColorGreen},
		{Name: "infected", Values: infected, Color: chart.ColorRed},
		{Name: "dead", Values: dead, Color: chart.ColorAlternateGray},
	}
	if anyExposed {
		series = append(series, Series{Name: "exposed", Values: exposed, Color: chart.ColorYellow})
	}
	return steps, series
}

// RenderChartFile is RenderChart writing to a file path.
func RenderChartFile(path string, steps []float64, series []Series) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating chart %s: %w", path, err)
	}
	defer f.Close()
	return RenderChart(f, steps, series)
}
