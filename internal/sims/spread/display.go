package spread

import "image/color"

const (
	displayEmpty uint8 = iota
	displaySusceptible
	displayExposed
	displayInfected
	displayDiseased
	displayDead
)

var spreadPalette = []color.RGBA{
	displayEmpty:       {R: 28, G: 26, B: 24, A: 255},
	displaySusceptible: {R: 70, G: 160, B: 80, A: 255},
	displayExposed:     {R: 215, G: 195, B: 60, A: 255},
	displayInfected:    {R: 210, G: 80, B: 40, A: 255},
	displayDiseased:    {R: 140, G: 35, B: 90, A: 255},
	displayDead:        {R: 95, G: 95, B: 100, A: 255},
}

// Palette exposes the color palette used for rendering the spread world.
func (w *World) Palette() []color.RGBA {
	return spreadPalette
}

// classifyCell picks the display class for one cell. Worse states win:
// diseased over infected over exposed over dead over susceptible.
func (w *World) classifyCell(i, j int) uint8 {
	if w.diseased.At(i, j) > 0 {
		return displayDiseased
	}
	if w.infected.At(i, j) > 0 {
		return displayInfected
	}
	if w.exposed != nil {
		for k := 0; k < w.exposed.Len(); k++ {
			if w.exposed.Cohort(k).At(i, j) > 0 {
				return displayExposed
			}
		}
	}
	if w.dead.At(i, j) > 0 {
		return displayDead
	}
	if w.susceptible.At(i, j) > 0 {
		return displaySusceptible
	}
	return displayEmpty
}

func (w *World) rebuildDisplay() {
	for i := 0; i < w.rows; i++ {
		for j := 0; j < w.cols; j++ {
			w.display[i*w.cols+j] = w.classifyCell(i, j)
		}
	}
}
