// Package export renders run artifacts: RGBA frames, MJPEG animations,
// time-series charts and CSV tables of per-step totals.
package export

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Frame rasterizes palette-indexed cells into a scaled RGBA image and
// burns the label into the top-left corner.
func Frame(cells []uint8, palette []color.RGBA, cols, rows, scale int, label string) *image.RGBA {
	if scale < 1 {
		scale = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, cols*scale, rows*scale))

	last := len(palette) - 1
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			idx := int(cells[i*cols+j])
			if idx > last {
				idx = last
			}
			cell := image.Rect(j*scale, i*scale, (j+1)*scale, (i+1)*scale)
			draw.Draw(img, cell, &image.Uniform{C: palette[idx]}, image.Point{}, draw.Src)
		}
	}

	if label != "" {
		drawLabel(img, label)
	}
	return img
}

func drawLabel(img *image.RGBA, label string) {
	face := basicfont.Face7x13
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.RGBA{R: 235, G: 235, B: 240, A: 255}),
		Face: face,
		Dot:  fixed.P(4, face.Height+2),
	}
	d.DrawString(label)
}
