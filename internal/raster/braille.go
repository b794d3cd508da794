package raster

import (
	"image"
	"strings"

	"honnef.co/go/chaikin"
)

// A braille cell covers CellWidth×CellHeight pixels.
const (
	CellWidth  = 2
	CellHeight = 4
)

// brailleDots maps a pixel offset inside a cell to its dot bit, indexed
// [y][x].
var brailleDots = [CellHeight][CellWidth]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// SurfaceSize returns the pixel size of a canvas of cols×rows cells.
func SurfaceSize(cols, rows int) (width, height int) {
	return cols * CellWidth, rows * CellHeight
}

// CellCenter returns the surface position at the centre of the cell in
// column col and row row.
func CellCenter(col, row int) chaikin.Point {
	return chaikin.Pt(
		float64(col*CellWidth)+CellWidth/2.0,
		float64(row*CellHeight)+CellHeight/2.0,
	)
}

// Braille converts img to text, one braille character per cell and one
// line per row of cells. A pixel sets its dot if its alpha is at least
// half. Cells without dots are spaces.
func Braille(img image.Image) []string {
	b := img.Bounds()
	cols := (b.Dx() + CellWidth - 1) / CellWidth
	rows := (b.Dy() + CellHeight - 1) / CellHeight

	lines := make([]string, rows)
	var sb strings.Builder
	for row := range rows {
		sb.Reset()
		for col := range cols {
			var cell rune
			for dy := range CellHeight {
				for dx := range CellWidth {
					x := b.Min.X + col*CellWidth + dx
					y := b.Min.Y + row*CellHeight + dy
					if !(image.Point{x, y}).In(b) {
						continue
					}
					if _, _, _, a := img.At(x, y).RGBA(); a >= 0x8000 {
						cell |= brailleDots[dy][dx]
					}
				}
			}
			if cell == 0 {
				sb.WriteByte(' ')
			} else {
				sb.WriteRune(0x2800 + cell)
			}
		}
		lines[row] = sb.String()
	}
	return lines
}
