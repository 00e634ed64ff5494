// Package live implements a terminal viewer for a running simulation: a
// bubbletea Model ticks the engine once per frame, plots particles on a
// braille canvas, and renders a density sparkline and stats panel (with
// the mean-pressure readout colored by pressure bucket) alongside it.
package live

import "strings"

// pixelMap maps a sub-pixel's (col, row) position within a braille cell
// to the bit it sets in that cell's Unicode codepoint.
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a terminal braille plotting surface: each character cell
// addresses a 2x4 grid of sub-pixels, giving roughly 8x the point
// density of one dot per cell.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

// NewCanvas builds a w x h (character cells) blank canvas.
func NewCanvas(w, h int) *Canvas {
	c := &Canvas{Width: w, Height: h, Grid: make([][]rune, h)}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
	return c
}

// Set lights the sub-pixel at (x, y), in a coordinate space of
// (Width*2) x (Height*4). Out-of-range coordinates are ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

// Clear resets every cell to empty.
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}

// PressureField tracks the mean fluid pressure observed at each canvas
// cell, parallel to a Canvas of the same dimensions. It lets an exporter
// color a lit sub-pixel by the pressure that lit it instead of a single
// flat color, the same pressure-bucket split the live stats panel uses.
type PressureField struct {
	Width, Height int
	sum           [][]float64
	count         [][]int
}

// NewPressureField builds a w x h (character cells) field with no
// samples yet.
func NewPressureField(w, h int) *PressureField {
	pf := &PressureField{Width: w, Height: h, sum: make([][]float64, h), count: make([][]int, h)}
	for i := range pf.sum {
		pf.sum[i] = make([]float64, w)
		pf.count[i] = make([]int, w)
	}
	return pf
}

// Accumulate folds a pressure sample into the cell covering sub-pixel
// (x, y), in the same (Width*2) x (Height*4) space as Canvas.Set.
// Out-of-range coordinates are ignored.
func (pf *PressureField) Accumulate(x, y int, pressure float64) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= pf.Width || row >= pf.Height {
		return
	}
	pf.sum[row][col] += pressure
	pf.count[row][col]++
}

// Mean returns the average pressure accumulated at canvas cell (col,
// row), or 0 if nothing was ever accumulated there.
func (pf *PressureField) Mean(col, row int) float64 {
	if row < 0 || row >= pf.Height || col < 0 || col >= pf.Width || pf.count[row][col] == 0 {
		return 0
	}
	return pf.sum[row][col] / float64(pf.count[row][col])
}
