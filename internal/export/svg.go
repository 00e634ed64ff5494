// Package export renders a braille canvas snapshot out as a static SVG
// document, for dropping a frame of a run into something other than a
// terminal.
package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/sphcrowd/internal/live"
)

// pressure bucket thresholds and colors, matching the live viewer's
// stats-panel pressureStyle split (internal/live/model.go).
const (
	midPressureThreshold = 5.0
	hiPressureThreshold  = 20.0

	lowPressureHex = "#2793ff"
	midPressureHex = "#ffd700"
	hiPressureHex  = "#ff3b30"
)

func pressureHex(v float64) string {
	switch {
	case v > hiPressureThreshold:
		return hiPressureHex
	case v > midPressureThreshold:
		return midPressureHex
	default:
		return lowPressureHex
	}
}

// CanvasToSVG converts a braille canvas to an SVG document, one dot per
// lit sub-pixel, scaled up by scale (screen pixels per sub-pixel). When
// pressure is non-nil, each dot is colored by the mean pressure recorded
// at its canvas cell instead of a single flat color; pass nil for a
// plain rendering.
func CanvasToSVG(canvas *live.Canvas, scale float64, pressure *live.PressureField) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.Width) * scale * 2
	height := float64(canvas.Height) * scale * 4

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	pixelMap := [4][2]int{
		{0x01, 0x08},
		{0x02, 0x10},
		{0x04, 0x20},
		{0x40, 0x80},
	}
	dotRadius := scale * 0.4

	for row := 0; row < canvas.Height; row++ {
		for col := 0; col < canvas.Width; col++ {
			r := canvas.Grid[row][col]
			if r < 0x2800 {
				continue
			}
			pattern := int(r - 0x2800)
			baseX := float64(col) * scale * 2
			baseY := float64(row) * scale * 4

			color := lowPressureHex
			if pressure != nil {
				color = pressureHex(pressure.Mean(col, row))
			}

			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] != 0 {
						cx := baseX + float64(dx)*scale + scale/2
						cy := baseY + float64(dy)*scale + scale/2
						sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, cx, cy, dotRadius, color))
					}
				}
			}
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}
