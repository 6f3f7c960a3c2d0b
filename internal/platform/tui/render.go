package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dermotk/heart-chase/internal/display"
)

// Terminal cell geometry: each "▀" half-block cell covers 2x4 framebuffer
// pixels, so the 128x160 frame renders as 64x40 cells.
const (
	cellPxW = 2
	cellPxH = 4

	ViewCols = display.Width / cellPxW
	ViewRows = display.Height / cellPxH
)

func hexColor(c display.Color) string {
	r, g, b := display.WordToRGB(c)
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// RenderFrame converts a framebuffer snapshot to a styled string. The top
// half of each cell carries the foreground color, the bottom half the
// background; adjacent cells with identical colors share one escape sequence.
func RenderFrame(pix []display.Color) string {
	var sb strings.Builder
	sb.Grow(ViewCols*ViewRows*8 + ViewRows)

	at := func(x, y int) display.Color {
		return pix[y*display.Width+x]
	}

	for cy := range ViewRows {
		if cy > 0 {
			sb.WriteRune('\n')
		}

		cx := 0
		for cx < ViewCols {
			top := at(cx*cellPxW, cy*cellPxH)
			bottom := at(cx*cellPxW, cy*cellPxH+cellPxH/2)

			// Collect the run of cells sharing this color pair.
			run := 0
			for cx+run < ViewCols {
				x := (cx + run) * cellPxW
				if at(x, cy*cellPxH) != top || at(x, cy*cellPxH+cellPxH/2) != bottom {
					break
				}
				run++
			}

			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(hexColor(top))).
				Background(lipgloss.Color(hexColor(bottom)))
			sb.WriteString(style.Render(strings.Repeat("▀", run)))
			cx += run
		}
	}
	return sb.String()
}
