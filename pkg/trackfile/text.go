package trackfile

import (
	"fmt"
	"strings"

	"github.com/ha1tch/track-toolkit/pkg/track"
)

// TextOptions configures plain-text chart rendering.
type TextOptions struct {
	Width     int  // chart width in cells, excluding axis labels
	Height    int  // chart height in cells
	ShowAxes  bool // draw Y labels on the left and X labels underneath
	AxisWidth int  // width reserved for Y labels (default 7)
}

// DefaultTextOptions returns sensible defaults for terminal output.
func DefaultTextOptions() TextOptions {
	return TextOptions{
		Width:    60,
		Height:   16,
		ShowAxes: true,
	}
}

// RenderText draws the series as a Braille-dot scatter chart over the
// range [0, maxX] x [0, maxY]. Each cell carries a 2x4 dot grid, so the
// plot resolution is twice the width and four times the height in dots.
func RenderText(s *track.Series, opts TextOptions) []string {
	if opts.Width < 1 {
		opts.Width = 1
	}
	if opts.Height < 1 {
		opts.Height = 1
	}
	if opts.AxisWidth <= 0 {
		opts.AxisWidth = 7
	}

	maxX, maxY := s.Bounds()
	grid := brailleGrid(s.Data, maxX, maxY, opts.Width, opts.Height)

	axisW := 0
	if opts.ShowAxes {
		axisW = opts.AxisWidth
	}

	lines := make([]string, 0, opts.Height+1)
	for r := 0; r < opts.Height; r++ {
		var sb strings.Builder
		if opts.ShowAxes {
			// Row 0 is the top of the chart.
			var val float64
			if opts.Height <= 1 {
				val = maxY
			} else {
				val = maxY * float64(opts.Height-1-r) / float64(opts.Height-1)
			}
			sb.WriteString(padLeft(formatAxis(val), axisW-1))
			sb.WriteString(" ")
		}
		for c := 0; c < opts.Width; c++ {
			sb.WriteRune(rune(0x2800 + int(grid[r][c])))
		}
		lines = append(lines, strings.TrimRight(sb.String(), " \t"))
	}

	if opts.ShowAxes {
		lines = append(lines, xAxisLine(maxX, axisW, opts.Width))
	}
	return lines
}

// brailleGrid plots points into a grid of Braille dot bitmasks. Rows run
// top to bottom; row 0 column 0 is the top-left cell.
func brailleGrid(points []track.Point, maxX, maxY float64, width, height int) [][]uint8 {
	grid := make([][]uint8, height)
	for r := range grid {
		grid[r] = make([]uint8, width)
	}

	dotsW := width * 2
	dotsH := height * 4

	for _, p := range points {
		if p.X < 0 || p.Y < 0 || p.X > maxX || p.Y > maxY {
			continue
		}

		var dotX int
		if maxX <= 0 {
			dotX = 0
		} else {
			dotX = int(p.X / maxX * float64(dotsW-1))
		}
		var dotY int
		if maxY <= 0 {
			dotY = dotsH - 1
		} else {
			// Invert: high values at the top.
			dotY = int((1 - p.Y/maxY) * float64(dotsH-1))
		}

		if dotX < 0 {
			dotX = 0
		}
		if dotX >= dotsW {
			dotX = dotsW - 1
		}
		if dotY < 0 {
			dotY = 0
		}
		if dotY >= dotsH {
			dotY = dotsH - 1
		}

		grid[dotY/4][dotX/2] |= brailleBit(dotX%2, dotY%4)
	}
	return grid
}

// brailleBit returns the bitmask for the dot at (offX, offY) within a
// Braille cell. offX is 0 (left) or 1 (right); offY runs 0..3 top to
// bottom.
//
// Unicode Braille dot numbering:
//
//	1 4      bit: 0x01  0x08
//	2 5           0x02  0x10
//	3 6           0x04  0x20
//	7 8           0x40  0x80
func brailleBit(offX, offY int) uint8 {
	leftBits := [4]uint8{0x01, 0x02, 0x04, 0x40}
	rightBits := [4]uint8{0x08, 0x10, 0x20, 0x80}

	if offY < 0 || offY > 3 {
		return 0
	}
	if offX == 0 {
		return leftBits[offY]
	}
	return rightBits[offY]
}

func xAxisLine(maxX float64, axisW, chartW int) string {
	left := "0"
	right := formatAxis(maxX)

	line := make([]byte, axisW+chartW)
	for i := range line {
		line[i] = ' '
	}
	copy(line[axisW:], left)

	start := axisW + chartW - len(right)
	if start < axisW+len(left)+1 {
		start = axisW + len(left) + 1
	}
	if start+len(right) <= len(line) {
		copy(line[start:], right)
	}
	return strings.TrimRight(string(line), " ")
}

func formatAxis(v float64) string {
	s := fmt.Sprintf("%.1f", v)
	if len(s) > 8 {
		s = fmt.Sprintf("%.3g", v)
	}
	return s
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	return strings.Repeat(" ", width-len(s)) + s
}
