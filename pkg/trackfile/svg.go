package trackfile

import (
	"fmt"
	"html"
	"strings"

	"github.com/ha1tch/track-toolkit/pkg/track"
)

// SVGOptions controls native SVG chart rendering.
type SVGOptions struct {
	Width     int    // canvas width in pixels
	Height    int    // canvas height in pixels
	Title     string // chart title
	FontSize  int    // base font size for labels
	TitleSize int    // font size for title (0 = FontSize + 4)
	DotRadius int    // radius of point markers
	Padding   int    // padding around the plot area
	Ticks     int    // tick labels per axis
}

// DefaultSVGOptions returns sensible defaults.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		Width:     800,
		Height:    600,
		FontSize:  12,
		DotRadius: 4,
		Padding:   50,
		Ticks:     5,
	}
}

// Per-series marker colors, cycled by series index.
var seriesColors = []string{
	"#1565c0", // blue
	"#e65100", // orange
	"#2e7d32", // green
	"#6a1b9a", // purple
	"#c62828", // red
	"#00838f", // teal
}

// GenerateSVG renders every series in the store as a scatter chart.
// The axes span [0, maxX] x [0, maxY] over all series, matching the
// terminal chart.
func GenerateSVG(st *track.Store, opts SVGOptions) string {
	if opts.Width == 0 {
		opts.Width = 800
	}
	if opts.Height == 0 {
		opts.Height = 600
	}
	if opts.FontSize == 0 {
		opts.FontSize = 12
	}
	if opts.TitleSize == 0 {
		opts.TitleSize = opts.FontSize + 4
	}
	if opts.DotRadius == 0 {
		opts.DotRadius = 4
	}
	if opts.Padding == 0 {
		opts.Padding = 50
	}
	if opts.Ticks < 2 {
		opts.Ticks = 5
	}

	maxX, maxY := storeBounds(st)

	plotX := float64(opts.Padding)
	plotY := float64(opts.Padding)
	plotW := float64(opts.Width - 2*opts.Padding)
	plotH := float64(opts.Height - 2*opts.Padding)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		opts.Width, opts.Height, opts.Width, opts.Height))
	sb.WriteString(fmt.Sprintf(`  <rect width="%d" height="%d" fill="white"/>`+"\n",
		opts.Width, opts.Height))

	if opts.Title != "" {
		sb.WriteString(fmt.Sprintf(
			`  <text x="%d" y="%d" font-family="sans-serif" font-size="%d" text-anchor="middle" fill="#333">%s</text>`+"\n",
			opts.Width/2, opts.Padding/2+opts.TitleSize/2, opts.TitleSize, html.EscapeString(opts.Title)))
	}

	// Axes.
	sb.WriteString(fmt.Sprintf(
		`  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#666" stroke-width="1"/>`+"\n",
		plotX, plotY+plotH, plotX+plotW, plotY+plotH))
	sb.WriteString(fmt.Sprintf(
		`  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#666" stroke-width="1"/>`+"\n",
		plotX, plotY, plotX, plotY+plotH))

	// Tick labels and grid lines.
	for i := 0; i <= opts.Ticks; i++ {
		frac := float64(i) / float64(opts.Ticks)

		tx := plotX + frac*plotW
		sb.WriteString(fmt.Sprintf(
			`  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#ddd" stroke-width="1"/>`+"\n",
			tx, plotY, tx, plotY+plotH))
		sb.WriteString(fmt.Sprintf(
			`  <text x="%.1f" y="%.1f" font-family="sans-serif" font-size="%d" text-anchor="middle" fill="#666">%s</text>`+"\n",
			tx, plotY+plotH+float64(opts.FontSize)+4, opts.FontSize, formatAxis(frac*maxX)))

		ty := plotY + plotH - frac*plotH
		sb.WriteString(fmt.Sprintf(
			`  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#ddd" stroke-width="1"/>`+"\n",
			plotX, ty, plotX+plotW, ty))
		sb.WriteString(fmt.Sprintf(
			`  <text x="%.1f" y="%.1f" font-family="sans-serif" font-size="%d" text-anchor="end" fill="#666">%s</text>`+"\n",
			plotX-6, ty+float64(opts.FontSize)/3, opts.FontSize, formatAxis(frac*maxY)))
	}

	// Points.
	for si, s := range st.Series {
		color := seriesColors[si%len(seriesColors)]
		for _, p := range s.Data {
			if p.X < 0 || p.Y < 0 {
				continue
			}
			cx := plotX + p.X/maxX*plotW
			cy := plotY + plotH - p.Y/maxY*plotH
			sb.WriteString(fmt.Sprintf(
				`  <circle cx="%.1f" cy="%.1f" r="%d" fill="%s" fill-opacity="0.85"/>`+"\n",
				cx, cy, opts.DotRadius, color))
		}
	}

	// Legend, top right.
	ly := plotY + float64(opts.FontSize)
	for si, s := range st.Series {
		color := seriesColors[si%len(seriesColors)]
		lx := plotX + plotW - 110
		sb.WriteString(fmt.Sprintf(
			`  <circle cx="%.1f" cy="%.1f" r="%d" fill="%s"/>`+"\n",
			lx, ly-float64(opts.FontSize)/3, opts.DotRadius, color))
		sb.WriteString(fmt.Sprintf(
			`  <text x="%.1f" y="%.1f" font-family="sans-serif" font-size="%d" fill="#333">%s</text>`+"\n",
			lx+10, ly, opts.FontSize, html.EscapeString(s.Name)))
		ly += float64(opts.FontSize) + 6
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

// storeBounds returns the chart range over every series, never smaller
// than (1, 1).
func storeBounds(st *track.Store) (maxX, maxY float64) {
	maxX, maxY = 1.0, 1.0
	for _, s := range st.Series {
		sx, sy := s.Bounds()
		if sx > maxX {
			maxX = sx
		}
		if sy > maxY {
			maxY = sy
		}
	}
	return maxX, maxY
}
