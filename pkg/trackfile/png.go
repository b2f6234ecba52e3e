// Native PNG rendering for scatter charts.
// Mirrors the SVG renderer output using Go's image packages.

package trackfile

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/ha1tch/track-toolkit/pkg/track"
)

// PNGOptions configures PNG chart rendering.
type PNGOptions struct {
	Width     int
	Height    int
	Padding   int
	DotRadius int
	FontSize  int
	Ticks     int
	Title     string
}

// DefaultPNGOptions returns sensible defaults for PNG rendering.
func DefaultPNGOptions() PNGOptions {
	return PNGOptions{
		Width:     800,
		Height:    600,
		Padding:   50,
		DotRadius: 4,
		FontSize:  14,
		Ticks:     5,
	}
}

// Colors used in rendering
var (
	colorWhite = color.RGBA{255, 255, 255, 255}
	colorBlack = color.RGBA{51, 51, 51, 255}    // #333
	colorGray  = color.RGBA{102, 102, 102, 255} // #666
	colorGrid  = color.RGBA{221, 221, 221, 255} // #ddd

	dotColors = []color.RGBA{
		{21, 101, 192, 255}, // blue
		{230, 81, 0, 255},   // orange
		{46, 125, 50, 255},  // green
		{106, 27, 154, 255}, // purple
		{198, 40, 40, 255},  // red
		{0, 131, 143, 255},  // teal
	}
)

// renderContext holds rendering parameters including scale
type renderContext struct {
	img      *image.RGBA
	scale    float64
	fontSize float64
	face     font.Face
}

func newRenderContext(img *image.RGBA, scale int, fontSize int) *renderContext {
	fnt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		panic(err) // should never happen with embedded font
	}

	size := float64(fontSize * scale)
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone, // No hinting - we supersample instead
	})
	if err != nil {
		panic(err)
	}

	return &renderContext{
		img:      img,
		scale:    float64(scale),
		fontSize: size,
		face:     face,
	}
}

// RenderPNG renders the store's series to PNG format.
// Uses 4x supersampling for smoother output.
func RenderPNG(st *track.Store, w io.Writer, opts PNGOptions) error {
	if opts.Width == 0 {
		opts.Width = 800
	}
	if opts.Height == 0 {
		opts.Height = 600
	}
	if opts.Padding == 0 {
		opts.Padding = 50
	}
	if opts.DotRadius == 0 {
		opts.DotRadius = 4
	}
	if opts.FontSize == 0 {
		opts.FontSize = 14
	}
	if opts.Ticks < 2 {
		opts.Ticks = 5
	}

	// Render at 4x size for supersampling
	scale := 4
	largeOpts := opts
	largeOpts.Width = opts.Width * scale
	largeOpts.Height = opts.Height * scale
	largeOpts.Padding = opts.Padding * scale
	largeOpts.DotRadius = opts.DotRadius * scale

	largeImg := renderPNGInternal(st, largeOpts, scale)

	// Downsample to target size using high-quality interpolation
	finalImg := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.CatmullRom.Scale(finalImg, finalImg.Bounds(), largeImg, largeImg.Bounds(), draw.Over, nil)

	return png.Encode(w, finalImg)
}

func renderPNGInternal(st *track.Store, opts PNGOptions, scale int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	ctx := newRenderContext(img, scale, opts.FontSize)

	for y := 0; y < opts.Height; y++ {
		for x := 0; x < opts.Width; x++ {
			img.Set(x, y, colorWhite)
		}
	}

	maxX, maxY := storeBounds(st)

	titleSpace := 0.0
	if opts.Title != "" {
		titleSpace = 35 * ctx.scale
		drawTextCentered(ctx, opts.Width/2, int(25*ctx.scale), opts.Title, colorBlack)
	}

	plotX := float64(opts.Padding)
	plotY := float64(opts.Padding) + titleSpace
	plotW := float64(opts.Width - 2*opts.Padding)
	plotH := float64(opts.Height-2*opts.Padding) - titleSpace

	// Grid and tick labels
	for i := 0; i <= opts.Ticks; i++ {
		frac := float64(i) / float64(opts.Ticks)

		tx := plotX + frac*plotW
		drawLine(ctx, tx, plotY, tx, plotY+plotH, colorGrid)
		drawTextCentered(ctx, int(tx), int(plotY+plotH+ctx.fontSize), formatAxis(frac*maxX), colorGray)

		ty := plotY + plotH - frac*plotH
		drawLine(ctx, plotX, ty, plotX+plotW, ty, colorGrid)
		drawTextRight(ctx, int(plotX-6*ctx.scale), int(ty), formatAxis(frac*maxY), colorGray)
	}

	// Axes on top of the grid
	drawLine(ctx, plotX, plotY+plotH, plotX+plotW, plotY+plotH, colorGray)
	drawLine(ctx, plotX, plotY, plotX, plotY+plotH, colorGray)

	// Points
	for si, s := range st.Series {
		c := dotColors[si%len(dotColors)]
		for _, p := range s.Data {
			if p.X < 0 || p.Y < 0 {
				continue
			}
			cx := plotX + p.X/maxX*plotW
			cy := plotY + plotH - p.Y/maxY*plotH
			fillCircle(ctx, cx, cy, float64(opts.DotRadius), c)
		}
	}

	// Legend, top right
	ly := plotY + ctx.fontSize
	for si, s := range st.Series {
		c := dotColors[si%len(dotColors)]
		lx := plotX + plotW - 140*ctx.scale
		fillCircle(ctx, lx, ly-ctx.fontSize/3, float64(opts.DotRadius), c)
		drawTextLeft(ctx, int(lx+10*ctx.scale), int(ly), s.Name, colorBlack)
		ly += ctx.fontSize + 6*ctx.scale
	}

	return img
}

// fillCircle draws a filled circle at (cx, cy).
func fillCircle(ctx *renderContext, cx, cy, r float64, c color.Color) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				ctx.img.Set(int(cx+dx), int(cy+dy), c)
			}
		}
	}
}

// drawLine draws a line between two points with scale-derived thickness.
func drawLine(ctx *renderContext, x1, y1, x2, y2 float64, c color.Color) {
	img := ctx.img
	thickness := ctx.scale

	dx := x2 - x1
	dy := y2 - y1
	steps := math.Max(math.Abs(dx), math.Abs(dy))
	if steps < 1 {
		steps = 1
	}

	dist := math.Sqrt(dx*dx + dy*dy)
	if dist < 1 {
		img.Set(int(x1), int(y1), c)
		return
	}

	perpX := -dy / dist
	perpY := dx / dist
	halfThick := thickness / 2

	for i := 0.0; i <= steps; i++ {
		t := i / steps
		px := x1 + dx*t
		py := y1 + dy*t
		for offset := -halfThick; offset <= halfThick; offset += 0.5 {
			img.Set(int(px+perpX*offset), int(py+perpY*offset), c)
		}
	}
}

// drawTextCentered draws text centered at the given position using Go Regular font.
func drawTextCentered(ctx *renderContext, x, y int, text string, c color.Color) {
	width := font.MeasureString(ctx.face, text).Ceil()
	drawTextAt(ctx, x-width/2, y, text, c)
}

// drawTextLeft draws text with its left edge at x.
func drawTextLeft(ctx *renderContext, x, y int, text string, c color.Color) {
	drawTextAt(ctx, x, y, text, c)
}

// drawTextRight draws text with its right edge at x.
func drawTextRight(ctx *renderContext, x, y int, text string, c color.Color) {
	width := font.MeasureString(ctx.face, text).Ceil()
	drawTextAt(ctx, x-width, y, text, c)
}

func drawTextAt(ctx *renderContext, x, y int, text string, c color.Color) {
	metrics := ctx.face.Metrics()
	ascent := metrics.Ascent.Ceil()
	baselineY := y + int(float64(ascent)*0.15)

	d := &font.Drawer{
		Dst:  ctx.img,
		Src:  image.NewUniform(c),
		Face: ctx.face,
		Dot: fixed.Point26_6{
			X: fixed.I(x),
			Y: fixed.I(baselineY),
		},
	}
	d.DrawString(text)
}
