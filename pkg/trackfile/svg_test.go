package trackfile

import (
	"strings"
	"testing"

	"github.com/ha1tch/track-toolkit/pkg/track"
)

func TestGenerateSVGBasics(t *testing.T) {
	st := track.NewStore()
	st.InsertPoint(0, 1, 2)
	st.InsertPoint(0, 3, 4)

	opts := DefaultSVGOptions()
	opts.Title = "Test & Chart"
	svg := GenerateSVG(st, opts)

	if !strings.HasPrefix(svg, "<svg") || !strings.HasSuffix(strings.TrimSpace(svg), "</svg>") {
		t.Fatalf("output is not a well-formed SVG document")
	}
	if !strings.Contains(svg, "Test &amp; Chart") {
		t.Errorf("title should be escaped and present")
	}
	if strings.Count(svg, "<circle") < 2 {
		t.Errorf("expected at least one circle per point")
	}
	if !strings.Contains(svg, track.DefaultSeriesName) {
		t.Errorf("legend should name the series")
	}
}

func TestGenerateSVGEmptyStore(t *testing.T) {
	svg := GenerateSVG(track.NewStore(), DefaultSVGOptions())

	// Axes still render over the (1, 1) default bounds.
	if !strings.Contains(svg, "<line") {
		t.Errorf("empty store should still draw axes")
	}
}

func TestStoreBounds(t *testing.T) {
	st := track.NewStore()
	st.AddSeries("B")
	st.InsertPoint(0, 2, 8)
	st.InsertPoint(1, 5, 1)

	maxX, maxY := storeBounds(st)
	if maxX != 5 || maxY != 8 {
		t.Errorf("storeBounds = (%v, %v), want (5, 8)", maxX, maxY)
	}

	maxX, maxY = storeBounds(track.NewStore())
	if maxX != 1 || maxY != 1 {
		t.Errorf("empty storeBounds = (%v, %v), want (1, 1)", maxX, maxY)
	}
}
