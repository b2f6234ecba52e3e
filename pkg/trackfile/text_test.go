package trackfile

import (
	"strings"
	"testing"

	"github.com/ha1tch/track-toolkit/pkg/track"
)

func TestRenderTextDimensions(t *testing.T) {
	s := &track.Series{Name: "t"}
	s.Insert(1, 1)
	s.Insert(2, 3)

	opts := TextOptions{Width: 20, Height: 8, ShowAxes: true, AxisWidth: 7}
	lines := RenderText(s, opts)

	// Height chart rows plus one X-axis line.
	if len(lines) != 9 {
		t.Fatalf("expected 9 lines, got %d", len(lines))
	}
	for i, line := range lines[:8] {
		if n := len([]rune(line)); n > 27 {
			t.Errorf("line %d is %d cells wide, want <= 27", i, n)
		}
	}
}

func TestRenderTextPlotsDots(t *testing.T) {
	s := &track.Series{Name: "t"}
	s.Insert(1, 1)
	s.Insert(5, 5)
	s.Insert(10, 10)

	lines := RenderText(s, TextOptions{Width: 30, Height: 10})

	dots := 0
	for _, line := range lines {
		for _, r := range line {
			if r > 0x2800 && r <= 0x28FF {
				dots++
			}
		}
	}
	if dots == 0 {
		t.Errorf("expected at least one braille dot cell in output:\n%s", strings.Join(lines, "\n"))
	}
}

func TestRenderTextEmptySeries(t *testing.T) {
	s := &track.Series{Name: "t"}
	lines := RenderText(s, DefaultTextOptions())

	if len(lines) == 0 {
		t.Fatalf("empty series should still render a frame")
	}
	for _, line := range lines {
		for _, r := range line {
			if r > 0x2800 && r <= 0x28FF {
				t.Errorf("empty series must not plot dots, got %q", line)
			}
		}
	}

	// Axis labels come from the (1, 1) default bounds.
	last := lines[len(lines)-1]
	if !strings.Contains(last, "1.0") {
		t.Errorf("x axis should end at 1.0 for empty series, got %q", last)
	}
}

func TestRenderTextCornerPlacement(t *testing.T) {
	s := &track.Series{Name: "t"}
	s.Insert(10, 0)  // bottom-right
	s.Insert(0, 10)  // top-left

	lines := RenderText(s, TextOptions{Width: 10, Height: 4})

	firstDotCol := func(line string) int {
		for i, r := range []rune(line) {
			if r > 0x2800 && r <= 0x28FF {
				return i
			}
		}
		return -1
	}

	if col := firstDotCol(lines[0]); col != 0 {
		t.Errorf("high-y point should land in the top-left cell, first dot at col %d", col)
	}
	if col := firstDotCol(lines[3]); col != 9 {
		t.Errorf("low-y high-x point should land in the bottom-right cell, first dot at col %d", col)
	}
}

func TestBrailleBit(t *testing.T) {
	tests := []struct {
		offX, offY int
		want       uint8
	}{
		{0, 0, 0x01},
		{0, 1, 0x02},
		{0, 2, 0x04},
		{0, 3, 0x40},
		{1, 0, 0x08},
		{1, 1, 0x10},
		{1, 2, 0x20},
		{1, 3, 0x80},
	}
	for _, tt := range tests {
		if got := brailleBit(tt.offX, tt.offY); got != tt.want {
			t.Errorf("brailleBit(%d, %d) = %#02x, want %#02x", tt.offX, tt.offY, got, tt.want)
		}
	}
}
