package trackfile

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ha1tch/track-toolkit/pkg/track"
)

func TestRoundTrip(t *testing.T) {
	st := &track.Store{}
	a := &track.Series{Name: "A"}
	a.Insert(1, 2)
	a.Insert(3, 4)
	b := &track.Series{Name: "B"}
	b.Insert(0, 0)
	st.Series = []*track.Series{a, b}

	var buf bytes.Buffer
	if err := Write(&buf, st); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	if len(got.Series) != 2 {
		t.Fatalf("expected 2 series, got %d", len(got.Series))
	}

	wantA := []track.Point{{X: 1, Y: 2}, {X: 3, Y: 4}}
	wantB := []track.Point{{X: 0, Y: 0}}

	ai := got.SeriesIndex("A")
	bi := got.SeriesIndex("B")
	if ai < 0 || bi < 0 {
		t.Fatalf("series names not preserved: %v", got.Series)
	}
	checkPoints(t, "A", got.Series[ai].Data, wantA)
	checkPoints(t, "B", got.Series[bi].Data, wantB)
}

func TestReadPreservesFirstSeenOrder(t *testing.T) {
	input := "name,x,y\nB,1,1\nA,2,2\nB,3,3\nC,0,0\n"

	st, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	want := []string{"B", "A", "C"}
	if len(st.Series) != len(want) {
		t.Fatalf("expected %d series, got %d", len(want), len(st.Series))
	}
	for i, name := range want {
		if st.Series[i].Name != name {
			t.Errorf("series %d: name = %q, want %q", i, st.Series[i].Name, name)
		}
	}
}

func TestReadSortsPointsByX(t *testing.T) {
	input := "name,x,y\nA,5,1\nA,1,2\nA,3,3\n"

	st, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	want := []track.Point{{X: 1, Y: 2}, {X: 3, Y: 3}, {X: 5, Y: 1}}
	checkPoints(t, "A", st.Series[0].Data, want)
}

func TestReadRejectsBadRows(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing field", "name,x,y\nA,1\n"},
		{"extra field", "name,x,y\nA,1,2,3\n"},
		{"bad x", "name,x,y\nA,zap,2\n"},
		{"bad y", "name,x,y\nA,1,zap\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Read(strings.NewReader(tt.input)); err == nil {
				t.Errorf("Read(%q): expected error", tt.input)
			}
		})
	}
}

func TestReadRejectsNonFinite(t *testing.T) {
	// ParseFloat accepts these spellings; the loader must not, or a
	// crafted file would put points in the store that Insert rejects
	// and Bounds would collapse.
	tests := []struct {
		name  string
		input string
	}{
		{"nan x", "name,x,y\nA,NaN,1\n"},
		{"nan y", "name,x,y\nA,1,nan\n"},
		{"inf x", "name,x,y\nA,Inf,1\n"},
		{"neg inf y", "name,x,y\nA,1,-Inf\n"},
		{"both", "name,x,y\nA,NaN,Inf\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Read(strings.NewReader(tt.input)); err == nil {
				t.Errorf("Read(%q): expected error", tt.input)
			}
		})
	}
}

func TestReadEmptyYieldsDefaultStore(t *testing.T) {
	for _, input := range []string{"", "name,x,y\n"} {
		st, err := Read(strings.NewReader(input))
		if err != nil {
			t.Fatalf("Read(%q): %v", input, err)
		}
		if len(st.Series) != 1 || st.Series[0].Name != track.DefaultSeriesName {
			t.Errorf("Read(%q): expected single default series, got %v", input, st.Series)
		}
		if len(st.Series[0].Data) != 0 {
			t.Errorf("default series should be empty")
		}
	}
}

func TestWriteFormat(t *testing.T) {
	st := &track.Store{}
	a := &track.Series{Name: "A"}
	a.Insert(1.5, -2)
	st.Series = []*track.Series{a}

	var buf bytes.Buffer
	if err := Write(&buf, st); err != nil {
		t.Fatalf("Write: %v", err)
	}

	want := "name,x,y\nA,1.5,-2\n"
	if buf.String() != want {
		t.Errorf("Write output = %q, want %q", buf.String(), want)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Errorf("Load of missing file should fail")
	}
}

func TestSaveLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "points.csv")

	st := track.NewStore()
	st.InsertPoint(0, 2, 4)
	st.InsertPoint(0, 1, 3)

	if err := Save(path, st); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("saved file missing: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []track.Point{{X: 1, Y: 3}, {X: 2, Y: 4}}
	checkPoints(t, track.DefaultSeriesName, got.Series[0].Data, want)
}

func checkPoints(t *testing.T, name string, got, want []track.Point) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("series %s: %d points, want %d", name, len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("series %s row %d: %v, want %v", name, i, got[i], want[i])
		}
	}
}
