// Package trackfile round-trips point series to flat files and renders
// chart exports.
package trackfile

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"

	"github.com/ha1tch/track-toolkit/pkg/track"
)

// Column order of the persisted table.
var header = []string{"name", "x", "y"}

// Load reads a store from the CSV file at path.
func Load(path string) (*track.Store, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Read(file)
}

// Read parses CSV rows of (name, x, y) into a store. Series keep the order
// their names first appear in, and each series' points are sorted by x.
// Any row missing a field or holding unparseable or non-finite
// coordinates fails the whole load.
func Read(r io.Reader) (*track.Store, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 3

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading rows: %w", err)
	}

	st := &track.Store{}
	byName := make(map[string]*track.Series)

	for i, row := range rows {
		// Skip the header row if present.
		if i == 0 && row[0] == header[0] && row[1] == header[1] && row[2] == header[2] {
			continue
		}

		x, err := parseCoord(row[1])
		if err != nil {
			return nil, fmt.Errorf("row %d: bad x: %w", i+1, err)
		}
		y, err := parseCoord(row[2])
		if err != nil {
			return nil, fmt.Errorf("row %d: bad y: %w", i+1, err)
		}

		s, ok := byName[row[0]]
		if !ok {
			s = &track.Series{Name: row[0]}
			byName[row[0]] = s
			st.Series = append(st.Series, s)
		}
		s.Data = append(s.Data, track.Point{X: x, Y: y})
	}

	for _, s := range st.Series {
		sort.SliceStable(s.Data, func(i, j int) bool {
			return s.Data[i].X < s.Data[j].X
		})
	}

	if len(st.Series) == 0 {
		return track.NewStore(), nil
	}
	return st, nil
}

// parseCoord parses a coordinate field. ParseFloat accepts "NaN" and
// "Inf" spellings, which the store never contains; a row carrying one
// is corrupt, so the value is rejected here the same way unparseable
// text is.
func parseCoord(field string) (float64, error) {
	v, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("non-finite value %q", field)
	}
	return v, nil
}

// Save writes the store to the CSV file at path.
func Save(path string, st *track.Store) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := Write(file, st); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// Write flattens every (series, point) pair into one CSV row each, in
// store order and each series' point order.
func Write(w io.Writer, st *track.Store) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return err
	}
	for _, s := range st.Series {
		for _, p := range s.Data {
			row := []string{
				s.Name,
				strconv.FormatFloat(p.X, 'g', -1, 64),
				strconv.FormatFloat(p.Y, 'g', -1, 64),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}
