// Package track provides the core data model for named 2-D point series.
package track

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrIndexOutOfRange is returned when a series or row index is invalid.
var ErrIndexOutOfRange = errors.New("index out of range")

// DefaultSeriesName is the name of the series created when a store would
// otherwise be empty.
const DefaultSeriesName = "Graph"

// Point is an ordered (x, y) pair.
type Point struct {
	X float64
	Y float64
}

// Series is a named collection of points, kept sorted ascending by X.
// Points with equal X keep their insertion order.
type Series struct {
	Name string
	Data []Point
}

// Insert adds a point to the series and re-sorts by X. Non-finite
// coordinates are rejected so the series never holds unplottable data.
func (s *Series) Insert(x, y float64) error {
	if !isFinite(x) || !isFinite(y) {
		return fmt.Errorf("non-finite point (%v, %v)", x, y)
	}
	s.Data = append(s.Data, Point{X: x, Y: y})
	sort.SliceStable(s.Data, func(i, j int) bool {
		return s.Data[i].X < s.Data[j].X
	})
	return nil
}

// Delete removes the point at the given row.
func (s *Series) Delete(row int) error {
	if row < 0 || row >= len(s.Data) {
		return fmt.Errorf("row %d: %w", row, ErrIndexOutOfRange)
	}
	s.Data = append(s.Data[:row], s.Data[row+1:]...)
	return nil
}

// Bounds returns the maximum X and Y over the series' points. An empty
// series reports (1, 1) so a chart always has a non-degenerate range.
func (s *Series) Bounds() (maxX, maxY float64) {
	if len(s.Data) == 0 {
		return 1.0, 1.0
	}
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, p := range s.Data {
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return maxX, maxY
}

// Store owns an ordered set of series and tracks which one is selected.
// A store always contains at least one series, so Selected is always valid.
type Store struct {
	Series   []*Series
	Selected int
}

// NewStore creates a store holding one empty default series.
func NewStore() *Store {
	return &Store{
		Series: []*Series{{Name: DefaultSeriesName}},
	}
}

// AddSeries appends a new empty series and returns its index.
func (st *Store) AddSeries(name string) int {
	st.Series = append(st.Series, &Series{Name: name})
	return len(st.Series) - 1
}

// Select changes the selected series.
func (st *Store) Select(index int) error {
	if index < 0 || index >= len(st.Series) {
		return fmt.Errorf("series %d: %w", index, ErrIndexOutOfRange)
	}
	st.Selected = index
	return nil
}

// Current returns the selected series.
func (st *Store) Current() *Series {
	return st.Series[st.Selected]
}

// InsertPoint inserts a point into the series at seriesIndex.
func (st *Store) InsertPoint(seriesIndex int, x, y float64) error {
	if seriesIndex < 0 || seriesIndex >= len(st.Series) {
		return fmt.Errorf("series %d: %w", seriesIndex, ErrIndexOutOfRange)
	}
	return st.Series[seriesIndex].Insert(x, y)
}

// DeletePoint removes the point at row from the series at seriesIndex.
func (st *Store) DeletePoint(seriesIndex, row int) error {
	if seriesIndex < 0 || seriesIndex >= len(st.Series) {
		return fmt.Errorf("series %d: %w", seriesIndex, ErrIndexOutOfRange)
	}
	return st.Series[seriesIndex].Delete(row)
}

// SeriesIndex returns the index of the named series, or -1 if not found.
func (st *Store) SeriesIndex(name string) int {
	for i, s := range st.Series {
		if s.Name == name {
			return i
		}
	}
	return -1
}

// PointCount returns the total number of points across all series.
func (st *Store) PointCount() int {
	n := 0
	for _, s := range st.Series {
		n += len(s.Data)
	}
	return n
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
