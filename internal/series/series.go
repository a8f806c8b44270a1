// Package series models the data series shown by the graph view and the
// linear/logarithmic views derived from them.
package series

import (
	"fmt"
	"image/color"
	"math"
)

// MaxSeries caps how many series a set will accept.
const MaxSeries = 512

// Scale selects which view of the data is active.
type Scale int

const (
	ScaleLinear Scale = iota
	ScaleLogX
	ScaleLogY
	ScaleLogLog
)

// LogX reports whether the x values are log10 transformed.
func (s Scale) LogX() bool { return s == ScaleLogX || s == ScaleLogLog }

// LogY reports whether the y values are log10 transformed.
func (s Scale) LogY() bool { return s == ScaleLogY || s == ScaleLogLog }

func (s Scale) String() string {
	switch s {
	case ScaleLogX:
		return "log x"
	case ScaleLogY:
		return "log y"
	case ScaleLogLog:
		return "log xy"
	default:
		return "linear"
	}
}

// Series is one named polyline of (x, y) samples. The log views of the
// sample slices are computed on first use and kept for the lifetime of
// the series.
type Series struct {
	Name    string
	Color   color.RGBA
	Visible bool

	// OnlyMarkers forces markers on for this series even when markers
	// are globally off; OnlyLines does the same for lines.
	OnlyMarkers bool
	OnlyLines   bool

	x, y       []float64
	logX, logY []float64
}

// New builds a visible series over the given samples. The two slices
// must be the same length.
func New(name string, x, y []float64) (*Series, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("series %q: %d x values but %d y values", name, len(x), len(y))
	}
	return &Series{Name: name, Visible: true, x: x, y: y}, nil
}

// Len returns the number of samples.
func (s *Series) Len() int { return len(s.x) }

// Data returns the x and y sample slices for the given scale. Log
// views map non-positive samples to non-finite values, which the
// range and geometry passes already skip.
func (s *Series) Data(sc Scale) (xs, ys []float64) {
	xs, ys = s.x, s.y
	if sc.LogX() {
		if s.logX == nil {
			s.logX = log10All(s.x)
		}
		xs = s.logX
	}
	if sc.LogY() {
		if s.logY == nil {
			s.logY = log10All(s.y)
		}
		ys = s.logY
	}
	return xs, ys
}

func log10All(vals []float64) []float64 {
	out := make([]float64, len(vals))
	for i, v := range vals {
		out[i] = math.Log10(v)
	}
	return out
}

// ShowMarkers reports whether this series draws markers given the
// global markers toggle.
func (s *Series) ShowMarkers(markersOn bool) bool {
	return s.Visible && ((markersOn && !s.OnlyLines) || s.OnlyMarkers)
}

// ShowLines reports whether this series draws connecting lines given
// the global lines toggle.
func (s *Series) ShowLines(linesOn bool) bool {
	return s.Visible && ((linesOn && !s.OnlyMarkers) || s.OnlyLines)
}

// Set is an ordered collection of series sharing one active scale.
type Set struct {
	series []*Series
	order  []int
	scale  Scale
}

// NewSet returns an empty set using the linear scale.
func NewSet() *Set { return &Set{} }

// Add appends a series to the set, assigning it the next palette color
// if it has none.
func (st *Set) Add(s *Series) error {
	if len(st.series) >= MaxSeries {
		return fmt.Errorf("too many series (max %d)", MaxSeries)
	}
	st.series = append(st.series, s)
	st.order = append(st.order, len(st.series)-1)
	return nil
}

// Len returns the number of series.
func (st *Set) Len() int { return len(st.series) }

// At returns the i'th series in insertion order.
func (st *Set) At(i int) *Series { return st.series[i] }

// Scale returns the active scale.
func (st *Set) Scale() Scale { return st.scale }

// SetScale switches the active data view.
func (st *Set) SetScale(sc Scale) { st.scale = sc }

// Data returns the active view of the i'th series.
func (st *Set) Data(i int) (xs, ys []float64) {
	return st.series[i].Data(st.scale)
}

// Order returns the draw order as series indices, back to front.
func (st *Set) Order() []int { return st.order }

// SetOrder replaces the draw order. Indices not covering the whole set
// are rejected.
func (st *Set) SetOrder(order []int) error {
	if len(order) != len(st.series) {
		return fmt.Errorf("order has %d entries for %d series", len(order), len(st.series))
	}
	seen := make([]bool, len(st.series))
	for _, i := range order {
		if i < 0 || i >= len(st.series) || seen[i] {
			return fmt.Errorf("bad draw order %v", order)
		}
		seen[i] = true
	}
	st.order = append(st.order[:0], order...)
	return nil
}

// Raise moves the i'th series to the front of the draw order.
func (st *Set) Raise(i int) {
	for pos, idx := range st.order {
		if idx == i {
			st.order = append(st.order[:pos], st.order[pos+1:]...)
			st.order = append(st.order, i)
			return
		}
	}
}
