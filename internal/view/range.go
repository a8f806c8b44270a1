// Package view holds the coordinate model of the graph: data ranges,
// the mapping between data and pixel space, per-series visible
// geometry, and the view history stack.
package view

import (
	"math"

	"ggraph/internal/series"
	"ggraph/pkg/geometry"
)

// Axis selects one axis of the plot, or both.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisBoth
)

// Span is a closed interval on one axis.
type Span struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// Extent returns High - Low.
func (s Span) Extent() float64 { return s.High - s.Low }

// Mid returns the interval midpoint.
func (s Span) Mid() float64 { return (s.Low + s.High) / 2 }

// Contains reports whether v lies inside the closed interval.
func (s Span) Contains(v float64) bool { return v >= s.Low && v <= s.High }

// Shift returns the span moved by dist.
func (s Span) Shift(dist float64) Span { return Span{s.Low + dist, s.High + dist} }

// Pad returns the span grown by frac of its extent on each side.
func (s Span) Pad(frac float64) Span {
	d := frac * s.Extent()
	return Span{s.Low - d, s.High + d}
}

// Range is the visible data window on both axes.
type Range struct {
	X Span `json:"x"`
	Y Span `json:"y"`
}

// At returns the span for one axis. AxisBoth is not a valid argument.
func (r Range) At(a Axis) Span {
	if a == AxisY {
		return r.Y
	}
	return r.X
}

// SetAt replaces the span for one axis.
func (r *Range) SetAt(a Axis, s Span) {
	if a == AxisY {
		r.Y = s
	} else {
		r.X = s
	}
}

// Contains reports whether the data point lies inside the range.
func (r Range) Contains(p geometry.Point2D) bool {
	return r.X.Contains(p.X) && r.Y.Contains(p.Y)
}

// dne reports whether two values differ beyond floating point noise.
func dne(a, b float64) bool {
	return math.Abs(a-b) > 1e-10*math.Max(math.Abs(a), math.Abs(b))
}

// rangePadding is the fraction of the data extent added on each side
// when a range is computed from the data.
const rangePadding = 0.01

// AutoRange recomputes the range for the chosen axes from the finite
// samples of the visible series. When both axes are recomputed the
// result also becomes the new maximum range and the view is no longer
// zoomed.
func (v *View) AutoRange(a Axis) {
	for _, axis := range []Axis{AxisX, AxisY} {
		if a != AxisBoth && a != axis {
			continue
		}
		lo, hi := math.Inf(1), math.Inf(-1)
		for i := 0; i < v.Set.Len(); i++ {
			if !v.Set.At(i).Visible {
				continue
			}
			xs, ys := v.Set.Data(i)
			vals := xs
			if axis == AxisY {
				vals = ys
			}
			for _, val := range vals {
				if !isFinite(val) {
					continue
				}
				if val < lo {
					lo = val
				}
				if val > hi {
					hi = val
				}
			}
		}
		if lo > hi {
			// No finite samples on this axis.
			lo, hi = 0, 1
		}
		v.Range.SetAt(axis, Span{lo, hi}.Pad(rangePadding))
		v.Zoomed[axis] = false
	}
	if a == AxisBoth {
		v.MaxRange = v.Range
	}
}

// SetSpan replaces the range on one axis. A span too small relative to
// the maximum range resets the whole range instead, to keep the
// coordinate transform well conditioned.
func (v *View) SetSpan(a Axis, low, high float64) {
	if math.Abs(high-low) <= 1e-11*v.MaxRange.At(a).Extent() {
		v.Range = v.MaxRange
		return
	}
	v.Range.SetAt(a, Span{low, high})
	v.Zoomed[a] = dne(low, v.MaxRange.At(a).Low) || dne(high, v.MaxRange.At(a).High)
}

// Jump moves the range on one axis by dist data units.
func (v *View) Jump(a Axis, dist float64) {
	s := v.Range.At(a).Shift(dist)
	v.SetSpan(a, s.Low, s.High)
}

// IsZoomed reports whether any axis differs from the maximum range.
func (v *View) IsZoomed() bool { return v.Zoomed[AxisX] || v.Zoomed[AxisY] }

func isFinite(v float64) bool { return !math.IsInf(v, 0) && !math.IsNaN(v) }

// View owns the visible data window and its mapping onto the plot
// area of the window.
type View struct {
	Set *series.Set

	Range    Range
	MaxRange Range
	Zoomed   [2]bool

	// bounds[axis][0] and [1] are the low and high pixel edges of the
	// plot area; scale[2] is the y/x anisotropy.
	bounds [2][2]int
	scale  [3]float64
}

// New returns a view over the given series set with no layout yet.
func New(set *series.Set) *View {
	return &View{Set: set}
}
