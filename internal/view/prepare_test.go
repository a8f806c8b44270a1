package view

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ggraph/internal/series"
	"ggraph/pkg/geometry"
)

func TestClipPolylineCrossingSegment(t *testing.T) {
	// A segment spanning the whole window collapses to its two edge
	// crossings.
	win := Range{X: Span{-1, 1}, Y: Span{-1, 1}}
	got := ClipPolyline([]float64{-5, 5}, []float64{0, 0}, win)

	require.Len(t, got, 2)
	assert.Equal(t, geometry.Point2D{X: -1, Y: 0}, got[0])
	assert.Equal(t, geometry.Point2D{X: 1, Y: 0}, got[1])
}

func TestClipPolylineInsidePassThrough(t *testing.T) {
	win := Range{X: Span{-1, 1}, Y: Span{-1, 1}}
	got := ClipPolyline([]float64{-0.5, 0, 0.5}, []float64{0.1, 0.2, 0.3}, win)

	require.Len(t, got, 3)
	assert.Equal(t, geometry.Point2D{X: 0, Y: 0.2}, got[1])
}

func TestClipPolylineVerticalExit(t *testing.T) {
	// Exits through the top, comes back through the top: both
	// crossings appear, the outside vertex does not.
	win := Range{X: Span{-1, 1}, Y: Span{-1, 1}}
	got := ClipPolyline([]float64{-0.5, 0, 0.5}, []float64{0, 3, 0}, win)

	require.Len(t, got, 4)
	assert.Equal(t, geometry.Point2D{X: -0.5, Y: 0}, got[0])
	assert.InDelta(t, 1.0, got[1].Y, 1e-12)
	assert.InDelta(t, 1.0, got[2].Y, 1e-12)
	assert.Less(t, got[1].X, got[2].X)
	assert.Equal(t, geometry.Point2D{X: 0.5, Y: 0}, got[3])
}

func TestClipPolylineStopsPastWindow(t *testing.T) {
	// Points left of the window are skipped; the walk ends once the
	// previous point is right of it.
	win := Range{X: Span{0, 1}, Y: Span{0, 1}}
	got := ClipPolyline(
		[]float64{-10, 0.25, 0.75, 10, 20, 30},
		[]float64{0.5, 0.5, 0.5, 0.5, 0.5, 0.5}, win)

	require.Len(t, got, 4)
	assert.Equal(t, 0.0, got[0].X, "crossing into window")
	assert.Equal(t, 0.25, got[1].X)
	assert.Equal(t, 0.75, got[2].X)
	assert.Equal(t, 1.0, got[3].X, "crossing out of window")
}

func TestClipPolylineSkipsNonFinite(t *testing.T) {
	win := Range{X: Span{-1, 1}, Y: Span{-1, 1}}
	got := ClipPolyline(
		[]float64{-0.5, math.NaN(), 0.5},
		[]float64{0, 0, 0}, win)
	require.Len(t, got, 2)
	assert.Equal(t, -0.5, got[0].X)
	assert.Equal(t, 0.5, got[1].X)
}

func TestPrepareMarkersInsideRangeOnly(t *testing.T) {
	v := newTestView(t, []float64{0, 5, 10}, []float64{0, 5, 10})
	v.Layout(1280, 720)
	v.SetSpan(AxisX, 4, 6)
	v.SetSpan(AxisY, 4, 6)
	v.Layout(1280, 720)

	geoms := v.Prepare(PrepareOptions{MarkersOn: true, LinesOn: false})
	require.Len(t, geoms, 1)
	assert.Len(t, geoms[0].Markers, 1)
	assert.Empty(t, geoms[0].Lines)

	center := v.Pixel(geometry.Point2D{X: 5, Y: 5})
	assert.Equal(t, center, geoms[0].Markers[0])
}

func TestPrepareSkipsHiddenSeries(t *testing.T) {
	v := newTestView(t, []float64{0, 1}, []float64{0, 1})
	v.Set.At(0).Visible = false
	v.Layout(1280, 720)

	geoms := v.Prepare(PrepareOptions{MarkersOn: true, LinesOn: true})
	require.Len(t, geoms, 1)
	assert.Empty(t, geoms[0].Markers)
	assert.Empty(t, geoms[0].Lines)
}

func TestPrepareOverrides(t *testing.T) {
	v := newTestView(t, []float64{0, 1}, []float64{0, 1})
	v.Set.At(0).OnlyMarkers = true
	v.Layout(1280, 720)

	// Markers globally off, but this series forces them on and its
	// lines off.
	geoms := v.Prepare(PrepareOptions{MarkersOn: false, LinesOn: true})
	require.Len(t, geoms, 1)
	assert.Len(t, geoms[0].Markers, 2)
	assert.Empty(t, geoms[0].Lines)
}

func TestPrepareManySeries(t *testing.T) {
	set := series.NewSet()
	const n = 64
	for i := 0; i < n; i++ {
		s, err := series.New("s", []float64{0, 1}, []float64{0, 1})
		require.NoError(t, err)
		require.NoError(t, set.Add(s))
	}
	v := New(set)
	v.AutoRange(AxisBoth)
	v.Layout(800, 600)

	geoms := v.Prepare(PrepareOptions{MarkersOn: true, LinesOn: true, Workers: 4})
	require.Len(t, geoms, n)
	for i := range geoms {
		assert.Len(t, geoms[i].Markers, 2)
		assert.Len(t, geoms[i].Lines, 2)
	}
}
