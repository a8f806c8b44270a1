package series

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLengthMismatch(t *testing.T) {
	_, err := New("bad", []float64{1, 2, 3}, []float64{1})
	assert.Error(t, err)
}

func TestDataLogViews(t *testing.T) {
	s, err := New("s", []float64{1, 10, 100}, []float64{100, 10, -1})
	require.NoError(t, err)

	xs, ys := s.Data(ScaleLinear)
	assert.Equal(t, []float64{1, 10, 100}, xs)
	assert.Equal(t, []float64{100, 10, -1}, ys)

	xs, ys = s.Data(ScaleLogLog)
	assert.InDeltaSlice(t, []float64{0, 1, 2}, xs, 1e-12)
	assert.InDelta(t, 2, ys[0], 1e-12)
	assert.True(t, math.IsNaN(ys[2]), "log of negative should be non-finite")

	// Linear view is untouched by log requests.
	xs, _ = s.Data(ScaleLinear)
	assert.Equal(t, []float64{1, 10, 100}, xs)
}

func TestShowMarkersAndLines(t *testing.T) {
	s := &Series{Visible: true}
	assert.True(t, s.ShowMarkers(true))
	assert.False(t, s.ShowMarkers(false))

	s.OnlyMarkers = true
	assert.True(t, s.ShowMarkers(false))
	assert.False(t, s.ShowLines(true))

	s.OnlyMarkers = false
	s.OnlyLines = true
	assert.False(t, s.ShowMarkers(true))
	assert.True(t, s.ShowLines(false))

	s.Visible = false
	assert.False(t, s.ShowMarkers(true))
	assert.False(t, s.ShowLines(true))
}

func TestSetOrder(t *testing.T) {
	st := NewSet()
	for _, name := range []string{"a", "b", "c"} {
		s, err := New(name, nil, nil)
		require.NoError(t, err)
		require.NoError(t, st.Add(s))
	}
	assert.Equal(t, []int{0, 1, 2}, st.Order())

	st.Raise(0)
	assert.Equal(t, []int{1, 2, 0}, st.Order())

	require.NoError(t, st.SetOrder([]int{2, 0, 1}))
	assert.Error(t, st.SetOrder([]int{0, 0, 1}))
	assert.Error(t, st.SetOrder([]int{0, 1}))
	assert.Equal(t, []int{2, 0, 1}, st.Order())
}

func TestSetLimit(t *testing.T) {
	st := NewSet()
	for i := 0; i < MaxSeries; i++ {
		s, err := New("s", nil, nil)
		require.NoError(t, err)
		require.NoError(t, st.Add(s))
	}
	s, err := New("overflow", nil, nil)
	require.NoError(t, err)
	assert.Error(t, st.Add(s))
}
