package dataset

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTable(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "table.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadWithHeader(t *testing.T) {
	tab, err := Load(writeTable(t, "pos\tdepth\tratio\n1\t10\t0.5\n2\t20\t0.25\n3\t30\t0.125\n"))
	require.NoError(t, err)

	require.Len(t, tab.Columns, 3)
	assert.Equal(t, "pos", tab.Columns[0].Name)
	assert.Equal(t, []float64{1, 2, 3}, tab.Columns[0].Values)
	assert.True(t, tab.Columns[0].Integral)
	assert.True(t, tab.Columns[1].Integral)
	assert.False(t, tab.Columns[2].Integral)
}

func TestLoadHeaderless(t *testing.T) {
	tab, err := Load(writeTable(t, "1 2\n3 4\n"))
	require.NoError(t, err)

	require.Len(t, tab.Columns, 2)
	assert.Equal(t, "c1", tab.Columns[0].Name)
	assert.Equal(t, []float64{2, 4}, tab.Columns[1].Values)
}

func TestLoadBadCellsBecomeNaN(t *testing.T) {
	tab, err := Load(writeTable(t, "a b\n1 x\n2 3\n4\n"))
	require.NoError(t, err)

	b := tab.Columns[1].Values
	require.Len(t, b, 3)
	assert.True(t, math.IsNaN(b[0]))
	assert.Equal(t, 3.0, b[1])
	assert.True(t, math.IsNaN(b[2]))
}

func TestFind(t *testing.T) {
	tab, err := Load(writeTable(t, "pos depth\n1 2\n"))
	require.NoError(t, err)

	assert.Equal(t, 1, tab.Find("depth"))
	assert.Equal(t, 0, tab.Find("1"))
	assert.Equal(t, -1, tab.Find("missing"))
	assert.Equal(t, -1, tab.Find("9"))
}

func TestJitterSpreadsIntegersOnly(t *testing.T) {
	c := Column{Name: "n", Values: []float64{1, 2, 3, math.NaN()}, Integral: true}
	out := c.Jittered(7)

	for i := 0; i < 3; i++ {
		assert.InDelta(t, c.Values[i], out[i], 0.5)
		assert.NotEqual(t, c.Values[i], out[i])
	}
	assert.True(t, math.IsNaN(out[3]))

	// Same seed, same spread. The NaN element is checked separately
	// because reflect.DeepEqual never treats NaN as equal to itself.
	again := c.Jittered(7)
	assert.Equal(t, out[:3], again[:3])
	assert.True(t, math.IsNaN(again[3]))

	frac := Column{Name: "r", Values: []float64{1.5, 2.5}}
	assert.Equal(t, frac.Values, frac.Jittered(7))
}

func TestSeries(t *testing.T) {
	tab, err := Load(writeTable(t, "pos a b\n1 10 0.5\n2 20 0.25\n"))
	require.NoError(t, err)

	set, err := tab.Series(0, []int{1, 2, 0}, false)
	require.NoError(t, err)

	// The x column never plots against itself.
	require.Equal(t, 2, set.Len())
	assert.Equal(t, "a", set.At(0).Name)
	assert.Equal(t, "b", set.At(1).Name)

	xs, ys := set.Data(0)
	assert.Equal(t, []float64{1, 2}, xs)
	assert.Equal(t, []float64{10, 20}, ys)
}

func TestSeriesErrors(t *testing.T) {
	tab, err := Load(writeTable(t, "pos a\n1 10\n"))
	require.NoError(t, err)

	_, err = tab.Series(5, []int{1}, false)
	assert.Error(t, err)
	_, err = tab.Series(0, []int{0}, false)
	assert.Error(t, err)
}

func TestColumnBounds(t *testing.T) {
	c := Column{Values: []float64{3, math.NaN(), -1, math.Inf(1), 7}}
	lo, hi, ok := c.Bounds()
	require.True(t, ok)
	assert.Equal(t, -1.0, lo)
	assert.Equal(t, 7.0, hi)

	empty := Column{Values: []float64{math.NaN()}}
	_, _, ok = empty.Bounds()
	assert.False(t, ok)
}
