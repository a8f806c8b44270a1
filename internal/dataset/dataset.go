// Package dataset loads whitespace or tab separated numeric tables
// and turns their columns into plottable series.
package dataset

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"

	"ggraph/internal/series"
)

// Column is one named numeric column of a table.
type Column struct {
	Name   string
	Values []float64

	// Integral means every finite value is a whole number, so points
	// stack on top of each other unless jittered.
	Integral bool
}

// Table is a parsed data file.
type Table struct {
	Path    string
	Columns []Column
}

// Load reads a table from path. The first line names the columns when
// none of its fields parse as numbers; otherwise columns are named
// c1, c2, ... and the line is data. Missing or unparseable cells
// become NaN so they drop out of ranges and plots.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open table: %w", err)
	}
	defer f.Close()

	t := &Table{Path: path}
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 1024*1024), 64*1024*1024)

	first := true
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if first {
			first = false
			if header(fields) {
				for _, name := range fields {
					t.Columns = append(t.Columns, Column{Name: name})
				}
				continue
			}
			for i := range fields {
				t.Columns = append(t.Columns, Column{Name: fmt.Sprintf("c%d", i+1)})
			}
		}
		for i := range t.Columns {
			v := math.NaN()
			if i < len(fields) {
				if parsed, err := strconv.ParseFloat(fields[i], 64); err == nil {
					v = parsed
				}
			}
			t.Columns[i].Values = append(t.Columns[i].Values, v)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read table: %w", err)
	}
	if len(t.Columns) == 0 {
		return nil, fmt.Errorf("%s: no data", path)
	}
	for i := range t.Columns {
		t.Columns[i].Integral = integral(t.Columns[i].Values)
	}
	return t, nil
}

// header reports whether a line of fields is a name row rather than
// data. One numeric field makes it data.
func header(fields []string) bool {
	for _, f := range fields {
		if _, err := strconv.ParseFloat(f, 64); err == nil {
			return false
		}
	}
	return true
}

func integral(vals []float64) bool {
	any := false
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if v != math.Trunc(v) {
			return false
		}
		any = true
	}
	return any
}

// Find returns the index of the named column, or -1. A name that
// parses as a number selects by one-based position.
func (t *Table) Find(name string) int {
	for i, c := range t.Columns {
		if c.Name == name {
			return i
		}
	}
	if n, err := strconv.Atoi(name); err == nil && n >= 1 && n <= len(t.Columns) {
		return n - 1
	}
	return -1
}

// Jittered returns column values with uniform noise in (-0.5, 0.5)
// added to integral columns so stacked integer points spread out. The
// same seed gives the same spread across reloads of a file.
func (c Column) Jittered(seed uint64) []float64 {
	if !c.Integral {
		return c.Values
	}
	u := distuv.Uniform{
		Min: -0.5, Max: 0.5,
		Src: rand.NewSource(seed),
	}
	out := make([]float64, len(c.Values))
	copy(out, c.Values)
	for i, v := range out {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			out[i] = v + u.Rand()
		}
	}
	return out
}

// Series builds one series per y column against the x column. Integral
// columns are jittered for display, never in place.
func (t *Table) Series(xCol int, yCols []int, jitter bool) (*series.Set, error) {
	if xCol < 0 || xCol >= len(t.Columns) {
		return nil, fmt.Errorf("%s: no x column %d", t.Path, xCol)
	}
	set := series.NewSet()
	x := t.Columns[xCol]
	for _, yi := range yCols {
		if yi < 0 || yi >= len(t.Columns) {
			return nil, fmt.Errorf("%s: no y column %d", t.Path, yi)
		}
		if yi == xCol {
			continue
		}
		y := t.Columns[yi]
		xs, ys := x.Values, y.Values
		if jitter {
			xs = x.Jittered(uint64(yi) + 1)
			ys = y.Jittered(uint64(yi) + 101)
		}
		s, err := series.New(y.Name, xs, ys)
		if err != nil {
			return nil, fmt.Errorf("%s: column %s: %w", t.Path, y.Name, err)
		}
		if err := set.Add(s); err != nil {
			return nil, fmt.Errorf("%s: %w", t.Path, err)
		}
	}
	if set.Len() == 0 {
		return nil, fmt.Errorf("%s: no y columns selected", t.Path)
	}
	return set, nil
}

// Bounds returns the finite min and max of a column, for quick CLI
// summaries.
func (c Column) Bounds() (lo, hi float64, ok bool) {
	finite := make([]float64, 0, len(c.Values))
	for _, v := range c.Values {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			finite = append(finite, v)
		}
	}
	if len(finite) == 0 {
		return 0, 0, false
	}
	return floats.Min(finite), floats.Max(finite), true
}
