package view

import (
	"runtime"
	"sync"

	"ggraph/pkg/geometry"
)

// Geometry is the screen-space output of preparing one series:
// marker centers and polyline vertices, both in pixels.
type Geometry struct {
	Markers []geometry.PointInt
	Lines   []geometry.PointInt
}

// PrepareOptions control which primitives get generated.
type PrepareOptions struct {
	MarkersOn bool
	LinesOn   bool

	// LineWidth pads the clip window so lines leaving the plot area
	// still reach its edge.
	LineWidth float64

	// Workers limits the number of concurrent series preparations;
	// zero means one per CPU.
	Workers int
}

// Prepare converts every visible series into drawable geometry for the
// current range and layout. Series are processed concurrently, one
// result slot each.
func (v *View) Prepare(opts PrepareOptions) []Geometry {
	n := v.Set.Len()
	out := make([]Geometry, n)

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	expanded := Range{
		X: Span{v.Range.X.Low - opts.LineWidth, v.Range.X.High + opts.LineWidth},
		Y: Span{v.Range.Y.Low - opts.LineWidth, v.Range.Y.High + opts.LineWidth},
	}

	for i := 0; i < n; i++ {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()
			v.prepareSeries(i, expanded, opts, &out[i])
		}(i)
	}
	wg.Wait()
	return out
}

func (v *View) prepareSeries(i int, expanded Range, opts PrepareOptions, out *Geometry) {
	s := v.Set.At(i)
	if !s.Visible {
		return
	}
	xs, ys := v.Set.Data(i)

	if s.ShowMarkers(opts.MarkersOn) {
		for p := range xs {
			pt := geometry.Point2D{X: xs[p], Y: ys[p]}
			if !pt.Finite() || !v.Range.Contains(pt) {
				continue
			}
			out.Markers = append(out.Markers, v.Pixel(pt))
		}
	}

	if s.ShowLines(opts.LinesOn) {
		verts := ClipPolyline(xs, ys, expanded)
		out.Lines = make([]geometry.PointInt, len(verts))
		for j, pt := range verts {
			out.Lines[j] = v.Pixel(pt)
		}
	}
}

// ClipPolyline walks one series, assumed ordered by x, and returns the
// polyline vertices falling inside the window, inserting boundary
// crossing points where segments leave or enter it. Vertices are in
// data space.
func ClipPolyline(xs, ys []float64, win Range) []geometry.Point2D {
	var out []geometry.Point2D
	for p := range xs {
		cur := geometry.Point2D{X: xs[p], Y: ys[p]}
		if !cur.Finite() {
			continue
		}
		if cur.X < win.X.Low {
			continue
		}
		if p > 0 {
			last := geometry.Point2D{X: xs[p-1], Y: ys[p-1]}
			if last.X > win.X.High {
				break
			}
			// Segment crosses the left or right edge.
			if last.X < win.X.Low || cur.X > win.X.High {
				for _, edge := range []float64{win.X.Low, win.X.High} {
					if last.X >= edge || cur.X <= edge {
						continue
					}
					y := yAtX(last, cur, edge)
					if y > win.Y.Low && y < win.Y.High {
						out = append(out, geometry.Point2D{X: edge, Y: y})
					}
				}
			}
			// Segment crosses the bottom or top edge. The two
			// crossing points are emitted in segment direction so the
			// polyline stays ordered.
			if (last.Y < win.Y.Low) != (cur.Y < win.Y.Low) ||
				(last.Y < win.Y.High) != (cur.Y < win.Y.High) {
				edges := []float64{win.Y.Low, win.Y.High}
				if last.Y >= win.Y.Low {
					edges[0], edges[1] = edges[1], edges[0]
				}
				for _, edge := range edges {
					if (last.Y > edge) == (cur.Y > edge) {
						continue
					}
					x := xAtY(last, cur, edge)
					if x >= win.X.Low && x <= win.X.High {
						out = append(out, geometry.Point2D{X: x, Y: edge})
					}
				}
			}
		}
		if win.Contains(cur) {
			out = append(out, cur)
		}
	}
	return out
}

// yAtX returns the y value of the line through a and b at the given x.
func yAtX(a, b geometry.Point2D, x float64) float64 {
	slope := (b.Y - a.Y) / (b.X - a.X)
	return a.Y + (x-a.X)*slope
}

// xAtY returns the x value of the line through a and b at the given y.
func xAtY(a, b geometry.Point2D, y float64) float64 {
	slope := (b.Y - a.Y) / (b.X - a.X)
	return a.X + (y-a.Y)/slope
}
