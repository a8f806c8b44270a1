package view

import (
	"ggraph/pkg/geometry"
)

// borderFraction of the smaller window dimension becomes the border
// around the plot area.
const borderFraction = 0.05

// MinBorder returns the border width in pixels for a window size.
func MinBorder(w, h int) int {
	m := w
	if h < m {
		m = h
	}
	return int(borderFraction * float64(m))
}

// Layout fits the plot area inside a window of the given size and
// recomputes the pixel scales. A range that drifted entirely outside
// the maximum range is reset first.
func (v *View) Layout(w, h int) {
	border := MinBorder(w, h)
	v.bounds[AxisX] = [2]int{border, w - border}
	v.bounds[AxisY] = [2]int{border, h - border}

	if v.Range.X.Low >= v.MaxRange.X.High || v.Range.X.High <= v.MaxRange.X.Low ||
		v.Range.Y.Low >= v.MaxRange.Y.High || v.Range.Y.High <= v.MaxRange.Y.Low {
		v.Range = v.MaxRange
	}

	for _, a := range []Axis{AxisX, AxisY} {
		v.scale[a] = float64(v.bounds[a][1]-v.bounds[a][0]) / v.Range.At(a).Extent()
	}
	v.scale[2] = v.scale[AxisY] / v.scale[AxisX]
}

// Bounds returns the low and high pixel edges of the plot area on one
// axis.
func (v *View) Bounds(a Axis) (low, high int) {
	return v.bounds[a][0], v.bounds[a][1]
}

// PlotRect returns the plot area as a pixel rectangle.
func (v *View) PlotRect() geometry.Rect {
	return geometry.NewRect(
		float64(v.bounds[AxisX][0]), float64(v.bounds[AxisY][0]),
		float64(v.bounds[AxisX][1]-v.bounds[AxisX][0]),
		float64(v.bounds[AxisY][1]-v.bounds[AxisY][0]))
}

// Scale returns pixels per data unit on one axis.
func (v *View) Scale(a Axis) float64 { return v.scale[a] }

// Anisotropy returns the y scale over the x scale.
func (v *View) Anisotropy() float64 { return v.scale[2] }

// PixelOf maps one data value to a pixel coordinate. The y axis is
// inverted so larger values are higher on screen.
func (v *View) PixelOf(a Axis, val float64) int {
	return int(v.PixelOfF(a, val))
}

// PixelOfF is PixelOf without the truncation to whole pixels.
func (v *View) PixelOfF(a Axis, val float64) float64 {
	if a == AxisY {
		return float64(v.bounds[AxisY][1]) - (val-v.Range.Y.Low)*v.scale[AxisY]
	}
	return float64(v.bounds[AxisX][0]) + (val-v.Range.X.Low)*v.scale[AxisX]
}

// Pixel maps a data point to pixel coordinates.
func (v *View) Pixel(p geometry.Point2D) geometry.PointInt {
	return geometry.PointInt{X: v.PixelOf(AxisX, p.X), Y: v.PixelOf(AxisY, p.Y)}
}

// DataOf maps one pixel coordinate back to a data value.
func (v *View) DataOf(a Axis, pix int) float64 {
	if a == AxisY {
		return float64(v.bounds[AxisY][1]-pix)/v.scale[AxisY] + v.Range.Y.Low
	}
	return float64(pix-v.bounds[AxisX][0])/v.scale[AxisX] + v.Range.X.Low
}

// Data maps a pixel point back to data coordinates.
func (v *View) Data(p geometry.PointInt) geometry.Point2D {
	return geometry.Point2D{X: v.DataOf(AxisX, p.X), Y: v.DataOf(AxisY, p.Y)}
}

// InPlot reports whether a pixel point lies strictly inside the plot
// area.
func (v *View) InPlot(p geometry.PointInt) bool {
	return p.X > v.bounds[AxisX][0] && p.X < v.bounds[AxisX][1] &&
		p.Y > v.bounds[AxisY][0] && p.Y < v.bounds[AxisY][1]
}

// Quadrant returns which wedge of the plot a pixel point falls in,
// splitting the area along its two diagonals: 0 bottom, 1 left,
// 2 top, 3 right.
func (v *View) Quadrant(p geometry.PointInt) int {
	bx, by := v.bounds[AxisX], v.bounds[AxisY]
	belowPos := float64(p.Y) > float64(by[1])+
		float64(p.X-bx[0])*float64(by[0]-by[1])/float64(bx[1]-bx[0])
	belowNeg := float64(p.Y) > float64(by[0])+
		float64(p.X-bx[0])*float64(by[1]-by[0])/float64(bx[1]-bx[0])
	if belowPos {
		if belowNeg {
			return 0
		}
		return 3
	}
	if belowNeg {
		return 1
	}
	return 2
}
