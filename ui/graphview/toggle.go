// Package graphview implements the interactive graph widget: the plot
// surface, its border toggle controls, and the mouse and keyboard
// gestures for zooming, scrolling and selecting views.
package graphview

import (
	"image/color"
	"math"

	"ggraph/pkg/colorutil"
	"ggraph/pkg/geometry"
)

// Toggle is a circular control living in the border around the plot
// area. Its position is given by a placement spec interpreted
// relative to the plot corners, so toggles keep their station when
// the window resizes.
//
// Spec values with magnitude below 50 count border widths inward from
// the corner the sign selects; zero or values near 100 center the
// toggle on the axis, offset by the amount around 100.
type Toggle struct {
	Help string
	Spec geometry.Point2D

	// Togglable controls stay flipped after release; momentary ones
	// flip back.
	Togglable bool
	On        bool

	RadiusScale float64
	Color       color.RGBA

	OnPress   func(g *GraphView)
	OnRelease func(g *GraphView)
	Visible   func(g *GraphView) bool

	skipRelease bool
}

// visible reports whether the toggle currently responds to clicks.
func (t *Toggle) visible(g *GraphView) bool {
	return t.Visible == nil || t.Visible(g)
}

func (t *Toggle) color() color.RGBA {
	if t.Color == (color.RGBA{}) {
		return colorutil.Black
	}
	return t.Color
}

// Location returns the toggle center in window pixels.
func (t *Toggle) Location(g *GraphView) geometry.PointInt {
	border := float64(g.minBorder())
	var out [2]int
	for a, spec := range [2]float64{t.Spec.X, t.Spec.Y} {
		lo, hi := g.plotBounds(a)
		high := spec < 0
		mag := math.Abs(spec)
		if mag > 0 && mag < 50 {
			anchor := lo
			step := -2.0
			if high {
				anchor = hi
				step = 1.0
			}
			out[a] = anchor + int(border*(spec+0.5+step))
		} else {
			centered := spec
			if mag > 0 {
				centered -= 100
			}
			out[a] = (lo+hi)/2 + int(centered*border)
		}
	}
	return geometry.PointInt{X: out[0], Y: out[1]}
}

// Radius returns the toggle radius in pixels.
func (t *Toggle) Radius(g *GraphView) float64 {
	scale := t.RadiusScale
	if scale == 0 {
		scale = 1
	}
	return scale * float64(g.minBorder()) / 3
}

// Contains reports whether a pixel point falls on the toggle.
func (t *Toggle) Contains(g *GraphView, p geometry.PointInt) bool {
	return t.Location(g).Distance(p) < t.Radius(g)
}

// HandlePress reacts to a press at p and reports whether the press was
// consumed. Presses on invisible toggles are swallowed so the gesture
// machinery below never sees them.
func (t *Toggle) HandlePress(g *GraphView, p geometry.PointInt) bool {
	if !t.visible(g) {
		t.skipRelease = true
		return t.Contains(g, p)
	}
	if !t.Contains(g, p) {
		return false
	}
	t.On = !t.On
	if t.OnPress != nil {
		t.OnPress(g)
	}
	return true
}

// HandleRelease reacts to a release at p and reports whether it was
// consumed.
func (t *Toggle) HandleRelease(g *GraphView, p geometry.PointInt) bool {
	if t.skipRelease {
		t.skipRelease = false
		return t.Contains(g, p)
	}
	if !t.Contains(g, p) {
		return false
	}
	if !t.Togglable {
		t.On = !t.On
	}
	if t.OnRelease != nil {
		t.OnRelease(g)
	}
	return true
}
