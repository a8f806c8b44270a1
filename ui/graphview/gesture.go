package graphview

import (
	"math"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"ggraph/internal/view"
	"ggraph/pkg/geometry"
)

// ClickClass groups pointer buttons and their keyboard equivalents
// into the three gesture families.
//
//	select (1): click centers, drag selects a new view
//	scroll (2): click zooms in at point, drag scrolls
//	zoom   (3): click zooms out at point, drag zooms
type ClickClass int

const (
	ClickNone ClickClass = iota
	ClickSelect
	ClickScroll
	ClickZoom
)

func classify(ev *desktop.MouseEvent) ClickClass {
	switch {
	case ev.Button == desktop.MouseButtonTertiary ||
		ev.Modifier&fyne.KeyModifierShift != 0:
		return ClickScroll
	case ev.Button == desktop.MouseButtonSecondary ||
		ev.Modifier&fyne.KeyModifierControl != 0:
		return ClickZoom
	case ev.Button == desktop.MouseButtonPrimary:
		return ClickSelect
	default:
		return ClickNone
	}
}

func pixelPos(ev *desktop.MouseEvent) geometry.PointInt {
	return geometry.PointInt{X: int(ev.Position.X), Y: int(ev.Position.Y)}
}

// seriesToggleAt returns the index of the series toggle under p, or
// -1.
func (g *GraphView) seriesToggleAt(p geometry.PointInt) int {
	for i, t := range g.seriesToggles {
		if t.Contains(g, p) {
			return i
		}
	}
	return -1
}

// MouseDown implements desktop.Mouseable.
func (g *GraphView) MouseDown(ev *desktop.MouseEvent) {
	g.click = classify(ev)
	if g.click == ClickNone {
		return
	}
	p := pixelPos(ev)
	g.clickPos = p
	g.lastMotion = p
	g.moved = false
	g.smallMove = false

	// A scroll or zoom press on a series toggle is a pending color
	// change, resolved on release.
	if g.click == ClickScroll || g.click == ClickZoom {
		if g.seriesToggleAt(p) >= 0 {
			return
		}
	}

	for _, t := range g.toggles {
		if t.HandlePress(g, p) {
			g.Refresh()
			return
		}
	}
}

// MouseMoved implements desktop.Hoverable. It updates the status line
// while hovering and runs the scroll, zoom and select drags.
func (g *GraphView) MouseMoved(ev *desktop.MouseEvent) {
	p := pixelPos(ev)
	g.hoverPos = p

	if g.click == ClickScroll || g.click == ClickZoom {
		if g.seriesToggleAt(g.clickPos) >= 0 {
			return
		}
	}
	if g.click != ClickNone {
		g.moved = true
	}

	g.updateHoverStatus(p)

	if g.click == ClickNone {
		g.Refresh()
		return
	}
	for _, t := range g.toggles {
		if t.Contains(g, g.clickPos) {
			g.Refresh()
			return
		}
	}

	yPress := g.View.Quadrant(g.clickPos)%2 == 1
	inPlot := g.View.InPlot(g.clickPos)
	oldRange := g.View.Range

	switch g.click {
	case ClickScroll:
		for _, a := range []view.Axis{view.AxisX, view.AxisY} {
			if !inPlot && yPress != (a == view.AxisY) {
				continue
			}
			dist := p.At(int(a)) - g.lastMotion.At(int(a))
			sign := -1.0
			if a == view.AxisY {
				sign = 1.0
			}
			g.View.Jump(a, sign*float64(dist)/g.View.Scale(a))
		}
	case ClickZoom:
		for _, a := range []view.Axis{view.AxisX, view.AxisY} {
			if !inPlot && yPress != (a == view.AxisY) {
				continue
			}
			dist := p.At(int(a)) - g.lastMotion.At(int(a))
			sign := -1.0
			if a == view.AxisY {
				sign = 1.0
			}
			lo, hi := g.View.Bounds(a)
			span := g.View.Range.At(a)
			change := sign * span.Extent() * float64(dist) / float64(hi-lo)
			g.View.SetSpan(a, span.Low-change, span.High+change)
		}
	}
	g.lastMotion = p

	if g.View.Range != oldRange {
		g.smallMove = true
		g.prepareDraw()
	} else {
		// Select drag feedback only.
		g.Refresh()
	}
}

// MouseUp implements desktop.Mouseable. A release completes either a
// toggle interaction, a drag gesture, or a plain click zoom.
func (g *GraphView) MouseUp(ev *desktop.MouseEvent) {
	click := g.click
	g.click = ClickNone
	if click == ClickNone {
		return
	}
	p := pixelPos(ev)

	// Scroll or zoom release on a series toggle cycles its color.
	if click == ClickScroll || click == ClickZoom {
		if idx := g.seriesToggleAt(g.clickPos); idx >= 0 {
			g.cycleSeriesColor(idx, click == ClickScroll)
			return
		}
	}

	for _, t := range g.toggles {
		if t.HandleRelease(g, g.clickPos) {
			g.Refresh()
			return
		}
	}

	yPress := g.View.Quadrant(g.clickPos)%2 == 1
	inPlot := g.View.InPlot(g.clickPos)
	oldRange := g.View.Range

	if g.moved {
		if click == ClickSelect {
			// The dragged rectangle becomes the new view.
			for _, a := range []view.Axis{view.AxisX, view.AxisY} {
				if !inPlot && yPress != (a == view.AxisY) {
					continue
				}
				lo := p.At(int(a))
				hi := g.clickPos.At(int(a))
				if lo > hi {
					lo, hi = hi, lo
				}
				minC := g.View.DataOf(a, lo)
				maxC := g.View.DataOf(a, hi)
				if a == view.AxisY {
					// Pixel order inverts data order on y.
					g.View.SetSpan(a, maxC, minC)
				} else {
					g.View.SetSpan(a, minC, maxC)
				}
			}
		}
		g.moved = false
	} else {
		// Plain click: recenter, optionally zooming in or out.
		factor := 1.0
		switch click {
		case ClickScroll:
			factor = 0.1
		case ClickZoom:
			factor = 10.0
		}
		for _, a := range []view.Axis{view.AxisX, view.AxisY} {
			if !inPlot && yPress != (a == view.AxisY) {
				continue
			}
			half := 0.5 * g.View.Range.At(a).Extent() * factor
			mid := g.View.DataOf(a, g.clickPos.At(int(a)))
			limit := g.View.MaxRange.At(a)
			g.View.SetSpan(a,
				math.Max(limit.Low, mid-half),
				math.Min(limit.High, mid+half))
		}
	}

	if g.View.Range != oldRange || g.smallMove {
		g.smallMove = false
		g.prepareDraw()
	} else {
		g.Refresh()
	}
}

// MouseIn implements desktop.Hoverable.
func (g *GraphView) MouseIn(ev *desktop.MouseEvent) {
	g.inside = true
	g.hoverPos = pixelPos(ev)
	g.Refresh()
}

// MouseOut implements desktop.Hoverable.
func (g *GraphView) MouseOut() {
	g.inside = false
	g.status = ""
	g.statusForced = false
	g.Refresh()
}

// updateHoverStatus recomputes the status line for the pointer
// position.
func (g *GraphView) updateHoverStatus(p geometry.PointInt) {
	g.statusForced = false
	if !g.help.On && g.help.Contains(g, p) {
		g.status = g.help.Help
		return
	}
	g.status = ""
	if g.help.On {
		for _, t := range g.toggles {
			if t.Contains(g, p) {
				g.status = t.Help
				if !t.visible(g) {
					g.status += " (inactive)"
				}
				return
			}
		}
		g.status = longStatus(g.View.InPlot(p), g.View.Quadrant(p)%2 == 1)
		return
	}
	if g.coords.On && g.View.InPlot(p) {
		g.status = g.coordStatus(p)
	}
}

func longStatus(in, y bool) string {
	region := "X axis"
	if in {
		region = "X and Y axes"
	} else if y {
		region = "Y axis"
	}
	return "Pointer (1 - 2/shift - 3/control) clicks " +
		"(center - zoom in - zoom out) at point " +
		"and drags (select - scroll - zoom) for " + region
}

// coordStatus formats the data coordinates under the pointer, rounded
// to the pixel resolution of the view.
func (g *GraphView) coordStatus(p geometry.PointInt) string {
	var sb strings.Builder
	sb.WriteString("(")
	for _, a := range []view.Axis{view.AxisX, view.AxisY} {
		val := g.View.DataOf(a, p.At(int(a)))
		lo, hi := g.View.Bounds(a)
		res := g.View.Range.At(a).Extent() / float64(hi-lo)
		prec := math.Pow(10, math.Floor(math.Log10(res)))
		rval := math.Round(val/prec) * prec
		if g.logToggles[a].On {
			rval = math.Pow(10, rval)
		}
		if a == view.AxisY {
			sb.WriteString(" , ")
		} else {
			sb.WriteString(" ")
		}
		sb.WriteString(strconv.FormatFloat(rval, 'g', 12, 64))
	}
	sb.WriteString(" )")
	return sb.String()
}

// KeyDown implements key handling for arrow motion and tracks the
// modifier keys used by the gesture classes.
func (g *GraphView) KeyDown(ev *fyne.KeyEvent) {
	switch ev.Name {
	case desktop.KeyShiftLeft, desktop.KeyShiftRight:
		g.shiftDown = true
		return
	case desktop.KeyControlLeft, desktop.KeyControlRight:
		g.controlDown = true
		return
	}

	var axis view.Axis
	var dir float64
	switch ev.Name {
	case fyne.KeyLeft:
		axis, dir = view.AxisX, -1
	case fyne.KeyRight:
		axis, dir = view.AxisX, 1
	case fyne.KeyDown:
		axis, dir = view.AxisY, -1
	case fyne.KeyUp:
		axis, dir = view.AxisY, 1
	default:
		return
	}

	ext := g.View.Range.At(axis).Extent()
	var distance float64
	switch {
	case g.shiftDown && g.controlDown:
		distance = ext
	case g.shiftDown:
		distance = 0.05 * ext
	case g.controlDown:
		distance = 0.5 * ext
	default:
		distance = 1 / g.View.Scale(axis)
	}
	g.View.Jump(axis, dir*distance)
	g.prepareDraw()
}

// KeyUp clears modifier tracking.
func (g *GraphView) KeyUp(ev *fyne.KeyEvent) {
	switch ev.Name {
	case desktop.KeyShiftLeft, desktop.KeyShiftRight:
		g.shiftDown = false
	case desktop.KeyControlLeft, desktop.KeyControlRight:
		g.controlDown = false
	}
}

// TypedRune recolors the series whose toggle is under the pointer:
// 'c' walks the palette forward, 'C' backward.
func (g *GraphView) TypedRune(r rune) {
	if r != 'c' && r != 'C' {
		return
	}
	if idx := g.seriesToggleAt(g.hoverPos); idx >= 0 {
		g.cycleSeriesColor(idx, r == 'c')
	}
}
