package graphview

import (
	"fmt"
	"net/url"

	"fyne.io/fyne/v2"

	"ggraph/internal/series"
	"ggraph/internal/view"
	"ggraph/pkg/geometry"
)

const tutorialURL = "http://mumdex.com/ggraph/#gui"

// doMarkers reports whether series s currently draws markers.
func (g *GraphView) doMarkers(s int) bool {
	return g.View.Set.At(s).ShowMarkers(g.markers.On)
}

// doLines reports whether series s currently draws lines.
func (g *GraphView) doLines(s int) bool {
	return g.View.Set.At(s).ShowLines(g.lines.On)
}

func (g *GraphView) anyMarkers() bool {
	for s := 0; s < g.View.Set.Len(); s++ {
		if g.doMarkers(s) {
			return true
		}
	}
	return false
}

func (g *GraphView) anyLines() bool {
	for s := 0; s < g.View.Set.Len(); s++ {
		if g.doLines(s) {
			return true
		}
	}
	return false
}

// canDoMarkers reports whether the markers toggle would affect any
// series.
func (g *GraphView) canDoMarkers() bool {
	for s := 0; s < g.View.Set.Len(); s++ {
		sr := g.View.Set.At(s)
		if sr.Visible && !sr.OnlyLines {
			return true
		}
	}
	return false
}

func (g *GraphView) canDoLines() bool {
	for s := 0; s < g.View.Set.Len(); s++ {
		sr := g.View.Set.At(s)
		if sr.Visible && !sr.OnlyMarkers {
			return true
		}
	}
	return false
}

// applyLogScale switches the data view to match the log toggles and
// refits the range to the transformed data.
func (g *GraphView) applyLogScale() {
	var sc series.Scale
	switch {
	case g.logToggles[0].On && g.logToggles[1].On:
		sc = series.ScaleLogLog
	case g.logToggles[0].On:
		sc = series.ScaleLogX
	case g.logToggles[1].On:
		sc = series.ScaleLogY
	default:
		sc = series.ScaleLinear
	}
	g.View.Set.SetScale(sc)
	g.View.AutoRange(view.AxisBoth)
}

func (g *GraphView) resetColors() {
	palette := g.seriesPalette()
	for i := 0; i < g.View.Set.Len(); i++ {
		g.View.Set.At(i).Color = palette[i%len(palette)]
		g.seriesToggles[i].Color = palette[i%len(palette)]
	}
	g.colorsChanged = false
}

// syncSeriesVisibility copies series toggle states onto the series.
func (g *GraphView) syncSeriesVisibility() {
	for i, t := range g.seriesToggles {
		g.View.Set.At(i).Visible = t.On
	}
}

func zoomedOn(axis int) func(*GraphView) bool {
	return func(g *GraphView) bool { return g.View.Zoomed[axis] }
}

// buildToggles creates the standard control set and the per-series
// visibility toggles.
func (g *GraphView) buildToggles() {
	g.help = &Toggle{
		Help: "Toggle showing help text for controls",
		Spec: geometry.Point2D{X: 1, Y: 2}, Togglable: true, On: true,
		OnPress: func(g *GraphView) { g.coords.On = false; g.Refresh() },
	}
	g.coords = &Toggle{
		Help: "Toggle showing coordinates of cursor",
		Spec: geometry.Point2D{X: 1, Y: 3}, Togglable: true,
		OnPress: func(g *GraphView) { g.help.On = false; g.status = ""; g.Refresh() },
	}
	g.markers = &Toggle{
		Help: "Draw a marker at each graph point",
		Spec: geometry.Point2D{X: -1, Y: -2}, Togglable: true, On: true,
		OnPress: func(g *GraphView) { g.prepareDraw() },
		Visible: (*GraphView).canDoMarkers,
	}
	g.outlines = &Toggle{
		Help: "Toggle between solid and outlined markers",
		Spec: geometry.Point2D{X: -1, Y: -5.5}, Togglable: true,
		OnPress: func(g *GraphView) { g.prepareDraw() },
		Visible: (*GraphView).anyMarkers,
	}
	g.lines = &Toggle{
		Help: "Connect graph points by lines",
		Spec: geometry.Point2D{X: -2, Y: -1}, Togglable: true,
		OnPress: func(g *GraphView) { g.prepareDraw() },
		Visible: (*GraphView).canDoLines,
	}
	g.tickToggles = [2]*Toggle{
		{Help: "Toggle axis labels on X axis (shown when cursor leaves window)",
			Spec: geometry.Point2D{X: 5.5, Y: -1}, Togglable: true},
		{Help: "Toggle axis labels on Y axis (shown when cursor leaves window)",
			Spec: geometry.Point2D{X: 1, Y: -5.5}, Togglable: true},
	}
	g.logToggles = [2]*Toggle{
		{Help: "Toggle logarithmic scale on X axis",
			Spec: geometry.Point2D{X: 6.5, Y: -1}, Togglable: true,
			OnPress: func(g *GraphView) { g.applyLogScale(); g.prepareDraw() }},
		{Help: "Toggle logarithmic scale on Y axis",
			Spec: geometry.Point2D{X: 1, Y: -6.5}, Togglable: true,
			OnPress: func(g *GraphView) { g.applyLogScale(); g.prepareDraw() }},
	}
	g.gridToggles = [2][2]*Toggle{
		{
			{Help: "Toggle major grid lines on X axis",
				Spec: geometry.Point2D{X: 4.25, Y: -1}, Togglable: true, On: true,
				OnPress: func(g *GraphView) {
					if !g.gridToggles[0][0].On {
						g.gridToggles[1][0].On = false
					}
					g.Refresh()
				}},
			{Help: "Toggle major grid lines on Y axis",
				Spec: geometry.Point2D{X: 1, Y: -4.25}, Togglable: true, On: true,
				OnPress: func(g *GraphView) {
					if !g.gridToggles[0][1].On {
						g.gridToggles[1][1].On = false
					}
					g.Refresh()
				}},
		},
		{
			{Help: "Toggle minor grid lines on X axis",
				Spec: geometry.Point2D{X: 3.25, Y: -1}, Togglable: true, On: true,
				OnPress: func(g *GraphView) {
					if g.gridToggles[1][0].On {
						g.gridToggles[0][0].On = true
					}
					g.Refresh()
				}},
			{Help: "Toggle minor grid lines on Y axis",
				Spec: geometry.Point2D{X: 1, Y: -3.25}, Togglable: true, On: true,
				OnPress: func(g *GraphView) {
					if g.gridToggles[1][1].On {
						g.gridToggles[0][1].On = true
					}
					g.Refresh()
				}},
		},
	}
	g.movieToggles = [2]*Toggle{
		{Help: "Play a movie traveling left",
			Spec: geometry.Point2D{X: 97.5, Y: -1}, Togglable: true,
			OnPress: func(g *GraphView) { g.toggleMovie(false, g.movieToggles[0]) },
			Visible: zoomedOn(0)},
		{Help: "Play a movie traveling right",
			Spec: geometry.Point2D{X: 102.5, Y: -1}, Togglable: true,
			OnPress: func(g *GraphView) { g.toggleMovie(true, g.movieToggles[1]) },
			Visible: zoomedOn(0)},
	}
	g.prevViews = &Toggle{
		Help:    "Show previous view",
		Spec:    geometry.Point2D{X: -1, Y: 1},
		Visible: func(g *GraphView) bool { return g.history.Len() > 1 },
		OnRelease: func(g *GraphView) {
			if c, ok := g.history.Pop(); ok {
				g.restoreConfig(c)
				g.syncSeriesVisibility()
				g.prepareDraw()
			}
		},
	}

	g.toggles = []*Toggle{
		g.help, g.coords, g.markers, g.outlines, g.lines,
		g.tickToggles[0], g.tickToggles[1],
		g.logToggles[0], g.logToggles[1],
		g.gridToggles[0][0], g.gridToggles[0][1],
		g.gridToggles[1][0], g.gridToggles[1][1],
		g.movieToggles[0], g.movieToggles[1],
		g.prevViews,
	}

	n := g.View.Set.Len()
	for i := 0; i < n; i++ {
		i := i
		s := g.View.Set.At(i)
		t := &Toggle{
			Help: fmt.Sprintf("Pointer clicks toggle display "+
				"or change colors (buttons 2,3) for series %s", s.Name),
			Spec:      geometry.Point2D{X: -1, Y: float64(n+1) - float64(i)},
			Togglable: true,
			On:        s.Visible,
			Color:     s.Color,
			OnPress: func(g *GraphView) {
				g.View.Set.At(i).Visible = g.seriesToggles[i].On
				g.prepareDraw()
			},
			Visible: func(g *GraphView) bool { return g.inside },
		}
		g.seriesToggles = append(g.seriesToggles, t)
		g.toggles = append(g.toggles, t)
	}
	g.toggles = append(g.toggles, g.actionToggles()...)

	g.savedToggles = append([]*Toggle{g.markers, g.outlines, g.lines},
		g.seriesToggles...)
}

// actionToggles are the momentary controls: zoom out, screen jumps,
// size adjustments, image save and defaults.
func (g *GraphView) actionToggles() []*Toggle {
	ext := func(axis view.Axis) float64 { return g.View.Range.At(axis).Extent() }
	return []*Toggle{
		{Help: "Save an image of the graph",
			Spec:    geometry.Point2D{X: 1, Y: 1},
			OnPress: func(g *GraphView) { g.SaveImage("") }},
		{Help: "Zoom out both axes",
			Spec: geometry.Point2D{X: 1, Y: -1},
			OnPress: func(g *GraphView) {
				g.View.AutoRange(view.AxisBoth)
				g.prepareDraw()
			},
			Visible: func(g *GraphView) bool { return g.View.IsZoomed() }},
		{Help: "Zoom out X axis",
			Spec: geometry.Point2D{X: 2, Y: -1},
			OnPress: func(g *GraphView) {
				g.View.AutoRange(view.AxisX)
				g.prepareDraw()
			},
			Visible: zoomedOn(0)},
		{Help: "Zoom out Y axis",
			Spec: geometry.Point2D{X: 1, Y: -2},
			OnPress: func(g *GraphView) {
				g.View.AutoRange(view.AxisY)
				g.prepareDraw()
			},
			Visible: zoomedOn(1)},
		{Help: "Jump left X axis by one screen",
			Spec: geometry.Point2D{X: 98.5, Y: -1},
			OnPress: func(g *GraphView) {
				g.View.Jump(view.AxisX, -ext(view.AxisX))
				g.prepareDraw()
			},
			Visible: zoomedOn(0)},
		{Help: "Jump left X axis by half a screen",
			Spec: geometry.Point2D{X: 99.5, Y: -1},
			OnPress: func(g *GraphView) {
				g.View.Jump(view.AxisX, -ext(view.AxisX)/2)
				g.prepareDraw()
			},
			Visible: zoomedOn(0)},
		{Help: "Jump right X axis by half a screen",
			Spec: geometry.Point2D{X: 100.5, Y: -1},
			OnPress: func(g *GraphView) {
				g.View.Jump(view.AxisX, ext(view.AxisX)/2)
				g.prepareDraw()
			},
			Visible: zoomedOn(0)},
		{Help: "Jump right X axis by one screen",
			Spec: geometry.Point2D{X: 101.5, Y: -1},
			OnPress: func(g *GraphView) {
				g.View.Jump(view.AxisX, ext(view.AxisX))
				g.prepareDraw()
			},
			Visible: zoomedOn(0)},
		{Help: "Jump up Y axis by one screen",
			Spec: geometry.Point2D{X: 1, Y: 98.5},
			OnPress: func(g *GraphView) {
				g.View.Jump(view.AxisY, ext(view.AxisY))
				g.prepareDraw()
			},
			Visible: zoomedOn(1)},
		{Help: "Jump up Y axis by half a screen",
			Spec: geometry.Point2D{X: 1, Y: 99.5},
			OnPress: func(g *GraphView) {
				g.View.Jump(view.AxisY, ext(view.AxisY)/2)
				g.prepareDraw()
			},
			Visible: zoomedOn(1)},
		{Help: "Jump down Y axis by half a screen",
			Spec: geometry.Point2D{X: 1, Y: 100.5},
			OnPress: func(g *GraphView) {
				g.View.Jump(view.AxisY, -ext(view.AxisY)/2)
				g.prepareDraw()
			},
			Visible: zoomedOn(1)},
		{Help: "Jump down Y axis by one screen",
			Spec: geometry.Point2D{X: 1, Y: 101.5},
			OnPress: func(g *GraphView) {
				g.View.Jump(view.AxisY, -ext(view.AxisY))
				g.prepareDraw()
			},
			Visible: zoomedOn(1)},
		{Help: "Make markers bigger",
			Spec:    geometry.Point2D{X: -1, Y: -4.25},
			OnPress: func(g *GraphView) { g.markerRadius++; g.prepareDraw() },
			Visible: (*GraphView).anyMarkers},
		{Help: "Make markers smaller",
			Spec:    geometry.Point2D{X: -1, Y: -3.25},
			OnPress: func(g *GraphView) { g.markerRadius--; g.prepareDraw() },
			Visible: func(g *GraphView) bool {
				return g.anyMarkers() && g.markerRadius >= 2
			}},
		{Help: "Make marker outlines thicker",
			Spec:    geometry.Point2D{X: -1, Y: -7.75},
			OnPress: func(g *GraphView) { g.markerWidth++; g.prepareDraw() },
			Visible: func(g *GraphView) bool {
				return g.anyMarkers() && g.outlines.On
			}},
		{Help: "Make marker outlines thinner",
			Spec:    geometry.Point2D{X: -1, Y: -6.75},
			OnPress: func(g *GraphView) { g.markerWidth--; g.prepareDraw() },
			Visible: func(g *GraphView) bool {
				return g.anyMarkers() && g.outlines.On && g.markerWidth > 0
			}},
		{Help: "Make series lines thicker",
			Spec:    geometry.Point2D{X: -3.25, Y: -1},
			OnPress: func(g *GraphView) { g.lineWidth++; g.prepareDraw() },
			Visible: (*GraphView).anyLines},
		{Help: "Make series lines thinner",
			Spec:    geometry.Point2D{X: -4.25, Y: -1},
			OnPress: func(g *GraphView) { g.lineWidth--; g.prepareDraw() },
			Visible: func(g *GraphView) bool {
				return g.anyLines() && g.lineWidth >= 2
			}},
		{Help: "Open the graph tutorial webpage to the GUI help section",
			Spec:    geometry.Point2D{X: -6.25, Y: -1},
			OnPress: (*GraphView).openTutorial},
		{Help: "Set default values for color, line and marker properties",
			Spec: geometry.Point2D{X: -1, Y: -1},
			OnPress: func(g *GraphView) {
				g.markers.On = true
				g.outlines.On = false
				g.lines.On = false
				g.markerRadius = view.DefaultMarkerRadius
				g.markerWidth = view.DefaultMarkerWidth
				g.lineWidth = view.DefaultLineWidth
				g.resetColors()
				g.prepareDraw()
			},
			Visible: func(g *GraphView) bool {
				return (g.anyLines() && (g.colorsChanged || g.lines.On ||
					g.lineWidth != view.DefaultLineWidth)) ||
					(g.anyMarkers() && (!g.markers.On || g.outlines.On ||
						g.markerRadius != view.DefaultMarkerRadius ||
						g.markerWidth != view.DefaultMarkerWidth))
			}},
	}
}

func (g *GraphView) openTutorial() {
	u, err := url.Parse(tutorialURL)
	if err != nil {
		g.log.Error("bad tutorial url", "err", err)
		return
	}
	if app := fyne.CurrentApp(); app != nil {
		if err := app.OpenURL(u); err != nil {
			g.log.Error("open tutorial url", "url", tutorialURL, "err", err)
		}
	}
}
