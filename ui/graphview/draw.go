package graphview

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"ggraph/internal/render"
	"ggraph/internal/view"
	"ggraph/pkg/colorutil"
)

const borderWidth = 3

var (
	majorGridColor = colorutil.Grey
	minorGridColor = lighten(colorutil.Grey)
)

func lighten(c color.RGBA) color.RGBA {
	c.R += (255 - c.R) / 2
	c.G += (255 - c.G) / 2
	c.B += (255 - c.B) / 2
	return c
}

// draw is the raster generator: it renders the plot into the
// off-screen surface when needed and composites the border controls
// on top.
func (g *GraphView) draw(w, h int) image.Image {
	if w < 1 || h < 1 {
		return g.visible.Image()
	}
	cw, ch := g.visible.Size()
	if cw != w || ch != h {
		g.buf.Resize(w, h)
		g.visible.Resize(w, h)
		g.justConfigured = true
		g.needPrepare = true
	}

	g.stepMovie()

	if g.needPrepare {
		g.View.Layout(w, h)
		g.runHooks(nil, HookPrepare)
		g.geoms = g.View.Prepare(view.PrepareOptions{
			MarkersOn: g.markers.On,
			LinesOn:   g.lines.On,
			LineWidth: float64(g.lineWidth),
		})
		g.needPrepare = false
		g.renderPlot()
	}

	g.visible.CopyFrom(g.buf)
	g.drawControls()
	g.justConfigured = false

	if !g.smallMove {
		if g.history.Push(g.currentConfig()) && g.history.Len() > 1 &&
			g.OnViewChanged != nil {
			g.OnViewChanged()
		}
	}
	return g.visible.Image()
}

// renderPlot draws the prepared series geometry into the off-screen
// surface.
func (g *GraphView) renderPlot() {
	if g.justConfigured {
		g.buf.Fill(colorutil.White)
	} else {
		xl, xh := g.plotBounds(0)
		yl, yh := g.plotBounds(1)
		g.buf.FillRect(xl, yl, xh-xl, yh-yl, colorutil.White)
	}

	g.runHooks(g.buf, PreDraw)

	markerBatch := render.Batcher{Limit: render.MarkerBatch}
	lineBatch := render.Batcher{Limit: render.LineBatch}
	for _, s := range g.View.Set.Order() {
		if s >= len(g.geoms) {
			continue
		}
		geom := g.geoms[s]
		col := g.View.Set.At(s).Color
		if g.doMarkers(s) {
			markerBatch.Chunks(len(geom.Markers), func(lo, hi int) {
				for _, m := range geom.Markers[lo:hi] {
					g.buf.Marker(m.X, m.Y, g.markerRadius, col,
						!g.outlines.On, g.markerWidth)
				}
			})
		}
		if g.doLines(s) {
			lineBatch.Chunks(len(geom.Lines), func(lo, hi int) {
				g.buf.Polyline(geom.Lines[lo:hi], col, g.lineWidth, g.lineDashed)
			})
		}
	}

	g.runHooks(g.buf, PostDraw)
}

// drawControls paints everything living outside the plot area, plus
// grid lines and gesture feedback, onto the visible surface.
func (g *GraphView) drawControls() {
	w, h := g.visible.Size()
	xl, xh := g.plotBounds(0)
	yl, yh := g.plotBounds(1)

	// Clear the border region so spilled geometry never shows.
	g.visible.FillRect(0, 0, w, yl, colorutil.White)
	g.visible.FillRect(0, yh+1, w, h-yh, colorutil.White)
	g.visible.FillRect(0, 0, xl, h, colorutil.White)
	g.visible.FillRect(xh+1, 0, w-xh, h, colorutil.White)

	g.drawGrid()
	g.visible.RectOutline(xl, yl, xh, yh, colorutil.Black, borderWidth)
	g.drawStatus()

	if g.inside {
		for _, t := range g.toggles {
			g.drawToggle(t)
		}
	}
	g.drawTickLabels()
	g.drawSelectionFeedback()
}

func (g *GraphView) drawGrid() {
	for _, a := range []view.Axis{view.AxisX, view.AxisY} {
		xl, xh := g.plotBounds(0)
		yl, yh := g.plotBounds(1)
		for _, tick := range view.Ticks(g.View.Range.At(a), g.logToggles[a].On) {
			kind := 1
			col := minorGridColor
			if tick.Major {
				kind = 0
				col = majorGridColor
			}
			if !g.gridToggles[kind][a].On {
				continue
			}
			loc := g.View.PixelOf(a, tick.Value)
			if a == view.AxisY {
				g.visible.Line(xl, loc, xh, loc, col, 1, true)
			} else {
				g.visible.Line(loc, yl, loc, yh, col, 1, true)
			}
		}
	}
}

func (g *GraphView) drawStatus() {
	if g.status == "" || !(g.statusForced || g.help.On || g.coords.On) {
		return
	}
	xl, xh := g.plotBounds(0)
	yl, _ := g.plotBounds(1)
	avail := int(0.65 * float64(yl))
	if avail < 1 {
		return
	}
	face := g.fonts.Fits(g.status, xh-xl, avail)
	render.DrawLeft(g.visible.Image(), face, g.status, xl,
		(yl-borderWidth)/2, colorutil.Black)
}

func (g *GraphView) drawToggle(t *Toggle) {
	p := t.Location(g)
	r := t.Radius(g)

	g.visible.Marker(p.X, p.Y, r+1, colorutil.White, true, 0)
	ringCol := t.color()
	if !t.visible(g) {
		ringCol = colorutil.Grey
	}
	g.visible.Marker(p.X, p.Y, r, ringCol, false, 2)
	if t.On {
		g.visible.Marker(p.X, p.Y, r/2, t.color(), true, 0)
	}
}

// drawTickLabels writes axis values in the border. They only appear
// once the pointer has left the window, keeping the border free for
// the controls while interacting.
func (g *GraphView) drawTickLabels() {
	if g.inside {
		return
	}
	if !g.tickToggles[0].On && !g.tickToggles[1].On {
		return
	}
	xl, xh := g.plotBounds(0)
	yl, yh := g.plotBounds(1)
	face := g.fonts.Fits("moo", xh-xl, int(0.6*float64(yl)))
	_, th := render.Measure(face, "moo")

	for _, a := range []view.Axis{view.AxisX, view.AxisY} {
		if !g.tickToggles[a].On {
			continue
		}
		for _, tick := range view.Ticks(g.View.Range.At(a), g.logToggles[a].On) {
			if !tick.Major {
				continue
			}
			val := tick.Value
			if g.logToggles[a].On {
				val = math.Pow(10, val)
			}
			text := strconv.FormatFloat(val, 'g', 6, 64)
			loc := g.View.PixelOf(a, tick.Value)
			tw, _ := render.Measure(face, text)
			if a == view.AxisY {
				x := xl - tw - 3
				if x < 0 {
					x = 0
				}
				render.DrawLeft(g.visible.Image(), face, text, x, loc, colorutil.Black)
			} else {
				render.DrawLeft(g.visible.Image(), face, text, loc-tw/2,
					yh+th/2+2, colorutil.Black)
			}
		}
	}
}

// drawSelectionFeedback shows the rubber band of an in-progress
// select drag, or the ruler line when dragging along a border.
func (g *GraphView) drawSelectionFeedback() {
	if g.click != ClickSelect || !g.moved {
		return
	}
	if g.View.InPlot(g.clickPos) {
		g.visible.DashedRect(g.clickPos.X, g.clickPos.Y,
			g.lastMotion.X, g.lastMotion.Y, colorutil.Black)
		return
	}
	quadrant := g.View.Quadrant(g.clickPos)
	yPress := quadrant%2 == 1
	above := quadrant == 0 || quadrant == 3
	otherAxis := 0
	if !yPress {
		otherAxis = 1
	}
	lo, hi := g.plotBounds(otherAxis)
	loc := lo
	if above {
		loc = hi + 2*borderWidth
	} else {
		loc -= 2 * borderWidth
	}
	if yPress {
		g.visible.Line(loc, g.clickPos.Y, loc, g.lastMotion.Y,
			colorutil.Black, borderWidth, false)
	} else {
		g.visible.Line(g.clickPos.X, loc, g.lastMotion.X, loc,
			colorutil.Black, borderWidth, false)
	}
}

// SaveImage writes the current composited view to a timestamped PNG.
// An empty basename defaults to "ggraph".
func (g *GraphView) SaveImage(basename string) {
	if basename == "" {
		basename = "ggraph"
	}
	dir := g.saveDir
	if dir == "" {
		dir = "."
	}
	name := filepath.Join(dir,
		fmt.Sprintf("%s_%s.png", basename, time.Now().Format("20060102_150405")))
	f, err := os.Create(name)
	if err != nil {
		g.log.Error("create image file", "path", name, "err", err)
		return
	}
	defer f.Close()
	if err := png.Encode(f, g.visible.Image()); err != nil {
		g.log.Error("encode image", "path", name, "err", err)
		return
	}
	g.log.Info("saved graph image", "path", name)
	g.setActionStatus("Done saving image")
	if g.OnImageSaved != nil {
		g.OnImageSaved(name)
	}
	g.Refresh()
}
