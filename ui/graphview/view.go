package graphview

import (
	"fmt"
	"image/color"
	"sync"
	"sync/atomic"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/charmbracelet/log"

	"ggraph/internal/render"
	"ggraph/internal/series"
	"ggraph/internal/view"
	"ggraph/pkg/colorutil"
	"ggraph/pkg/geometry"
)

// DrawPhase says when a hook runs relative to the series pass. The
// surface argument is nil in the prepare phase.
type DrawPhase int

const (
	HookPrepare DrawPhase = iota
	PreDraw
	PostDraw
)

// DrawHook lets callers paint extra content on the plot surface or
// compute state before geometry preparation.
type DrawHook func(g *GraphView, s *render.Surface, phase DrawPhase)

// hookEntry pairs a hook with the border toggle controlling it.
type hookEntry struct {
	toggle     *Toggle
	fn         DrawHook
	fullRedraw bool
}

// GraphView is the interactive graph widget. It renders the plot into
// an off-screen surface and composites border controls, status text
// and gesture feedback on top.
type GraphView struct {
	widget.BaseWidget

	log *log.Logger

	View  *view.View
	fonts *render.FontSet

	// Optional notifications for the embedding window.
	OnViewChanged   func()
	OnColorsChanged func()
	OnImageSaved    func(path string)

	raster  *fynecanvas.Raster
	buf     *render.Surface
	visible *render.Surface

	// Restorable drawing parameters.
	markerRadius float64
	markerWidth  float64
	lineWidth    int
	lineDashed   bool

	history view.History

	geoms       []view.Geometry
	needPrepare bool

	// Controls. The slice holds every toggle in hit-test order.
	toggles       []*Toggle
	help          *Toggle
	coords        *Toggle
	markers       *Toggle
	outlines      *Toggle
	lines         *Toggle
	tickToggles   [2]*Toggle
	logToggles    [2]*Toggle
	gridToggles   [2][2]*Toggle // [major, minor][axis]
	movieToggles  [2]*Toggle
	prevViews     *Toggle
	seriesToggles []*Toggle
	savedToggles  []*Toggle

	status         string
	statusForced   bool
	inside         bool
	justConfigured bool

	// Gesture state.
	click       ClickClass
	clickPos    geometry.PointInt
	lastMotion  geometry.PointInt
	hoverPos    geometry.PointInt
	moved       bool
	smallMove   bool
	shiftDown   bool
	controlDown bool

	// Color cycling position for the 'c' key.
	nextColor     int
	colorsChanged bool

	// Movie playback. The ticker goroutine only paces frames and
	// accumulates travel time; the view itself is mutated in the draw
	// path when the pending time is consumed.
	movieMu      sync.Mutex
	movieStop    chan struct{}
	movieDir     float64
	movieToggle  *Toggle
	moviePending atomic.Int64

	hooks   []hookEntry
	saveDir string
	palette []color.RGBA
}

// New builds a graph view over the series set. Series get their
// palette colors here if they have none yet.
func New(set *series.Set, logger *log.Logger) (*GraphView, error) {
	fonts, err := render.NewFontSet()
	if err != nil {
		return nil, fmt.Errorf("graph fonts: %w", err)
	}
	g := &GraphView{
		log:          logger,
		View:         view.New(set),
		fonts:        fonts,
		buf:          render.NewSurface(1, 1),
		visible:      render.NewSurface(1, 1),
		markerRadius: view.DefaultMarkerRadius,
		markerWidth:  view.DefaultMarkerWidth,
		lineWidth:    view.DefaultLineWidth,
		needPrepare:  true,
		nextColor:    set.Len(),
	}
	palette := colorutil.Palette(set.Len())
	for i := 0; i < set.Len(); i++ {
		s := set.At(i)
		if s.Color == (color.RGBA{}) {
			s.Color = palette[i]
		}
	}
	g.buildToggles()
	g.View.AutoRange(view.AxisBoth)

	g.raster = fynecanvas.NewRaster(g.draw)
	g.raster.ScaleMode = fynecanvas.ImageScalePixels
	g.ExtendBaseWidget(g)
	return g, nil
}

// SetSaveDir sets where saved plot images are written.
func (g *GraphView) SetSaveDir(dir string) { g.saveDir = dir }

// AddHook registers an extension hook with its own border toggle. The
// hook runs before geometry preparation and around the series pass
// whenever its toggle is on. fullRedraw controls whether flipping the
// toggle regenerates geometry or just recomposites.
func (g *GraphView) AddHook(help string, fn DrawHook, fullRedraw, on bool) *Toggle {
	t := &Toggle{
		Help:      help,
		Spec:      geometry.Point2D{X: -(7.25 + 1.0*float64(len(g.hooks))), Y: -1},
		Togglable: true,
		On:        on,
	}
	if fullRedraw {
		t.OnPress = func(g *GraphView) { g.prepareDraw() }
	} else {
		t.OnPress = func(g *GraphView) { g.Refresh() }
	}
	g.hooks = append(g.hooks, hookEntry{toggle: t, fn: fn, fullRedraw: fullRedraw})
	g.toggles = append(g.toggles, t)
	return t
}

// runHooks invokes active hooks for one phase.
func (g *GraphView) runHooks(s *render.Surface, phase DrawPhase) {
	for _, h := range g.hooks {
		if h.toggle.On {
			h.fn(g, s, phase)
		}
	}
}

// Status returns the current status line text.
func (g *GraphView) Status() string { return g.status }

// setActionStatus posts a status line that shows even with the help
// and coordinate toggles off, until the next pointer update replaces
// it.
func (g *GraphView) setActionStatus(s string) {
	g.status = s
	g.statusForced = true
}

// SetDisplayDefaults sets the marker, outline and line toggles,
// restoring states persisted across runs.
func (g *GraphView) SetDisplayDefaults(markers, outlines, lines bool) {
	g.markers.On = markers
	g.outlines.On = outlines
	g.lines.On = lines
	g.prepareDraw()
}

// DisplayDefaults reports the toggle states persisted across runs.
func (g *GraphView) DisplayDefaults() (markers, outlines, lines bool) {
	return g.markers.On, g.outlines.On, g.lines.On
}

// CreateRenderer implements fyne.Widget.
func (g *GraphView) CreateRenderer() fyne.WidgetRenderer {
	return &graphRenderer{g: g}
}

type graphRenderer struct {
	g *GraphView
}

func (r *graphRenderer) Layout(size fyne.Size) { r.g.raster.Resize(size) }

func (r *graphRenderer) MinSize() fyne.Size { return fyne.NewSize(320, 200) }

func (r *graphRenderer) Refresh() { r.g.raster.Refresh() }

func (r *graphRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.g.raster}
}

func (r *graphRenderer) Destroy() {}

// Refresh redraws the widget.
func (g *GraphView) Refresh() {
	if g.raster != nil {
		g.raster.Refresh()
	}
	g.BaseWidget.Refresh()
}

// prepareDraw regenerates series geometry on the next draw.
func (g *GraphView) prepareDraw() {
	g.needPrepare = true
	g.Refresh()
}

// plotBounds returns the plot area pixel bounds on one axis.
func (g *GraphView) plotBounds(a int) (lo, hi int) {
	return g.View.Bounds(view.Axis(a))
}

// minBorder returns the smallest distance between the plot area and
// the window edge.
func (g *GraphView) minBorder() int {
	w, h := g.visible.Size()
	xl, xh := g.plotBounds(0)
	yl, yh := g.plotBounds(1)
	m := xl
	for _, v := range []int{yl, w - xh, h - yh} {
		if v < m {
			m = v
		}
	}
	return m
}

// currentConfig snapshots the restorable view state.
func (g *GraphView) currentConfig() view.Config {
	c := view.Config{
		MarkerRadius: g.markerRadius,
		MarkerWidth:  g.markerWidth,
		LineWidth:    g.lineWidth,
		LineDashed:   g.lineDashed,
		Order:        g.View.Set.Order(),
		Range:        g.View.Range,
		MaxRange:     g.View.MaxRange,
		Zoomed:       g.View.Zoomed,
	}
	for _, t := range g.savedToggles {
		c.Toggles = append(c.Toggles, t.On)
	}
	return c
}

// restoreConfig applies a previously saved view state.
func (g *GraphView) restoreConfig(c view.Config) {
	g.markerRadius = c.MarkerRadius
	g.markerWidth = c.MarkerWidth
	g.lineWidth = c.LineWidth
	g.lineDashed = c.LineDashed
	if err := g.View.Set.SetOrder(c.Order); err != nil {
		g.log.Warn("stale draw order in view history", "err", err)
	}
	g.View.Range = c.Range
	g.View.MaxRange = c.MaxRange
	g.View.Zoomed = c.Zoomed
	for i, t := range g.savedToggles {
		if i < len(c.Toggles) {
			t.On = c.Toggles[i]
		}
	}
}

// cycleSeriesColor recolors one series with the next or previous
// palette entry and raises it to the top of the draw order.
func (g *GraphView) cycleSeriesColor(idx int, forward bool) {
	palette := g.seriesPalette()
	c := palette[g.nextColor%len(palette)]
	g.View.Set.At(idx).Color = c
	g.seriesToggles[idx].Color = c
	g.View.Set.Raise(idx)
	g.colorsChanged = true
	if forward {
		g.nextColor++
	} else if g.nextColor > 0 {
		g.nextColor--
	}
	if g.OnColorsChanged != nil {
		g.OnColorsChanged()
	}
	g.prepareDraw()
}

func (g *GraphView) seriesPalette() []color.RGBA {
	if g.palette == nil {
		g.palette = colorutil.Palette(g.View.Set.Len())
	}
	return g.palette
}
