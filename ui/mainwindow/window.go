// Package mainwindow provides the main application window.
package mainwindow

import (
	"fmt"
	"path/filepath"
	"strings"

	"ggraph/internal/app"
	"ggraph/internal/series"
	"ggraph/ui/graphview"
	"ggraph/ui/prefs"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/charmbracelet/log"
)

// MainWindow is the primary application window: one graph filling the
// whole canvas, driven entirely by pointer and keyboard gestures.
type MainWindow struct {
	fyne.Window
	app   fyne.App
	state *app.State
	prefs *prefs.Prefs
	log   *log.Logger

	Graph *graphview.GraphView
}

// New creates the main window around a graph of the state's series.
func New(fyneApp fyne.App, state *app.State, p *prefs.Prefs, logger *log.Logger) (*MainWindow, error) {
	win := fyneApp.NewWindow(title(state))

	mw := &MainWindow{
		Window: win,
		app:    fyneApp,
		state:  state,
		prefs:  p,
		log:    logger,
	}

	graph, err := graphview.New(state.Set, logger)
	if err != nil {
		return nil, fmt.Errorf("build graph: %w", err)
	}
	mw.Graph = graph
	mw.wireGraph(graph)

	win.SetContent(graph)
	win.Resize(fyne.NewSize(
		float32(p.Float(prefs.KeyWindowWidth, 1280)),
		float32(p.Float(prefs.KeyWindowHeight, 720)),
	))

	mw.setupKeys()
	mw.setupEventHandlers()
	win.SetCloseIntercept(func() {
		mw.savePrefs()
		win.Close()
	})
	return mw, nil
}

// title names the window after the loaded files.
func title(state *app.State) string {
	if len(state.InputPaths) == 0 {
		return "ggraph"
	}
	names := make([]string, len(state.InputPaths))
	for i, p := range state.InputPaths {
		names[i] = filepath.Base(p)
	}
	return "ggraph - " + strings.Join(names, ", ")
}

// setupKeys routes raw key events to the graph. Arrow panning needs
// down and up events for modifier tracking, so the desktop canvas
// hooks are used where available.
func (mw *MainWindow) setupKeys() {
	mw.Canvas().SetOnTypedRune(mw.Graph.TypedRune)
	if dc, ok := mw.Canvas().(desktop.Canvas); ok {
		dc.SetOnKeyDown(mw.Graph.KeyDown)
		dc.SetOnKeyUp(mw.Graph.KeyUp)
	} else {
		mw.Canvas().SetOnTypedKey(mw.Graph.KeyDown)
	}
}

func (mw *MainWindow) setupEventHandlers() {
	mw.state.On(app.EventDataLoaded, func(data interface{}) {
		mw.SetTitle(title(mw.state))
		mw.Graph.Refresh()
	})
}

// wireGraph applies persisted preferences to a graph and forwards its
// notifications as application events.
func (mw *MainWindow) wireGraph(graph *graphview.GraphView) {
	graph.SetSaveDir(mw.prefs.String(prefs.KeySaveDir))
	graph.SetDisplayDefaults(
		mw.prefs.Bool(prefs.KeyMarkers, true),
		mw.prefs.Bool(prefs.KeyOutlines, false),
		mw.prefs.Bool(prefs.KeyLines, false),
	)
	graph.OnViewChanged = func() { mw.state.Emit(app.EventViewChanged, nil) }
	graph.OnColorsChanged = func() { mw.state.Emit(app.EventColorsChanged, nil) }
	graph.OnImageSaved = func(path string) { mw.state.Emit(app.EventImageSaved, path) }
}

// ReplaceData swaps in a freshly loaded series set, keeping the
// current view where the new data allows.
func (mw *MainWindow) ReplaceData(set *series.Set) {
	mw.state.Set = set
	graph, err := graphview.New(set, mw.log)
	if err != nil {
		mw.log.Error("rebuild graph", "err", err)
		return
	}
	mw.Graph = graph
	mw.wireGraph(graph)
	mw.SetContent(graph)
	mw.setupKeys()
}

func (mw *MainWindow) savePrefs() {
	size := mw.Canvas().Size()
	mw.prefs.SetFloat(prefs.KeyWindowWidth, float64(size.Width))
	mw.prefs.SetFloat(prefs.KeyWindowHeight, float64(size.Height))
	markers, outlines, lines := mw.Graph.DisplayDefaults()
	mw.prefs.SetBool(prefs.KeyMarkers, markers)
	mw.prefs.SetBool(prefs.KeyOutlines, outlines)
	mw.prefs.SetBool(prefs.KeyLines, lines)
	if err := mw.prefs.Save(); err != nil {
		mw.log.Warn("save preferences", "err", err)
	}
}
