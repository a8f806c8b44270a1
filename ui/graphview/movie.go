package graphview

import (
	"time"

	"ggraph/internal/frame"
	"ggraph/internal/view"
)

const (
	movieFPS = 15
	// moviePageRate is how many full view widths the movie scrolls
	// per second.
	moviePageRate = 0.35
)

// toggleMovie starts or stops the horizontal pan animation for the
// given direction toggle.
func (g *GraphView) toggleMovie(right bool, t *Toggle) {
	g.movieMu.Lock()
	defer g.movieMu.Unlock()
	if t.On {
		if g.movieStop != nil {
			return
		}
		g.movieDir = -1
		if right {
			g.movieDir = 1
		}
		g.movieToggle = t
		g.setActionStatus("Playing the movie - press the movie toggle again to stop")
		stop := make(chan struct{})
		g.movieStop = stop
		go g.tickMovie(stop)
	} else if g.movieStop != nil {
		close(g.movieStop)
		g.movieStop = nil
		g.moviePending.Store(0)
	}
}

// tickMovie paces movie frames. It never touches the view: each frame
// it banks the elapsed time and requests a redraw, and stepMovie turns
// the banked time into a pan inside the draw pass.
func (g *GraphView) tickMovie(stop chan struct{}) {
	sched := frame.New(movieFPS)
	for {
		select {
		case <-stop:
			return
		default:
		}
		elapsed := sched.Next()
		g.moviePending.Add(int64(elapsed))
		g.Refresh()
	}
}

// stepMovie applies any banked movie travel time as a pan. It runs
// from draw, so the view only ever changes in the rendering pass. The
// pan distance scales with real elapsed time so dropped frames never
// slow the movie down, and playback stops at the edge of the full
// data range.
func (g *GraphView) stepMovie() {
	pending := g.moviePending.Swap(0)
	if pending == 0 {
		return
	}
	g.movieMu.Lock()
	t := g.movieToggle
	running := g.movieStop != nil
	dir := g.movieDir
	g.movieMu.Unlock()
	if !running || t == nil || !t.On {
		return
	}

	dist := dir * moviePageRate * time.Duration(pending).Seconds() *
		g.View.Range.X.Extent()
	g.View.Jump(view.AxisX, dist)

	r, limit := g.View.Range.X, g.View.MaxRange.X
	if r.Low <= limit.Low || r.High >= limit.High {
		t.On = false
		g.movieMu.Lock()
		if g.movieStop != nil {
			close(g.movieStop)
			g.movieStop = nil
		}
		g.movieMu.Unlock()
		g.smallMove = false
	} else {
		g.smallMove = true
	}
	g.needPrepare = true
}
