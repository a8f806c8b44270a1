package view

// Default drawing parameters, restorable from the defaults toggle.
const (
	DefaultMarkerRadius = 4.0
	DefaultMarkerWidth  = 2.0
	DefaultLineWidth    = 4
)

// Config captures everything needed to restore a previous view:
// drawing parameters, draw order, ranges and the overlay toggle
// states.
type Config struct {
	MarkerRadius float64
	MarkerWidth  float64
	LineWidth    int
	LineDashed   bool

	Order    []int
	Range    Range
	MaxRange Range
	Zoomed   [2]bool

	Toggles []bool
}

// DefaultConfig returns a config with the default drawing parameters.
func DefaultConfig() Config {
	return Config{
		MarkerRadius: DefaultMarkerRadius,
		MarkerWidth:  DefaultMarkerWidth,
		LineWidth:    DefaultLineWidth,
	}
}

// Equal compares two configs, treating float fields as equal within
// floating point noise.
func (c Config) Equal(o Config) bool {
	if dne(c.MarkerRadius, o.MarkerRadius) || dne(c.MarkerWidth, o.MarkerWidth) ||
		c.LineWidth != o.LineWidth || c.LineDashed != o.LineDashed ||
		c.Range != o.Range || c.MaxRange != o.MaxRange || c.Zoomed != o.Zoomed {
		return false
	}
	if !intsEqual(c.Order, o.Order) {
		return false
	}
	if len(c.Toggles) != len(o.Toggles) {
		return false
	}
	for i := range c.Toggles {
		if c.Toggles[i] != o.Toggles[i] {
			return false
		}
	}
	return true
}

func intsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// clone deep copies the slices so stack entries never alias live
// state.
func (c Config) clone() Config {
	c.Order = append([]int(nil), c.Order...)
	c.Toggles = append([]bool(nil), c.Toggles...)
	return c
}

// History is the stack of previously shown views. The bottom entry is
// the initial view and is never popped away.
type History struct {
	stack []Config
}

// Len returns the number of saved views.
func (h *History) Len() int { return len(h.stack) }

// Push saves a view unless it matches the view on top of the stack.
// It reports whether the view was saved.
func (h *History) Push(c Config) bool {
	if n := len(h.stack); n > 0 && h.stack[n-1].Equal(c) {
		return false
	}
	h.stack = append(h.stack, c.clone())
	return true
}

// Top returns the most recently saved view.
func (h *History) Top() (Config, bool) {
	if len(h.stack) == 0 {
		return Config{}, false
	}
	return h.stack[len(h.stack)-1], true
}

// Pop discards the current view and returns the one beneath it. The
// last remaining view is never discarded.
func (h *History) Pop() (Config, bool) {
	if len(h.stack) < 2 {
		return Config{}, false
	}
	h.stack = h.stack[:len(h.stack)-1]
	return h.stack[len(h.stack)-1], true
}
