package frame

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fakeClock advances only when the scheduler sleeps or the test says
// so.
type fakeClock struct {
	t     time.Time
	slept []time.Duration
	extra time.Duration // added on each now() call to simulate work
}

func (c *fakeClock) now() time.Time {
	c.t = c.t.Add(c.extra)
	return c.t
}

func (c *fakeClock) sleep(d time.Duration) {
	c.slept = append(c.slept, d)
	c.t = c.t.Add(d)
}

func TestSchedulerPacesFrames(t *testing.T) {
	clk := &fakeClock{t: time.Unix(0, 0)}
	s := newScheduler(10, clk.now, clk.sleep)

	for i := 0; i < 3; i++ {
		elapsed := s.Next()
		assert.Equal(t, 100*time.Millisecond, elapsed)
	}
	assert.Len(t, clk.slept, 3, "idle caller sleeps every frame")
}

func TestSchedulerSkipsMissedFrames(t *testing.T) {
	clk := &fakeClock{t: time.Unix(0, 0)}
	s := newScheduler(10, clk.now, clk.sleep)

	_ = s.Next()

	// Fall behind by more than two frame periods.
	clk.t = clk.t.Add(250 * time.Millisecond)
	elapsed := s.Next()
	assert.Equal(t, 300*time.Millisecond, elapsed,
		"missed frames are skipped, elapsed spans them")
}

func TestSchedulerElapsedAccumulates(t *testing.T) {
	clk := &fakeClock{t: time.Unix(0, 0)}
	s := newScheduler(20, clk.now, clk.sleep)

	var total time.Duration
	for i := 0; i < 5; i++ {
		total += s.Next()
	}
	assert.Equal(t, 250*time.Millisecond, total)
}
