// Package frame paces animation loops at a fixed frame rate, skipping
// frames whose deadline has already passed rather than letting work
// pile up.
package frame

import "time"

// Scheduler hands out evenly spaced frame deadlines measured from its
// creation.
type Scheduler struct {
	period time.Duration
	start  time.Time
	last   time.Time
	frame  uint64

	now   func() time.Time
	sleep func(time.Duration)
}

// New returns a scheduler ticking at the given frames per second.
func New(fps float64) *Scheduler {
	return newScheduler(fps, time.Now, time.Sleep)
}

func newScheduler(fps float64, now func() time.Time, sleep func(time.Duration)) *Scheduler {
	t := now()
	return &Scheduler{
		period: time.Duration(float64(time.Second) / fps),
		start:  t,
		last:   t,
		now:    now,
		sleep:  sleep,
	}
}

// Next blocks until the next frame deadline still in the future and
// returns the time advanced since the previous executed frame. When
// the caller fell behind, intervening frames are skipped instead of
// being run late.
func (s *Scheduler) Next() time.Duration {
	for {
		s.frame++
		deadline := s.start.Add(time.Duration(s.frame) * s.period)
		t := s.now()
		if t.After(deadline) {
			continue
		}
		if t.Before(deadline) {
			s.sleep(deadline.Sub(t))
		}
		elapsed := deadline.Sub(s.last)
		s.last = deadline
		return elapsed
	}
}
