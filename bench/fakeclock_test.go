package bench

import "time"

// stepClock advances by step on every Now call.
type stepClock struct {
	now   time.Time
	step  time.Duration
	reads int
}

func newStepClock(step time.Duration) *stepClock {
	return &stepClock{now: time.Unix(0, 0), step: step}
}

func (c *stepClock) Now() time.Time {
	c.reads++
	c.now = c.now.Add(c.step)
	return c.now
}

func (c *stepClock) Since(t time.Time) time.Duration {
	return c.Now().Sub(t)
}
