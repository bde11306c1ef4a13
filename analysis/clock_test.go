package analysis

import "time"

// scriptClock returns the scripted durations from Since, one per measurement,
// then zero once the script runs out.
type scriptClock struct {
	durations []time.Duration
	next      int
}

func (c *scriptClock) Now() time.Time { return time.Unix(0, 0) }

func (c *scriptClock) Since(time.Time) time.Duration {
	if c.next >= len(c.durations) {
		return 0
	}
	d := c.durations[c.next]
	c.next++
	return d
}
