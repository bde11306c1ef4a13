package bench

import "time"

// Clock is a source of monotonic time readings.
type Clock interface {
	Now() time.Time
	Since(t time.Time) time.Duration
}

// SystemClock reads the runtime clock. time.Now carries a monotonic reading,
// so Since is unaffected by wall-clock adjustments.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time { return time.Now() }

// Since implements Clock.
func (SystemClock) Since(t time.Time) time.Duration { return time.Since(t) }

// Stopwatch records one elapsed interval.
type Stopwatch struct {
	clock   Clock
	start   time.Time
	elapsed time.Duration
	stopped bool
}

// Start begins a measurement.
func Start(clock Clock) *Stopwatch {
	return &Stopwatch{clock: clock, start: clock.Now()}
}

// Stop ends the measurement. Only the first call has an effect.
func (s *Stopwatch) Stop() time.Duration {
	if !s.stopped {
		s.elapsed = s.clock.Since(s.start)
		s.stopped = true
	}
	return s.elapsed
}

// Elapsed returns the recorded interval, or zero before Stop.
func (s *Stopwatch) Elapsed() time.Duration {
	return s.elapsed
}

// Measure returns the time taken by fn.
func Measure(clock Clock, fn func()) (elapsed time.Duration) {
	sw := Start(clock)
	defer func() { elapsed = sw.Stop() }()
	fn()
	return
}
