package clock

import "time"

// Clock provides the current time. Inject it wherever "today" matters
// so computations stay deterministic under test.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (s SystemClock) Now() time.Time {
	return time.Now()
}

// Fixed is a test clock pinned to a single instant.
type Fixed struct {
	Instant time.Time
}

func (f *Fixed) Now() time.Time {
	return f.Instant
}

func (f *Fixed) Set(now time.Time) {
	f.Instant = now
}
