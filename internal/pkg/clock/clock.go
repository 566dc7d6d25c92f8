// Package clock abstracts the wall clock so that time-dependent rules
// (creation stamps, delivery estimates, "recent" windows) are testable.
package clock

import "time"

// Clock reports the current instant.
type Clock interface {
	Now() time.Time
}

// Func adapts a plain function to Clock.
type Func func() time.Time

// Now calls f.
func (f Func) Now() time.Time {
	return f()
}

// System returns a Clock backed by time.Now, truncated to microseconds so values
// survive a round trip through PostgreSQL timestamps unchanged.
func System() Clock {
	return Func(func() time.Time {
		return time.Now().UTC().Truncate(time.Microsecond)
	})
}

// Fixed returns a Clock frozen at t.
func Fixed(t time.Time) Clock {
	return Func(func() time.Time {
		return t
	})
}
