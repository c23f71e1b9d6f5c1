// Package daytime provides the wall-clock primitives used to split a day into
// wallpaper segments: time-of-day values, anchored windows, equal division of a
// window and resolution of the segment that holds the current instant.
package daytime

import "time"

// Clock is the source of "now". It is read once per invocation.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the local wall clock at one second resolution.
type SystemClock struct{}

// Now returns the current local time truncated to the second.
func (SystemClock) Now() time.Time {
	return Now()
}

// FixedClock always reports the same instant.
type FixedClock time.Time

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time {
	return time.Time(c)
}

// Now reads the local wall clock once, at one second resolution.
func Now() time.Time {
	return time.Now().Truncate(time.Second)
}
