package daytime

import "time"

// CurrentIndex returns the index of the segment holding now. Segments are
// expected sorted and non-overlapping, as produced by Window.Divide.
//
// When no segment holds now, the last index is returned if now is at or past
// the end of the last segment, and 0 otherwise (including the empty list).
func CurrentIndex(segments []Window, now time.Time) int {
	for i, s := range segments {
		if s.Contains(now) {
			return i
		}
	}
	if n := len(segments); n > 0 && !now.Before(segments[n-1].End()) {
		return n - 1
	}
	return 0
}

// Current returns the segment selected by CurrentIndex. ok is false only for an
// empty list.
func Current(segments []Window, now time.Time) (w Window, ok bool) {
	if len(segments) == 0 {
		return Window{}, false
	}
	return segments[CurrentIndex(segments, now)], true
}
