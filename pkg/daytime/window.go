package daytime

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrEmptyDivision is returned when a window is divided into zero segments.
	ErrEmptyDivision = errors.New("cannot divide a window into zero segments")
	// ErrInvalidDuration is returned when a window would not have a positive duration.
	ErrInvalidDuration = errors.New("window duration must be positive")
)

// Window is the half-open interval [Start, Start+Duration).
type Window struct {
	Start    time.Time
	Duration time.Duration
}

// NewWindow anchors start to the date of anchor. The end rolls into the next
// day when start+duration passes midnight.
func NewWindow(anchor time.Time, start TimeOfDay, duration time.Duration) (Window, error) {
	if duration <= 0 {
		return Window{}, fmt.Errorf("%w: %s", ErrInvalidDuration, duration)
	}
	return Window{Start: start.On(anchor), Duration: duration}, nil
}

// NewWindowHours is NewWindow with a duration given in whole hours.
func NewWindowHours(anchor time.Time, start TimeOfDay, hours uint32) (Window, error) {
	return NewWindow(anchor, start, time.Duration(hours)*time.Hour)
}

// ActiveWindow anchors start to today's date (the date of now). If that
// window does not hold now but the same window anchored to the previous day
// does, the previous day's window is returned instead; this is what keeps a
// window such as 22:00 + 4h active at 01:00.
func ActiveWindow(now time.Time, start TimeOfDay, duration time.Duration) (Window, error) {
	w, err := NewWindow(now, start, duration)
	if err != nil {
		return Window{}, err
	}
	if w.Contains(now) {
		return w, nil
	}
	y, err := NewWindow(now.AddDate(0, 0, -1), start, duration)
	if err != nil {
		return Window{}, err
	}
	if y.Contains(now) {
		return y, nil
	}
	return w, nil
}

// End returns the first instant after the window.
func (w Window) End() time.Time {
	return w.Start.Add(w.Duration)
}

// Contains reports whether t lies in [Start, End).
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End())
}

// Divide splits w into n adjacent windows of equal whole-second length. The
// residual seconds of the integer division are added to the last segment, so
// the segments tile w exactly.
func (w Window) Divide(n int) ([]Window, error) {
	if n <= 0 {
		return nil, ErrEmptyDivision
	}
	if n == 1 {
		return []Window{w}, nil
	}

	step := time.Duration(int64(w.Duration/time.Second)/int64(n)) * time.Second
	end := w.End()

	segments := make([]Window, n)
	start := w.Start
	for i := 0; i < n-1; i++ {
		segments[i] = Window{Start: start, Duration: step}
		start = start.Add(step)
	}
	segments[n-1] = Window{Start: start, Duration: end.Sub(start)}
	return segments, nil
}

// String renders the window as "HH:MM:SS - HH:MM:SS".
func (w Window) String() string {
	return fmt.Sprintf("%s - %s", w.Start.Format("15:04:05"), w.End().Format("15:04:05"))
}
