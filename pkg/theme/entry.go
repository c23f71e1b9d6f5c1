package theme

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/dixieflatline76/dayshift/pkg/daytime"
	"github.com/goccy/go-json"
)

// MaxDurationHours is the longest window an entry may declare.
const MaxDurationHours = 48

// DefaultDurationHours is the window length used when an entry omits it.
const DefaultDurationHours = 24

// Entry is one window of a theme config.
type Entry struct {
	// Start is the local time-of-day the window opens.
	Start daytime.TimeOfDay
	// Duration is the window length. It is declared in whole hours, or derived
	// from a legacy "end" field.
	Duration time.Duration
	// Path is the wallpaper directory, absolute or relative to the theme.
	Path string
	// Selection is the wallpaper selection mode.
	Selection SelectionMode
}

// DefaultEntry is a full day starting at midnight, using the theme directory itself.
func DefaultEntry() Entry {
	return Entry{
		Start:     daytime.Midnight,
		Duration:  DefaultDurationHours * time.Hour,
		Selection: Random,
	}
}

var errNullEntry = errors.New("entry must be an object, got null")

// entryJSON is the on-disk shape of an Entry.
type entryJSON struct {
	Start     *daytime.TimeOfDay `json:"start,omitempty"`
	Duration  *uint32            `json:"duration,omitempty"`
	End       *daytime.TimeOfDay `json:"end,omitempty"`
	Path      string             `json:"path,omitempty"`
	Selection *SelectionMode     `json:"selection,omitempty"`
}

// UnmarshalJSON decodes an entry, filling defaults for missing fields.
// An entry with "end" but no "duration" gets the time from start to end,
// rolling over midnight when end is not after start.
func (e *Entry) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		return errNullEntry
	}

	var raw entryJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	entry := DefaultEntry()
	if raw.Start != nil {
		entry.Start = *raw.Start
	}
	entry.Path = raw.Path
	if raw.Selection != nil {
		entry.Selection = *raw.Selection
	}

	switch {
	case raw.Duration != nil:
		if *raw.Duration == 0 || *raw.Duration > MaxDurationHours {
			return fmt.Errorf("duration must be between 1 and %d hours, got %d", MaxDurationHours, *raw.Duration)
		}
		entry.Duration = time.Duration(*raw.Duration) * time.Hour
	case raw.End != nil:
		entry.Duration = entry.Start.Until(*raw.End)
	}

	*e = entry
	return nil
}

// MarshalJSON encodes the entry. Whole-hour durations are written as
// "duration", anything else as "end".
func (e Entry) MarshalJSON() ([]byte, error) {
	start := e.Start
	selection := e.Selection
	raw := entryJSON{
		Start:     &start,
		Path:      e.Path,
		Selection: &selection,
	}
	if e.Duration%time.Hour == 0 {
		hours := uint32(e.Duration / time.Hour)
		raw.Duration = &hours
	} else {
		end := daytime.TimeOfDay((int64(e.Start.Offset()+e.Duration) / int64(time.Second)) % (24 * 60 * 60))
		raw.End = &end
	}
	return json.Marshal(raw)
}

// Window anchors the entry for now. See daytime.ActiveWindow.
func (e Entry) Window(now time.Time) (daytime.Window, error) {
	return daytime.ActiveWindow(now, e.Start, e.Duration)
}
