package theme

import (
	"fmt"
	"strings"
)

// SelectionMode controls how a wallpaper is picked inside the active window.
// Only Sequential ordering is applied today; Random is accepted and kept so
// configs round-trip.
type SelectionMode int

const (
	// Random picks any wallpaper of the directory.
	Random SelectionMode = iota
	// Sequential walks the wallpapers in numeric order across the window.
	Sequential
)

func (m SelectionMode) String() string {
	switch m {
	case Random:
		return "random"
	case Sequential:
		return "sequential"
	default:
		return fmt.Sprintf("SelectionMode(%d)", int(m))
	}
}

// ParseSelectionMode parses "random" or "sequential".
func ParseSelectionMode(s string) (SelectionMode, error) {
	switch strings.ToLower(s) {
	case "random":
		return Random, nil
	case "sequential":
		return Sequential, nil
	default:
		return Random, fmt.Errorf("unknown selection mode %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m SelectionMode) MarshalText() ([]byte, error) {
	switch m {
	case Random, Sequential:
		return []byte(m.String()), nil
	default:
		return nil, fmt.Errorf("unknown selection mode %d", int(m))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *SelectionMode) UnmarshalText(b []byte) error {
	parsed, err := ParseSelectionMode(string(b))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
