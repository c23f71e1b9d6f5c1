// Package theme loads a theme directory's dayshift.config.json and resolves
// which of its windows is active and where that window's wallpapers live.
package theme

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/dixieflatline76/dayshift/config"
	"github.com/dixieflatline76/dayshift/pkg/daytime"
	"github.com/dixieflatline76/dayshift/util/log"
	"github.com/goccy/go-json"
)

// ErrConfigParse is returned when a theme config exists but is not a valid
// list of entries.
var ErrConfigParse = errors.New("invalid theme config")

// Active is the theme entry selected for an instant.
type Active struct {
	// Entry is the selected config entry.
	Entry Entry
	// Index is the entry's position in the config; 0 for an implicit default.
	Index int
	// Window is the entry's window anchored around now.
	Window daytime.Window
	// Dir is the resolved wallpaper directory.
	Dir string
}

// ReadConfig reads the theme config of dir. A missing or empty file yields an
// empty list.
func ReadConfig(dir string) ([]Entry, error) {
	path := filepath.Join(dir, config.ThemeConfigFile)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debugf("No theme config at %s, using defaults", path)
			return nil, nil
		}
		return nil, fmt.Errorf("reading theme config %s: %w", path, err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes a theme config document. Empty input is treated as "[]";
// anything else must be an array of entry objects.
func ParseConfig(data []byte) ([]Entry, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, nil
	}

	if data[0] != '[' {
		return nil, fmt.Errorf("%w: top level must be an array", ErrConfigParse)
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigParse, err)
	}

	entries := make([]Entry, len(raw))
	for i, item := range raw {
		if err := entries[i].UnmarshalJSON(item); err != nil {
			return nil, fmt.Errorf("%w: entry %d: %w", ErrConfigParse, i, err)
		}
	}
	return entries, nil
}

// Select returns the index and window of the entry active at now. Each entry
// is anchored around now and the list is resolved with daytime.CurrentIndex,
// so the first entry holding now wins, and when none does the last entry that
// has ended is chosen, or the first if none has started. An empty list selects
// DefaultEntry.
func Select(entries []Entry, now time.Time) (int, daytime.Window, error) {
	if len(entries) == 0 {
		entries = []Entry{DefaultEntry()}
	}

	windows := make([]daytime.Window, len(entries))
	for i, e := range entries {
		w, err := e.Window(now)
		if err != nil {
			return 0, daytime.Window{}, fmt.Errorf("%w: entry %d: %v", ErrConfigParse, i, err)
		}
		windows[i] = w
	}

	i := daytime.CurrentIndex(windows, now)
	return i, windows[i], nil
}

// ResolveDir returns the wallpaper directory of e for the theme at dir.
func (e Entry) ResolveDir(dir string) string {
	switch {
	case e.Path == "":
		return dir
	case filepath.IsAbs(e.Path):
		return e.Path
	default:
		return filepath.Join(dir, e.Path)
	}
}

// Load reads the theme at dir and resolves the entry active at now.
func Load(dir string, now time.Time) (Active, error) {
	entries, err := ReadConfig(dir)
	if err != nil {
		return Active{}, err
	}

	i, window, err := Select(entries, now)
	if err != nil {
		return Active{}, err
	}

	entry := DefaultEntry()
	if len(entries) > 0 {
		entry = entries[i]
	}

	active := Active{
		Entry:  entry,
		Index:  i,
		Window: window,
		Dir:    entry.ResolveDir(dir),
	}
	log.Debugf("Theme %s: entry %d (%s, %s) active, wallpapers in %s", dir, i, window, entry.Selection, active.Dir)
	return active, nil
}
