// Package shift resolves a path argument to the wallpaper that should be on
// screen now and hands it to the OS wallpaper port.
package shift

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dixieflatline76/dayshift/pkg/daytime"
	"github.com/dixieflatline76/dayshift/pkg/theme"
	"github.com/dixieflatline76/dayshift/pkg/wallpaper"
	"github.com/dixieflatline76/dayshift/util/log"
)

var (
	// ErrPathMissing is returned when the path argument does not exist.
	ErrPathMissing = errors.New("path does not exist")
	// ErrNotADirectory is returned when the path is neither an image nor a directory.
	ErrNotADirectory = errors.New("path is neither an image file nor a directory")
	// ErrNoImages is returned when a theme directory holds no numbered wallpapers.
	ErrNoImages = errors.New("no wallpapers found")
)

// Shifter picks and installs wallpapers.
type Shifter struct {
	os    wallpaper.OS
	clock daytime.Clock
}

// New returns a Shifter using the given OS port and clock.
func New(osPort wallpaper.OS, clock daytime.Clock) *Shifter {
	if clock == nil {
		clock = daytime.SystemClock{}
	}
	return &Shifter{os: osPort, clock: clock}
}

// Choice is the wallpaper resolved for a path.
type Choice struct {
	// Path is the absolute path of the chosen image.
	Path string
	// Theme is the active theme entry; nil when the argument was an image.
	Theme *theme.Active
	// Segment is the slice of the theme window the image covers.
	Segment daytime.Window
	// Index is the position of Path among Count wallpapers.
	Index int
	Count int
}

// Message returns the user-facing confirmation for c.
func (c Choice) Message(dryRun bool) string {
	prefix := "Wallpaper set to: "
	if dryRun {
		prefix = "Would set wallpaper to: "
	}
	if c.Theme == nil {
		return prefix + c.Path
	}
	return fmt.Sprintf("%s%s for (%s)", prefix, c.Path, c.Segment)
}

// Resolve returns the wallpaper that path selects now. A path naming an image is
// chosen as is; a directory is loaded as a theme.
func (s *Shifter) Resolve(path string) (Choice, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Choice{}, fmt.Errorf("%w: %s", ErrPathMissing, path)
		}
		return Choice{}, fmt.Errorf("checking %s: %w", path, err)
	}

	switch {
	case wallpaper.IsImageFile(path):
		abs, err := filepath.Abs(path)
		if err != nil {
			return Choice{}, fmt.Errorf("resolving %s: %w", path, err)
		}
		return Choice{Path: abs, Count: 1}, nil
	case info.IsDir():
		return s.resolveTheme(path)
	default:
		return Choice{}, fmt.Errorf("%w: %s", ErrNotADirectory, path)
	}
}

func (s *Shifter) resolveTheme(dir string) (Choice, error) {
	now := s.clock.Now()

	active, err := theme.Load(dir, now)
	if err != nil {
		return Choice{}, err
	}

	images, err := wallpaper.List(active.Dir)
	if err != nil {
		return Choice{}, err
	}
	if len(images) == 0 {
		return Choice{}, fmt.Errorf("%w in %s", ErrNoImages, active.Dir)
	}

	segments, err := active.Window.Divide(len(images))
	if err != nil {
		return Choice{}, err
	}
	i := daytime.CurrentIndex(segments, now)
	log.Debugf("Segment %d of %d (%s) at %s", i+1, len(segments), segments[i], daytime.TimeOfDayOf(now))

	return Choice{
		Path:    images[i],
		Theme:   &active,
		Segment: segments[i],
		Index:   i,
		Count:   len(images),
	}, nil
}

// Set resolves path and installs the result, or only reports it when dryRun
// is set. It returns the confirmation message.
func (s *Shifter) Set(path string, dryRun bool) (string, error) {
	choice, err := s.Resolve(path)
	if err != nil {
		return "", err
	}
	if !dryRun {
		if err := s.os.Set(choice.Path); err != nil {
			return "", err
		}
		log.Debugf("Wallpaper set to %s", choice.Path)
	}
	return choice.Message(dryRun), nil
}

// Get returns the path of the installed wallpaper.
func (s *Shifter) Get() (string, error) {
	return s.os.Get()
}
