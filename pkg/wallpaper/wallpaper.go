// Package wallpaper lists the numbered wallpapers of a theme directory and
// talks to the operating system to read or install the desktop wallpaper.
package wallpaper

import (
	"errors"
	"fmt"
	"os/exec"
	"syscall"
)

// ErrUnsupported is returned when the desktop environment has no known way to
// get or set the wallpaper.
var ErrUnsupported = errors.New("unsupported desktop environment")

// OS is the platform wallpaper port.
type OS interface {
	// Get returns the absolute path of the installed wallpaper.
	Get() (string, error)
	// Set installs path as the wallpaper, persists it and notifies the desktop.
	Set(path string) error
}

// NewOS returns the wallpaper port of the running platform.
func NewOS() OS {
	return getOS()
}

// OSError is a failure of the platform wallpaper port.
type OSError struct {
	// Op is "get" or "set".
	Op string
	// Code is the platform error or exit code, 0 when there is none.
	Code int
	// Err is the underlying error.
	Err error
}

func (e *OSError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("failed to %s wallpaper (code %d): %v", e.Op, e.Code, e.Err)
	}
	return fmt.Sprintf("failed to %s wallpaper: %v", e.Op, e.Err)
}

func (e *OSError) Unwrap() error {
	return e.Err
}

// osError wraps err in an OSError, extracting a process exit code or system
// error number when err carries one.
func osError(op string, err error) error {
	if err == nil {
		return nil
	}
	var osErr *OSError
	if errors.As(err, &osErr) {
		return err
	}

	code := 0
	var exitErr *exec.ExitError
	var errno syscall.Errno
	switch {
	case errors.As(err, &exitErr):
		code = exitErr.ExitCode()
	case errors.As(err, &errno):
		code = int(errno)
	}
	return &OSError{Op: op, Code: code, Err: err}
}
