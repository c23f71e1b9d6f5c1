//go:build !linux && !windows && !darwin

package wallpaper

import (
	"fmt"
	"runtime"
)

// unsupportedOS reports every call as unsupported.
type unsupportedOS struct{}

func getOS() OS {
	return unsupportedOS{}
}

func (unsupportedOS) Get() (string, error) {
	return "", &OSError{Op: "get", Err: fmt.Errorf("%w: %s", ErrUnsupported, runtime.GOOS)}
}

func (unsupportedOS) Set(string) error {
	return &OSError{Op: "set", Err: fmt.Errorf("%w: %s", ErrUnsupported, runtime.GOOS)}
}
