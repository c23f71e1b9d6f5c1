//go:build darwin
// +build darwin

package wallpaper

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// macOSOS implements the OS interface for macOS.
type macOSOS struct{}

// getOS returns a new instance of the macOSOS struct.
func getOS() OS {
	return &macOSOS{}
}

// Get asks System Events for the picture of the current desktop.
func (m *macOSOS) Get() (string, error) {
	out, err := exec.Command("osascript", "-e",
		`tell application "System Events" to get picture of current desktop`).Output()
	if err != nil {
		return "", osError("get", fmt.Errorf("osascript: %w", err))
	}
	return strings.TrimSpace(string(out)), nil
}

// Set sets the picture of every desktop.
func (m *macOSOS) Set(imagePath string) error {
	script := `tell application "System Events" to tell every desktop to set picture to ` + strconv.Quote(imagePath)
	if err := exec.Command("osascript", "-e", script).Run(); err != nil {
		return osError("set", fmt.Errorf("osascript: %w", err))
	}
	return nil
}
