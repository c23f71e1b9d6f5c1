//go:build windows
// +build windows

package wallpaper

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32               = windows.NewLazySystemDLL("user32.dll")
	systemParametersInfo = user32.NewProc("SystemParametersInfoW")
)

// Windows API constants (defined manually)
const (
	SPIGetDeskWallpaper = 0x0073
	SPISetDeskWallpaper = 0x0014
	SPIFUpdateIniFile   = 0x01
	SPIFSendChange      = 0x02
)

// windowsOS implements the OS interface for Windows.
type windowsOS struct{}

// getOS returns a new instance of the windowsOS struct.
func getOS() OS {
	return &windowsOS{}
}

// Get returns the wallpaper path stored in the user profile.
func (w *windowsOS) Get() (string, error) {
	buf := make([]uint16, windows.MAX_PATH)
	ret, _, err := systemParametersInfo.Call(
		uintptr(SPIGetDeskWallpaper),
		uintptr(len(buf)),
		uintptr(unsafe.Pointer(&buf[0])),
		0,
	)
	if ret == 0 {
		return "", osError("get", err)
	}
	return windows.UTF16ToString(buf), nil
}

// Set sets the wallpaper, writes it to the user profile and broadcasts the change.
func (w *windowsOS) Set(imagePath string) error {
	imagePathUTF16, err := windows.UTF16PtrFromString(imagePath)
	if err != nil {
		return osError("set", err)
	}

	ret, _, err := systemParametersInfo.Call(
		uintptr(SPISetDeskWallpaper),
		uintptr(0),
		uintptr(unsafe.Pointer(imagePathUTF16)),
		uintptr(SPIFUpdateIniFile|SPIFSendChange),
	)
	if ret == 0 {
		return osError("set", err)
	}
	return nil
}
