//go:build linux
// +build linux

package wallpaper

import (
	"bufio"
	"bytes"
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// execCommand is swapped in tests.
var execCommand = exec.Command

const xfceLastImage = "/backdrop/screen0/monitor0/workspace0/last-image"

// linuxOS implements the OS interface for Linux, supporting X11 and some
// Wayland compositors.
type linuxOS struct{}

// getOS returns a new instance of the linuxOS struct.
func getOS() OS {
	return &linuxOS{}
}

type desktop int

const (
	desktopUnknown desktop = iota
	desktopGNOME
	desktopKDE
	desktopXFCE
	desktopSway
)

// detectDesktop maps the session environment to a known desktop.
func detectDesktop() (desktop, string) {
	desktopEnv := os.Getenv("XDG_CURRENT_DESKTOP")
	if desktopEnv == "" {
		desktopEnv = os.Getenv("DESKTOP_SESSION")
	}
	desktopEnv = strings.ToLower(desktopEnv)

	switch {
	case strings.Contains(desktopEnv, "gnome") || strings.Contains(desktopEnv, "unity") ||
		strings.Contains(desktopEnv, "cinnamon") || strings.Contains(desktopEnv, "mutter"):
		return desktopGNOME, desktopEnv
	case strings.Contains(desktopEnv, "kde"):
		return desktopKDE, desktopEnv
	case strings.Contains(desktopEnv, "xfce"):
		return desktopXFCE, desktopEnv
	case strings.Contains(desktopEnv, "sway") || os.Getenv("SWAYSOCK") != "":
		return desktopSway, desktopEnv
	default:
		return desktopUnknown, desktopEnv
	}
}

// Get returns the current wallpaper of the running desktop.
func (l *linuxOS) Get() (string, error) {
	d, name := detectDesktop()
	var (
		path string
		err  error
	)
	switch d {
	case desktopGNOME:
		path, err = l.getWallpaperGNOME()
	case desktopKDE:
		path, err = l.getWallpaperKDE()
	case desktopXFCE:
		path, err = l.getWallpaperXFCE()
	default:
		err = fmt.Errorf("%w: %q", ErrUnsupported, name)
	}
	if err != nil {
		return "", osError("get", err)
	}
	return path, nil
}

// Set installs imagePath on the running desktop.
func (l *linuxOS) Set(imagePath string) error {
	d, name := detectDesktop()
	var err error
	switch d {
	case desktopGNOME:
		err = l.setWallpaperGNOME(imagePath)
	case desktopKDE:
		err = l.setWallpaperKDE(imagePath)
	case desktopXFCE:
		err = l.setWallpaperXFCE(imagePath)
	case desktopSway:
		err = l.setWallpaperSway(imagePath)
	default:
		err = fmt.Errorf("%w: %q", ErrUnsupported, name)
	}
	return osError("set", err)
}

// getWallpaperGNOME reads the picture-uri setting.
func (l *linuxOS) getWallpaperGNOME() (string, error) {
	out, err := execCommand("gsettings", "get", "org.gnome.desktop.background", "picture-uri").Output()
	if err != nil {
		return "", fmt.Errorf("gsettings get: %w", err)
	}
	return parseGSettingsURI(string(out))
}

// setWallpaperGNOME sets the wallpaper for GNOME-based desktop environments.
func (l *linuxOS) setWallpaperGNOME(imagePath string) error {
	uri := fileURI(imagePath)
	if err := execCommand("gsettings", "set", "org.gnome.desktop.background", "picture-uri", uri).Run(); err != nil {
		return fmt.Errorf("gsettings set: %w", err)
	}
	// picture-uri-dark only exists from GNOME 42 on
	_ = execCommand("gsettings", "set", "org.gnome.desktop.background", "picture-uri-dark", uri).Run()
	return nil
}

// getWallpaperKDE reads the image of the last desktop containment.
func (l *linuxOS) getWallpaperKDE() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(filepath.Join(home, ".config", "plasma-org.kde.plasma.desktop-appletsrc"))
	if err != nil {
		return "", fmt.Errorf("reading plasma config: %w", err)
	}
	return parsePlasmaImage(data)
}

// setWallpaperKDE sets the wallpaper for KDE through the plasmashell scripting API.
func (l *linuxOS) setWallpaperKDE(imagePath string) error {
	script := fmt.Sprintf(`var allDesktops = desktops();
for (i=0;i<allDesktops.length;i++) {
    d = allDesktops[i];
    d.wallpaperPlugin = "org.kde.image";
    d.currentConfigGroup = Array("Wallpaper", "org.kde.image", "General");
    d.writeConfig("Image", %q);
}`, fileURI(imagePath))

	cmd := execCommand("dbus-send", "--session", "--type=method_call",
		"--dest=org.kde.plasmashell", "/PlasmaShell",
		"org.kde.PlasmaShell.evaluateScript", "string:"+script)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("plasmashell evaluateScript: %w", err)
	}
	return nil
}

// getWallpaperXFCE reads the last-image property of the first workspace.
func (l *linuxOS) getWallpaperXFCE() (string, error) {
	out, err := execCommand("xfconf-query", "--channel", "xfce4-desktop", "--property", xfceLastImage).Output()
	if err != nil {
		return "", fmt.Errorf("xfconf-query: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// setWallpaperXFCE sets the wallpaper for XFCE.
func (l *linuxOS) setWallpaperXFCE(imagePath string) error {
	cmd := execCommand("xfconf-query",
		"--channel", "xfce4-desktop",
		"--property", xfceLastImage,
		"--set", imagePath)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("xfconf-query: %w", err)
	}
	return nil
}

// setWallpaperSway sets the background of every output through swaymsg.
func (l *linuxOS) setWallpaperSway(imagePath string) error {
	if err := execCommand("swaymsg", "output", "*", "bg", imagePath, "fill").Run(); err != nil {
		return fmt.Errorf("swaymsg: %w", err)
	}
	return nil
}

// fileURI returns the file:// URI of an absolute path.
func fileURI(path string) string {
	return (&url.URL{Scheme: "file", Path: path}).String()
}

// parseGSettingsURI turns gsettings output such as 'file:///a%20b.png' into a path.
func parseGSettingsURI(out string) (string, error) {
	raw := strings.Trim(strings.TrimSpace(out), `'"`)
	if raw == "" {
		return "", fmt.Errorf("no wallpaper configured")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parsing wallpaper uri %q: %w", raw, err)
	}
	if u.Scheme != "" && u.Scheme != "file" {
		return "", fmt.Errorf("wallpaper uri %q is not a local file", raw)
	}
	return u.Path, nil
}

// parsePlasmaImage returns the last Image= entry of a plasma applets config.
func parsePlasmaImage(data []byte) (string, error) {
	var image string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if v, ok := strings.CutPrefix(line, "Image="); ok {
			image = v
		}
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	if image == "" {
		return "", fmt.Errorf("no wallpaper image in plasma config")
	}
	if strings.HasPrefix(image, "file://") {
		return parseGSettingsURI(image)
	}
	return image, nil
}
