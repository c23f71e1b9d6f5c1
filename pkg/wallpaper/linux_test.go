//go:build linux
// +build linux

package wallpaper

import (
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeExec records invocations and runs echo with the given output instead.
func fakeExec(t *testing.T, output string) *[]string {
	t.Helper()
	var calls []string
	orig := execCommand
	execCommand = func(name string, args ...string) *exec.Cmd {
		calls = append(calls, strings.Join(append([]string{name}, args...), " "))
		return exec.Command("echo", output)
	}
	t.Cleanup(func() { execCommand = orig })
	return &calls
}

func setDesktop(t *testing.T, name string) {
	t.Helper()
	t.Setenv("XDG_CURRENT_DESKTOP", name)
	t.Setenv("DESKTOP_SESSION", "")
	t.Setenv("SWAYSOCK", "")
}

func TestDetectDesktop(t *testing.T) {
	tests := map[string]desktop{
		"GNOME":        desktopGNOME,
		"ubuntu:GNOME": desktopGNOME,
		"X-Cinnamon":   desktopGNOME,
		"KDE":          desktopKDE,
		"XFCE":         desktopXFCE,
		"sway":         desktopSway,
		"Hyprland":     desktopUnknown,
	}

	for env, want := range tests {
		t.Run(env, func(t *testing.T) {
			setDesktop(t, env)
			got, _ := detectDesktop()
			assert.Equal(t, want, got)
		})
	}
}

func TestLinuxSetGNOME(t *testing.T) {
	setDesktop(t, "GNOME")
	calls := fakeExec(t, "")

	require.NoError(t, getOS().Set("/themes/mojave/1 a.png"))
	require.Len(t, *calls, 2)
	assert.Equal(t, "gsettings set org.gnome.desktop.background picture-uri file:///themes/mojave/1%20a.png", (*calls)[0])
	assert.Contains(t, (*calls)[1], "picture-uri-dark")
}

func TestLinuxGetGNOME(t *testing.T) {
	setDesktop(t, "GNOME")
	fakeExec(t, "'file:///themes/mojave/1%20a.png'")

	got, err := getOS().Get()
	require.NoError(t, err)
	assert.Equal(t, "/themes/mojave/1 a.png", got)
}

func TestLinuxXFCE(t *testing.T) {
	setDesktop(t, "XFCE")
	calls := fakeExec(t, "/themes/mojave/2.png")

	got, err := getOS().Get()
	require.NoError(t, err)
	assert.Equal(t, "/themes/mojave/2.png", got)

	require.NoError(t, getOS().Set("/themes/mojave/3.png"))
	assert.Equal(t, "xfconf-query --channel xfce4-desktop --property "+xfceLastImage+" --set /themes/mojave/3.png", (*calls)[1])
}

func TestLinuxSway(t *testing.T) {
	setDesktop(t, "sway")
	calls := fakeExec(t, "")

	require.NoError(t, getOS().Set("/w/1.png"))
	assert.Equal(t, []string{"swaymsg output * bg /w/1.png fill"}, *calls)

	_, err := getOS().Get()
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestLinuxUnsupported(t *testing.T) {
	setDesktop(t, "Hyprland")

	err := getOS().Set("/w/1.png")
	var osErr *OSError
	require.ErrorAs(t, err, &osErr)
	assert.Equal(t, "set", osErr.Op)
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestLinuxCommandFailure(t *testing.T) {
	setDesktop(t, "GNOME")
	orig := execCommand
	execCommand = func(string, ...string) *exec.Cmd { return exec.Command("false") }
	t.Cleanup(func() { execCommand = orig })

	err := getOS().Set("/w/1.png")
	var osErr *OSError
	require.ErrorAs(t, err, &osErr)
	assert.Equal(t, 1, osErr.Code)
}

func TestParseGSettingsURI(t *testing.T) {
	got, err := parseGSettingsURI("'file:///usr/share/backgrounds/warty-final.png'\n")
	require.NoError(t, err)
	assert.Equal(t, "/usr/share/backgrounds/warty-final.png", got)

	_, err = parseGSettingsURI("''")
	assert.Error(t, err)
	_, err = parseGSettingsURI("'https://example.com/a.png'")
	assert.Error(t, err)
}

func TestParsePlasmaImage(t *testing.T) {
	cfg := `[Containments][1][Wallpaper][org.kde.image][General]
Image=file:///home/u/old.png

[Containments][7][Wallpaper][org.kde.image][General]
Image=file:///home/u/themes/4.png
`
	got, err := parsePlasmaImage([]byte(cfg))
	require.NoError(t, err)
	assert.Equal(t, "/home/u/themes/4.png", got)

	_, err = parsePlasmaImage([]byte("[General]\n"))
	assert.Error(t, err)
}
