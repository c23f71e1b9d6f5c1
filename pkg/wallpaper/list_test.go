package wallpaper

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("img"), 0o644))
	}
}

func TestListFilter(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "1.png", "02.jpg", "10.jpeg", "note.txt", "cover.png", "a.jpg")

	got, err := List(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "1.png"),
		filepath.Join(dir, "02.jpg"),
		filepath.Join(dir, "10.jpeg"),
	}, got)
}

func TestListNumericOrder(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "10.png", "9.png", "100.png", "007.png", "0.png")

	got, err := List(dir)
	require.NoError(t, err)

	var names []string
	for _, p := range got {
		names = append(names, filepath.Base(p))
	}
	assert.Equal(t, []string{"0.png", "007.png", "9.png", "10.png", "100.png"}, names)
}

func TestListTiesByName(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "3.png", "3.jpg", "03.jpeg")

	got, err := List(dir)
	require.NoError(t, err)

	var names []string
	for _, p := range got {
		names = append(names, filepath.Base(p))
	}
	assert.Equal(t, []string{"03.jpeg", "3.jpg", "3.png"}, names)
}

func TestListSkips(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "1.PNG", "+2.png", "-3.png", " 4.png", "5.gif", ".png", "6.png.bak", "1e3.jpg", "7")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "8.png"), 0o755))

	got, err := List(dir)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestListNotRecursive(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "night")
	require.NoError(t, os.Mkdir(sub, 0o755))
	touch(t, sub, "1.png")
	touch(t, dir, "2.png")

	got, err := List(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "2.png")}, got)
}

func TestListRelativeDirIsAbsolute(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "1.png")
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	got, err := List(".")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, filepath.IsAbs(got[0]))
}

func TestListMissingDir(t *testing.T) {
	_, err := List(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestIsImageFile(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "cover.png", "notes.txt", "upper.JPG")

	assert.True(t, IsImageFile(filepath.Join(dir, "cover.png")))
	assert.False(t, IsImageFile(filepath.Join(dir, "notes.txt")))
	assert.False(t, IsImageFile(filepath.Join(dir, "upper.JPG")))
	assert.False(t, IsImageFile(filepath.Join(dir, "missing.png")))
	assert.False(t, IsImageFile(dir))
}

func TestOSError(t *testing.T) {
	err := osError("set", assert.AnError)
	var osErr *OSError
	require.ErrorAs(t, err, &osErr)
	assert.Equal(t, "set", osErr.Op)
	assert.Equal(t, 0, osErr.Code)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, "failed to set wallpaper: "+assert.AnError.Error(), err.Error())

	// already wrapped errors pass through
	assert.Same(t, osErr, osError("get", osErr))
	assert.NoError(t, osError("get", nil))

	coded := &OSError{Op: "get", Code: 5, Err: assert.AnError}
	assert.Contains(t, coded.Error(), "(code 5)")
}
