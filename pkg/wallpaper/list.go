package wallpaper

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// ImageExtensions are the accepted wallpaper file extensions, without the dot.
// Matching is case-sensitive.
var ImageExtensions = []string{"jpg", "jpeg", "png"}

// HasImageExtension reports whether name ends in one of ImageExtensions.
func HasImageExtension(name string) bool {
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	for _, e := range ImageExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// IsImageFile reports whether path is a regular file with an image extension.
// Symlinks are followed.
func IsImageFile(path string) bool {
	if !HasImageExtension(path) {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// wallpaperNumber returns the number encoded in a wallpaper file name such as
// "042.png". ok is false for non-image or non-numeric names.
func wallpaperNumber(name string) (n uint64, ok bool) {
	if !HasImageExtension(name) {
		return 0, false
	}
	base := strings.TrimSuffix(name, filepath.Ext(name))
	if base == "" {
		return 0, false
	}
	n, err := strconv.ParseUint(base, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

type numberedFile struct {
	name   string
	number uint64
}

// List returns the absolute paths of the numbered wallpapers in dir, ordered
// by number and then by file name. Subdirectories are not searched. Entries
// that are not regular image files with a decimal base name are skipped.
func List(dir string) ([]string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", dir, err)
	}

	entries, err := os.ReadDir(absDir)
	if err != nil {
		return nil, fmt.Errorf("reading wallpaper directory: %w", err)
	}

	var files []numberedFile
	for _, entry := range entries {
		n, ok := wallpaperNumber(entry.Name())
		if !ok {
			continue
		}
		info, err := os.Stat(filepath.Join(absDir, entry.Name()))
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		files = append(files, numberedFile{name: entry.Name(), number: n})
	}

	sort.Slice(files, func(i, j int) bool {
		if files[i].number != files[j].number {
			return files[i].number < files[j].number
		}
		return files[i].name < files[j].name
	})

	paths := make([]string, len(files))
	for i, f := range files {
		paths[i] = filepath.Join(absDir, f.name)
	}
	return paths, nil
}
