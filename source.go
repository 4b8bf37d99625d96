package printgrid

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Source resolves the ordered list of image files to work on.
type Source interface {
	Files() ([]string, error)
}

// SupportedImage reports whether a file extension such as ".png" is one of
// the image formats that can be decoded.
func SupportedImage(ext string) bool {
	switch strings.ToLower(ext) {
	case ".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff", ".webp":
		return true
	default:
		return false
	}
}

// Glob is a Source matching a filepath.Match pattern such as
// "photos/*.jpg". Matches are sorted lexicographically.
type Glob string

// Files implements Source.
func (g Glob) Files() ([]string, error) {
	files, err := filepath.Glob(string(g))
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// Directory is a Source listing the supported images in a directory, sorted
// by name. Hidden files and subdirectories are ignored.
type Directory string

// Files implements Source.
func (d Directory) Files() ([]string, error) {
	f, err := os.Open(string(d))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		return nil, errors.New("not a directory")
	}

	entries, err := f.ReadDir(0)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		name := entry.Name()
		if name[0] == '.' || !entry.Type().IsRegular() || !SupportedImage(filepath.Ext(name)) {
			continue
		}
		files = append(files, filepath.Join(string(d), name))
	}
	sort.Strings(files)

	return files, nil
}

// List is a Source of an explicit list of files, used in the given order.
type List []string

// Files implements Source.
func (l List) Files() ([]string, error) {
	return append([]string(nil), l...), nil
}
