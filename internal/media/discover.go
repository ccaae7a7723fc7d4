package media

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Discover lists the direct entries of dir, keeps files with a recognized
// extension, and returns them sorted lexicographically by path so slide
// order is deterministic. Subdirectories are not descended into. A
// directory with no recognized media yields an empty slice and a nil error.
func Discover(dir string) ([]File, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read media directory: %w", err)
	}

	var files []File
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		path := filepath.Join(dir, e.Name())
		kind, ok := Classify(path)
		if !ok {
			continue
		}
		files = append(files, File{Path: path, Kind: kind})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, nil
}
