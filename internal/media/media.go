// Package media enumerates and classifies slideshow inputs.
//
// A slideshow input is either a still image, held on screen for the slide
// duration, or a motion clip, trimmed to the slide duration. The kind is
// decided by file extension alone; files are never opened.
package media

import (
	"path/filepath"
	"strings"
)

// Kind classifies a media file by how ffmpeg must read it.
type Kind int

const (
	KindStill  Kind = iota // Single frame looped for the slide duration.
	KindMotion             // Time-based clip.
)

// String returns "still" or "motion".
func (k Kind) String() string {
	if k == KindMotion {
		return "motion"
	}
	return "still"
}

// File is one slideshow input.
type File struct {
	Path string
	Kind Kind
}

// Recognized extensions (lowercase, with leading dot).
var extensions = map[string]Kind{
	".jpg":  KindStill,
	".jpeg": KindStill,
	".png":  KindStill,
	".mp4":  KindMotion,
	".mov":  KindMotion,
	".avi":  KindMotion,
}

// Classify returns the kind for path's extension, matched case-insensitively.
// ok is false when the extension is not a recognized media type.
func Classify(path string) (kind Kind, ok bool) {
	kind, ok = extensions[strings.ToLower(filepath.Ext(path))]
	return kind, ok
}

// Counts returns the number of still and motion files in files.
func Counts(files []File) (stills, motions int) {
	for _, f := range files {
		if f.Kind == KindMotion {
			motions++
		} else {
			stills++
		}
	}
	return stills, motions
}
