package playlist

import "path/filepath"

// Track is a reference to one audio file.
type Track struct {
	Path string // file path for playback
}

// NewTrack creates a track for the given path.
func NewTrack(path string) Track {
	return Track{Path: path}
}

// Name returns the display name of the track (the base name of its path).
func (t Track) Name() string {
	return filepath.Base(t.Path)
}

// FromPaths converts file paths to tracks, preserving order.
func FromPaths(paths ...string) []Track {
	tracks := make([]Track, len(paths))
	for i, p := range paths {
		tracks[i] = NewTrack(p)
	}
	return tracks
}
