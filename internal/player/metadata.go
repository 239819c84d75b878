package player

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/dhowden/tag"
)

// TrackInfo is what the engine knows about the loaded media.
type TrackInfo struct {
	Path       string
	Title      string
	Artist     string
	Album      string
	Year       int
	Format     string
	SampleRate int
	Duration   time.Duration
}

// ReadTrackInfo reads tag metadata from the file at path.
// Title falls back to the file name when the tag has none.
func ReadTrackInfo(path string) (*TrackInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(m.Title())
	if title == "" {
		title = filepath.Base(path)
	}

	return &TrackInfo{
		Path:   path,
		Title:  title,
		Artist: strings.TrimSpace(m.Artist()),
		Album:  strings.TrimSpace(m.Album()),
		Year:   m.Year(),
		Format: string(m.FileType()),
	}, nil
}

func fallbackTrackInfo(path string) *TrackInfo {
	return &TrackInfo{
		Path:   path,
		Title:  filepath.Base(path),
		Format: strings.ToUpper(strings.TrimPrefix(filepath.Ext(path), ".")),
	}
}

// Summary returns "Artist - Title" when an artist is known, otherwise the title.
func (i *TrackInfo) Summary() string {
	if i == nil {
		return ""
	}
	if i.Artist == "" {
		return i.Title
	}
	return i.Artist + " - " + i.Title
}

// IsAudioFile reports whether path has one of the given extensions.
// Matching is case-insensitive. A nil list means SupportedExtensions.
func IsAudioFile(path string, exts []string) bool {
	if exts == nil {
		exts = SupportedExtensions
	}
	ext := strings.ToLower(filepath.Ext(path))
	return ext != "" && slices.ContainsFunc(exts, func(e string) bool {
		return strings.EqualFold(e, ext)
	})
}
