// Package playlist holds the ordered track list and the playback cursor.
package playlist

import "errors"

var (
	// ErrEmptyPlaylist is returned by navigation on a playlist with no tracks.
	ErrEmptyPlaylist = errors.New("playlist is empty")
	// ErrInvalidIndex is returned when selecting an index outside the playlist.
	ErrInvalidIndex = errors.New("playlist index out of range")
)

// Direction is a cursor move for Advance.
type Direction int

const (
	Backward Direction = -1
	Forward  Direction = 1
)

// Playlist is an ordered collection of tracks with a current-track cursor.
//
// The cursor is -1 when the playlist is empty and a valid index otherwise.
// Tracks are only ever appended, so a valid cursor stays valid.
type Playlist struct {
	tracks  []Track
	current int
}

// New creates an empty playlist with no current track.
func New() *Playlist {
	return &Playlist{
		tracks:  make([]Track, 0),
		current: -1,
	}
}

// Append adds tracks to the end of the playlist.
// Returns true if the playlist was empty before the call and now has a
// current track at index 0, which the caller is expected to load.
func (p *Playlist) Append(tracks ...Track) bool {
	if len(tracks) == 0 {
		return false
	}
	wasEmpty := len(p.tracks) == 0
	p.tracks = append(p.tracks, tracks...)
	if wasEmpty {
		p.current = 0
	}
	return wasEmpty
}

// Current returns the current track, or nil if none.
func (p *Playlist) Current() *Track {
	return p.Track(p.current)
}

// CurrentIndex returns the cursor (-1 if none).
func (p *Playlist) CurrentIndex() int {
	return p.current
}

// Advance moves the cursor one step in dir, wrapping around both ends,
// and returns the new current track.
func (p *Playlist) Advance(dir Direction) (*Track, error) {
	n := len(p.tracks)
	if n == 0 {
		return nil, ErrEmptyPlaylist
	}
	p.current = wrap(p.current+int(dir), n)
	return p.Current(), nil
}

// Select moves the cursor to index and returns the track there.
// The cursor is left untouched if index is out of range.
func (p *Playlist) Select(index int) (*Track, error) {
	if index < 0 || index >= len(p.tracks) {
		return nil, ErrInvalidIndex
	}
	p.current = index
	return p.Current(), nil
}

// Track returns the track at the given index, or nil if out of bounds.
func (p *Playlist) Track(index int) *Track {
	if index < 0 || index >= len(p.tracks) {
		return nil
	}
	return &p.tracks[index]
}

// Tracks returns a copy of all tracks.
func (p *Playlist) Tracks() []Track {
	result := make([]Track, len(p.tracks))
	copy(result, p.tracks)
	return result
}

// Names returns the display names of all tracks in order.
func (p *Playlist) Names() []string {
	names := make([]string, len(p.tracks))
	for i, t := range p.tracks {
		names[i] = t.Name()
	}
	return names
}

// Len returns the number of tracks.
func (p *Playlist) Len() int {
	return len(p.tracks)
}

// IsEmpty returns true if the playlist has no tracks.
func (p *Playlist) IsEmpty() bool {
	return len(p.tracks) == 0
}

// wrap returns i mod n in [0, n).
func wrap(i, n int) int {
	return ((i % n) + n) % n
}
