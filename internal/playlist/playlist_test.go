//nolint:goconst // test file with repeated string literals
package playlist

import (
	"errors"
	"testing"
)

func threeTracks() []Track {
	return FromPaths("/music/a.mp3", "/music/b.mp3", "/music/c.wav")
}

func TestNew(t *testing.T) {
	p := New()

	if p.Len() != 0 {
		t.Errorf("Len() = %d, want 0", p.Len())
	}
	if p.CurrentIndex() != -1 {
		t.Errorf("CurrentIndex() = %d, want -1", p.CurrentIndex())
	}
	if p.Current() != nil {
		t.Error("Current() should be nil for empty playlist")
	}
	if p.Tracks() == nil {
		t.Error("Tracks() should return empty slice, not nil")
	}
}

func TestAppend_EmptySetsCursor(t *testing.T) {
	p := New()

	first := p.Append(threeTracks()...)

	if !first {
		t.Error("Append on empty playlist should report first load")
	}
	if p.CurrentIndex() != 0 {
		t.Errorf("CurrentIndex() = %d, want 0", p.CurrentIndex())
	}
	if p.Len() != 3 {
		t.Errorf("Len() = %d, want 3", p.Len())
	}
}

func TestAppend_NonEmptyKeepsCursor(t *testing.T) {
	p := New()
	p.Append(threeTracks()...)
	if _, err := p.Select(2); err != nil {
		t.Fatalf("Select(2) error: %v", err)
	}

	first := p.Append(NewTrack("/music/d.mp3"))

	if first {
		t.Error("Append on non-empty playlist should not report first load")
	}
	if p.CurrentIndex() != 2 {
		t.Errorf("CurrentIndex() = %d, want 2 (unchanged)", p.CurrentIndex())
	}
	if p.Len() != 4 {
		t.Errorf("Len() = %d, want 4", p.Len())
	}
}

func TestAppend_NothingIsNoop(t *testing.T) {
	p := New()

	if p.Append() {
		t.Error("Append() with no tracks should not report first load")
	}
	if p.CurrentIndex() != -1 {
		t.Errorf("CurrentIndex() = %d, want -1", p.CurrentIndex())
	}
}

func TestAppend_DuplicatesPreserved(t *testing.T) {
	p := New()
	p.Append(NewTrack("/a.mp3"), NewTrack("/a.mp3"))

	if p.Len() != 2 {
		t.Errorf("Len() = %d, want 2", p.Len())
	}
}

func TestAdvance_ForwardWrapsAround(t *testing.T) {
	for n := 1; n <= 5; n++ {
		p := New()
		for i := range n {
			p.Append(NewTrack("/t" + string(rune('a'+i)) + ".mp3"))
		}
		start := p.CurrentIndex()

		for range n {
			if _, err := p.Advance(Forward); err != nil {
				t.Fatalf("Advance(Forward) error: %v", err)
			}
		}

		if p.CurrentIndex() != start {
			t.Errorf("len %d: after %d forward steps cursor = %d, want %d", n, n, p.CurrentIndex(), start)
		}
	}
}

func TestAdvance_BackwardFromZero(t *testing.T) {
	p := New()
	p.Append(threeTracks()...)

	track, err := p.Advance(Backward)
	if err != nil {
		t.Fatalf("Advance(Backward) error: %v", err)
	}

	if p.CurrentIndex() != 2 {
		t.Errorf("CurrentIndex() = %d, want 2", p.CurrentIndex())
	}
	if track == nil || track.Path != "/music/c.wav" {
		t.Errorf("Advance returned %v, want /music/c.wav", track)
	}
}

func TestAdvance_Forward(t *testing.T) {
	p := New()
	p.Append(threeTracks()...)

	track, _ := p.Advance(Forward)

	if p.CurrentIndex() != 1 {
		t.Errorf("CurrentIndex() = %d, want 1", p.CurrentIndex())
	}
	if track == nil || track.Path != "/music/b.mp3" {
		t.Errorf("Advance returned %v, want /music/b.mp3", track)
	}
}

func TestAdvance_Empty(t *testing.T) {
	p := New()

	track, err := p.Advance(Forward)

	if !errors.Is(err, ErrEmptyPlaylist) {
		t.Errorf("err = %v, want ErrEmptyPlaylist", err)
	}
	if track != nil {
		t.Error("Advance on empty playlist should return nil")
	}
	if p.CurrentIndex() != -1 {
		t.Errorf("CurrentIndex() = %d, want -1", p.CurrentIndex())
	}
}

func TestSelect(t *testing.T) {
	tests := []struct {
		name    string
		index   int
		wantErr error
		want    int
	}{
		{"first", 0, nil, 0},
		{"middle", 1, nil, 1},
		{"last", 2, nil, 2},
		{"negative", -1, ErrInvalidIndex, 0},
		{"past end", 3, ErrInvalidIndex, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New()
			p.Append(threeTracks()...)

			track, err := p.Select(tt.index)

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
			if p.CurrentIndex() != tt.want {
				t.Errorf("CurrentIndex() = %d, want %d", p.CurrentIndex(), tt.want)
			}
			if tt.wantErr == nil && (track == nil || track.Path != p.Current().Path) {
				t.Errorf("Select returned %v, want current track", track)
			}
		})
	}
}

func TestTracks_ReturnsCopy(t *testing.T) {
	p := New()
	p.Append(threeTracks()...)

	tracks := p.Tracks()
	tracks[0].Path = "/changed.mp3"

	if p.Track(0).Path != "/music/a.mp3" {
		t.Error("modifying Tracks() result should not affect playlist")
	}
}

func TestNames(t *testing.T) {
	p := New()
	p.Append(threeTracks()...)

	names := p.Names()

	want := []string{"a.mp3", "b.mp3", "c.wav"}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestTrack_Name(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/music/artist/song.mp3", "song.mp3"},
		{"song.wav", "song.wav"},
		{"/music/with space.flac", "with space.flac"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := NewTrack(tt.path).Name(); got != tt.want {
				t.Errorf("Name() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		i, n, want int
	}{
		{0, 3, 0},
		{3, 3, 0},
		{-1, 3, 2},
		{-4, 3, 2},
		{5, 1, 0},
	}

	for _, tt := range tests {
		if got := wrap(tt.i, tt.n); got != tt.want {
			t.Errorf("wrap(%d, %d) = %d, want %d", tt.i, tt.n, got, tt.want)
		}
	}
}
