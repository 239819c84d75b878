package notify

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/prosperity/internal/player"
)

type fakeNotifier struct {
	sent   []Notification
	nextID uint32
	err    error
}

func (f *fakeNotifier) Notify(n Notification) (uint32, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.sent = append(f.sent, n)
	f.nextID++
	return f.nextID, nil
}

func (f *fakeNotifier) Close(uint32) error { return nil }

func TestForTrack(t *testing.T) {
	tests := []struct {
		name string
		info player.TrackInfo
		body string
	}{
		{"artist and album", player.TrackInfo{Title: "T", Artist: "A", Album: "B"}, "A - B"},
		{"artist only", player.TrackInfo{Title: "T", Artist: "A"}, "A"},
		{"album only", player.TrackInfo{Title: "T", Album: "B"}, "B"},
		{"untagged", player.TrackInfo{Title: "song.mp3"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := ForTrack(&tt.info, 7)
			assert.Equal(t, tt.info.Title, n.Title)
			assert.Equal(t, tt.body, n.Body)
			assert.Equal(t, uint32(7), n.ReplacesID)
			assert.Equal(t, UrgencyLow, n.Urgency)
		})
	}
}

func TestForTrack_UsesAlbumArt(t *testing.T) {
	dir := t.TempDir()
	cover := filepath.Join(dir, "cover.png")
	require.NoError(t, os.WriteFile(cover, nil, 0o600))

	n := ForTrack(&player.TrackInfo{Path: filepath.Join(dir, "a.mp3"), Title: "a"}, 0)

	assert.Equal(t, cover, n.Icon)
}

func TestNowPlaying_ReplacesPrevious(t *testing.T) {
	f := &fakeNotifier{}
	np := NewNowPlaying(f)

	require.NoError(t, np.Track(&player.TrackInfo{Path: "/a.mp3", Title: "a"}))
	require.NoError(t, np.Track(&player.TrackInfo{Path: "/b.mp3", Title: "b"}))

	require.Len(t, f.sent, 2)
	assert.Equal(t, uint32(0), f.sent[0].ReplacesID)
	assert.Equal(t, uint32(1), f.sent[1].ReplacesID)
}

func TestNowPlaying_SkipsSameTrack(t *testing.T) {
	f := &fakeNotifier{}
	np := NewNowPlaying(f)

	require.NoError(t, np.Track(&player.TrackInfo{Path: "/a.mp3"}))
	require.NoError(t, np.Track(&player.TrackInfo{Path: "/a.mp3"}))

	assert.Len(t, f.sent, 1)
}

func TestNowPlaying_ErrorKeepsState(t *testing.T) {
	f := &fakeNotifier{err: errors.New("bus gone")}
	np := NewNowPlaying(f)

	err := np.Track(&player.TrackInfo{Path: "/a.mp3"})
	require.Error(t, err)

	f.err = nil
	require.NoError(t, np.Track(&player.TrackInfo{Path: "/a.mp3"}))
	assert.Len(t, f.sent, 1, "failed announcement should be retried")
}

func TestNowPlaying_Disabled(t *testing.T) {
	var np *NowPlaying
	require.NoError(t, np.Track(&player.TrackInfo{Path: "/a.mp3"}))

	np = NewNowPlaying(nil)
	require.NoError(t, np.Track(&player.TrackInfo{Path: "/a.mp3"}))
	require.NoError(t, NewNowPlaying(&fakeNotifier{}).Track(nil))
}
