package mpris

import (
	"math"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/quarckster/go-mpris-server/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/prosperity/internal/player"
	"github.com/llehouerou/prosperity/internal/transport"
)

type recorder struct {
	mu     sync.Mutex
	inputs []transport.Input
}

func (r *recorder) send(in transport.Input) {
	r.mu.Lock()
	r.inputs = append(r.inputs, in)
	r.mu.Unlock()
}

func TestBridge_InitialSnapshot(t *testing.T) {
	b := newBridge(nil)

	v := b.snapshot()
	assert.Equal(t, -1, v.Current)
	assert.Equal(t, transport.NoTrackStatus, v.Status)
	assert.False(t, v.HasTracks())
}

func TestBridge_PublishReplacesSnapshot(t *testing.T) {
	b := newBridge(nil)

	b.Publish(transport.View{Status: "Loaded: a.mp3", Tracks: []string{"a.mp3"}, Current: 0})

	assert.Equal(t, "Loaded: a.mp3", b.snapshot().Status)
}

func TestBridge_ConcurrentPublishAndRead(t *testing.T) {
	b := newBridge(nil)
	var wg sync.WaitGroup

	for i := range 50 {
		wg.Go(func() {
			b.Publish(transport.View{Position: time.Duration(i) * time.Second})
		})
		wg.Go(func() {
			_ = b.snapshot()
		})
	}
	wg.Wait()
}

func TestBridge_DispatchForwards(t *testing.T) {
	rec := &recorder{}
	b := newBridge(rec.send)

	b.dispatch(transport.Next{})
	b.dispatch(transport.SeekRelative{Delta: time.Second})

	assert.Equal(t, []transport.Input{
		transport.Next{},
		transport.SeekRelative{Delta: time.Second},
	}, rec.inputs)
}

func TestBridge_DispatchWithoutSender(t *testing.T) {
	b := newBridge(nil)
	assert.NotPanics(t, func() { b.dispatch(transport.Play{}) })
}

func TestPlayPause(t *testing.T) {
	tests := []struct {
		state player.State
		want  transport.Input
	}{
		{player.Playing, transport.Pause{}},
		{player.Paused, transport.Play{}},
		{player.Stopped, transport.Play{}},
		{player.Loaded, transport.Play{}},
		{player.Idle, transport.Play{}},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, playPause(tt.state))
		})
	}
}

func TestVolumeLevel(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{0, 0},
		{0.5, 50},
		{0.256, 26},
		{1, 100},
		{1.7, 100},
		{-0.2, 0},
		{math.NaN(), 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, volumeLevel(tt.in), "volumeLevel(%v)", tt.in)
	}
}

func TestMicroseconds(t *testing.T) {
	assert.Equal(t, 1500*time.Millisecond, microseconds(1_500_000))
}

func TestFormatTrackID_StableAndDistinct(t *testing.T) {
	a := formatTrackID("/music/a.mp3")

	assert.Equal(t, a, formatTrackID("/music/a.mp3"))
	assert.NotEqual(t, a, formatTrackID("/music/b.mp3"))
	assert.Contains(t, a, "/org/mpris/MediaPlayer2/Track/")
}

func TestPlaybackStatus(t *testing.T) {
	assert.Equal(t, types.PlaybackStatusPlaying, playbackStatus(player.Playing))
	assert.Equal(t, types.PlaybackStatusPaused, playbackStatus(player.Paused))
	for _, s := range []player.State{player.Idle, player.Loaded, player.Stopped} {
		assert.Equal(t, types.PlaybackStatusStopped, playbackStatus(s), s.String())
	}
}

func TestMetadata_Empty(t *testing.T) {
	assert.Equal(t, types.Metadata{}, metadata(transport.View{}))
}

func TestMetadata_Track(t *testing.T) {
	dir := t.TempDir()
	track := filepath.Join(dir, "a.mp3")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cover.jpg"), nil, 0o600))

	meta := metadata(transport.View{
		Duration: 90 * time.Second,
		Info:     &player.TrackInfo{Path: track, Title: "Song", Artist: "Band", Album: "LP"},
	})

	assert.Equal(t, "Song", meta.Title)
	assert.Equal(t, "LP", meta.Album)
	assert.Equal(t, []string{"Band"}, meta.Artist)
	assert.Equal(t, types.Microseconds(90_000_000), meta.Length)
	assert.Equal(t, formatTrackID(track), string(meta.TrackId))
	assert.Equal(t, "file://"+filepath.Join(dir, "cover.jpg"), meta.ArtUrl)
}

func TestMetadata_NoArtist(t *testing.T) {
	meta := metadata(transport.View{Info: &player.TrackInfo{Path: "/nowhere/a.mp3", Title: "a"}})
	assert.Nil(t, meta.Artist)
	assert.Empty(t, meta.ArtUrl)
}
