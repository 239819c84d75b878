// Package mpris exposes the player on the session bus as an MPRIS
// media player.
package mpris

import (
	"fmt"
	"hash/fnv"
	"math"
	"sync"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/types"

	"github.com/llehouerou/prosperity/internal/player"
	"github.com/llehouerou/prosperity/internal/transport"
)

const identity = "Prosperity"

var mimeTypes = []string{"audio/mpeg", "audio/wav", "audio/flac", "audio/ogg"}

// Sender delivers a transport input to the application's event loop.
// It must not block on the caller's goroutine for long; tea.Program.Send
// is the intended implementation.
type Sender func(transport.Input)

// bridge holds the last published view and forwards remote commands.
// D-Bus calls arrive on their own goroutines, so they only ever read the
// snapshot and never touch the controller.
type bridge struct {
	send Sender

	mu   sync.RWMutex
	view transport.View
}

func newBridge(send Sender) *bridge {
	return &bridge{
		send: send,
		view: transport.View{Current: -1, Status: transport.NoTrackStatus},
	}
}

// Publish replaces the snapshot served to D-Bus clients.
func (b *bridge) Publish(v transport.View) {
	b.mu.Lock()
	b.view = v
	b.mu.Unlock()
}

func (b *bridge) snapshot() transport.View {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.view
}

func (b *bridge) dispatch(in transport.Input) {
	if b.send != nil {
		b.send(in)
	}
}

// playPause picks the input a PlayPause call stands for.
func playPause(state player.State) transport.Input {
	if state == player.Playing {
		return transport.Pause{}
	}
	return transport.Play{}
}

// volumeLevel converts an MPRIS volume (1.0 is full) to a 0-100 level.
func volumeLevel(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	return player.ClampVolume(int(math.Round(v * 100)))
}

func microseconds(us int64) time.Duration {
	return time.Duration(us) * time.Microsecond
}

func formatTrackID(path string) string {
	h := fnv.New64a()
	h.Write([]byte(path))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64())
}

func playbackStatus(state player.State) types.PlaybackStatus {
	switch state {
	case player.Playing:
		return types.PlaybackStatusPlaying
	case player.Paused:
		return types.PlaybackStatusPaused
	default:
		return types.PlaybackStatusStopped
	}
}

// metadata describes the loaded track; it is empty when nothing is loaded.
func metadata(v transport.View) types.Metadata {
	info := v.Info
	if info == nil {
		return types.Metadata{}
	}
	meta := types.Metadata{
		TrackId: dbus.ObjectPath(formatTrackID(info.Path)),
		Length:  types.Microseconds(v.Duration.Microseconds()),
		Title:   info.Title,
		Album:   info.Album,
	}
	if info.Artist != "" {
		meta.Artist = []string{info.Artist}
	}
	if art := player.CoverArt(info.Path); art != "" {
		meta.ArtUrl = "file://" + art
	}
	return meta
}
