//go:build linux

package mpris

import (
	"log"

	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"

	"github.com/llehouerou/prosperity/internal/player"
	"github.com/llehouerou/prosperity/internal/transport"
)

const busName = "prosperity"

// Adapter serves the player over MPRIS on the session bus.
type Adapter struct {
	*bridge
	server *server.Server
}

// New creates and starts a new MPRIS adapter. Remote commands are handed
// to send; queries are answered from the last view given to Publish.
func New(send Sender) (*Adapter, error) {
	b := newBridge(send)
	a := &Adapter{
		bridge: b,
		server: server.NewServer(busName, &rootAdapter{}, &playerAdapter{b: b}),
	}

	go func() {
		if err := a.server.Listen(); err != nil {
			log.Printf("mpris: %v", err)
		}
	}()

	return a, nil
}

// Close stops the adapter and releases D-Bus resources.
func (a *Adapter) Close() error {
	return a.server.Stop()
}

// rootAdapter serves org.mpris.MediaPlayer2. The app owns its own
// lifecycle, so Quit and Raise are refused.
type rootAdapter struct{}

func (*rootAdapter) Raise() error                          { return nil }
func (*rootAdapter) Quit() error                           { return nil }
func (*rootAdapter) CanQuit() (bool, error)                { return false, nil }
func (*rootAdapter) CanRaise() (bool, error)               { return false, nil }
func (*rootAdapter) HasTrackList() (bool, error)           { return false, nil }
func (*rootAdapter) Identity() (string, error)             { return identity, nil }
func (*rootAdapter) SupportedMimeTypes() ([]string, error) { return mimeTypes, nil }

//nolint:revive // name fixed by the MPRIS interface
func (*rootAdapter) SupportedUriSchemes() ([]string, error) { return []string{"file"}, nil }

// playerAdapter serves org.mpris.MediaPlayer2.Player. Commands become
// transport inputs; properties read the published snapshot.
type playerAdapter struct {
	b *bridge
}

func (p *playerAdapter) send(in transport.Input) error {
	p.b.dispatch(in)
	return nil
}

func (p *playerAdapter) Next() error     { return p.send(transport.Next{}) }
func (p *playerAdapter) Previous() error { return p.send(transport.Previous{}) }
func (p *playerAdapter) Pause() error    { return p.send(transport.Pause{}) }
func (p *playerAdapter) Play() error     { return p.send(transport.Play{}) }
func (p *playerAdapter) Stop() error     { return p.send(transport.Stop{}) }

func (p *playerAdapter) PlayPause() error {
	return p.send(playPause(p.b.snapshot().State))
}

func (p *playerAdapter) Seek(offset types.Microseconds) error {
	return p.send(transport.SeekRelative{Delta: microseconds(int64(offset))})
}

func (p *playerAdapter) SetPosition(_ string, position types.Microseconds) error {
	return p.send(transport.SeekAbsolute{Position: microseconds(int64(position))})
}

func (p *playerAdapter) SetVolume(v float64) error {
	return p.send(transport.SetVolume{Level: volumeLevel(v)})
}

//nolint:revive // name fixed by the MPRIS interface
func (*playerAdapter) OpenUri(string) error { return nil }

func (*playerAdapter) SetRate(float64) error         { return nil }
func (*playerAdapter) Rate() (float64, error)        { return 1, nil }
func (*playerAdapter) MinimumRate() (float64, error) { return 1, nil }
func (*playerAdapter) MaximumRate() (float64, error) { return 1, nil }
func (*playerAdapter) CanControl() (bool, error)     { return true, nil }

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	return playbackStatus(p.b.snapshot().State), nil
}

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	return metadata(p.b.snapshot()), nil
}

func (p *playerAdapter) Volume() (float64, error) {
	return float64(p.b.snapshot().Volume) / player.MaxVolume, nil
}

func (p *playerAdapter) Position() (int64, error) {
	return p.b.snapshot().Position.Microseconds(), nil
}

// Navigation wraps around, so any non-empty playlist can go both ways.
func (p *playerAdapter) CanGoNext() (bool, error)     { return p.b.snapshot().HasTracks(), nil }
func (p *playerAdapter) CanGoPrevious() (bool, error) { return p.b.snapshot().HasTracks(), nil }
func (p *playerAdapter) CanPlay() (bool, error)       { return p.b.snapshot().HasTracks(), nil }

func (p *playerAdapter) CanPause() (bool, error) {
	return p.b.snapshot().State.CanPause(), nil
}

func (p *playerAdapter) CanSeek() (bool, error) {
	return p.b.snapshot().Duration > 0, nil
}
