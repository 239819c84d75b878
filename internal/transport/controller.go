// Package transport implements the playback state machine: it owns the
// playlist, drives the playback engine and derives the display state.
//
// A Controller is not safe for concurrent use. It expects every Input to be
// dispatched from a single event loop, engine notifications included.
package transport

import (
	"errors"
	"fmt"
	"time"

	"github.com/llehouerou/prosperity/internal/player"
	"github.com/llehouerou/prosperity/internal/playlist"
)

const (
	// DefaultSeekStep is the jump used by SeekForward and SeekBackward.
	DefaultSeekStep = 10 * time.Second
	// DefaultVolume is the volume applied at construction.
	DefaultVolume = 50
)

// ErrUnknownInput is returned by Dispatch for inputs it does not recognize.
var ErrUnknownInput = errors.New("unknown transport input")

// Re-exported so callers can match without importing playlist.
var (
	ErrEmptyPlaylist = playlist.ErrEmptyPlaylist
	ErrInvalidIndex  = playlist.ErrInvalidIndex
)

// Controller mediates between user commands and the playback engine.
type Controller struct {
	engine   player.Engine
	playlist *playlist.Playlist

	seekStep time.Duration
	volume   int

	status   string
	position time.Duration
	duration time.Duration
	err      error
}

// Option configures a Controller.
type Option func(*Controller)

// WithSeekStep sets the step used by SeekForward and SeekBackward.
func WithSeekStep(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.seekStep = d
		}
	}
}

// WithVolume sets the initial volume level.
func WithVolume(level int) Option {
	return func(c *Controller) {
		c.volume = player.ClampVolume(level)
	}
}

// New creates a controller with an empty playlist that owns engine.
func New(engine player.Engine, opts ...Option) *Controller {
	c := &Controller{
		engine:   engine,
		playlist: playlist.New(),
		seekStep: DefaultSeekStep,
		volume:   DefaultVolume,
		status:   NoTrackStatus,
	}
	for _, opt := range opts {
		opt(c)
	}
	engine.SetVolume(c.volume)
	return c
}

// Close releases the engine.
func (c *Controller) Close() error {
	return c.engine.Close()
}

// Events returns the engine notification channel.
func (c *Controller) Events() <-chan player.Event {
	return c.engine.Events()
}

// Dispatch applies one input. Operations that need tracks return
// ErrEmptyPlaylist without side effects when the playlist is empty.
func (c *Controller) Dispatch(in Input) error {
	switch in := in.(type) {
	case Open:
		return c.open(in.Tracks)
	case Play:
		return c.play()
	case Pause:
		c.engine.Pause()
		return nil
	case Stop:
		c.engine.Stop()
		return nil
	case Next:
		return c.step(playlist.Forward)
	case Previous:
		return c.step(playlist.Backward)
	case Select:
		return c.selectTrack(in.Index)
	case SeekRelative:
		return c.seekRelative(in.Delta)
	case SeekForward:
		return c.seekRelative(c.seekStep)
	case SeekBackward:
		return c.seekRelative(-c.seekStep)
	case SeekAbsolute:
		c.engine.SeekTo(in.Position)
		return nil
	case SetVolume:
		c.volume = player.ClampVolume(in.Level)
		c.engine.SetVolume(c.volume)
		return nil
	case PositionChanged:
		c.position = in.Position
		return nil
	case DurationChanged:
		c.duration = in.Duration
		return nil
	case MediaEnded:
		return c.endOfMedia()
	}
	return fmt.Errorf("%w: %T", ErrUnknownInput, in)
}

func (c *Controller) open(tracks []playlist.Track) error {
	if len(tracks) == 0 {
		return nil
	}
	if c.playlist.Append(tracks...) {
		return c.loadCurrent()
	}
	return nil
}

func (c *Controller) play() error {
	if c.playlist.IsEmpty() {
		return ErrEmptyPlaylist
	}
	if !c.engine.HasMedia() {
		if err := c.loadCurrent(); err != nil {
			return err
		}
	}
	c.engine.Play()
	return nil
}

// step moves the cursor one track in dir, then loads and plays it.
func (c *Controller) step(dir playlist.Direction) error {
	if _, err := c.playlist.Advance(dir); err != nil {
		return err
	}
	return c.loadAndPlay()
}

func (c *Controller) selectTrack(index int) error {
	if _, err := c.playlist.Select(index); err != nil {
		return fmt.Errorf("%w: %d", err, index)
	}
	return c.loadAndPlay()
}

// endOfMedia is the transition taken when the engine finishes a track:
// playback continues with the next track, wrapping to the first.
func (c *Controller) endOfMedia() error {
	return c.step(playlist.Forward)
}

func (c *Controller) seekRelative(delta time.Duration) error {
	if !c.engine.HasMedia() {
		return nil
	}
	target := min(max(c.engine.Position()+delta, 0), c.engine.Duration())
	c.engine.SeekTo(target)
	c.position = target
	return nil
}

func (c *Controller) loadAndPlay() error {
	if err := c.loadCurrent(); err != nil {
		return err
	}
	c.engine.Play()
	return nil
}

func (c *Controller) loadCurrent() error {
	track := c.playlist.Current()
	if track == nil {
		return ErrEmptyPlaylist
	}
	if err := c.engine.Load(track.Path); err != nil {
		// The engine dropped the previous media; nothing is playing now.
		c.err = fmt.Errorf("load %s: %w", track.Name(), err)
		c.status = NoTrackStatus
		c.position = 0
		c.duration = 0
		return c.err
	}
	c.err = nil
	c.status = "Loaded: " + track.Name()
	c.position = 0
	c.duration = c.engine.Duration()
	return nil
}

// CurrentTrack returns the track under the cursor, or nil.
func (c *Controller) CurrentTrack() *playlist.Track {
	t := c.playlist.Current()
	if t == nil {
		return nil
	}
	cp := *t
	return &cp
}

// CurrentIndex returns the playlist cursor (-1 if none).
func (c *Controller) CurrentIndex() int {
	return c.playlist.CurrentIndex()
}

// Len returns the number of tracks in the playlist.
func (c *Controller) Len() int {
	return c.playlist.Len()
}

// SeekStep returns the step used by SeekForward and SeekBackward.
func (c *Controller) SeekStep() time.Duration {
	return c.seekStep
}

// View returns a snapshot of the display state.
func (c *Controller) View() View {
	return View{
		Status:   c.status,
		TimeText: FormatTime(c.position, c.duration),
		Position: c.position,
		Duration: c.duration,
		Volume:   c.volume,
		Tracks:   c.playlist.Names(),
		Current:  c.playlist.CurrentIndex(),
		State:    c.engine.State(),
		Info:     c.engine.TrackInfo(),
		Err:      c.err,
	}
}
