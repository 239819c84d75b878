package player

import (
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
)

// DefaultPositionInterval is how often position updates are emitted while playing.
const DefaultPositionInterval = 250 * time.Millisecond

// The speaker is process-wide and can only be initialized once.
var (
	speakerMu          sync.Mutex
	speakerInitialized bool
	speakerSampleRate  beep.SampleRate
)

// Player is an Engine backed by beep and the system speaker.
//
// Lock order is p.mu, then the speaker lock or the event queue lock. The
// end-of-stream callback runs with the speaker lock held and therefore
// never touches p.mu directly.
type Player struct {
	mu          sync.Mutex
	state       State
	path        string
	streamer    beep.StreamSeekCloser
	format      beep.Format
	ctrl        *beep.Ctrl
	volume      *effects.Volume
	trackInfo   *TrackInfo
	volumeLevel int
	generation  uint64

	interval time.Duration
	queue    *eventQueue
	done     chan struct{}
	closed   bool
}

// Option configures a Player.
type Option func(*Player)

// WithPositionInterval sets how often position updates are emitted.
func WithPositionInterval(d time.Duration) Option {
	return func(p *Player) {
		if d > 0 {
			p.interval = d
		}
	}
}

// New creates a player and starts its event and position goroutines.
func New(opts ...Option) *Player {
	p := &Player{
		state:       Idle,
		volumeLevel: 100,
		interval:    DefaultPositionInterval,
		queue:       newEventQueue(),
		done:        make(chan struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}
	go p.queue.run(p.done)
	go p.monitor()
	return p
}

// Load decodes the file at path and makes it the current media.
// Any previous media is released, even when path fails to load.
// Playback is not started.
func (p *Player) Load(path string) error {
	streamer, format, err := decodeFile(path)
	if err == nil {
		if err = initSpeaker(format.SampleRate); err != nil {
			streamer.Close()
		}
	}
	if err != nil {
		p.unload()
		return err
	}

	info, _ := ReadTrackInfo(path)
	if info == nil {
		info = fallbackTrackInfo(path)
	}
	info.Duration = format.SampleRate.D(streamer.Len())
	info.SampleRate = int(format.SampleRate)

	p.mu.Lock()
	p.releaseLocked()

	var playStreamer beep.Streamer = streamer
	if format.SampleRate != speakerSampleRate {
		playStreamer = beep.Resample(4, format.SampleRate, speakerSampleRate, streamer)
	}
	p.path = path
	p.streamer = streamer
	p.format = format
	p.ctrl = &beep.Ctrl{Streamer: playStreamer}
	p.volume = &effects.Volume{
		Streamer: p.ctrl,
		Base:     2,
		Volume:   levelToVolume(p.volumeLevel),
		Silent:   p.volumeLevel == 0,
	}
	p.trackInfo = info
	p.state = Loaded
	p.generation++
	duration := info.Duration
	p.mu.Unlock()

	p.queue.push(DurationChanged{Duration: duration})
	p.queue.push(PositionChanged{Position: 0})
	return nil
}

// Play starts the loaded media, resumes it when paused, or restarts it
// from the beginning when stopped.
func (p *Player) Play() {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch p.state {
	case Loaded, Stopped:
		p.generation++
		gen := p.generation
		speaker.Play(beep.Seq(p.volume, beep.Callback(func() {
			// Runs under the speaker lock
			go p.finished(gen)
		})))
		p.state = Playing
	case Paused:
		speaker.Lock()
		p.ctrl.Paused = false
		speaker.Unlock()
		p.state = Playing
	case Idle, Playing:
	}
}

// Pause pauses playback.
func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.state.CanPause() {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()
	p.state = Paused
}

// Stop halts playback and rewinds to the start. The media stays loaded.
func (p *Player) Stop() {
	p.mu.Lock()
	if !p.state.IsActive() {
		p.mu.Unlock()
		return
	}
	speaker.Clear()
	speaker.Lock()
	_ = p.streamer.Seek(0)
	p.ctrl.Paused = false
	speaker.Unlock()
	p.state = Stopped
	p.mu.Unlock()

	p.queue.push(PositionChanged{Position: 0})
}

// SeekTo moves playback to an absolute position, clamped to the media length.
func (p *Player) SeekTo(position time.Duration) {
	p.mu.Lock()
	if p.streamer == nil {
		p.mu.Unlock()
		return
	}
	n := min(max(p.format.SampleRate.N(position), 0), max(p.streamer.Len()-1, 0))
	speaker.Lock()
	_ = p.streamer.Seek(n)
	speaker.Unlock()
	pos := p.format.SampleRate.D(n)
	p.mu.Unlock()

	p.queue.push(PositionChanged{Position: pos})
}

// State returns the current playback state.
func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// HasMedia returns true if a file is loaded.
func (p *Player) HasMedia() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.streamer != nil
}

// Position returns the current playback position.
func (p *Player) Position() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.positionLocked()
}

func (p *Player) positionLocked() time.Duration {
	if p.streamer == nil {
		return 0
	}
	speaker.Lock()
	pos := p.streamer.Position()
	speaker.Unlock()
	return p.format.SampleRate.D(pos)
}

// Duration returns the length of the loaded media.
func (p *Player) Duration() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.trackInfo == nil {
		return 0
	}
	return p.trackInfo.Duration
}

// TrackInfo returns metadata for the loaded media, or nil.
func (p *Player) TrackInfo() *TrackInfo {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.trackInfo
}

// Events returns the engine notification channel.
// It is closed after Close.
func (p *Player) Events() <-chan Event {
	return p.queue.out
}

// Close stops playback, releases the media and stops the engine goroutines.
func (p *Player) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	p.releaseLocked()
	p.state = Idle
	close(p.done)
	return nil
}

// unload drops the current media after a failed load.
func (p *Player) unload() {
	p.mu.Lock()
	p.releaseLocked()
	p.state = Idle
	p.generation++
	p.mu.Unlock()

	p.queue.push(DurationChanged{Duration: 0})
	p.queue.push(PositionChanged{Position: 0})
}

// releaseLocked drops the current media. Caller holds p.mu.
func (p *Player) releaseLocked() {
	if p.state.IsActive() {
		speaker.Clear()
	}
	if p.streamer != nil {
		p.streamer.Close()
	}
	p.streamer = nil
	p.ctrl = nil
	p.volume = nil
	p.trackInfo = nil
	p.path = ""
}

// finished handles the end-of-stream callback for generation gen.
// Callbacks from a sequence that was since replaced or stopped are ignored.
func (p *Player) finished(gen uint64) {
	p.mu.Lock()
	if gen != p.generation || p.state != Playing {
		p.mu.Unlock()
		return
	}
	speaker.Lock()
	_ = p.streamer.Seek(0)
	speaker.Unlock()
	p.state = Stopped
	path := p.path
	p.mu.Unlock()

	p.queue.push(MediaEnded{Path: path})
}

// monitor emits the playback position at p.interval while playing.
func (p *Player) monitor() {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			p.tick()
		case <-p.done:
			return
		}
	}
}

// tick reports the position of the playing media. The push happens under
// p.mu so a Load cannot queue its reset between the read and the push.
func (p *Player) tick() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != Playing {
		return
	}
	p.queue.push(PositionChanged{Position: p.positionLocked()})
}

func initSpeaker(rate beep.SampleRate) error {
	speakerMu.Lock()
	defer speakerMu.Unlock()
	if speakerInitialized {
		return nil
	}
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return err
	}
	speakerSampleRate = rate
	speakerInitialized = true
	return nil
}
