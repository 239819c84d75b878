package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/prosperity/internal/app/handler"
	"github.com/llehouerou/prosperity/internal/keymap"
	"github.com/llehouerou/prosperity/internal/player"
	"github.com/llehouerou/prosperity/internal/transport"
)

// handleKey routes a key press: the open prompt takes all keys while it
// is shown, otherwise the key is resolved to an action.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.prompt.Active() {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}

	action := m.keys.Resolve(msg.String())
	if m.showHelp && action != keymap.ActionQuit {
		// Any key closes the help overlay.
		m.showHelp = false
		return m, nil
	}

	_, cmd := handler.Chain(action,
		m.handleGlobal,
		m.handlePlayback,
		m.handleTracks,
		func(a keymap.Action) handler.Result { return m.handleSeekPercent(a, msg.String()) },
	)
	return m, cmd
}

func (m *Model) handleGlobal(a keymap.Action) handler.Result {
	switch a {
	case keymap.ActionQuit:
		return handler.Handled(tea.Quit)
	case keymap.ActionOpen:
		cmd := m.prompt.Open(m.baseDir)
		m.resize()
		return handler.Handled(cmd)
	case keymap.ActionToggleTheme:
		m.theme = m.theme.Toggle()
		return handler.HandledNoCmd
	case keymap.ActionHelp:
		m.showHelp = true
		return handler.HandledNoCmd
	}
	return handler.NotHandled
}

func (m *Model) handlePlayback(a keymap.Action) handler.Result {
	var in transport.Input
	switch a {
	case keymap.ActionPlayPause:
		if m.ctrl.View().State == player.Playing {
			in = transport.Pause{}
		} else {
			in = transport.Play{}
		}
	case keymap.ActionStop:
		in = transport.Stop{}
	case keymap.ActionNextTrack:
		in = transport.Next{}
	case keymap.ActionPrevTrack:
		in = transport.Previous{}
	case keymap.ActionSeekForward:
		in = transport.SeekForward{}
	case keymap.ActionSeekBack:
		in = transport.SeekBackward{}
	case keymap.ActionVolumeUp:
		in = transport.SetVolume{Level: m.ctrl.View().Volume + volumeStep}
	case keymap.ActionVolumeDown:
		in = transport.SetVolume{Level: m.ctrl.View().Volume - volumeStep}
	default:
		return handler.NotHandled
	}
	m.dispatch(in)
	return handler.HandledNoCmd
}

func (m *Model) handleTracks(a keymap.Action) handler.Result {
	n := m.ctrl.Len()
	switch a {
	case keymap.ActionMoveUp:
		m.tracks.Move(-1, n)
	case keymap.ActionMoveDown:
		m.tracks.Move(1, n)
	case keymap.ActionJumpStart:
		m.tracks.Jump(0, n)
	case keymap.ActionJumpEnd:
		m.tracks.Jump(n-1, n)
	case keymap.ActionSelect:
		if n > 0 {
			m.dispatch(transport.Select{Index: m.tracks.Cursor()})
		}
	default:
		return handler.NotHandled
	}
	return handler.HandledNoCmd
}

// handleSeekPercent jumps to the tenth of the track named by a digit key.
func (m *Model) handleSeekPercent(a keymap.Action, key string) handler.Result {
	if a != keymap.ActionSeekPercent || len(key) != 1 || key[0] < '0' || key[0] > '9' {
		return handler.NotHandled
	}
	if d := m.ctrl.View().Duration; d > 0 {
		tenths := time.Duration(key[0] - '0')
		m.dispatch(transport.SeekAbsolute{Position: d * tenths / 10})
	}
	return handler.HandledNoCmd
}
