package app

import (
	"errors"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/prosperity/internal/errmsg"
	"github.com/llehouerou/prosperity/internal/source"
	"github.com/llehouerou/prosperity/internal/transport"
	"github.com/llehouerou/prosperity/internal/ui/openprompt"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case EngineEventMsg:
		if in := transport.FromEvent(msg.Event); in != nil {
			m.dispatch(in)
		}
		return m, WaitForEngine(m.ctrl.Events())

	case EngineClosedMsg:
		return m, nil

	case CommandMsg:
		m.dispatch(msg.Input)
		return m, nil

	case openprompt.SubmitMsg:
		m.resize()
		return m, ResolveFiles(msg.Base, source.SplitInput(msg.Text), m.exts)

	case openprompt.CancelMsg:
		m.resize()
		return m, nil

	case FilesResolvedMsg:
		m.filesResolved(msg)
		return m, nil

	case StderrMsg:
		m.setMessage(msg.Line, true)
		return m, WatchStderr(m.stderr)
	}

	if m.prompt.Active() {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}
	return m, nil
}

// dispatch applies in to the controller and reports failures. An empty
// playlist is not an error from the user's point of view.
func (m *Model) dispatch(in transport.Input) {
	err := m.ctrl.Dispatch(in)
	switch {
	case err == nil:
	case errors.Is(err, transport.ErrEmptyPlaylist):
	default:
		log.Printf("dispatch %T: %v", in, err)
		m.setMessage(errmsg.Format(opFor(in), err), true)
	}
	m.afterDispatch()
}

// afterDispatch keeps everything derived from the controller in step:
// the browse cursor follows the playing track, remote surfaces get the
// new snapshot, and a newly playing track is announced.
func (m *Model) afterDispatch() {
	v := m.publish()

	// A track that loaded cleanly supersedes any earlier failure.
	if path := loadedPath(v); path != m.lastPath {
		m.lastPath = path
		if path != "" && v.Err == nil && m.messageErr {
			m.setMessage("", false)
		}
	}

	if v.Current != m.lastCurrent {
		m.lastCurrent = v.Current
		m.tracks.Jump(v.Current, len(v.Tracks))
	}

	if m.notifier != nil && v.State.IsActive() && v.Info != nil {
		if err := m.notifier.Track(v.Info); err != nil {
			log.Printf("notify: %v", err)
		}
	}
}

func loadedPath(v transport.View) string {
	if v.Info == nil {
		return ""
	}
	return v.Info.Path
}

func (m *Model) publish() transport.View {
	v := m.ctrl.View()
	if m.publisher != nil {
		m.publisher.Publish(v)
	}
	return v
}

func (m *Model) filesResolved(msg FilesResolvedMsg) {
	if msg.Err != nil {
		log.Printf("resolve files: %v", msg.Err)
		m.setMessage(errmsg.Format(errmsg.OpFilesOpen, msg.Err), true)
		return
	}
	m.setMessage(msg.Result.Summary(), len(msg.Result.Tracks) == 0)
	if len(msg.Result.Tracks) == 0 {
		return
	}
	m.dispatch(transport.Open{Tracks: msg.Result.Tracks})
}

func (m *Model) setMessage(text string, isErr bool) {
	m.message = text
	m.messageErr = isErr
}

// opFor names the user-facing operation behind an input.
func opFor(in transport.Input) errmsg.Op {
	switch in.(type) {
	case transport.Play:
		return errmsg.OpPlaybackStart
	case transport.Select:
		return errmsg.OpTrackSelect
	case transport.SeekRelative, transport.SeekForward, transport.SeekBackward, transport.SeekAbsolute:
		return errmsg.OpPlaybackSeek
	case transport.Open:
		return errmsg.OpFilesOpen
	}
	return errmsg.OpTrackLoad
}
