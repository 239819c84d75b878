package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/prosperity/internal/transport"
	"github.com/llehouerou/prosperity/internal/ui/playerbar"
)

// doubleClickWindow is the longest gap between two presses on the same
// track row that still counts as a double click.
const doubleClickWindow = 400 * time.Millisecond

type click struct {
	row int
	at  time.Time
}

// handleMouse maps the wheel to cursor moves, a press on the seek bar to
// an absolute seek, and presses on track rows to cursor moves; a double
// click plays the row.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.prompt.Active() || m.showHelp {
		return m, nil
	}
	n := m.ctrl.Len()

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.tracks.Move(-1, n)
		return m, nil
	case tea.MouseButtonWheelDown:
		m.tracks.Move(1, n)
		return m, nil
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return m, nil
		}
	default:
		return m, nil
	}

	barTop := m.height - statusLines - playerbar.Height
	if msg.Y == barTop+playerbar.SeekRow {
		bar := playerbar.NewState(m.ctrl.View(), m.theme)
		if pos, ok := playerbar.SeekAt(bar, m.width, msg.X); ok {
			m.dispatch(transport.SeekAbsolute{Position: pos})
		}
		return m, nil
	}

	if msg.Y < barTop {
		if row, ok := m.tracks.RowAt(msg.Y, n); ok {
			m.clickTrack(row)
		}
	}
	return m, nil
}

func (m *Model) clickTrack(row int) {
	now := m.clock()
	double := row == m.lastClick.row && now.Sub(m.lastClick.at) <= doubleClickWindow

	m.tracks.Jump(row, m.ctrl.Len())
	if double {
		m.lastClick = click{}
		m.dispatch(transport.Select{Index: row})
		return
	}
	m.lastClick = click{row: row, at: now}
}
