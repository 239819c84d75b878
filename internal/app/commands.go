package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/prosperity/internal/player"
	"github.com/llehouerou/prosperity/internal/source"
)

// WaitForEngine returns a command that waits for the next engine event.
// The caller re-arms it after each EngineEventMsg.
func WaitForEngine(events <-chan player.Event) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		e, ok := <-events
		if !ok {
			return EngineClosedMsg{}
		}
		return EngineEventMsg{Event: e}
	}
}

// WatchStderr returns a command that waits for stderr output from C libraries.
func WatchStderr(lines <-chan string) tea.Cmd {
	if lines == nil {
		return nil
	}
	return func() tea.Msg {
		line, ok := <-lines
		if !ok {
			return nil // Channel closed
		}
		return StderrMsg{Line: line}
	}
}

// ResolveFiles returns a command that expands entries into tracks off the
// UI goroutine.
func ResolveFiles(base string, entries, exts []string) tea.Cmd {
	if len(entries) == 0 {
		return nil
	}
	return func() tea.Msg {
		res, err := source.Resolve(base, entries, exts)
		return FilesResolvedMsg{Result: res, Err: err}
	}
}
