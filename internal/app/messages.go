// Package app contains the root bubbletea model and its messages.
package app

import (
	"github.com/llehouerou/prosperity/internal/player"
	"github.com/llehouerou/prosperity/internal/source"
	"github.com/llehouerou/prosperity/internal/transport"
)

// EngineEventMsg carries one notification from the playback engine.
type EngineEventMsg struct {
	Event player.Event
}

// EngineClosedMsg is sent once the engine's event channel is closed.
type EngineClosedMsg struct{}

// CommandMsg injects a transport input from outside the UI, such as an
// MPRIS remote control call.
type CommandMsg struct {
	Input transport.Input
}

// FilesResolvedMsg is sent when an open request has been resolved on disk.
type FilesResolvedMsg struct {
	Result source.Result
	Err    error
}

// StderrMsg carries a line written to stderr by a C library.
type StderrMsg struct {
	Line string
}
