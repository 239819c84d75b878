package keymap

import "strings"

// Binding maps keys to an action and documents it.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "playback", "tracks"
}

// All contains all key bindings, in help order.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionOpen, []string{"o"}, "Open files", "global"},
	{ActionToggleTheme, []string{"t"}, "Toggle theme", "global"},
	{ActionHelp, []string{"?"}, "Show help", "global"},

	// Playback
	{ActionPlayPause, []string{" "}, "Play/pause", "playback"},
	{ActionStop, []string{"s"}, "Stop", "playback"},
	{ActionNextTrack, []string{"n", "pgdown"}, "Next track", "playback"},
	{ActionPrevTrack, []string{"b", "pgup"}, "Previous track", "playback"},
	{ActionSeekForward, []string{"right", "l"}, "Seek forward", "playback"},
	{ActionSeekBack, []string{"left", "h"}, "Seek back", "playback"},
	{ActionVolumeUp, []string{"+", "="}, "Volume up", "playback"},
	{ActionVolumeDown, []string{"-"}, "Volume down", "playback"},
	{ActionSeekPercent, []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"}, "Seek to 0-90%", "playback"},

	// Track list
	{ActionMoveUp, []string{"k", "up"}, "Move up", "tracks"},
	{ActionMoveDown, []string{"j", "down"}, "Move down", "tracks"},
	{ActionJumpStart, []string{"g", "home"}, "First track", "tracks"},
	{ActionJumpEnd, []string{"G", "end"}, "Last track", "tracks"},
	{ActionSelect, []string{"enter"}, "Play track", "tracks"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// Contexts returns the binding contexts in display order.
func Contexts() []string {
	return []string{"global", "playback", "tracks"}
}

// DisplayKeys renders a binding's keys for help text. Long runs such as
// the digit keys collapse to "first-last".
func DisplayKeys(keys []string) string {
	if len(keys) > 3 {
		return DisplayKey(keys[0]) + "-" + DisplayKey(keys[len(keys)-1])
	}
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = DisplayKey(k)
	}
	return strings.Join(out, ", ")
}

// DisplayKey renders a key name for help text.
func DisplayKey(key string) string {
	switch key {
	case " ":
		return "space"
	case "right":
		return "→"
	case "left":
		return "←"
	case "up":
		return "↑"
	case "down":
		return "↓"
	}
	return key
}
