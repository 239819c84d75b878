package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/prosperity/internal/player"
)

func TestWaitForEngine(t *testing.T) {
	assert.Nil(t, WaitForEngine(nil))

	ch := make(chan player.Event, 1)
	ch <- player.MediaEnded{Path: "/a.mp3"}
	assert.Equal(t, EngineEventMsg{Event: player.MediaEnded{Path: "/a.mp3"}}, WaitForEngine(ch)())

	close(ch)
	assert.Equal(t, EngineClosedMsg{}, WaitForEngine(ch)())
}

func TestWatchStderr(t *testing.T) {
	assert.Nil(t, WatchStderr(nil))

	ch := make(chan string, 1)
	ch <- "boom"
	assert.Equal(t, StderrMsg{Line: "boom"}, WatchStderr(ch)())

	close(ch)
	assert.Nil(t, WatchStderr(ch)())
}

func TestResolveFiles(t *testing.T) {
	assert.Nil(t, ResolveFiles("/", nil, nil))

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.wav"), nil, 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), nil, 0o600))

	msg, ok := ResolveFiles(dir, []string{"."}, nil)().(FilesResolvedMsg)
	require.True(t, ok)
	require.NoError(t, msg.Err)
	require.Len(t, msg.Result.Tracks, 1)
	assert.Equal(t, filepath.Join(dir, "a.wav"), msg.Result.Tracks[0].Path)
}
