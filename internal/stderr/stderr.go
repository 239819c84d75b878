//go:build !windows

// Package stderr captures stderr output from C libraries (ALSA, PulseAudio)
// that write directly to file descriptor 2, bypassing Go's os.Stderr.
// This prevents raw error messages from corrupting the TUI layout.
package stderr

import (
	"os"
	"syscall"
)

// Capture redirects fd 2 into a pipe while active.
type Capture struct {
	lines      chan string
	origStderr int
	pipeRead   *os.File
	pipeWrite  *os.File
}

// Start begins capturing stderr output.
// Must be called early in main(), before the audio device is opened.
// On error the program can continue without capture.
func Start() (*Capture, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, err
	}

	// Save original stderr file descriptor
	orig, err := syscall.Dup(int(os.Stderr.Fd()))
	if err != nil {
		r.Close()
		w.Close()
		return nil, err
	}

	// Redirect stderr (fd 2) to the pipe's write end
	if err := syscall.Dup2(int(w.Fd()), int(os.Stderr.Fd())); err != nil {
		syscall.Close(orig)
		r.Close()
		w.Close()
		return nil, err
	}

	c := &Capture{
		lines:      make(chan string, bufferSize),
		origStderr: orig,
		pipeRead:   r,
		pipeWrite:  w,
	}
	go forward(r, c.lines)
	return c, nil
}

// Lines receives captured stderr lines. It is closed after Stop once the
// pipe drains.
func (c *Capture) Lines() <-chan string {
	if c == nil {
		return nil
	}
	return c.lines
}

// WriteOriginal writes directly to the original stderr, bypassing capture.
// Useful for fatal errors that must be visible even if TUI is running.
func (c *Capture) WriteOriginal(msg string) {
	if c == nil {
		_, _ = os.Stderr.WriteString(msg)
		return
	}
	_, _ = syscall.Write(c.origStderr, []byte(msg))
}

// Stop restores the original stderr. Should be called on program exit.
func (c *Capture) Stop() {
	if c == nil {
		return
	}
	_ = syscall.Dup2(c.origStderr, int(os.Stderr.Fd()))
	_ = syscall.Close(c.origStderr)

	c.pipeWrite.Close()
	c.pipeRead.Close()
}
