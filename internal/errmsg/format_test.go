//nolint:goconst // test cases intentionally repeat strings for readability
package errmsg

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpTrackLoad,
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with operation",
			op:       OpTrackLoad,
			err:      errors.New("unsupported format"),
			expected: "Failed to load track: unsupported format",
		},
		{
			name:     "playback operation",
			op:       OpPlaybackStart,
			err:      errors.New("no audio device"),
			expected: "Failed to start playback: no audio device",
		},
		{
			name:     "open files operation",
			op:       OpFilesOpen,
			err:      errors.New("syntax error in pattern"),
			expected: "Failed to open files: syntax error in pattern",
		},
		{
			name:     "path error is reduced to its cause",
			op:       OpConfigLoad,
			err:      &fs.PathError{Op: "open", Path: "/etc/x.toml", Err: fs.ErrPermission},
			expected: "Failed to load config: permission denied",
		},
		{
			name:     "wrapped path error is reduced to its cause",
			op:       OpTrackLoad,
			err:      fmt.Errorf("decode: %w", &fs.PathError{Op: "open", Path: "/a.mp3", Err: fs.ErrNotExist}),
			expected: "Failed to load track: file does not exist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.op, tt.err)
			if result != tt.expected {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.op, tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpTrackLoad,
			context:  "a.mp3",
			expected: "",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpPlaybackSeek,
			err:      errors.New("not seekable"),
			expected: "Failed to seek: not seekable",
		},
		{
			name:     "context is quoted",
			op:       OpTrackLoad,
			context:  "song.flac",
			err:      errors.New("bad header"),
			expected: "Failed to load track 'song.flac': bad header",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatWith(tt.op, tt.context, tt.err)
			if result != tt.expected {
				t.Errorf("FormatWith() = %q, want %q", result, tt.expected)
			}
		})
	}
}
