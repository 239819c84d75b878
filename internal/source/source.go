// Package source turns typed paths into playlist tracks.
package source

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/prosperity/internal/player"
	"github.com/llehouerou/prosperity/internal/playlist"
)

// Result is the outcome of resolving a set of entries.
type Result struct {
	Tracks  []playlist.Track
	Bytes   int64    // total size of the accepted files
	Missing []string // entries that matched nothing on disk
}

// Summary is a one-line description for the status line.
func (r Result) Summary() string {
	n := len(r.Tracks)
	if n == 0 {
		if len(r.Missing) > 0 {
			return "Not found: " + strings.Join(r.Missing, ", ")
		}
		return "No audio files found"
	}

	noun := "tracks"
	if n == 1 {
		noun = "track"
	}
	msg := fmt.Sprintf("Added %d %s (%s)", n, noun, humanize.IBytes(uint64(max(r.Bytes, 0))))
	if len(r.Missing) > 0 {
		msg += fmt.Sprintf(", %d not found", len(r.Missing))
	}
	return msg
}

// Resolve expands each entry into audio files. Entries may be files,
// directories (walked recursively, hidden entries skipped, sorted by path)
// or glob patterns. Relative entries are taken from base; a leading ~ is
// the home directory. Only files whose extension is in exts are kept, a nil
// exts meaning the engine's supported formats. Entry order is preserved.
func Resolve(base string, entries []string, exts []string) (Result, error) {
	var res Result
	for _, entry := range entries {
		if strings.TrimSpace(entry) == "" {
			continue
		}
		path := absPath(base, entry)

		if hasMeta(path) {
			matches, err := filepath.Glob(path)
			if err != nil {
				return Result{}, fmt.Errorf("glob %q: %w", entry, err)
			}
			if len(matches) == 0 {
				res.Missing = append(res.Missing, entry)
				continue
			}
			sort.Strings(matches)
			for _, m := range matches {
				if err := res.add(m, exts); err != nil {
					return Result{}, err
				}
			}
			continue
		}

		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				res.Missing = append(res.Missing, entry)
				continue
			}
			return Result{}, err
		}
		if err := res.add(path, exts); err != nil {
			return Result{}, err
		}
	}
	return res, nil
}

// add appends path, or every audio file beneath it when it is a directory.
func (r *Result) add(path string, exts []string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		if player.IsAudioFile(path, exts) {
			r.Tracks = append(r.Tracks, playlist.NewTrack(path))
			r.Bytes += info.Size()
		}
		return nil
	}

	type file struct {
		path string
		size int64
	}
	var files []file
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return nil //nolint:nilerr // skip unreadable entries, continue walking
		}
		if p != path && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || !player.IsAudioFile(p, exts) {
			return nil
		}
		var size int64
		if fi, err := d.Info(); err == nil {
			size = fi.Size()
		}
		files = append(files, file{path: p, size: size})
		return nil
	})
	if err != nil {
		return err
	}

	// Sort by path for consistent ordering
	sort.Slice(files, func(i, j int) bool {
		return files[i].path < files[j].path
	})
	for _, f := range files {
		r.Tracks = append(r.Tracks, playlist.NewTrack(f.path))
		r.Bytes += f.size
	}
	return nil
}

func absPath(base, entry string) string {
	path := expandHome(entry)
	if !filepath.IsAbs(path) && base != "" {
		path = filepath.Join(base, path)
	}
	return filepath.Clean(path)
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

func hasMeta(path string) bool {
	return strings.ContainsAny(path, `*?[`)
}

// SplitInput splits prompt text into entries on whitespace. Single or double
// quotes keep spaces inside a path.
func SplitInput(s string) []string {
	var (
		out   []string
		cur   strings.Builder
		quote rune
		open  bool
	)
	flush := func() {
		if open {
			out = append(out, cur.String())
			cur.Reset()
			open = false
		}
	}
	for _, r := range s {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
				continue
			}
			cur.WriteRune(r)
		case r == '"' || r == '\'':
			quote = r
			open = true
		case r == ' ' || r == '\t' || r == '\n':
			flush()
		default:
			cur.WriteRune(r)
			open = true
		}
	}
	flush()
	return out
}
