package player

import (
	"os"
	"path/filepath"
	"strings"
)

// coverBases and coverExts are tried in order; the first base wins over
// any later one regardless of extension.
var (
	coverBases = []string{"cover", "folder", "album", "front"}
	coverExts  = []string{".jpg", ".png", ".jpeg"}
)

// CoverArt returns the album art image stored next to trackPath, or ""
// when the folder has none. Names match case-insensitively.
func CoverArt(trackPath string) string {
	dir := filepath.Dir(trackPath)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}

	files := make(map[string]string, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		lower := strings.ToLower(e.Name())
		if _, dup := files[lower]; !dup {
			files[lower] = e.Name()
		}
	}

	for _, base := range coverBases {
		for _, ext := range coverExts {
			if name, ok := files[base+ext]; ok {
				return filepath.Join(dir, name)
			}
		}
	}
	return ""
}
