package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "prosperity"

// Defaults applied when a key is missing or out of range.
const (
	DefaultVolume           = 50
	DefaultTheme            = "dark"
	DefaultIcons            = "unicode"
	DefaultSeekStep         = 10 * time.Second
	DefaultPositionInterval = 250 * time.Millisecond
)

// DefaultExtensions lists the file extensions accepted when opening files.
var DefaultExtensions = []string{".mp3", ".wav", ".flac", ".ogg"}

type Config struct {
	DefaultFolder    string        `koanf:"default_folder"` // start folder for the open prompt, empty means cwd
	Extensions       []string      `koanf:"extensions"`
	Volume           int           `koanf:"volume"` // 0-100
	Theme            string        `koanf:"theme"`  // "dark" or "light"
	Icons            string        `koanf:"icons"`  // "nerd", "unicode", or "none"
	SeekStep         time.Duration `koanf:"seek_step"`
	PositionInterval time.Duration `koanf:"position_interval"`
	MPRIS            bool          `koanf:"mpris"`
	Notifications    bool          `koanf:"notifications"`
	DebugLog         string        `koanf:"debug_log"` // log file path, empty disables logging
}

// Default returns the configuration used when no file sets anything.
// Extensions stays nil so a configured list replaces it instead of merging;
// Normalize fills it in.
func Default() *Config {
	return &Config{
		Volume:           DefaultVolume,
		Theme:            DefaultTheme,
		Icons:            DefaultIcons,
		SeekStep:         DefaultSeekStep,
		PositionInterval: DefaultPositionInterval,
		MPRIS:            true,
	}
}

func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom reads the given TOML files in order, later files overriding
// earlier ones. Missing files are skipped.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.Normalize()
	return cfg, nil
}

// Normalize expands paths and replaces invalid values with defaults.
func (c *Config) Normalize() {
	c.DefaultFolder = expandPath(c.DefaultFolder)
	c.DebugLog = expandPath(c.DebugLog)

	if c.Volume < 0 || c.Volume > 100 {
		c.Volume = DefaultVolume
	}

	switch c.Icons {
	case "nerd", "unicode", "none":
	default:
		c.Icons = DefaultIcons
	}

	c.Theme = strings.ToLower(strings.TrimSpace(c.Theme))
	if c.Theme != "dark" && c.Theme != "light" {
		c.Theme = DefaultTheme
	}

	if c.SeekStep <= 0 {
		c.SeekStep = DefaultSeekStep
	}
	if c.PositionInterval <= 0 {
		c.PositionInterval = DefaultPositionInterval
	}

	c.Extensions = normalizeExtensions(c.Extensions)
}

// normalizeExtensions lowercases entries and adds the leading dot.
func normalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" || ext == "." {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		out = append(out, ext)
	}
	if len(out) == 0 {
		return append([]string(nil), DefaultExtensions...)
	}
	return out
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/prosperity/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
