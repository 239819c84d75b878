// Package icons holds the glyph sets used by the player surface.
package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for one style.
type Icons struct {
	Play       string
	Pause      string
	Stop       string
	Audio      string // prefix for track names
	Current    string // marker for the track under the playlist cursor
	Volume     string
	VolumeMute string
	Theme      string
}

var (
	nerdIcons = Icons{
		Play:       "\uf04b",     // nf-fa-play
		Pause:      "\uf04c",     // nf-fa-pause
		Stop:       "\uf04d",     // nf-fa-stop
		Audio:      "\uf001 ",    // nf-fa-music
		Current:    "\U000f040a", // nf-md-play
		Volume:     "\U000f057e", // nf-md-volume_high
		VolumeMute: "\U000f075f", // nf-md-volume_mute
		Theme:      "\uf186",     // nf-fa-moon_o
	}

	unicodeIcons = Icons{
		Play:       "▶",
		Pause:      "⏸",
		Stop:       "⏹",
		Audio:      "♪ ",
		Current:    "▸",
		Volume:     "🔊",
		VolumeMute: "🔇",
		Theme:      "◐",
	}

	noneIcons = Icons{
		Play:       ">",
		Pause:      "||",
		Stop:       "[]",
		Audio:      "",
		Current:    ">",
		Volume:     "Vol",
		VolumeMute: "Mute",
		Theme:      "Theme",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init selects the icon set for style. Call this once at startup with the
// config value; unknown styles use plain text.
func Init(style string) {
	current = Set(style)
}

// Set returns the icon set for style without activating it.
func Set(style string) Icons {
	switch Style(style) {
	case StyleNerd:
		return nerdIcons
	case StyleUnicode:
		return unicodeIcons
	case StyleNone:
		return noneIcons
	}
	return noneIcons
}

// Play returns the playing indicator.
func Play() string { return current.Play }

// Pause returns the paused indicator.
func Pause() string { return current.Pause }

// Stop returns the stopped indicator.
func Stop() string { return current.Stop }

// Current returns the playlist cursor marker.
func Current() string { return current.Current }

// Theme returns the theme toggle glyph.
func Theme() string { return current.Theme }

// Volume returns the volume glyph, or the muted one at level 0.
func Volume(level int) string {
	if level <= 0 {
		return current.VolumeMute
	}
	return current.Volume
}

// FormatAudio formats a track name with the appropriate icon.
func FormatAudio(name string) string {
	return current.Audio + name
}
