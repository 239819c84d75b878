package styles

import "github.com/charmbracelet/lipgloss"

// Mode selects one of the two color themes.
type Mode int

const (
	Dark Mode = iota
	Light
)

// ParseMode returns the mode named by s ("dark" or "light").
// Anything else yields Dark.
func ParseMode(s string) Mode {
	if s == "light" {
		return Light
	}
	return Dark
}

// String returns the mode name.
func (m Mode) String() string {
	if m == Light {
		return "light"
	}
	return "dark"
}

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == Dark {
		return Light
	}
	return Dark
}

// ButtonLabel is the label of the theme control: it names the mode a
// press switches to.
func (m Mode) ButtonLabel() string {
	if m == Dark {
		return "Light"
	}
	return "Dark"
}

// Theme defines the color palette and pre-built styles for one mode.
type Theme struct {
	Mode Mode

	Background lipgloss.Color // window background
	Foreground lipgloss.Color // text and accents
	Surface    lipgloss.Color // control background
	ListBg     lipgloss.Color // track list background
	Border     lipgloss.Color // panel borders
	Groove     lipgloss.Color // empty part of sliders
	Handle     lipgloss.Color // filled part of sliders
	Muted      lipgloss.Color // secondary text
	Error      lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base      lipgloss.Style // Default text on the window background
	Muted     lipgloss.Style
	Title     lipgloss.Style
	Playing   lipgloss.Style // Current track in the list
	Cursor    lipgloss.Style // Highlighted row, inverted like a hovered button
	Button    lipgloss.Style
	Panel     lipgloss.Style
	Groove    lipgloss.Style
	Handle    lipgloss.Style
	Error     lipgloss.Style
	ListPanel lipgloss.Style
}

var darkTheme = Theme{
	Mode:       Dark,
	Background: lipgloss.Color("#121212"),
	Foreground: lipgloss.Color("#FFD700"),
	Surface:    lipgloss.Color("#1E1E1E"),
	ListBg:     lipgloss.Color("#1A1A1A"),
	Border:     lipgloss.Color("#FFD700"),
	Groove:     lipgloss.Color("#333333"),
	Handle:     lipgloss.Color("#FFD700"),
	Muted:      lipgloss.Color("#B39700"),
	Error:      lipgloss.Color("#FF5555"),
}

var lightTheme = Theme{
	Mode:       Light,
	Background: lipgloss.Color("#FFFFFF"),
	Foreground: lipgloss.Color("#000080"),
	Surface:    lipgloss.Color("#F0F0F0"),
	ListBg:     lipgloss.Color("#FAFAFA"),
	Border:     lipgloss.Color("#000080"),
	Groove:     lipgloss.Color("#CCCCCC"),
	Handle:     lipgloss.Color("#000080"),
	Muted:      lipgloss.Color("#5A5AA8"),
	Error:      lipgloss.Color("#C00000"),
}

// For returns the theme for mode.
func For(mode Mode) *Theme {
	if mode == Light {
		return &lightTheme
	}
	return &darkTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.Foreground).Background(t.Background)
	border := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		BorderBackground(t.Background)

	return &Styles{
		Base:    base,
		Muted:   base.Foreground(t.Muted),
		Title:   base.Bold(true),
		Playing: base.Bold(true),
		Cursor: lipgloss.NewStyle().
			Foreground(t.Background).
			Background(t.Foreground).
			Bold(true),
		Button: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Background(t.Surface).
			Padding(0, 1),
		Panel:     border.Background(t.Background),
		Groove:    lipgloss.NewStyle().Foreground(t.Groove).Background(t.Background),
		Handle:    lipgloss.NewStyle().Foreground(t.Handle).Background(t.Background),
		Error:     base.Foreground(t.Error),
		ListPanel: border.Background(t.ListBg),
	}
}
