package styles

import "github.com/charmbracelet/lipgloss"

// Palette is one color scheme. The light palette is the default; dark mode
// swaps it at runtime through Apply.
type Palette struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
	Info       lipgloss.Color
	Muted      lipgloss.Color
	Background lipgloss.Color
	Foreground lipgloss.Color
	Highlight  lipgloss.Color
}

var (
	LightPalette = Palette{
		Primary:    lipgloss.Color("#3B5BDB"),
		Secondary:  lipgloss.Color("#7048E8"),
		Success:    lipgloss.Color("#2B8A3E"),
		Warning:    lipgloss.Color("#E67700"),
		Error:      lipgloss.Color("#C92A2A"),
		Info:       lipgloss.Color("#1971C2"),
		Muted:      lipgloss.Color("#868E96"),
		Background: lipgloss.Color("#F8F9FA"),
		Foreground: lipgloss.Color("#212529"),
		Highlight:  lipgloss.Color("#DBE4FF"),
	}

	DarkPalette = Palette{
		Primary:    lipgloss.Color("#82AAFF"),
		Secondary:  lipgloss.Color("#C792EA"),
		Success:    lipgloss.Color("#C3E88D"),
		Warning:    lipgloss.Color("#FFCB6B"),
		Error:      lipgloss.Color("#F07178"),
		Info:       lipgloss.Color("#89DDFF"),
		Muted:      lipgloss.Color("#546E7A"),
		Background: lipgloss.Color("#263238"),
		Foreground: lipgloss.Color("#EEFFFF"),
		Highlight:  lipgloss.Color("#37474F"),
	}
)

var (
	RoundedBorder = lipgloss.RoundedBorder()
	ThickBorder   = lipgloss.ThickBorder()
)

var (
	current Palette
	dark    bool

	TitleStyle         lipgloss.Style
	SubtitleStyle      lipgloss.Style
	TextStyle          lipgloss.Style
	MutedStyle         lipgloss.Style
	SelectedStyle      lipgloss.Style
	CardStyle          lipgloss.Style
	ActiveCardStyle    lipgloss.Style
	StatusDownloading  lipgloss.Style
	StatusCompleted    lipgloss.Style
	StatusError        lipgloss.Style
	ProgressBarStyle   lipgloss.Style
	ProgressEmptyStyle lipgloss.Style
	ActiveTabStyle     lipgloss.Style
	InactiveTabStyle   lipgloss.Style
	HelpStyle          lipgloss.Style
	ButtonStyle        lipgloss.Style
	DisabledButton     lipgloss.Style
	ModalStyle         lipgloss.Style
	LinkStyle          lipgloss.Style
)

func init() {
	Apply(false)
}

// Dark reports whether the dark palette is active.
func Dark() bool {
	return dark
}

func Current() Palette {
	return current
}

// Apply rebuilds every style from the light or dark palette.
func Apply(darkMode bool) {
	dark = darkMode
	p := LightPalette
	if darkMode {
		p = DarkPalette
	}
	current = p

	TitleStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true).
		MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(p.Secondary).
		Italic(true)

	TextStyle = lipgloss.NewStyle().
		Foreground(p.Foreground)

	MutedStyle = lipgloss.NewStyle().
		Foreground(p.Muted)

	SelectedStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Background(p.Highlight).
		Bold(true)

	CardStyle = lipgloss.NewStyle().
		Border(RoundedBorder).
		BorderForeground(p.Secondary).
		Padding(0, 2).
		MarginBottom(1)

	ActiveCardStyle = lipgloss.NewStyle().
		Border(ThickBorder).
		BorderForeground(p.Primary).
		Padding(0, 2).
		MarginBottom(1)

	StatusDownloading = lipgloss.NewStyle().
		Foreground(p.Info).
		Bold(true)

	StatusCompleted = lipgloss.NewStyle().
		Foreground(p.Success).
		Bold(true)

	StatusError = lipgloss.NewStyle().
		Foreground(p.Error).
		Bold(true)

	ProgressBarStyle = lipgloss.NewStyle().
		Foreground(p.Success)

	ProgressEmptyStyle = lipgloss.NewStyle().
		Foreground(p.Muted)

	ActiveTabStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Background(p.Highlight).
		Padding(0, 2).
		Bold(true)

	InactiveTabStyle = lipgloss.NewStyle().
		Foreground(p.Muted).
		Padding(0, 2)

	HelpStyle = lipgloss.NewStyle().
		Foreground(p.Muted).
		Italic(true).
		MarginTop(1)

	ButtonStyle = lipgloss.NewStyle().
		Foreground(p.Background).
		Background(p.Primary).
		Padding(0, 2).
		Bold(true)

	DisabledButton = lipgloss.NewStyle().
		Foreground(p.Background).
		Background(p.Success).
		Padding(0, 2)

	ModalStyle = lipgloss.NewStyle().
		Border(RoundedBorder).
		BorderForeground(p.Primary).
		Padding(1, 4)

	LinkStyle = lipgloss.NewStyle().
		Foreground(p.Info).
		Underline(true)
}

// StatusStyle picks the style for a download or notification status.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case "downloading", "info":
		return StatusDownloading
	case "complete", "completed", "success":
		return StatusCompleted
	case "error":
		return StatusError
	default:
		return MutedStyle
	}
}
