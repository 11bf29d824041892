package theme

import "github.com/charmbracelet/lipgloss"

// Styles is the set of rendered lipgloss styles derived from one theme.
// The UI rebuilds it whenever the settings row changes theme.
type Styles struct {
	// Header is used for the top bar and section titles.
	Header lipgloss.Style

	// StatusBar is the bottom bar with key hints and toast messages.
	StatusBar lipgloss.Style

	// Card wraps one entry in the list or grid.
	Card lipgloss.Style

	// SelectedCard highlights the focused entry.
	SelectedCard lipgloss.Style

	// CategoryBadge renders an entry's category label.
	CategoryBadge lipgloss.Style

	// Panel wraps full-screen content like settings and help.
	Panel lipgloss.Style

	// Help renders keyboard hints.
	Help lipgloss.Style

	// Error renders failure toasts.
	Error lipgloss.Style

	// Muted renders timestamps and secondary text.
	Muted lipgloss.Style

	// Accent renders emphasized interactive text.
	Accent lipgloss.Style
}

// NewStyles derives the style set for a theme.
func NewStyles(t Theme) Styles {
	p := t.Palette
	return Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Text).
			Background(p.Accent).
			Padding(0, 1),
		StatusBar: lipgloss.NewStyle().
			Foreground(p.Text).
			Background(p.Surface).
			Padding(0, 1),
		Card: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Container),
		SelectedCard: lipgloss.NewStyle().
			Padding(0, 1).
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Accent).
			Foreground(p.Accent),
		CategoryBadge: lipgloss.NewStyle().
			Foreground(p.Background).
			Background(p.Container).
			Padding(0, 1),
		Panel: lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Container),
		Help: lipgloss.NewStyle().
			Foreground(p.Container).
			Italic(true),
		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Error),
		Muted: lipgloss.NewStyle().
			Foreground(p.Container),
		Accent: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Accent),
	}
}
