package art

import "github.com/charmbracelet/lipgloss"

// Styles renders feedback markers and drawings. The zero value renders plain
// text unchanged.
type Styles struct {
	enabled bool
	reject  lipgloss.Style
	miss    lipgloss.Style
	win     lipgloss.Style
	lose    lipgloss.Style
	gallows lipgloss.Style
	banner  lipgloss.Style
}

// NewStyles returns colored styles, or plain ones when color is false.
func NewStyles(color bool) Styles {
	if !color {
		return Styles{}
	}
	return Styles{
		enabled: true,
		reject:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Bold(true),
		miss:    lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")),
		win:     lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A")).Bold(true),
		lose:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Bold(true),
		gallows: lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C")),
		banner:  lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")),
	}
}

// Reject styles the rejected-guess marker.
func (s Styles) Reject(text string) string { return s.render(s.reject, text) }

// Miss styles the incorrect-guess marker.
func (s Styles) Miss(text string) string { return s.render(s.miss, text) }

// Win styles the win message.
func (s Styles) Win(text string) string { return s.render(s.win, text) }

// Lose styles the lose message.
func (s Styles) Lose(text string) string { return s.render(s.lose, text) }

// Gallows styles a gallows drawing.
func (s Styles) Gallows(text string) string { return s.render(s.gallows, text) }

// Banner styles the opening banner.
func (s Styles) Banner(text string) string { return s.render(s.banner, text) }

func (s Styles) render(style lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}
	return style.Render(text)
}
