package tui

import "github.com/charmbracelet/lipgloss"

var (
	ColorFgPrimary = lipgloss.Color("#ABB2BF")
	ColorFgMuted   = lipgloss.Color("#636B78")
	ColorRed       = lipgloss.Color("#E06C75")
	ColorGreen     = lipgloss.Color("#98C379")
	ColorYellow    = lipgloss.Color("#E5C07B")
	ColorBlue      = lipgloss.Color("#61AFEF")
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorRed).
			Bold(true).
			PaddingLeft(1)

	StatusStyle = lipgloss.NewStyle().
			Foreground(ColorFgPrimary).
			PaddingLeft(1)

	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(ColorRed).
				PaddingLeft(1)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorFgMuted).
			PaddingLeft(1)
)

// modeStyle returns the style of the mode badge in the status line.
func modeStyle(mode string) lipgloss.Style {
	s := lipgloss.NewStyle().Bold(true)
	switch mode {
	case "animating":
		return s.Foreground(ColorGreen)
	case "dragging":
		return s.Foreground(ColorYellow)
	default:
		return s.Foreground(ColorBlue)
	}
}

// canvasStyle colours the braille canvas with the curve colour.
func canvasStyle(color string) lipgloss.Style {
	if color == "" {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}
