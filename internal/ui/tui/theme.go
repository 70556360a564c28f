package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/ibnoten/internal/ui/render"
)

type Theme struct {
	render.Theme

	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Card     lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Theme:    render.DefaultTheme(),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
	}
}

// PlainTheme keeps the layout but drops all colors.
func PlainTheme() Theme {
	return Theme{
		Theme:    render.PlainTheme(),
		Subtitle: lipgloss.NewStyle(),
		Help:     lipgloss.NewStyle(),
		Card:     lipgloss.NewStyle().Padding(1, 2).BorderStyle(lipgloss.RoundedBorder()),
	}
}
