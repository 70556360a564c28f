package render

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Title    lipgloss.Style
	Text     lipgloss.Style
	Emphasis lipgloss.Style
	Error    lipgloss.Style
}

// DefaultTheme styles output for the default lipgloss renderer (stdout).
func DefaultTheme() Theme {
	return themeFrom(lipgloss.DefaultRenderer())
}

// ThemeFor returns a theme whose color profile is detected from w.
// With color disabled every style renders its input unchanged.
func ThemeFor(w io.Writer, color bool) Theme {
	if !color {
		return PlainTheme()
	}
	return themeFrom(lipgloss.NewRenderer(w))
}

// PlainTheme renders no escape sequences at all.
func PlainTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle(),
		Text:     lipgloss.NewStyle(),
		Emphasis: lipgloss.NewStyle(),
		Error:    lipgloss.NewStyle(),
	}
}

func themeFrom(r *lipgloss.Renderer) Theme {
	return Theme{
		Title:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		Text:     r.NewStyle().Foreground(lipgloss.Color("8")),
		Emphasis: r.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		Error:    r.NewStyle().Foreground(lipgloss.Color("1")),
	}
}
