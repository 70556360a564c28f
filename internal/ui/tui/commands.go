package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/ibnoten/internal/domain"
)

func cmdConvertScore(input string) tea.Cmd {
	return func() tea.Msg {
		p, err := domain.ParseScore(input)
		if err != nil {
			return scoreConvertedMsg{input: input, err: err}
		}
		g, err := domain.ScoreToGrade(p)
		return scoreConvertedMsg{input: input, score: p, grade: g, err: err}
	}
}

func cmdConvertGrade(input string, r domain.Rounding) tea.Cmd {
	return func() tea.Msg {
		g, err := domain.ParseGrade(input)
		if err != nil {
			return gradeConvertedMsg{input: input, err: err}
		}
		p, err := domain.GradeToMinScoreWith(g, r)
		return gradeConvertedMsg{input: input, grade: g, score: p, err: err}
	}
}
