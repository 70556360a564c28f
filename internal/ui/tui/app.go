package tui

import (
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/ibnoten/internal/domain"
	"github.com/aalvaropc/ibnoten/internal/ui/render"
)

type screen int

const (
	screenHome screen = iota
	screenTable
	screenScoreInput
	screenGradeInput
)

type model struct {
	theme Theme
	deps  Deps
	log   *slog.Logger

	scr   screen
	input textinput.Model

	result  string
	isError bool
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, m.log), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	t := DefaultTheme()
	if deps.NoColor {
		t = PlainTheme()
	}

	log := deps.Logger
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	in := textinput.New()
	in.CharLimit = 16
	in.Width = 16

	return model{
		theme: t,
		deps:  deps,
		log:   log,
		scr:   screenHome,
		input: in,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case scoreConvertedMsg:
		if msg.err != nil {
			m.log.Warn("convert.score.rejected", "input", msg.input, "kind", string(domain.KindOf(msg.err)))
			m.setError(msg.err)
			return m, nil
		}
		m.log.Info("convert.score", "score", int(msg.score), "grade", float64(msg.grade))
		m.result = render.ScoreLine(m.theme.Theme, msg.score, msg.grade)
		m.isError = false
		return m, nil

	case gradeConvertedMsg:
		if msg.err != nil {
			m.log.Warn("convert.grade.rejected", "input", msg.input, "kind", string(domain.KindOf(msg.err)))
			m.setError(msg.err)
			return m, nil
		}
		m.log.Info("convert.grade", "grade", float64(msg.grade), "score", int(msg.score))
		m.result = render.GradeLine(m.theme.Theme, msg.grade, msg.score)
		m.isError = false
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		switch m.scr {
		case screenHome:
			return m.updateHome(msg)
		case screenTable:
			switch msg.String() {
			case "esc", "b", "enter", "q", "Q":
				m.scr = screenHome
			}
			return m, nil
		case screenScoreInput, screenGradeInput:
			return m.updateInput(msg)
		}
	}

	return m, nil
}

func (m model) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "Q":
		m.log.Info("session.quit")
		return m, tea.Quit
	case "a", "A":
		m.scr = screenTable
		return m, nil
	case "m", "M":
		return m.openInput(screenGradeInput, "2.5")
	case "enter":
		return m.openInput(screenScoreInput, "36")
	}
	return m, nil
}

func (m model) openInput(scr screen, placeholder string) (tea.Model, tea.Cmd) {
	m.scr = scr
	m.input.Reset()
	m.input.Placeholder = placeholder
	if scr == screenScoreInput {
		m.input.Prompt = render.PromptScore
	} else {
		m.input.Prompt = render.PromptGrade
	}
	return m, m.input.Focus()
}

func (m model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.input.Blur()
		m.scr = screenHome
		return m, nil
	case "enter":
		value := m.input.Value()
		scr := m.scr
		m.input.Blur()
		m.scr = screenHome
		if scr == screenScoreInput {
			return m, cmdConvertScore(value)
		}
		return m, cmdConvertGrade(value, m.deps.Rounding)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *model) setError(err error) {
	m.result = render.ErrorLine(m.theme.Theme, err)
	m.isError = true
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("ibnoten") + "\n" +
		m.theme.Subtitle.Render("IB points ↔ average grade") + "\n"

	switch m.scr {
	case screenHome:
		body := strings.Join(render.UsageLines(m.theme.Theme), "\n")
		if m.result != "" {
			body += "\n\n" + m.result
		}
		return wrap.Render(header + "\n" + m.theme.Card.Render(body))

	case screenTable:
		var lines []string
		for p, g := range domain.GenerateTable(domain.MinScore) {
			lines = append(lines, render.ScoreLine(m.theme.Theme, p, g))
		}
		help := m.theme.Help.Render("esc/b/enter back • ctrl+c quit")
		return wrap.Render(header + "\n" + m.theme.Card.Render(strings.Join(lines, "\n")) + "\n" + help)

	case screenScoreInput, screenGradeInput:
		help := m.theme.Help.Render("enter convert • esc cancel")
		return wrap.Render(header + "\n" + m.theme.Card.Render(m.input.View()) + "\n" + help)

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}
}
