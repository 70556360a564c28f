package render

import (
	"errors"
	"strconv"
	"strings"

	"github.com/aalvaropc/ibnoten/internal/domain"
)

const (
	PromptScore = "Your IB score: "
	PromptGrade = "Target average grade: "
	Farewell    = "Exiting application..."
)

// FormatGrade prints a grade with two significant digits and at least one
// decimal place: 4 -> "4.0", 1.1666 -> "1.2".
func FormatGrade(g domain.Grade) string {
	return withDecimal(strconv.FormatFloat(float64(g), 'g', 2, 64))
}

// formatInputGrade echoes a grade the user typed without losing precision.
func formatInputGrade(g domain.Grade) string {
	return withDecimal(strconv.FormatFloat(float64(g), 'f', -1, 64))
}

func withDecimal(s string) string {
	if strings.ContainsAny(s, ".eEnN") {
		return s
	}
	return s + ".0"
}

// UsageLines returns the four instruction lines shown before every key read.
func UsageLines(t Theme) []string {
	line := func(key, action string) string {
		return t.Text.Render(" › Press ") + t.Emphasis.Render(key) + t.Text.Render(" "+action)
	}
	return []string{
		line("a", "to list the average grade for every possible score."),
		line("m", "to compute the minimum IB score for a target average grade."),
		line("Enter", "to compute the average grade for an IB score."),
		line("q", "to quit the application."),
	}
}

// ScoreLine renders one score -> grade result.
func ScoreLine(t Theme, p domain.Score, g domain.Grade) string {
	return t.Text.Render("For ") +
		t.Emphasis.Render(strconv.Itoa(int(p))) +
		t.Text.Render(" points, ") +
		t.Emphasis.Render(FormatGrade(g)) +
		t.Text.Render(" is the corresponding average grade")
}

// GradeLine renders one grade -> minimum score result.
func GradeLine(t Theme, g domain.Grade, p domain.Score) string {
	return t.Text.Render("For an average grade of ") +
		t.Emphasis.Render(formatInputGrade(g)) +
		t.Text.Render(" you need at least ") +
		t.Emphasis.Render(strconv.Itoa(int(p))) +
		t.Text.Render(" IB points")
}

// ErrorLine renders err as a single highlighted user-facing line.
func ErrorLine(t Theme, err error) string {
	return t.Error.Render(ErrorMessage(err))
}

// ErrorMessage maps an error to the text shown to the user.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {
		case domain.KindInvalidScore:
			return "Invalid score, must be between 24 and 45."
		case domain.KindInvalidGrade:
			return "Invalid grade, must be between 1.0 and 4.0."
		case domain.KindMalformedInput:
			return "Invalid input, expected a number."
		case domain.KindInvalidConfig:
			if oe.Input != "" {
				return "Invalid option " + strconv.Quote(oe.Input) + "."
			}
			return "Invalid option."
		}
	}
	return "Unexpected error (see logs)"
}
