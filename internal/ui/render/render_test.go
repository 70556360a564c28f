package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/aalvaropc/ibnoten/internal/domain"
)

func TestFormatGrade(t *testing.T) {
	cases := []struct {
		in   domain.Grade
		want string
	}{
		{4.0, "4.0"},
		{1.0, "1.0"},
		{2.0, "2.0"},
		{2.5, "2.5"},
		{1.0 + 1.0/6.0, "1.2"},
		{1.0 + 5.0/6.0, "1.8"},
		{1.0 + 17.0/6.0, "3.8"},
	}
	for _, c := range cases {
		if got := FormatGrade(c.in); got != c.want {
			t.Errorf("FormatGrade(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestScoreLine_Plain(t *testing.T) {
	got := ScoreLine(PlainTheme(), 36, 2.0)
	want := "For 36 points, 2.0 is the corresponding average grade"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestGradeLine_Plain(t *testing.T) {
	got := GradeLine(PlainTheme(), 2.25, 34)
	want := "For an average grade of 2.25 you need at least 34 IB points"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestErrorMessage(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"invalid score", &domain.OpError{Kind: domain.KindInvalidScore}, "Invalid score, must be between 24 and 45."},
		{"invalid grade", &domain.OpError{Kind: domain.KindInvalidGrade}, "Invalid grade, must be between 1.0 and 4.0."},
		{"malformed", &domain.OpError{Kind: domain.KindMalformedInput}, "Invalid input, expected a number."},
		{"config", &domain.OpError{Kind: domain.KindInvalidConfig, Input: "xml"}, `Invalid option "xml".`},
		{"unknown", errors.New("boom"), "Unexpected error (see logs)"},
		{"nil", nil, ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ErrorMessage(c.err); got != c.want {
				t.Fatalf("got %q, want %q", got, c.want)
			}
		})
	}
}

func TestPrinter_Table(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, PlainTheme()).Table(domain.GenerateTable(domain.MinScore))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 22 {
		t.Fatalf("expected 22 lines, got %d:\n%s", len(lines), buf.String())
	}
	if lines[0] != "For 24 points, 4.0 is the corresponding average grade" {
		t.Fatalf("unexpected first line %q", lines[0])
	}
	if lines[21] != "For 45 points, 1.0 is the corresponding average grade" {
		t.Fatalf("unexpected last line %q", lines[21])
	}
}

func TestPrinter_UsageHasFourLines(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, PlainTheme()).Usage()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 usage lines, got %d", len(lines))
	}
	for i, key := range []string{" a ", " m ", " Enter ", " q "} {
		if !strings.Contains(lines[i], key) {
			t.Errorf("line %d: expected key %q in %q", i, key, lines[i])
		}
	}
}

func TestThemeFor_NoColorIsPlain(t *testing.T) {
	var buf bytes.Buffer
	th := ThemeFor(&buf, false)
	if got := th.Error.Render("x"); got != "x" {
		t.Fatalf("expected no escape codes, got %q", got)
	}
}
