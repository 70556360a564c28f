package console

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/aalvaropc/ibnoten/internal/domain"
	"github.com/aalvaropc/ibnoten/internal/infra/terminal"
	"github.com/aalvaropc/ibnoten/internal/ui/render"
)

// runScript feeds input through a non-terminal Console, like piping into the binary.
func runScript(t *testing.T, input string, rounding domain.Rounding) (string, *Loop) {
	t.Helper()

	c := terminal.New(strings.NewReader(input), -1)
	var out bytes.Buffer
	l := New(Deps{
		Keys:     c,
		Lines:    c,
		Out:      &out,
		Theme:    render.PlainTheme(),
		Rounding: rounding,
	})
	if err := l.Run(); err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}
	return out.String(), l
}

func TestLoop_TableKey(t *testing.T) {
	out, _ := runScript(t, "a", domain.RoundHalfAwayFromZero)

	first := strings.Index(out, "For 24 points, 4.0 is the corresponding average grade")
	last := strings.Index(out, "For 45 points, 1.0 is the corresponding average grade")
	if first < 0 || last < 0 {
		t.Fatalf("expected first and last table lines, got:\n%s", out)
	}
	if first > last {
		t.Fatalf("expected ascending table order")
	}
	if n := strings.Count(out, "is the corresponding average grade"); n != 22 {
		t.Fatalf("expected 22 table lines, got %d", n)
	}
}

func TestLoop_UpperCaseKeys(t *testing.T) {
	out, l := runScript(t, "AM2.5\nQ", domain.RoundHalfAwayFromZero)

	if n := strings.Count(out, "is the corresponding average grade"); n != 22 {
		t.Fatalf("expected table for 'A', got %d lines", n)
	}
	if !strings.Contains(out, "you need at least 33 IB points") {
		t.Fatalf("expected grade result for 'M', got:\n%s", out)
	}
	if l.State() != Terminated {
		t.Fatalf("expected Terminated after 'Q', got %s", l.State())
	}
}

func TestLoop_EnterConvertsScore(t *testing.T) {
	for _, enter := range []string{"\n", "\r"} {
		out, _ := runScript(t, enter+"36\n", domain.RoundHalfAwayFromZero)

		if !strings.Contains(out, render.PromptScore) {
			t.Fatalf("expected score prompt, got:\n%s", out)
		}
		if !strings.Contains(out, "For 36 points, 2.0 is the corresponding average grade") {
			t.Fatalf("expected grade 2.0 for 36 points, got:\n%s", out)
		}
	}
}

func TestLoop_GradeKeyConvertsGrade(t *testing.T) {
	out, _ := runScript(t, "m2.5\n", domain.RoundHalfAwayFromZero)

	if !strings.Contains(out, render.PromptGrade) {
		t.Fatalf("expected grade prompt, got:\n%s", out)
	}
	if !strings.Contains(out, "For an average grade of 2.5 you need at least 33 IB points") {
		t.Fatalf("expected 33 points for 2.5, got:\n%s", out)
	}
}

func TestLoop_RoundingIsApplied(t *testing.T) {
	nearest, _ := runScript(t, "m1.3\n", domain.RoundHalfAwayFromZero)
	up, _ := runScript(t, "m1.3\n", domain.RoundUp)

	if !strings.Contains(nearest, "at least 40 IB points") {
		t.Fatalf("expected 40 with nearest rounding, got:\n%s", nearest)
	}
	if !strings.Contains(up, "at least 41 IB points") {
		t.Fatalf("expected 41 with rounding up, got:\n%s", up)
	}
}

func TestLoop_InvalidGrade(t *testing.T) {
	out, l := runScript(t, "m5.0\n", domain.RoundHalfAwayFromZero)

	if !strings.Contains(out, "Invalid grade, must be between 1.0 and 4.0.") {
		t.Fatalf("expected invalid grade line, got:\n%s", out)
	}
	if strings.Contains(out, "you need at least") {
		t.Fatalf("expected no score printed, got:\n%s", out)
	}
	if l.State() != Terminated {
		t.Fatalf("expected loop to end on EOF, got %s", l.State())
	}
}

func TestLoop_InvalidScore(t *testing.T) {
	out, _ := runScript(t, "\n50\n", domain.RoundHalfAwayFromZero)

	if !strings.Contains(out, "Invalid score, must be between 24 and 45.") {
		t.Fatalf("expected invalid score line, got:\n%s", out)
	}
}

func TestLoop_MalformedInputRecovers(t *testing.T) {
	out, _ := runScript(t, "\nabc\nm2.5\n", domain.RoundHalfAwayFromZero)

	if !strings.Contains(out, "Invalid input, expected a number.") {
		t.Fatalf("expected malformed input line, got:\n%s", out)
	}
	if !strings.Contains(out, "at least 33 IB points") {
		t.Fatalf("expected loop to continue after malformed input, got:\n%s", out)
	}
}

func TestLoop_QuitStopsReading(t *testing.T) {
	out, l := runScript(t, "qa", domain.RoundHalfAwayFromZero)

	if !strings.Contains(out, render.Farewell) {
		t.Fatalf("expected farewell, got:\n%s", out)
	}
	if strings.Contains(out, "is the corresponding average grade") {
		t.Fatalf("expected no table after quit, got:\n%s", out)
	}
	if l.State() != Terminated {
		t.Fatalf("expected Terminated, got %s", l.State())
	}
}

func TestLoop_OtherKeysIgnored(t *testing.T) {
	out, _ := runScript(t, "xz7q", domain.RoundHalfAwayFromZero)

	if n := strings.Count(out, "to quit the application."); n != 4 {
		t.Fatalf("expected usage before each of 4 key reads, got %d", n)
	}
	if strings.Contains(out, "Invalid") {
		t.Fatalf("expected ignored keys to be silent, got:\n%s", out)
	}
}

func TestLoop_CtrlCQuits(t *testing.T) {
	out, l := runScript(t, "\x03a", domain.RoundHalfAwayFromZero)

	if l.State() != Terminated || !strings.Contains(out, render.Farewell) {
		t.Fatalf("expected Ctrl+C to quit, state=%s", l.State())
	}
}

type failingKeys struct{ err error }

func (f failingKeys) ReadKey() (rune, error) { return 0, f.err }

func TestLoop_KeyReadErrorIsReturned(t *testing.T) {
	readErr := errors.New("tty lost")
	l := New(Deps{Keys: failingKeys{err: readErr}, Theme: render.PlainTheme()})

	if err := l.Run(); !errors.Is(err, readErr) {
		t.Fatalf("expected read error, got %v", err)
	}
	if l.State() != Terminated {
		t.Fatalf("expected Terminated, got %s", l.State())
	}
}

func TestDispatch_IgnoredOutsideAwaitingKey(t *testing.T) {
	var out bytes.Buffer
	l := New(Deps{Out: &out, Theme: render.PlainTheme()})
	l.state = Terminated

	l.Dispatch('a')
	if out.Len() != 0 {
		t.Fatalf("expected no output after termination, got %q", out.String())
	}
}
