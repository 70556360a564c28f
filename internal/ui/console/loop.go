package console

import (
	"errors"
	"io"
	"log/slog"

	"github.com/aalvaropc/ibnoten/internal/domain"
	"github.com/aalvaropc/ibnoten/internal/ports"
	"github.com/aalvaropc/ibnoten/internal/ui/render"
)

type State int

const (
	AwaitingKey State = iota
	AwaitingScoreInput
	AwaitingGradeInput
	Terminated
)

func (s State) String() string {
	switch s {
	case AwaitingKey:
		return "awaiting_key"
	case AwaitingScoreInput:
		return "awaiting_score_input"
	case AwaitingGradeInput:
		return "awaiting_grade_input"
	case Terminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Raw mode turns these into plain bytes instead of signals.
const (
	keyCtrlC = '\x03'
	keyCtrlD = '\x04'
)

type Deps struct {
	Keys     ports.KeyReader
	Lines    ports.LineReader
	Out      io.Writer
	Theme    render.Theme
	Rounding domain.Rounding
	Logger   *slog.Logger
}

// Loop is the interactive key-driven converter.
type Loop struct {
	keys     ports.KeyReader
	lines    ports.LineReader
	out      *render.Printer
	rounding domain.Rounding
	log      *slog.Logger

	state State
}

func New(d Deps) *Loop {
	log := d.Logger
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	out := d.Out
	if out == nil {
		out = io.Discard
	}
	return &Loop{
		keys:     d.Keys,
		lines:    d.Lines,
		out:      render.NewPrinter(out, d.Theme),
		rounding: d.Rounding,
		log:      log,
		state:    AwaitingKey,
	}
}

func (l *Loop) State() State { return l.state }

// Run prints the usage, waits for a key and dispatches it until the user quits.
// End of input ends the loop without error; any other read failure is returned.
func (l *Loop) Run() error {
	l.log.Info("session.start")

	for l.state != Terminated {
		l.out.Usage()

		key, err := l.keys.ReadKey()
		if err != nil {
			l.state = Terminated
			if errors.Is(err, io.EOF) {
				l.log.Info("session.eof")
				return nil
			}
			l.log.Error("session.readkey", "err", err)
			return err
		}

		l.Dispatch(key)
	}

	l.log.Info("session.end")
	return nil
}

// Dispatch handles one key pressed in AwaitingKey and returns to AwaitingKey
// unless the key quits.
func (l *Loop) Dispatch(key rune) {
	if l.state != AwaitingKey {
		return
	}

	switch key {
	case 'q', 'Q', keyCtrlC, keyCtrlD:
		l.log.Info("session.quit", "key", string(key))
		l.out.Farewell()
		l.state = Terminated

	case 'a', 'A':
		l.out.Blank()
		l.log.Info("table.print", "from", int(domain.MinScore))
		l.out.Table(domain.GenerateTable(domain.MinScore))

	case 'm', 'M':
		l.out.Blank()
		l.state = AwaitingGradeInput
		l.gradeToScore()
		l.state = AwaitingKey

	case '\r', '\n':
		l.out.Blank()
		l.state = AwaitingScoreInput
		l.scoreToGrade()
		l.state = AwaitingKey

	default:
		l.log.Debug("key.ignored", "key", string(key))
	}
}

func (l *Loop) scoreToGrade() {
	l.out.Prompt(render.PromptScore)
	line, err := l.readLine("console.readscore")
	if err != nil {
		l.reject("convert.score", line, err)
		return
	}

	p, err := domain.ParseScore(line)
	if err != nil {
		l.reject("convert.score", line, err)
		return
	}

	g, err := domain.ScoreToGrade(p)
	if err != nil {
		l.reject("convert.score", line, err)
		return
	}

	l.log.Info("convert.score", "score", int(p), "grade", float64(g))
	l.out.ScoreResult(p, g)
}

func (l *Loop) gradeToScore() {
	l.out.Prompt(render.PromptGrade)
	line, err := l.readLine("console.readgrade")
	if err != nil {
		l.reject("convert.grade", line, err)
		return
	}

	g, err := domain.ParseGrade(line)
	if err != nil {
		l.reject("convert.grade", line, err)
		return
	}

	p, err := domain.GradeToMinScoreWith(g, l.rounding)
	if err != nil {
		l.reject("convert.grade", line, err)
		return
	}

	l.log.Info("convert.grade", "grade", float64(g), "score", int(p), "rounding", l.rounding.String())
	l.out.GradeResult(g, p)
}

// readLine treats any failure to read the number as malformed input so the
// request is abandoned like any other invalid value.
func (l *Loop) readLine(op string) (string, error) {
	line, err := l.lines.ReadLine()
	if err != nil {
		return "", &domain.OpError{Op: op, Kind: domain.KindMalformedInput, Err: err}
	}
	return line, nil
}

func (l *Loop) reject(event, input string, err error) {
	l.log.Warn(event+".rejected", "input", input, "kind", string(domain.KindOf(err)), "err", err)
	l.out.Error(err)
}
