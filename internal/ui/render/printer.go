package render

import (
	"fmt"
	"io"
	"iter"

	"github.com/aalvaropc/ibnoten/internal/domain"
)

// Printer writes themed lines to an output stream.
// Write errors are ignored; a broken stdout has nowhere to be reported.
type Printer struct {
	w     io.Writer
	theme Theme
}

func NewPrinter(w io.Writer, theme Theme) *Printer {
	return &Printer{w: w, theme: theme}
}

func (p *Printer) Usage() {
	for _, l := range UsageLines(p.theme) {
		fmt.Fprintln(p.w, l)
	}
}

func (p *Printer) Prompt(text string) {
	fmt.Fprint(p.w, p.theme.Text.Render(text))
}

func (p *Printer) Blank() {
	fmt.Fprintln(p.w)
}

func (p *Printer) ScoreResult(s domain.Score, g domain.Grade) {
	fmt.Fprintln(p.w, ScoreLine(p.theme, s, g))
	fmt.Fprintln(p.w)
}

func (p *Printer) GradeResult(g domain.Grade, s domain.Score) {
	fmt.Fprintln(p.w, GradeLine(p.theme, g, s))
	fmt.Fprintln(p.w)
}

// Table prints one line per pair followed by a blank line.
func (p *Printer) Table(rows iter.Seq2[domain.Score, domain.Grade]) {
	for s, g := range rows {
		fmt.Fprintln(p.w, ScoreLine(p.theme, s, g))
	}
	fmt.Fprintln(p.w)
}

func (p *Printer) Error(err error) {
	fmt.Fprintln(p.w, ErrorLine(p.theme, err))
}

func (p *Printer) Farewell() {
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, Farewell)
}
