package terminal

import (
	"bufio"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/aalvaropc/ibnoten/internal/domain"
	"github.com/aalvaropc/ibnoten/internal/ports"
)

// ModeSwitcher toggles raw mode on a file descriptor.
type ModeSwitcher interface {
	IsTerminal(fd int) bool
	MakeRaw(fd int) (*term.State, error)
	Restore(fd int, state *term.State) error
}

type xterm struct{}

func (xterm) IsTerminal(fd int) bool                  { return term.IsTerminal(fd) }
func (xterm) MakeRaw(fd int) (*term.State, error)     { return term.MakeRaw(fd) }
func (xterm) Restore(fd int, state *term.State) error { return term.Restore(fd, state) }

// Console reads single keys and whole lines from one input stream.
// Both kinds of read share a buffer so keys typed ahead are not lost.
type Console struct {
	in    *bufio.Reader
	fd    int
	modes ModeSwitcher
}

type Option func(*Console)

// WithModeSwitcher replaces the x/term backed raw-mode switch. Useful for tests.
func WithModeSwitcher(m ModeSwitcher) Option {
	return func(c *Console) {
		if m != nil {
			c.modes = m
		}
	}
}

// New builds a Console over in. fd is the descriptor raw mode is applied to;
// when it is not a terminal keys are read without touching terminal state.
func New(in io.Reader, fd int, opts ...Option) *Console {
	c := &Console{
		in:    bufio.NewReader(in),
		fd:    fd,
		modes: xterm{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Stdin returns a Console bound to the process stdin.
func Stdin() *Console {
	return New(os.Stdin, int(os.Stdin.Fd()))
}

var (
	_ ports.KeyReader  = (*Console)(nil)
	_ ports.LineReader = (*Console)(nil)
)

// ReadKey switches the terminal to raw mode, reads one character and restores
// the previous terminal state, also when the read fails.
func (c *Console) ReadKey() (r rune, err error) {
	if c.modes.IsTerminal(c.fd) {
		state, rawErr := c.modes.MakeRaw(c.fd)
		if rawErr != nil {
			return 0, &domain.OpError{Op: "terminal.makeraw", Kind: domain.KindIO, Err: rawErr}
		}
		defer func() {
			if rerr := c.modes.Restore(c.fd, state); rerr != nil && err == nil {
				err = &domain.OpError{Op: "terminal.restore", Kind: domain.KindIO, Err: rerr}
			}
		}()
	}

	r, _, err = c.in.ReadRune()
	if err != nil {
		return 0, &domain.OpError{Op: "terminal.readkey", Kind: domain.KindIO, Err: err}
	}
	return r, nil
}

// ReadLine reads up to and including the next newline and drops the line ending.
// A final line without newline is returned as is.
func (c *Console) ReadLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil && !(err == io.EOF && line != "") {
		return "", &domain.OpError{Op: "terminal.readline", Kind: domain.KindIO, Err: err}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
