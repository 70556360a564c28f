package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/ibnoten/internal/domain"
	"github.com/aalvaropc/ibnoten/internal/infra/logger"
	"github.com/aalvaropc/ibnoten/internal/infra/terminal"
	"github.com/aalvaropc/ibnoten/internal/ui/console"
	"github.com/aalvaropc/ibnoten/internal/ui/render"
)

type globalOpts struct {
	debug    bool
	noColor  bool
	logDir   string
	rounding string
}

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, userMessage(err))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &globalOpts{}

	cmd := &cobra.Command{
		Use:           "ibnoten",
		Short:         "Convert IB diploma points to German average grades and back",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rounding, err := domain.ParseRounding(opts.rounding)
			if err != nil {
				return err
			}

			cleanup := startLogging(opts)
			defer cleanup()

			in := terminal.Stdin()
			out := cmd.OutOrStdout()

			loop := console.New(console.Deps{
				Keys:     in,
				Lines:    in,
				Out:      out,
				Theme:    render.ThemeFor(out, useColor(opts, out)),
				Rounding: rounding,
				Logger:   logger.L(),
			})
			return loop.Run()
		},
	}

	pf := cmd.PersistentFlags()
	pf.BoolVar(&opts.debug, "debug", false, "enable verbose logging")
	pf.BoolVar(&opts.noColor, "no-color", false, "disable colored output (also honors NO_COLOR)")
	pf.StringVar(&opts.logDir, "log-dir", "", "directory for ibnoten.log (default: user cache dir)")
	pf.StringVar(&opts.rounding, "rounding", "nearest", "grade to score rounding: nearest|up")

	cmd.AddCommand(
		tuiCmd(opts),
		gradeCmd(opts),
		scoreCmd(opts),
		tableCmd(opts),
		versionCmd(),
	)
	return cmd
}

// startLogging opens the log file. A log that cannot be opened falls back to
// discarding records; the tool keeps working either way.
func startLogging(opts *globalOpts) func() {
	cleanup, err := logger.Setup(logger.Config{
		Dir:   opts.logDir,
		Debug: opts.debug,
	})
	if err != nil || cleanup == nil {
		return func() {}
	}
	logger.L().Debug("session.start", "log", logger.Path())
	return func() { _ = cleanup() }
}

func useColor(opts *globalOpts, w io.Writer) bool {
	if opts.noColor {
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	return ok && terminal.IsTerminal(f)
}

// userMessage is what Execute prints for a failed command.
func userMessage(err error) string {
	switch domain.KindOf(err) {
	case domain.KindInvalidScore, domain.KindInvalidGrade, domain.KindMalformedInput, domain.KindInvalidConfig:
		return render.ErrorMessage(err)
	default:
		return "Error: " + err.Error()
	}
}

func logRejected(log *slog.Logger, event, input string, err error) {
	log.Warn(event, "input", input, "kind", string(domain.KindOf(err)))
}
