package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/ibnoten/internal/domain"
	"github.com/aalvaropc/ibnoten/internal/infra/logger"
	"github.com/aalvaropc/ibnoten/internal/ui/tui"
)

func tuiCmd(opts *globalOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Full-screen interactive converter",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			rounding, err := domain.ParseRounding(opts.rounding)
			if err != nil {
				return err
			}

			cleanup := startLogging(opts)
			defer cleanup()

			return tui.Run(tui.Deps{
				Rounding: rounding,
				NoColor:  !useColor(opts, os.Stdout),
				Logger:   logger.L(),
				Debug:    opts.debug,
			})
		},
	}
}
