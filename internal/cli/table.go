package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/ibnoten/internal/domain"
	"github.com/aalvaropc/ibnoten/internal/infra/logger"
	"github.com/aalvaropc/ibnoten/internal/infra/tableexport"
	"github.com/aalvaropc/ibnoten/internal/ports"
	"github.com/aalvaropc/ibnoten/internal/ui/render"
)

const formatPretty = "pretty"

func tableCmd(opts *globalOpts) *cobra.Command {
	var from int
	var format string
	var output string

	c := &cobra.Command{
		Use:   "table",
		Short: "Print the score to grade conversion table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if from < int(domain.MinScore) || from > int(domain.MaxScore) {
				return &domain.OpError{
					Op:    "cli.table",
					Kind:  domain.KindInvalidScore,
					Input: fmt.Sprint(from),
					Err:   domain.ErrInvalidScore,
				}
			}

			cleanup := startLogging(opts)
			defer cleanup()
			log := logger.L()

			format = strings.ToLower(strings.TrimSpace(format))
			exp := tableexport.New(tableexport.WithDisplay(render.FormatGrade))

			if output != "" {
				if format == formatPretty {
					format = ""
				}
				if err := writeTable(exp, output, domain.Table(domain.Score(from)), format); err != nil {
					log.Error("table.export.failed", "path", output, "err", err)
					return err
				}
				log.Info("table.export", "path", output, "from", from)
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", output)
				return nil
			}

			out := cmd.OutOrStdout()
			if format == "" || format == formatPretty {
				render.NewPrinter(out, render.ThemeFor(out, useColor(opts, out))).
					Table(domain.GenerateTable(domain.Score(from)))
				return nil
			}
			return exp.Encode(out, domain.Table(domain.Score(from)), format)
		},
	}

	c.Flags().IntVar(&from, "from", int(domain.MinScore), "first score of the table (24-45)")
	c.Flags().StringVarP(&format, "format", "f", formatPretty, "output format: pretty|json|yaml|xlsx")
	c.Flags().StringVarP(&output, "output", "o", "", "write the table to a file (format inferred from extension)")
	return c
}

func writeTable(exp ports.TableExporter, path string, rows []domain.TableRow, format string) error {
	return exp.WriteFile(path, rows, format)
}
