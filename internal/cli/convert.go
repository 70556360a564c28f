package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/ibnoten/internal/domain"
	"github.com/aalvaropc/ibnoten/internal/infra/logger"
	"github.com/aalvaropc/ibnoten/internal/ui/render"
)

func gradeCmd(opts *globalOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "grade <score>",
		Short: "Print the average grade for an IB score (24-45)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cleanup := startLogging(opts)
			defer cleanup()
			log := logger.L()

			p, err := domain.ParseScore(args[0])
			if err == nil {
				var g domain.Grade
				g, err = domain.ScoreToGrade(p)
				if err == nil {
					log.Info("convert.score", "score", int(p), "grade", float64(g))
					out := cmd.OutOrStdout()
					fmt.Fprintln(out, render.ScoreLine(render.ThemeFor(out, useColor(opts, out)), p, g))
					return nil
				}
			}

			logRejected(log, "convert.score.rejected", args[0], err)
			return err
		},
	}
}

func scoreCmd(opts *globalOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "score <grade>",
		Short: "Print the minimum IB score for an average grade (1.0-4.0)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rounding, err := domain.ParseRounding(opts.rounding)
			if err != nil {
				return err
			}

			cleanup := startLogging(opts)
			defer cleanup()
			log := logger.L()

			g, err := domain.ParseGrade(args[0])
			if err == nil {
				var p domain.Score
				p, err = domain.GradeToMinScoreWith(g, rounding)
				if err == nil {
					log.Info("convert.grade", "grade", float64(g), "score", int(p), "rounding", rounding.String())
					out := cmd.OutOrStdout()
					fmt.Fprintln(out, render.GradeLine(render.ThemeFor(out, useColor(opts, out)), g, p))
					return nil
				}
			}

			logRejected(log, "convert.grade.rejected", args[0], err)
			return err
		},
	}
}
