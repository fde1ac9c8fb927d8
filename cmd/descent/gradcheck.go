package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/born-ml/descent/internal/config"
	"github.com/born-ml/descent/internal/gradient"
	"github.com/born-ml/descent/internal/logreg"
)

func newGradcheckCommand(a *app) *cobra.Command {
	var tolerance float64

	cmd := &cobra.Command{
		Use:   "gradcheck",
		Short: "Compare analytic, autodiff and finite-difference gradients",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGradcheck(cmd.OutOrStdout(), a.cfg, a.logger, tolerance)
		},
	}
	cmd.Flags().Float64Var(&tolerance, "tolerance", 1e-5, "maximum allowed ∞-norm difference")
	return cmd
}

func runGradcheck(out io.Writer, cfg config.Config, logger *zap.Logger, tolerance float64) error {
	var model logreg.Model

	exp, err := prepare(cfg, logger)
	if err != nil {
		return err
	}

	report, err := gradient.Compare(exp.initial, exp.train.Batch(),
		gradient.Analytic{Objective: model},
		gradient.Autodiff{Model: model},
		gradient.FiniteDifference{Objective: model},
	)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "oracle\tgradient\tmax abs diff")
	var worst float64
	for _, r := range report {
		fmt.Fprintf(w, "%s\t%.8f\t%.3e\n", r.Oracle, r.Gradient, r.MaxAbsDiff)
		worst = max(worst, r.MaxAbsDiff)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if worst > tolerance {
		return fmt.Errorf("gradcheck: max abs diff %.3e exceeds tolerance %.3e", worst, tolerance)
	}
	logger.Info("gradients agree", zap.Float64("max_abs_diff", worst), zap.Float64("tolerance", tolerance))
	return nil
}
