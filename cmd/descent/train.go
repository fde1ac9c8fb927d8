package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/born-ml/descent/internal/config"
	"github.com/born-ml/descent/internal/dataset"
	"github.com/born-ml/descent/internal/errs"
	"github.com/born-ml/descent/internal/gradient"
	"github.com/born-ml/descent/internal/logreg"
	"github.com/born-ml/descent/internal/optim"
	"github.com/born-ml/descent/internal/quasinewton"
	"github.com/born-ml/descent/internal/train"
	"github.com/born-ml/descent/internal/validate"
)

func newTrainCommand(a *app) *cobra.Command {
	defaults := config.Default()

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train with minibatch SGD and compare against the quasi-Newton solution",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTrain(cmd.OutOrStdout(), a.cfg, a.logger)
		},
	}

	flags := cmd.Flags()
	flags.String("csv", "", "CSV file with features and a trailing 0/1 label (default: synthetic data)")
	flags.Int("epochs", defaults.Train.Epochs, "number of epochs")
	flags.Int("batch-size", defaults.Train.BatchSize, "rows per minibatch")
	flags.String("optimizer", defaults.Optimizer.Name, "optimizer (sgd, momentum, adam)")
	flags.Float64("lr", defaults.Optimizer.LR, "learning rate")
	flags.String("schedule", defaults.Optimizer.Schedule, "learning-rate schedule (constant, step, inverse-time)")
	flags.String("oracle", defaults.Train.Oracle, "gradient oracle (analytic, autodiff, finite-difference)")
	flags.String("loss-policy", defaults.Train.LossPolicy, "epoch loss (last-batch, epoch-mean)")
	flags.String("remainder", defaults.Train.Remainder, "rows left over by the batch size (drop, keep)")
	flags.String("reference", defaults.Reference.Method, "quasi-Newton reference method (bfgs, lbfgs)")

	a.bind(flags, "csv", "data.csv")
	a.bind(flags, "epochs", "train.epochs")
	a.bind(flags, "batch-size", "train.batch_size")
	a.bind(flags, "optimizer", "optimizer.name")
	a.bind(flags, "lr", "optimizer.lr")
	a.bind(flags, "schedule", "optimizer.schedule")
	a.bind(flags, "oracle", "train.oracle")
	a.bind(flags, "loss-policy", "train.loss_policy")
	a.bind(flags, "remainder", "train.remainder")
	a.bind(flags, "reference", "reference.method")

	return cmd
}

func runTrain(out io.Writer, cfg config.Config, logger *zap.Logger) error {
	var model logreg.Model

	exp, err := prepare(cfg, logger)
	if err != nil {
		return err
	}

	remainder, err := dataset.ParseRemainderPolicy(cfg.Train.Remainder)
	if err != nil {
		return err
	}
	stream, err := dataset.NewBatchStream(exp.train.Features, exp.train.Labels, cfg.Train.BatchSize,
		dataset.WithRemainder(remainder), dataset.WithLogger(logger))
	if err != nil {
		return err
	}

	oracle, err := newOracle(cfg.Train.Oracle, model)
	if err != nil {
		return err
	}
	lossPolicy, err := train.ParseLossPolicy(cfg.Train.LossPolicy)
	if err != nil {
		return err
	}
	emptyEpoch, err := train.ParseEmptyEpochPolicy(cfg.Train.EmptyEpoch)
	if err != nil {
		return err
	}
	loop := train.Config{
		MaxEpochs:  cfg.Train.Epochs,
		LossPolicy: lossPolicy,
		EmptyEpoch: emptyEpoch,
		Logger:     logger,
	}

	method, err := quasinewton.ParseMethod(cfg.Reference.Method)
	if err != nil {
		return err
	}
	reference, err := quasinewton.Minimize(model, exp.train.Batch(), exp.initial, quasinewton.Options{
		Method:            method,
		Store:             cfg.Reference.Store,
		GradientThreshold: cfg.Reference.GradientThreshold,
		MajorIterations:   cfg.Reference.MaxIterations,
		Logger:            logger,
	})
	if err != nil {
		return err
	}

	params, history, err := fit(cfg.Optimizer, exp.initial, model, oracle, stream, loop)
	if err != nil {
		return err
	}

	distance, err := validate.Distance(params, reference.X)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "optimizer\t%s (lr %g, %s oracle)\n", cfg.Optimizer.Name, cfg.Optimizer.LR, oracle.Name())
	fmt.Fprintf(w, "batches\t%d x %d rows (%s remainder)\n", stream.Len(), stream.BatchSize(), stream.Remainder())
	for i, loss := range history {
		fmt.Fprintf(w, "epoch %d\t%.6f\n", i+1, loss)
	}
	fmt.Fprintf(w, "params\t%.4f\n", params)
	fmt.Fprintf(w, "%s params\t%.4f (%d iterations, %s)\n", method, reference.X, reference.Iterations, reference.Status)
	if exp.truth != nil {
		fmt.Fprintf(w, "true params\t%.4f\n", exp.truth)
	}
	fmt.Fprintf(w, "distance to %s\t%.6f\n", method, distance)
	fmt.Fprintf(w, "%s loss\t%.6f\n", method, reference.F)
	if exp.test.Rows() > 0 {
		acc, err := model.Accuracy(params, exp.test.Features, exp.test.Labels)
		if err != nil {
			return err
		}
		refAcc, err := model.Accuracy(reference.X, exp.test.Features, exp.test.Labels)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "test accuracy\t%.4f (%s %.4f)\n", acc, method, refAcc)
	}
	return w.Flush()
}

// fit dispatches to the optimizer named in cfg.
func fit(
	cfg config.OptimizerConfig,
	initial []float64,
	model logreg.Model,
	oracle gradient.Oracle,
	stream train.BatchSource,
	loop train.Config,
) ([]float64, []float64, error) {
	schedule := cfg.BuildSchedule()

	switch cfg.Name {
	case "sgd":
		o, err := optim.NewSGD(optim.SGDConfig{LR: cfg.LR, Schedule: schedule})
		if err != nil {
			return nil, nil, err
		}
		return train.Run(initial, model, oracle, stream, o, loop)
	case "momentum":
		o, err := optim.NewMomentum(optim.MomentumConfig{LR: cfg.LR, Momentum: cfg.Momentum, Schedule: schedule})
		if err != nil {
			return nil, nil, err
		}
		return train.Run(initial, model, oracle, stream, o, loop)
	case "adam":
		o, err := optim.NewAdam(optim.AdamConfig{
			LR:       cfg.LR,
			Betas:    [2]float64{cfg.Beta1, cfg.Beta2},
			Eps:      cfg.Eps,
			Schedule: schedule,
		})
		if err != nil {
			return nil, nil, err
		}
		return train.Run(initial, model, oracle, stream, o, loop)
	default:
		return nil, nil, errs.Config("optimizer", "unknown optimizer %q", cfg.Name)
	}
}
