// Package train implements the minibatch training loop.
//
// The loop is composed from three independently replaceable parts:
//   - a gradient.Oracle that evaluates the gradient on a batch
//   - an optim.Optimizer that turns gradients into state transitions
//   - a BatchSource that replays the same batches every epoch
//
// Example:
//
//	var model logreg.Model
//	stream, _ := dataset.NewBatchStream(x, y, 10)
//	sgd, _ := optim.NewSGD(optim.SGDConfig{LR: 0.1})
//	params, history, err := train.Run(w0, model, gradient.Analytic{Objective: model},
//	    stream, sgd, train.Config{MaxEpochs: 5})
package train

import (
	"fmt"
	"iter"
	"math"
	"slices"

	"go.uber.org/zap"

	"github.com/born-ml/descent/internal/dataset"
	"github.com/born-ml/descent/internal/errs"
	"github.com/born-ml/descent/internal/gradient"
	"github.com/born-ml/descent/internal/optim"
)

// BatchSource is a finite, restartable sequence of batches.
// Every call to All must yield the same batches in the same order.
type BatchSource interface {
	All() iter.Seq[dataset.Batch]
	Len() int
}

// Objective evaluates the loss recorded in the history.
type Objective interface {
	Loss(w []float64, batch dataset.Batch) (float64, error)
}

// EpochReport describes one completed epoch.
type EpochReport struct {
	Epoch   int       // 1-based epoch number
	Steps   int       // Global step count after the epoch
	Loss    float64   // Recorded loss; NaN when Skipped
	Params  []float64 // Parameters at the end of the epoch
	Skipped bool      // The epoch had no batches and was skipped
}

// Config controls a training run.
type Config struct {
	MaxEpochs  int              // Number of passes over the stream
	LossPolicy LossPolicy       // Default: LastBatchLoss
	EmptyEpoch EmptyEpochPolicy // Default: FailOnEmptyEpoch
	Logger     *zap.Logger      // Default: no-op
	Observer   func(EpochReport)
}

// Run trains for cfg.MaxEpochs epochs and returns the final parameters and
// the per-epoch loss history.
//
// Each batch advances the global step counter by one, evaluates the
// gradient at the current parameters and applies one optimizer step.
// The step counter starts at 1 and is never reset between epochs.
//
// MaxEpochs == 0 returns a copy of initial and an empty history.
//
// Errors:
//   - ErrInvalidConfig: negative MaxEpochs
//   - ErrEmptyEpoch: a pass yielded no batches under FailOnEmptyEpoch
//   - ErrInvalidDimension: the oracle returned a gradient of the wrong length
//   - ErrInvalidInput: the oracle returned a non-finite gradient
//
// Oracle and objective errors are returned wrapped with the epoch and step.
func Run[S any](
	initial []float64,
	objective Objective,
	oracle gradient.Oracle,
	stream BatchSource,
	optimizer optim.Optimizer[S],
	cfg Config,
) (params, history []float64, err error) {
	if cfg.MaxEpochs < 0 {
		return nil, nil, errs.Config("train", "max epochs %d must not be negative", cfg.MaxEpochs)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	history = []float64{}
	if cfg.MaxEpochs == 0 {
		return slices.Clone(initial), history, nil
	}

	every := max(1, cfg.MaxEpochs/10)
	state := optimizer.Init(initial)
	step := 0

	logger.Info("training started",
		zap.Int("max_epochs", cfg.MaxEpochs),
		zap.Int("batches_per_epoch", stream.Len()),
		zap.String("oracle", oracle.Name()),
		zap.Stringer("loss_policy", cfg.LossPolicy),
	)

	for epoch := 1; epoch <= cfg.MaxEpochs; epoch++ {
		var last dataset.Batch
		seen := 0
		for batch := range stream.All() {
			step++
			seen++
			current := optimizer.Params(state)
			grad, err := oracle.Gradient(current, batch)
			if err != nil {
				return nil, nil, fmt.Errorf("train: epoch %d, step %d: %w", epoch, step, err)
			}
			if err := checkGradient(grad, len(current)); err != nil {
				return nil, nil, fmt.Errorf("train: epoch %d, step %d: %w", epoch, step, err)
			}
			state = optimizer.Step(step, grad, state)
			last = batch
		}

		if seen == 0 {
			if cfg.EmptyEpoch == FailOnEmptyEpoch {
				return nil, nil, fmt.Errorf("train: epoch %d: %w: stream yielded no batches", epoch, errs.ErrEmptyEpoch)
			}
			logger.Warn("empty epoch skipped", zap.Int("epoch", epoch))
			cfg.observe(EpochReport{Epoch: epoch, Steps: step, Loss: math.NaN(), Params: optimizer.Params(state), Skipped: true})
			continue
		}

		current := optimizer.Params(state)
		var loss float64
		switch cfg.LossPolicy {
		case EpochMeanLoss:
			loss, err = meanLoss(objective, current, stream)
		default:
			loss, err = objective.Loss(current, last)
		}
		if err != nil {
			return nil, nil, fmt.Errorf("train: epoch %d loss: %w", epoch, err)
		}
		history = append(history, loss)

		if epoch%every == 0 {
			logger.Info("epoch",
				zap.Int("epoch", epoch),
				zap.Int("max_epochs", cfg.MaxEpochs),
				zap.Int("step", step),
				zap.Float64("loss", loss),
			)
		}
		cfg.observe(EpochReport{Epoch: epoch, Steps: step, Loss: loss, Params: current})
	}

	params = optimizer.Params(state)
	logger.Info("training finished", zap.Int("steps", step), zap.Int("epochs", len(history)))
	return params, history, nil
}

func (cfg Config) observe(r EpochReport) {
	if cfg.Observer != nil {
		cfg.Observer(r)
	}
}

// meanLoss is the row-weighted mean of the objective over every batch.
func meanLoss(objective Objective, w []float64, stream BatchSource) (float64, error) {
	var total float64
	rows := 0
	for batch := range stream.All() {
		l, err := objective.Loss(w, batch)
		if err != nil {
			return 0, err
		}
		total += l * float64(batch.Rows())
		rows += batch.Rows()
	}
	return total / float64(rows), nil
}

func checkGradient(grad []float64, dim int) error {
	if len(grad) != dim {
		return errs.Dimension("gradient", "length", len(grad), dim)
	}
	for i, g := range grad {
		if math.IsNaN(g) || math.IsInf(g, 0) {
			return errs.Input("gradient", "component %d is %v", i, g)
		}
	}
	return nil
}
