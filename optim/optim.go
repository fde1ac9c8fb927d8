// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/born-ml/descent/internal/dataset"
	"github.com/born-ml/descent/internal/gradient"
	"github.com/born-ml/descent/internal/optim"
	"github.com/born-ml/descent/internal/train"
)

// Optimizer is the state-machine contract shared by all optimizers.
type Optimizer[S any] = optim.Optimizer[S]

// Func adapts three plain functions to the Optimizer interface.
type Func[S any] = optim.Func[S]

// SGD (Stochastic Gradient Descent)

// SGD represents plain stochastic gradient descent.
type SGD = optim.SGD

// SGDConfig contains configuration for SGD optimizer.
type SGDConfig = optim.SGDConfig

// NewSGD creates a new SGD optimizer.
//
// Example:
//
//	sgd, err := optim.NewSGD(optim.SGDConfig{LR: 0.1})
func NewSGD(config SGDConfig) (*SGD, error) {
	return optim.NewSGD(config)
}

// Momentum

// Momentum represents SGD with a velocity buffer.
type Momentum = optim.Momentum

// MomentumState holds the parameters and velocity.
type MomentumState = optim.MomentumState

// MomentumConfig contains configuration for the Momentum optimizer.
type MomentumConfig = optim.MomentumConfig

// NewMomentum creates a new Momentum optimizer.
func NewMomentum(config MomentumConfig) (*Momentum, error) {
	return optim.NewMomentum(config)
}

// Adam (Adaptive Moment Estimation)

// Adam represents the Adam optimizer.
type Adam = optim.Adam

// AdamState holds the parameters, moment estimates and step count.
type AdamState = optim.AdamState

// AdamConfig contains configuration for Adam optimizer.
type AdamConfig = optim.AdamConfig

// NewAdam creates a new Adam optimizer.
//
// Example:
//
//	adam, err := optim.NewAdam(optim.AdamConfig{LR: 0.001})
func NewAdam(config AdamConfig) (*Adam, error) {
	return optim.NewAdam(config)
}

// Learning-rate schedules

// Schedule maps the 1-based global iteration to a learning rate.
type Schedule = optim.Schedule

// Constant is a fixed learning rate.
type Constant = optim.Constant

// StepDecay multiplies the rate by a factor at a fixed interval.
type StepDecay = optim.StepDecay

// InverseTimeDecay shrinks the rate as Initial / (1 + Decay·(i-1)).
type InverseTimeDecay = optim.InverseTimeDecay

// Training loop

// Batch is a minibatch of features and 0/1 labels.
type Batch = dataset.Batch

// BatchSource is a finite, restartable sequence of batches.
type BatchSource = train.BatchSource

// Objective evaluates the loss recorded in the training history.
type Objective = train.Objective

// Oracle computes the gradient of the objective on a batch.
type Oracle = gradient.Oracle

// TrainConfig controls a training run.
type TrainConfig = train.Config

// EpochReport describes one completed epoch.
type EpochReport = train.EpochReport

// LossPolicy selects how the per-epoch loss is computed.
type LossPolicy = train.LossPolicy

// EmptyEpochPolicy decides what happens when an epoch has no batches.
type EmptyEpochPolicy = train.EmptyEpochPolicy

// Loss and empty-epoch policies.
const (
	LastBatchLoss    = train.LastBatchLoss
	EpochMeanLoss    = train.EpochMeanLoss
	FailOnEmptyEpoch = train.FailOnEmptyEpoch
	SkipEmptyEpoch   = train.SkipEmptyEpoch
)

// Run trains for cfg.MaxEpochs epochs and returns the final parameters and
// the per-epoch loss history.
func Run[S any](
	initial []float64,
	objective Objective,
	oracle Oracle,
	stream BatchSource,
	optimizer Optimizer[S],
	cfg TrainConfig,
) (params, history []float64, err error) {
	return train.Run(initial, objective, oracle, stream, optimizer, cfg)
}
