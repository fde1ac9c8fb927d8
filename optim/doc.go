// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimizers and the minibatch training loop.
//
// # Overview
//
// This package contains:
//   - Optimizer: the Init/Step/Params state-machine contract
//   - SGD, Momentum and Adam implementations
//   - Func: an adapter for custom optimizers
//   - Schedule: Constant, StepDecay and InverseTimeDecay learning rates
//   - Run: the training loop that drives any Optimizer with any gradient Oracle
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/descent/optim"
//	)
//
//	func main() {
//	    sgd, err := optim.NewSGD(optim.SGDConfig{LR: 0.1})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    params, history, err := optim.Run(initial, objective, oracle, stream, sgd,
//	        optim.TrainConfig{MaxEpochs: 5})
//	}
//
// # Optimizers
//
// SGD (Stochastic Gradient Descent):
//
//	sgd, err := optim.NewSGD(optim.SGDConfig{LR: 0.01})
//
// Momentum:
//
//	m, err := optim.NewMomentum(optim.MomentumConfig{LR: 0.01, Momentum: 0.9})
//
// Adam (Adaptive Moment Estimation):
//
//	adam, err := optim.NewAdam(optim.AdamConfig{
//	    LR:    0.001,
//	    Betas: [2]float64{0.9, 0.999},
//	})
//
// # Custom Optimizers
//
// Any type with Init, Step and Params methods is an Optimizer. For quick
// experiments Func wraps three closures:
//
//	sign := optim.Func[[]float64]{
//	    InitFunc:   slices.Clone[[]float64],
//	    StepFunc:   signStep,
//	    ParamsFunc: slices.Clone[[]float64],
//	}
package optim
