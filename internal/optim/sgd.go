package optim

import (
	"slices"

	"gonum.org/v1/gonum/floats"
)

// SGD implements plain Stochastic Gradient Descent.
//
// Update rule:
//
//	param = param - lr(i) * gradient
//
// The state is the parameter vector itself.
//
// Example:
//
//	sgd, err := optim.NewSGD(optim.SGDConfig{LR: 0.1})
type SGD struct {
	schedule Schedule
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR       float64  // Learning rate, required unless Schedule is set
	Schedule Schedule // Overrides LR when non-nil
}

// NewSGD creates a new SGD optimizer.
//
// Returns ErrInvalidConfig if the learning rate is not positive.
func NewSGD(config SGDConfig) (*SGD, error) {
	s, err := rate("sgd", config.LR, config.Schedule)
	if err != nil {
		return nil, err
	}
	return &SGD{schedule: s}, nil
}

// Init implements Optimizer.
func (s *SGD) Init(params []float64) []float64 {
	return slices.Clone(params)
}

// Step implements Optimizer.
func (s *SGD) Step(iteration int, grad []float64, params []float64) []float64 {
	next := slices.Clone(params)
	floats.AddScaled(next, -s.schedule.Rate(iteration), grad)
	return next
}

// Params implements Optimizer.
func (s *SGD) Params(params []float64) []float64 {
	return slices.Clone(params)
}

// Schedule returns the learning-rate schedule.
func (s *SGD) Schedule() Schedule {
	return s.schedule
}
