package optim

import (
	"slices"

	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/descent/internal/errs"
)

// Momentum implements SGD with a heavy-ball velocity buffer.
//
// Update rule:
//
//	velocity = momentum * velocity + gradient
//	param    = param - lr(i) * velocity
//
// With momentum 0 every step equals an SGD step.
type Momentum struct {
	schedule Schedule
	momentum float64
}

// MomentumState is the state of the Momentum optimizer.
type MomentumState struct {
	Params   []float64
	Velocity []float64
}

// MomentumConfig holds configuration for the Momentum optimizer.
type MomentumConfig struct {
	LR       float64  // Learning rate, required unless Schedule is set
	Momentum float64  // Momentum factor (range: [0, 1))
	Schedule Schedule // Overrides LR when non-nil
}

// NewMomentum creates a new Momentum optimizer.
func NewMomentum(config MomentumConfig) (*Momentum, error) {
	s, err := rate("momentum", config.LR, config.Schedule)
	if err != nil {
		return nil, err
	}
	if !(config.Momentum >= 0 && config.Momentum < 1) {
		return nil, errs.Config("momentum", "momentum %v must be in [0, 1)", config.Momentum)
	}
	return &Momentum{schedule: s, momentum: config.Momentum}, nil
}

// Init implements Optimizer. The velocity starts at zero.
func (m *Momentum) Init(params []float64) MomentumState {
	return MomentumState{
		Params:   slices.Clone(params),
		Velocity: make([]float64, len(params)),
	}
}

// Step implements Optimizer.
func (m *Momentum) Step(iteration int, grad []float64, state MomentumState) MomentumState {
	velocity := slices.Clone(grad)
	floats.AddScaled(velocity, m.momentum, state.Velocity)

	params := slices.Clone(state.Params)
	floats.AddScaled(params, -m.schedule.Rate(iteration), velocity)

	return MomentumState{Params: params, Velocity: velocity}
}

// Params implements Optimizer.
func (m *Momentum) Params(state MomentumState) []float64 {
	return slices.Clone(state.Params)
}
