// Package optim implements optimizers as pure state machines over flat
// parameter vectors.
//
// This package provides:
//   - Optimizer: the Init/Step/Params contract used by the training loop
//   - SGD: plain stochastic gradient descent
//   - Momentum: SGD with a velocity buffer
//   - Adam: Adaptive Moment Estimation with bias correction
//   - Func: adapter turning three plain functions into an Optimizer
//   - Schedule: iteration-dependent learning rates
//
// Optimizers never modify their inputs. Step returns a new state and Params
// returns a copy, so a caller can keep any earlier state around.
//
// Example usage:
//
//	sgd, err := optim.NewSGD(optim.SGDConfig{LR: 0.1})
//	state := sgd.Init(initial)
//	for i := 1; i <= steps; i++ {
//	    grad, _ := oracle.Gradient(sgd.Params(state), batch)
//	    state = sgd.Step(i, grad, state)
//	}
//	final := sgd.Params(state)
package optim

// Optimizer is a state transition system driven by gradients.
//
// S is the optimizer's state type. It holds the current parameters and any
// auxiliary buffers (velocity, moment estimates, step counters).
//
// Implementations must satisfy:
//   - Params(Init(p)) equals p
//   - Step does not modify grad or state
//   - Params returns a fresh slice
type Optimizer[S any] interface {
	// Init creates the state for the given initial parameters.
	Init(params []float64) S

	// Step applies one update. iteration is the 1-based global step count
	// and is what learning-rate schedules are evaluated at.
	Step(iteration int, grad []float64, state S) S

	// Params extracts the current parameter vector from state.
	Params(state S) []float64
}

// Func adapts three plain functions to the Optimizer interface.
//
// Example:
//
//	halve := optim.Func[[]float64]{
//	    InitFunc:   slices.Clone[[]float64],
//	    StepFunc:   func(_ int, g, p []float64) []float64 { ... },
//	    ParamsFunc: slices.Clone[[]float64],
//	}
type Func[S any] struct {
	InitFunc   func(params []float64) S
	StepFunc   func(iteration int, grad []float64, state S) S
	ParamsFunc func(state S) []float64
}

// Init implements Optimizer.
func (f Func[S]) Init(params []float64) S {
	return f.InitFunc(params)
}

// Step implements Optimizer.
func (f Func[S]) Step(iteration int, grad []float64, state S) S {
	return f.StepFunc(iteration, grad, state)
}

// Params implements Optimizer.
func (f Func[S]) Params(state S) []float64 {
	return f.ParamsFunc(state)
}

// rate resolves the learning rate for a config that carries either a fixed
// LR or a Schedule.
func rate(op string, lr float64, schedule Schedule) (Schedule, error) {
	if schedule != nil {
		if err := validateSchedule(op, schedule); err != nil {
			return nil, err
		}
		return schedule, nil
	}
	s := Constant(lr)
	if err := validateSchedule(op, s); err != nil {
		return nil, err
	}
	return s, nil
}
