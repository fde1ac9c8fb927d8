// Package quasinewton computes full-batch reference solutions with gonum's
// BFGS and L-BFGS minimizers.
package quasinewton

import (
	"fmt"
	"math"
	"slices"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/optimize"

	"github.com/born-ml/descent/internal/dataset"
	"github.com/born-ml/descent/internal/errs"
	"github.com/born-ml/descent/internal/gradient"
)

// Method selects the quasi-Newton update.
type Method int

const (
	// BFGS keeps a dense inverse-Hessian approximation.
	BFGS Method = iota
	// LBFGS keeps the last Store update pairs.
	LBFGS
)

// String returns the configuration name of the method.
func (m Method) String() string {
	switch m {
	case BFGS:
		return "bfgs"
	case LBFGS:
		return "lbfgs"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod parses "bfgs" or "lbfgs".
func ParseMethod(s string) (Method, error) {
	switch s {
	case "", "bfgs":
		return BFGS, nil
	case "lbfgs", "l-bfgs":
		return LBFGS, nil
	default:
		return 0, errs.Config("quasi-newton", "unknown method %q (want bfgs or lbfgs)", s)
	}
}

// Options configures Minimize.
type Options struct {
	Method            Method
	Store             int         // L-BFGS history size (default: 15)
	GradientThreshold float64     // Stop when ‖∇f‖∞ falls below (default: 1e-8)
	MajorIterations   int         // Iteration cap; 0 means no cap
	Logger            *zap.Logger // Default: no-op
}

// Result is the outcome of a minimization.
type Result struct {
	X          []float64
	F          float64
	Iterations int
	Status     string
}

// Minimize minimizes objective over the whole batch starting at x0.
func Minimize(objective gradient.Objective, batch dataset.Batch, x0 []float64, opts Options) (Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.GradientThreshold == 0 {
		opts.GradientThreshold = 1e-8
	}
	if opts.GradientThreshold < 0 || opts.MajorIterations < 0 || opts.Store < 0 {
		return Result{}, errs.Config("quasi-newton", "threshold, iterations and store must not be negative")
	}

	// Surface validation errors before the solver starts.
	if _, err := objective.Loss(x0, batch); err != nil {
		return Result{}, fmt.Errorf("quasi-newton: %w", err)
	}

	var evalErr error
	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			v, err := objective.Loss(x, batch)
			if err != nil {
				if evalErr == nil {
					evalErr = err
				}
				return math.NaN()
			}
			return v
		},
		Grad: func(grad, x []float64) {
			g, err := objective.Gradient(x, batch)
			if err != nil {
				if evalErr == nil {
					evalErr = err
				}
				for i := range grad {
					grad[i] = math.NaN()
				}
				return
			}
			copy(grad, g)
		},
	}

	var method optimize.Method
	switch opts.Method {
	case BFGS:
		method = &optimize.BFGS{}
	case LBFGS:
		method = &optimize.LBFGS{Store: opts.Store}
	default:
		return Result{}, errs.Config("quasi-newton", "unknown method %v", opts.Method)
	}

	settings := &optimize.Settings{
		GradientThreshold: opts.GradientThreshold,
		MajorIterations:   opts.MajorIterations,
	}

	res, err := optimize.Minimize(problem, slices.Clone(x0), settings, method)
	if evalErr != nil {
		return Result{}, fmt.Errorf("quasi-newton: %w", evalErr)
	}
	if err != nil {
		return Result{}, fmt.Errorf("quasi-newton %s: %w", opts.Method, err)
	}

	logger.Info("quasi-newton finished",
		zap.Stringer("method", opts.Method),
		zap.Stringer("status", res.Status),
		zap.Int("iterations", res.Stats.MajorIterations),
		zap.Float64("loss", res.F),
	)

	return Result{
		X:          slices.Clone(res.X),
		F:          res.F,
		Iterations: res.Stats.MajorIterations,
		Status:     res.Status.String(),
	}, nil
}
