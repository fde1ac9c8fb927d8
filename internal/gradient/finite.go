package gradient

import (
	"fmt"

	"gonum.org/v1/gonum/diff/fd"

	"github.com/born-ml/descent/internal/dataset"
)

// DefaultStep is the central-difference step used when FiniteDifference.Step is zero.
const DefaultStep = 1e-6

// FiniteDifference approximates the gradient with central differences of
// Objective.Loss. It costs 2·len(w) loss evaluations per call and is meant
// for checking the other oracles.
type FiniteDifference struct {
	Objective Objective
	Step      float64
}

// Gradient implements Oracle.
func (f FiniteDifference) Gradient(w []float64, batch dataset.Batch) ([]float64, error) {
	// Surface validation errors before fd starts perturbing w.
	if _, err := f.Objective.Loss(w, batch); err != nil {
		return nil, fmt.Errorf("finite difference gradient: %w", err)
	}

	step := f.Step
	if step == 0 {
		step = DefaultStep
	}

	var lossErr error
	loss := func(x []float64) float64 {
		v, err := f.Objective.Loss(x, batch)
		if err != nil && lossErr == nil {
			lossErr = err
		}
		return v
	}

	grad := fd.Gradient(nil, loss, w, &fd.Settings{
		Formula: fd.Central,
		Step:    step,
	})
	if lossErr != nil {
		return nil, fmt.Errorf("finite difference gradient: %w", lossErr)
	}
	return grad, nil
}

// Name implements Oracle.
func (FiniteDifference) Name() string {
	return "finite-difference"
}
