// Package gradient provides interchangeable ways to compute the gradient of
// a batch objective: hand-derived, reverse-mode autodiff and finite
// differences.
//
// All three must agree on the logistic objective; the training loop accepts
// any of them through the Oracle interface.
package gradient

import (
	"github.com/born-ml/descent/internal/dataset"
	"github.com/born-ml/descent/internal/tensor"
)

// Objective is a differentiable loss over a batch.
type Objective interface {
	Loss(w []float64, batch dataset.Batch) (float64, error)
	Gradient(w []float64, batch dataset.Batch) ([]float64, error)
}

// Traceable is an objective that can be expressed against a tensor.Backend.
// w is passed as a [dim, 1] column; the result is a [1, 1] tensor.
type Traceable interface {
	Trace(backend tensor.Backend, w *tensor.RawTensor, batch dataset.Batch) (*tensor.RawTensor, error)
}

// Oracle computes the gradient of the objective at w on batch.
//
// The returned slice is freshly allocated and has len(w) elements.
type Oracle interface {
	Gradient(w []float64, batch dataset.Batch) ([]float64, error)
	Name() string
}

// Analytic forwards to the objective's hand-derived gradient.
type Analytic struct {
	Objective Objective
}

// Gradient implements Oracle.
func (a Analytic) Gradient(w []float64, batch dataset.Batch) ([]float64, error) {
	return a.Objective.Gradient(w, batch)
}

// Name implements Oracle.
func (Analytic) Name() string {
	return "analytic"
}
