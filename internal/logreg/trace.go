package logreg

import (
	"fmt"

	"github.com/born-ml/descent/internal/autodiff"
	"github.com/born-ml/descent/internal/dataset"
	"github.com/born-ml/descent/internal/errs"
	"github.com/born-ml/descent/internal/tensor"
)

// Trace expresses NegativeLogLikelihood against a tensor.Backend.
//
// w is a [dim, 1] column. With an autodiff backend every operation that
// depends on w is recorded, so the gradient can be read back from the tape.
// Labels and 1-y enter as constants.
func (Model) Trace(backend tensor.Backend, w *tensor.RawTensor, batch dataset.Batch) (*tensor.RawTensor, error) {
	if w == nil {
		return nil, errs.Input("trace", "weights are nil")
	}
	if err := check("trace", w.Data(), batch); err != nil {
		return nil, err
	}
	if w.Cols() != 1 {
		return nil, errs.Dimension("trace", "weight columns", w.Cols(), 1)
	}

	x, err := tensor.FromMatrix(batch.Features)
	if err != nil {
		return nil, fmt.Errorf("trace: %w", err)
	}
	y, err := tensor.Column(batch.Labels)
	if err != nil {
		return nil, fmt.Errorf("trace: %w", err)
	}
	notY := y.Clone()
	d := notY.Data()
	for i := range d {
		d[i] = 1 - d[i]
	}
	zeros, err := tensor.Zeros(y.Shape())
	if err != nil {
		return nil, fmt.Errorf("trace: %w", err)
	}

	a := backend.MatMul(x, w)
	logP1 := backend.MulScalar(backend.LogAddExp(zeros, backend.MulScalar(a, -1)), -1)
	logP0 := backend.MulScalar(backend.LogAddExp(zeros, a), -1)
	ll := backend.Add(backend.Mul(y, logP1), backend.Mul(notY, logP0))
	return backend.MulScalar(backend.Mean(ll), -1), nil
}

// Func binds batch and returns the loss as an autodiff.Func of the weights.
func (m Model) Func(batch dataset.Batch) autodiff.Func {
	return func(backend tensor.Backend, w *tensor.RawTensor) (*tensor.RawTensor, error) {
		return m.Trace(backend, w, batch)
	}
}
