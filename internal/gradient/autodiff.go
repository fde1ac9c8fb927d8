package gradient

import (
	"fmt"

	"github.com/born-ml/descent/internal/autodiff"
	"github.com/born-ml/descent/internal/backend/cpu"
	"github.com/born-ml/descent/internal/dataset"
	"github.com/born-ml/descent/internal/tensor"
)

// Autodiff records Model.Trace on a fresh gradient tape for every call and
// reads the gradient with respect to w back from it.
type Autodiff struct {
	Model Traceable
}

// Gradient implements Oracle.
func (a Autodiff) Gradient(w []float64, batch dataset.Batch) ([]float64, error) {
	f := func(backend tensor.Backend, x *tensor.RawTensor) (*tensor.RawTensor, error) {
		return a.Model.Trace(backend, x, batch)
	}
	_, grad, err := autodiff.Grad(cpu.New(), f, w)
	if err != nil {
		return nil, fmt.Errorf("autodiff gradient: %w", err)
	}
	return grad, nil
}

// Name implements Oracle.
func (Autodiff) Name() string {
	return "autodiff"
}
