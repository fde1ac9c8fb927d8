package autodiff

import (
	"errors"
	"fmt"

	"github.com/born-ml/descent/internal/tensor"
)

// ErrNoOperations is returned when Backward is called on an empty tape.
var ErrNoOperations = errors.New("backward: no operations recorded (did you forget to call Tape().StartRecording()?)")

// Backward computes gradients of the scalar t using the backend's tape.
//
// Returns a map from RawTensor to its gradient. Tensors that did not
// contribute to t have no entry.
//
// Example:
//
//	backend := autodiff.New(cpu.New())
//	backend.Tape().StartRecording()
//	x, _ := tensor.Column([]float64{1, 2})
//	y := backend.Sum(backend.Mul(x, x))
//	grads := autodiff.Backward(y, backend)
//	grad := grads[x] // [2, 4]
func Backward[B tensor.Backend](t *tensor.RawTensor, backend *AutodiffBackend[B]) map[*tensor.RawTensor]*tensor.RawTensor {
	if backend.tape.NumOps() == 0 {
		panic(ErrNoOperations)
	}
	if !t.Shape().IsScalar() {
		panic(fmt.Sprintf("backward: output must be scalar, got shape %v", t.Shape()))
	}
	return backend.tape.Backward(t, tensor.Scalar(1), backend.inner)
}

// Func is a scalar function written against tensor.Backend so it can be
// evaluated plainly or traced by an AutodiffBackend.
//
// x is an [n, 1] column holding the point; the result must be a [1, 1] tensor.
type Func func(backend tensor.Backend, x *tensor.RawTensor) (*tensor.RawTensor, error)

// Grad evaluates f at point on a fresh tape and returns the value and the
// gradient of f with respect to point.
//
// This is the "gradient of a scalar function at a point" facility used to
// cross-check hand-derived gradients.
func Grad[B tensor.Backend](inner B, f Func, point []float64) (float64, []float64, error) {
	backend := New(inner)
	backend.Tape().StartRecording()

	x, err := tensor.Column(point)
	if err != nil {
		return 0, nil, fmt.Errorf("grad: %w", err)
	}

	y, err := f(backend, x)
	if err != nil {
		return 0, nil, err
	}
	if !y.Shape().IsScalar() {
		return 0, nil, fmt.Errorf("grad: function returned shape %v, want scalar", y.Shape())
	}

	grad := make([]float64, len(point))
	if backend.Tape().NumOps() == 0 {
		// f does not depend on x through any recorded op.
		return y.Item(), grad, nil
	}

	grads := backend.tape.Backward(y, tensor.Scalar(1), backend.inner)
	if g, ok := grads[x]; ok {
		copy(grad, g.Data())
	}
	return y.Item(), grad, nil
}
