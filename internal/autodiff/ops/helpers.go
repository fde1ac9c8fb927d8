package ops

import (
	"fmt"

	"github.com/born-ml/descent/internal/tensor"
)

// reduceBroadcast reduces a gradient tensor to match the target shape.
// This is necessary when a scalar was broadcast in the forward pass.
//
// Example:
//
//	Forward: a[3,1] * s[1,1] -> c[3,1]  (s was broadcast)
//	Backward: grad_c[3,1] -> grad_s[1,1] (sum of all elements)
func reduceBroadcast(grad *tensor.RawTensor, targetShape tensor.Shape, backend tensor.Backend) *tensor.RawTensor {
	if grad.Shape().Equal(targetShape) {
		return grad
	}
	if targetShape.IsScalar() {
		return backend.Sum(grad)
	}
	panic(fmt.Sprintf("reduce broadcast: cannot reduce %v to %v", grad.Shape(), targetShape))
}

// filled creates a tensor of the given shape where every element is value.
func filled(shape tensor.Shape, value float64) *tensor.RawTensor {
	t, err := tensor.Full(shape, value)
	if err != nil {
		panic(err)
	}
	return t
}
