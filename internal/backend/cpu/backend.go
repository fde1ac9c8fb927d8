package cpu

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/descent/internal/tensor"
)

// CPUBackend implements tensor operations on CPU using gonum mat and floats.
type CPUBackend struct{}

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Add performs element-wise addition with scalar broadcasting.
func (cpu *CPUBackend) Add(a, b *tensor.RawTensor) *tensor.RawTensor {
	return binary("add", a, b, floats.AddTo, func(x, y float64) float64 { return x + y })
}

// Sub performs element-wise subtraction with scalar broadcasting.
func (cpu *CPUBackend) Sub(a, b *tensor.RawTensor) *tensor.RawTensor {
	return binary("sub", a, b, floats.SubTo, func(x, y float64) float64 { return x - y })
}

// Mul performs element-wise multiplication with scalar broadcasting.
func (cpu *CPUBackend) Mul(a, b *tensor.RawTensor) *tensor.RawTensor {
	return binary("mul", a, b, floats.MulTo, func(x, y float64) float64 { return x * y })
}

// Div performs element-wise division with scalar broadcasting.
func (cpu *CPUBackend) Div(a, b *tensor.RawTensor) *tensor.RawTensor {
	return binary("div", a, b, floats.DivTo, func(x, y float64) float64 { return x / y })
}

// binary dispatches to the vectorized gonum kernel when shapes match and
// falls back to a scalar loop when one side is broadcast.
func binary(
	name string,
	a, b *tensor.RawTensor,
	vectorized func(dst, s, t []float64) []float64,
	scalar func(x, y float64) float64,
) *tensor.RawTensor {
	outShape, needsBroadcast, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}

	result := alloc(name, outShape)
	out := result.Data()

	if !needsBroadcast {
		vectorized(out, a.Data(), b.Data())
		return result
	}

	aData, bData := a.Data(), b.Data()
	for i := range out {
		out[i] = scalar(aData[i%len(aData)], bData[i%len(bData)])
	}
	return result
}

// alloc creates a result tensor, panicking on invalid shapes.
func alloc(name string, shape tensor.Shape) *tensor.RawTensor {
	result, err := tensor.NewRaw(shape)
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result tensor: %v", name, err))
	}
	return result
}
