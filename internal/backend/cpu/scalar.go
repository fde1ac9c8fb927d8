package cpu

import (
	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/descent/internal/tensor"
)

// MulScalar multiplies every element by scalar.
func (cpu *CPUBackend) MulScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	result := x.Clone()
	floats.Scale(scalar, result.Data())
	return result
}

// AddScalar adds scalar to every element.
func (cpu *CPUBackend) AddScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	result := x.Clone()
	floats.AddConst(scalar, result.Data())
	return result
}
