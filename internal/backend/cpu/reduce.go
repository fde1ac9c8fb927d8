package cpu

import (
	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/descent/internal/tensor"
)

// Sum returns the sum of all elements as a [1, 1] tensor.
func (cpu *CPUBackend) Sum(x *tensor.RawTensor) *tensor.RawTensor {
	return tensor.Scalar(floats.Sum(x.Data()))
}

// Mean returns the arithmetic mean of all elements as a [1, 1] tensor.
func (cpu *CPUBackend) Mean(x *tensor.RawTensor) *tensor.RawTensor {
	return tensor.Scalar(floats.Sum(x.Data()) / float64(x.NumElements()))
}
