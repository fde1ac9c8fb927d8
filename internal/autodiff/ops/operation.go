// Package ops defines operation interfaces and implementations for automatic differentiation.
//
// Each operation implements the Operation interface, which provides:
//   - Forward pass: computed by the backend
//   - Backward pass: computes gradients for inputs given output gradient
//
// Supported operations:
//   - AddOp, SubOp, MulOp, DivOp: element-wise arithmetic with scalar broadcasting
//   - MulScalarOp, AddScalarOp: arithmetic with a constant
//   - MatMulOp: matrix multiplication (d(A@B)/dA = grad@B^T, d(A@B)/dB = A^T@grad)
//   - TransposeOp
//   - ExpOp, LogOp, TanhOp, SigmoidOp: element-wise math
//   - LogAddExpOp: stable log(exp(a) + exp(b))
//   - SumOp, MeanOp: full reductions to a scalar
package ops

import "github.com/born-ml/descent/internal/tensor"

// Operation represents a differentiable operation in the computation graph.
// Each operation records its inputs and output during the forward pass,
// and computes input gradients during the backward pass.
type Operation interface {
	// Backward computes gradients for inputs given the output gradient.
	// Returns a slice of gradients corresponding to each input tensor.
	//
	// Example for AddOp:
	//   inputs: [a, b]
	//   outputGrad: dL/d(a+b)
	//   returns: [dL/d(a+b), dL/d(a+b)] (gradient flows equally to both inputs)
	Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor

	// Inputs returns the input tensors for this operation.
	Inputs() []*tensor.RawTensor

	// Output returns the output tensor produced by this operation.
	Output() *tensor.RawTensor
}

// record holds the tensors an operation saw during the forward pass.
type record struct {
	inputs []*tensor.RawTensor
	output *tensor.RawTensor
}

func newRecord(output *tensor.RawTensor, inputs ...*tensor.RawTensor) record {
	return record{inputs: inputs, output: output}
}

// Inputs returns the recorded input tensors.
func (r record) Inputs() []*tensor.RawTensor {
	return r.inputs
}

// Output returns the recorded output tensor.
func (r record) Output() *tensor.RawTensor {
	return r.output
}
