package ops

import (
	"github.com/born-ml/descent/internal/tensor"
)

// ExpOp represents y = exp(x). Backward: grad_x = grad_y * y.
type ExpOp struct{ record }

// NewExpOp creates a new ExpOp.
func NewExpOp(input, output *tensor.RawTensor) *ExpOp {
	return &ExpOp{newRecord(output, input)}
}

// Backward computes input gradient for exp.
func (op *ExpOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{backend.Mul(outputGrad, op.output)}
}

// LogOp represents y = log(x). Backward: grad_x = grad_y / x.
//
// Input values must be positive; the objective uses LogAddExpOp wherever
// the argument can underflow.
type LogOp struct{ record }

// NewLogOp creates a new LogOp.
func NewLogOp(input, output *tensor.RawTensor) *LogOp {
	return &LogOp{newRecord(output, input)}
}

// Backward computes input gradient for log.
func (op *LogOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{backend.Div(outputGrad, op.inputs[0])}
}

// TanhOp represents y = tanh(x). Backward: grad_x = grad_y * (1 - y²).
type TanhOp struct{ record }

// NewTanhOp creates a new TanhOp.
func NewTanhOp(input, output *tensor.RawTensor) *TanhOp {
	return &TanhOp{newRecord(output, input)}
}

// Backward computes input gradient for tanh.
func (op *TanhOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	y := op.output
	oneMinusY2 := backend.AddScalar(backend.MulScalar(backend.Mul(y, y), -1), 1)
	return []*tensor.RawTensor{backend.Mul(outputGrad, oneMinusY2)}
}

// SigmoidOp represents y = σ(x). Backward: grad_x = grad_y * y * (1 - y).
type SigmoidOp struct{ record }

// NewSigmoidOp creates a new SigmoidOp.
func NewSigmoidOp(input, output *tensor.RawTensor) *SigmoidOp {
	return &SigmoidOp{newRecord(output, input)}
}

// Backward computes input gradient for sigmoid.
func (op *SigmoidOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	y := op.output
	oneMinusY := backend.AddScalar(backend.MulScalar(y, -1), 1)
	return []*tensor.RawTensor{backend.Mul(outputGrad, backend.Mul(y, oneMinusY))}
}

// LogAddExpOp represents y = log(exp(a) + exp(b)).
//
// Backward pass uses the softmax weights of the pair:
//   - grad_a = grad_y * exp(a - y)
//   - grad_b = grad_y * exp(b - y)
//
// Both weights are in [0, 1], so the backward pass cannot overflow either.
type LogAddExpOp struct{ record }

// NewLogAddExpOp creates a new LogAddExpOp.
func NewLogAddExpOp(a, b, output *tensor.RawTensor) *LogAddExpOp {
	return &LogAddExpOp{newRecord(output, a, b)}
}

// Backward computes input gradients for log-add-exp.
func (op *LogAddExpOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	a, b := op.inputs[0], op.inputs[1]

	weightA := backend.Exp(backend.Sub(a, op.output))
	weightB := backend.Exp(backend.Sub(b, op.output))

	return []*tensor.RawTensor{
		reduceBroadcast(backend.Mul(outputGrad, weightA), a.Shape(), backend),
		reduceBroadcast(backend.Mul(outputGrad, weightB), b.Shape(), backend),
	}
}
