package ops

import "github.com/born-ml/descent/internal/tensor"

// SumOp represents the scalar y = Σx. Backward spreads grad_y to every element.
type SumOp struct{ record }

// NewSumOp creates a new SumOp.
func NewSumOp(input, output *tensor.RawTensor) *SumOp {
	return &SumOp{newRecord(output, input)}
}

// Backward computes input gradient for sum.
func (op *SumOp) Backward(outputGrad *tensor.RawTensor, _ tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{filled(op.inputs[0].Shape(), outputGrad.Item())}
}

// MeanOp represents the scalar y = Σx / n. Backward: grad_x = grad_y / n.
type MeanOp struct{ record }

// NewMeanOp creates a new MeanOp.
func NewMeanOp(input, output *tensor.RawTensor) *MeanOp {
	return &MeanOp{newRecord(output, input)}
}

// Backward computes input gradient for mean.
func (op *MeanOp) Backward(outputGrad *tensor.RawTensor, _ tensor.Backend) []*tensor.RawTensor {
	x := op.inputs[0]
	return []*tensor.RawTensor{filled(x.Shape(), outputGrad.Item()/float64(x.NumElements()))}
}
