package tensor

import (
	"gonum.org/v1/gonum/mat"
)

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	t, err := tensor.Zeros(tensor.Shape{3, 1})
func Zeros(shape Shape) (*RawTensor, error) {
	return NewRaw(shape)
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape) (*RawTensor, error) {
	return Full(shape, 1)
}

// Full creates a tensor filled with a specific value.
func Full(shape Shape, value float64) (*RawTensor, error) {
	raw, err := NewRaw(shape)
	if err != nil {
		return nil, err
	}
	for i := range raw.data {
		raw.data[i] = value
	}
	return raw, nil
}

// Scalar creates a [1, 1] tensor.
func Scalar(value float64) *RawTensor {
	return &RawTensor{shape: Shape{1, 1}, data: []float64{value}}
}

// Column creates an [n, 1] column vector holding a copy of data.
func Column(data []float64) (*RawTensor, error) {
	return FromSlice(data, Shape{len(data), 1})
}

// FromMatrix copies a gonum matrix into a new RawTensor.
//
// Example:
//
//	x := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
//	t, err := tensor.FromMatrix(x)
func FromMatrix(m mat.Matrix) (*RawTensor, error) {
	r, c := m.Dims()
	raw, err := NewRaw(Shape{r, c})
	if err != nil {
		return nil, err
	}
	raw.Dense().Copy(m)
	return raw, nil
}
