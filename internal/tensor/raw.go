package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// RawTensor is the low-level tensor representation: a dense row-major
// float64 buffer with a 2-D shape.
//
// RawTensors are treated as values by the backends. Every operation
// allocates a fresh result, so a tensor recorded on a gradient tape is never
// modified afterwards.
type RawTensor struct {
	shape Shape
	data  []float64
}

// NewRaw creates a zero-filled RawTensor with the given shape.
func NewRaw(shape Shape) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	return &RawTensor{
		shape: shape.Clone(),
		data:  make([]float64, shape.NumElements()),
	}, nil
}

// FromSlice creates a RawTensor holding a copy of data.
func FromSlice(data []float64, shape Shape) (*RawTensor, error) {
	raw, err := NewRaw(shape)
	if err != nil {
		return nil, err
	}
	if len(data) != len(raw.data) {
		return nil, fmt.Errorf("data length %d does not match shape %v (%d elements)",
			len(data), shape, len(raw.data))
	}
	copy(raw.data, data)
	return raw, nil
}

// Shape returns the tensor's shape.
func (r *RawTensor) Shape() Shape {
	return r.shape
}

// Rows returns the number of rows.
func (r *RawTensor) Rows() int {
	return r.shape[0]
}

// Cols returns the number of columns.
func (r *RawTensor) Cols() int {
	return r.shape[1]
}

// NumElements returns the number of stored elements.
func (r *RawTensor) NumElements() int {
	return len(r.data)
}

// Data returns the underlying buffer. Callers must not modify a tensor
// that has been recorded on a gradient tape.
func (r *RawTensor) Data() []float64 {
	return r.data
}

// At returns the element at (i, j).
func (r *RawTensor) At(i, j int) float64 {
	return r.data[i*r.shape[1]+j]
}

// Item returns the single value of a scalar tensor.
func (r *RawTensor) Item() float64 {
	if len(r.data) != 1 {
		panic(fmt.Sprintf("item: tensor has %d elements, want 1", len(r.data)))
	}
	return r.data[0]
}

// Dense returns a gonum view sharing the tensor's buffer.
func (r *RawTensor) Dense() *mat.Dense {
	return mat.NewDense(r.shape[0], r.shape[1], r.data)
}

// Clone returns a deep copy.
func (r *RawTensor) Clone() *RawTensor {
	data := make([]float64, len(r.data))
	copy(data, r.data)
	return &RawTensor{shape: r.shape.Clone(), data: data}
}

// String returns a short human-readable description.
func (r *RawTensor) String() string {
	return fmt.Sprintf("RawTensor%v", []int(r.shape))
}
