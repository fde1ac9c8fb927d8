// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/descent/internal/tensor"
)

// Shape is a [rows, cols] tensor shape.
type Shape = tensor.Shape

// RawTensor is a dense row-major float64 tensor.
type RawTensor = tensor.RawTensor

// Backend is the interface all compute backends implement.
type Backend = tensor.Backend

// Zeros creates a tensor filled with zeros.
func Zeros(shape Shape) (*RawTensor, error) {
	return tensor.Zeros(shape)
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape) (*RawTensor, error) {
	return tensor.Ones(shape)
}

// Full creates a tensor filled with value.
func Full(shape Shape, value float64) (*RawTensor, error) {
	return tensor.Full(shape, value)
}

// Scalar creates a [1, 1] tensor.
func Scalar(value float64) *RawTensor {
	return tensor.Scalar(value)
}

// Column creates an [n, 1] column holding a copy of data.
func Column(data []float64) (*RawTensor, error) {
	return tensor.Column(data)
}

// FromSlice creates a tensor holding a copy of data.
//
// Example:
//
//	t, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
func FromSlice(data []float64, shape Shape) (*RawTensor, error) {
	return tensor.FromSlice(data, shape)
}

// FromMatrix copies a gonum matrix into a new tensor.
func FromMatrix(m mat.Matrix) (*RawTensor, error) {
	return tensor.FromMatrix(m)
}
