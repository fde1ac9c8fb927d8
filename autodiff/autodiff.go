// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides automatic differentiation capabilities.
//
// This package implements reverse-mode automatic differentiation (backpropagation)
// using a gradient tape. It wraps any backend to add autodiff capabilities.
//
// Example:
//
//	import (
//	    "github.com/born-ml/descent/autodiff"
//	    "github.com/born-ml/descent/backend/cpu"
//	    "github.com/born-ml/descent/tensor"
//	)
//
//	func main() {
//	    // f(x) = sum(x * x), ∇f(x) = 2x
//	    f := func(b tensor.Backend, x *tensor.RawTensor) (*tensor.RawTensor, error) {
//	        return b.Sum(b.Mul(x, x)), nil
//	    }
//	    value, grad, err := autodiff.Grad(cpu.New(), f, []float64{1, 2, 3})
//	}
package autodiff

import (
	"github.com/born-ml/descent/internal/autodiff"
	"github.com/born-ml/descent/internal/tensor"
)

// Backend is the autodiff-enabled backend.
type Backend[B tensor.Backend] = autodiff.AutodiffBackend[B]

// New creates a new autodiff backend wrapping the given backend.
//
// Example:
//
//	base := cpu.New()
//	backend := autodiff.New(base)
func New[B tensor.Backend](backend B) *Backend[B] {
	return autodiff.New(backend)
}

// GradientTape records operations for automatic differentiation.
type GradientTape = autodiff.GradientTape

// NewGradientTape creates a new gradient tape.
func NewGradientTape() *GradientTape {
	return autodiff.NewGradientTape()
}

// Func is a scalar function of an [n, 1] column written against a Backend.
type Func = autodiff.Func

// Backward computes gradients of the scalar t recorded on backend's tape.
func Backward[B tensor.Backend](t *tensor.RawTensor, backend *Backend[B]) map[*tensor.RawTensor]*tensor.RawTensor {
	return autodiff.Backward(t, backend)
}

// Grad evaluates f at point and returns its value and gradient.
func Grad[B tensor.Backend](inner B, f Func, point []float64) (float64, []float64, error) {
	return autodiff.Grad(inner, f, point)
}
