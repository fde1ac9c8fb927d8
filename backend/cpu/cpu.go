// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/born-ml/descent/internal/backend/cpu"
	"github.com/born-ml/descent/tensor"
)

// Backend represents the CPU backend implementation.
//
// Element-wise kernels and matrix multiplication run on gonum's floats and
// mat packages.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new CPU backend.
//
// Example:
//
//	backend := cpu.New()
//	y := backend.Sigmoid(x)
func New() *Backend {
	return internalcpu.New()
}

// Sigmoid computes 0.5·(tanh(x/2) + 1), which does not overflow for any x.
func Sigmoid(x float64) float64 {
	return internalcpu.Sigmoid(x)
}

// LogAddExp computes log(exp(a) + exp(b)) without overflow.
func LogAddExp(a, b float64) float64 {
	return internalcpu.LogAddExp(a, b)
}
