// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the CPU backend for tensor operations.
//
// # Overview
//
// This package implements a CPU backend with:
//   - Pure Go implementation (no CGO)
//   - gonum kernels for element-wise arithmetic and matrix multiplication
//   - Scalar broadcasting for binary operations
//   - Overflow-free Sigmoid and LogAddExp
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/descent/backend/cpu"
//	    "github.com/born-ml/descent/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    x, _ := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2})
//	    y := backend.Mean(backend.Exp(x))
//	}
//
// # Thread Safety
//
// The CPU backend is safe for concurrent use. Each tensor operation
// is isolated and does not share mutable state.
package cpu
