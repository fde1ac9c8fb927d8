// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the dense 2-D float64 tensors and the Backend
// interface used by the gradient machinery.
//
// # Overview
//
// A RawTensor is a row-major [rows, cols] buffer. Column vectors are
// [n, 1] and scalars are [1, 1]. Backends never modify their inputs; every
// operation allocates its result.
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
//	    x, _ := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2})
//	    w, _ := tensor.Column([]float64{0.5, -0.5})
//	    logits := backend.MatMul(x, w) // [2, 1]
//	}
//
// # Broadcasting
//
// Element-wise binary operations accept identical shapes or a [1, 1] scalar
// on either side. Anything else is a programming error and panics.
package tensor
