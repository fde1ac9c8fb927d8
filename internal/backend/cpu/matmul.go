package cpu

import (
	"fmt"

	"github.com/born-ml/descent/internal/tensor"
)

// MatMul performs matrix multiplication.
// For 2D tensors: (M, K) @ (K, N) -> (M, N), computed by gonum's BLAS-backed Dense.Mul.
func (cpu *CPUBackend) MatMul(a, b *tensor.RawTensor) *tensor.RawTensor {
	m, k := a.Rows(), a.Cols()
	kAlt, n := b.Rows(), b.Cols()

	if k != kAlt {
		panic(fmt.Sprintf("matmul: shape mismatch [%d,%d] @ [%d,%d]", m, k, kAlt, n))
	}

	result := alloc("matmul", tensor.Shape{m, n})
	result.Dense().Mul(a.Dense(), b.Dense())
	return result
}
