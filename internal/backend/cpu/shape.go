package cpu

import (
	"github.com/born-ml/descent/internal/tensor"
)

// Transpose swaps rows and columns, copying into a new tensor.
func (cpu *CPUBackend) Transpose(t *tensor.RawTensor) *tensor.RawTensor {
	result := alloc("transpose", tensor.Shape{t.Cols(), t.Rows()})
	result.Dense().Copy(t.Dense().T())
	return result
}
