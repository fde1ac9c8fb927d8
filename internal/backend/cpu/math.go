package cpu

import (
	"math"

	"github.com/born-ml/descent/internal/tensor"
)

// Exp computes e^x element-wise.
func (cpu *CPUBackend) Exp(x *tensor.RawTensor) *tensor.RawTensor {
	return unary("exp", x, math.Exp)
}

// Log computes the natural logarithm element-wise.
func (cpu *CPUBackend) Log(x *tensor.RawTensor) *tensor.RawTensor {
	return unary("log", x, math.Log)
}

// Tanh computes the hyperbolic tangent element-wise.
func (cpu *CPUBackend) Tanh(x *tensor.RawTensor) *tensor.RawTensor {
	return unary("tanh", x, math.Tanh)
}

// Sigmoid computes σ(x) element-wise as 0.5*(tanh(x/2)+1), which is
// symmetric around zero and never evaluates exp of a large argument.
func (cpu *CPUBackend) Sigmoid(x *tensor.RawTensor) *tensor.RawTensor {
	return unary("sigmoid", x, Sigmoid)
}

// LogAddExp computes log(exp(a) + exp(b)) element-wise.
//
// Shifting by max(a, b) keeps the exponent non-positive:
//
//	log(e^a + e^b) = m + log1p(e^-|a-b|),  m = max(a, b)
func (cpu *CPUBackend) LogAddExp(a, b *tensor.RawTensor) *tensor.RawTensor {
	return binary("logaddexp", a, b, logAddExpTo, LogAddExp)
}

// Sigmoid is the scalar logistic function.
func Sigmoid(x float64) float64 {
	return 0.5 * (math.Tanh(x/2) + 1)
}

// LogAddExp is the scalar form of CPUBackend.LogAddExp.
func LogAddExp(a, b float64) float64 {
	if math.IsInf(a, -1) {
		return b
	}
	if math.IsInf(b, -1) {
		return a
	}
	m := math.Max(a, b)
	return m + math.Log1p(math.Exp(-math.Abs(a-b)))
}

func logAddExpTo(dst, s, t []float64) []float64 {
	for i := range dst {
		dst[i] = LogAddExp(s[i], t[i])
	}
	return dst
}

func unary(name string, x *tensor.RawTensor, f func(float64) float64) *tensor.RawTensor {
	result := alloc(name, x.Shape())
	out := result.Data()
	for i, v := range x.Data() {
		out[i] = f(v)
	}
	return result
}
