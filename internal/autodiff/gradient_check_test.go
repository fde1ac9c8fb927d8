package autodiff_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"

	"github.com/born-ml/descent/internal/autodiff"
	"github.com/born-ml/descent/internal/backend/cpu"
	"github.com/born-ml/descent/internal/tensor"
)

// checkGradient compares autodiff.Grad with a central finite difference
// of the same function evaluated on the plain CPU backend.
func checkGradient(t *testing.T, f autodiff.Func, point []float64, tol float64) {
	t.Helper()

	_, grad, err := autodiff.Grad(cpu.New(), f, point)
	require.NoError(t, err)

	plain := func(x []float64) float64 {
		col, err := tensor.Column(x)
		require.NoError(t, err)
		y, err := f(cpu.New(), col)
		require.NoError(t, err)
		return y.Item()
	}
	numeric := fd.Gradient(nil, plain, point, &fd.Settings{Formula: fd.Central, Step: 1e-6})

	assert.InDeltaSlice(t, numeric, grad, tol)
}

func TestGradientCheck_ElementWise(t *testing.T) {
	tests := []struct {
		name string
		f    autodiff.Func
	}{
		{"exp", func(b tensor.Backend, x *tensor.RawTensor) (*tensor.RawTensor, error) {
			return b.Sum(b.Exp(x)), nil
		}},
		{"log of exp", func(b tensor.Backend, x *tensor.RawTensor) (*tensor.RawTensor, error) {
			return b.Sum(b.Log(b.AddScalar(b.Exp(x), 1))), nil
		}},
		{"tanh", func(b tensor.Backend, x *tensor.RawTensor) (*tensor.RawTensor, error) {
			return b.Mean(b.Tanh(x)), nil
		}},
		{"sigmoid", func(b tensor.Backend, x *tensor.RawTensor) (*tensor.RawTensor, error) {
			return b.Sum(b.Mul(b.Sigmoid(x), x)), nil
		}},
		{"div", func(b tensor.Backend, x *tensor.RawTensor) (*tensor.RawTensor, error) {
			return b.Sum(b.Div(x, b.AddScalar(b.Mul(x, x), 1))), nil
		}},
		{"div by scalar", func(b tensor.Backend, x *tensor.RawTensor) (*tensor.RawTensor, error) {
			return b.Sum(b.Div(tensor.Scalar(3), b.AddScalar(b.Mul(x, x), 1))), nil
		}},
		{"logaddexp", func(b tensor.Backend, x *tensor.RawTensor) (*tensor.RawTensor, error) {
			zeros, err := tensor.Zeros(x.Shape())
			if err != nil {
				return nil, err
			}
			return b.Mean(b.LogAddExp(zeros, b.MulScalar(x, -2))), nil
		}},
	}

	point := []float64{-1.5, -0.2, 0.3, 2.0}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkGradient(t, tt.f, point, 1e-6)
		})
	}
}

func TestGradientCheck_MatMulTranspose(t *testing.T) {
	a, err := tensor.FromSlice([]float64{
		1, -2, 0.5,
		0, 3, -1,
	}, tensor.Shape{2, 3})
	require.NoError(t, err)

	// f(x) = Σ (xᵀ Aᵀ)², exercising Transpose and MatMul together.
	f := func(b tensor.Backend, x *tensor.RawTensor) (*tensor.RawTensor, error) {
		row := b.MatMul(b.Transpose(x), b.Transpose(a))
		return b.Sum(b.Mul(row, row)), nil
	}

	checkGradient(t, f, []float64{0.1, -0.7, 1.3}, 1e-5)
}

func TestGrad_LogAddExpLargeArguments(t *testing.T) {
	// The backward weights stay in [0, 1] even when exp would overflow.
	f := func(b tensor.Backend, x *tensor.RawTensor) (*tensor.RawTensor, error) {
		zeros, err := tensor.Zeros(x.Shape())
		if err != nil {
			return nil, err
		}
		return b.Sum(b.LogAddExp(zeros, x)), nil
	}

	value, grad, err := autodiff.Grad(cpu.New(), f, []float64{800, -800})
	require.NoError(t, err)
	assert.InDelta(t, 800.0, value, 1e-9)
	assert.False(t, math.IsNaN(grad[0]) || math.IsNaN(grad[1]))
	assert.InDelta(t, 1.0, grad[0], 1e-12)
	assert.InDelta(t, 0.0, grad[1], 1e-12)
}
