package tensor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/descent/internal/tensor"
)

func TestShape_Validate(t *testing.T) {
	tests := []struct {
		name    string
		shape   tensor.Shape
		wantErr bool
	}{
		{"matrix", tensor.Shape{3, 4}, false},
		{"column", tensor.Shape{5, 1}, false},
		{"one dimension", tensor.Shape{5}, true},
		{"zero rows", tensor.Shape{0, 1}, true},
		{"negative cols", tensor.Shape{2, -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.shape.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBroadcastShapes(t *testing.T) {
	out, broadcast, err := tensor.BroadcastShapes(tensor.Shape{3, 1}, tensor.Shape{3, 1})
	require.NoError(t, err)
	assert.False(t, broadcast)
	assert.Equal(t, tensor.Shape{3, 1}, out)

	out, broadcast, err = tensor.BroadcastShapes(tensor.Shape{1, 1}, tensor.Shape{4, 2})
	require.NoError(t, err)
	assert.True(t, broadcast)
	assert.Equal(t, tensor.Shape{4, 2}, out)

	_, _, err = tensor.BroadcastShapes(tensor.Shape{3, 1}, tensor.Shape{2, 1})
	assert.Error(t, err)
}

func TestFromSlice_CopiesData(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6}
	raw, err := tensor.FromSlice(data, tensor.Shape{2, 3})
	require.NoError(t, err)

	data[0] = 100
	assert.Equal(t, 1.0, raw.At(0, 0))
	assert.Equal(t, 6.0, raw.At(1, 2))
	assert.Equal(t, 2, raw.Rows())
	assert.Equal(t, 3, raw.Cols())

	_, err = tensor.FromSlice(data, tensor.Shape{4, 2})
	assert.Error(t, err)
}

func TestFromMatrix(t *testing.T) {
	m := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	raw, err := tensor.FromMatrix(m.T())
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 3, 2, 4}, raw.Data())
}

func TestDense_SharesBuffer(t *testing.T) {
	raw, err := tensor.Zeros(tensor.Shape{2, 2})
	require.NoError(t, err)

	raw.Dense().Set(1, 0, 7)
	assert.Equal(t, 7.0, raw.At(1, 0))
}

func TestClone_IsDeep(t *testing.T) {
	raw, err := tensor.Ones(tensor.Shape{2, 1})
	require.NoError(t, err)

	c := raw.Clone()
	c.Data()[0] = 5
	assert.Equal(t, 1.0, raw.Data()[0])
}

func TestItem(t *testing.T) {
	assert.Equal(t, 2.5, tensor.Scalar(2.5).Item())

	col, err := tensor.Column([]float64{1, 2})
	require.NoError(t, err)
	assert.Panics(t, func() { col.Item() })
}
