package dataset_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/descent/internal/dataset"
	"github.com/born-ml/descent/internal/errs"
)

// rowIndexed builds an n×2 matrix whose first column holds the row index.
func rowIndexed(n int) (*mat.Dense, []float64) {
	x := mat.NewDense(n, 2, nil)
	y := make([]float64, n)
	for i := range n {
		x.Set(i, 0, float64(i))
		x.Set(i, 1, -float64(i))
		y[i] = float64(i % 2)
	}
	return x, y
}

func collectFirstColumn(stream *dataset.BatchStream) [][]float64 {
	var out [][]float64
	for batch := range stream.All() {
		col := make([]float64, batch.Rows())
		mat.Col(col, 0, batch.Features)
		out = append(out, col)
	}
	return out
}

func TestBatchStream_EvenSplit(t *testing.T) {
	x, y := rowIndexed(100)
	stream, err := dataset.NewBatchStream(x, y, 20)
	require.NoError(t, err)
	require.Equal(t, 5, stream.Len())

	seen := make([]bool, 100)
	for i, col := range collectFirstColumn(stream) {
		require.Len(t, col, 20)
		for k, v := range col {
			row := int(v)
			assert.Equal(t, i*20+k, row, "rows must stay in original order")
			assert.False(t, seen[row], "row %d visited twice", row)
			seen[row] = true
		}
	}
	assert.NotContains(t, seen, false)
}

func TestBatchStream_DropsRemainder(t *testing.T) {
	x, y := rowIndexed(100)
	stream, err := dataset.NewBatchStream(x, y, 30)
	require.NoError(t, err)

	assert.Equal(t, 3, stream.Len())
	cols := collectFirstColumn(stream)
	require.Len(t, cols, 3)
	for _, col := range cols {
		assert.Len(t, col, 30)
	}
	assert.Equal(t, 89.0, cols[2][29])
	assert.Equal(t, dataset.DropRemainder, stream.Remainder())
}

func TestBatchStream_KeepRemainder(t *testing.T) {
	x, y := rowIndexed(100)
	stream, err := dataset.NewBatchStream(x, y, 30, dataset.WithRemainder(dataset.KeepRemainder))
	require.NoError(t, err)

	require.Equal(t, 4, stream.Len())
	last := stream.Batch(3)
	assert.Equal(t, 10, last.Rows())
	assert.Equal(t, 99.0, last.Features.At(9, 0))
	assert.Equal(t, []float64{0, 1, 0, 1, 0, 1, 0, 1, 0, 1}, last.Labels)
}

func TestBatchStream_Restartable(t *testing.T) {
	x, y := rowIndexed(57)
	stream, err := dataset.NewBatchStream(x, y, 8)
	require.NoError(t, err)

	first := collectFirstColumn(stream)
	second := collectFirstColumn(stream)
	assert.Equal(t, first, second)
	assert.Len(t, first, 7)
}

func TestBatchStream_EarlyBreak(t *testing.T) {
	x, y := rowIndexed(40)
	stream, err := dataset.NewBatchStream(x, y, 10)
	require.NoError(t, err)

	count := 0
	for range stream.All() {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
	assert.Len(t, slices.Collect(stream.All()), 4)
}

func TestBatchStream_BatchLargerThanData(t *testing.T) {
	x, y := rowIndexed(10)
	stream, err := dataset.NewBatchStream(x, y, 11)
	require.NoError(t, err)

	assert.Equal(t, 0, stream.Len())
	assert.Empty(t, slices.Collect(stream.All()))
}

func TestBatchStream_Errors(t *testing.T) {
	x, y := rowIndexed(10)

	_, err := dataset.NewBatchStream(x, y, 0)
	assert.True(t, errors.Is(err, errs.ErrInvalidConfig))

	_, err = dataset.NewBatchStream(x, y, -3)
	assert.True(t, errors.Is(err, errs.ErrInvalidConfig))

	_, err = dataset.NewBatchStream(x, y[:9], 5)
	assert.True(t, errors.Is(err, errs.ErrInvalidDimension))

	_, err = dataset.NewBatchStream(nil, y, 5)
	assert.True(t, errors.Is(err, errs.ErrInvalidInput))
}

func TestBatchStream_LogsOnce(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	x, y := rowIndexed(100)

	stream, err := dataset.NewBatchStream(x, y, 30, dataset.WithLogger(zap.New(core)))
	require.NoError(t, err)
	for range stream.All() {
	}

	entries := logs.FilterMessage("batch stream").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.EqualValues(t, 100, fields["rows"])
	assert.EqualValues(t, 3, fields["batches"])
	assert.EqualValues(t, 30, fields["batch_size"])
}

func TestParseRemainderPolicy(t *testing.T) {
	p, err := dataset.ParseRemainderPolicy("keep")
	require.NoError(t, err)
	assert.Equal(t, dataset.KeepRemainder, p)

	p, err = dataset.ParseRemainderPolicy("")
	require.NoError(t, err)
	assert.Equal(t, dataset.DropRemainder, p)

	_, err = dataset.ParseRemainderPolicy("wrap")
	assert.True(t, errors.Is(err, errs.ErrInvalidConfig))
	assert.Equal(t, "drop", dataset.DropRemainder.String())
}
