package dataset

import (
	"fmt"
	"iter"
	"strings"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/descent/internal/errs"
)

// Batch represents a minibatch: a read-only view of consecutive rows.
type Batch struct {
	Features *mat.Dense // [n, dim]
	Labels   []float64  // [n]
}

// Rows returns the number of examples in the batch.
func (b Batch) Rows() int {
	return len(b.Labels)
}

// Dim returns the feature dimension of the batch.
func (b Batch) Dim() int {
	if b.Features == nil {
		return 0
	}
	_, c := b.Features.Dims()
	return c
}

// RemainderPolicy decides what happens to the rows left over when the
// dataset size is not a multiple of the batch size.
type RemainderPolicy int

const (
	// DropRemainder silently skips the last N mod batchSize rows every epoch.
	DropRemainder RemainderPolicy = iota
	// KeepRemainder emits the leftover rows as a final, smaller batch.
	KeepRemainder
)

// String returns the configuration name of the policy.
func (p RemainderPolicy) String() string {
	switch p {
	case DropRemainder:
		return "drop"
	case KeepRemainder:
		return "keep"
	default:
		return fmt.Sprintf("RemainderPolicy(%d)", int(p))
	}
}

// ParseRemainderPolicy parses "drop" or "keep".
func ParseRemainderPolicy(s string) (RemainderPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "drop":
		return DropRemainder, nil
	case "keep":
		return KeepRemainder, nil
	default:
		return 0, errs.Config("remainder policy", "unknown policy %q (want drop or keep)", s)
	}
}

// Option configures a BatchStream.
type Option func(*streamOptions)

type streamOptions struct {
	remainder RemainderPolicy
	logger    *zap.Logger
}

// WithRemainder selects the remainder policy (default DropRemainder).
func WithRemainder(p RemainderPolicy) Option {
	return func(o *streamOptions) {
		o.remainder = p
	}
}

// WithLogger sets the logger used to report the partitioning.
func WithLogger(l *zap.Logger) Option {
	return func(o *streamOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// BatchStream is a finite, restartable sequence of batches.
//
// The partition is computed once at construction. Every call to All replays
// the same batches in the same order; there is no per-epoch shuffling.
type BatchStream struct {
	batches   []Batch
	rows      int
	dim       int
	batchSize int
	remainder RemainderPolicy
}

// NewBatchStream partitions features and labels into batches of batchSize
// rows in original row order.
//
// With the default DropRemainder policy the stream holds floor(N/batchSize)
// batches and the trailing N mod batchSize rows are never visited. A
// batchSize larger than N yields an empty stream, which is not an error.
//
// Example:
//
//	stream, err := dataset.NewBatchStream(x, y, 20)
//	for batch := range stream.All() {
//	    // batch.Rows() == 20
//	}
func NewBatchStream(features *mat.Dense, labels []float64, batchSize int, opts ...Option) (*BatchStream, error) {
	o := streamOptions{remainder: DropRemainder, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	if batchSize <= 0 {
		return nil, errs.Config("batch stream", "batch size %d must be positive", batchSize)
	}
	if features == nil {
		return nil, errs.Input("batch stream", "features are nil")
	}
	rows, dim := features.Dims()
	if features.IsEmpty() {
		rows, dim = 0, 0
	}
	if rows != len(labels) {
		return nil, errs.Dimension("batch stream", "label count", len(labels), rows)
	}

	s := &BatchStream{
		rows:      rows,
		dim:       dim,
		batchSize: batchSize,
		remainder: o.remainder,
	}

	full := rows / batchSize
	for i := range full {
		s.batches = append(s.batches, view(features, labels, i*batchSize, (i+1)*batchSize))
	}
	if o.remainder == KeepRemainder && rows%batchSize != 0 {
		s.batches = append(s.batches, view(features, labels, full*batchSize, rows))
	}

	o.logger.Info("batch stream",
		zap.Int("rows", rows),
		zap.Int("batches", len(s.batches)),
		zap.Int("batch_size", batchSize),
		zap.Stringer("remainder", o.remainder),
	)

	return s, nil
}

func view(features *mat.Dense, labels []float64, start, end int) Batch {
	_, dim := features.Dims()
	return Batch{
		Features: features.Slice(start, end, 0, dim).(*mat.Dense),
		Labels:   labels[start:end:end],
	}
}

// Len returns the number of batches per epoch.
func (s *BatchStream) Len() int {
	return len(s.batches)
}

// BatchSize returns the configured batch size.
func (s *BatchStream) BatchSize() int {
	return s.batchSize
}

// Rows returns the number of rows in the underlying data, including dropped ones.
func (s *BatchStream) Rows() int {
	return s.rows
}

// Dim returns the feature dimension.
func (s *BatchStream) Dim() int {
	return s.dim
}

// Remainder returns the remainder policy.
func (s *BatchStream) Remainder() RemainderPolicy {
	return s.remainder
}

// Batch returns the i-th batch of an epoch.
func (s *BatchStream) Batch(i int) Batch {
	return s.batches[i]
}

// All returns an iterator over one epoch of batches.
func (s *BatchStream) All() iter.Seq[Batch] {
	return func(yield func(Batch) bool) {
		for _, b := range s.batches {
			if !yield(b) {
				return
			}
		}
	}
}
