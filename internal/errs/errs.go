// Package errs defines the error kinds shared by the optimization packages.
//
// Every failure surfaced by the objective, the batch stream, the optimizers and
// the training loop wraps exactly one of these sentinels, so callers can branch
// with errors.Is regardless of which component reported the problem:
//
//	_, _, err := train.Run(...)
//	if errors.Is(err, errs.ErrEmptyEpoch) {
//	    // batch size larger than the dataset
//	}
package errs

import (
	"errors"
	"fmt"
)

// Error kinds.
var (
	ErrInvalidDimension = errors.New("invalid dimension")
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidConfig    = errors.New("invalid config")
	ErrEmptyEpoch       = errors.New("empty epoch")
)

// Dimension reports a size mismatch between two named quantities.
func Dimension(op string, what string, got, want int) error {
	return fmt.Errorf("%s: %w: %s is %d, want %d", op, ErrInvalidDimension, what, got, want)
}

// Input reports malformed data passed to op.
func Input(op, format string, args ...any) error {
	return fmt.Errorf("%s: %w: %s", op, ErrInvalidInput, fmt.Sprintf(format, args...))
}

// Config reports a rejected configuration value.
func Config(op, format string, args ...any) error {
	return fmt.Errorf("%s: %w: %s", op, ErrInvalidConfig, fmt.Sprintf(format, args...))
}
