// Package validate compares parameter vectors produced by different solvers.
package validate

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/descent/internal/errs"
)

// MaxAbsDiff returns max_i |a[i] - b[i]|, the ∞-norm of a - b.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if err := sameLength("max abs diff", a, b); err != nil {
		return 0, err
	}
	if len(a) == 0 {
		return 0, nil
	}
	return floats.Distance(a, b, math.Inf(1)), nil
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b []float64) (float64, error) {
	if err := sameLength("distance", a, b); err != nil {
		return 0, err
	}
	if len(a) == 0 {
		return 0, nil
	}
	return floats.Distance(a, b, 2), nil
}

// AllClose reports whether |a[i] - b[i]| <= atol + rtol·|b[i]| for every i.
//
// NaN is never close to anything.
func AllClose(a, b []float64, atol, rtol float64) (bool, error) {
	if err := sameLength("all close", a, b); err != nil {
		return false, err
	}
	for i := range a {
		if !(math.Abs(a[i]-b[i]) <= atol+rtol*math.Abs(b[i])) {
			return false, nil
		}
	}
	return true, nil
}

func sameLength(op string, a, b []float64) error {
	if len(a) != len(b) {
		return errs.Dimension(op, "length", len(b), len(a))
	}
	return nil
}
