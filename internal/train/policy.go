package train

import (
	"fmt"
	"strings"

	"github.com/born-ml/descent/internal/errs"
)

// LossPolicy selects how the per-epoch loss recorded in the history is computed.
type LossPolicy int

const (
	// LastBatchLoss evaluates the objective at the end-of-epoch parameters
	// on the epoch's last batch.
	LastBatchLoss LossPolicy = iota
	// EpochMeanLoss evaluates the objective at the end-of-epoch parameters
	// on every batch of the epoch and records the row-weighted mean.
	EpochMeanLoss
)

// String returns the configuration name of the policy.
func (p LossPolicy) String() string {
	switch p {
	case LastBatchLoss:
		return "last-batch"
	case EpochMeanLoss:
		return "epoch-mean"
	default:
		return fmt.Sprintf("LossPolicy(%d)", int(p))
	}
}

// ParseLossPolicy parses "last-batch" or "epoch-mean". Empty means last-batch.
func ParseLossPolicy(s string) (LossPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "last-batch":
		return LastBatchLoss, nil
	case "epoch-mean":
		return EpochMeanLoss, nil
	default:
		return 0, errs.Config("loss policy", "unknown policy %q (want last-batch or epoch-mean)", s)
	}
}

// EmptyEpochPolicy decides what happens when a pass over the stream yields
// no batches, e.g. because the batch size exceeds the row count.
type EmptyEpochPolicy int

const (
	// FailOnEmptyEpoch aborts the run with ErrEmptyEpoch.
	FailOnEmptyEpoch EmptyEpochPolicy = iota
	// SkipEmptyEpoch leaves the parameters unchanged and records no loss.
	SkipEmptyEpoch
)

// String returns the configuration name of the policy.
func (p EmptyEpochPolicy) String() string {
	switch p {
	case FailOnEmptyEpoch:
		return "fail"
	case SkipEmptyEpoch:
		return "skip"
	default:
		return fmt.Sprintf("EmptyEpochPolicy(%d)", int(p))
	}
}

// ParseEmptyEpochPolicy parses "fail" or "skip". Empty means fail.
func ParseEmptyEpochPolicy(s string) (EmptyEpochPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "fail":
		return FailOnEmptyEpoch, nil
	case "skip":
		return SkipEmptyEpoch, nil
	default:
		return 0, errs.Config("empty epoch policy", "unknown policy %q (want fail or skip)", s)
	}
}
