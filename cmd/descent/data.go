package main

import (
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/born-ml/descent/internal/config"
	"github.com/born-ml/descent/internal/dataset"
	"github.com/born-ml/descent/internal/errs"
	"github.com/born-ml/descent/internal/gradient"
	"github.com/born-ml/descent/internal/logreg"
)

// experiment is the prepared data for a run.
type experiment struct {
	train   *dataset.Dataset
	test    *dataset.Dataset
	truth   []float64 // nil for CSV data
	initial []float64
}

func prepare(cfg config.Config, logger *zap.Logger) (*experiment, error) {
	var (
		all   *dataset.Dataset
		truth []float64
		err   error
	)
	if cfg.Data.CSV != "" {
		all, err = dataset.LoadCSV(cfg.Data.CSV)
	} else {
		var mode dataset.LabelMode
		mode, err = cfg.Data.LabelMode()
		if err != nil {
			return nil, err
		}
		all, truth, err = dataset.Synthetic(dataset.SyntheticConfig{
			Rows:     cfg.Data.Rows,
			Features: cfg.Data.Features,
			Seed:     cfg.Data.Seed,
			Weights:  cfg.Data.TrueWeights,
			Labels:   mode,
		})
	}
	if err != nil {
		return nil, err
	}
	if cfg.Data.Standardize {
		all.Standardize()
	}

	trainSet, testSet, err := all.Split(cfg.Data.TestFraction, cfg.Data.SplitSeed)
	if err != nil {
		return nil, err
	}
	logger.Info("dataset",
		zap.String("source", source(cfg)),
		zap.Int("train_rows", trainSet.Rows()),
		zap.Int("test_rows", testSet.Rows()),
		zap.Int("features", trainSet.Dim()),
	)

	rng := rand.New(rand.NewPCG(cfg.Train.InitSeed, cfg.Train.InitSeed+1))
	initial := make([]float64, trainSet.Dim())
	for i := range initial {
		initial[i] = cfg.Train.InitScale * rng.NormFloat64()
	}

	return &experiment{train: trainSet, test: testSet, truth: truth, initial: initial}, nil
}

func source(cfg config.Config) string {
	if cfg.Data.CSV != "" {
		return cfg.Data.CSV
	}
	return "synthetic"
}

func newOracle(name string, model logreg.Model) (gradient.Oracle, error) {
	switch name {
	case "analytic":
		return gradient.Analytic{Objective: model}, nil
	case "autodiff":
		return gradient.Autodiff{Model: model}, nil
	case "finite-difference":
		return gradient.FiniteDifference{Objective: model}, nil
	default:
		return nil, errs.Config("oracle", "unknown oracle %q", name)
	}
}
