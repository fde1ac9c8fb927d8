// Package config loads run configuration for the descent command.
//
// Values come, in increasing precedence, from Default, an optional YAML file,
// DESCENT_* environment variables and command-line flags bound to the same
// viper instance. Nested keys map to environment variables with "." replaced
// by "_", so train.epochs is DESCENT_TRAIN_EPOCHS.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/born-ml/descent/internal/dataset"
	"github.com/born-ml/descent/internal/errs"
	"github.com/born-ml/descent/internal/logging"
	"github.com/born-ml/descent/internal/optim"
	"github.com/born-ml/descent/internal/quasinewton"
	"github.com/born-ml/descent/internal/train"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "DESCENT"

// Config is the complete run configuration.
type Config struct {
	Data      DataConfig      `mapstructure:"data"`
	Train     TrainConfig     `mapstructure:"train"`
	Optimizer OptimizerConfig `mapstructure:"optimizer"`
	Reference ReferenceConfig `mapstructure:"reference"`
	Log       LogConfig       `mapstructure:"log"`
}

// DataConfig selects the dataset. CSV takes precedence over synthetic data.
type DataConfig struct {
	CSV          string    `mapstructure:"csv"`
	Rows         int       `mapstructure:"rows"`
	Features     int       `mapstructure:"features"`
	Seed         uint64    `mapstructure:"seed"`
	Labels       string    `mapstructure:"labels"` // bernoulli | separable
	TrueWeights  []float64 `mapstructure:"true_weights"`
	TestFraction float64   `mapstructure:"test_fraction"`
	SplitSeed    uint64    `mapstructure:"split_seed"`
	Standardize  bool      `mapstructure:"standardize"`
}

// TrainConfig controls the minibatch loop.
type TrainConfig struct {
	Epochs     int     `mapstructure:"epochs"`
	BatchSize  int     `mapstructure:"batch_size"`
	Remainder  string  `mapstructure:"remainder"`   // drop | keep
	LossPolicy string  `mapstructure:"loss_policy"` // last-batch | epoch-mean
	EmptyEpoch string  `mapstructure:"empty_epoch"` // fail | skip
	Oracle     string  `mapstructure:"oracle"`      // analytic | autodiff | finite-difference
	InitSeed   uint64  `mapstructure:"init_seed"`
	InitScale  float64 `mapstructure:"init_scale"`
}

// OptimizerConfig selects and parameterizes the optimizer.
type OptimizerConfig struct {
	Name     string  `mapstructure:"name"` // sgd | momentum | adam
	LR       float64 `mapstructure:"lr"`
	Momentum float64 `mapstructure:"momentum"`
	Beta1    float64 `mapstructure:"beta1"`
	Beta2    float64 `mapstructure:"beta2"`
	Eps      float64 `mapstructure:"eps"`
	Schedule string  `mapstructure:"schedule"` // constant | step | inverse-time
	Factor   float64 `mapstructure:"factor"`
	Every    int     `mapstructure:"every"`
	Decay    float64 `mapstructure:"decay"`
}

// ReferenceConfig configures the quasi-Newton reference solve.
type ReferenceConfig struct {
	Method            string  `mapstructure:"method"` // bfgs | lbfgs
	Store             int     `mapstructure:"store"`
	GradientThreshold float64 `mapstructure:"gradient_threshold"`
	MaxIterations     int     `mapstructure:"max_iterations"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Default returns the configuration of the reference experiment: 100
// synthetic rows with 4 features, plain SGD with lr 0.1, batch size 10 and
// 5 epochs.
func Default() Config {
	return Config{
		Data: DataConfig{
			Rows:         100,
			Features:     4,
			Seed:         2024,
			Labels:       "bernoulli",
			TrueWeights:  []float64{0.5, -0.5, 0.25, 0.4},
			TestFraction: 0.2,
			SplitSeed:    1,
		},
		Train: TrainConfig{
			Epochs:     5,
			BatchSize:  10,
			Remainder:  dataset.DropRemainder.String(),
			LossPolicy: train.LastBatchLoss.String(),
			EmptyEpoch: train.FailOnEmptyEpoch.String(),
			Oracle:     "analytic",
			InitSeed:   42,
			InitScale:  0.1,
		},
		Optimizer: OptimizerConfig{
			Name:     "sgd",
			LR:       0.1,
			Momentum: 0.9,
			Beta1:    0.9,
			Beta2:    0.999,
			Eps:      1e-8,
			Schedule: "constant",
			Factor:   0.5,
			Every:    10,
		},
		Reference: ReferenceConfig{
			Method:            quasinewton.BFGS.String(),
			Store:             15,
			GradientThreshold: 1e-8,
		},
		Log: LogConfig{
			Level:  "info",
			Format: logging.FormatConsole,
		},
	}
}

// Load fills a Config from v. If path is non-empty the YAML file at path is
// read first. The returned config is validated.
func Load(v *viper.Viper, path string) (Config, error) {
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, d Config) {
	defaults := map[string]any{
		"data.csv":           d.Data.CSV,
		"data.rows":          d.Data.Rows,
		"data.features":      d.Data.Features,
		"data.seed":          d.Data.Seed,
		"data.labels":        d.Data.Labels,
		"data.true_weights":  d.Data.TrueWeights,
		"data.test_fraction": d.Data.TestFraction,
		"data.split_seed":    d.Data.SplitSeed,
		"data.standardize":   d.Data.Standardize,

		"train.epochs":      d.Train.Epochs,
		"train.batch_size":  d.Train.BatchSize,
		"train.remainder":   d.Train.Remainder,
		"train.loss_policy": d.Train.LossPolicy,
		"train.empty_epoch": d.Train.EmptyEpoch,
		"train.oracle":      d.Train.Oracle,
		"train.init_seed":   d.Train.InitSeed,
		"train.init_scale":  d.Train.InitScale,

		"optimizer.name":     d.Optimizer.Name,
		"optimizer.lr":       d.Optimizer.LR,
		"optimizer.momentum": d.Optimizer.Momentum,
		"optimizer.beta1":    d.Optimizer.Beta1,
		"optimizer.beta2":    d.Optimizer.Beta2,
		"optimizer.eps":      d.Optimizer.Eps,
		"optimizer.schedule": d.Optimizer.Schedule,
		"optimizer.factor":   d.Optimizer.Factor,
		"optimizer.every":    d.Optimizer.Every,
		"optimizer.decay":    d.Optimizer.Decay,

		"reference.method":             d.Reference.Method,
		"reference.store":              d.Reference.Store,
		"reference.gradient_threshold": d.Reference.GradientThreshold,
		"reference.max_iterations":     d.Reference.MaxIterations,

		"log.level":  d.Log.Level,
		"log.format": d.Log.Format,
	}
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
}

// Validate checks ranges and enumerated values. Numeric hyperparameters of
// the optimizer are checked again by the optimizer constructors.
func (c Config) Validate() error {
	const op = "config"

	if c.Data.CSV == "" {
		if c.Data.Rows <= 0 || c.Data.Features <= 0 {
			return errs.Config(op, "data.rows %d and data.features %d must be positive", c.Data.Rows, c.Data.Features)
		}
		if len(c.Data.TrueWeights) != 0 && len(c.Data.TrueWeights) != c.Data.Features {
			return errs.Config(op, "data.true_weights has %d entries, want %d", len(c.Data.TrueWeights), c.Data.Features)
		}
	}
	if _, err := c.Data.LabelMode(); err != nil {
		return err
	}
	if c.Data.TestFraction < 0 || c.Data.TestFraction >= 1 {
		return errs.Config(op, "data.test_fraction %v must be in [0, 1)", c.Data.TestFraction)
	}

	if c.Train.Epochs < 0 {
		return errs.Config(op, "train.epochs %d must not be negative", c.Train.Epochs)
	}
	if c.Train.BatchSize <= 0 {
		return errs.Config(op, "train.batch_size %d must be positive", c.Train.BatchSize)
	}
	if c.Train.InitScale < 0 {
		return errs.Config(op, "train.init_scale %v must not be negative", c.Train.InitScale)
	}
	if _, err := dataset.ParseRemainderPolicy(c.Train.Remainder); err != nil {
		return err
	}
	if _, err := train.ParseLossPolicy(c.Train.LossPolicy); err != nil {
		return err
	}
	if _, err := train.ParseEmptyEpochPolicy(c.Train.EmptyEpoch); err != nil {
		return err
	}
	switch c.Train.Oracle {
	case "analytic", "autodiff", "finite-difference":
	default:
		return errs.Config(op, "train.oracle %q (want analytic, autodiff or finite-difference)", c.Train.Oracle)
	}

	switch c.Optimizer.Name {
	case "sgd", "momentum", "adam":
	default:
		return errs.Config(op, "optimizer.name %q (want sgd, momentum or adam)", c.Optimizer.Name)
	}
	switch c.Optimizer.Schedule {
	case "", "constant", "step", "inverse-time":
	default:
		return errs.Config(op, "optimizer.schedule %q (want constant, step or inverse-time)", c.Optimizer.Schedule)
	}

	if _, err := quasinewton.ParseMethod(c.Reference.Method); err != nil {
		return err
	}

	switch strings.ToLower(c.Log.Format) {
	case "", logging.FormatJSON, logging.FormatConsole:
	default:
		return errs.Config(op, "log.format %q (want json or console)", c.Log.Format)
	}
	return nil
}

// LabelMode parses Labels.
func (d DataConfig) LabelMode() (dataset.LabelMode, error) {
	switch d.Labels {
	case "", "bernoulli":
		return dataset.BernoulliLabels, nil
	case "separable":
		return dataset.SeparableLabels, nil
	default:
		return 0, errs.Config("config", "data.labels %q (want bernoulli or separable)", d.Labels)
	}
}

// BuildSchedule returns the learning-rate schedule, or nil for a constant
// rate equal to LR.
func (o OptimizerConfig) BuildSchedule() optim.Schedule {
	switch o.Schedule {
	case "step":
		return optim.StepDecay{Initial: o.LR, Factor: o.Factor, Every: o.Every}
	case "inverse-time":
		return optim.InverseTimeDecay{Initial: o.LR, Decay: o.Decay}
	default:
		return nil
	}
}
