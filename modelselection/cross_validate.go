// Package modelselection provides k-fold cross-validation and hyperparameter
// search on top of any estimator satisfying the model.Estimator contract.
//
//   - CrossValidate: repeated random train/test trials, the shared primitive
//   - GridSearchCV: exhaustive search over the Cartesian product of a grid
//   - RandomizedSearchCV: reproducible random sampling of a parameter space
//
// Randomness is threaded explicitly: cross-validation draws fold seeds from
// a caller-supplied source, and randomized search derives one deterministic
// seed per trial from its random state, so any run can be reproduced exactly.
//
// Example usage:
//
//	ridge, _ := linear.NewRidgeRegression()
//	result, err := modelselection.CrossValidate(ridge, ds, modelselection.CVConfig{
//	    Folds:    5,
//	    TestSize: 0.3,
//	})
//	fmt.Printf("mean test R²: %.4f\n", result.MeanTestScore())
package modelselection

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/sigo-ml/sigo/core/model"
	"github.com/sigo-ml/sigo/dataset"
	sigoErrors "github.com/sigo-ml/sigo/pkg/errors"
	"github.com/sigo-ml/sigo/pkg/log"
)

// CVConfig configures a cross-validation run. The zero value is usable:
// every field has a documented default.
type CVConfig struct {
	// Folds is the number of independent train/test trials. Default: 5.
	// Must lie in [1, n_samples].
	Folds int

	// TestSize is the fraction of examples held out per trial, in (0, 1).
	// Default: 0.3.
	TestSize float64

	// Scoring is an optional external scoring function applied to true
	// versus predicted labels. When nil, the model's own Score method is
	// used for both partitions.
	Scoring model.ScoringFunc

	// Splitter produces the per-trial partitions. Default: ShuffleSplit.
	Splitter Splitter

	// RNG is the source fold seeds are drawn from. Default: a PCG source
	// seeded from the wall clock. Supply a seeded source for reproducible
	// fold seeds.
	RNG *rand.Rand
}

func (c CVConfig) withDefaults() CVConfig {
	if c.Folds == 0 {
		c.Folds = 5
	}
	if c.TestSize == 0 {
		c.TestSize = 0.3
	}
	if c.Splitter == nil {
		c.Splitter = ShuffleSplit{}
	}
	if c.RNG == nil {
		now := uint64(time.Now().UnixNano())
		c.RNG = rand.New(rand.NewPCG(now, now^0xdeadbeef))
	}
	return c
}

// CVResult holds the outcome of one cross-validation run: three parallel
// sequences of equal length (the number of folds). Seeds[i] is the split
// seed of fold i, TrainScores[i] and TestScores[i] the scores the fitted
// model attained on that fold's partitions.
type CVResult struct {
	Seeds       []int64
	TrainScores []float64
	TestScores  []float64
}

// MeanTrainScore returns the mean score on the training partitions.
func (cv *CVResult) MeanTrainScore() float64 {
	return mean(cv.TrainScores)
}

// MeanTestScore returns the mean score on the test partitions.
func (cv *CVResult) MeanTestScore() float64 {
	return mean(cv.TestScores)
}

// StdTestScore returns the sample standard deviation of the test scores.
// It is zero when there are fewer than two folds.
func (cv *CVResult) StdTestScore() float64 {
	if len(cv.TestScores) <= 1 {
		return 0
	}
	m := cv.MeanTestScore()
	var sumSq float64
	for _, score := range cv.TestScores {
		diff := score - m
		sumSq += diff * diff
	}
	return math.Sqrt(sumSq / float64(len(cv.TestScores)-1))
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// CrossValidate runs cfg.Folds independent train/test trials of the
// estimator on the dataset.
//
// Each trial draws a fresh seed from cfg.RNG, splits the dataset through
// cfg.Splitter, fits the estimator on the training partition and records the
// train and test scores. The estimator is fitted in place: no isolation is
// provided between folds, which is safe only because Fit fully resets the
// model's learned state.
//
// CrossValidate has no memory of prior calls; given the same inputs and the
// same RNG state it returns the same result.
//
// Returns:
//   - *CVResult: seeds, train scores and test scores, one entry per fold
//   - error: ValidationError if Folds or TestSize is out of range, or any
//     error from fitting, splitting or scoring
func CrossValidate(est model.Estimator, ds *dataset.Dataset, cfg CVConfig) (*CVResult, error) {
	cfg = cfg.withDefaults()

	m, _ := ds.Shape()
	if cfg.Folds < 1 || cfg.Folds > m {
		return nil, sigoErrors.NewValidationError("cv", "must be in [1, n_samples]", cfg.Folds)
	}
	if cfg.TestSize <= 0 || cfg.TestSize >= 1 {
		return nil, sigoErrors.NewValidationError("test_size", "must be in (0, 1)", cfg.TestSize)
	}

	logger := log.GetLoggerWithName("modelselection")
	logger.Info("Cross-validation started",
		log.OperationKey, log.OperationCrossValidate,
		log.PhaseKey, log.PhaseValidation,
		log.FoldsKey, cfg.Folds,
		log.SamplesKey, m,
	)

	result := &CVResult{
		Seeds:       make([]int64, 0, cfg.Folds),
		TrainScores: make([]float64, 0, cfg.Folds),
		TestScores:  make([]float64, 0, cfg.Folds),
	}

	for i := 0; i < cfg.Folds; i++ {
		seed := cfg.RNG.Int64N(1 << 31)

		train, test, err := cfg.Splitter.Split(ds, cfg.TestSize, seed)
		if err != nil {
			return nil, err
		}

		if err := est.Fit(train); err != nil {
			return nil, err
		}

		trainScore, testScore, err := scorePartitions(est, train, test, cfg.Scoring)
		if err != nil {
			return nil, err
		}

		logger.Debug("Fold completed",
			log.OperationKey, log.OperationCrossValidate,
			log.SeedKey, seed,
			log.ScoreKey, testScore,
		)

		result.Seeds = append(result.Seeds, seed)
		result.TrainScores = append(result.TrainScores, trainScore)
		result.TestScores = append(result.TestScores, testScore)
	}

	return result, nil
}

// scorePartitions computes the train and test scores, using the model's own
// Score method unless an external scoring function is supplied.
func scorePartitions(est model.Estimator, train, test *dataset.Dataset, scoring model.ScoringFunc) (trainScore, testScore float64, err error) {
	if scoring == nil {
		trainScore, err = est.Score(train)
		if err != nil {
			return 0, 0, err
		}
		testScore, err = est.Score(test)
		if err != nil {
			return 0, 0, err
		}
		return trainScore, testScore, nil
	}

	trainPred, err := est.Predict(train)
	if err != nil {
		return 0, 0, err
	}
	trainScore, err = scoring(train.Y(), trainPred)
	if err != nil {
		return 0, 0, err
	}

	testPred, err := est.Predict(test)
	if err != nil {
		return 0, 0, err
	}
	testScore, err = scoring(test.Y(), testPred)
	if err != nil {
		return 0, 0, err
	}

	return trainScore, testScore, nil
}
