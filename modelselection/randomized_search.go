package modelselection

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/sigo-ml/sigo/core/model"
	"github.com/sigo-ml/sigo/dataset"
	sigoErrors "github.com/sigo-ml/sigo/pkg/errors"
	"github.com/sigo-ml/sigo/pkg/log"
)

// RandomizedSearchConfig configures a randomized hyperparameter search.
type RandomizedSearchConfig struct {
	CVConfig

	// NIter is the number of hyperparameter combinations to sample and
	// evaluate. Default: 10. Must be at least 1.
	NIter int

	// RandomState controls reproducibility. When non-negative, trial i
	// samples its combination and draws its fold seeds from a PCG source
	// seeded with RandomState+i, so two searches with identical inputs
	// produce identical results. Negative values (the constructor default)
	// seed each trial from entropy.
	RandomState int64
}

// NewRandomizedSearchConfig returns the default configuration:
// 10 iterations, nondeterministic seeding, CVConfig defaults.
func NewRandomizedSearchConfig() RandomizedSearchConfig {
	return RandomizedSearchConfig{
		NIter:       10,
		RandomState: -1,
	}
}

// RandomizedSearchCV cross-validates the estimator on NIter hyperparameter
// combinations sampled uniformly at random from the candidate distribution.
//
// Unlike grid search, each trial runs on an isolated clone of the estimator
// (via Clone), so one trial's hyperparameters can never leak into the next
// and the supplied estimator is left untouched. With a non-negative
// RandomState the whole search is exactly reproducible: trial i derives its
// sampling draws and its fold seeds from the deterministic seed
// RandomState+i.
//
// Parameters:
//   - est: the estimator to tune; used only as a hyperparameter template
//   - ds: the dataset
//   - dist: per-parameter candidate collections, sampled uniformly
//   - cfg: search configuration
//
// Returns:
//   - TrialResults: one entry per trial, each carrying the sampled
//     combination
//   - error: ValidationError if Folds, NIter or TestSize is out of range,
//     UnknownParameterError if dist names a parameter the model does not
//     expose, or any error from cross-validation
func RandomizedSearchCV(est model.Tunable, ds *dataset.Dataset, dist ParamGrid, cfg RandomizedSearchConfig) (TrialResults, error) {
	if cfg.NIter == 0 {
		cfg.NIter = 10
	}
	cfg.CVConfig = cfg.CVConfig.withDefaults()

	m, _ := ds.Shape()
	if cfg.Folds < 1 || cfg.Folds > m {
		return nil, sigoErrors.NewValidationError("cv", "must be in [1, n_samples]", cfg.Folds)
	}
	if cfg.NIter < 1 {
		return nil, sigoErrors.NewValidationError("n_iter", "must be a positive integer", cfg.NIter)
	}
	if cfg.TestSize <= 0 || cfg.TestSize >= 1 {
		return nil, sigoErrors.NewValidationError("test_size", "must be in (0, 1)", cfg.TestSize)
	}
	if err := dist.validate(est); err != nil {
		return nil, err
	}

	logger := log.GetLoggerWithName("modelselection").With(
		log.ModelNameKey, modelName(est),
	)
	startTime := time.Now()
	logger.Info("Randomized search started",
		log.OperationKey, log.OperationRandomizedSearch,
		log.TrialsKey, cfg.NIter,
	)

	results := make(TrialResults, 0, cfg.NIter)

	for i := 0; i < cfg.NIter; i++ {
		// Each trial owns an isolated clone and a deterministic random
		// source derived from RandomState+i.
		clone := est.Clone()
		trialRNG := trialSource(cfg.RandomState, i)

		params := make(map[string]float64, len(dist))
		for _, pr := range dist {
			value := pr.Values[trialRNG.IntN(len(pr.Values))]
			if err := clone.SetParam(pr.Name, value); err != nil {
				return nil, err
			}
			params[pr.Name] = value
		}

		// Fold seeds are drawn from the same per-trial source, so the
		// splits are reproducible along with the sampled combination.
		cvCfg := cfg.CVConfig
		cvCfg.RNG = trialRNG

		cv, err := CrossValidate(clone, ds, cvCfg)
		if err != nil {
			return nil, err
		}
		results = append(results, TrialResult{Params: params, CV: cv})

		logger.Debug(fmt.Sprintf("randomized search (%d/%d)", i+1, cfg.NIter),
			log.OperationKey, log.OperationRandomizedSearch,
			log.ScoreKey, cv.MeanTestScore(),
		)
	}

	logger.Info("Randomized search completed",
		log.OperationKey, log.OperationRandomizedSearch,
		log.TrialsKey, len(results),
		log.DurationMsKey, time.Since(startTime).Milliseconds(),
	)

	return results, nil
}

// trialSource returns the random source for trial i: a PCG seeded with
// randomState+i when randomState is non-negative, otherwise one seeded from
// entropy.
func trialSource(randomState int64, i int) *rand.Rand {
	if randomState >= 0 {
		seed := uint64(randomState + int64(i))
		return rand.New(rand.NewPCG(seed, seed))
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
