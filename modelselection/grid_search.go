package modelselection

import (
	"fmt"
	"strings"
	"time"

	"github.com/sigo-ml/sigo/core/model"
	"github.com/sigo-ml/sigo/dataset"
	sigoErrors "github.com/sigo-ml/sigo/pkg/errors"
	"github.com/sigo-ml/sigo/pkg/log"
)

// ParamRange is one axis of a hyperparameter grid: a parameter name and its
// ordered candidate values.
type ParamRange struct {
	Name   string
	Values []float64
}

// ParamGrid is an ordered hyperparameter grid. Grid search enumerates the
// Cartesian product of the value lists in declared order, with the first
// range varying slowest; randomized search treats each range as a uniform
// candidate distribution.
type ParamGrid []ParamRange

// NumCombinations returns the size of the grid's Cartesian product.
func (g ParamGrid) NumCombinations() int {
	count := 1
	for _, pr := range g {
		count *= len(pr.Values)
	}
	return count
}

// validate checks that every range names a parameter the model exposes and
// carries at least one candidate value.
func (g ParamGrid) validate(est model.Tunable) error {
	known := make(map[string]bool)
	for _, name := range est.ParamNames() {
		known[name] = true
	}
	for _, pr := range g {
		if !known[pr.Name] {
			return sigoErrors.NewUnknownParameterError(modelName(est), pr.Name)
		}
		if len(pr.Values) == 0 {
			return sigoErrors.NewValidationError(pr.Name, "must have at least one candidate value", pr.Values)
		}
	}
	return nil
}

// modelName returns the bare type name of the estimator, matching the name
// the estimator reports from its own SetParam.
func modelName(est model.Tunable) string {
	name := strings.TrimPrefix(fmt.Sprintf("%T", est), "*")
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return name
}

// TrialResult is the outcome of cross-validating one hyperparameter
// combination.
type TrialResult struct {
	// Params is the exact combination the trial was evaluated with.
	Params map[string]float64

	// CV holds the per-fold seeds and scores of the trial.
	CV *CVResult
}

// TrialResults is the ordered list of trial outcomes returned by a search.
type TrialResults []TrialResult

// Best returns the index of the trial with the highest mean test score,
// or -1 if there are no trials.
func (trs TrialResults) Best() int {
	best := -1
	bestScore := 0.0
	for i, tr := range trs {
		if score := tr.CV.MeanTestScore(); best == -1 || score > bestScore {
			best = i
			bestScore = score
		}
	}
	return best
}

// GridSearchCV cross-validates the estimator on every combination of the
// hyperparameter grid.
//
// Parameter names are validated against est.ParamNames() before any
// cross-validation work; an unknown name fails immediately with
// UnknownParameterError. Combinations are enumerated as the Cartesian
// product of the value lists in the grid's declared order (first range
// varies slowest), so the result order is stable and reproducible.
//
// The single shared estimator is mutated in place for each combination, so
// trials run strictly sequentially. A trial that fails mid-fit leaves the
// estimator's hyperparameters at that trial's values.
//
// Returns:
//   - TrialResults: one entry per combination, in enumeration order, each
//     carrying the exact combination used
//   - error: UnknownParameterError or ValidationError from grid validation,
//     or any error from cross-validation
func GridSearchCV(est model.Tunable, ds *dataset.Dataset, grid ParamGrid, cfg CVConfig) (TrialResults, error) {
	if err := grid.validate(est); err != nil {
		return nil, err
	}

	count := grid.NumCombinations()
	logger := log.GetLoggerWithName("modelselection").With(
		log.ModelNameKey, modelName(est),
	)
	startTime := time.Now()
	logger.Info("Grid search started",
		log.OperationKey, log.OperationGridSearch,
		log.TrialsKey, count,
	)

	results := make(TrialResults, 0, count)
	combo := make(map[string]float64, len(grid))

	var enumerate func(depth int) error
	enumerate = func(depth int) error {
		if depth == len(grid) {
			for _, pr := range grid {
				if err := est.SetParam(pr.Name, combo[pr.Name]); err != nil {
					return err
				}
			}

			cv, err := CrossValidate(est, ds, cfg)
			if err != nil {
				return err
			}

			params := make(map[string]float64, len(combo))
			for name, value := range combo {
				params[name] = value
			}
			results = append(results, TrialResult{Params: params, CV: cv})

			logger.Debug(fmt.Sprintf("grid search (%d/%d)", len(results), count),
				log.OperationKey, log.OperationGridSearch,
				log.ScoreKey, cv.MeanTestScore(),
			)
			return nil
		}

		for _, value := range grid[depth].Values {
			combo[grid[depth].Name] = value
			if err := enumerate(depth + 1); err != nil {
				return err
			}
		}
		return nil
	}

	if err := enumerate(0); err != nil {
		return nil, err
	}

	logger.Info("Grid search completed",
		log.OperationKey, log.OperationGridSearch,
		log.TrialsKey, len(results),
		log.DurationMsKey, time.Since(startTime).Milliseconds(),
	)

	return results, nil
}
