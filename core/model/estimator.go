package model

import (
	"gonum.org/v1/gonum/mat"

	"github.com/sigo-ml/sigo/dataset"
)

// Fitter is the interface for trainable models.
type Fitter interface {
	// Fit trains the model on the dataset, in place. Refitting resets any
	// prior training state first, so repeated calls are idempotent.
	Fit(ds *dataset.Dataset) error
}

// Predictor is the interface for models that can predict labels.
type Predictor interface {
	// Predict returns one prediction per example in the dataset.
	Predict(ds *dataset.Dataset) (*mat.VecDense, error)
}

// Scorer is the interface for models that can score themselves on a dataset.
// Whether higher or lower is better is estimator-defined (R² for the linear
// model: higher is better).
type Scorer interface {
	Score(ds *dataset.Dataset) (float64, error)
}

// Estimator is the capability contract required of any model variant used
// with the model-selection layer.
type Estimator interface {
	Fitter
	Predictor
	Scorer
}

// Tunable is an Estimator whose hyperparameters can be set by name, as the
// grid and randomized search optimizers require. SetParam validates both the
// name (UnknownParameterError) and the value (ValidationError); names are
// never silently ignored.
type Tunable interface {
	Estimator

	// ParamNames returns the names of the tunable hyperparameters.
	ParamNames() []string

	// SetParam sets the named hyperparameter to the given value.
	SetParam(name string, value float64) error

	// Clone returns a fresh, unfitted copy of the estimator carrying only
	// its hyperparameters. Trained state is not copied.
	Clone() Tunable
}

// ScoringFunc is an external scoring strategy applied to true versus
// predicted labels. When supplied to cross-validation it replaces the
// model's own Score method.
type ScoringFunc func(yTrue, yPred *mat.VecDense) (float64, error)
