// Standard attribute keys for machine learning operations. Using these keys
// consistently across the library enables structured log analysis and
// filtering; they follow a hierarchical naming convention (e.g. "model.name",
// "data.samples").

package log

// Model and operation context.
const (
	// ModelNameKey identifies the type of machine learning model.
	// Examples: "RidgeRegression"
	ModelNameKey = "model.name"

	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "predict", "score", "cross_validate",
	// "grid_search", "randomized_search"
	OperationKey = "ml.operation"

	// ComponentKey identifies which package is performing the operation.
	// Examples: "linear", "modelselection", "metrics"
	ComponentKey = "ml.component"

	// PhaseKey indicates the phase of the model lifecycle.
	// Examples: "training", "inference", "validation"
	PhaseKey = "ml.phase"
)

// Standard values for OperationKey.
const (
	OperationFit              = "fit"
	OperationPredict          = "predict"
	OperationScore            = "score"
	OperationCrossValidate    = "cross_validate"
	OperationGridSearch       = "grid_search"
	OperationRandomizedSearch = "randomized_search"
)

// Standard values for PhaseKey.
const (
	PhaseTraining   = "training"
	PhaseInference  = "inference"
	PhaseValidation = "validation"
)

// Data shape and characteristics.
const (
	// SamplesKey indicates the number of samples (rows) being processed.
	SamplesKey = "data.samples"

	// FeaturesKey indicates the number of features (columns).
	FeaturesKey = "data.features"
)

// Optimization and model-selection context.
const (
	// IterationsKey records how many gradient-descent iterations ran.
	IterationsKey = "opt.iterations"

	// FoldsKey records the number of cross-validation folds.
	FoldsKey = "cv.folds"

	// TrialsKey records the number of hyperparameter combinations evaluated.
	TrialsKey = "search.trials"

	// SeedKey records the random seed used for a reproducible draw or split.
	SeedKey = "rand.seed"
)

// Performance metrics.
const (
	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"

	// CostKey records the final cost-function value after fitting.
	CostKey = "metrics.cost"

	// ScoreKey records an evaluation score (R², MSE, ...).
	ScoreKey = "metrics.score"
)
