// Package linear provides linear machine learning models.
//
// The package implements RidgeRegression, a linear model with L2
// regularization fitted by iterative gradient descent:
//
//   - Convergence control through a cost-delta stopping tolerance
//   - Optional adaptive learning rate (halved instead of stopping early)
//   - Full cost history recorded across iterations for inspection
//   - R² scoring through the metrics package
//
// Example usage:
//
//	ridge, err := linear.NewRidgeRegression(
//	    linear.WithL2Penalty(1.0),
//	    linear.WithAlpha(0.001),
//	    linear.WithMaxIter(2000),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = ridge.Fit(ds)
//	predictions, err := ridge.Predict(dsTest)
//
// RidgeRegression satisfies the model.Tunable contract, so it plugs directly
// into the modelselection package for cross-validation, grid search and
// randomized search.
package linear

import (
	"math"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/sigo-ml/sigo/core/model"
	"github.com/sigo-ml/sigo/dataset"
	"github.com/sigo-ml/sigo/metrics"
	sigoErrors "github.com/sigo-ml/sigo/pkg/errors"
	"github.com/sigo-ml/sigo/pkg/log"
)

// Hyperparameter names accepted by RidgeRegression.SetParam.
const (
	ParamL2Penalty = "l2_penalty"
	ParamAlpha     = "alpha"
	ParamMaxIter   = "max_iter"
	ParamTolerance = "tolerance"
)

// RidgeRegression is a linear model with L2 regularization fitted by
// gradient descent.
type RidgeRegression struct {
	state *model.StateManager

	// Hyperparameters
	l2Penalty     float64 // L2 regularization strength (lambda)
	alpha         float64 // Learning rate
	maxIter       int     // Maximum number of iterations
	tol           float64 // Stopping tolerance on the cost delta
	adaptiveAlpha bool    // Halve alpha instead of stopping early

	// Learned parameters
	theta  *mat.VecDense // Coefficients, one per feature
	theta0 float64       // Intercept

	// costHistory[i] is the cost-function value after iteration i.
	// Appended during fitting, never rewritten.
	costHistory []float64

	logger log.Logger
}

// NewRidgeRegression creates a new ridge regression model.
//
// Defaults: l2_penalty=1, alpha=0.001, max_iter=1000, tolerance=1e-4,
// adaptive alpha disabled. Options override the defaults; the assembled
// configuration is validated before the model is returned.
//
// Returns:
//   - *RidgeRegression: a new untrained model
//   - error: ValidationError naming the offending parameter if l2_penalty,
//     alpha or tolerance is not positive, or max_iter is less than 1
//
// Example:
//
//	ridge, err := linear.NewRidgeRegression(linear.WithAlpha(0.01))
func NewRidgeRegression(options ...Option) (*RidgeRegression, error) {
	r := &RidgeRegression{
		state:     model.NewStateManager(),
		l2Penalty: 1.0,
		alpha:     0.001,
		maxIter:   1000,
		tol:       1e-4,
	}

	for _, opt := range options {
		opt(r)
	}

	if err := r.validateParams(); err != nil {
		return nil, err
	}

	r.logger = log.GetLoggerWithName("linear").With(
		log.ModelNameKey, "RidgeRegression",
		log.ComponentKey, "linear",
	)

	return r, nil
}

func (r *RidgeRegression) validateParams() error {
	if r.l2Penalty <= 0 {
		return sigoErrors.NewValidationError(ParamL2Penalty, "must be positive", r.l2Penalty)
	}
	if r.alpha <= 0 {
		return sigoErrors.NewValidationError(ParamAlpha, "must be positive", r.alpha)
	}
	if r.maxIter < 1 {
		return sigoErrors.NewValidationError(ParamMaxIter, "must be a positive integer", r.maxIter)
	}
	if r.tol <= 0 {
		return sigoErrors.NewValidationError(ParamTolerance, "must be positive", r.tol)
	}
	return nil
}

// Fit trains the model on the dataset using gradient descent.
//
// Coefficients are initialized to zero and updated for at most max_iter
// iterations. After each iteration the cost-function value is appended to
// the cost history. Once the absolute cost delta between consecutive
// iterations falls below the tolerance, fitting either stops (default
// policy) or halves the learning rate and continues to the iteration limit
// (adaptive policy). Exhausting the iteration limit is not an error; the
// cost history length reflects it and a ConvergenceWarning is emitted
// through the warning handler.
//
// Any previously learned state is discarded first, so refitting from the
// same inputs always reproduces the same final state.
//
// Returns:
//   - error: always nil for a valid Dataset; fitting never fails due to
//     numeric non-convergence
func (r *RidgeRegression) Fit(ds *dataset.Dataset) error {
	startTime := time.Now()
	m, n := ds.Shape()

	r.logger.Info("Training started",
		log.OperationKey, log.OperationFit,
		log.PhaseKey, log.PhaseTraining,
		log.SamplesKey, m,
		log.FeaturesKey, n,
	)

	// Reset state so refitting is idempotent.
	r.state.Reset()
	r.theta = mat.NewVecDense(n, nil)
	r.theta0 = 0
	r.costHistory = make([]float64, 0, r.maxIter)

	// The adaptive policy halves the working rate; the configured
	// hyperparameter is left untouched so refits start from the same rate.
	alpha := r.alpha

	converged := false
	for i := 0; i < r.maxIter; i++ {
		r.gradientDescentStep(ds, m, alpha)
		r.costHistory = append(r.costHistory, r.costValue(ds))

		// Cost at iteration -1 counts as +Inf, so the first iteration can
		// never trigger the stopping rule.
		prev := math.Inf(1)
		if i > 0 {
			prev = r.costHistory[i-1]
		}
		if math.Abs(r.costHistory[i]-prev) < r.tol {
			if !r.adaptiveAlpha {
				converged = true
				break
			}
			alpha /= 2
		}
	}

	r.state.SetFitted()
	r.state.SetDimensions(n, m)

	if !r.adaptiveAlpha && !converged {
		sigoErrors.Warn(sigoErrors.NewConvergenceWarning("RidgeRegression", r.maxIter, ""))
	}

	r.logger.Info("Training completed",
		log.OperationKey, log.OperationFit,
		log.PhaseKey, log.PhaseTraining,
		log.DurationMsKey, time.Since(startTime).Milliseconds(),
		log.IterationsKey, len(r.costHistory),
		log.CostKey, r.costHistory[len(r.costHistory)-1],
	)

	return nil
}

// gradientDescentStep performs one iteration of gradient descent:
//
//	y_pred   = X·theta + theta0
//	gradient = (alpha/m) * (y_pred - y)·X
//	penalty  = theta * alpha * (l2_penalty/m)
//	theta    = theta - gradient - penalty
//	theta0   = theta0 - (alpha/m) * Σ(y_pred - y)
//
// The intercept is not regularized.
func (r *RidgeRegression) gradientDescentStep(ds *dataset.Dataset, m int, alpha float64) {
	residual := r.residual(ds)
	_, n := ds.Shape()

	gradient := mat.NewVecDense(n, nil)
	gradient.MulVec(ds.X().T(), residual)
	gradient.ScaleVec(alpha/float64(m), gradient)

	penalty := mat.NewVecDense(n, nil)
	penalty.ScaleVec(alpha*r.l2Penalty/float64(m), r.theta)

	r.theta.SubVec(r.theta, gradient)
	r.theta.SubVec(r.theta, penalty)

	r.theta0 -= (alpha / float64(m)) * mat.Sum(residual)
}

// residual returns y_pred - y for the current parameters.
func (r *RidgeRegression) residual(ds *dataset.Dataset) *mat.VecDense {
	m, _ := ds.Shape()
	residual := mat.NewVecDense(m, nil)
	residual.MulVec(ds.X(), r.theta)
	residual.AddScaledVec(residual, 1, constantVec(m, r.theta0))
	residual.SubVec(residual, ds.Y())
	return residual
}

// costValue computes the regularized cost for the current parameters
// without the fitted-state guard; used inside the fitting loop.
func (r *RidgeRegression) costValue(ds *dataset.Dataset) float64 {
	m, _ := ds.Shape()
	residual := r.residual(ds)

	var rss float64
	for i := 0; i < m; i++ {
		v := residual.AtVec(i)
		rss += v * v
	}

	var reg float64
	for i := 0; i < r.theta.Len(); i++ {
		v := r.theta.AtVec(i)
		reg += v * v
	}

	return (rss + r.l2Penalty*reg) / (2 * float64(m))
}

func constantVec(n int, v float64) *mat.VecDense {
	data := make([]float64, n)
	for i := range data {
		data[i] = v
	}
	return mat.NewVecDense(n, data)
}

// Predict returns the linear projection X·theta + theta0 for each example.
//
// Returns:
//   - *mat.VecDense: one prediction per example
//   - error: NotFittedError if the model has not been fitted,
//     DimensionError if the feature count differs from training
func (r *RidgeRegression) Predict(ds *dataset.Dataset) (*mat.VecDense, error) {
	if !r.state.IsFitted() {
		return nil, sigoErrors.NewNotFittedError("RidgeRegression", "Predict")
	}

	m, n := ds.Shape()
	if nFeatures, _ := r.state.GetDimensions(); n != nFeatures {
		return nil, sigoErrors.NewDimensionError("RidgeRegression.Predict", nFeatures, n, 1)
	}

	r.logger.Debug("Prediction started",
		log.OperationKey, log.OperationPredict,
		log.PhaseKey, log.PhaseInference,
		log.SamplesKey, m,
	)

	predictions := mat.NewVecDense(m, nil)
	predictions.MulVec(ds.X(), r.theta)
	predictions.AddScaledVec(predictions, 1, constantVec(m, r.theta0))

	return predictions, nil
}

// Cost computes the regularized cost function on the dataset:
//
//	J = (Σ(y_pred - y)² + l2_penalty * Σtheta²) / (2m)
//
// Returns:
//   - float64: the cost value
//   - error: NotFittedError if the model has not been fitted
func (r *RidgeRegression) Cost(ds *dataset.Dataset) (float64, error) {
	if !r.state.IsFitted() {
		return 0, sigoErrors.NewNotFittedError("RidgeRegression", "Cost")
	}
	return r.costValue(ds), nil
}

// Score computes the coefficient of determination (R²) of the predictions
// on the dataset. Higher is better; the best possible score is 1.0.
//
// Returns:
//   - float64: R² score
//   - error: NotFittedError if the model has not been fitted
func (r *RidgeRegression) Score(ds *dataset.Dataset) (float64, error) {
	if !r.state.IsFitted() {
		return 0, sigoErrors.NewNotFittedError("RidgeRegression", "Score")
	}

	yPred, err := r.Predict(ds)
	if err != nil {
		return 0, err
	}

	return metrics.R2Score(ds.Y(), yPred)
}

// CostHistory returns the cost-function value recorded at each iteration of
// the last fit. The slice is empty before fitting. Callers must not mutate
// the returned slice.
func (r *RidgeRegression) CostHistory() []float64 {
	return r.costHistory
}

// Theta returns the learned coefficients, or nil before fitting.
func (r *RidgeRegression) Theta() *mat.VecDense {
	return r.theta
}

// Theta0 returns the learned intercept.
func (r *RidgeRegression) Theta0() float64 {
	return r.theta0
}

// IsFitted returns whether the model has been fitted.
func (r *RidgeRegression) IsFitted() bool {
	return r.state.IsFitted()
}

// L2Penalty returns the configured L2 regularization strength.
func (r *RidgeRegression) L2Penalty() float64 { return r.l2Penalty }

// Alpha returns the configured learning rate.
func (r *RidgeRegression) Alpha() float64 { return r.alpha }

// MaxIter returns the configured iteration limit.
func (r *RidgeRegression) MaxIter() int { return r.maxIter }

// Tolerance returns the configured stopping tolerance.
func (r *RidgeRegression) Tolerance() float64 { return r.tol }

// AdaptiveAlpha returns whether the adaptive learning-rate policy is enabled.
func (r *RidgeRegression) AdaptiveAlpha() bool { return r.adaptiveAlpha }

// ParamNames returns the hyperparameter names accepted by SetParam.
func (r *RidgeRegression) ParamNames() []string {
	return []string{ParamL2Penalty, ParamAlpha, ParamMaxIter, ParamTolerance}
}

// SetParam sets the named hyperparameter. max_iter values are truncated to
// an integer.
//
// Returns:
//   - error: UnknownParameterError for a name the model does not expose,
//     ValidationError for an out-of-range value
func (r *RidgeRegression) SetParam(name string, value float64) error {
	switch name {
	case ParamL2Penalty:
		if value <= 0 {
			return sigoErrors.NewValidationError(ParamL2Penalty, "must be positive", value)
		}
		r.l2Penalty = value
	case ParamAlpha:
		if value <= 0 {
			return sigoErrors.NewValidationError(ParamAlpha, "must be positive", value)
		}
		r.alpha = value
	case ParamMaxIter:
		if value < 1 {
			return sigoErrors.NewValidationError(ParamMaxIter, "must be a positive integer", value)
		}
		r.maxIter = int(value)
	case ParamTolerance:
		if value <= 0 {
			return sigoErrors.NewValidationError(ParamTolerance, "must be positive", value)
		}
		r.tol = value
	default:
		return sigoErrors.NewUnknownParameterError("RidgeRegression", name)
	}
	return nil
}

// Clone returns a fresh, unfitted model carrying the same hyperparameters.
// Learned parameters and cost history are not copied.
func (r *RidgeRegression) Clone() model.Tunable {
	clone := &RidgeRegression{
		state:         model.NewStateManager(),
		l2Penalty:     r.l2Penalty,
		alpha:         r.alpha,
		maxIter:       r.maxIter,
		tol:           r.tol,
		adaptiveAlpha: r.adaptiveAlpha,
		logger:        r.logger,
	}
	return clone
}
