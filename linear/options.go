package linear

// Option is a configuration option for RidgeRegression.
type Option func(*RidgeRegression)

// WithL2Penalty sets the L2 regularization strength (lambda).
func WithL2Penalty(l2Penalty float64) Option {
	return func(r *RidgeRegression) {
		r.l2Penalty = l2Penalty
	}
}

// WithAlpha sets the learning rate.
func WithAlpha(alpha float64) Option {
	return func(r *RidgeRegression) {
		r.alpha = alpha
	}
}

// WithMaxIter sets the maximum number of gradient-descent iterations.
func WithMaxIter(maxIter int) Option {
	return func(r *RidgeRegression) {
		r.maxIter = maxIter
	}
}

// WithTolerance sets the stopping tolerance on the cost-function delta
// between consecutive iterations.
func WithTolerance(tol float64) Option {
	return func(r *RidgeRegression) {
		r.tol = tol
	}
}

// WithAdaptiveAlpha selects the adaptive learning-rate policy: instead of
// stopping early when the cost delta falls below the tolerance, the learning
// rate is halved and fitting continues to the iteration limit.
func WithAdaptiveAlpha(adaptive bool) Option {
	return func(r *RidgeRegression) {
		r.adaptiveAlpha = adaptive
	}
}
