// Package sigo is a small machine-learning toolkit for Go providing
// trainable estimators and a hyperparameter-optimization layer built on top
// of them.
//
// The toolkit is organized into focused packages:
//
//   - dataset: feature/label container consumed by every other package
//   - linear: RidgeRegression, an L2-regularized linear model fitted by
//     gradient descent with convergence control and an optional adaptive
//     learning rate
//   - modelselection: k-fold cross-validation, exhaustive grid search and
//     reproducible randomized search over any model.Tunable estimator
//   - metrics: regression metrics (MSE, RMSE, MAE, R²) usable as external
//     scoring functions
//   - core/model: the estimator capability contracts and fitted-state
//     tracking
//
// Quick start:
//
//	X := mat.NewDense(4, 1, []float64{1, 2, 3, 4})
//	y := mat.NewVecDense(4, []float64{2, 4, 6, 8})
//	ds, _ := dataset.New(X, y)
//
//	ridge, _ := linear.NewRidgeRegression(linear.WithAlpha(0.01))
//	results, _ := modelselection.GridSearchCV(ridge, ds, modelselection.ParamGrid{
//	    {Name: linear.ParamL2Penalty, Values: []float64{0.1, 1, 10}},
//	    {Name: linear.ParamMaxIter, Values: []float64{1000, 2000}},
//	}, modelselection.CVConfig{Folds: 3})
//
// All errors are structured (see pkg/errors) and all operations log through
// the pluggable structured logger in pkg/log.
package sigo
