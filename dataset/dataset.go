// Package dataset provides the feature/label container consumed by every
// estimator and by the model-selection layer.
//
// A Dataset pairs an immutable-shape feature matrix (rows = examples,
// columns = features) with a label vector of equal row count. Datasets are
// owned by the caller and passed by reference; estimators and splitters only
// read them.
package dataset

import (
	"gonum.org/v1/gonum/mat"

	sigoErrors "github.com/sigo-ml/sigo/pkg/errors"
)

// Dataset holds a feature matrix and the corresponding label vector.
type Dataset struct {
	x *mat.Dense
	y *mat.VecDense
}

// New creates a Dataset from a feature matrix and a label vector.
//
// Parameters:
//   - x: feature matrix of shape (n_samples, n_features)
//   - y: label vector of length n_samples
//
// Returns:
//   - *Dataset: the container
//   - error: ErrEmptyData if the feature matrix is empty, DimensionError if
//     the label count does not match the row count
func New(x *mat.Dense, y *mat.VecDense) (*Dataset, error) {
	r, c := x.Dims()
	if r == 0 || c == 0 {
		return nil, sigoErrors.Wrap(sigoErrors.ErrEmptyData, "dataset.New")
	}
	if y.Len() != r {
		return nil, sigoErrors.NewDimensionError("dataset.New", r, y.Len(), 0)
	}
	return &Dataset{x: x, y: y}, nil
}

// Shape returns the number of examples and the number of features.
func (d *Dataset) Shape() (nSamples, nFeatures int) {
	return d.x.Dims()
}

// X returns the feature matrix. Callers must not mutate it.
func (d *Dataset) X() *mat.Dense {
	return d.x
}

// Y returns the label vector. Callers must not mutate it.
func (d *Dataset) Y() *mat.VecDense {
	return d.y
}

// Row returns the feature values of example i as a newly allocated slice.
func (d *Dataset) Row(i int) []float64 {
	_, c := d.x.Dims()
	row := make([]float64, c)
	mat.Row(row, i, d.x)
	return row
}

// Label returns the label of example i.
func (d *Dataset) Label(i int) float64 {
	return d.y.AtVec(i)
}

// Subset returns a new Dataset containing the given rows, in order.
// The underlying data is copied, so the subset is independent of the parent.
func (d *Dataset) Subset(rows []int) (*Dataset, error) {
	if len(rows) == 0 {
		return nil, sigoErrors.NewValueError("Dataset.Subset", "empty row selection")
	}
	r, c := d.x.Dims()
	x := mat.NewDense(len(rows), c, nil)
	y := mat.NewVecDense(len(rows), nil)
	for i, row := range rows {
		if row < 0 || row >= r {
			return nil, sigoErrors.NewValueError("Dataset.Subset", "row index out of range")
		}
		x.SetRow(i, d.Row(row))
		y.SetVec(i, d.y.AtVec(row))
	}
	return &Dataset{x: x, y: y}, nil
}
