package modelselection

import (
	"math/rand/v2"

	"github.com/sigo-ml/sigo/dataset"
	sigoErrors "github.com/sigo-ml/sigo/pkg/errors"
)

// Splitter produces a random train/test partition of a dataset. Splits must
// be deterministic given the same seed, which is what makes recorded
// cross-validation fold seeds reproducible.
type Splitter interface {
	Split(ds *dataset.Dataset, testSize float64, seed int64) (train, test *dataset.Dataset, err error)
}

// ShuffleSplit is the default Splitter. It draws a seeded permutation of the
// example indices and assigns the first floor(testSize*m) permuted rows to
// the test partition and the rest to the training partition.
type ShuffleSplit struct{}

// Split partitions the dataset into train and test subsets.
//
// Parameters:
//   - ds: the dataset to partition
//   - testSize: fraction of examples assigned to the test partition,
//     in (0, 1)
//   - seed: seed for the permutation; equal seeds yield equal splits
//
// Returns:
//   - train, test: independent copies of the selected rows
//   - error: ValidationError if testSize is out of range, ValueError if
//     either partition would be empty
func (ShuffleSplit) Split(ds *dataset.Dataset, testSize float64, seed int64) (*dataset.Dataset, *dataset.Dataset, error) {
	if testSize <= 0 || testSize >= 1 {
		return nil, nil, sigoErrors.NewValidationError("test_size", "must be in (0, 1)", testSize)
	}

	m, _ := ds.Shape()
	nTest := int(float64(m) * testSize)
	if nTest == 0 || nTest == m {
		return nil, nil, sigoErrors.NewValueError("ShuffleSplit.Split", "partition would leave an empty train or test set")
	}

	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
	perm := rng.Perm(m)

	test, err := ds.Subset(perm[:nTest])
	if err != nil {
		return nil, nil, err
	}
	train, err := ds.Subset(perm[nTest:])
	if err != nil {
		return nil, nil, err
	}
	return train, test, nil
}
