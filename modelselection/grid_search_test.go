package modelselection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sigo-ml/sigo/linear"
	sigoErrors "github.com/sigo-ml/sigo/pkg/errors"
)

func TestParamGrid_NumCombinations(t *testing.T) {
	grid := ParamGrid{
		{Name: linear.ParamL2Penalty, Values: []float64{0.5, 1, 2}},
		{Name: linear.ParamAlpha, Values: []float64{0.001, 0.01}},
	}
	assert.Equal(t, 6, grid.NumCombinations())
	assert.Equal(t, 1, ParamGrid{}.NumCombinations())
}

func TestGridSearchCV_EnumerationOrder(t *testing.T) {
	ds := testDataset(t, 20)
	ridge := newTestRidge(t)

	grid := ParamGrid{
		{Name: linear.ParamL2Penalty, Values: []float64{0.5, 2}},
		{Name: linear.ParamAlpha, Values: []float64{0.001, 0.01}},
	}

	results, err := GridSearchCV(ridge, ds, grid, CVConfig{Folds: 2, RNG: seededRNG(5)})
	require.NoError(t, err)
	require.Len(t, results, 4)

	// The first range varies slowest.
	expected := []map[string]float64{
		{linear.ParamL2Penalty: 0.5, linear.ParamAlpha: 0.001},
		{linear.ParamL2Penalty: 0.5, linear.ParamAlpha: 0.01},
		{linear.ParamL2Penalty: 2, linear.ParamAlpha: 0.001},
		{linear.ParamL2Penalty: 2, linear.ParamAlpha: 0.01},
	}
	for i, want := range expected {
		assert.Equalf(t, want, results[i].Params, "trial %d", i)
	}
}

func TestGridSearchCV_EveryTrialHasScores(t *testing.T) {
	ds := testDataset(t, 20)
	ridge := newTestRidge(t)

	grid := ParamGrid{
		{Name: linear.ParamMaxIter, Values: []float64{10, 50}},
	}

	results, err := GridSearchCV(ridge, ds, grid, CVConfig{Folds: 3, RNG: seededRNG(9)})
	require.NoError(t, err)
	require.Len(t, results, 2)

	for i, tr := range results {
		require.NotNilf(t, tr.CV, "trial %d", i)
		assert.Lenf(t, tr.CV.TestScores, 3, "trial %d", i)
		assert.Lenf(t, tr.CV.Seeds, 3, "trial %d", i)
	}
}

func TestGridSearchCV_UnknownParameter(t *testing.T) {
	ds := testDataset(t, 20)
	ridge := newTestRidge(t)

	grid := ParamGrid{
		{Name: "learning_rate", Values: []float64{0.1}},
	}

	_, err := GridSearchCV(ridge, ds, grid, CVConfig{Folds: 2})
	var unknownErr *sigoErrors.UnknownParameterError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "RidgeRegression", unknownErr.ModelName)
	assert.Equal(t, "learning_rate", unknownErr.ParamName)

	// Validation runs before any fold, so the model was never fitted.
	assert.False(t, ridge.IsFitted())
}

func TestGridSearchCV_EmptyValueList(t *testing.T) {
	ds := testDataset(t, 20)
	ridge := newTestRidge(t)

	grid := ParamGrid{
		{Name: linear.ParamAlpha, Values: nil},
	}

	_, err := GridSearchCV(ridge, ds, grid, CVConfig{Folds: 2})
	var validationErr *sigoErrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, linear.ParamAlpha, validationErr.ParamName)
}

func TestTrialResults_Best(t *testing.T) {
	results := TrialResults{
		{CV: &CVResult{TestScores: []float64{0.5, 0.5}}},
		{CV: &CVResult{TestScores: []float64{0.9, 0.9}}},
		{CV: &CVResult{TestScores: []float64{0.7, 0.7}}},
	}
	assert.Equal(t, 1, results.Best())

	assert.Equal(t, -1, TrialResults{}.Best())

	// Negative scores do not confuse the selection.
	negative := TrialResults{
		{CV: &CVResult{TestScores: []float64{-3}}},
		{CV: &CVResult{TestScores: []float64{-1}}},
	}
	assert.Equal(t, 1, negative.Best())
}
