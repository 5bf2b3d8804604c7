package dataset

import (
	"testing"

	"gonum.org/v1/gonum/mat"

	sigoErrors "github.com/sigo-ml/sigo/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		x       *mat.Dense
		y       *mat.VecDense
		wantErr bool
	}{
		{
			name:    "valid dataset",
			x:       mat.NewDense(3, 2, []float64{1, 2, 3, 4, 5, 6}),
			y:       mat.NewVecDense(3, []float64{1, 2, 3}),
			wantErr: false,
		},
		{
			name:    "label count mismatch",
			x:       mat.NewDense(3, 2, []float64{1, 2, 3, 4, 5, 6}),
			y:       mat.NewVecDense(2, []float64{1, 2}),
			wantErr: true,
		},
		{
			name:    "empty features",
			x:       &mat.Dense{},
			y:       &mat.VecDense{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, err := New(tt.x, tt.y)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && ds == nil {
				t.Fatal("New() returned nil dataset without error")
			}
		})
	}
}

func TestNew_EmptyDataSentinel(t *testing.T) {
	_, err := New(&mat.Dense{}, &mat.VecDense{})
	if !sigoErrors.Is(err, sigoErrors.ErrEmptyData) {
		t.Errorf("New() with empty data = %v, want ErrEmptyData", err)
	}
}

func TestDataset_Shape(t *testing.T) {
	ds, err := New(
		mat.NewDense(4, 3, nil),
		mat.NewVecDense(4, nil),
	)
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}

	nSamples, nFeatures := ds.Shape()
	if nSamples != 4 || nFeatures != 3 {
		t.Errorf("Shape() = (%d, %d), want (4, 3)", nSamples, nFeatures)
	}
}

func TestDataset_Subset(t *testing.T) {
	ds, err := New(
		mat.NewDense(4, 2, []float64{
			1, 10,
			2, 20,
			3, 30,
			4, 40,
		}),
		mat.NewVecDense(4, []float64{1, 2, 3, 4}),
	)
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}

	sub, err := ds.Subset([]int{2, 0})
	if err != nil {
		t.Fatalf("Subset() unexpected error: %v", err)
	}

	nSamples, nFeatures := sub.Shape()
	if nSamples != 2 || nFeatures != 2 {
		t.Fatalf("Subset() shape = (%d, %d), want (2, 2)", nSamples, nFeatures)
	}
	if got := sub.Label(0); got != 3 {
		t.Errorf("Subset() label(0) = %v, want 3", got)
	}
	if got := sub.Row(1); got[0] != 1 || got[1] != 10 {
		t.Errorf("Subset() row(1) = %v, want [1 10]", got)
	}

	// The subset owns its data: mutating it must not touch the parent.
	sub.X().Set(0, 0, 99)
	if ds.X().At(2, 0) == 99 {
		t.Error("Subset() shares storage with the parent dataset")
	}
}

func TestDataset_SubsetErrors(t *testing.T) {
	ds, err := New(
		mat.NewDense(2, 1, []float64{1, 2}),
		mat.NewVecDense(2, []float64{1, 2}),
	)
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}

	if _, err := ds.Subset(nil); err == nil {
		t.Error("Subset(nil) expected error, got nil")
	}

	_, err = ds.Subset([]int{5})
	if err == nil {
		t.Fatal("Subset() with out-of-range row expected error, got nil")
	}
	var valueErr *sigoErrors.ValueError
	if !sigoErrors.As(err, &valueErr) {
		t.Errorf("Subset() error = %T, want *ValueError", err)
	}
}
