package preprocessing

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/gopherml/tabprep/pkg/errors"
)

func TestStandardScalerFitTransform(t *testing.T) {
	X := mat.NewDense(4, 2, []float64{
		1.0, 10.0,
		2.0, 20.0,
		3.0, 30.0,
		4.0, 40.0,
	})

	scaler := NewStandardScaler()
	scaled, err := scaler.FitTransform(X)
	if err != nil {
		t.Fatalf("FitTransform() error = %v", err)
	}

	rows, cols := scaled.Dims()
	if rows != 4 || cols != 2 {
		t.Fatalf("dims = %dx%d, want 4x2", rows, cols)
	}

	// Each column must come out with mean ~0 and std ~1.
	for j := 0; j < cols; j++ {
		var sum float64
		for i := 0; i < rows; i++ {
			sum += scaled.At(i, j)
		}
		mean := sum / float64(rows)
		if math.Abs(mean) > 1e-10 {
			t.Errorf("column %d mean = %v, want 0", j, mean)
		}

		var sumSquares float64
		for i := 0; i < rows; i++ {
			sumSquares += scaled.At(i, j) * scaled.At(i, j)
		}
		std := math.Sqrt(sumSquares / float64(rows))
		if math.Abs(std-1) > 1e-10 {
			t.Errorf("column %d std = %v, want 1", j, std)
		}
	}
}

func TestStandardScalerRoundTrip(t *testing.T) {
	X := mat.NewDense(3, 2, []float64{
		5.0, -1.0,
		7.0, 0.0,
		9.0, 4.0,
	})

	scaler := NewStandardScaler()
	scaled, err := scaler.FitTransform(X)
	if err != nil {
		t.Fatalf("FitTransform() error = %v", err)
	}
	back, err := scaler.InverseTransform(scaled)
	if err != nil {
		t.Fatalf("InverseTransform() error = %v", err)
	}

	for i := 0; i < 3; i++ {
		for j := 0; j < 2; j++ {
			if math.Abs(back.At(i, j)-X.At(i, j)) > 1e-10 {
				t.Errorf("round trip [%d][%d] = %v, want %v", i, j, back.At(i, j), X.At(i, j))
			}
		}
	}
}

func TestStandardScalerEmptyData(t *testing.T) {
	err := NewStandardScaler().Fit(&mat.Dense{})
	if err == nil {
		t.Fatal("Fit() on empty matrix = nil error, want ErrEmptyData")
	}
	if !errors.Is(err, errors.ErrEmptyData) {
		t.Errorf("error %v does not wrap ErrEmptyData", err)
	}
}

func TestStandardScalerNotFitted(t *testing.T) {
	scaler := NewStandardScaler()
	_, err := scaler.Transform(mat.NewDense(1, 1, []float64{1}))
	if err == nil {
		t.Fatal("Transform() on unfitted scaler = nil error, want NotFittedError")
	}
	var notFitted *errors.NotFittedError
	if !errors.As(err, &notFitted) {
		t.Errorf("error %v is not a NotFittedError", err)
	}
}

func TestStandardScalerDimensionMismatch(t *testing.T) {
	scaler := NewStandardScaler()
	if err := scaler.Fit(mat.NewDense(2, 3, nil)); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}

	_, err := scaler.Transform(mat.NewDense(2, 2, nil))
	if err == nil {
		t.Fatal("Transform() with wrong width = nil error, want DimensionError")
	}
	var dim *errors.DimensionError
	if !errors.As(err, &dim) {
		t.Errorf("error %v is not a DimensionError", err)
	}
}
