package visualize

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gota/gota/series"
	"gonum.org/v1/gonum/mat"

	"github.com/gopherml/tabprep/dataset"
	"github.com/gopherml/tabprep/pkg/errors"
)

func twoColumnResult() *dataset.Result {
	return &dataset.Result{
		X: mat.NewDense(4, 2, []float64{
			0.0, 1.0,
			1.0, 0.5,
			-1.0, -0.5,
			0.5, -1.0,
		}),
		Y:     series.New([]string{"yes", "no", "yes", "no"}, series.String, "label"),
		Names: []string{"feature_1", "feature_2"},
	}
}

func TestScatterWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scatter.png")

	if err := Scatter(twoColumnResult(), "test", path); err != nil {
		t.Fatalf("Scatter() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("output file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("output file is empty")
	}
}

func TestScatterRejectsWrongWidth(t *testing.T) {
	r := &dataset.Result{
		X:     mat.NewDense(2, 3, nil),
		Y:     series.New([]string{"a", "b"}, series.String, "label"),
		Names: []string{"f1", "f2", "f3"},
	}

	err := Scatter(r, "test", filepath.Join(t.TempDir(), "scatter.png"))
	if err == nil {
		t.Fatal("Scatter() on 3-column result = nil error, want DimensionError")
	}
	var dim *errors.DimensionError
	if !errors.As(err, &dim) {
		t.Errorf("error %v is not a DimensionError", err)
	}
}
