package reduction

import (
	"reflect"
	"testing"

	"github.com/gopherml/tabprep/pkg/errors"
)

// The embedding is randomly initialized by the underlying library, so these
// tests only assert the output contract, never coordinate values.

func TestTSNEShapeContract(t *testing.T) {
	in := randomResult(20, 4)

	got, err := TSNEWith(in, 2, TSNEOptions{
		Perplexity:    5,
		LearningRate:  200,
		MaxIterations: 50,
	})
	if err != nil {
		t.Fatalf("TSNEWith() error = %v", err)
	}

	rows, cols := got.X.Dims()
	if rows != 20 || cols != 2 {
		t.Errorf("X dims = %dx%d, want 20x2", rows, cols)
	}
	if want := []string{"feature_1", "feature_2"}; !reflect.DeepEqual(got.Names, want) {
		t.Errorf("Names = %v, want %v", got.Names, want)
	}
	if !reflect.DeepEqual(got.Y.Records(), in.Y.Records()) {
		t.Error("label vector changed; reduction must pass it through untouched")
	}
}

func TestTSNEValidation(t *testing.T) {
	in := randomResult(10, 3)

	for _, n := range []int{0, 4} {
		_, err := TSNE(in, n)
		if err == nil {
			t.Fatalf("TSNE(n=%d) = nil error, want ValidationError", n)
		}
		var validation *errors.ValidationError
		if !errors.As(err, &validation) {
			t.Errorf("error %v is not a ValidationError", err)
		}
	}
}

func TestDefaultTSNEOptions(t *testing.T) {
	opts := DefaultTSNEOptions()
	if opts.Perplexity != 30 || opts.LearningRate != 200 || opts.MaxIterations != 1000 {
		t.Errorf("DefaultTSNEOptions() = %+v, want perplexity 30, learning rate 200, 1000 iterations", opts)
	}
}
