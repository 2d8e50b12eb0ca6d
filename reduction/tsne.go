package reduction

import (
	"github.com/danaugrs/go-tsne/tsne"
	"gonum.org/v1/gonum/mat"

	"github.com/gopherml/tabprep/dataset"
	"github.com/gopherml/tabprep/pkg/errors"
)

// TSNEOptions controls the embedding run.
type TSNEOptions struct {
	// Perplexity balances local and global structure. Should stay well
	// below the row count.
	Perplexity float64

	// LearningRate is the gradient descent step size.
	LearningRate float64

	// MaxIterations bounds the optimization.
	MaxIterations int

	// Verbose makes the underlying library print per-iteration progress.
	Verbose bool
}

// DefaultTSNEOptions returns the defaults: perplexity 30, learning rate 200,
// 1000 iterations.
func DefaultTSNEOptions() TSNEOptions {
	return TSNEOptions{
		Perplexity:    30,
		LearningRate:  200,
		MaxIterations: 1000,
	}
}

// TSNE embeds the cleaned result tuple into n dimensions with t-SNE under
// the default options.
//
// The embedding is initialized randomly by the underlying library, which
// exposes no seed parameter, so results differ between runs. The projection
// is also markedly slower than PCA for larger row counts.
func TSNE(r *dataset.Result, n int) (*dataset.Result, error) {
	return TSNEWith(r, n, DefaultTSNEOptions())
}

// TSNEWith embeds the cleaned result tuple into n dimensions with explicit
// options. Panics raised inside the embedding routine are recovered and
// returned as errors.
func TSNEWith(r *dataset.Result, n int, opts TSNEOptions) (*dataset.Result, error) {
	if err := validateComponents("TSNE", r.X, n); err != nil {
		return nil, err
	}

	var embedded *mat.Dense
	err := errors.SafeExecute("reduction.TSNE", func() error {
		t := tsne.NewTSNE(n, opts.Perplexity, opts.LearningRate, opts.MaxIterations, opts.Verbose)
		// The callback's return value asks the library to stop early.
		stopEarly := func(iter int, divergence float64, embedding mat.Matrix) bool { return false }
		embedded = mat.DenseCopyOf(t.EmbedData(r.X, stopEarly))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dataset.Result{
		X:     embedded,
		Y:     r.Y,
		Names: FeatureNames(n),
	}, nil
}
