// Package reduction projects cleaned feature matrices to a lower dimension.
//
// Two algorithms are exposed side by side with the same contract: PCA, a
// variance-maximizing linear projection computed by gonum, and TSNE, a
// stochastic neighborhood-preserving embedding computed by go-tsne. Neither
// mutates its input; both return a new result tuple whose feature names are
// synthesized as "feature_1".."feature_n" and whose label vector is the input
// label vector unchanged.
package reduction

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/gopherml/tabprep/pkg/errors"
)

// FeatureNames synthesizes the names of n projected features.
func FeatureNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("feature_%d", i+1)
	}
	return names
}

// validateComponents checks the target dimension against the feature matrix.
func validateComponents(op string, X mat.Matrix, n int) error {
	rows, cols := X.Dims()
	if rows == 0 || cols == 0 {
		return errors.Wrap(errors.ErrEmptyData, op)
	}
	if n < 1 || n > cols {
		return errors.NewValidationError("n_components",
			fmt.Sprintf("must be between 1 and the feature count (%d)", cols), n)
	}
	return nil
}
