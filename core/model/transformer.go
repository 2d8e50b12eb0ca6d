package model

import "gonum.org/v1/gonum/mat"

// Transformer is the matrix-to-matrix transformation contract. Both the
// scaler and the fitted PCA reducer satisfy it.
type Transformer interface {
	// Fit learns the transformation parameters from X.
	Fit(X mat.Matrix) error

	// Transform applies the learned transformation to X.
	Transform(X mat.Matrix) (mat.Matrix, error)

	// FitTransform runs Fit followed by Transform on the same data.
	FitTransform(X mat.Matrix) (mat.Matrix, error)
}
