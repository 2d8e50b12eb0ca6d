// Package dataset loads delimited tabular files and defines the cleaned
// result tuple passed between the pipeline stages.
package dataset

import (
	"github.com/go-gota/gota/series"
	"gonum.org/v1/gonum/mat"
)

// Result is the cleaned dataset tuple: a numeric feature matrix, the label
// column with its original values, and the column names in pre-split order.
// The last name always refers to the label column, so X has len(Names)-1
// columns and as many rows as Y has elements.
type Result struct {
	// X is the feature matrix, one row per sample.
	X *mat.Dense

	// Y is the label column. Its series type is whatever the source column
	// held after cleaning, so string labels stay strings.
	Y series.Series

	// Names holds the column names prior to the feature/label split.
	Names []string
}

// NumRows returns the number of samples.
func (r *Result) NumRows() int {
	rows, _ := r.X.Dims()
	return rows
}

// NumFeatures returns the number of feature columns, label excluded.
func (r *Result) NumFeatures() int {
	_, cols := r.X.Dims()
	return cols
}
