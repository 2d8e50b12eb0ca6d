// Package preprocessing cleans loaded tabular datasets: it drops irrelevant
// columns, strips stray substrings from text fields, imputes missing values,
// one-hot encodes categorical columns and splits the frame into a feature
// matrix and a label vector.
package preprocessing

import (
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"gonum.org/v1/gonum/mat"

	"github.com/gopherml/tabprep/dataset"
	"github.com/gopherml/tabprep/pkg/errors"
)

// Config collects the cleaning parameters for a single dataset.
type Config struct {
	// MissingValues are the tokens interpreted as missing during load,
	// for example "NaN", "na", "?" or "--".
	MissingValues []string

	// IrrelevantColumns are dropped before any other transformation,
	// for example a patient id column.
	IrrelevantColumns []string

	// StripChars are literal substrings removed from every value of every
	// text column, typically separators like "\t" or " ".
	StripChars []string

	// CategoricalColumns are one-hot encoded with the first indicator
	// dropped, leaving k-1 indicators for k categories.
	CategoricalColumns []string

	// Header supplies column names for datasets without a header row.
	// Ignored when the dataset already has one.
	Header []string
}

// Clean loads the file at path and runs the full cleaning pipeline on it.
//
// The stages run in a fixed order: load with missing-value sentinels, header
// resolution, irrelevant-column drop, substring strip, imputation, categorical
// encoding, and the feature/label split. The last remaining column becomes the
// label; note that encoding appends indicator columns at the end of the frame,
// so encoding the label column makes its last indicator the label.
//
// Row count is never changed by any stage.
func Clean(path string, cfg Config) (*dataset.Result, error) {
	df, err := dataset.Load(path, cfg.MissingValues, cfg.Header)
	if err != nil {
		return nil, err
	}

	for _, name := range cfg.IrrelevantColumns {
		df = df.Drop(name)
		if df.Err != nil {
			return nil, errors.NewPipelineError("drop", df.Err)
		}
	}

	if df, err = stripSubstrings(df, cfg.StripChars); err != nil {
		return nil, err
	}
	if df, err = imputeMissing(df); err != nil {
		return nil, err
	}
	if df, err = encodeCategoricals(df, cfg.CategoricalColumns); err != nil {
		return nil, err
	}
	return split(df)
}

// stripSubstrings removes every token from every value of every text column.
// Tokens are literal substrings, not regular expressions. Missing entries are
// left missing.
func stripSubstrings(df dataframe.DataFrame, tokens []string) (dataframe.DataFrame, error) {
	if len(tokens) == 0 {
		return df, nil
	}
	for _, name := range df.Names() {
		col := df.Col(name)
		if col.Type() != series.String {
			continue
		}
		recs := col.Records()
		missing := col.IsNaN()
		for i := range recs {
			if missing[i] {
				continue
			}
			for _, tok := range tokens {
				recs[i] = strings.ReplaceAll(recs[i], tok, "")
			}
		}
		df = df.Mutate(series.New(recs, series.String, name))
		if df.Err != nil {
			return df, errors.NewPipelineError("strip", df.Err)
		}
	}
	return df, nil
}

// split separates the last column off as the label vector and converts the
// remaining columns into a dense feature matrix.
func split(df dataframe.DataFrame) (*dataset.Result, error) {
	names := df.Names()
	if len(names) < 2 {
		return nil, errors.NewValueError("preprocessing.Clean", "need at least one feature column besides the label")
	}

	labelName := names[len(names)-1]
	label := df.Col(labelName).Copy()

	features := df.Drop(labelName)
	if features.Err != nil {
		return nil, errors.NewPipelineError("split", features.Err)
	}

	rows, cols := features.Nrow(), features.Ncol()
	X := mat.NewDense(rows, cols, nil)
	for j, name := range features.Names() {
		vals := features.Col(name).Float()
		for i, v := range vals {
			X.Set(i, j, v)
		}
	}

	return &dataset.Result{X: X, Y: label, Names: names}, nil
}
