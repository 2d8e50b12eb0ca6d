// Package tabprep prepares small and medium tabular datasets for model
// training.
//
// The library is a short, linear pipeline of dataframe transformations:
// loading a delimited file with caller-defined missing-value sentinels,
// resolving or assigning the header, dropping irrelevant columns, stripping
// stray substrings from text fields, imputing missing values (column mean for
// numeric columns, most frequent value otherwise), one-hot encoding
// categorical columns with the first indicator dropped, and finally splitting
// the frame into a numeric feature matrix and a label vector.
//
// The cleaned tuple can then be projected to a lower dimension with one of
// two external algorithms exposed in the reduction package: PCA (gonum) or
// t-SNE (go-tsne).
//
// Quick start:
//
//	cleaned, err := preprocessing.Clean("kidney_disease.csv", preprocessing.Config{
//		MissingValues:      []string{"NaN", "nan", "\t?"},
//		IrrelevantColumns:  []string{"id"},
//		StripChars:         []string{"\t", " "},
//		CategoricalColumns: []string{"htn", "dm", "classification"},
//	})
//	if err != nil {
//		var noHeader *errors.NoHeaderError
//		if errors.As(err, &noHeader) {
//			// retry with an explicit header
//		}
//		return err
//	}
//
//	reduced, err := reduction.PCA(cleaned, 2)
//
// Everything runs synchronously on function-local data; there is no shared
// state between calls and no persistence.
package tabprep
