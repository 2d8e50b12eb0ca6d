package dataset

import (
	"bytes"
	"os"

	"github.com/go-gota/gota/dataframe"

	"github.com/gopherml/tabprep/pkg/errors"
)

// Load reads a comma-separated file into a dataframe, mapping every token in
// missingValues to a missing value.
//
// Header resolution follows the detector in HasHeader: a detected header is
// kept; otherwise the supplied header names are assigned; otherwise Load
// fails with a NoHeaderError. The file is read fully before parsing, so no
// handle outlives the call.
func Load(path string, missingValues, header []string) (dataframe.DataFrame, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return dataframe.DataFrame{}, errors.NewPipelineError("load", err)
	}

	df := readCSV(raw, missingValues, nil, true)
	if df.Err != nil {
		return df, errors.NewPipelineError("load", df.Err)
	}

	if HasHeader(df.Names()) {
		return df, nil
	}
	if len(header) == 0 {
		return dataframe.DataFrame{}, errors.NewNoHeaderError(path)
	}

	// The first row was data, so parse again without consuming it and with
	// the caller's column names.
	df = readCSV(raw, missingValues, header, false)
	if df.Err != nil {
		return df, errors.NewPipelineError("header", df.Err)
	}
	return df, nil
}

func readCSV(raw []byte, missingValues, names []string, hasHeader bool) dataframe.DataFrame {
	opts := []dataframe.LoadOption{
		dataframe.HasHeader(hasHeader),
		dataframe.DetectTypes(true),
	}
	if len(missingValues) > 0 {
		opts = append(opts, dataframe.NaNValues(missingValues))
	}
	if len(names) > 0 {
		opts = append(opts, dataframe.Names(names...))
	}
	return dataframe.ReadCSV(bytes.NewReader(raw), opts...)
}
