package preprocessing

import (
	"math"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/gopherml/tabprep/pkg/errors"
)

// imputeMissing fills missing entries column by column. Numeric columns
// receive the column mean rounded to the nearest integer; every other column
// receives its most frequent value. Integer columns count as numeric: the
// dataframe layer may keep a whole-numbered column typed as int even when it
// has missing entries, and a mean fill upcasts it to float.
func imputeMissing(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	for _, name := range df.Names() {
		col := df.Col(name)
		if !col.HasNaN() {
			continue
		}

		var filled series.Series
		switch col.Type() {
		case series.Float, series.Int:
			filled = fillMean(col)
		default:
			filled = fillMode(col)
		}

		df = df.Mutate(filled)
		if df.Err != nil {
			return df, errors.NewPipelineError("impute", df.Err)
		}
	}
	return df, nil
}

// fillMean replaces missing entries with the mean over the present values,
// rounded to the nearest integer (half away from zero). The result is always
// a float column.
func fillMean(col series.Series) series.Series {
	vals := col.Float()
	missing := col.IsNaN()

	var sum float64
	var n int
	for i, v := range vals {
		if missing[i] {
			continue
		}
		sum += v
		n++
	}

	var fill float64
	if n > 0 {
		fill = math.Round(sum / float64(n))
	}

	out := make([]float64, len(vals))
	for i, v := range vals {
		if missing[i] {
			out[i] = fill
		} else {
			out[i] = v
		}
	}
	return series.New(out, series.Float, col.Name)
}

// fillMode replaces missing entries with the most frequent present value.
// Ties break toward the value encountered first in column order, which keeps
// the imputation deterministic.
func fillMode(col series.Series) series.Series {
	recs := col.Records()
	missing := col.IsNaN()

	counts := make(map[string]int)
	var order []string
	for i, r := range recs {
		if missing[i] {
			continue
		}
		if _, seen := counts[r]; !seen {
			order = append(order, r)
		}
		counts[r]++
	}

	var mode string
	best := 0
	for _, v := range order {
		if counts[v] > best {
			best = counts[v]
			mode = v
		}
	}

	out := make([]string, len(recs))
	for i, r := range recs {
		if missing[i] {
			out[i] = mode
		} else {
			out[i] = r
		}
	}
	return series.New(out, col.Type(), col.Name)
}
