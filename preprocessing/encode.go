package preprocessing

import (
	"sort"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/gopherml/tabprep/pkg/errors"
)

// encodeCategoricals expands each listed column into binary indicator columns
// named <column>_<value>, appended at the end of the frame, then drops the
// original column. The indicator for the lexically-first value is dropped as
// well, leaving k-1 indicators for k distinct values.
func encodeCategoricals(df dataframe.DataFrame, categorical []string) (dataframe.DataFrame, error) {
	for _, name := range categorical {
		col := df.Col(name)
		if col.Err != nil {
			return df, errors.NewPipelineError("encode", col.Err)
		}

		recs := col.Records()
		values := distinctSorted(recs)
		if len(values) > 0 {
			values = values[1:]
		}
		for _, value := range values {
			indicator := make([]int, len(recs))
			for i, r := range recs {
				if r == value {
					indicator[i] = 1
				}
			}
			df = df.Mutate(series.New(indicator, series.Int, name+"_"+value))
			if df.Err != nil {
				return df, errors.NewPipelineError("encode", df.Err)
			}
		}

		df = df.Drop(name)
		if df.Err != nil {
			return df, errors.NewPipelineError("encode", df.Err)
		}
	}
	return df, nil
}

func distinctSorted(recs []string) []string {
	seen := make(map[string]struct{}, len(recs))
	var values []string
	for _, r := range recs {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		values = append(values, r)
	}
	sort.Strings(values)
	return values
}
