package log

// Standard attribute keys for pipeline logging. Using these keys keeps log
// records filterable when several stages run in sequence.
const (
	// DatasetKey identifies the input file being processed.
	DatasetKey = "dataset.path"

	// RowsKey is the number of rows in the dataset or matrix.
	RowsKey = "data.rows"

	// ColumnsKey is the number of columns in the dataset or matrix.
	ColumnsKey = "data.columns"

	// StageKey names the pipeline stage producing the record.
	// Values: "load", "header", "drop", "strip", "impute", "encode", "split".
	StageKey = "pipeline.stage"

	// MethodKey names the dimensionality-reduction method.
	// Values: "pca", "tsne".
	MethodKey = "reduction.method"

	// ComponentsKey is the target dimension of a reduction.
	ComponentsKey = "reduction.components"

	// DurationMsKey records the execution time of a stage in milliseconds.
	DurationMsKey = "perf.duration_ms"
)
