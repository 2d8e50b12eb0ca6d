package reduction

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/gopherml/tabprep/core/model"
	"github.com/gopherml/tabprep/dataset"
	"github.com/gopherml/tabprep/pkg/errors"
)

var _ model.Transformer = (*PCAReducer)(nil)

// PCAReducer is a fitted principal component projection. The decomposition
// itself comes from gonum's stat.PC; this type holds the centering means and
// the leading component vectors needed to project new data.
type PCAReducer struct {
	model.BaseEstimator

	// NComponents is the target dimension.
	NComponents int

	// Components is the d×n projection matrix of leading principal
	// component vectors.
	Components *mat.Dense

	// Mean holds the per-column means used for centering.
	Mean []float64

	// ExplainedVarianceRatio is the fraction of total variance captured by
	// each kept component, in decreasing order.
	ExplainedVarianceRatio []float64
}

// NewPCA creates an unfitted PCA reducer targeting n components.
func NewPCA(n int) *PCAReducer {
	return &PCAReducer{NComponents: n}
}

// Fit computes the principal components of X.
func (p *PCAReducer) Fit(X mat.Matrix) error {
	if err := validateComponents("PCA.Fit", X, p.NComponents); err != nil {
		return err
	}
	dense := mat.DenseCopyOf(X)
	_, cols := dense.Dims()

	var pc stat.PC
	if ok := pc.PrincipalComponents(dense, nil); !ok {
		return errors.NewPipelineError("reduction.PCA", errors.New("principal component factorization failed"))
	}

	var vecs mat.Dense
	pc.VectorsTo(&vecs)
	p.Components = mat.DenseCopyOf(vecs.Slice(0, cols, 0, p.NComponents))

	vars := pc.VarsTo(nil)
	total := floats.Sum(vars)
	p.ExplainedVarianceRatio = make([]float64, p.NComponents)
	if total > 0 {
		for i := range p.ExplainedVarianceRatio {
			p.ExplainedVarianceRatio[i] = vars[i] / total
		}
	}

	p.Mean = columnMeans(dense)
	p.SetFitted()
	return nil
}

// Transform centers X with the fitted means and projects it onto the kept
// components.
func (p *PCAReducer) Transform(X mat.Matrix) (mat.Matrix, error) {
	if !p.IsFitted() {
		return nil, errors.NewNotFittedError("PCA", "Transform")
	}

	rows, cols := X.Dims()
	if cols != len(p.Mean) {
		return nil, errors.NewDimensionError("PCA.Transform", len(p.Mean), cols, 1)
	}

	centered := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			centered.Set(i, j, X.At(i, j)-p.Mean[j])
		}
	}

	var projected mat.Dense
	projected.Mul(centered, p.Components)
	return &projected, nil
}

// FitTransform fits on X and returns the projected X.
func (p *PCAReducer) FitTransform(X mat.Matrix) (mat.Matrix, error) {
	if err := p.Fit(X); err != nil {
		return nil, err
	}
	return p.Transform(X)
}

// PCA projects the cleaned result tuple down to n features using a
// variance-maximizing linear projection.
func PCA(r *dataset.Result, n int) (*dataset.Result, error) {
	reducer := NewPCA(n)
	projected, err := reducer.FitTransform(r.X)
	if err != nil {
		return nil, err
	}
	return &dataset.Result{
		X:     mat.DenseCopyOf(projected),
		Y:     r.Y,
		Names: FeatureNames(n),
	}, nil
}

func columnMeans(X *mat.Dense) []float64 {
	rows, cols := X.Dims()
	means := make([]float64, cols)
	for j := 0; j < cols; j++ {
		var sum float64
		for i := 0; i < rows; i++ {
			sum += X.At(i, j)
		}
		means[j] = sum / float64(rows)
	}
	return means
}
