// Package visualize renders cleaned or reduced datasets for quick inspection.
package visualize

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/gopherml/tabprep/dataset"
	"github.com/gopherml/tabprep/pkg/errors"
)

// Scatter saves a scatter plot of a two-column result to path, one color per
// distinct label value. It is intended for the output of a 2-component
// reduction; results with any other feature count are rejected.
func Scatter(r *dataset.Result, title, path string) error {
	if r.NumFeatures() != 2 {
		return errors.NewDimensionError("visualize.Scatter", 2, r.NumFeatures(), 1)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = r.Names[0]
	p.Y.Label.Text = r.Names[1]

	labels := r.Y.Records()
	groups := make(map[string]plotter.XYs)
	var order []string
	for i := 0; i < r.NumRows(); i++ {
		class := labels[i]
		if _, seen := groups[class]; !seen {
			order = append(order, class)
		}
		groups[class] = append(groups[class], plotter.XY{X: r.X.At(i, 0), Y: r.X.At(i, 1)})
	}

	for i, class := range order {
		s, err := plotter.NewScatter(groups[class])
		if err != nil {
			return errors.NewPipelineError("visualize", err)
		}
		s.GlyphStyle.Color = plotutil.Color(i)
		p.Add(s)
		p.Legend.Add(class, s)
	}

	if err := p.Save(6*vg.Inch, 6*vg.Inch, path); err != nil {
		return errors.NewPipelineError("visualize", err)
	}
	return nil
}
