// Package seed implements data-driven initializers for instar weights beyond the
// one exemplar per unit seeding done by the instar trainer itself.
package seed

import "github.com/cdipaolo/goml/cluster"
import "github.com/pkg/errors"
import "go.uber.org/zap"

import "github.com/neurlang/counterprop/datasets"
import "github.com/neurlang/counterprop/net/cpn"
import "github.com/neurlang/counterprop/vector"

// ErrTooFewExemplars is returned when the corpus has fewer exemplars than instar units.
var ErrTooFewExemplars = errors.New("fewer exemplars than instar units")

// refineLimit bounds the mean refinement should floating point rounding make
// assignments oscillate.
const refineLimit = 1000

// KMeans clusters the corpus inputs into InstarCount clusters and writes centroid i
// into weight column i. The corpus may be larger than the number of units. Train the
// network afterwards without the trainer's own seeding. Weights are left untouched on
// error.
//
// goml picks the starting centroids; the final centroids are the means of the
// corpus inputs assigned to them, refined until no assignment changes.
func KMeans(net *cpn.Network, corpus datasets.Corpus, maxIterations int, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	var weights = net.Weights()
	if corpus.Len() < weights.Cols() {
		return errors.Wrapf(ErrTooFewExemplars, "%d exemplars for %d instar units", corpus.Len(), weights.Cols())
	}
	var inputs = datasets.Inputs(corpus)
	var set = make([][]float64, len(inputs))
	for i, input := range inputs {
		if err := weights.CheckInput(input); err != nil {
			return errors.Wrapf(err, "exemplar %d", i)
		}
		// goml rewrites the rows it picks as centroids, hand it copies
		set[i] = append([]float64(nil), input...)
	}

	model := cluster.NewKMeans(weights.Cols(), maxIterations, set)
	stdlog, err := zap.NewStdLogAt(log.Named("kmeans"), zap.DebugLevel)
	if err != nil {
		return err
	}
	model.Output = stdlog.Writer()
	if err := model.Learn(); err != nil {
		return errors.Wrap(err, "kmeans")
	}
	if len(model.Centroids) != weights.Cols() {
		return errors.Errorf("kmeans produced %d centroids for %d instar units", len(model.Centroids), weights.Cols())
	}
	var centroids = make([][]float64, len(model.Centroids))
	for i, c := range model.Centroids {
		if err := weights.CheckInput(c); err != nil {
			return errors.Wrapf(err, "centroid %d", i)
		}
		centroids[i] = append([]float64(nil), c...)
	}

	rounds := refine(centroids, inputs)

	for i, c := range centroids {
		if err := weights.SetColumn(i, c); err != nil {
			return err
		}
	}
	log.Info("instar weights seeded by kmeans",
		zap.Int("units", weights.Cols()),
		zap.Int("exemplars", corpus.Len()),
		zap.Int("refinements", rounds))
	return nil
}

// refine runs Lloyd iterations over inputs, updating centroids in place, until no
// input changes cluster. A centroid which attracts no input keeps its position.
// It returns the number of rounds run.
func refine(centroids, inputs [][]float64) (rounds int) {
	var assigned = make([]int, len(inputs))
	for i := range assigned {
		assigned[i] = -1
	}
	var dist = make([]float64, len(centroids))
	for rounds < refineLimit {
		rounds++
		changed := false
		for i, input := range inputs {
			for c, centroid := range centroids {
				dist[c] = -vector.Distance(input, centroid)
			}
			if nearest := vector.ArgMax(dist); nearest != assigned[i] {
				assigned[i] = nearest
				changed = true
			}
		}
		if !changed {
			return
		}
		for c, centroid := range centroids {
			var n int
			for i, input := range inputs {
				if assigned[i] != c {
					continue
				}
				if n == 0 {
					for j := range centroid {
						centroid[j] = 0
					}
				}
				n++
				for j, x := range input {
					centroid[j] += x
				}
			}
			for j := range centroid {
				if n > 0 {
					centroid[j] /= float64(n)
				}
			}
		}
	}
	return
}
