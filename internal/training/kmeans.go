// Package training fits a centroid model artifact from a clustered dataset.
package training

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/packagewjx/kmeanspp"
	"github.com/pkg/errors"

	"github.com/vctstats/cluster-dashboard/internal/inference"
	"github.com/vctstats/cluster-dashboard/internal/logic"
	"github.com/vctstats/cluster-dashboard/internal/models"
)

const DefaultRounds = 30

type Options struct {
	Clusters int
	Rounds   int
	// Features defaults to the prediction inputs
	Features []string
}

// Result is a fitted artifact with the number of rows it was fitted on
type Result struct {
	Artifact *inference.Artifact
	Rows     int
}

// FitCentroids standardizes the feature columns, runs k-means++ and labels
// each centroid with the most common dataset cluster among its members.
// Rows with a missing feature value are skipped.
func FitCentroids(ds *models.Dataset, opts Options) (*Result, error) {
	features := opts.Features
	if len(features) == 0 {
		features = models.PredictionFeatureNames
	}
	rounds := opts.Rounds
	if rounds <= 0 {
		rounds = DefaultRounds
	}

	columns := make([][]float64, len(features))
	for i, name := range features {
		col, ok := ds.Schema.Column(name)
		if !ok || col.Kind != models.NumericColumn {
			return nil, fmt.Errorf("%w: %q is not a numeric column", logic.ErrUnknownColumn, name)
		}
		columns[i] = make([]float64, ds.Len())
		for r, rec := range ds.Records {
			columns[i][r] = rec.Metric(col)
		}
	}

	var rows []int
	for r := 0; r < ds.Len(); r++ {
		complete := true
		for i := range columns {
			if math.IsNaN(columns[i][r]) {
				complete = false
				break
			}
		}
		if complete {
			rows = append(rows, r)
		}
	}
	if opts.Clusters < 1 || opts.Clusters > len(rows) {
		return nil, fmt.Errorf("cannot fit %d clusters on %d complete rows", opts.Clusters, len(rows))
	}

	scaler := fitScaler(columns, rows)
	data := make([][]float32, len(rows))
	for j, r := range rows {
		point := make([]float32, len(features))
		for i := range features {
			point[i] = float32((columns[i][r] - scaler.Mean[i]) / scaler.Scale[i])
		}
		data[j] = point
	}

	centers, assigned := kmeanspp.KMeansPP(opts.Clusters, rounds, data)

	centroids := make([][]float64, len(centers))
	for c, center := range centers {
		centroids[c] = make([]float64, len(center))
		for i, v := range center {
			centroids[c][i] = float64(v)
		}
	}

	members := make([][]int, len(centers))
	for j, c := range assigned {
		if c >= 0 && c < len(members) {
			members[c] = append(members[c], rows[j])
		}
	}
	labels := make([]models.Label, len(centers))
	for c := range centers {
		labels[c] = majorityCluster(ds, members[c], c)
	}

	return &Result{
		Artifact: &inference.Artifact{
			Kind:         inference.KindCentroid,
			FeatureNames: append([]string(nil), features...),
			Labels:       labels,
			Scaler:       scaler,
			Centroids:    centroids,
		},
		Rows: len(rows),
	}, nil
}

// fitScaler returns per-column mean and population standard deviation
func fitScaler(columns [][]float64, rows []int) *inference.Scaler {
	s := &inference.Scaler{
		Mean:  make([]float64, len(columns)),
		Scale: make([]float64, len(columns)),
	}
	n := float64(len(rows))
	for i, col := range columns {
		var sum float64
		for _, r := range rows {
			sum += col[r]
		}
		mean := sum / n

		var sq float64
		for _, r := range rows {
			d := col[r] - mean
			sq += d * d
		}
		scale := math.Sqrt(sq / n)
		if scale == 0 {
			scale = 1
		}
		s.Mean[i] = mean
		s.Scale[i] = scale
	}
	return s
}

// majorityCluster picks the most frequent Cluster value of members; ties go
// to the smaller value and an empty centroid keeps its index
func majorityCluster(ds *models.Dataset, members []int, index int) models.Label {
	if len(members) == 0 {
		return models.Label(strconv.Itoa(index))
	}
	counts := map[int]int{}
	for _, r := range members {
		counts[ds.Records[r].Cluster]++
	}
	best, bestCount := 0, -1
	for cluster, n := range counts {
		if n > bestCount || (n == bestCount && cluster < best) {
			best, bestCount = cluster, n
		}
	}
	return models.Label(strconv.Itoa(best))
}

// WriteArtifact validates a and writes it as indented JSON
func WriteArtifact(path string, a *inference.Artifact) error {
	if _, err := a.Build(); err != nil {
		return errors.Wrap(err, "fitted artifact is not loadable")
	}
	payload, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode artifact")
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return errors.Wrapf(err, "write artifact %s", path)
	}
	return nil
}
