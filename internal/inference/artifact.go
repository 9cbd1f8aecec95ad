package inference

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"

	"github.com/vctstats/cluster-dashboard/internal/models"
)

// Artifact kinds
const (
	KindCentroid = "centroid"
	KindTree     = "tree"
)

// Artifact is the on-disk form of a trained model
type Artifact struct {
	Kind         string         `json:"kind"`
	FeatureNames []string       `json:"feature_names"`
	Labels       []models.Label `json:"labels,omitempty"`
	Scaler       *Scaler        `json:"scaler,omitempty"`
	Centroids    [][]float64    `json:"centroids,omitempty"`
	Nodes        []TreeNode     `json:"nodes,omitempty"`
}

// Scaler standardizes inputs as (x - mean) / scale before prediction
type Scaler struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

// TreeNode is one node of a flattened binary decision tree.
// Samples with value <= Threshold go left.
type TreeNode struct {
	FeatureIdx int          `json:"feature_idx"`
	Threshold  float64      `json:"threshold"`
	LeftChild  int          `json:"left_child"`
	RightChild int          `json:"right_child"`
	ClassLabel models.Label `json:"class_label"`
	IsLeaf     bool         `json:"is_leaf"`
}

// LoadModel reads and validates a model artifact from path
func LoadModel(path string) (Model, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrModelNotFound, path)
		}
		return nil, fmt.Errorf("read model %s: %w", path, err)
	}
	return ParseModel(payload)
}

// ParseModel decodes an artifact and builds the model it describes
func ParseModel(payload []byte) (Model, error) {
	var a Artifact
	if err := json.Unmarshal(payload, &a); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidModel, err)
	}
	return a.Build()
}

// Build validates the artifact and returns a ready model
func (a *Artifact) Build() (Model, error) {
	n := len(a.FeatureNames)
	if n == 0 {
		return nil, fmt.Errorf("%w: no feature names", ErrInvalidModel)
	}
	if a.Scaler != nil {
		if len(a.Scaler.Mean) != n || len(a.Scaler.Scale) != n {
			return nil, fmt.Errorf("%w: scaler has %d/%d values for %d features",
				ErrInvalidModel, len(a.Scaler.Mean), len(a.Scaler.Scale), n)
		}
	}

	switch a.Kind {
	case KindCentroid:
		return a.buildCentroid()
	case KindTree:
		return a.buildTree()
	default:
		return nil, fmt.Errorf("%w: unsupported kind %q", ErrInvalidModel, a.Kind)
	}
}

func (a *Artifact) buildCentroid() (Model, error) {
	if len(a.Centroids) == 0 {
		return nil, fmt.Errorf("%w: no centroids", ErrInvalidModel)
	}
	for i, c := range a.Centroids {
		if len(c) != len(a.FeatureNames) {
			return nil, fmt.Errorf("%w: centroid %d has %d values, want %d", ErrInvalidModel, i, len(c), len(a.FeatureNames))
		}
	}

	labels := a.Labels
	if len(labels) == 0 {
		labels = make([]models.Label, len(a.Centroids))
		for i := range labels {
			labels[i] = models.Label(fmt.Sprint(i))
		}
	}
	if len(labels) != len(a.Centroids) {
		return nil, fmt.Errorf("%w: %d labels for %d centroids", ErrInvalidModel, len(labels), len(a.Centroids))
	}

	return &CentroidModel{
		names:     a.FeatureNames,
		scaler:    a.Scaler,
		centroids: a.Centroids,
		labels:    labels,
	}, nil
}

func (a *Artifact) buildTree() (Model, error) {
	if len(a.Nodes) == 0 {
		return nil, fmt.Errorf("%w: empty tree", ErrInvalidModel)
	}
	for i, node := range a.Nodes {
		if node.IsLeaf {
			if node.ClassLabel == "" {
				return nil, fmt.Errorf("%w: leaf %d has no class label", ErrInvalidModel, i)
			}
			continue
		}
		if node.FeatureIdx < 0 || node.FeatureIdx >= len(a.FeatureNames) {
			return nil, fmt.Errorf("%w: node %d splits on feature %d", ErrInvalidModel, i, node.FeatureIdx)
		}
		// children must point forward, which also rules out cycles
		if node.LeftChild <= i || node.LeftChild >= len(a.Nodes) || node.RightChild <= i || node.RightChild >= len(a.Nodes) {
			return nil, fmt.Errorf("%w: node %d has invalid children", ErrInvalidModel, i)
		}
	}
	return &TreeModel{names: a.FeatureNames, scaler: a.Scaler, nodes: a.Nodes}, nil
}

func (s *Scaler) transform(values []float64) []float64 {
	if s == nil {
		return values
	}
	out := make([]float64, len(values))
	for i, v := range values {
		scale := s.Scale[i]
		if scale == 0 {
			scale = 1
		}
		out[i] = (v - s.Mean[i]) / scale
	}
	return out
}

// CentroidModel assigns the label of the nearest cluster centre
type CentroidModel struct {
	names     []string
	scaler    *Scaler
	centroids [][]float64
	labels    []models.Label
}

func (m *CentroidModel) FeatureNames() []string { return m.names }

func (m *CentroidModel) Predict(ctx context.Context, v FeatureVector) (models.Label, error) {
	if !sameShape(m.names, v) {
		return "", ErrShapeMismatch
	}
	x := m.scaler.transform(v.Values)

	best := -1
	bestDist := math.Inf(1)
	for i, c := range m.centroids {
		var d float64
		for j := range c {
			diff := x[j] - c[j]
			d += diff * diff
		}
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return "", fmt.Errorf("%w: no finite distance to any centroid", ErrInvalidModel)
	}
	return m.labels[best], nil
}

// TreeModel walks a decision tree from the root
type TreeModel struct {
	names  []string
	scaler *Scaler
	nodes  []TreeNode
}

func (m *TreeModel) FeatureNames() []string { return m.names }

func (m *TreeModel) Predict(ctx context.Context, v FeatureVector) (models.Label, error) {
	if !sameShape(m.names, v) {
		return "", ErrShapeMismatch
	}
	x := m.scaler.transform(v.Values)

	idx := 0
	for {
		node := m.nodes[idx]
		if node.IsLeaf {
			return node.ClassLabel, nil
		}
		if x[node.FeatureIdx] <= node.Threshold {
			idx = node.LeftChild
		} else {
			idx = node.RightChild
		}
	}
}
