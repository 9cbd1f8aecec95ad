// Package inference loads the pretrained cluster model and runs single
// predictions against it.
package inference

import (
	"context"
	"errors"
	"math"

	"github.com/vctstats/cluster-dashboard/internal/models"
)

var (
	// ErrModelNotFound is returned when the model artifact does not exist
	ErrModelNotFound = errors.New("prediction model not found")
	// ErrInvalidModel is returned for artifacts that cannot be used
	ErrInvalidModel = errors.New("invalid prediction model")
	// ErrShapeMismatch is returned when the input vector does not match the
	// feature names the model was trained on
	ErrShapeMismatch = errors.New("feature vector does not match model")
)

// Model classifies one feature vector into a cluster label
type Model interface {
	FeatureNames() []string
	Predict(ctx context.Context, v FeatureVector) (models.Label, error)
}

// FeatureVector is an ordered list of named inputs
type FeatureVector struct {
	Names  []string
	Values []float64
}

// Features are the three inputs the cluster model accepts
type Features struct {
	CombatScore    float64
	KillsDeaths    float64
	DamagePerRound float64
}

// FeaturesFromRequest converts validated API input
func FeaturesFromRequest(req models.PredictionRequest) Features {
	return Features{
		CombatScore:    float64(req.AverageCombatScore),
		KillsDeaths:    req.KillsDeaths,
		DamagePerRound: float64(req.AverageDamagePerRound),
	}
}

// Vector returns the features in training order. K:D is rounded to one
// decimal, the resolution of the input control.
func (f Features) Vector() FeatureVector {
	return FeatureVector{
		Names: append([]string(nil), models.PredictionFeatureNames...),
		Values: []float64{
			f.CombatScore,
			math.Round(f.KillsDeaths*10) / 10,
			f.DamagePerRound,
		},
	}
}

func sameShape(names []string, v FeatureVector) bool {
	if len(names) != len(v.Names) || len(v.Names) != len(v.Values) {
		return false
	}
	for i := range names {
		if names[i] != v.Names[i] {
			return false
		}
	}
	return true
}
