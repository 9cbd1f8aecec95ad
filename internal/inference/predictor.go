package inference

import (
	"context"
	"fmt"
	"strings"

	"github.com/vctstats/cluster-dashboard/internal/models"
)

// Predictor classifies one player's features with the provider's model
type Predictor interface {
	Predict(ctx context.Context, f Features) (models.Label, error)
}

type predictor struct {
	provider Provider
}

func NewPredictor(provider Provider) Predictor {
	return &predictor{provider: provider}
}

// Predict makes exactly one model call. The vector must carry the model's
// feature names in the model's order.
func (p *predictor) Predict(ctx context.Context, f Features) (models.Label, error) {
	model, err := p.provider.Model(ctx)
	if err != nil {
		return "", err
	}

	v := f.Vector()
	if !sameShape(model.FeatureNames(), v) {
		return "", fmt.Errorf("%w: model expects [%s], got [%s]", ErrShapeMismatch,
			strings.Join(model.FeatureNames(), ", "), strings.Join(v.Names, ", "))
	}

	label, err := model.Predict(ctx, v)
	if err != nil {
		return "", fmt.Errorf("model prediction failed: %w", err)
	}
	return label, nil
}
