package logic

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vctstats/cluster-dashboard/internal/inference"
	"github.com/vctstats/cluster-dashboard/internal/metrics"
	"github.com/vctstats/cluster-dashboard/internal/models"
)

type predictionService struct {
	predictor inference.Predictor
	logger    *zap.SugaredLogger
	now       func() time.Time
}

func NewPredictionService(predictor inference.Predictor, logger *zap.Logger) PredictionService {
	return &predictionService{predictor: predictor, logger: logger.Sugar(), now: time.Now}
}

// Predict classifies one player's stats. There is no retry; a failure is
// returned to the caller, who may submit again.
func (s *predictionService) Predict(ctx context.Context, req models.PredictionRequest) (*models.ClusterPrediction, error) {
	id := uuid.New().String()

	label, err := s.predictor.Predict(ctx, inference.FeaturesFromRequest(req))
	if err != nil {
		metrics.PredictionErrors.Inc()
		s.logger.Warnw("Prediction failed", "prediction_id", id, "error", err)
		return nil, err
	}

	metrics.Predictions.WithLabelValues(label.String()).Inc()
	s.logger.Infow("Cluster predicted",
		"prediction_id", id,
		"cluster", label,
		"acs", req.AverageCombatScore,
		"kd", req.KillsDeaths,
		"adr", req.AverageDamagePerRound,
	)

	return &models.ClusterPrediction{
		PredictionID: id,
		Cluster:      label,
		Input:        req,
		PredictedAt:  s.now().UTC(),
	}, nil
}
