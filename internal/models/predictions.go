package models

import "time"

// Prediction feature names, in the order the model was trained on
const (
	FeatureCombatScore    = "Average Combat Score"
	FeatureKillsDeaths    = "Kills:Deaths"
	FeatureDamagePerRound = "Average Damage Per Round"
)

// PredictionFeatureNames is the exact input shape of the cluster model
var PredictionFeatureNames = []string{FeatureCombatScore, FeatureKillsDeaths, FeatureDamagePerRound}

// ClusterPrediction is the answer to a predict request
type ClusterPrediction struct {
	PredictionID string            `json:"prediction_id"`
	Cluster      Label             `json:"cluster"`
	Input        PredictionRequest `json:"input"`
	PredictedAt  time.Time         `json:"predicted_at"`
}
