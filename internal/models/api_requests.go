package models

// PredictionRequest carries a new player's stats.
// Bounds follow the input controls: ACS and ADR are whole numbers in [0,500],
// K:D is in [0,5] with one decimal.
type PredictionRequest struct {
	AverageCombatScore    int     `json:"average_combat_score" validate:"gte=0,lte=500"`
	KillsDeaths           float64 `json:"kills_deaths" validate:"gte=0,lte=5"`
	AverageDamagePerRound int     `json:"average_damage_per_round" validate:"gte=0,lte=500"`
}

// FilterSelection is the set of discriminators of one view request.
// Empty fields are not applied.
type FilterSelection struct {
	Cluster    *int   `json:"cluster,omitempty"`
	Tournament string `json:"tournament,omitempty"`
	Team       string `json:"team,omitempty"`
	Player     string `json:"player,omitempty"`
	FeatureX   string `json:"x,omitempty"`
	FeatureY   string `json:"y,omitempty"`
	Feature    string `json:"feature,omitempty"`
	Metric     string `json:"metric,omitempty"`
}
