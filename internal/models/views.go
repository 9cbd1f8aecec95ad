package models

// Options lists the selectable values of every picker, in first-seen order
type Options struct {
	Clusters    []int    `json:"clusters"`
	Tournaments []string `json:"tournaments"`
	Teams       []string `json:"teams"`
	Features    []string `json:"features"`
}

// OverallView backs the cluster tab for one cluster/tournament pair
type OverallView struct {
	Cluster     int         `json:"cluster"`
	Tournament  string      `json:"tournament"`
	PlayerCount int         `json:"player_count"`
	Players     Table       `json:"players"`
	Mean        *Aggregates `json:"mean"`
	Median      *Aggregates `json:"median"`
}

// ScatterPoint is one player on a scatter plot
type ScatterPoint struct {
	Player     string `json:"player"`
	Team       string `json:"team"`
	Tournament string `json:"tournament"`
	X          Float  `json:"x"`
	Y          Float  `json:"y"`
}

// ScatterGroup is the set of points sharing one hue value
type ScatterGroup struct {
	Hue    string         `json:"hue"`
	Points []ScatterPoint `json:"points"`
}

type ScatterPlot struct {
	X      string         `json:"x"`
	Y      string         `json:"y"`
	Hue    string         `json:"hue"`
	Groups []ScatterGroup `json:"groups"`
}

type HistogramBin struct {
	Lower Float `json:"lower"`
	Upper Float `json:"upper"`
	Count int   `json:"count"`
}

// Histogram is an equal-width binning of one feature. Missing counts empty
// cells, NonFinite counts infinite values left out of the bins.
type Histogram struct {
	Feature   string         `json:"feature"`
	Total     int            `json:"total"`
	Missing   int            `json:"missing"`
	NonFinite int            `json:"non_finite"`
	Bins      []HistogramBin `json:"bins"`
}

type LinePoint struct {
	Tournament string `json:"tournament"`
	Value      Float  `json:"value"`
}

// LineSeries is one player's metric across tournaments
type LineSeries struct {
	Player string      `json:"player"`
	Metric string      `json:"metric"`
	Points []LinePoint `json:"points"`
}

type ClusterCount struct {
	Cluster int `json:"cluster"`
	Players int `json:"players"`
}

// TournamentSummary is the per-tournament overview
type TournamentSummary struct {
	Name        string         `json:"name"`
	PlayerCount int            `json:"player_count"`
	Teams       []string       `json:"teams"`
	Clusters    []ClusterCount `json:"clusters"`
	Mean        *Aggregates    `json:"mean,omitempty"`
}
