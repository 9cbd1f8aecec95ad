package logic

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/vctstats/cluster-dashboard/internal/models"
)

var (
	// ErrUnknownColumn is returned for a column name not in the schema
	ErrUnknownColumn = errors.New("unknown column")
	// ErrUnknownValue is returned for a selection not present in the dataset
	ErrUnknownValue = errors.New("unknown value")
)

// DistinctValues returns the values of column in first-seen order without duplicates
func DistinctValues(ds *models.Dataset, column string) ([]string, error) {
	col, ok := ds.Schema.Column(column)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, column)
	}

	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, r := range ds.Records {
		v := r.Label(col)
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out, nil
}

// DistinctClusters is DistinctValues for the cluster column, typed
func DistinctClusters(ds *models.Dataset) []int {
	seen := make(map[int]struct{})
	out := make([]int, 0)
	for _, r := range ds.Records {
		if _, dup := seen[r.Cluster]; dup {
			continue
		}
		seen[r.Cluster] = struct{}{}
		out = append(out, r.Cluster)
	}
	return out
}

func distinctStrings(ds *models.Dataset, field func(*models.PlayerRecord) string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, r := range ds.Records {
		v := field(r)
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// Tournaments, Teams and Players list the typed discriminators in first-seen order
func Tournaments(ds *models.Dataset) []string {
	return distinctStrings(ds, func(r *models.PlayerRecord) string { return r.Tournament })
}

func Teams(ds *models.Dataset) []string {
	return distinctStrings(ds, func(r *models.PlayerRecord) string { return r.Team })
}

func Players(ds *models.Dataset) []string {
	return distinctStrings(ds, func(r *models.PlayerRecord) string { return r.Player })
}

// FeatureColumns returns the feature picker list
func FeatureColumns(ds *models.Dataset) []string {
	return append([]string(nil), ds.Schema.Features...)
}

func filter(ds *models.Dataset, keep func(*models.PlayerRecord) bool) *models.Dataset {
	out := make([]*models.PlayerRecord, 0)
	for _, r := range ds.Records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return ds.Subset(out)
}

func FilterByCluster(ds *models.Dataset, cluster int) *models.Dataset {
	return filter(ds, func(r *models.PlayerRecord) bool { return r.Cluster == cluster })
}

func FilterByTournament(ds *models.Dataset, tournament string) *models.Dataset {
	return filter(ds, func(r *models.PlayerRecord) bool { return r.Tournament == tournament })
}

func FilterByTeam(ds *models.Dataset, team string) *models.Dataset {
	return filter(ds, func(r *models.PlayerRecord) bool { return r.Team == team })
}

func FilterByPlayer(ds *models.Dataset, player string) *models.Dataset {
	return filter(ds, func(r *models.PlayerRecord) bool { return r.Player == player })
}

// ValidateSelection checks every non-empty field of sel against the values
// present in ds. Feature fields must name a feature column; Metric may name
// any numeric column.
func ValidateSelection(ds *models.Dataset, sel models.FilterSelection) error {
	if sel.Cluster != nil && !containsInt(DistinctClusters(ds), *sel.Cluster) {
		return fmt.Errorf("%w: cluster %s", ErrUnknownValue, strconv.Itoa(*sel.Cluster))
	}

	checks := []struct {
		kind   string
		value  string
		values func() []string
	}{
		{"tournament", sel.Tournament, func() []string { return Tournaments(ds) }},
		{"team", sel.Team, func() []string { return Teams(ds) }},
		{"player", sel.Player, func() []string { return Players(ds) }},
		{"feature", sel.FeatureX, func() []string { return ds.Schema.Features }},
		{"feature", sel.FeatureY, func() []string { return ds.Schema.Features }},
		{"feature", sel.Feature, func() []string { return ds.Schema.Features }},
	}
	for _, c := range checks {
		if c.value == "" {
			continue
		}
		if !containsString(c.values(), c.value) {
			return fmt.Errorf("%w: %s %q", ErrUnknownValue, c.kind, c.value)
		}
	}

	if sel.Metric != "" {
		col, ok := ds.Schema.Column(sel.Metric)
		if !ok || col.Kind != models.NumericColumn {
			return fmt.Errorf("%w: metric %q", ErrUnknownValue, sel.Metric)
		}
	}
	return nil
}

func containsString(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

func containsInt(values []int, v int) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
