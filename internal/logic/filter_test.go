package logic

import (
	"errors"
	"reflect"
	"testing"

	"github.com/vctstats/cluster-dashboard/internal/models"
)

func TestFilterByClusterAndTournament_MatchesNaiveScan(t *testing.T) {
	ds := loadFixture(t)

	for _, cluster := range DistinctClusters(ds) {
		for _, tournament := range Tournaments(ds) {
			var want []*models.PlayerRecord
			for _, r := range ds.Records {
				if r.Cluster == cluster && r.Tournament == tournament {
					want = append(want, r)
				}
			}

			got := FilterByTournament(FilterByCluster(ds, cluster), tournament)
			swapped := FilterByCluster(FilterByTournament(ds, tournament), cluster)

			if got.Len() != len(want) {
				t.Fatalf("cluster %d / %s: got %d rows, want %d", cluster, tournament, got.Len(), len(want))
			}
			for i := range want {
				if got.Records[i] != want[i] || swapped.Records[i] != want[i] {
					t.Errorf("cluster %d / %s: row %d differs from naive scan", cluster, tournament, i)
				}
			}
		}
	}
}

func TestFilter_EmptySubset(t *testing.T) {
	ds := loadFixture(t)

	subset := FilterByTournament(FilterByCluster(ds, 0), "Champions Seoul")
	if subset.Len() != 0 {
		t.Fatalf("Len = %d, want 0", subset.Len())
	}
	if subset.Schema != ds.Schema {
		t.Error("empty subset should keep the schema")
	}
	if subset.Records == nil {
		t.Error("empty subset should have an empty, non-nil record list")
	}
}

func TestFilter_DoesNotMutate(t *testing.T) {
	ds := loadFixture(t)
	before := append([]*models.PlayerRecord(nil), ds.Records...)

	FilterByTeam(ds, "Sentinels")
	FilterByPlayer(ds, "TenZ")

	if !reflect.DeepEqual(before, ds.Records) {
		t.Error("filtering changed the source dataset")
	}
}

func TestFilterByTeamAndPlayer(t *testing.T) {
	ds := loadFixture(t)

	team := FilterByTeam(ds, "Sentinels")
	if team.Len() != 4 {
		t.Fatalf("Sentinels rows = %d, want 4", team.Len())
	}
	tenz := FilterByPlayer(team, "TenZ")
	if tenz.Len() != 2 {
		t.Fatalf("TenZ rows = %d, want 2", tenz.Len())
	}
	if tenz.Records[0].Tournament != "Masters Madrid" || tenz.Records[1].Tournament != "Champions Seoul" {
		t.Error("filter should keep dataset order")
	}
}

func TestDistinctValues(t *testing.T) {
	ds := loadFixture(t)

	tests := []struct {
		column string
		want   []string
	}{
		{models.ColumnTeam, []string{"Sentinels", "LEVIATÁN", "FNATIC"}},
		{models.ColumnTournament, []string{"Masters Madrid", "Champions Seoul"}},
		{models.ColumnPlayer, []string{"TenZ", "zekken", "Sacy", "aspas", "Derke"}},
		{models.ColumnCluster, []string{"2", "1", "0"}},
	}
	for _, tt := range tests {
		t.Run(tt.column, func(t *testing.T) {
			got, err := DistinctValues(ds, tt.column)
			if err != nil {
				t.Fatalf("DistinctValues failed: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}

	if _, err := DistinctValues(ds, "Region"); !errors.Is(err, ErrUnknownColumn) {
		t.Errorf("err = %v, want ErrUnknownColumn", err)
	}
}

func TestDistinctValues_FirstSeenForAnyOrder(t *testing.T) {
	ds := loadFixture(t)

	reversed := make([]*models.PlayerRecord, ds.Len())
	for i, r := range ds.Records {
		reversed[len(reversed)-1-i] = r
	}
	got, _ := DistinctValues(ds.Subset(reversed), models.ColumnPlayer)

	want := []string{"aspas", "Derke", "TenZ", "Sacy", "zekken"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	seen := map[string]bool{}
	for _, v := range got {
		if seen[v] {
			t.Errorf("duplicate value %q", v)
		}
		seen[v] = true
	}
}

func TestDistinctClusters(t *testing.T) {
	ds := loadFixture(t)
	if got, want := DistinctClusters(ds), []int{2, 1, 0}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestValidateSelection(t *testing.T) {
	ds := loadFixture(t)

	tests := []struct {
		name    string
		sel     models.FilterSelection
		wantErr bool
	}{
		{"Empty", models.FilterSelection{}, false},
		{"Known Pair", models.FilterSelection{Cluster: intPtr(2), Tournament: "Masters Madrid"}, false},
		{"Empty Intersection Is Valid", models.FilterSelection{Cluster: intPtr(0), Tournament: "Champions Seoul"}, false},
		{"Unknown Cluster", models.FilterSelection{Cluster: intPtr(7)}, true},
		{"Unknown Tournament", models.FilterSelection{Tournament: "Lock//In"}, true},
		{"Unknown Team", models.FilterSelection{Team: "Paper Rex"}, true},
		{"Unknown Player", models.FilterSelection{Player: "Demon1"}, true},
		{"Feature", models.FilterSelection{FeatureX: "Average Combat Score", FeatureY: "Kills:Deaths"}, false},
		{"Non Feature Column", models.FilterSelection{Feature: "Rating"}, true},
		{"Text Metric", models.FilterSelection{Metric: "Agents"}, true},
		{"Non Feature Metric", models.FilterSelection{Metric: "Rating"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSelection(ds, tt.sel)
			if tt.wantErr && !errors.Is(err, ErrUnknownValue) {
				t.Errorf("err = %v, want ErrUnknownValue", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
