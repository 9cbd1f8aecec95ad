package logic

import (
	"errors"
	"reflect"
	"testing"

	"github.com/vctstats/cluster-dashboard/internal/dataset"
	"github.com/vctstats/cluster-dashboard/internal/models"
)

func TestTable(t *testing.T) {
	ds := loadFixture(t)
	table := Table(FilterByPlayer(ds, "aspas"))

	if !reflect.DeepEqual(table.Columns, ds.Schema.Names()) {
		t.Errorf("columns = %v", table.Columns)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(table.Rows))
	}
	if table.Rows[0][0] != "aspas" || table.Rows[0][3] != models.Float(2) {
		t.Errorf("first row = %v", table.Rows[0])
	}
	if v, ok := table.Rows[1][8].(models.Float); !ok || !v.IsNaN() {
		t.Errorf("missing ACS cell = %v, want NaN", table.Rows[1][8])
	}
}

func TestScatter_GroupsByHue(t *testing.T) {
	ds := loadFixture(t)
	plot, err := Scatter(FilterByTournament(ds, "Champions Seoul"), models.FeatureCombatScore, models.FeatureKillsDeaths, models.ColumnCluster)
	if err != nil {
		t.Fatalf("Scatter failed: %v", err)
	}

	if len(plot.Groups) != 2 {
		t.Fatalf("groups = %d, want 2 (aspas has no ACS)", len(plot.Groups))
	}
	if plot.Groups[0].Hue != "2" || plot.Groups[0].Points[0].Player != "TenZ" {
		t.Errorf("first group = %+v", plot.Groups[0])
	}
	if p := plot.Groups[1].Points[0]; p.Player != "Derke" || p.X != 250 || p.Y != 1.5 {
		t.Errorf("Derke point = %+v", p)
	}
}

func TestScatter_UnknownColumn(t *testing.T) {
	ds := loadFixture(t)
	if _, err := Scatter(ds, "Agents", models.FeatureKillsDeaths, models.ColumnPlayer); !errors.Is(err, ErrUnknownColumn) {
		t.Errorf("err = %v, want ErrUnknownColumn", err)
	}
	if _, err := Scatter(ds, models.FeatureKillsDeaths, models.FeatureKillsDeaths, "Region"); !errors.Is(err, ErrUnknownColumn) {
		t.Errorf("err = %v, want ErrUnknownColumn", err)
	}
}

func TestHistogram(t *testing.T) {
	ds := loadFixture(t)
	h, err := Histogram(ds, models.FeatureCombatScore, 5)
	if err != nil {
		t.Fatalf("Histogram failed: %v", err)
	}

	if h.Total != 7 || h.Missing != 1 {
		t.Errorf("total/missing = %d/%d, want 7/1", h.Total, h.Missing)
	}
	var counts []int
	for _, b := range h.Bins {
		counts = append(counts, b.Count)
	}
	if want := []int{1, 1, 1, 0, 3}; !reflect.DeepEqual(counts, want) {
		t.Errorf("counts = %v, want %v", counts, want)
	}
	if h.Bins[0].Lower != 180 || h.Bins[4].Upper != 250 {
		t.Errorf("range = [%v, %v], want [180, 250]", h.Bins[0].Lower, h.Bins[4].Upper)
	}
}

func TestHistogram_DefaultBinsAndEdgeCases(t *testing.T) {
	ds := loadFixture(t)

	h, _ := Histogram(ds, models.FeatureKillsDeaths, 0)
	if len(h.Bins) != DefaultHistogramBins {
		t.Errorf("bins = %d, want %d", len(h.Bins), DefaultHistogramBins)
	}

	empty, err := Histogram(FilterByCluster(ds, 9), models.FeatureKillsDeaths, 0)
	if err != nil || len(empty.Bins) != 0 || empty.Total != 0 {
		t.Errorf("empty histogram = %+v, %v", empty, err)
	}

	single, _ := Histogram(FilterByPlayer(ds, "Derke"), models.FeatureCombatScore, 3)
	if single.Bins[0].Lower != 249.5 || single.Bins[2].Upper != 250.5 {
		t.Errorf("constant range = [%v, %v], want [249.5, 250.5]", single.Bins[0].Lower, single.Bins[2].Upper)
	}
	total := 0
	for _, b := range single.Bins {
		total += b.Count
	}
	if total != 1 {
		t.Errorf("binned %d values, want 1", total)
	}

	header := []string{"Player", "Teams", "Tournament", "Cluster", "K"}
	rows := [][]string{
		{"a", "t", "x", "0", "1"},
		{"b", "t", "x", "0", "+Inf"},
		{"c", "t", "x", "0", "2"},
		{"d", "t", "x", "0", "-Infinity"},
	}
	inf, err := dataset.Build(header, rows, dataset.Options{FeatureStart: 4, FeatureEnd: 5})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	h, err = Histogram(inf, "K", 15)
	if err != nil {
		t.Fatalf("Histogram failed: %v", err)
	}
	if h.NonFinite != 2 || h.Missing != 0 || h.Total != 4 {
		t.Errorf("counts = total %d missing %d non-finite %d, want 4, 0, 2", h.Total, h.Missing, h.NonFinite)
	}
	if h.Bins[0].Lower != 1 || h.Bins[14].Upper != 2 {
		t.Errorf("range = [%v, %v], want [1, 2]", h.Bins[0].Lower, h.Bins[14].Upper)
	}
	if h.Bins[0].Count != 1 || h.Bins[14].Count != 1 {
		t.Errorf("edge bins = %d, %d, want 1, 1", h.Bins[0].Count, h.Bins[14].Count)
	}
}

func TestTeamSeries(t *testing.T) {
	ds := loadFixture(t)
	series, err := TeamSeries(FilterByTeam(ds, "Sentinels"), models.FeatureCombatScore)
	if err != nil {
		t.Fatalf("TeamSeries failed: %v", err)
	}

	if len(series) != 3 {
		t.Fatalf("series = %d, want 3", len(series))
	}
	tenz := series[0]
	if tenz.Player != "TenZ" || len(tenz.Points) != 2 {
		t.Fatalf("first series = %+v", tenz)
	}
	want := []models.LinePoint{{Tournament: "Masters Madrid", Value: 200}, {Tournament: "Champions Seoul", Value: 240}}
	if !reflect.DeepEqual(tenz.Points, want) {
		t.Errorf("points = %v, want %v", tenz.Points, want)
	}
}

func TestClusterCounts(t *testing.T) {
	ds := loadFixture(t)
	got := ClusterCounts(FilterByTournament(ds, "Masters Madrid"))
	want := []models.ClusterCount{{Cluster: 2, Players: 2}, {Cluster: 1, Players: 1}, {Cluster: 0, Players: 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
