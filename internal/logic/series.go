package logic

import (
	"fmt"
	"math"

	"github.com/vctstats/cluster-dashboard/internal/models"
)

// DefaultHistogramBins matches the distribution plot of the cluster view
const DefaultHistogramBins = 15

// Table renders ds row by row in schema order
func Table(ds *models.Dataset) models.Table {
	t := models.Table{
		Columns: ds.Schema.Names(),
		Rows:    make([][]interface{}, 0, ds.Len()),
	}
	for _, r := range ds.Records {
		row := make([]interface{}, len(ds.Schema.Columns))
		for i, c := range ds.Schema.Columns {
			row[i] = r.Cell(c)
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

func numericColumn(ds *models.Dataset, name string) (models.Column, error) {
	col, ok := ds.Schema.Column(name)
	if !ok {
		return models.Column{}, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
	}
	if col.Kind != models.NumericColumn {
		return models.Column{}, fmt.Errorf("%w: %q is not numeric", ErrUnknownColumn, name)
	}
	return col, nil
}

// Scatter pairs columns x and y for every record, grouped by the value of
// the hue column. Groups keep first-seen order. Records missing x or y are
// left out.
func Scatter(ds *models.Dataset, x, y, hue string) (*models.ScatterPlot, error) {
	xc, err := numericColumn(ds, x)
	if err != nil {
		return nil, err
	}
	yc, err := numericColumn(ds, y)
	if err != nil {
		return nil, err
	}
	hc, ok := ds.Schema.Column(hue)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, hue)
	}

	plot := &models.ScatterPlot{X: x, Y: y, Hue: hue, Groups: make([]models.ScatterGroup, 0)}
	index := make(map[string]int)
	for _, r := range ds.Records {
		xv, yv := r.Metric(xc), r.Metric(yc)
		if math.IsNaN(xv) || math.IsNaN(yv) {
			continue
		}
		key := r.Label(hc)
		gi, ok := index[key]
		if !ok {
			gi = len(plot.Groups)
			index[key] = gi
			plot.Groups = append(plot.Groups, models.ScatterGroup{Hue: key})
		}
		plot.Groups[gi].Points = append(plot.Groups[gi].Points, models.ScatterPoint{
			Player:     r.Player,
			Team:       r.Team,
			Tournament: r.Tournament,
			X:          models.Float(xv),
			Y:          models.Float(yv),
		})
	}
	return plot, nil
}

// Histogram splits the range of feature into equal-width bins. The last bin
// is closed on the right. A constant column gets a unit-wide range centred
// on its value.
func Histogram(ds *models.Dataset, feature string, bins int) (*models.Histogram, error) {
	col, err := numericColumn(ds, feature)
	if err != nil {
		return nil, err
	}
	if bins <= 0 {
		bins = DefaultHistogramBins
	}

	present := columnValues(ds, col)
	values := make([]float64, 0, len(present))
	for _, v := range present {
		if !math.IsInf(v, 0) {
			values = append(values, v)
		}
	}
	h := &models.Histogram{
		Feature:   feature,
		Total:     ds.Len(),
		Missing:   ds.Len() - len(present),
		NonFinite: len(present) - len(values),
		Bins:      make([]models.HistogramBin, 0, bins),
	}
	if len(values) == 0 {
		return h, nil
	}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo == hi {
		lo -= 0.5
		hi += 0.5
	}
	width := (hi - lo) / float64(bins)

	counts := make([]int, bins)
	for _, v := range values {
		i := min(max(int((v-lo)/width), 0), bins-1)
		counts[i]++
	}
	for i, c := range counts {
		upper := lo + width*float64(i+1)
		if i == bins-1 {
			upper = hi
		}
		h.Bins = append(h.Bins, models.HistogramBin{
			Lower: models.Float(lo + width*float64(i)),
			Upper: models.Float(upper),
			Count: c,
		})
	}
	return h, nil
}

// PlayerSeries returns metric for one player across tournaments in dataset order
func PlayerSeries(ds *models.Dataset, player, metric string) (*models.LineSeries, error) {
	col, err := numericColumn(ds, metric)
	if err != nil {
		return nil, err
	}
	s := &models.LineSeries{Player: player, Metric: metric, Points: make([]models.LinePoint, 0)}
	for _, r := range ds.Records {
		if r.Player != player {
			continue
		}
		s.Points = append(s.Points, models.LinePoint{
			Tournament: r.Tournament,
			Value:      models.Float(r.Metric(col)),
		})
	}
	return s, nil
}

// TeamSeries returns one PlayerSeries per player of ds, players in first-seen order
func TeamSeries(ds *models.Dataset, metric string) ([]*models.LineSeries, error) {
	if _, err := numericColumn(ds, metric); err != nil {
		return nil, err
	}
	players := Players(ds)
	out := make([]*models.LineSeries, 0, len(players))
	for _, p := range players {
		s, err := PlayerSeries(ds, p, metric)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// ClusterCounts counts records per cluster, clusters in first-seen order
func ClusterCounts(ds *models.Dataset) []models.ClusterCount {
	clusters := DistinctClusters(ds)
	counts := make(map[int]int, len(clusters))
	for _, r := range ds.Records {
		counts[r.Cluster]++
	}
	out := make([]models.ClusterCount, len(clusters))
	for i, c := range clusters {
		out[i] = models.ClusterCount{Cluster: c, Players: counts[c]}
	}
	return out
}
