package logic

import (
	"fmt"
	"math"
	"sort"

	"github.com/vctstats/cluster-dashboard/internal/models"
)

// Aggregate computes stat over every numeric column of ds, in schema order.
// Missing cells are skipped. A column with no values yields NaN, and a
// describe block with count 0, so an empty subset still lists every column.
func Aggregate(ds *models.Dataset, stat models.Statistic) (*models.Aggregates, error) {
	switch stat {
	case models.StatMean, models.StatMedian, models.StatDescribe:
	default:
		return nil, fmt.Errorf("unsupported statistic %q", stat)
	}

	cols := ds.Schema.NumericColumns()
	result := &models.Aggregates{
		Statistic: stat,
		Columns:   make([]models.ColumnAggregate, 0, len(cols)),
	}

	for _, col := range cols {
		values := columnValues(ds, col)
		agg := models.ColumnAggregate{Column: col.Name}

		switch stat {
		case models.StatMean:
			v := models.Float(mean(values))
			agg.Value = &v
		case models.StatMedian:
			sort.Float64s(values)
			v := models.Float(quantile(values, 0.5))
			agg.Value = &v
		case models.StatDescribe:
			agg.Describe = describe(values)
		}
		result.Columns = append(result.Columns, agg)
	}
	return result, nil
}

// columnValues returns the non-missing values of col
func columnValues(ds *models.Dataset, col models.Column) []float64 {
	out := make([]float64, 0, len(ds.Records))
	for _, r := range ds.Records {
		v := r.Metric(col)
		if math.IsNaN(v) {
			continue
		}
		out = append(out, v)
	}
	return out
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// sampleStd uses n-1 degrees of freedom; one value gives NaN
func sampleStd(values []float64, m float64) float64 {
	if len(values) < 2 {
		return math.NaN()
	}
	var ss float64
	for _, v := range values {
		d := v - m
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(values)-1))
}

// quantile interpolates linearly between closest ranks of sorted values
func quantile(sorted []float64, q float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	pos := q * float64(n-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo] + (sorted[hi]-sorted[lo])*frac
}

func describe(values []float64) *models.Describe {
	sort.Float64s(values)
	m := mean(values)

	d := &models.Describe{
		Count: len(values),
		Mean:  models.Float(m),
		Std:   models.Float(sampleStd(values, m)),
		Min:   models.Float(math.NaN()),
		Q25:   models.Float(quantile(values, 0.25)),
		Q50:   models.Float(quantile(values, 0.5)),
		Q75:   models.Float(quantile(values, 0.75)),
		Max:   models.Float(math.NaN()),
	}
	if len(values) > 0 {
		d.Min = models.Float(values[0])
		d.Max = models.Float(values[len(values)-1])
	}
	return d
}
