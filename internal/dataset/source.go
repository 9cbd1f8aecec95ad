// Package dataset loads the clustered players table into a typed, read-only
// models.Dataset. Every source (CSV file, PostgreSQL table, ClickHouse table)
// hands a header and string cells to Build, so all of them produce the same
// records for the same data.
package dataset

import (
	"context"
	"crypto/sha256"
	"database/sql/driver"
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/vctstats/cluster-dashboard/internal/models"
)

var (
	// ErrNotFound is returned when the dataset file or table does not exist
	ErrNotFound = errors.New("dataset not found")
	// ErrSchema is returned when required columns or values are missing
	ErrSchema = errors.New("invalid dataset schema")
)

// Default feature window: file positions 8..23 hold the performance metrics
const (
	DefaultFeatureStart = 8
	DefaultFeatureEnd   = 24
)

// Source produces a Dataset. Implementations are called once per session.
type Source interface {
	Load(ctx context.Context) (*models.Dataset, error)
}

// Options control how a raw table becomes a Dataset
type Options struct {
	// FeatureStart and FeatureEnd bound (half-open) the file positions of
	// the plottable feature columns. Text columns in the window are skipped.
	FeatureStart int
	FeatureEnd   int
}

func (o Options) withDefaults() Options {
	if o.FeatureStart <= 0 && o.FeatureEnd <= 0 {
		o.FeatureStart = DefaultFeatureStart
		o.FeatureEnd = DefaultFeatureEnd
	}
	if o.FeatureStart < 0 {
		o.FeatureStart = 0
	}
	return o
}

var requiredColumns = []string{
	models.ColumnPlayer,
	models.ColumnTeam,
	models.ColumnTournament,
	models.ColumnCluster,
}

// Build validates a raw table and converts it into a Dataset.
// A column is numeric when it has at least one value and every non-empty
// cell parses as a number; empty numeric cells become NaN.
func Build(header []string, rows [][]string, opts Options) (*models.Dataset, error) {
	opts = opts.withDefaults()
	if len(header) == 0 {
		return nil, fmt.Errorf("%w: missing header row", ErrSchema)
	}

	names := make([]string, len(header))
	index := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		names[i] = name
		if _, dup := index[name]; dup {
			return nil, fmt.Errorf("%w: duplicate column %q", ErrSchema, name)
		}
		index[name] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", ErrSchema, col)
		}
	}
	for i, row := range rows {
		if len(row) != len(names) {
			return nil, fmt.Errorf("%w: row %d has %d fields, header has %d", ErrSchema, i+1, len(row), len(names))
		}
	}

	columns := make([]models.Column, len(names))
	var features []string
	for i, name := range names {
		kind := inferKind(rows, i)
		switch name {
		case models.ColumnPlayer, models.ColumnTeam, models.ColumnTournament:
			kind = models.TextColumn
		case models.ColumnCluster:
			kind = models.NumericColumn
		}
		columns[i] = models.Column{Name: name, Kind: kind, Position: i}
		if kind == models.NumericColumn && i >= opts.FeatureStart && (opts.FeatureEnd <= 0 || i < opts.FeatureEnd) {
			features = append(features, name)
		}
	}
	schema := models.NewSchema(columns, features)

	records := make([]*models.PlayerRecord, 0, len(rows))
	for i, row := range rows {
		rec, err := buildRecord(schema, row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		records = append(records, rec)
	}

	return &models.Dataset{
		Schema:      schema,
		Records:     records,
		Fingerprint: fingerprint(names, rows),
	}, nil
}

func inferKind(rows [][]string, col int) models.ColumnKind {
	seen := false
	for _, row := range rows {
		cell := strings.TrimSpace(row[col])
		if cell == "" {
			continue
		}
		if _, err := strconv.ParseFloat(cell, 64); err != nil {
			return models.TextColumn
		}
		seen = true
	}
	if !seen {
		return models.TextColumn
	}
	return models.NumericColumn
}

func buildRecord(schema *models.Schema, row []string) (*models.PlayerRecord, error) {
	rec := &models.PlayerRecord{
		Metrics: make([]float64, schema.NumNumeric()),
		Text:    make([]string, schema.NumText()),
	}

	for i, c := range schema.Columns {
		cell := strings.TrimSpace(row[i])
		if c.Kind == models.TextColumn {
			rec.Text[c.Slot] = cell
			continue
		}
		if cell == "" {
			rec.Metrics[c.Slot] = math.NaN()
			continue
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: column %q value %q is not numeric", ErrSchema, c.Name, cell)
		}
		rec.Metrics[c.Slot] = v
	}

	player, _ := schema.Column(models.ColumnPlayer)
	team, _ := schema.Column(models.ColumnTeam)
	tournament, _ := schema.Column(models.ColumnTournament)
	cluster, _ := schema.Column(models.ColumnCluster)

	rec.Player = rec.Text[player.Slot]
	rec.Team = rec.Text[team.Slot]
	rec.Tournament = rec.Text[tournament.Slot]
	for _, c := range []models.Column{player, team, tournament} {
		if rec.Text[c.Slot] == "" {
			return nil, fmt.Errorf("%w: column %q is empty", ErrSchema, c.Name)
		}
	}

	cv := rec.Metrics[cluster.Slot]
	if math.IsNaN(cv) {
		return nil, fmt.Errorf("%w: column %q is empty", ErrSchema, models.ColumnCluster)
	}
	if cv != math.Trunc(cv) || math.IsInf(cv, 0) {
		return nil, fmt.Errorf("%w: cluster %v is not an integer", ErrSchema, cv)
	}
	rec.Cluster = int(cv)

	return rec, nil
}

func fingerprint(header []string, rows [][]string) string {
	h := sha256.New()
	h.Write([]byte(strings.Join(header, "\x1f")))
	for _, row := range rows {
		h.Write([]byte{'\n'})
		h.Write([]byte(strings.Join(row, "\x1f")))
	}
	return hex.EncodeToString(h.Sum(nil))[:16]
}

// formatCell renders a database value the way it would appear in a CSV export
func formatCell(v any) string {
	if v == nil {
		return ""
	}
	if valuer, ok := v.(driver.Valuer); ok {
		dv, err := valuer.Value()
		if err != nil || dv == nil {
			return ""
		}
		v = dv
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return ""
		}
		rv = rv.Elem()
	}

	switch x := rv.Interface().(type) {
	case string:
		return x
	case []byte:
		return string(x)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case time.Time:
		return x.Format(time.RFC3339)
	case fmt.Stringer:
		return x.String()
	}
	return fmt.Sprint(rv.Interface())
}
