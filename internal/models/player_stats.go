package models

import (
	"fmt"
	"math"
	"strconv"
)

// Well-known columns of the clustered players file
const (
	ColumnPlayer     = "Player"
	ColumnTeam       = "Teams"
	ColumnTournament = "Tournament"
	ColumnCluster    = "Cluster"
)

// ColumnKind tells whether a column holds text or numbers
type ColumnKind int

const (
	TextColumn ColumnKind = iota
	NumericColumn
)

func (k ColumnKind) String() string {
	if k == NumericColumn {
		return "numeric"
	}
	return "text"
}

func (k ColumnKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Column describes one column of the dataset.
// Slot indexes PlayerRecord.Metrics for numeric columns and PlayerRecord.Text otherwise.
type Column struct {
	Name     string     `json:"name"`
	Kind     ColumnKind `json:"kind"`
	Position int        `json:"position"`
	Slot     int        `json:"-"`
}

// Schema is the fixed column set shared by every record of a Dataset
type Schema struct {
	Columns  []Column
	Features []string // numeric columns offered for plotting and distribution views
	byName   map[string]int
	numeric  int
	text     int
}

// NewSchema indexes columns by name. Slots are assigned in column order.
func NewSchema(columns []Column, features []string) *Schema {
	s := &Schema{
		Columns:  make([]Column, len(columns)),
		Features: features,
		byName:   make(map[string]int, len(columns)),
	}
	for i, c := range columns {
		if c.Kind == NumericColumn {
			c.Slot = s.numeric
			s.numeric++
		} else {
			c.Slot = s.text
			s.text++
		}
		s.Columns[i] = c
		s.byName[c.Name] = i
	}
	return s
}

// Column looks up a column by name
func (s *Schema) Column(name string) (Column, bool) {
	i, ok := s.byName[name]
	if !ok {
		return Column{}, false
	}
	return s.Columns[i], true
}

// NumericColumns returns the numeric columns in schema order
func (s *Schema) NumericColumns() []Column {
	out := make([]Column, 0, s.numeric)
	for _, c := range s.Columns {
		if c.Kind == NumericColumn {
			out = append(out, c)
		}
	}
	return out
}

// Names returns every column name in schema order
func (s *Schema) Names() []string {
	out := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		out[i] = c.Name
	}
	return out
}

func (s *Schema) NumNumeric() int { return s.numeric }
func (s *Schema) NumText() int    { return s.text }

// IsFeature reports whether name is one of the plottable feature columns
func (s *Schema) IsFeature(name string) bool {
	for _, f := range s.Features {
		if f == name {
			return true
		}
	}
	return false
}

// PlayerRecord is one player's line for one tournament
type PlayerRecord struct {
	Player     string
	Team       string
	Tournament string
	Cluster    int
	Metrics    []float64 // numeric columns, NaN when the cell was empty
	Text       []string  // text columns
}

// Metric returns the numeric value of column c, NaN for text columns
func (r *PlayerRecord) Metric(c Column) float64 {
	if c.Kind != NumericColumn || c.Slot >= len(r.Metrics) {
		return math.NaN()
	}
	return r.Metrics[c.Slot]
}

// Cell returns the value of column c ready for table output
func (r *PlayerRecord) Cell(c Column) interface{} {
	if c.Kind == NumericColumn {
		return Float(r.Metric(c))
	}
	if c.Slot >= len(r.Text) {
		return ""
	}
	return r.Text[c.Slot]
}

// Label returns the textual value of column c
func (r *PlayerRecord) Label(c Column) string {
	if c.Kind == NumericColumn {
		v := r.Metric(c)
		if math.IsNaN(v) {
			return ""
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	if c.Slot >= len(r.Text) {
		return ""
	}
	return r.Text[c.Slot]
}

// Dataset is an ordered, read-only collection of records sharing a schema.
// Fingerprint identifies the loaded file and is inherited by subsets.
type Dataset struct {
	Schema      *Schema
	Records     []*PlayerRecord
	Fingerprint string
}

func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Records)
}

// Subset returns a dataset over the given records with the same schema
func (d *Dataset) Subset(records []*PlayerRecord) *Dataset {
	return &Dataset{
		Schema:      d.Schema,
		Records:     records,
		Fingerprint: d.Fingerprint,
	}
}

func (d *Dataset) String() string {
	return fmt.Sprintf("Dataset(%d rows, %d columns)", d.Len(), len(d.Schema.Columns))
}
