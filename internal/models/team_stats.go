package models

import (
	"encoding/json"
	"math"
)

// Statistic names accepted by the aggregate operation
type Statistic string

const (
	StatMean     Statistic = "mean"
	StatMedian   Statistic = "median"
	StatDescribe Statistic = "describe"
)

// Describe is the summary block of one numeric column
type Describe struct {
	Count int   `json:"count"`
	Mean  Float `json:"mean"`
	Std   Float `json:"std"`
	Min   Float `json:"min"`
	Q25   Float `json:"25%"`
	Q50   Float `json:"50%"`
	Q75   Float `json:"75%"`
	Max   Float `json:"max"`
}

// ColumnAggregate holds the result for one numeric column.
// Value is set for mean and median, Describe for describe.
type ColumnAggregate struct {
	Column   string    `json:"column"`
	Value    *Float    `json:"value,omitempty"`
	Describe *Describe `json:"describe,omitempty"`
}

// UnmarshalJSON keeps a null value as NaN instead of dropping the field
func (c *ColumnAggregate) UnmarshalJSON(data []byte) error {
	var raw struct {
		Column   string          `json:"column"`
		Value    json.RawMessage `json:"value"`
		Describe *Describe       `json:"describe"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	c.Column = raw.Column
	c.Describe = raw.Describe
	c.Value = nil
	if raw.Value != nil {
		v := Float(math.NaN())
		if err := v.UnmarshalJSON(raw.Value); err != nil {
			return err
		}
		c.Value = &v
	}
	return nil
}

// Aggregates is an ordered per-column result
type Aggregates struct {
	Statistic Statistic         `json:"statistic"`
	Columns   []ColumnAggregate `json:"columns"`
}

// Get returns the aggregate for column name
func (a *Aggregates) Get(name string) (ColumnAggregate, bool) {
	for _, c := range a.Columns {
		if c.Column == name {
			return c, true
		}
	}
	return ColumnAggregate{}, false
}

// Table is a row-oriented rendering of a dataset for display
type Table struct {
	Columns []string        `json:"columns"`
	Rows    [][]interface{} `json:"rows"`
}

// TeamView backs the team tab: every record of a team and its summary statistics
type TeamView struct {
	Team        string      `json:"team"`
	PlayerCount int         `json:"player_count"`
	Players     []string    `json:"players"`
	Records     Table       `json:"records"`
	Statistics  *Aggregates `json:"statistics"`
}
