package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Float is a float64 that encodes NaN and infinities as JSON null.
// Aggregates over empty subsets are NaN, which encoding/json rejects.
type Float float64

func (f Float) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, v, 'f', -1, 64), nil
}

func (f *Float) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*f = Float(math.NaN())
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = Float(v)
	return nil
}

// IsNaN reports whether the value is undefined
func (f Float) IsNaN() bool { return math.IsNaN(float64(f)) }

// Label is a cluster label. Model artifacts may write labels as JSON numbers
// or strings; both decode to the same textual form.
type Label string

// UnmarshalJSON accepts "2", 2 and 2.0 alike. Integral numbers lose their
// fractional part so a float-typed label still reads as "2".
func (l *Label) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return fmt.Errorf("label is empty")
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*l = Label(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("label must be a string or number: %w", err)
	}
	if i, err := n.Int64(); err == nil {
		*l = Label(strconv.FormatInt(i, 10))
		return nil
	}
	f, err := n.Float64()
	if err != nil {
		return fmt.Errorf("label must be a string or number: %w", err)
	}
	if f == math.Trunc(f) && !math.IsInf(f, 0) {
		*l = Label(strconv.FormatInt(int64(f), 10))
		return nil
	}
	*l = Label(n.String())
	return nil
}

func (l Label) String() string { return string(l) }
