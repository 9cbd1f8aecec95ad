package dataset

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"

	"github.com/vctstats/cluster-dashboard/internal/models"
)

// ClickHouseQuerier is the part of driver.Conn the ClickHouse source needs
type ClickHouseQuerier interface {
	Query(ctx context.Context, query string, args ...any) (driver.Rows, error)
}

// ClickHouseSource reads the dataset from a ClickHouse table
type ClickHouseSource struct {
	Conn    ClickHouseQuerier
	Table   string
	Options Options
}

func NewClickHouseSource(conn ClickHouseQuerier, table string, opts Options) *ClickHouseSource {
	return &ClickHouseSource{Conn: conn, Table: table, Options: opts}
}

// unknownTable is ClickHouse error code UNKNOWN_TABLE
const unknownTable = 60

func (s *ClickHouseSource) Load(ctx context.Context) (*models.Dataset, error) {
	rows, err := s.Conn.Query(ctx, "SELECT * FROM "+quoteIdentifier(s.Table))
	if err != nil {
		var exc *clickhouse.Exception
		if errors.As(err, &exc) && exc.Code == unknownTable {
			return nil, fmt.Errorf("%w: table %q", ErrNotFound, s.Table)
		}
		return nil, fmt.Errorf("query dataset table %q: %w", s.Table, err)
	}
	defer rows.Close()

	header := rows.Columns()
	types := rows.ColumnTypes()
	if len(types) != len(header) {
		return nil, fmt.Errorf("%w: %d column types for %d columns", ErrSchema, len(types), len(header))
	}

	var data [][]string
	for rows.Next() {
		dest := make([]any, len(types))
		for i, ct := range types {
			dest[i] = reflect.New(ct.ScanType()).Interface()
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan dataset row: %w", err)
		}
		row := make([]string, len(dest))
		for i, d := range dest {
			row[i] = formatCell(d)
		}
		data = append(data, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("dataset row iteration failed: %w", err)
	}

	return Build(header, data, s.Options)
}

// quoteIdentifier quotes a possibly database-qualified table name
func quoteIdentifier(name string) string {
	parts := strings.Split(name, ".")
	for i, p := range parts {
		parts[i] = "`" + strings.ReplaceAll(p, "`", "\\`") + "`"
	}
	return strings.Join(parts, ".")
}
