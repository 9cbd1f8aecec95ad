package dataset

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/vctstats/cluster-dashboard/internal/models"
)

// PgQuerier is the part of pgxpool.Pool the Postgres source needs
type PgQuerier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// PostgresSource reads the dataset from a table written by the training pipeline
type PostgresSource struct {
	DB      PgQuerier
	Table   string
	Options Options
}

func NewPostgresSource(db PgQuerier, table string, opts Options) *PostgresSource {
	return &PostgresSource{DB: db, Table: table, Options: opts}
}

// undefinedTable is the SQLSTATE for a missing relation
const undefinedTable = "42P01"

func (s *PostgresSource) Load(ctx context.Context) (*models.Dataset, error) {
	ident := pgx.Identifier(strings.Split(s.Table, "."))
	rows, err := s.DB.Query(ctx, "SELECT * FROM "+ident.Sanitize())
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == undefinedTable {
			return nil, fmt.Errorf("%w: table %q", ErrNotFound, s.Table)
		}
		return nil, fmt.Errorf("query dataset table %q: %w", s.Table, err)
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	header := make([]string, len(fields))
	for i, fd := range fields {
		header[i] = fd.Name
	}

	var data [][]string
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("read dataset row: %w", err)
		}
		row := make([]string, len(values))
		for i, v := range values {
			row[i] = formatCell(v)
		}
		data = append(data, row)
	}
	if err := rows.Err(); err != nil {
		// pgx reports a missing table on first Next for some protocols
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == undefinedTable {
			return nil, fmt.Errorf("%w: table %q", ErrNotFound, s.Table)
		}
		return nil, fmt.Errorf("dataset row iteration failed: %w", err)
	}

	return Build(header, data, s.Options)
}
