package dataset

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"

	"github.com/vctstats/cluster-dashboard/internal/models"
)

// SQLiteSource reads the dataset from a table in a SQLite file. The file is
// opened read-only for the duration of Load.
type SQLiteSource struct {
	Path    string
	Table   string
	Options Options
}

func NewSQLiteSource(path, table string, opts Options) *SQLiteSource {
	return &SQLiteSource{Path: path, Table: table, Options: opts}
}

func (s *SQLiteSource) Load(ctx context.Context) (*models.Dataset, error) {
	if _, err := os.Stat(s.Path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: file %q", ErrNotFound, s.Path)
		}
		return nil, fmt.Errorf("stat dataset %q: %w", s.Path, err)
	}

	db, err := sql.Open("sqlite3", "file:"+s.Path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("open sqlite dataset %q: %w", s.Path, err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, "SELECT * FROM "+quoteSQLite(s.Table))
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && strings.Contains(sqliteErr.Error(), "no such table") {
			return nil, fmt.Errorf("%w: table %q", ErrNotFound, s.Table)
		}
		return nil, fmt.Errorf("query dataset table %q: %w", s.Table, err)
	}
	defer rows.Close()

	header, data, err := readSQLRows(rows)
	if err != nil {
		return nil, err
	}
	return Build(header, data, s.Options)
}

func quoteSQLite(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// MySQLSource reads the dataset through a gorm connection
type MySQLSource struct {
	DB      *gorm.DB
	Table   string
	Options Options
}

func NewMySQLSource(db *gorm.DB, table string, opts Options) *MySQLSource {
	return &MySQLSource{DB: db, Table: table, Options: opts}
}

// mysqlNoSuchTable is ER_NO_SUCH_TABLE
const mysqlNoSuchTable = 1146

func (s *MySQLSource) Load(ctx context.Context) (*models.Dataset, error) {
	rows, err := s.DB.WithContext(ctx).Table(s.Table).Rows()
	if err != nil {
		if isMySQLMissingTable(err) {
			return nil, fmt.Errorf("%w: table %q", ErrNotFound, s.Table)
		}
		return nil, fmt.Errorf("query dataset table %q: %w", s.Table, err)
	}
	defer rows.Close()

	header, data, err := readSQLRows(rows)
	if err != nil {
		return nil, err
	}
	return Build(header, data, s.Options)
}

func isMySQLMissingTable(err error) bool {
	var myErr *mysqldriver.MySQLError
	return errors.As(err, &myErr) && myErr.Number == mysqlNoSuchTable
}

// readSQLRows drains database/sql rows into a header and string cells
func readSQLRows(rows *sql.Rows) ([]string, [][]string, error) {
	header, err := rows.Columns()
	if err != nil {
		return nil, nil, fmt.Errorf("read dataset columns: %w", err)
	}

	var data [][]string
	values := make([]any, len(header))
	targets := make([]any, len(header))
	for i := range values {
		targets[i] = &values[i]
	}
	for rows.Next() {
		if err := rows.Scan(targets...); err != nil {
			return nil, nil, fmt.Errorf("read dataset row: %w", err)
		}
		row := make([]string, len(values))
		for i, v := range values {
			row[i] = formatCell(v)
		}
		data = append(data, row)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("dataset row iteration failed: %w", err)
	}
	return header, data, nil
}
