package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"

	"github.com/vctstats/cluster-dashboard/internal/models"
)

// CSVSource reads the dataset from a CSV file with a header row.
// Encoding is a WHATWG label such as "windows-1252"; empty means UTF-8.
type CSVSource struct {
	Path     string
	Encoding string
	Options  Options
}

func NewCSVSource(path string, opts Options) *CSVSource {
	return &CSVSource{Path: path, Options: opts}
}

func (s *CSVSource) Load(ctx context.Context) (*models.Dataset, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: file %q", ErrNotFound, s.Path)
		}
		return nil, fmt.Errorf("open dataset %q: %w", s.Path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if s.Encoding != "" {
		enc, err := htmlindex.Get(s.Encoding)
		if err != nil {
			return nil, fmt.Errorf("dataset encoding %q: %w", s.Encoding, err)
		}
		r = transform.NewReader(f, enc.NewDecoder())
	}
	return ReadCSV(r, s.Options)
}

// ReadCSV parses a CSV stream whose first record is the header
func ReadCSV(r io.Reader, opts Options) (*models.Dataset, error) {
	reader := csv.NewReader(r)
	reader.ReuseRecord = false

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: file is empty", ErrSchema)
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}

	return Build(header, rows, opts)
}
