package output

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MrSnakeDoc/svcreport/internal/logger"
	"github.com/MrSnakeDoc/svcreport/internal/report"
	"github.com/MrSnakeDoc/svcreport/internal/utils"
)

// ErrCreate is returned when a destination file cannot be opened for writing.
var ErrCreate = errors.New("failed to open for writing")

// WriteCSV writes header then rows to path, replacing any existing file.
func WriteCSV(path string, header []string, rows [][]string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrCreate, path, err)
	}
	defer utils.CloseInto(f, &err, path)

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write header to %s: %w", path, err)
	}
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write rows to %s: %w", path, err)
	}
	return nil
}

// CSVWriter writes every report table as a CSV file in a directory.
type CSVWriter struct {
	dir    string
	logger logger.Logger
}

func NewCSVWriter(dir string, log logger.Logger) *CSVWriter {
	return &CSVWriter{dir: dir, logger: log}
}

// Write emits the tables in report order and stops at the first failure.
func (w *CSVWriter) Write(r *report.Report) error {
	for _, table := range r.Tables() {
		path := filepath.Join(w.dir, table.File)
		if err := WriteCSV(path, table.Header, table.Rows); err != nil {
			return err
		}
		w.logger.Debug("wrote table",
			logger.String("path", path),
			logger.Int("rows", len(table.Rows)))
	}
	return nil
}
