package output

import (
	"fmt"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/MrSnakeDoc/svcreport/internal/logger"
	"github.com/MrSnakeDoc/svcreport/internal/report"
	"github.com/MrSnakeDoc/svcreport/internal/utils"
)

// WorkbookFile is the name of the optional workbook in the destination directory.
const WorkbookFile = "report.xlsx"

// defaultSheet is created by excelize.NewFile and removed once real sheets exist.
const defaultSheet = "Sheet1"

// XLSXWriter writes all report tables into one workbook, one sheet per table.
type XLSXWriter struct {
	dir    string
	logger logger.Logger
}

func NewXLSXWriter(dir string, log logger.Logger) *XLSXWriter {
	return &XLSXWriter{dir: dir, logger: log}
}

func (w *XLSXWriter) Write(r *report.Report) (err error) {
	f := excelize.NewFile()
	defer utils.CloseInto(f, &err, WorkbookFile)

	for _, table := range r.Tables() {
		if err := writeSheet(f, table); err != nil {
			return err
		}
	}
	if err := f.DeleteSheet(defaultSheet); err != nil {
		return fmt.Errorf("failed to remove default sheet: %w", err)
	}
	f.SetActiveSheet(0)

	path := filepath.Join(w.dir, WorkbookFile)
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("%w %s: %w", ErrCreate, path, err)
	}

	w.logger.Debug("wrote workbook", logger.String("path", path))
	return nil
}

func writeSheet(f *excelize.File, table report.Table) error {
	if _, err := f.NewSheet(table.Sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", table.Sheet, err)
	}

	sw, err := f.NewStreamWriter(table.Sheet)
	if err != nil {
		return fmt.Errorf("failed to open sheet %s: %w", table.Sheet, err)
	}

	if err := sw.SetRow("A1", toCells(table.Header)); err != nil {
		return fmt.Errorf("failed to write header of sheet %s: %w", table.Sheet, err)
	}
	for i, row := range table.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, toCells(row)); err != nil {
			return fmt.Errorf("failed to write row %d of sheet %s: %w", i+1, table.Sheet, err)
		}
	}
	return sw.Flush()
}

// toCells keeps every value as a string cell so ports and depths are not
// converted to numbers.
func toCells(fields []string) []interface{} {
	cells := make([]interface{}, len(fields))
	for i, v := range fields {
		cells[i] = v
	}
	return cells
}
