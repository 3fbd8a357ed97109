package inventory

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/MrSnakeDoc/svcreport/internal/logger"
	"github.com/MrSnakeDoc/svcreport/internal/utils"
)

// Loader reads the inventory tables from a base directory.
type Loader struct {
	dir    string
	mapper *Mapper
	logger logger.Logger
}

// NewLoader creates a loader for the CSV files found in dir.
func NewLoader(dir string, log logger.Logger) *Loader {
	return &Loader{
		dir:    dir,
		mapper: NewMapper(),
		logger: log,
	}
}

// Load reads and maps every table. The first failure aborts the load.
func (l *Loader) Load() (*Inventory, error) {
	inv := &Inventory{}

	for _, table := range Tables {
		records, err := l.ReadTable(table)
		if err != nil {
			return nil, err
		}

		switch table {
		case ServicesTable:
			inv.Services, err = l.mapper.MapServices(records)
		case CertsTable:
			inv.Chains, err = l.mapper.MapChainEntries(records)
		case SansTable:
			inv.Sans, err = l.mapper.MapSans(records)
		case ComponentsTable:
			inv.Components, err = l.mapper.MapComponents(records)
		case LinksTable:
			inv.Links, err = l.mapper.MapLinks(records)
		}
		if err != nil {
			return nil, err
		}

		l.logger.Debug("loaded table",
			logger.String("table", table.Name),
			logger.Int("rows", len(records)))
	}

	return inv, nil
}

// ReadTable returns the data rows of a table, header excluded.
// A file with no rows or only a header yields no records.
func (l *Loader) ReadTable(table Table) ([]Record, error) {
	path := filepath.Join(l.dir, table.File)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrOpen, path, err)
	}
	defer utils.Close(f)

	records, err := readRecords(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return records, nil
}

func readRecords(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	// Arity is checked per table by the mapper.
	cr.FieldsPerRecord = -1

	var records []Record
	header := true
	for {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		if header {
			header = false
			continue
		}
		line, _ := cr.FieldPos(0)
		records = append(records, Record{Line: line, Fields: fields})
	}
}
