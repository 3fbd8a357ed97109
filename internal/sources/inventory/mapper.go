package inventory

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MrSnakeDoc/svcreport/internal/domain"
)

// Mapper converts positional CSV records into domain entities.
type Mapper struct{}

// NewMapper creates a new mapper instance
func NewMapper() *Mapper {
	return &Mapper{}
}

// MapServices maps services.csv rows. The chain id column is optional.
func (m *Mapper) MapServices(records []Record) ([]*domain.Service, error) {
	services := make([]*domain.Service, 0, len(records))
	for _, rec := range records {
		if err := checkArity(ServicesTable, rec); err != nil {
			return nil, err
		}
		f := rec.Fields
		svc := &domain.Service{
			ID:        f[0],
			Host:      f[1],
			Address:   f[2],
			Transport: f[3],
			Port:      f[4],
			Name:      f[5],
		}
		if len(f) > 6 {
			svc.ChainID = f[6]
		}
		services = append(services, svc)
	}
	return services, nil
}

// MapChainEntries maps certs.csv rows. Depth must be a non-negative integer.
func (m *Mapper) MapChainEntries(records []Record) ([]*domain.ChainEntry, error) {
	entries := make([]*domain.ChainEntry, 0, len(records))
	for _, rec := range records {
		if err := checkArity(CertsTable, rec); err != nil {
			return nil, err
		}
		f := rec.Fields
		level, err := parseDepth(f[1])
		if err != nil {
			return nil, &RowError{File: CertsTable.File, Line: rec.Line, Err: ErrInvalidDepth, Detail: strconv.Quote(f[1])}
		}
		entries = append(entries, &domain.ChainEntry{
			ChainID:        f[0],
			Depth:          f[1],
			Level:          level,
			Subject:        f[2],
			Issuer:         f[3],
			NotValidBefore: f[4],
			NotValidAfter:  f[5],
		})
	}
	return entries, nil
}

// MapSans maps sans.csv rows. The subject column is not kept.
func (m *Mapper) MapSans(records []Record) ([]*domain.SanEntry, error) {
	sans := make([]*domain.SanEntry, 0, len(records))
	for _, rec := range records {
		if err := checkArity(SansTable, rec); err != nil {
			return nil, err
		}
		f := rec.Fields
		sans = append(sans, &domain.SanEntry{
			ChainID: f[0],
			Depth:   f[1],
			Value:   f[3],
		})
	}
	return sans, nil
}

// MapComponents maps comp.csv rows.
func (m *Mapper) MapComponents(records []Record) ([]*domain.Component, error) {
	comps := make([]*domain.Component, 0, len(records))
	for _, rec := range records {
		if err := checkArity(ComponentsTable, rec); err != nil {
			return nil, err
		}
		f := rec.Fields
		comps = append(comps, &domain.Component{ID: f[0], Name: f[1], Version: f[2]})
	}
	return comps, nil
}

// MapLinks maps compsvc.csv rows.
func (m *Mapper) MapLinks(records []Record) ([]*domain.ComponentLink, error) {
	links := make([]*domain.ComponentLink, 0, len(records))
	for _, rec := range records {
		if err := checkArity(LinksTable, rec); err != nil {
			return nil, err
		}
		links = append(links, &domain.ComponentLink{ComponentID: rec.Fields[0], ServiceID: rec.Fields[1]})
	}
	return links, nil
}

func checkArity(table Table, rec Record) error {
	if len(rec.Fields) < table.MinFields {
		return &RowError{
			File:   table.File,
			Line:   rec.Line,
			Err:    ErrShortRow,
			Detail: fmt.Sprintf("want %d, got %d", table.MinFields, len(rec.Fields)),
		}
	}
	return nil
}

func parseDepth(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("negative depth %d", n)
	}
	return n, nil
}
