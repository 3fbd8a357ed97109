package inventory

import "github.com/MrSnakeDoc/svcreport/internal/domain"

// Table describes one input CSV file. Fields are positional; MinFields is
// the number of leading fields a data row must carry.
type Table struct {
	Name      string
	File      string
	MinFields int
}

var (
	// ServicesTable: id, host, address, transport, port, service, chain id (optional)
	ServicesTable = Table{Name: "services", File: "services.csv", MinFields: 6}
	// CertsTable: chain id, depth, subject, issuer, not valid before, not valid after
	CertsTable = Table{Name: "certs", File: "certs.csv", MinFields: 6}
	// SansTable: chain id, depth, subject, san
	SansTable = Table{Name: "sans", File: "sans.csv", MinFields: 4}
	// ComponentsTable: id, name, version
	ComponentsTable = Table{Name: "comp", File: "comp.csv", MinFields: 3}
	// LinksTable: component id, service id
	LinksTable = Table{Name: "compsvc", File: "compsvc.csv", MinFields: 2}
)

// Tables lists every input in load order.
var Tables = []Table{ServicesTable, CertsTable, SansTable, ComponentsTable, LinksTable}

// Record is one data row with the line it started on.
type Record struct {
	Line   int
	Fields []string
}

// Inventory holds every input table as typed records, in file order.
type Inventory struct {
	Services   []*domain.Service
	Chains     []*domain.ChainEntry
	Sans       []*domain.SanEntry
	Components []*domain.Component
	Links      []*domain.ComponentLink
}

// Counts returns the number of data rows loaded per table name.
func (inv *Inventory) Counts() map[string]int {
	return map[string]int{
		ServicesTable.Name:   len(inv.Services),
		CertsTable.Name:      len(inv.Chains),
		SansTable.Name:       len(inv.Sans),
		ComponentsTable.Name: len(inv.Components),
		LinksTable.Name:      len(inv.Links),
	}
}
