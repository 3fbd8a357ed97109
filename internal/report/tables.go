package report

import "github.com/MrSnakeDoc/svcreport/internal/domain"

// Table is one output table, ready for any sink.
type Table struct {
	Name   string // stable key, ex: "certificates"
	File   string // CSV file name in the destination directory
	Sheet  string // workbook sheet name
	Header []string
	Rows   [][]string
}

var (
	SANsHeader         = []string{"SAN"}
	ServicesHeader     = []string{"Host", "Address", "Transport", "Port", "Service"}
	CertificatesHeader = []string{"Host", "Address", "Transport", "Port", "Service",
		"Depth", "Subject", "Issuer", "Not Valid Before", "Not Valid After"}
	ComponentsHeader = []string{"Host", "Address", "Transport", "Port", "Service",
		"Component", "Version"}
)

// Tables returns the report tables in write order.
func (r *Report) Tables() []Table {
	return []Table{
		{Name: "sans", File: "sans.csv", Sheet: "SANs", Header: SANsHeader, Rows: fieldsOf(r.SANs)},
		{Name: "services", File: "services.csv", Sheet: "Services", Header: ServicesHeader, Rows: fieldsOf(r.Services)},
		{Name: "certificates", File: "certificates.csv", Sheet: "Certificates", Header: CertificatesHeader, Rows: fieldsOf(r.Certificates)},
		{Name: "components", File: "components.csv", Sheet: "Components", Header: ComponentsHeader, Rows: fieldsOf(r.Components)},
	}
}

// Counts returns the row count per table name.
func (r *Report) Counts() map[string]int {
	return map[string]int{
		"sans":         len(r.SANs),
		"services":     len(r.Services),
		"certificates": len(r.Certificates),
		"components":   len(r.Components),
	}
}

func fieldsOf[R domain.Row](rows []R) [][]string {
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.Fields())
	}
	return out
}
