package domain

// Row is anything that can be projected onto an ordered list of CSV fields.
type Row interface {
	Fields() []string
}

// ServiceRow is the services report projection.
type ServiceRow struct {
	Host      string
	Address   string
	Transport string
	Port      string
	Service   string
}

// NewServiceRow projects a service, dropping its ID and chain reference.
func NewServiceRow(s *Service) ServiceRow {
	return ServiceRow{
		Host:      s.Host,
		Address:   s.Address,
		Transport: s.Transport,
		Port:      s.Port,
		Service:   s.Name,
	}
}

func (r ServiceRow) Fields() []string {
	return []string{r.Host, r.Address, r.Transport, r.Port, r.Service}
}

// CertificateRow joins a service with one entry of its certificate chain.
type CertificateRow struct {
	ServiceRow
	Depth          string
	Subject        string
	Issuer         string
	NotValidBefore string
	NotValidAfter  string
}

// NewCertificateRow joins a service with a chain entry. Depth is the entry's
// recorded value.
func NewCertificateRow(s *Service, e *ChainEntry) CertificateRow {
	return CertificateRow{
		ServiceRow:     NewServiceRow(s),
		Depth:          e.Depth,
		Subject:        e.Subject,
		Issuer:         e.Issuer,
		NotValidBefore: e.NotValidBefore,
		NotValidAfter:  e.NotValidAfter,
	}
}

func (r CertificateRow) Fields() []string {
	return append(r.ServiceRow.Fields(),
		r.Depth, r.Subject, r.Issuer, r.NotValidBefore, r.NotValidAfter)
}

// ComponentRow joins a service with a component running on it.
type ComponentRow struct {
	ServiceRow
	Component string
	Version   string
}

func NewComponentRow(s *Service, c *Component) ComponentRow {
	return ComponentRow{
		ServiceRow: NewServiceRow(s),
		Component:  c.Name,
		Version:    c.Version,
	}
}

func (r ComponentRow) Fields() []string {
	return append(r.ServiceRow.Fields(), r.Component, r.Version)
}

// SanRow is a single distinct SAN value.
type SanRow string

// Fields wraps the bare value into a one-element record.
func (r SanRow) Fields() []string {
	return []string{string(r)}
}
