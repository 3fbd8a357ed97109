package domain

// Service is one row of the services inventory table.
//
// A Service is uniquely identified by its ID. When the same ID appears more
// than once in the input, the last row wins.
type Service struct {
	// ─────────────────────────────
	// Identity
	// ─────────────────────────────

	// ID is the inventory key referenced by component links.
	ID string

	// ─────────────────────────────
	// Endpoint
	// ─────────────────────────────

	// Host is the DNS name the service was observed on.
	// Example: www.example.com
	Host string

	// Address is the IP address of the endpoint.
	// Example: 10.0.0.1
	Address string

	// Transport is the L4 protocol.
	// Example: tcp
	Transport string

	// Port is kept as text so natural ordering applies to it like any other field.
	Port string

	// Name is the detected application protocol.
	// Example: https
	Name string

	// ─────────────────────────────
	// TLS
	// ─────────────────────────────

	// ChainID references the certificate chain presented by the service.
	// Empty when the service has no TLS.
	ChainID string
}

// HasChain reports whether the service references a certificate chain.
func (s *Service) HasChain() bool {
	return s.ChainID != ""
}

// Endpoint returns the five fields shared by every report row that
// describes a service.
func (s *Service) Endpoint() []string {
	return []string{s.Host, s.Address, s.Transport, s.Port, s.Name}
}
