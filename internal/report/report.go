package report

import (
	"github.com/MrSnakeDoc/svcreport/internal/domain"
	"github.com/MrSnakeDoc/svcreport/internal/index"
	"github.com/MrSnakeDoc/svcreport/internal/logger"
)

// Unresolved describes a reference that was skipped during the join.
type Unresolved struct {
	Kind string `yaml:"kind"` // chain | component | service
	ID   string `yaml:"id"`
	From string `yaml:"from"` // the referencing row, ex: "service S1"
}

// Report is the sorted output of a run.
type Report struct {
	Services     []domain.ServiceRow
	Certificates []domain.CertificateRow
	Components   []domain.ComponentRow
	SANs         []domain.SanRow
	Unresolved   []Unresolved
}

// Builder joins the index into report tables.
type Builder struct {
	index  *index.Index
	policy Policy
	logger logger.Logger
}

// NewBuilder creates a builder. An empty policy means PolicySkip.
func NewBuilder(idx *index.Index, policy Policy, log logger.Logger) *Builder {
	if policy == "" {
		policy = PolicySkip
	}
	return &Builder{index: idx, policy: policy, logger: log}
}

// Build produces every table, each sorted.
func (b *Builder) Build() (*Report, error) {
	r := &Report{
		Services: b.services(),
		SANs:     b.sans(),
	}

	var err error
	if r.Certificates, err = b.certificates(r); err != nil {
		return nil, err
	}
	if r.Components, err = b.components(r); err != nil {
		return nil, err
	}

	domain.SortRows(r.Services)
	domain.SortRows(r.Certificates)
	domain.SortRows(r.Components)

	b.logger.Info("built report",
		logger.Int("services", len(r.Services)),
		logger.Int("certificates", len(r.Certificates)),
		logger.Int("components", len(r.Components)),
		logger.Int("sans", len(r.SANs)),
		logger.Int("unresolved", len(r.Unresolved)))

	return r, nil
}

func (b *Builder) services() []domain.ServiceRow {
	services := b.index.Services()
	rows := make([]domain.ServiceRow, 0, len(services))
	for _, svc := range services {
		rows = append(rows, domain.NewServiceRow(svc))
	}
	return rows
}

// sans is already lexically sorted by the index.
func (b *Builder) sans() []domain.SanRow {
	values := b.index.SANs()
	rows := make([]domain.SanRow, 0, len(values))
	for _, v := range values {
		rows = append(rows, domain.SanRow(v))
	}
	return rows
}

func (b *Builder) certificates(r *Report) ([]domain.CertificateRow, error) {
	var rows []domain.CertificateRow
	for _, a := range b.index.Associations() {
		svc, ok := b.index.Service(a.ServiceID)
		if !ok {
			continue // associations only come from indexed services
		}

		chain, ok := b.index.Chain(a.ChainID)
		if !ok {
			ref := Unresolved{Kind: "chain", ID: a.ChainID, From: "service " + a.ServiceID}
			if err := b.unresolved(r, ref, ErrMissingChain); err != nil {
				return nil, err
			}
			continue
		}

		for _, entry := range chain {
			rows = append(rows, domain.NewCertificateRow(svc, entry))
		}
	}
	return rows, nil
}

func (b *Builder) components(r *Report) ([]domain.ComponentRow, error) {
	var rows []domain.ComponentRow
	for _, link := range b.index.Links() {
		from := "link " + link.ComponentID + "->" + link.ServiceID

		comp, ok := b.index.Component(link.ComponentID)
		if !ok {
			ref := Unresolved{Kind: "component", ID: link.ComponentID, From: from}
			if err := b.unresolved(r, ref, ErrMissingComponent); err != nil {
				return nil, err
			}
			continue
		}

		svc, ok := b.index.Service(link.ServiceID)
		if !ok {
			ref := Unresolved{Kind: "service", ID: link.ServiceID, From: from}
			if err := b.unresolved(r, ref, ErrMissingService); err != nil {
				return nil, err
			}
			continue
		}

		rows = append(rows, domain.NewComponentRow(svc, comp))
	}
	return rows, nil
}

func (b *Builder) unresolved(r *Report, ref Unresolved, cause error) error {
	if b.policy == PolicyFail {
		return &ReferenceError{Ref: ref, Err: cause}
	}
	b.logger.Warn("skipping unresolved reference",
		logger.String("kind", ref.Kind),
		logger.String("id", ref.ID),
		logger.String("from", ref.From))
	r.Unresolved = append(r.Unresolved, ref)
	return nil
}
