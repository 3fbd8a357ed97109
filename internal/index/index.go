package index

import (
	"maps"
	"slices"

	"github.com/MrSnakeDoc/svcreport/internal/domain"
)

// Association ties a service to the certificate chain it presents.
type Association struct {
	ServiceID string
	ChainID   string
}

// Index holds the lookup structures the report joins against.
// It is built once per run and read-only afterwards.
type Index struct {
	services     map[string]*domain.Service            // ID -> Service
	serviceOrder []string                              // IDs in order of first appearance
	chains       map[string]map[int]*domain.ChainEntry // chain ID -> depth -> entry
	components   map[string]*domain.Component          // ID -> Component
	sans         map[string]struct{}
	assocs       []Association
	links        []*domain.ComponentLink
}

// New creates an empty index
func New() *Index {
	return &Index{
		services:   make(map[string]*domain.Service),
		chains:     make(map[string]map[int]*domain.ChainEntry),
		components: make(map[string]*domain.Component),
		sans:       make(map[string]struct{}),
	}
}

// AddServices indexes services by ID, last write wins. Every service with
// a chain reference contributes one association, duplicates included.
func (idx *Index) AddServices(services []*domain.Service) {
	for _, svc := range services {
		if _, seen := idx.services[svc.ID]; !seen {
			idx.serviceOrder = append(idx.serviceOrder, svc.ID)
		}
		idx.services[svc.ID] = svc

		if svc.HasChain() {
			idx.assocs = append(idx.assocs, Association{ServiceID: svc.ID, ChainID: svc.ChainID})
		}
	}
}

// AddChainEntries groups entries by chain and depth, last write wins.
func (idx *Index) AddChainEntries(entries []*domain.ChainEntry) {
	for _, e := range entries {
		chain, ok := idx.chains[e.ChainID]
		if !ok {
			chain = make(map[int]*domain.ChainEntry)
			idx.chains[e.ChainID] = chain
		}
		chain[e.Level] = e
	}
}

// AddSans records the distinct SAN values. Chain and depth are dropped.
func (idx *Index) AddSans(sans []*domain.SanEntry) {
	for _, s := range sans {
		idx.sans[s.Value] = struct{}{}
	}
}

// AddComponents indexes components by ID, last write wins.
func (idx *Index) AddComponents(components []*domain.Component) {
	for _, c := range components {
		idx.components[c.ID] = c
	}
}

// AddLinks keeps component/service links in input order.
func (idx *Index) AddLinks(links []*domain.ComponentLink) {
	idx.links = append(idx.links, links...)
}

// Service retrieves a service by ID
func (idx *Index) Service(id string) (*domain.Service, bool) {
	svc, ok := idx.services[id]
	return svc, ok
}

// Services returns one service per distinct ID, in order of first appearance.
func (idx *Index) Services() []*domain.Service {
	services := make([]*domain.Service, 0, len(idx.serviceOrder))
	for _, id := range idx.serviceOrder {
		services = append(services, idx.services[id])
	}
	return services
}

// Chain returns the entries of a chain ordered by ascending depth.
// Gaps in the depth sequence are skipped, not truncated at.
func (idx *Index) Chain(id string) ([]*domain.ChainEntry, bool) {
	chain, ok := idx.chains[id]
	if !ok {
		return nil, false
	}
	entries := make([]*domain.ChainEntry, 0, len(chain))
	for _, depth := range slices.Sorted(maps.Keys(chain)) {
		entries = append(entries, chain[depth])
	}
	return entries, true
}

// ChainSize returns the number of distinct depths recorded for a chain.
func (idx *Index) ChainSize(id string) int {
	return len(idx.chains[id])
}

// Component retrieves a component by ID
func (idx *Index) Component(id string) (*domain.Component, bool) {
	c, ok := idx.components[id]
	return c, ok
}

// SANs returns the distinct SAN values in lexical order.
func (idx *Index) SANs() []string {
	values := slices.Collect(maps.Keys(idx.sans))
	domain.SortLexical(values)
	return values
}

// Associations returns the service/chain pairs in input order.
func (idx *Index) Associations() []Association {
	return slices.Clone(idx.assocs)
}

// Links returns the component/service links in input order.
func (idx *Index) Links() []*domain.ComponentLink {
	return slices.Clone(idx.links)
}

// Stats summarizes the index for logging.
func (idx *Index) Stats() map[string]int {
	return map[string]int{
		"services":     len(idx.services),
		"chains":       len(idx.chains),
		"components":   len(idx.components),
		"sans":         len(idx.sans),
		"associations": len(idx.assocs),
		"links":        len(idx.links),
	}
}
