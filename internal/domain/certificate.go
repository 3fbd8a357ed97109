package domain

// ChainEntry is a single certificate inside a chain.
type ChainEntry struct {
	ChainID string

	// Depth is the value as recorded in the input (0 = leaf).
	Depth string

	// Level is Depth parsed as a non-negative integer. Chains are walked in
	// ascending Level order.
	Level int

	Subject        string
	Issuer         string
	NotValidBefore string
	NotValidAfter  string
}

// SanEntry is a subject-alternative-name bound to a chain entry.
// Only Value is used by the report; the chain association is dropped.
type SanEntry struct {
	ChainID string
	Depth   string
	Value   string
}
