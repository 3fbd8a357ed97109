package redis

import "strings"

const (
	// keyReport namespaces every report key under the configured prefix.
	keyReport = "report"
	// keyMeta holds run metadata as a hash.
	keyMeta = "meta"
	// keyStaging marks the temporary lists filled before RENAME.
	keyStaging = "staging"
)

// TableKey returns the key of the list holding a table's rows.
// Example: svcreport:report:certificates
func TableKey(prefix, table string) string {
	return join(prefix, keyReport, table)
}

// MetaKey returns the key of the run metadata hash.
func MetaKey(prefix string) string {
	return join(prefix, keyReport, keyMeta)
}

// StagingKey returns the temporary key a table is written to for a run.
func StagingKey(prefix, table, runID string) string {
	return join(prefix, keyReport, keyStaging, runID, table)
}

func join(parts ...string) string {
	return strings.Join(parts, ":")
}
