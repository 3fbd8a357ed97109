package output

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/MrSnakeDoc/svcreport/internal/report"
)

// ManifestFile is the name of the optional run manifest in the destination directory.
const ManifestFile = "report.yaml"

// Manifest records what a run read and produced.
type Manifest struct {
	RunID       string              `yaml:"run_id"`
	GeneratedAt time.Time           `yaml:"generated_at"`
	Version     string              `yaml:"version"`
	Source      string              `yaml:"source"`
	Destination string              `yaml:"destination"`
	Inputs      map[string]int      `yaml:"inputs"`  // data rows per input table
	Outputs     map[string]int      `yaml:"outputs"` // rows per output table
	Unresolved  []report.Unresolved `yaml:"unresolved,omitempty"`
}

// WriteManifest marshals m into dir/report.yaml.
func WriteManifest(dir string, m *Manifest) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}

	path := filepath.Join(dir, ManifestFile)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w %s: %w", ErrCreate, path, err)
	}
	return nil
}

// ReadManifest loads a manifest written by WriteManifest.
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest yaml: %w", err)
	}
	return &m, nil
}
