package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"

	"heatbugs/internal/sims/heatbugs"
)

// OutputManager writes a run's telemetry.csv and config.yaml into a directory
// named after the run ID.
type OutputManager struct {
	runID         string
	dir           string
	telemetryFile *os.File

	headerWritten bool
}

// NewOutputManager creates <root>/<run-id>/ and opens telemetry.csv inside it.
// Returns nil if root is empty (output disabled).
func NewOutputManager(root string) (*OutputManager, error) {
	if root == "" {
		return nil, nil
	}

	runID := uuid.NewString()
	dir := filepath.Join(root, runID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, "telemetry.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating telemetry.csv: %w", err)
	}

	return &OutputManager{runID: runID, dir: dir, telemetryFile: f}, nil
}

// WriteConfig saves the run configuration as YAML.
func (om *OutputManager) WriteConfig(cfg heatbugs.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteTick appends a tick record to telemetry.csv.
func (om *OutputManager) WriteTick(stats TickStats) error {
	if om == nil {
		return nil
	}

	records := []TickStats{stats}

	if !om.headerWritten {
		if err := gocsv.Marshal(records, om.telemetryFile); err != nil {
			return fmt.Errorf("writing telemetry: %w", err)
		}
		om.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, om.telemetryFile); err != nil {
		return fmt.Errorf("writing telemetry: %w", err)
	}
	return nil
}

// RunID returns the identifier of this run.
func (om *OutputManager) RunID() string {
	if om == nil {
		return ""
	}
	return om.runID
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close closes the telemetry file.
func (om *OutputManager) Close() error {
	if om == nil || om.telemetryFile == nil {
		return nil
	}
	return om.telemetryFile.Close()
}
