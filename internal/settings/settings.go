// Package settings holds tunables that rarely change per invocation. A
// settings file lets CI jobs pin their defaults without repeating flags.
package settings

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings are the runtime tunables of the analyzer.
type Settings struct {
	// WorkerCount is the size of the ingestion worker pool.
	WorkerCount int `yaml:"workers"`
	// SlowestClassCount is how many classes the slowest-classes view keeps.
	SlowestClassCount int `yaml:"slowest"`
	// ReportTitle is the title rendered into generated reports.
	ReportTitle string `yaml:"title"`
	// ClassFilters are +/- wildcard rules applied to class names.
	ClassFilters []string `yaml:"classFilters"`
}

// NewSettings returns the defaults.
func NewSettings() *Settings {
	return &Settings{
		WorkerCount:       10,
		SlowestClassCount: 10,
		ReportTitle:       "Test Results",
	}
}

// LoadFile reads a YAML settings file on top of the defaults. Fields missing
// from the file keep their default values.
func LoadFile(path string) (*Settings, error) {
	s := NewSettings()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to parse settings file %s: %w", path, err)
	}
	if s.WorkerCount <= 0 {
		return nil, fmt.Errorf("settings file %s: workers must be positive", path)
	}
	if s.SlowestClassCount <= 0 {
		return nil, fmt.Errorf("settings file %s: slowest must be positive", path)
	}
	return s, nil
}
