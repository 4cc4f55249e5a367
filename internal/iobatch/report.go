package iobatch

import (
	"github.com/google/uuid"
)

// Report describes the outcome of a batch migration.
type Report struct {
	Date     string   `yaml:"date"`
	Target   string   `yaml:"target_version"`
	Duration string   `yaml:"duration"`
	Total    int      `yaml:"total"`
	Failed   int      `yaml:"failed"`
	Results  []Result `yaml:"results"`
}

// Result is the outcome of migrating one document.
type Result struct {
	idx int

	// ID is a UUID v5 of the input path, stable between runs.
	ID     uuid.UUID `yaml:"id"`
	Path   string    `yaml:"path"`
	Output string    `yaml:"output,omitempty"`
	From   string    `yaml:"from_version,omitempty"`
	To     string    `yaml:"to_version"`
	Bytes  int       `yaml:"bytes"`
	Size   string    `yaml:"size,omitempty"`
	Error  string    `yaml:"error,omitempty"`
}
