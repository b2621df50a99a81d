// Package config provides configuration loading for the rdfdocs CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vemonet/rdfdocs/graph"
)

// Config represents the complete rdfdocs configuration.
type Config struct {
	Ontology OntologyConfig `yaml:"ontology"`
	Examples ExamplesConfig `yaml:"examples"`
	Output   OutputConfig   `yaml:"output"`
}

// OntologyConfig configures the ontology loader defaults.
type OntologyConfig struct {
	// Format is the serialization hint (default: auto-detect)
	Format string `yaml:"format"`
	// Timeout is the maximum time for the HTTP fetch
	Timeout time.Duration `yaml:"timeout"`
}

// ExamplesConfig configures the SPARQL examples loader defaults.
type ExamplesConfig struct {
	// Endpoint is the default SPARQL endpoint URL (empty = require flag)
	Endpoint string `yaml:"endpoint"`
	// Graph optionally restricts retrieval to a named graph IRI
	Graph string `yaml:"graph"`
	// Timeout is the maximum time per endpoint request
	Timeout time.Duration `yaml:"timeout"`
}

// OutputConfig configures how documents are printed.
type OutputConfig struct {
	// Format is the output encoding: json, yaml or text
	Format string `yaml:"format"`
}

// Output format names.
const (
	OutputJSON = "json"
	OutputYAML = "yaml"
	OutputText = "text"
)

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Ontology: OntologyConfig{
			Format:  graph.FormatAuto,
			Timeout: 30 * time.Second,
		},
		Examples: ExamplesConfig{
			Timeout: 30 * time.Second,
		},
		Output: OutputConfig{
			Format: OutputJSON,
		},
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Ontology.Format != graph.FormatAuto {
		if _, err := graph.ParseFormat(c.Ontology.Format); err != nil {
			return fmt.Errorf("ontology.format: %w", err)
		}
	}
	if c.Ontology.Timeout < 0 {
		return fmt.Errorf("ontology.timeout must not be negative")
	}
	if c.Examples.Timeout < 0 {
		return fmt.Errorf("examples.timeout must not be negative")
	}
	if !slices.Contains([]string{OutputJSON, OutputYAML, OutputText}, c.Output.Format) {
		return fmt.Errorf("output.format must be json, yaml or text, got %q", c.Output.Format)
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file, layering it over the
// defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file.
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
