package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Ontology.Format != "auto" {
		t.Errorf("expected auto format, got %s", cfg.Ontology.Format)
	}
	if cfg.Ontology.Timeout != 30*time.Second {
		t.Errorf("expected 30s ontology timeout, got %s", cfg.Ontology.Timeout)
	}
	if cfg.Examples.Timeout != 30*time.Second {
		t.Errorf("expected 30s examples timeout, got %s", cfg.Examples.Timeout)
	}
	if cfg.Output.Format != OutputJSON {
		t.Errorf("expected json output by default, got %s", cfg.Output.Format)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid default config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "explicit turtle format",
			modify:  func(c *Config) { c.Ontology.Format = "turtle" },
			wantErr: false,
		},
		{
			name:    "unknown ontology format",
			modify:  func(c *Config) { c.Ontology.Format = "jsonld" },
			wantErr: true,
		},
		{
			name:    "negative ontology timeout",
			modify:  func(c *Config) { c.Ontology.Timeout = -time.Second },
			wantErr: true,
		},
		{
			name:    "negative examples timeout",
			modify:  func(c *Config) { c.Examples.Timeout = -time.Second },
			wantErr: true,
		},
		{
			name:    "unknown output format",
			modify:  func(c *Config) { c.Output.Format = "xml" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected validation error: %v", err)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
ontology:
  format: turtle
  timeout: 10s
examples:
  endpoint: https://sparql.uniprot.org/sparql/
  graph: http://example.org/graph
output:
  format: text
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}
	if cfg.Ontology.Format != "turtle" {
		t.Errorf("expected turtle format, got %s", cfg.Ontology.Format)
	}
	if cfg.Ontology.Timeout != 10*time.Second {
		t.Errorf("expected 10s timeout, got %s", cfg.Ontology.Timeout)
	}
	if cfg.Examples.Endpoint != "https://sparql.uniprot.org/sparql/" {
		t.Errorf("unexpected endpoint %s", cfg.Examples.Endpoint)
	}
	if cfg.Output.Format != OutputText {
		t.Errorf("expected text output, got %s", cfg.Output.Format)
	}

	// Unset fields keep their defaults.
	if cfg.Examples.Timeout != 30*time.Second {
		t.Errorf("expected default examples timeout, got %s", cfg.Examples.Timeout)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	cfg := DefaultConfig()
	cfg.Examples.Endpoint = "https://query.wikidata.org/sparql"
	if err := cfg.SaveToFile(path); err != nil {
		t.Fatalf("SaveToFile failed: %v", err)
	}

	loaded, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}
	if loaded.Examples.Endpoint != cfg.Examples.Endpoint {
		t.Errorf("endpoint did not round-trip: %s", loaded.Examples.Endpoint)
	}
}
