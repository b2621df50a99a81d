package ontology

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/vemonet/rdfdocs/graph"
)

// Config holds the immutable settings of an ontology loader.
type Config struct {
	// Source is the ontology location: a local file path or an http(s) URL.
	Source string

	// Format is the serialization hint (graph.FormatTurtle,
	// graph.FormatNTriples, graph.FormatRDFXML). graph.FormatAuto detects
	// from the extension and Content-Type.
	Format string

	// Timeout bounds the HTTP fetch for URL sources. Ignored for files.
	Timeout time.Duration

	// Logger receives debug output. Nil means slog.Default().
	Logger *slog.Logger
}

// DefaultConfig returns a Config with auto-detected format and a 30s fetch
// timeout. Source must still be set.
func DefaultConfig() Config {
	return Config{
		Format:  graph.FormatAuto,
		Timeout: 30 * time.Second,
	}
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.Source == "" {
		return fmt.Errorf("source is required")
	}
	if c.Format != graph.FormatAuto {
		if _, err := graph.ParseFormat(c.Format); err != nil {
			return err
		}
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", c.Timeout)
	}
	return nil
}
