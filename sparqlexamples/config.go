package sparqlexamples

import (
	"fmt"
	"log/slog"
	"net/url"
	"time"
)

// Config holds the immutable settings of an examples loader.
type Config struct {
	// Endpoint is the SPARQL endpoint URL. Required.
	Endpoint string

	// ExamplesGraph optionally names the graph holding the examples. When
	// set, the retrieval patterns are wrapped in GRAPH <iri> { ... };
	// otherwise the endpoint's default graph is queried.
	ExamplesGraph string

	// Timeout bounds each request to the endpoint.
	Timeout time.Duration

	// Logger receives debug output. Nil means slog.Default().
	Logger *slog.Logger
}

// DefaultConfig returns a Config with a 30s request timeout. Endpoint must
// still be set.
func DefaultConfig() Config {
	return Config{
		Timeout: 30 * time.Second,
	}
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("endpoint is required")
	}
	u, err := url.Parse(c.Endpoint)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("endpoint %q is not an absolute URL", c.Endpoint)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", c.Timeout)
	}
	return nil
}
