// Package ontology loads an OWL ontology and extracts its classes and
// properties as documents for retrieval pipelines.
package ontology

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/knakk/rdf"

	"github.com/vemonet/rdfdocs/document"
	"github.com/vemonet/rdfdocs/graph"
)

// Sentinel errors, matched by callers with errors.Is.
var (
	// ErrSourceUnavailable means the ontology file or URL could not be read.
	ErrSourceUnavailable = errors.New("ontology source unavailable")

	// ErrParse means the fetched content is not valid RDF in the effective
	// format. The underlying parser diagnostic is preserved in the chain.
	ErrParse = errors.New("ontology parse failed")
)

// Loader loads one ontology source. It holds only immutable configuration,
// so concurrent Load calls are safe; each performs an independent fetch with
// no caching between calls.
type Loader struct {
	config Config
	client *http.Client
	logger *slog.Logger
}

var _ document.Loader = (*Loader)(nil)

// New creates a Loader for the given configuration.
func New(config Config) (*Loader, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid ontology config: %w", err)
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		config: config,
		client: &http.Client{Timeout: config.Timeout},
		logger: logger,
	}, nil
}

// Load fetches and parses the ontology, then returns one document per class
// and one per property: classes first, then properties, each group sorted by
// IRI. A failure aborts the whole load.
func (l *Loader) Load(ctx context.Context) ([]document.Document, error) {
	body, contentType, err := l.open(ctx)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	format := l.format(contentType)
	g, err := graph.Decode(body, format)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrParse, l.config.Source, err)
	}
	l.logger.Debug("Parsed ontology",
		slog.String("source", l.config.Source),
		slog.Int("triples", g.Len()))

	docs := l.classDocuments(g)
	docs = append(docs, l.propertyDocuments(g)...)
	l.logger.Debug("Extracted ontology documents",
		slog.String("source", l.config.Source),
		slog.Int("documents", len(docs)))
	return docs, nil
}

// LazyLoad yields the documents one at a time. The ontology is still
// fetched and parsed eagerly on first pull; each new range restarts the
// full load.
func (l *Loader) LazyLoad(ctx context.Context) iter.Seq2[document.Document, error] {
	return document.Lazily(ctx, l.Load)
}

// open returns the ontology content and, for HTTP sources, the response
// Content-Type. Exactly one fetch attempt; failures are never retried.
func (l *Loader) open(ctx context.Context) (io.ReadCloser, string, error) {
	if !isURL(l.config.Source) {
		f, err := os.Open(l.config.Source)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
		}
		return f, "", nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.config.Source, nil)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	req.Header.Set("Accept", "text/turtle, application/rdf+xml, application/n-triples")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, "", fmt.Errorf("%w: %s returned %s", ErrSourceUnavailable, l.config.Source, resp.Status)
	}
	return resp.Body, resp.Header.Get("Content-Type"), nil
}

func (l *Loader) format(contentType string) rdf.Format {
	if l.config.Format != graph.FormatAuto {
		format, _ := graph.ParseFormat(l.config.Format)
		return format
	}
	return graph.DetectFormat(l.config.Source, contentType)
}

func isURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}
