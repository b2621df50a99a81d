// Package sparqlexamples loads SHACL-described example queries from a SPARQL
// endpoint as documents for retrieval pipelines.
package sparqlexamples

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"net"
	"net/url"

	"github.com/google/uuid"
	"github.com/knakk/rdf"
	"github.com/knakk/sparql"

	"github.com/vemonet/rdfdocs/document"
)

// Sentinel errors, matched by callers with errors.Is.
var (
	// ErrEndpointUnreachable means the endpoint could not be reached or
	// timed out. Never retried; the caller decides whether to try again.
	ErrEndpointUnreachable = errors.New("sparql endpoint unreachable")

	// ErrQueryExecution means the endpoint was reached but returned an
	// error response, or a result set missing required bindings.
	ErrQueryExecution = errors.New("sparql query execution failed")
)

// Loader loads example queries from one endpoint. It holds only immutable
// configuration, so concurrent Load calls are safe; each issues its own
// requests with no caching or pagination.
type Loader struct {
	config Config
	repo   *sparql.Repo
	logger *slog.Logger
}

var _ document.Loader = (*Loader)(nil)

// New creates a Loader for the given configuration.
func New(config Config) (*Loader, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid sparql examples config: %w", err)
	}
	repo, err := sparql.NewRepo(config.Endpoint, sparql.Timeout(config.Timeout))
	if err != nil {
		return nil, fmt.Errorf("invalid sparql examples config: %w", err)
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{config: config, repo: repo, logger: logger}, nil
}

// Load probes the endpoint, retrieves its prefix declarations and example
// queries, and returns one document per example. Rows come back in whatever
// order the endpoint chose; the retrieval query does not sort them.
//
// Cancellation is checked between requests; within a request only the
// configured timeout applies, since the underlying client does not take a
// context.
func (l *Loader) Load(ctx context.Context) ([]document.Document, error) {
	if err := l.probe(ctx); err != nil {
		return nil, err
	}

	prefixes, err := l.prefixes(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := l.solutions(ctx, "examples")
	if err != nil {
		return nil, err
	}

	docs := make([]document.Document, 0, len(rows))
	for i, row := range rows {
		doc, err := l.buildDocument(row, prefixes)
		if err != nil {
			return nil, fmt.Errorf("example row %d: %w", i, err)
		}
		docs = append(docs, doc)
	}
	l.logger.Debug("Loaded sparql examples",
		slog.String("endpoint", l.config.Endpoint),
		slog.Int("documents", len(docs)))
	return docs, nil
}

// LazyLoad yields the documents one at a time. The endpoint is still
// queried eagerly on first pull; each new range restarts the full load.
func (l *Loader) LazyLoad(ctx context.Context) iter.Seq2[document.Document, error] {
	return document.Lazily(ctx, l.Load)
}

// probe runs a trivial ASK so a non-SPARQL endpoint fails fast, before the
// retrieval queries mask the cause.
func (l *Loader) probe(ctx context.Context) error {
	_, err := l.query(ctx, "ask-probe")
	return err
}

// prefixes returns the endpoint's declared prefix-to-namespace map.
func (l *Loader) prefixes(ctx context.Context) (map[string]string, error) {
	rows, err := l.solutions(ctx, "prefixes")
	if err != nil {
		return nil, err
	}
	prefixes := make(map[string]string, len(rows))
	for i, row := range rows {
		prefix, err := binding(row, "prefix")
		if err != nil {
			return nil, fmt.Errorf("prefix row %d: %w", i, err)
		}
		namespace, err := binding(row, "namespace")
		if err != nil {
			return nil, fmt.Errorf("prefix row %d: %w", i, err)
		}
		prefixes[prefix] = namespace
	}
	return prefixes, nil
}

func (l *Loader) buildDocument(row map[string]rdf.Term, prefixes map[string]string) (document.Document, error) {
	subject, err := binding(row, "sq")
	if err != nil {
		return document.Document{}, err
	}
	comment, err := binding(row, "comment")
	if err != nil {
		return document.Document{}, err
	}
	rawQuery, err := binding(row, "query")
	if err != nil {
		return document.Document{}, err
	}

	query := injectPrefixes(stripAnchorTags(rawQuery), prefixes)

	queryType, ok := "", false
	if pred, err := binding(row, "queryPred"); err == nil {
		queryType, ok = queryTypeFromPredicate(pred)
	}
	// Scanning the text also rejects rows whose query field holds
	// something other than a query.
	detected, err := DetectQueryType(query)
	if err != nil {
		return document.Document{}, fmt.Errorf("%w: %w", ErrQueryExecution, err)
	}
	if !ok {
		queryType = detected
	}

	id := uuid.NewSHA1(uuid.NameSpaceURL, []byte(l.config.Endpoint+"\n"+subject)).String()
	return document.Document{
		Content: comment,
		Metadata: map[string]string{
			document.KeyID:          id,
			document.KeyEndpointURL: l.config.Endpoint,
			document.KeyQuery:       query,
			document.KeyQueryType:   queryType,
			document.KeyComment:     comment,
		},
	}, nil
}

// solutions prepares and runs a bank query, returning its result rows.
func (l *Loader) solutions(ctx context.Context, name string) ([]map[string]rdf.Term, error) {
	res, err := l.query(ctx, name)
	if err != nil {
		return nil, err
	}
	return res.Solutions(), nil
}

func (l *Loader) query(ctx context.Context, name string) (*sparql.Results, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEndpointUnreachable, err)
	}
	q, err := bank.Prepare(name, struct{ Graph string }{l.config.ExamplesGraph})
	if err != nil {
		return nil, fmt.Errorf("prepare %s query: %w", name, err)
	}
	res, err := l.repo.Query(q)
	if err != nil {
		return nil, l.classify(name, err)
	}
	return res, nil
}

// classify splits query failures into transport errors (endpoint never
// answered) and execution errors (endpoint answered with garbage or an
// error payload).
func (l *Loader) classify(name string, err error) error {
	var urlErr *url.Error
	var netErr net.Error
	if errors.As(err, &urlErr) || errors.As(err, &netErr) {
		return fmt.Errorf("%w: %s: %s query: %w", ErrEndpointUnreachable, l.config.Endpoint, name, err)
	}
	return fmt.Errorf("%w: %s: %s query: %w", ErrQueryExecution, l.config.Endpoint, name, err)
}

// binding returns a required non-empty binding from a result row.
func binding(row map[string]rdf.Term, name string) (string, error) {
	term, ok := row[name]
	if !ok || term == nil || term.String() == "" {
		return "", fmt.Errorf("%w: missing binding ?%s", ErrQueryExecution, name)
	}
	return term.String(), nil
}
