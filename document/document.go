// Package document defines the document shape produced by the RDF loaders
// and the loading contract shared between them.
package document

import (
	"context"
	"iter"
	"sort"
)

// Document is a text body plus flat string metadata, ready for ingestion
// into a vector store or any other retrieval pipeline.
type Document struct {
	// Content is the human-readable text to embed: an entity label for
	// ontology documents, a query description for SPARQL example documents.
	Content string `json:"content" yaml:"content"`

	// Metadata records where the document came from and any structured
	// fields extracted alongside the content. Multi-valued fields are
	// joined with ", ".
	Metadata map[string]string `json:"metadata" yaml:"metadata"`
}

// MetadataKeys returns the metadata keys in sorted order.
func (d Document) MetadataKeys() []string {
	keys := make([]string, 0, len(d.Metadata))
	for k := range d.Metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Loader loads documents from an RDF source. Implementations hold only
// immutable configuration, so a single loader is safe for concurrent use;
// each call performs an independent fetch.
type Loader interface {
	// Load fetches the source and returns all documents. A failure aborts
	// the whole load; no partial list is ever returned.
	Load(ctx context.Context) ([]Document, error)

	// LazyLoad yields documents one at a time. The source is still fetched
	// eagerly on first pull; laziness only changes when the consumer
	// observes each document. The sequence is finite and restartable: every
	// new range re-runs the full fetch.
	LazyLoad(ctx context.Context) iter.Seq2[Document, error]
}

// Lazily adapts an eager load function to the LazyLoad contract. On failure
// it yields a single zero document with the error.
func Lazily(ctx context.Context, load func(context.Context) ([]Document, error)) iter.Seq2[Document, error] {
	return func(yield func(Document, error) bool) {
		docs, err := load(ctx)
		if err != nil {
			yield(Document{}, err)
			return
		}
		for _, doc := range docs {
			if !yield(doc, nil) {
				return
			}
		}
	}
}
