package graph

import (
	"testing"

	"github.com/knakk/rdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		want    rdf.Format
		wantErr bool
	}{
		{"turtle", rdf.Turtle, false},
		{"TURTLE", rdf.Turtle, false},
		{"ntriples", rdf.NTriples, false},
		{"rdfxml", rdf.RDFXML, false},
		{"auto", 0, true},
		{"jsonld", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			format, err := ParseFormat(tt.name)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, format)
		})
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name        string
		location    string
		contentType string
		want        rdf.Format
	}{
		{"ttl extension", "onto.ttl", "", rdf.Turtle},
		{"n3 extension", "onto.n3", "", rdf.Turtle},
		{"nt extension", "onto.nt", "", rdf.NTriples},
		{"owl extension defaults to rdfxml", "onto.owl", "", rdf.RDFXML},
		{"no extension defaults to rdfxml", "http://example.org/ontology", "", rdf.RDFXML},
		{"url query string ignored", "http://example.org/onto.ttl?raw=1", "", rdf.Turtle},
		{"content type wins over extension", "onto.owl", "text/turtle", rdf.Turtle},
		{"content type with charset", "onto", "text/turtle; charset=utf-8", rdf.Turtle},
		{"rdf+xml content type", "onto", "application/rdf+xml", rdf.RDFXML},
		{"n-triples content type", "onto", "application/n-triples", rdf.NTriples},
		{"unknown content type falls back to extension", "onto.ttl", "text/html", rdf.Turtle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectFormat(tt.location, tt.contentType))
		})
	}
}
