package sparqlexamples

import (
	"bytes"

	"github.com/knakk/sparql"
)

// queryBank holds the fixed retrieval queries. Examples are expected to
// follow the SHACL convention: sh:SPARQLExecutable resources labeled with
// rdfs:label or rdfs:comment and carrying their text on sh:select, sh:ask,
// sh:construct or sh:describe. The Graph template argument optionally wraps
// the patterns in a named graph.
//
// The examples query adds no ORDER BY, so row order follows whatever the
// endpoint returns.
const queryBank = `
# tag: ask-probe
ASK { ?s ?p ?o }

# tag: prefixes
PREFIX sh: <http://www.w3.org/ns/shacl#>
SELECT DISTINCT ?prefix ?namespace
WHERE {
	{{if .Graph}}GRAPH <{{.Graph}}> {
	{{end}}[] sh:namespace ?namespace ;
		sh:prefix ?prefix .
	{{if .Graph}}}
	{{end}}
} ORDER BY ?prefix

# tag: examples
PREFIX sh: <http://www.w3.org/ns/shacl#>
PREFIX rdfs: <http://www.w3.org/2000/01/rdf-schema#>
SELECT DISTINCT ?sq ?comment ?query ?queryPred
WHERE {
	{{if .Graph}}GRAPH <{{.Graph}}> {
	{{end}}VALUES ?queryPred { sh:select sh:ask sh:construct sh:describe }
	?sq a sh:SPARQLExecutable ;
		rdfs:label|rdfs:comment ?comment ;
		?queryPred ?query .
	{{if .Graph}}}
	{{end}}
}
`

var bank = sparql.LoadBank(bytes.NewBufferString(queryBank))
