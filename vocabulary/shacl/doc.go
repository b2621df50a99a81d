// Package shacl provides IRI constants for the SHACL terms that annotate
// example SPARQL queries on public endpoints.
//
// SHACL is a shapes/constraints vocabulary, but its sh:SPARQLExecutable
// class and sh:select/sh:ask/sh:construct/sh:describe properties double as a
// convention for publishing runnable example queries alongside endpoint
// metadata. The examples loader retrieves exactly that convention.
package shacl
