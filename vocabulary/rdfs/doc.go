// Package rdfs provides IRI constants for the RDF Schema vocabulary,
// plus rdf:type from the core RDF namespace.
package rdfs
