// Package skos provides IRI constants for the SKOS labeling terms used as
// label fallbacks during ontology extraction.
package skos
