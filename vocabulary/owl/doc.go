// Package owl provides IRI constants for the OWL 2 vocabulary terms used
// during ontology extraction.
package owl
