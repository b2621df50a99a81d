package graph

import (
	"fmt"
	"mime"
	"path"
	"strings"

	"github.com/knakk/rdf"
)

// FormatAuto selects format detection from the source location and the
// Content-Type of the response, falling back to RDF/XML (the most common
// OWL serialization).
const FormatAuto = "auto"

// Serialization format names recognized in configuration.
const (
	FormatTurtle   = "turtle"
	FormatNTriples = "ntriples"
	FormatRDFXML   = "rdfxml"
)

// FormatNames lists the recognized format configuration values.
var FormatNames = []string{FormatAuto, FormatTurtle, FormatNTriples, FormatRDFXML}

// ParseFormat maps a configuration value to an rdf.Format. FormatAuto is not
// a concrete format and is rejected here; resolve it with DetectFormat first.
func ParseFormat(name string) (rdf.Format, error) {
	switch strings.ToLower(name) {
	case FormatTurtle:
		return rdf.Turtle, nil
	case FormatNTriples:
		return rdf.NTriples, nil
	case FormatRDFXML:
		return rdf.RDFXML, nil
	default:
		return 0, fmt.Errorf("unknown RDF format %q (supported: %s)", name, strings.Join(FormatNames[1:], ", "))
	}
}

// DetectFormat guesses the serialization from the source location extension
// and, for HTTP sources, the response Content-Type. Defaults to RDF/XML.
func DetectFormat(location, contentType string) rdf.Format {
	if contentType != "" {
		if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
			switch mediaType {
			case "text/turtle", "application/x-turtle":
				return rdf.Turtle
			case "application/n-triples":
				return rdf.NTriples
			case "application/rdf+xml", "application/owl+xml":
				return rdf.RDFXML
			}
		}
	}

	switch strings.ToLower(path.Ext(stripQuery(location))) {
	case ".ttl", ".n3":
		return rdf.Turtle
	case ".nt":
		return rdf.NTriples
	default:
		return rdf.RDFXML
	}
}

func stripQuery(location string) string {
	if i := strings.IndexAny(location, "?#"); i >= 0 {
		return location[:i]
	}
	return location
}
