package ontology

import (
	"sort"
	"strings"

	"github.com/vemonet/rdfdocs/document"
	"github.com/vemonet/rdfdocs/graph"
	"github.com/vemonet/rdfdocs/vocabulary/dc"
	"github.com/vemonet/rdfdocs/vocabulary/owl"
	"github.com/vemonet/rdfdocs/vocabulary/rdfs"
	"github.com/vemonet/rdfdocs/vocabulary/skos"
)

// labelPredicates in preference order. The first bound literal wins; the IRI
// local name is the last resort.
var labelPredicates = []string{
	rdfs.Label,
	skos.PrefLabel,
	skos.AltLabel,
	dc.Title,
	dc.TermsTitle,
}

// descriptionPredicates in preference order.
var descriptionPredicates = []string{
	rdfs.Comment,
	skos.Definition,
	dc.TermsDescription,
}

// schemaNamespaces hold vocabulary terms, not domain classes. IRIs from
// these namespaces appearing as a domain or range are not emitted as
// implicit class documents.
var schemaNamespaces = []string{
	"http://www.w3.org/2001/XMLSchema#",
	"http://www.w3.org/1999/02/22-rdf-syntax-ns#",
	rdfs.Namespace,
	owl.Namespace,
}

// classDocuments builds one document per class: every subject typed
// owl:Class or rdfs:Class, unioned with IRIs used as a property domain or
// range (implicitly classes), sorted by IRI.
func (l *Loader) classDocuments(g *graph.Graph) []document.Document {
	classes := make(map[string]bool)
	for _, iri := range g.SubjectsTyped(owl.Class, rdfs.Class) {
		classes[iri] = true
	}
	for _, pred := range []string{rdfs.Domain, rdfs.Range} {
		for _, iri := range g.ObjectIRIsOf(pred) {
			if !isSchemaTerm(iri) {
				classes[iri] = true
			}
		}
	}

	iris := make([]string, 0, len(classes))
	for iri := range classes {
		iris = append(iris, iri)
	}
	sort.Strings(iris)

	docs := make([]document.Document, 0, len(iris))
	for _, iri := range iris {
		label := l.bestLabel(g, iri)
		meta := map[string]string{
			document.KeyURI:        iri,
			document.KeyLabel:      label,
			document.KeyEntityType: document.EntityTypeClass,
			document.KeyOntology:   l.config.Source,
		}
		setJoined(meta, document.KeySubClassOf, g.ObjectIRIs(iri, rdfs.SubClassOf))
		setDescription(meta, g, iri)
		docs = append(docs, document.Document{Content: label, Metadata: meta})
	}
	return docs
}

// propertyDocuments builds one document per owl:ObjectProperty or
// owl:DatatypeProperty, sorted by IRI.
func (l *Loader) propertyDocuments(g *graph.Graph) []document.Document {
	iris := g.SubjectsTyped(owl.ObjectProperty, owl.DatatypeProperty)

	docs := make([]document.Document, 0, len(iris))
	for _, iri := range iris {
		label := l.bestLabel(g, iri)
		meta := map[string]string{
			document.KeyURI:        iri,
			document.KeyLabel:      label,
			document.KeyEntityType: document.EntityTypeProperty,
			document.KeyOntology:   l.config.Source,
		}
		setJoined(meta, document.KeyDomain, g.ObjectIRIs(iri, rdfs.Domain))
		setJoined(meta, document.KeyRange, g.ObjectIRIs(iri, rdfs.Range))
		setDescription(meta, g, iri)
		docs = append(docs, document.Document{Content: label, Metadata: meta})
	}
	return docs
}

func (l *Loader) bestLabel(g *graph.Graph, iri string) string {
	for _, pred := range labelPredicates {
		if label, ok := g.FirstLiteral(iri, pred); ok && label != "" {
			return label
		}
	}
	return localName(iri)
}

func setDescription(meta map[string]string, g *graph.Graph, iri string) {
	for _, pred := range descriptionPredicates {
		if desc, ok := g.FirstLiteral(iri, pred); ok && desc != "" {
			meta[document.KeyDescription] = desc
			return
		}
	}
}

func setJoined(meta map[string]string, key string, values []string) {
	if len(values) > 0 {
		meta[key] = strings.Join(values, ", ")
	}
}

func isSchemaTerm(iri string) bool {
	for _, ns := range schemaNamespaces {
		if strings.HasPrefix(iri, ns) {
			return true
		}
	}
	return false
}

// localName extracts the fragment or last path segment of an IRI.
func localName(iri string) string {
	if i := strings.LastIndexAny(iri, "#/"); i >= 0 && i < len(iri)-1 {
		return iri[i+1:]
	}
	return iri
}
