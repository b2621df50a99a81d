// Package graph provides a minimal in-memory triple index over RDF decoded
// with the knakk/rdf library, sized for ontologies that fit comfortably in
// memory. It is write-once: Decode builds the index, loaders read it.
package graph

import (
	"fmt"
	"io"
	"sort"

	"github.com/knakk/rdf"

	"github.com/vemonet/rdfdocs/vocabulary/rdfs"
)

// Graph indexes triples by subject and predicate for lookups during
// document extraction.
type Graph struct {
	triples []rdf.Triple
	spo     map[string]map[string][]rdf.Term
}

// Decode parses all triples from r in the given format and builds the index.
// The reader is fully consumed; no streaming.
func Decode(r io.Reader, format rdf.Format) (*Graph, error) {
	dec := rdf.NewTripleDecoder(r, format)
	triples, err := dec.DecodeAll()
	if err != nil {
		return nil, fmt.Errorf("decode RDF: %w", err)
	}

	g := &Graph{spo: make(map[string]map[string][]rdf.Term)}
	for _, t := range triples {
		g.add(t)
	}
	return g, nil
}

func (g *Graph) add(t rdf.Triple) {
	g.triples = append(g.triples, t)

	subj := t.Subj.String()
	pred := t.Pred.String()
	if g.spo[subj] == nil {
		g.spo[subj] = make(map[string][]rdf.Term)
	}
	g.spo[subj][pred] = append(g.spo[subj][pred], t.Obj)
}

// Len returns the number of triples in the graph.
func (g *Graph) Len() int {
	return len(g.triples)
}

// Objects returns all objects of (subject, predicate) in decode order.
func (g *Graph) Objects(subject, predicate string) []rdf.Term {
	return g.spo[subject][predicate]
}

// First returns the first object of (subject, predicate), if any.
func (g *Graph) First(subject, predicate string) (rdf.Term, bool) {
	objs := g.spo[subject][predicate]
	if len(objs) == 0 {
		return nil, false
	}
	return objs[0], true
}

// FirstLiteral returns the first literal object of (subject, predicate).
func (g *Graph) FirstLiteral(subject, predicate string) (string, bool) {
	for _, obj := range g.spo[subject][predicate] {
		if obj.Type() == rdf.TermLiteral {
			return obj.String(), true
		}
	}
	return "", false
}

// ObjectIRIs returns the IRI objects of (subject, predicate), skipping
// literals and blank nodes, in decode order.
func (g *Graph) ObjectIRIs(subject, predicate string) []string {
	var iris []string
	for _, obj := range g.spo[subject][predicate] {
		if obj.Type() == rdf.TermIRI {
			iris = append(iris, obj.String())
		}
	}
	return iris
}

// SubjectsTyped returns the IRI subjects declared with rdf:type equal to any
// of the given class IRIs. Blank-node subjects are skipped. The result is
// deduplicated and sorted so callers get a stable order regardless of the
// decoder's triple order.
func (g *Graph) SubjectsTyped(classes ...string) []string {
	wanted := make(map[string]bool, len(classes))
	for _, c := range classes {
		wanted[c] = true
	}

	seen := make(map[string]bool)
	var subjects []string
	for _, t := range g.triples {
		if t.Pred.String() != rdfs.Type {
			continue
		}
		if t.Subj.Type() != rdf.TermIRI || t.Obj.Type() != rdf.TermIRI {
			continue
		}
		if !wanted[t.Obj.String()] {
			continue
		}
		subj := t.Subj.String()
		if !seen[subj] {
			seen[subj] = true
			subjects = append(subjects, subj)
		}
	}
	sort.Strings(subjects)
	return subjects
}

// ObjectIRIsOf returns every distinct IRI that appears as the object of the
// given predicate anywhere in the graph, sorted.
func (g *Graph) ObjectIRIsOf(predicate string) []string {
	seen := make(map[string]bool)
	var iris []string
	for _, t := range g.triples {
		if t.Pred.String() != predicate || t.Obj.Type() != rdf.TermIRI {
			continue
		}
		obj := t.Obj.String()
		if !seen[obj] {
			seen[obj] = true
			iris = append(iris, obj)
		}
	}
	sort.Strings(iris)
	return iris
}
