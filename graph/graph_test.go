package graph

import (
	"strings"
	"testing"

	"github.com/knakk/rdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vemonet/rdfdocs/vocabulary/owl"
	"github.com/vemonet/rdfdocs/vocabulary/rdfs"
)

const fixture = `
@prefix ex: <http://example.org/> .
@prefix owl: <http://www.w3.org/2002/07/owl#> .
@prefix rdfs: <http://www.w3.org/2000/01/rdf-schema#> .

ex:Person a owl:Class ;
    rdfs:label "Person" ;
    rdfs:subClassOf ex:Agent .

ex:Agent a owl:Class .

ex:hasName a owl:DatatypeProperty ;
    rdfs:domain ex:Person .
`

func decodeFixture(t *testing.T) *Graph {
	t.Helper()
	g, err := Decode(strings.NewReader(fixture), rdf.Turtle)
	require.NoError(t, err)
	return g
}

func TestDecode(t *testing.T) {
	g := decodeFixture(t)
	assert.Equal(t, 6, g.Len())
}

func TestDecodeInvalid(t *testing.T) {
	_, err := Decode(strings.NewReader("this is not turtle at all {{{"), rdf.Turtle)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode RDF")
}

func TestSubjectsTyped(t *testing.T) {
	g := decodeFixture(t)

	t.Run("classes sorted and deduplicated", func(t *testing.T) {
		subjects := g.SubjectsTyped(owl.Class)
		assert.Equal(t, []string{"http://example.org/Agent", "http://example.org/Person"}, subjects)
	})

	t.Run("multiple types", func(t *testing.T) {
		subjects := g.SubjectsTyped(owl.Class, owl.DatatypeProperty)
		assert.Len(t, subjects, 3)
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, g.SubjectsTyped(owl.ObjectProperty))
	})
}

func TestFirstLiteral(t *testing.T) {
	g := decodeFixture(t)

	label, ok := g.FirstLiteral("http://example.org/Person", rdfs.Label)
	require.True(t, ok)
	assert.Equal(t, "Person", label)

	_, ok = g.FirstLiteral("http://example.org/Agent", rdfs.Label)
	assert.False(t, ok)
}

func TestObjectIRIs(t *testing.T) {
	g := decodeFixture(t)

	iris := g.ObjectIRIs("http://example.org/Person", rdfs.SubClassOf)
	assert.Equal(t, []string{"http://example.org/Agent"}, iris)

	// Literals are not IRIs.
	assert.Empty(t, g.ObjectIRIs("http://example.org/Person", rdfs.Label))
}

func TestObjectIRIsOf(t *testing.T) {
	g := decodeFixture(t)

	iris := g.ObjectIRIsOf(rdfs.Domain)
	assert.Equal(t, []string{"http://example.org/Person"}, iris)
}
