package skos

// Namespace is the SKOS core namespace.
const Namespace = "http://www.w3.org/2004/02/skos/core#"

const (
	// PrefLabel is the preferred lexical label of a concept.
	PrefLabel = Namespace + "prefLabel"

	// AltLabel is an alternative lexical label of a concept.
	AltLabel = Namespace + "altLabel"

	// Definition is a complete explanation of the meaning of a concept.
	Definition = Namespace + "definition"
)
