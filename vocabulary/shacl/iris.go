package shacl

// Namespace is the SHACL namespace.
const Namespace = "http://www.w3.org/ns/shacl#"

// SPARQLExecutable types a resource carrying a runnable SPARQL query.
const SPARQLExecutable = Namespace + "SPARQLExecutable"

// Query text properties, one per query form.
const (
	Select    = Namespace + "select"
	Ask       = Namespace + "ask"
	Construct = Namespace + "construct"
	Describe  = Namespace + "describe"
)

// Prefix declaration properties.
const (
	// Prefix is the short prefix of a namespace declaration.
	Prefix = Namespace + "prefix"

	// PrefixNamespace is the namespace IRI of a declaration.
	PrefixNamespace = Namespace + "namespace"

	// Declare links a resource to its prefix declarations.
	Declare = Namespace + "declare"
)
