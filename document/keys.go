package document

// Metadata keys shared by every loader.
const (
	// KeyOntology is the ontology source location (path or URL).
	KeyOntology = "ontology"

	// KeyEndpointURL is the SPARQL endpoint the document came from.
	KeyEndpointURL = "endpoint_url"
)

// Metadata keys for ontology documents.
const (
	// KeyURI is the IRI of the class or property.
	KeyURI = "uri"

	// KeyLabel is the resolved human-readable label.
	KeyLabel = "label"

	// KeyEntityType discriminates classes from properties.
	// Values: EntityTypeClass, EntityTypeProperty.
	KeyEntityType = "entity_type"

	// KeySubClassOf lists declared superclass IRIs.
	KeySubClassOf = "subclass_of"

	// KeyDomain lists declared rdfs:domain IRIs of a property.
	KeyDomain = "domain"

	// KeyRange lists declared rdfs:range IRIs of a property.
	KeyRange = "range"

	// KeyDescription is an optional comment or definition annotation.
	KeyDescription = "description"
)

// Metadata keys for SPARQL example documents.
const (
	// KeyID is a stable identifier derived from the endpoint and the
	// example resource IRI.
	KeyID = "id"

	// KeyQuery is the verbatim runnable query text.
	KeyQuery = "query"

	// KeyQueryType is the query form.
	// Values: "SELECT", "ASK", "CONSTRUCT", "DESCRIBE".
	KeyQueryType = "query_type"

	// KeyComment is the human-readable description of the example.
	KeyComment = "comment"
)

// Values for KeyEntityType.
const (
	EntityTypeClass    = "class"
	EntityTypeProperty = "property"
)
