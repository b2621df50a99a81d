package owl

// Namespace is the OWL 2 namespace.
const Namespace = "http://www.w3.org/2002/07/owl#"

const (
	// Class is the OWL class of all classes.
	Class = Namespace + "Class"

	// ObjectProperty relates individuals to individuals.
	ObjectProperty = Namespace + "ObjectProperty"

	// DatatypeProperty relates individuals to literal values.
	DatatypeProperty = Namespace + "DatatypeProperty"

	// Ontology types the ontology document itself.
	Ontology = Namespace + "Ontology"
)
