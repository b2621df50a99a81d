package rdfs

// Namespace is the RDF Schema namespace.
const Namespace = "http://www.w3.org/2000/01/rdf-schema#"

// Type is rdf:type, from the core RDF namespace rather than RDF Schema.
const Type = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"

// Class and annotation IRIs.
const (
	// Class is the RDFS class of all classes.
	Class = Namespace + "Class"

	// Label is the human-readable name of a resource.
	Label = Namespace + "label"

	// Comment is the human-readable description of a resource.
	Comment = Namespace + "comment"
)

// Schema relation IRIs.
const (
	// SubClassOf links a class to its superclass.
	SubClassOf = Namespace + "subClassOf"

	// Domain declares the subject class of a property.
	Domain = Namespace + "domain"

	// Range declares the object class or datatype of a property.
	Range = Namespace + "range"
)
