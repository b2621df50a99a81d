package dc

// ElementsNamespace is the legacy Dublin Core elements namespace.
const ElementsNamespace = "http://purl.org/dc/elements/1.1/"

// TermsNamespace is the DCMI metadata terms namespace.
const TermsNamespace = "http://purl.org/dc/terms/"

const (
	// Title is the legacy dc:title property.
	Title = ElementsNamespace + "title"

	// TermsTitle is the dcterms:title property.
	TermsTitle = TermsNamespace + "title"

	// TermsDescription is the dcterms:description property.
	TermsDescription = TermsNamespace + "description"
)
