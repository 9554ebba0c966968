package ontograph

// An OntologyResource abstracts a class, property, datatype or fact to a
// general identity-bearing resource. Every typed resource in the model
// (Class, Property, Datatype, Fact, Literal) satisfies it.
type OntologyResource interface {
	GetURI() string
	Fingerprint() Fingerprint
}
