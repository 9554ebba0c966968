package ontograph

// Datatype represents an ontological data type (e.g. strings, integers),
// referenced from property ranges and from literal-compatible class
// dispatch (§4.8). Datatypes are resources but are never added to a
// ClassModel's class map; they live in a side table on the ClassModel
// indexed by fingerprint.
type Datatype struct {
	Resource
	Label   map[string]string
	Comment map[string]string
}

// NewDatatype creates a datatype resource for the given IRI.
func NewDatatype(iri string) *Datatype {
	return &Datatype{Resource: NewIRIResource(iri)}
}

// datatypeCategory classifies a datatype IRI into one of the coarse
// categories the literal-compatible class dispatch of §4.8 cares about.
type datatypeCategory uint8

const (
	categoryOther datatypeCategory = iota
	categoryString
	categoryNumeric
	categoryBoolean
	categoryDateTime
)

func classifyDatatype(iri string) datatypeCategory {
	switch {
	case isStringDatatype(iri):
		return categoryString
	case isNumericDatatype(iri):
		return categoryNumeric
	case iri == XSDBoolean:
		return categoryBoolean
	case iri == XSDDate || iri == XSDTime || iri == XSDDateTime:
		return categoryDateTime
	default:
		return categoryOther
	}
}
