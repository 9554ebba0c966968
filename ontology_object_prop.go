package ontograph

// PropertyKind discriminates whether a Property is an annotation, datatype
// or object property. A property is at most one of these (§3 invariant 5).
type PropertyKind uint8

const (
	PropertyAnnotation PropertyKind = iota
	PropertyDatatype
	PropertyObject
)

// Property represents an annotation, datatype or object property from an
// ontology. Symmetric/transitive/inverseFunctional flags are only legal on
// object properties (§3); the decoder enforces this, callers constructing
// a Property directly are expected to respect it too.
type Property struct {
	Resource
	Kind                PropertyKind
	Deprecated          bool
	IsFunctional        bool
	IsInverseFunctional bool
	IsTransitive        bool
	IsSymmetric         bool
	IsAsymmetric        bool
	IsReflexive         bool
	IsIrreflexive       bool
	Domain              Fingerprint // 0 when unset
	Range               Fingerprint // 0 when unset
	Label               map[string]string
	Comment             map[string]string
}

// NewProperty creates a property resource of the given kind.
func NewProperty(iri string, kind PropertyKind) *Property {
	return &Property{Resource: NewIRIResource(iri), Kind: kind, Label: map[string]string{}, Comment: map[string]string{}}
}

// CanCarryObjectCharacteristics reports whether this property's kind may
// legally carry the symmetric/transitive/inverse-functional flags.
func (p *Property) CanCarryObjectCharacteristics() bool {
	return p.Kind == PropertyObject
}
