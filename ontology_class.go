package ontograph

// ClassKind discriminates the OWL/RDFS variant a Class represents. The
// kind is fixed at construction time and changed in place only by
// ClassModel.Reclassify, which the decoder applies to unionOf/
// intersectionOf/complementOf/oneOf subjects (§4.9 step 6). Restriction
// variant refinement (§4.9 step 8) changes RestrictionInfo, not the kind.
type ClassKind uint8

const (
	ClassPlainOWL ClassKind = iota
	ClassPlainRDFS
	ClassRestriction
	ClassEnumerate
	ClassDataRange
	ClassUnion
	ClassIntersection
	ClassComplement
)

// RestrictionVariant discriminates the constraint an OWL restriction class
// expresses.
type RestrictionVariant uint8

const (
	VariantUnset RestrictionVariant = iota
	VariantCardinality
	VariantAllValuesFrom
	VariantSomeValuesFrom
	VariantHasValue
)

// RestrictionInfo holds the fields specific to a Restriction class. Only
// populated when Class.Kind == ClassRestriction. The variant is refinable
// once (§4.6): subsequent refinement attempts are ignored with a warning.
type RestrictionInfo struct {
	OnProperty Fingerprint
	Variant    RestrictionVariant

	// VariantCardinality
	MinCardinality int
	MaxCardinality int
	MinActive      bool
	MaxActive      bool

	// VariantAllValuesFrom / VariantSomeValuesFrom
	TargetClass Fingerprint

	// VariantHasValue
	HasValueResource Fingerprint
	HasValueLiteral  *Literal
	HasValueIsFact   bool
}

// Class represents a class from an ontology: a plain OWL/RDFS class, an
// OWL restriction, an enumerated class (oneOf over facts), a data range
// (oneOf over literals), or a union/intersection/complement composite.
type Class struct {
	Resource
	Kind        ClassKind
	Deprecated  bool
	Restriction *RestrictionInfo // non-nil iff Kind == ClassRestriction
	Label       map[string]string
	Comment     map[string]string
}

// NewClass creates a plain OWL class resource.
func NewClass(iri string) *Class {
	return &Class{Resource: NewIRIResource(iri), Kind: ClassPlainOWL, Label: map[string]string{}, Comment: map[string]string{}}
}

// NewBlankClass creates a plain class backed by a blank node, for anonymous
// restriction/composite classes built in code. FromGraph does not call it.
func NewBlankClass(label string) *Class {
	return &Class{Resource: NewBlankResource(label), Kind: ClassPlainOWL, Label: map[string]string{}, Comment: map[string]string{}}
}

// ClassModel is the T-Box container for classes plus their taxonomies:
// SubClassOf, EquivalentClass, DisjointWith, UnionOf, IntersectionOf,
// ComplementOf (single-member: the complement target) and OneOf (covering
// both enumerate and data-range membership lists).
type ClassModel struct {
	classes   map[Fingerprint]*Class
	datatypes map[Fingerprint]*Datatype

	SubClassOf      *Taxonomy
	EquivalentClass *Taxonomy
	DisjointWith    *Taxonomy
	UnionOf         *Taxonomy
	IntersectionOf  *Taxonomy
	ComplementOf    *Taxonomy
	OneOf           *Taxonomy
}

// NewClassModel creates an empty class model.
func NewClassModel() *ClassModel {
	return &ClassModel{
		classes:         map[Fingerprint]*Class{},
		datatypes:       map[Fingerprint]*Datatype{},
		SubClassOf:      NewTaxonomy(),
		EquivalentClass: NewTaxonomy(),
		DisjointWith:    NewTaxonomy(),
		UnionOf:         NewTaxonomy(),
		IntersectionOf:  NewTaxonomy(),
		ComplementOf:    NewTaxonomy(),
		OneOf:           NewTaxonomy(),
	}
}

// Register adds a class to the model, returning the stored instance. If a
// class with the same fingerprint already exists, the existing instance is
// returned unchanged (registration never mutates kind/flags after first
// construction except through the explicit refinement helpers).
func (cm *ClassModel) Register(c *Class) *Class {
	if existing, ok := cm.classes[c.FP]; ok {
		return existing
	}
	cm.classes[c.FP] = c
	return c
}

// RegisterDatatype adds a datatype resource to the model's side table.
func (cm *ClassModel) RegisterDatatype(dt *Datatype) *Datatype {
	if existing, ok := cm.datatypes[dt.FP]; ok {
		return existing
	}
	cm.datatypes[dt.FP] = dt
	return dt
}

// Get returns the class with the given fingerprint, or nil if absent.
func (cm *ClassModel) Get(fp Fingerprint) *Class {
	return cm.classes[fp]
}

// GetByURI returns the class with the given IRI, or nil if absent.
func (cm *ClassModel) GetByURI(iri string) *Class {
	return cm.classes[NewIRIResource(iri).FP]
}

// GetDatatype returns the datatype resource with the given fingerprint, if
// any is registered.
func (cm *ClassModel) GetDatatype(fp Fingerprint) *Datatype {
	return cm.datatypes[fp]
}

// Has reports whether a class with the given fingerprint is registered.
func (cm *ClassModel) Has(fp Fingerprint) bool {
	_, ok := cm.classes[fp]
	return ok
}

// Classes returns every registered class. Order is not guaranteed.
func (cm *ClassModel) Classes() []*Class {
	out := make([]*Class, 0, len(cm.classes))
	for _, c := range cm.classes {
		out = append(out, c)
	}
	return out
}

// Len returns the number of registered classes.
func (cm *ClassModel) Len() int {
	return len(cm.classes)
}

// Reclassify changes a class's kind in place. Used by the decoder when a
// subject declared as a plain class is later discovered to carry a
// unionOf/intersectionOf/complementOf/oneOf axiom (§4.9 step 6, §9).
func (cm *ClassModel) Reclassify(fp Fingerprint, kind ClassKind) {
	if c, ok := cm.classes[fp]; ok {
		c.Kind = kind
	}
}
