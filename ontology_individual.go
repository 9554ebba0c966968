package ontograph

// Fact represents an A-Box individual: a resource identifying something the
// ontology makes assertions about.
type Fact struct {
	Resource
}

// NewFact creates a fact resource for the given IRI.
func NewFact(iri string) *Fact {
	return &Fact{Resource: NewIRIResource(iri)}
}

// NewBlankFact creates a fact resource backed by a blank node.
func NewBlankFact(label string) *Fact {
	return &Fact{Resource: NewBlankResource(label)}
}

// Data is the A-Box container: facts plus their taxonomies (ClassType,
// SameAs, DifferentFrom, Assertions) and the literal side-table referenced
// by assertion objects that are literals rather than facts.
type Data struct {
	facts    map[Fingerprint]*Fact
	literals map[Fingerprint]*Literal

	ClassType     *Taxonomy
	SameAs        *Taxonomy
	DifferentFrom *Taxonomy
	// Assertions carries arbitrary (subject fact, predicate property,
	// object) triples; the object may be either a fact or a literal
	// fingerprint. Use IsLiteralObject to disambiguate.
	Assertions *Taxonomy
}

// NewData creates an empty A-Box container.
func NewData() *Data {
	return &Data{
		facts:         map[Fingerprint]*Fact{},
		literals:      map[Fingerprint]*Literal{},
		ClassType:     NewTaxonomy(),
		SameAs:        NewTaxonomy(),
		DifferentFrom: NewTaxonomy(),
		Assertions:    NewTaxonomy(),
	}
}

// RegisterFact adds a fact to the model, returning the stored instance.
func (d *Data) RegisterFact(f *Fact) *Fact {
	if existing, ok := d.facts[f.FP]; ok {
		return existing
	}
	d.facts[f.FP] = f
	return f
}

// RegisterLiteral adds a literal to the model's literal side-table.
func (d *Data) RegisterLiteral(l *Literal) *Literal {
	if existing, ok := d.literals[l.FP]; ok {
		return existing
	}
	d.literals[l.FP] = l
	return l
}

// GetFact returns the fact with the given fingerprint, or nil if absent.
func (d *Data) GetFact(fp Fingerprint) *Fact {
	return d.facts[fp]
}

// GetFactByURI returns the fact with the given IRI, or nil if absent.
func (d *Data) GetFactByURI(iri string) *Fact {
	return d.facts[NewIRIResource(iri).FP]
}

// GetLiteral returns the literal with the given fingerprint, or nil if it
// is not registered as an assertion object.
func (d *Data) GetLiteral(fp Fingerprint) *Literal {
	return d.literals[fp]
}

// IsLiteralObject reports whether the given fingerprint names a literal
// registered in this Data container (as opposed to a fact).
func (d *Data) IsLiteralObject(fp Fingerprint) bool {
	_, ok := d.literals[fp]
	return ok
}

// HasFact reports whether a fact with the given fingerprint is registered.
func (d *Data) HasFact(fp Fingerprint) bool {
	_, ok := d.facts[fp]
	return ok
}

// Facts returns every registered fact. Order is not guaranteed.
func (d *Data) Facts() []*Fact {
	out := make([]*Fact, 0, len(d.facts))
	for _, f := range d.facts {
		out = append(out, f)
	}
	return out
}

// Literals returns every literal seen as an assertion object.
func (d *Data) Literals() []*Literal {
	out := make([]*Literal, 0, len(d.literals))
	for _, l := range d.literals {
		out = append(out, l)
	}
	return out
}

// Len returns the number of registered facts.
func (d *Data) Len() int {
	return len(d.facts)
}
