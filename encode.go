package ontograph

// This file implements §4.10: the ontology → graph encoder. It emits the
// ontology header triple, structural declarations for a subsequent decode
// (class/property/restriction declarations, domain/range), and the union
// of every taxonomy's triple projection, each subject to the
// includeInferences filter. unionOf, intersectionOf and oneOf memberships
// are written as one direct triple per member, not as rdf:first/rdf:rest
// lists, so FromGraph does not rebuild those memberships from this output.

// fingerprintResolver resolves a fingerprint back to the IRI of whichever
// registered resource produced it, across classes, properties and facts.
type fingerprintResolver struct {
	classes map[Fingerprint]string
	props   map[Fingerprint]string
	facts   map[Fingerprint]string
}

func newFingerprintResolver(o *Ontology) *fingerprintResolver {
	r := &fingerprintResolver{
		classes: map[Fingerprint]string{},
		props:   map[Fingerprint]string{},
		facts:   map[Fingerprint]string{},
	}
	for _, c := range o.Classes.Classes() {
		r.classes[c.FP] = c.GetURI()
	}
	for _, p := range o.Properties.Properties() {
		r.props[p.FP] = p.GetURI()
	}
	for _, f := range o.Data.Facts() {
		r.facts[f.FP] = f.GetURI()
	}
	return r
}

// ToGraph encodes the ontology into g: the ontology header triple,
// structural T-Box declarations, and the union of every taxonomy's triple
// projection. includeInferences=false drops entries whose Inferred flag is
// true. The graph's context is the ontology IRI (GraphStore.GetURI is
// expected to already reflect this for the target store).
func (o *Ontology) ToGraph(g GraphStore, includeInferences bool) error {
	resolver := newFingerprintResolver(o)

	if err := g.AddTripleUnchecked(Triple{
		Subject:   NewResourceTerm(o.Name),
		Predicate: NewResourceTerm(RDFType),
		Object:    NewResourceTerm(OWLOntology),
	}); err != nil {
		return err
	}
	for _, iri := range o.GetImports() {
		if err := g.AddTripleUnchecked(Triple{Subject: NewResourceTerm(o.Name), Predicate: NewResourceTerm(OWLImports), Object: NewResourceTerm(iri)}); err != nil {
			return err
		}
	}
	if v := o.GetVersion(); v != "" {
		if err := g.AddTripleUnchecked(Triple{Subject: NewResourceTerm(o.Name), Predicate: NewResourceTerm(OWLVersionInfo), Object: NewLiteralTerm(v, "", "")}); err != nil {
			return err
		}
	}

	if err := encodeClassDeclarations(g, o); err != nil {
		return err
	}
	if err := encodePropertyDeclarations(g, o); err != nil {
		return err
	}

	projections := []struct {
		tax    *Taxonomy
		predFn func(TaxonomyEntry) (string, bool)
		resolveSubj, resolveObj func(Fingerprint) (Term, bool)
	}{
		{o.Classes.SubClassOf, constPred(RDFSSubClassOf), resolver.classTerm, resolver.classTerm},
		{o.Classes.EquivalentClass, constPred(OWLEquivalentClass), resolver.classTerm, resolver.classTerm},
		{o.Classes.DisjointWith, constPred(OWLDisjointWith), resolver.classTerm, resolver.classTerm},
		{o.Classes.UnionOf, constPred(OWLUnionOf), resolver.classTerm, resolver.classTerm},
		{o.Classes.IntersectionOf, constPred(OWLIntersectionOf), resolver.classTerm, resolver.classTerm},
		{o.Classes.ComplementOf, constPred(OWLComplementOf), resolver.classTerm, resolver.classTerm},
		{o.Properties.SubPropertyOf, constPred(RDFSSubPropertyOf), resolver.propTerm, resolver.propTerm},
		{o.Properties.EquivalentProperty, constPred(OWLEquivalentProperty), resolver.propTerm, resolver.propTerm},
		{o.Properties.InverseOf, constPred(OWLInverseOf), resolver.propTerm, resolver.propTerm},
		{o.Data.ClassType, constPred(RDFType), resolver.factTerm, resolver.classTerm},
		{o.Data.SameAs, constPred(OWLSameAs), resolver.factTerm, resolver.factTerm},
		{o.Data.DifferentFrom, constPred(OWLDifferentFrom), resolver.factTerm, resolver.factTerm},
	}
	for _, proj := range projections {
		if err := emitTaxonomy(g, proj.tax, proj.predFn, proj.resolveSubj, proj.resolveObj, includeInferences); err != nil {
			return err
		}
	}

	if err := emitOneOf(g, o, resolver, includeInferences); err != nil {
		return err
	}
	if err := emitAssertions(g, o, resolver, includeInferences); err != nil {
		return err
	}
	return nil
}

func constPred(iri string) func(TaxonomyEntry) (string, bool) {
	return func(TaxonomyEntry) (string, bool) { return iri, true }
}

func (r *fingerprintResolver) classTerm(fp Fingerprint) (Term, bool) {
	if iri, ok := r.classes[fp]; ok {
		return NewResourceTerm(iri), true
	}
	return "", false
}

func (r *fingerprintResolver) propTerm(fp Fingerprint) (Term, bool) {
	if iri, ok := r.props[fp]; ok {
		return NewResourceTerm(iri), true
	}
	return "", false
}

func (r *fingerprintResolver) factTerm(fp Fingerprint) (Term, bool) {
	if iri, ok := r.facts[fp]; ok {
		return NewResourceTerm(iri), true
	}
	return "", false
}

func emitTaxonomy(g GraphStore, t *Taxonomy, predFn func(TaxonomyEntry) (string, bool), resolveSubj, resolveObj func(Fingerprint) (Term, bool), includeInferences bool) error {
	if t == nil {
		return nil
	}
	for _, e := range t.Entries() {
		if !includeInferences && e.Inferred {
			continue
		}
		predIRI, ok := predFn(e)
		if !ok {
			continue
		}
		subjTerm, ok := resolveSubj(e.Subject)
		if !ok {
			continue
		}
		objTerm, ok := resolveObj(e.Object)
		if !ok {
			continue
		}
		if err := g.AddTripleUnchecked(Triple{Subject: subjTerm, Predicate: NewResourceTerm(predIRI), Object: objTerm}); err != nil {
			return err
		}
	}
	return nil
}

// emitOneOf handles the OneOf taxonomy specially since its object may be
// either a fact (enumerate classes) or a literal (data-range classes).
func emitOneOf(g GraphStore, o *Ontology, resolver *fingerprintResolver, includeInferences bool) error {
	for _, e := range o.Classes.OneOf.Entries() {
		if !includeInferences && e.Inferred {
			continue
		}
		subjTerm, ok := resolver.classTerm(e.Subject)
		if !ok {
			continue
		}
		if lit := o.Data.GetLiteral(e.Object); lit != nil {
			if err := g.AddTripleUnchecked(Triple{
				Subject:   subjTerm,
				Predicate: NewResourceTerm(OWLOneOf),
				Object:    NewLiteralTerm(lit.Lexical, lit.Language, lit.Datatype),
			}); err != nil {
				return err
			}
			continue
		}
		if objTerm, ok := resolver.factTerm(e.Object); ok {
			if err := g.AddTripleUnchecked(Triple{Subject: subjTerm, Predicate: NewResourceTerm(OWLOneOf), Object: objTerm}); err != nil {
				return err
			}
		}
	}
	return nil
}

// emitAssertions resolves each entry's predicate as the asserted property's
// own IRI (not a fixed constant) and its object as either a fact or a
// literal.
func emitAssertions(g GraphStore, o *Ontology, resolver *fingerprintResolver, includeInferences bool) error {
	for _, e := range o.Data.Assertions.Entries() {
		if !includeInferences && e.Inferred {
			continue
		}
		predIRI, ok := resolver.props[e.Predicate]
		if !ok {
			continue
		}
		subjTerm, ok := resolver.factTerm(e.Subject)
		if !ok {
			continue
		}
		if lit := o.Data.GetLiteral(e.Object); lit != nil {
			if err := g.AddTripleUnchecked(Triple{
				Subject:   subjTerm,
				Predicate: NewResourceTerm(predIRI),
				Object:    NewLiteralTerm(lit.Lexical, lit.Language, lit.Datatype),
			}); err != nil {
				return err
			}
			continue
		}
		if objTerm, ok := resolver.factTerm(e.Object); ok {
			if err := g.AddTripleUnchecked(Triple{Subject: subjTerm, Predicate: NewResourceTerm(predIRI), Object: objTerm}); err != nil {
				return err
			}
		}
	}
	return nil
}

// encodeClassDeclarations emits rdf:type declarations and restriction
// defining triples for every user-defined (non-BASE) class.
func encodeClassDeclarations(g GraphStore, o *Ontology) error {
	for _, c := range o.Classes.Classes() {
		if IsBaseClass(c.FP) {
			continue
		}
		subjTerm := NewResourceTerm(c.GetURI())
		switch c.Kind {
		case ClassPlainOWL, ClassEnumerate, ClassUnion, ClassIntersection, ClassComplement:
			typeIRI := OWLClass
			if c.Deprecated {
				typeIRI = OWLDeprecatedClass
			}
			if err := g.AddTripleUnchecked(Triple{Subject: subjTerm, Predicate: NewResourceTerm(RDFType), Object: NewResourceTerm(typeIRI)}); err != nil {
				return err
			}
		case ClassPlainRDFS:
			if err := g.AddTripleUnchecked(Triple{Subject: subjTerm, Predicate: NewResourceTerm(RDFType), Object: NewResourceTerm(RDFSClass)}); err != nil {
				return err
			}
		case ClassDataRange:
			if err := g.AddTripleUnchecked(Triple{Subject: subjTerm, Predicate: NewResourceTerm(RDFType), Object: NewResourceTerm(OWLDataRange)}); err != nil {
				return err
			}
		case ClassRestriction:
			if err := encodeRestriction(g, o, c); err != nil {
				return err
			}
		}
		for lang, val := range c.Label {
			if err := g.AddTripleUnchecked(Triple{Subject: subjTerm, Predicate: NewResourceTerm(RDFSLabel), Object: NewLiteralTerm(val, lang, "")}); err != nil {
				return err
			}
		}
		for lang, val := range c.Comment {
			if err := g.AddTripleUnchecked(Triple{Subject: subjTerm, Predicate: NewResourceTerm(RDFSComment), Object: NewLiteralTerm(val, lang, "")}); err != nil {
				return err
			}
		}
	}
	return nil
}

func encodeRestriction(g GraphStore, o *Ontology, c *Class) error {
	ri := c.Restriction
	subjTerm := NewResourceTerm(c.GetURI())
	if err := g.AddTripleUnchecked(Triple{Subject: subjTerm, Predicate: NewResourceTerm(RDFType), Object: NewResourceTerm(OWLRestriction)}); err != nil {
		return err
	}
	if onProp, ok := lookupPropertyIRI(o, ri.OnProperty); ok {
		if err := g.AddTripleUnchecked(Triple{Subject: subjTerm, Predicate: NewResourceTerm(OWLOnProperty), Object: NewResourceTerm(onProp)}); err != nil {
			return err
		}
	}
	switch ri.Variant {
	case VariantCardinality:
		if ri.MinActive && ri.MaxActive && ri.MinCardinality == ri.MaxCardinality {
			return g.AddTripleUnchecked(Triple{Subject: subjTerm, Predicate: NewResourceTerm(OWLCardinality), Object: cardinalityLiteral(ri.MinCardinality)})
		}
		if ri.MinActive {
			if err := g.AddTripleUnchecked(Triple{Subject: subjTerm, Predicate: NewResourceTerm(OWLMinCardinality), Object: cardinalityLiteral(ri.MinCardinality)}); err != nil {
				return err
			}
		}
		if ri.MaxActive {
			if err := g.AddTripleUnchecked(Triple{Subject: subjTerm, Predicate: NewResourceTerm(OWLMaxCardinality), Object: cardinalityLiteral(ri.MaxCardinality)}); err != nil {
				return err
			}
		}
	case VariantAllValuesFrom:
		if targetIRI, ok := lookupClassIRI(o, ri.TargetClass); ok {
			return g.AddTripleUnchecked(Triple{Subject: subjTerm, Predicate: NewResourceTerm(OWLAllValuesFrom), Object: NewResourceTerm(targetIRI)})
		}
	case VariantSomeValuesFrom:
		if targetIRI, ok := lookupClassIRI(o, ri.TargetClass); ok {
			return g.AddTripleUnchecked(Triple{Subject: subjTerm, Predicate: NewResourceTerm(OWLSomeValuesFrom), Object: NewResourceTerm(targetIRI)})
		}
	case VariantHasValue:
		if ri.HasValueIsFact {
			if factIRI, ok := lookupFactIRI(o, ri.HasValueResource); ok {
				return g.AddTripleUnchecked(Triple{Subject: subjTerm, Predicate: NewResourceTerm(OWLHasValue), Object: NewResourceTerm(factIRI)})
			}
		} else if ri.HasValueLiteral != nil {
			lit := ri.HasValueLiteral
			return g.AddTripleUnchecked(Triple{Subject: subjTerm, Predicate: NewResourceTerm(OWLHasValue), Object: NewLiteralTerm(lit.Lexical, lit.Language, lit.Datatype)})
		}
	}
	return nil
}

func cardinalityLiteral(n int) Term {
	return NewLiteralTerm(itoa(n), "", XSDNonNegativeInteger)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	digits := []byte{}
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}

func lookupPropertyIRI(o *Ontology, fp Fingerprint) (string, bool) {
	if p := o.Properties.Get(fp); p != nil {
		return p.GetURI(), true
	}
	return "", false
}

func lookupClassIRI(o *Ontology, fp Fingerprint) (string, bool) {
	if c := o.Classes.Get(fp); c != nil {
		return c.GetURI(), true
	}
	return "", false
}

func lookupFactIRI(o *Ontology, fp Fingerprint) (string, bool) {
	if f := o.Data.GetFact(fp); f != nil {
		return f.GetURI(), true
	}
	return "", false
}

// encodePropertyDeclarations emits rdf:type and characteristic/domain/
// range declarations for every user-defined (non-BASE) property.
func encodePropertyDeclarations(g GraphStore, o *Ontology) error {
	for _, p := range o.Properties.Properties() {
		if IsBaseProperty(p.FP) {
			continue
		}
		subjTerm := NewResourceTerm(p.GetURI())
		var typeIRI string
		switch p.Kind {
		case PropertyAnnotation:
			typeIRI = OWLAnnotationProperty
		case PropertyDatatype:
			typeIRI = OWLDatatypeProperty
		case PropertyObject:
			typeIRI = OWLObjectProperty
		}
		if typeIRI != "" {
			if err := g.AddTripleUnchecked(Triple{Subject: subjTerm, Predicate: NewResourceTerm(RDFType), Object: NewResourceTerm(typeIRI)}); err != nil {
				return err
			}
		}
		characteristics := []struct {
			active bool
			iri    string
		}{
			{p.IsSymmetric, OWLSymmetricProperty},
			{p.IsAsymmetric, OWLAsymmetricProperty},
			{p.IsTransitive, OWLTransitiveProperty},
			{p.IsFunctional, OWLFunctionalProperty},
			{p.IsInverseFunctional, OWLInverseFunctionalProperty},
			{p.IsReflexive, OWLReflexiveProperty},
			{p.IsIrreflexive, OWLIrreflexiveProperty},
			{p.Deprecated, OWLDeprecatedProperty},
		}
		for _, ch := range characteristics {
			if !ch.active {
				continue
			}
			if err := g.AddTripleUnchecked(Triple{Subject: subjTerm, Predicate: NewResourceTerm(RDFType), Object: NewResourceTerm(ch.iri)}); err != nil {
				return err
			}
		}
		if p.Domain != 0 {
			if iri, ok := lookupClassIRI(o, p.Domain); ok {
				if err := g.AddTripleUnchecked(Triple{Subject: subjTerm, Predicate: NewResourceTerm(RDFSDomain), Object: NewResourceTerm(iri)}); err != nil {
					return err
				}
			}
		}
		if p.Range != 0 {
			if iri, ok := lookupClassIRI(o, p.Range); ok {
				if err := g.AddTripleUnchecked(Triple{Subject: subjTerm, Predicate: NewResourceTerm(RDFSRange), Object: NewResourceTerm(iri)}); err != nil {
					return err
				}
			}
		}
		for lang, val := range p.Label {
			if err := g.AddTripleUnchecked(Triple{Subject: subjTerm, Predicate: NewResourceTerm(RDFSLabel), Object: NewLiteralTerm(val, lang, "")}); err != nil {
				return err
			}
		}
		for lang, val := range p.Comment {
			if err := g.AddTripleUnchecked(Triple{Subject: subjTerm, Predicate: NewResourceTerm(RDFSComment), Object: NewLiteralTerm(val, lang, "")}); err != nil {
				return err
			}
		}
	}
	return nil
}
