package ontograph

import (
	"strconv"
)

// DecodeOptions tunes the graph → ontology decoder of §4.9. The zero value
// is the default configuration.
type DecodeOptions struct {
	// StrictOnProperty is not read by FromGraph: a restriction with no
	// usable on-property is always skipped with a warning and is never
	// registered, whatever this field holds.
	StrictOnProperty bool
}

// predicateIndex is a prefetched, per-predicate view of a graph's triples
// (§4.9 step 2), built once up front so each decode pass avoids rescanning
// the whole graph.
type predicateIndex map[string][]Triple

// newClassWithKind constructs a class of a given kind with initialized
// label/comment maps, used throughout the decoder wherever a class other
// than plain-OWL is registered directly.
func newClassWithKind(iri string, kind ClassKind) *Class {
	return &Class{Resource: NewIRIResource(iri), Kind: kind, Label: map[string]string{}, Comment: map[string]string{}}
}

func buildPredicateIndex(trps []Triple) predicateIndex {
	idx := predicateIndex{}
	for _, t := range trps {
		p := t.Predicate.Value()
		idx[p] = append(idx[p], t)
	}
	return idx
}

// FromGraph decodes a flat RDF triple graph into a populated Ontology,
// following the fixed 15-pass pipeline of §4.9. It never aborts on
// recoverable anomalies: those are reported as Warnings, both returned and
// dispatched through the process-wide event channel (Dispatch).
func FromGraph(g GraphStore, opts DecodeOptions) (*Ontology, []Warning, error) {
	var warnings []Warning
	warn := func(w Warning) {
		warnings = append(warnings, w)
		Dispatch(w)
	}

	allTrps, err := g.GetAllTriples()
	if err != nil {
		return nil, nil, err
	}
	idx := buildPredicateIndex(allTrps)

	// Step 3: ontology header.
	name := g.GetURI()
	for _, t := range idx[RDFType] {
		if t.Object.Value() == OWLOntology {
			name = t.Subject.Value()
			break
		}
	}
	ont, err := NewOntology(name)
	if err != nil {
		return nil, warnings, err
	}

	// Step 1: expand BASE+DC so references resolve during decoding.
	ont.Expand()

	// Step 4: PropertyModel population, with opportunistic object-property
	// promotion.
	objectPropertySubjects := map[string]bool{}
	for _, t := range idx[RDFType] {
		switch t.Object.Value() {
		case OWLObjectProperty:
			objectPropertySubjects[t.Subject.Value()] = true
		}
	}
	for _, predicate := range []string{OWLSymmetricProperty, OWLTransitiveProperty, OWLInverseFunctionalProperty, OWLFunctionalProperty} {
		for _, t := range idx[RDFType] {
			if t.Object.Value() == predicate {
				objectPropertySubjects[t.Subject.Value()] = true
			}
		}
	}
	for _, t := range idx[RDFType] {
		iri := t.Subject.Value()
		switch t.Object.Value() {
		case OWLAnnotationProperty:
			ont.Properties.Register(NewProperty(iri, PropertyAnnotation))
		case OWLDatatypeProperty:
			ont.Properties.Register(NewProperty(iri, PropertyDatatype))
		case OWLObjectProperty:
			ont.Properties.Register(NewProperty(iri, PropertyObject))
		}
	}
	for iri := range objectPropertySubjects {
		fp := NewIRIResource(iri).FP
		if ont.Properties.Get(fp) == nil {
			ont.Properties.Register(NewProperty(iri, PropertyObject))
		}
	}
	applyPropertyCharacteristic(ont, idx, OWLSymmetricProperty, func(p *Property) { p.IsSymmetric = p.CanCarryObjectCharacteristics() })
	applyPropertyCharacteristic(ont, idx, OWLAsymmetricProperty, func(p *Property) { p.IsAsymmetric = true })
	applyPropertyCharacteristic(ont, idx, OWLTransitiveProperty, func(p *Property) { p.IsTransitive = p.CanCarryObjectCharacteristics() })
	applyPropertyCharacteristic(ont, idx, OWLInverseFunctionalProperty, func(p *Property) { p.IsInverseFunctional = p.CanCarryObjectCharacteristics() })
	applyPropertyCharacteristic(ont, idx, OWLFunctionalProperty, func(p *Property) { p.IsFunctional = true })
	applyPropertyCharacteristic(ont, idx, OWLReflexiveProperty, func(p *Property) { p.IsReflexive = true })
	applyPropertyCharacteristic(ont, idx, OWLIrreflexiveProperty, func(p *Property) { p.IsIrreflexive = true })
	applyPropertyCharacteristic(ont, idx, OWLDeprecatedProperty, func(p *Property) { p.Deprecated = true })

	// Step 5: ClassModel population.
	for _, t := range idx[RDFType] {
		iri := t.Subject.Value()
		switch t.Object.Value() {
		case OWLClass:
			ont.Classes.Register(NewClass(iri))
		case OWLDeprecatedClass:
			c := ont.Classes.Register(NewClass(iri))
			c.Deprecated = true
		case OWLDataRange:
			ont.Classes.Register(newClassWithKind(iri, ClassDataRange))
		case RDFSDatatype:
			ont.Classes.RegisterDatatype(NewDatatype(iri))
		case OWLRestriction:
			onPropTrps := selectBySubject(idx[OWLOnProperty], iri)
			if len(onPropTrps) == 0 {
				warn(Warning{Kind: WarningUndefinedReference, Message: "restriction has no on-property", Subject: iri})
				continue
			}
			onPropIRI := onPropTrps[0].Object.Value()
			onPropFP := NewIRIResource(onPropIRI).FP
			onProp := ont.Properties.Get(onPropFP)
			if onProp == nil || onProp.Kind == PropertyAnnotation || isReservedTerm(onPropIRI) {
				warn(Warning{Kind: WarningReservedOnProperty, Message: "restriction on-property is undeclared, an annotation property or a reserved term", Subject: iri})
				continue
			}
			restrictionClass := newClassWithKind(iri, ClassRestriction)
			restrictionClass.Restriction = &RestrictionInfo{OnProperty: onPropFP}
			ont.Classes.Register(restrictionClass)
		}
	}

	// Step 6: composites — reclassify, then walk rdf:first/rdf:rest lists.
	decodeComposite(ont, idx, idx[OWLUnionOf], ClassUnion, ont.Classes.UnionOf, warn)
	decodeComposite(ont, idx, idx[OWLIntersectionOf], ClassIntersection, ont.Classes.IntersectionOf, warn)
	for _, t := range idx[OWLComplementOf] {
		subjIRI := t.Subject.Value()
		subjFP := NewIRIResource(subjIRI).FP
		if c := ont.Classes.Get(subjFP); c != nil {
			ont.Classes.Reclassify(subjFP, ClassComplement)
		} else {
			ont.Classes.Register(newClassWithKind(subjIRI, ClassComplement))
		}
		targetFP := NewIRIResource(t.Object.Value()).FP
		ont.Classes.Register(NewClass(t.Object.Value()))
		ont.Classes.ComplementOf.Add(TaxonomyEntry{Subject: subjFP, Predicate: NewIRIResource(OWLComplementOf).FP, Object: targetFP})
	}
	decodeOneOfList(ont, idx, ClassEnumerate, warn)

	// Step 7: facts from rdf:type triples onto non-built-in, non-literal-
	// compatible classes.
	for _, t := range idx[RDFType] {
		objIRI := t.Object.Value()
		objFP := NewIRIResource(objIRI).FP
		cls := ont.Classes.Get(objFP)
		if cls == nil || IsBaseClass(objFP) || isLiteralCompatibleClass(objFP, ont.Classes) {
			continue
		}
		if objIRI == OWLClass || objIRI == OWLDeprecatedClass || objIRI == OWLRestriction || objIRI == OWLDataRange ||
			objIRI == OWLObjectProperty || objIRI == OWLDatatypeProperty || objIRI == OWLAnnotationProperty ||
			objIRI == OWLOntology || objIRI == OWLNamedIndividual {
			continue
		}
		subjIRI := t.Subject.Value()
		fact := ont.Data.RegisterFact(NewFact(subjIRI))
		ont.Data.ClassType.Add(TaxonomyEntry{Subject: fact.FP, Predicate: NewIRIResource(RDFType).FP, Object: objFP})
	}

	// Step 8: restriction refinement. Probe in documented order: cardinality,
	// hasValue, allValuesFrom, someValuesFrom.
	for _, c := range ont.Classes.Classes() {
		if c.Kind != ClassRestriction || c.Restriction == nil {
			continue
		}
		refineRestriction(ont, c, idx, warn)
	}

	// Step 9: domain/range.
	attachClassRef(ont, idx[RDFSDomain], func(p *Property, fp Fingerprint) { p.Domain = fp })
	attachClassRef(ont, idx[RDFSRange], func(p *Property, fp Fingerprint) { p.Range = fp })

	// Step 10: SubPropertyOf / EquivalentProperty / InverseOf, kind-checked.
	for _, t := range idx[RDFSSubPropertyOf] {
		linkProperties(ont, t, ont.Properties.SubPropertyOf, false, warn)
	}
	for _, t := range idx[OWLEquivalentProperty] {
		linkProperties(ont, t, ont.Properties.EquivalentProperty, false, warn)
	}
	for _, t := range idx[OWLInverseOf] {
		linkProperties(ont, t, ont.Properties.InverseOf, true, warn)
	}

	// Step 11: SubClassOf / EquivalentClass / DisjointWith.
	for _, t := range idx[RDFSSubClassOf] {
		linkClasses(ont, t, ont.Classes.SubClassOf, warn)
	}
	for _, t := range idx[OWLEquivalentClass] {
		linkClasses(ont, t, ont.Classes.EquivalentClass, warn)
	}
	for _, t := range idx[OWLDisjointWith] {
		linkClasses(ont, t, ont.Classes.DisjointWith, warn)
	}

	// Step 12: SameAs / DifferentFrom (auto-create missing facts).
	for _, t := range idx[OWLSameAs] {
		linkFacts(ont, t, ont.Data.SameAs)
	}
	for _, t := range idx[OWLDifferentFrom] {
		linkFacts(ont, t, ont.Data.DifferentFrom)
	}

	// Step 13: assertions on non-annotation, non-reserved properties.
	decodeAssertions(ont, allTrps, warn)

	// Step 14: custom relations & annotations.
	decodeAnnotations(ont, allTrps, warn)

	// Step 15: unexpand.
	ont.Unexpand()

	return ont, warnings, nil
}

func applyPropertyCharacteristic(ont *Ontology, idx predicateIndex, marker string, apply func(*Property)) {
	for _, t := range idx[RDFType] {
		if t.Object.Value() != marker {
			continue
		}
		fp := NewIRIResource(t.Subject.Value()).FP
		if p := ont.Properties.Get(fp); p != nil {
			apply(p)
		}
	}
}

func selectBySubject(trps []Triple, subjIRI string) []Triple {
	out := []Triple{}
	for _, t := range trps {
		if t.Subject.Value() == subjIRI {
			out = append(out, t)
		}
	}
	return out
}

// decodeComposite handles the shared unionOf/intersectionOf reclassify-then
// -walk-the-list procedure of §4.9 step 6.
func decodeComposite(ont *Ontology, idx predicateIndex, trps []Triple, kind ClassKind, into *Taxonomy, warn func(Warning)) {
	predFP := fingerprintForCompositeTaxonomy(kind)
	for _, t := range trps {
		subjIRI := t.Subject.Value()
		subjFP := NewIRIResource(subjIRI).FP
		if c := ont.Classes.Get(subjFP); c != nil {
			ont.Classes.Reclassify(subjFP, kind)
		} else {
			ont.Classes.Register(newClassWithKind(subjIRI, kind))
		}
		head := t.Object.Value()
		members := walkRDFList(idx, head, warn, subjIRI)
		for _, m := range members {
			memberFP := NewIRIResource(m).FP
			ont.Classes.Register(NewClass(m))
			into.Add(TaxonomyEntry{Subject: subjFP, Predicate: predFP, Object: memberFP})
		}
	}
}

func fingerprintForCompositeTaxonomy(kind ClassKind) Fingerprint {
	switch kind {
	case ClassUnion:
		return NewIRIResource(OWLUnionOf).FP
	case ClassIntersection:
		return NewIRIResource(OWLIntersectionOf).FP
	default:
		return NewIRIResource(OWLOneOf).FP
	}
}

// decodeOneOfList handles owl:oneOf subjects: enumerate classes (fact
// members) and data ranges (literal members) share the list-walk but
// differ in how the member terms are interpreted.
func decodeOneOfList(ont *Ontology, idx predicateIndex, enumerateKind ClassKind, warn func(Warning)) {
	oneOfFP := NewIRIResource(OWLOneOf).FP
	for _, t := range idx[OWLOneOf] {
		subjIRI := t.Subject.Value()
		subjFP := NewIRIResource(subjIRI).FP
		existing := ont.Classes.Get(subjFP)
		isDataRange := existing != nil && existing.Kind == ClassDataRange
		kind := enumerateKind
		if isDataRange {
			kind = ClassDataRange
		}
		if existing != nil {
			ont.Classes.Reclassify(subjFP, kind)
		} else {
			ont.Classes.Register(newClassWithKind(subjIRI, kind))
		}

		head := t.Object.Value()
		memberTerms := walkRDFListTerms(idx, head, warn, subjIRI)
		for _, term := range memberTerms {
			if isDataRange {
				if !term.IsLiteral() {
					continue
				}
				lit := NewLiteral(term.Value(), term.Datatype(), term.Language())
				ont.Data.RegisterLiteral(lit)
				ont.Classes.OneOf.Add(TaxonomyEntry{Subject: subjFP, Predicate: oneOfFP, Object: lit.FP})
			} else {
				if !term.IsResource() {
					continue
				}
				fact := ont.Data.RegisterFact(NewFact(term.Value()))
				ont.Classes.OneOf.Add(TaxonomyEntry{Subject: subjFP, Predicate: oneOfFP, Object: fact.FP})
			}
		}
	}
}

// walkRDFList walks an rdf:first/rdf:rest list starting at head, returning
// the IRIs of resource members. Missing member definitions emit a warning
// and are skipped (§4.9 step 6).
func walkRDFList(idx predicateIndex, head string, warn func(Warning), subject string) []string {
	out := []string{}
	for _, term := range walkRDFListTerms(idx, head, warn, subject) {
		if term.IsResource() {
			out = append(out, term.Value())
		}
	}
	return out
}

func walkRDFListTerms(idx predicateIndex, head string, warn func(Warning), subject string) []Term {
	out := []Term{}
	node := head
	visited := map[string]bool{}
	for node != "" && node != RDFNil {
		if visited[node] {
			break
		}
		visited[node] = true
		firsts := selectBySubject(idx[RDFFirst], node)
		rests := selectBySubject(idx[RDFRest], node)
		if len(firsts) == 0 {
			warn(Warning{Kind: WarningMissingListMember, Message: "rdf:list node missing rdf:first", Subject: subject})
			break
		}
		out = append(out, firsts[0].Object)
		if len(rests) == 0 {
			break
		}
		node = rests[0].Object.Value()
	}
	return out
}

// refineRestriction probes cardinality / hasValue / allValuesFrom /
// someValuesFrom triples in that documented order; the first match refines
// the variant (§4.9 step 8, §9 open question (a)).
func refineRestriction(ont *Ontology, c *Class, idx predicateIndex, warn func(Warning)) {
	subjIRI := c.GetURI()
	ri := c.Restriction

	refine := func(v RestrictionVariant) bool {
		if ri.Variant != VariantUnset {
			warn(Warning{Kind: WarningVariantConflict, Message: "restriction variant already set, ignoring conflicting axiom", Subject: subjIRI})
			return false
		}
		ri.Variant = v
		return true
	}

	if card, min, max, minActive, maxActive, ok := probeCardinality(idx, subjIRI, warn); ok {
		if refine(VariantCardinality) {
			ri.MinCardinality = min
			ri.MaxCardinality = max
			ri.MinActive = minActive
			ri.MaxActive = maxActive
			_ = card
		}
	}
	if hv := selectBySubject(idx[OWLHasValue], subjIRI); len(hv) > 0 {
		if refine(VariantHasValue) {
			term := hv[0].Object
			if term.IsLiteral() {
				lit := NewLiteral(term.Value(), term.Datatype(), term.Language())
				ont.Data.RegisterLiteral(lit)
				ri.HasValueLiteral = lit
				ri.HasValueIsFact = false
			} else {
				fact := ont.Data.RegisterFact(NewFact(term.Value()))
				ri.HasValueResource = fact.FP
				ri.HasValueIsFact = true
			}
		}
	}
	if avf := selectBySubject(idx[OWLAllValuesFrom], subjIRI); len(avf) > 0 {
		if refine(VariantAllValuesFrom) {
			targetIRI := avf[0].Object.Value()
			ont.Classes.Register(NewClass(targetIRI))
			ri.TargetClass = NewIRIResource(targetIRI).FP
		}
	}
	if svf := selectBySubject(idx[OWLSomeValuesFrom], subjIRI); len(svf) > 0 {
		if refine(VariantSomeValuesFrom) {
			targetIRI := svf[0].Object.Value()
			ont.Classes.Register(NewClass(targetIRI))
			ri.TargetClass = NewIRIResource(targetIRI).FP
		}
	}
}

// probeCardinality looks up cardinality/minCardinality/maxCardinality
// triples on subjIRI. Cardinality literals must parse as non-negative
// integers; a parse failure is reported as a warning and that bound is
// treated as inactive.
func probeCardinality(idx predicateIndex, subjIRI string, warn func(Warning)) (exact, min, max int, minActive, maxActive, ok bool) {
	parse := func(trps []Triple) (int, bool) {
		if len(trps) == 0 {
			return 0, false
		}
		n, err := strconv.Atoi(trps[0].Object.Value())
		if err != nil || n < 0 {
			warn(Warning{Kind: WarningInvalidCardinality, Message: "cardinality literal is not a non-negative integer", Subject: subjIRI})
			return 0, false
		}
		return n, true
	}

	exactTrps := selectBySubject(idx[OWLCardinality], subjIRI)
	minTrps := selectBySubject(idx[OWLMinCardinality], subjIRI)
	maxTrps := selectBySubject(idx[OWLMaxCardinality], subjIRI)
	if len(exactTrps) == 0 && len(minTrps) == 0 && len(maxTrps) == 0 {
		return 0, 0, 0, false, false, false
	}

	if n, parsed := parse(exactTrps); parsed {
		return n, n, n, true, true, true
	}
	minN, minOK := parse(minTrps)
	maxN, maxOK := parse(maxTrps)
	if !minOK && !maxOK {
		return 0, 0, 0, false, false, false
	}
	return 0, minN, maxN, minOK, maxOK, true
}

func attachClassRef(ont *Ontology, trps []Triple, attach func(*Property, Fingerprint)) {
	for _, t := range trps {
		propFP := NewIRIResource(t.Subject.Value()).FP
		p := ont.Properties.Get(propFP)
		if p == nil {
			continue
		}
		targetIRI := t.Object.Value()
		ont.Classes.Register(NewClass(targetIRI))
		attach(p, NewIRIResource(targetIRI).FP)
	}
}

// linkProperties registers a SubPropertyOf/EquivalentProperty/InverseOf
// entry, enforcing the kind-compatibility check of §4.9 step 10.
func linkProperties(ont *Ontology, t Triple, into *Taxonomy, requireObjectKind bool, warn func(Warning)) {
	subjFP := NewIRIResource(t.Subject.Value()).FP
	objFP := NewIRIResource(t.Object.Value()).FP
	subj := ont.Properties.Get(subjFP)
	obj := ont.Properties.Get(objFP)
	if subj == nil || obj == nil {
		warn(Warning{Kind: WarningUndefinedReference, Message: "property relation references an undeclared property", Subject: t.Subject.Value()})
		return
	}
	if requireObjectKind {
		if subj.Kind != PropertyObject || obj.Kind != PropertyObject {
			warn(Warning{Kind: WarningIncompatiblePropertyKind, Message: "inverseOf requires both properties to be object properties", Subject: t.Subject.Value()})
			return
		}
	} else if subj.Kind != obj.Kind {
		warn(Warning{Kind: WarningIncompatiblePropertyKind, Message: "property relation requires matching property kinds", Subject: t.Subject.Value()})
		return
	}
	into.Add(TaxonomyEntry{Subject: subjFP, Predicate: NewIRIResource(t.Predicate.Value()).FP, Object: objFP})
}

func linkClasses(ont *Ontology, t Triple, into *Taxonomy, warn func(Warning)) {
	subjIRI := t.Subject.Value()
	objIRI := t.Object.Value()
	ont.Classes.Register(NewClass(subjIRI))
	ont.Classes.Register(NewClass(objIRI))
	into.Add(TaxonomyEntry{
		Subject:   NewIRIResource(subjIRI).FP,
		Predicate: NewIRIResource(t.Predicate.Value()).FP,
		Object:    NewIRIResource(objIRI).FP,
	})
}

func linkFacts(ont *Ontology, t Triple, into *Taxonomy) {
	subj := ont.Data.RegisterFact(NewFact(t.Subject.Value()))
	obj := ont.Data.RegisterFact(NewFact(t.Object.Value()))
	into.Add(TaxonomyEntry{
		Subject:   subj.FP,
		Predicate: NewIRIResource(t.Predicate.Value()).FP,
		Object:    obj.FP,
	})
}

// decodeAssertions scans every non-annotation, non-reserved property's
// triples, rejecting mismatched object/datatype kinds with a warning and
// auto-creating missing facts (§4.9 step 13).
func decodeAssertions(ont *Ontology, allTrps []Triple, warn func(Warning)) {
	for _, t := range allTrps {
		predIRI := t.Predicate.Value()
		if isReservedTerm(predIRI) {
			continue
		}
		propFP := NewIRIResource(predIRI).FP
		p := ont.Properties.Get(propFP)
		if p == nil || p.Kind == PropertyAnnotation {
			continue
		}
		subjIRI := t.Subject.Value()
		subj := ont.Data.RegisterFact(NewFact(subjIRI))

		if p.Kind == PropertyObject {
			if t.Object.IsLiteral() {
				warn(Warning{Kind: WarningTypeMismatch, Message: "object property assertion has a literal object", Subject: subjIRI})
				continue
			}
			obj := ont.Data.RegisterFact(NewFact(t.Object.Value()))
			ont.Data.Assertions.Add(TaxonomyEntry{Subject: subj.FP, Predicate: propFP, Object: obj.FP})
		} else if p.Kind == PropertyDatatype {
			if t.Object.IsResource() {
				warn(Warning{Kind: WarningTypeMismatch, Message: "datatype property assertion has a resource object", Subject: subjIRI})
				continue
			}
			lit := NewLiteral(t.Object.Value(), t.Object.Datatype(), t.Object.Language())
			ont.Data.RegisterLiteral(lit)
			ont.Data.Assertions.Add(TaxonomyEntry{Subject: subj.FP, Predicate: propFP, Object: lit.FP})
		}
	}
}

// decodeAnnotations runs the annotation pass (§4.9 step 14). owl:versionInfo
// and owl:imports on the ontology header become ontology annotations, and
// rdfs:label/rdfs:comment on a registered class or property fill its
// Label/Comment maps. Any other non-reserved predicate is kept only when it
// is a declared annotation property: on the ontology header its value
// becomes an ontology annotation, and on a fact a literal value is recorded
// as an Assertions entry. Such annotations on classes and properties, and
// resource-valued ones on facts, are not kept; predicates that are not
// annotation properties are not collected here as custom relations.
func decodeAnnotations(ont *Ontology, allTrps []Triple, warn func(Warning)) {
	ontFP := NewIRIResource(ont.Name).FP
	for _, t := range allTrps {
		predIRI := t.Predicate.Value()
		subjIRI := t.Subject.Value()
		subjFP := NewIRIResource(subjIRI).FP

		switch predIRI {
		case OWLVersionInfo:
			if subjFP == ontFP && t.Object.IsLiteral() {
				ont.AddAnnotation(predIRI, NewLiteral(t.Object.Value(), t.Object.Datatype(), t.Object.Language()))
			}
			continue
		case OWLImports:
			if subjFP == ontFP && t.Object.IsResource() {
				ont.AddAnnotationResource(predIRI, t.Object.Value())
			}
			continue
		case RDFSLabel, RDFSComment:
			if c := ont.Classes.Get(subjFP); c != nil {
				attachResourceLabelOrComment(c.Label, c.Comment, predIRI, t)
				continue
			}
			if prop := ont.Properties.Get(subjFP); prop != nil {
				attachResourceLabelOrComment(prop.Label, prop.Comment, predIRI, t)
			}
			continue
		}

		if isReservedTerm(predIRI) {
			continue
		}
		propFP := NewIRIResource(predIRI).FP
		p := ont.Properties.Get(propFP)
		if p == nil || p.Kind != PropertyAnnotation {
			continue
		}

		if subjFP == ontFP {
			if t.Object.IsLiteral() {
				ont.AddAnnotation(predIRI, NewLiteral(t.Object.Value(), t.Object.Datatype(), t.Object.Language()))
			} else {
				ont.AddAnnotationResource(predIRI, t.Object.Value())
			}
			continue
		}
		if c := ont.Classes.Get(subjFP); c != nil {
			attachResourceLabelOrComment(c.Label, c.Comment, predIRI, t)
			continue
		}
		if prop := ont.Properties.Get(subjFP); prop != nil {
			attachResourceLabelOrComment(prop.Label, prop.Comment, predIRI, t)
			continue
		}
		// Fact-level custom annotation: recorded as a generic assertion so
		// it survives round-trip even though facts carry no dedicated
		// label/comment maps.
		if t.Object.IsLiteral() {
			fact := ont.Data.RegisterFact(NewFact(subjIRI))
			lit := NewLiteral(t.Object.Value(), t.Object.Datatype(), t.Object.Language())
			ont.Data.RegisterLiteral(lit)
			ont.Data.Assertions.Add(TaxonomyEntry{Subject: fact.FP, Predicate: propFP, Object: lit.FP})
		}
	}
}

func attachResourceLabelOrComment(label, comment map[string]string, predIRI string, t Triple) {
	if !t.Object.IsLiteral() {
		return
	}
	lang := t.Object.Language()
	switch predIRI {
	case RDFSLabel:
		if label != nil {
			label[lang] = t.Object.Value()
		}
	case RDFSComment:
		if comment != nil {
			comment[lang] = t.Object.Value()
		}
	}
}
