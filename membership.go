package ontograph

import "errors"

// This file implements §4.7 (restriction membership) and §4.8 (composite,
// enumerated and plain class membership): MembersOfRestriction dispatches
// across the four restriction variants, and MembersOf dispatches across
// composite/enumerated/data-range/literal-compatible/plain classes.

// compatiblePredicates enlists the set of predicate fingerprints a
// restriction's assertions may legally be found under: sub-properties ∪
// equivalent-properties of r.onProperty ∪ {r.onProperty} (§4.7 prologue).
func compatiblePredicates(onProperty Fingerprint, pm *PropertyModel) map[Fingerprint]bool {
	out := map[Fingerprint]bool{onProperty: true}
	if p := pm.Get(onProperty); p != nil {
		for _, sub := range EnlistSubProperties(p, pm).Properties() {
			out[sub.FP] = true
		}
	}
	for fp := range EnlistEquivalentPropertyFPs(onProperty, pm) {
		out[fp] = true
	}
	return out
}

// compatibleClassesFPs enlists sub ∪ equivalent ∪ {c} for a class
// fingerprint, the recurring "compatible classes" set of §4.7/§4.8.
func compatibleClassesFPs(fp Fingerprint, cm *ClassModel) map[Fingerprint]bool {
	out := map[Fingerprint]bool{fp: true}
	if c := cm.Get(fp); c != nil {
		for _, sub := range EnlistSubClasses(c, cm).Classes() {
			out[sub.FP] = true
		}
	}
	for eqFP := range EnlistEquivalentClassFPs(fp, cm) {
		out[eqFP] = true
	}
	return out
}

// objectClassTypeIntersects reports whether any of the object fact's
// asserted class types — or any of that type's sub/equivalent closures —
// falls within compatible, the condition §4.7 uses to classify an
// allValuesFrom/someValuesFrom object as "eq" vs "neq".
func objectClassTypeIntersects(objFact Fingerprint, o *Ontology, compatible map[Fingerprint]bool) bool {
	for _, e := range o.Data.ClassType.BySubject(objFact) {
		if compatible[e.Object] {
			return true
		}
		if cls := o.Classes.Get(e.Object); cls != nil {
			for _, sub := range EnlistSubClasses(cls, o.Classes).Classes() {
				if compatible[sub.FP] {
					return true
				}
			}
			for eqFP := range EnlistEquivalentClassFPs(e.Object, o.Classes) {
				if compatible[eqFP] {
					return true
				}
			}
		}
	}
	return false
}

// MembersOfRestriction returns the Data container of facts satisfying
// restriction r (§4.7).
func MembersOfRestriction(r *Class, o *Ontology) *Data {
	result := NewData()
	if r == nil || r.Kind != ClassRestriction || r.Restriction == nil {
		return result
	}
	ri := r.Restriction
	predicates := compatiblePredicates(ri.OnProperty, o.Properties)
	fTaxonomy := o.Data.Assertions.SelectByPredicates(predicates)

	switch ri.Variant {
	case VariantCardinality:
		counts := map[Fingerprint]int{}
		for _, e := range fTaxonomy.Entries() {
			counts[e.Subject]++
		}
		for subj, n := range counts {
			if ri.MinActive && n < ri.MinCardinality {
				continue
			}
			if ri.MaxActive && n > ri.MaxCardinality {
				continue
			}
			if f := o.Data.GetFact(subj); f != nil {
				result.RegisterFact(f)
			}
		}

	case VariantAllValuesFrom, VariantSomeValuesFrom:
		compatible := compatibleClassesFPs(ri.TargetClass, o.Classes)
		eqCount := map[Fingerprint]int{}
		neqCount := map[Fingerprint]int{}
		for _, e := range fTaxonomy.Entries() {
			if o.Data.IsLiteralObject(e.Object) {
				continue
			}
			if objectClassTypeIntersects(e.Object, o, compatible) {
				eqCount[e.Subject]++
			} else {
				neqCount[e.Subject]++
			}
		}
		for subj, eq := range eqCount {
			if eq < 1 {
				continue
			}
			if ri.Variant == VariantAllValuesFrom && neqCount[subj] != 0 {
				continue
			}
			if f := o.Data.GetFact(subj); f != nil {
				result.RegisterFact(f)
			}
		}

	case VariantHasValue:
		if ri.HasValueIsFact {
			compatibleFacts := map[Fingerprint]bool{ri.HasValueResource: true}
			for fp := range EnlistSameFactFPs(ri.HasValueResource, o.Data) {
				compatibleFacts[fp] = true
			}
			seen := newFingerprintSet()
			for _, e := range fTaxonomy.Entries() {
				if compatibleFacts[e.Object] && !seen.has(e.Subject) {
					seen.add(e.Subject)
					if f := o.Data.GetFact(e.Subject); f != nil {
						result.RegisterFact(f)
					}
				}
			}
		} else if ri.HasValueLiteral != nil {
			seen := newFingerprintSet()
			for _, e := range fTaxonomy.Entries() {
				lit := o.Data.GetLiteral(e.Object)
				if lit == nil {
					continue
				}
				subjFact := o.Data.GetFact(e.Subject)
				if subjFact == nil {
					continue
				}
				equal, ok := compareLiterals(lit, ri.HasValueLiteral)
				if !ok {
					traceSwallowedComparison(subjFact.GetURI(), errors.New("numeric literal lexical form does not parse as a number"))
					continue
				}
				if equal && !seen.has(e.Subject) {
					seen.add(e.Subject)
					if f := o.Data.GetFact(e.Subject); f != nil {
						result.RegisterFact(f)
					}
				}
			}
		}
	}
	return result
}

// MembersOf dispatches composite/enumerated/data-range/literal-compatible/
// plain class membership for c (§4.8).
func MembersOf(c *Class, o *Ontology) *Data {
	result := NewData()
	if c == nil {
		return result
	}

	switch c.Kind {
	case ClassRestriction:
		return MembersOfRestriction(c, o)

	case ClassEnumerate:
		for _, e := range o.Classes.OneOf.BySubject(c.FP) {
			if f := o.Data.GetFact(e.Object); f != nil {
				result.RegisterFact(f)
			}
			for fp := range EnlistSameFactFPs(e.Object, o.Data) {
				if f := o.Data.GetFact(fp); f != nil {
					result.RegisterFact(f)
				}
			}
		}
		return result

	case ClassIntersection:
		children := o.Classes.IntersectionOf.BySubject(c.FP)
		if len(children) == 0 {
			return result
		}
		acc := MembersOf(o.Classes.Get(children[0].Object), o)
		for _, e := range children[1:] {
			next := MembersOf(o.Classes.Get(e.Object), o)
			kept := NewData()
			for _, f := range acc.Facts() {
				if next.HasFact(f.FP) {
					kept.RegisterFact(f)
				}
			}
			acc = kept
		}
		return acc

	case ClassUnion:
		for _, e := range o.Classes.UnionOf.BySubject(c.FP) {
			for _, f := range MembersOf(o.Classes.Get(e.Object), o).Facts() {
				result.RegisterFact(f)
			}
		}
		return result

	case ClassComplement:
		target := complementTarget(c.FP, o.Classes)
		excluded := MembersOf(o.Classes.Get(target), o)
		for _, f := range o.Data.Facts() {
			if !excluded.HasFact(f.FP) {
				result.RegisterFact(f)
			}
		}
		return result

	case ClassDataRange:
		for _, e := range o.Classes.OneOf.BySubject(c.FP) {
			if l := o.Data.GetLiteral(e.Object); l != nil {
				result.RegisterLiteral(l)
			}
		}
		return result
	}

	if isLiteralCompatibleClass(c.FP, o.Classes) {
		return membersOfLiteralCompatibleClass(c.FP, o)
	}

	// Plain class (§4.8 final clause).
	compatible := compatibleClassesFPs(c.FP, o.Classes)
	seen := newFingerprintSet()
	for _, e := range o.Data.ClassType.Entries() {
		if !compatible[e.Object] {
			continue
		}
		if !seen.has(e.Subject) {
			seen.add(e.Subject)
			if f := o.Data.GetFact(e.Subject); f != nil {
				result.RegisterFact(f)
			}
		}
		for fp := range EnlistSameFactFPs(e.Subject, o.Data) {
			if !seen.has(fp) {
				seen.add(fp)
				if f := o.Data.GetFact(fp); f != nil {
					result.RegisterFact(f)
				}
			}
		}
	}
	return result
}

// complementTarget resolves the single complementOf target recorded for a
// complement-class subject.
func complementTarget(fp Fingerprint, cm *ClassModel) Fingerprint {
	entries := cm.ComplementOf.BySubject(fp)
	if len(entries) > 0 {
		return entries[0].Object
	}
	return 0
}

// isLiteralCompatibleClass reports whether c is rdfs:Literal, xsd:string,
// or equivalent to either, or any other class whose URI is a recognized
// XSD datatype (the BASE classes registered by Expand, §5) or a custom
// datatype declared via rdfs:Datatype and registered in the class model's
// datatype side table (§4.8).
func isLiteralCompatibleClass(fp Fingerprint, cm *ClassModel) bool {
	compatible := compatibleClassesFPs(fp, cm)
	literalFP := NewIRIResource(RDFSLiteral).FP
	stringFP := NewIRIResource(XSDString).FP
	if compatible[literalFP] || compatible[stringFP] {
		return true
	}
	if cm.GetDatatype(fp) != nil {
		return true
	}
	if c := cm.Get(fp); c != nil {
		return classifyDatatype(c.GetURI()) != categoryOther
	}
	return false
}

// membersOfLiteralCompatibleClass implements the literal-compatible class
// dispatch of §4.8: rdfs:Literal-equivalent returns all literals,
// xsd:string-equivalent returns plain+string-category literals, any other
// datatype-equivalent class returns typed literals whose datatype resolves
// (via BASE or user class model) to a class equal to, subsumed by, or
// equivalent to the argument.
func membersOfLiteralCompatibleClass(fp Fingerprint, o *Ontology) *Data {
	result := NewData()
	compatible := compatibleClassesFPs(fp, o.Classes)
	literalFP := NewIRIResource(RDFSLiteral).FP
	stringFP := NewIRIResource(XSDString).FP

	for _, l := range o.Data.Literals() {
		switch {
		case compatible[literalFP]:
			result.RegisterLiteral(l)
		case compatible[stringFP]:
			if isStringDatatype(l.Datatype) {
				result.RegisterLiteral(l)
			}
		default:
			if l.Datatype == "" {
				continue
			}
			dtFP := NewIRIResource(l.Datatype).FP
			if compatible[dtFP] {
				result.RegisterLiteral(l)
				continue
			}
			for eqFP := range EnlistEquivalentClassFPs(dtFP, o.Classes) {
				if compatible[eqFP] {
					result.RegisterLiteral(l)
					break
				}
			}
		}
	}
	return result
}
