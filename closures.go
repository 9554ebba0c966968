package ontograph

// This file implements the taxonomic closure procedures of §4.2-§4.6: pure
// functions computing sub/super-class, sub/super-property, equivalence,
// disjointness, sameAs/differentFrom and transitive-property closures.
// Every procedure here returns a fresh container; none mutate their inputs,
// and every recursive walk carries an explicit visit context so cyclic
// axiom graphs terminate (§4.9 design note, §9).

// symmetrize returns a fresh taxonomy containing both a taxonomy's entries
// and their reverse, used to treat a relation the store holds in only one
// direction (equivalentClass, equivalentProperty, sameAs, disjointWith) as
// symmetric during traversal (§3 invariant 3, §4.3).
func symmetrize(t *Taxonomy) *Taxonomy {
	out := NewTaxonomy()
	for _, e := range t.Entries() {
		out.Add(e)
		out.Add(TaxonomyEntry{Subject: e.Object, Predicate: e.Predicate, Object: e.Subject, Inferred: e.Inferred})
	}
	return out
}

// equivalenceCore is the shared recursive core behind EquivalentClass,
// EquivalentProperty and SameAs closure (§4.3): on first entry it seeds the
// visit context with the start node; on re-entry with an already-visited
// fingerprint it returns empty. For each direct entry it recurses with the
// shared context. The caller is expected to pass a symmetrized taxonomy so
// both directions of the (store holds one direction only) relation are
// walked in a single traversal — the memory-footprint-only alternative to
// calling the core once per direction that the spec permits.
func equivalenceCore(start Fingerprint, sym *Taxonomy, visited fingerprintSet) fingerprintSet {
	result := newFingerprintSet()
	if visited.has(start) {
		return result
	}
	visited.add(start)
	for _, e := range sym.BySubject(start) {
		if !result.has(e.Object) {
			result.add(e.Object)
		}
		result.addAll(equivalenceCore(e.Object, sym, visited))
	}
	return result
}

// EnlistEquivalentClassFPs returns the set of class fingerprints equivalent
// to fp under EquivalentClass closure (§4.3).
func EnlistEquivalentClassFPs(fp Fingerprint, cm *ClassModel) fingerprintSet {
	sym := symmetrize(cm.EquivalentClass)
	return equivalenceCore(fp, sym, newFingerprintSet())
}

// EnlistEquivalentClasses returns the ClassModel of classes equivalent to c.
func EnlistEquivalentClasses(c *Class, cm *ClassModel) *ClassModel {
	result := NewClassModel()
	if c == nil {
		return result
	}
	for fp := range EnlistEquivalentClassFPs(c.FP, cm) {
		if eq := cm.Get(fp); eq != nil {
			result.Register(eq)
		}
	}
	return result
}

// EnlistEquivalentPropertyFPs returns the set of property fingerprints
// equivalent to fp under EquivalentProperty closure.
func EnlistEquivalentPropertyFPs(fp Fingerprint, pm *PropertyModel) fingerprintSet {
	sym := symmetrize(pm.EquivalentProperty)
	return equivalenceCore(fp, sym, newFingerprintSet())
}

// EnlistEquivalentProperties returns the PropertyModel of properties
// equivalent to p.
func EnlistEquivalentProperties(p *Property, pm *PropertyModel) *PropertyModel {
	result := NewPropertyModel()
	if p == nil {
		return result
	}
	for fp := range EnlistEquivalentPropertyFPs(p.FP, pm) {
		if eq := pm.Get(fp); eq != nil {
			result.Register(eq)
		}
	}
	return result
}

// EnlistSameFactFPs returns the set of fact fingerprints sameAs fp.
func EnlistSameFactFPs(fp Fingerprint, d *Data) fingerprintSet {
	sym := symmetrize(d.SameAs)
	return equivalenceCore(fp, sym, newFingerprintSet())
}

// EnlistSameFacts returns the Data container of facts sameAs f (§4.5).
func EnlistSameFacts(f *Fact, d *Data) *Data {
	result := NewData()
	if f == nil {
		return result
	}
	for fp := range EnlistSameFactFPs(f.FP, d) {
		if fact := d.GetFact(fp); fact != nil {
			result.RegisterFact(fact)
		}
	}
	return result
}

// EnlistDifferentFrom returns the Data container of facts asserted or
// entailed to be different from f (§4.5): direct DifferentFrom entries plus
// each such fact's sameAs-closure, and for each member of sameAs(f), its
// own DifferentFrom closure. Both passes share one visit context.
func EnlistDifferentFrom(f *Fact, d *Data) *Data {
	result := NewData()
	if f == nil {
		return result
	}
	visited := newFingerprintSet()
	differentFromRec(f.FP, d, result, visited)
	return result
}

func differentFromRec(fp Fingerprint, d *Data, result *Data, visited fingerprintSet) {
	if visited.has(fp) {
		return
	}
	visited.add(fp)
	sym := symmetrize(d.DifferentFrom)
	for _, e := range sym.BySubject(fp) {
		if diff := d.GetFact(e.Object); diff != nil {
			result.RegisterFact(diff)
		}
		for sfp := range EnlistSameFactFPs(e.Object, d) {
			if sf := d.GetFact(sfp); sf != nil {
				result.RegisterFact(sf)
			}
		}
	}
	for sfp := range EnlistSameFactFPs(fp, d) {
		differentFromRec(sfp, d, result, visited)
	}
}

// enlistByObjectRec walks a taxonomy in reverse (from specific to general),
// collecting every subject transitively reachable as a subClassOf/
// subPropertyOf-style specialization of node, additionally unioning each
// discovered element's equivalence closure and recursing into the
// subclasses of each such equivalent (§4.2). visited guarantees
// termination on cyclic axioms.
func enlistByObjectRec(node Fingerprint, subTax *Taxonomy, eqFPs func(Fingerprint) fingerprintSet, result fingerprintSet, visited fingerprintSet) {
	for _, e := range subTax.ByObject(node) {
		subj := e.Subject
		firstVisit := !visited.has(subj)
		if firstVisit {
			visited.add(subj)
			result.add(subj)
		}
		for eqFP := range eqFPs(subj) {
			if !visited.has(eqFP) {
				visited.add(eqFP)
				result.add(eqFP)
				enlistByObjectRec(eqFP, subTax, eqFPs, result, visited)
			}
		}
		if firstVisit {
			enlistByObjectRec(subj, subTax, eqFPs, result, visited)
		}
	}
}

// enlistBySubjectRec is the dual of enlistByObjectRec, walking a taxonomy
// forward (from subject to object) to collect generalizations.
func enlistBySubjectRec(node Fingerprint, subTax *Taxonomy, eqFPs func(Fingerprint) fingerprintSet, result fingerprintSet, visited fingerprintSet) {
	for _, e := range subTax.BySubject(node) {
		obj := e.Object
		firstVisit := !visited.has(obj)
		if firstVisit {
			visited.add(obj)
			result.add(obj)
		}
		for eqFP := range eqFPs(obj) {
			if !visited.has(eqFP) {
				visited.add(eqFP)
				result.add(eqFP)
				enlistBySubjectRec(eqFP, subTax, eqFPs, result, visited)
			}
		}
		if firstVisit {
			enlistBySubjectRec(obj, subTax, eqFPs, result, visited)
		}
	}
}

// EnlistSubClasses returns the transitive closure of SubClassOf entries
// whose object is c, unioned with each closure element's equivalent
// classes and their own sub-closures (§4.2).
func EnlistSubClasses(c *Class, cm *ClassModel) *ClassModel {
	result := NewClassModel()
	if c == nil {
		return result
	}
	fps := newFingerprintSet()
	visited := newFingerprintSet()
	visited.add(c.FP)
	enlistByObjectRec(c.FP, cm.SubClassOf, func(fp Fingerprint) fingerprintSet { return EnlistEquivalentClassFPs(fp, cm) }, fps, visited)
	for fp := range fps {
		if cl := cm.Get(fp); cl != nil {
			result.Register(cl)
		}
	}
	return result
}

// EnlistSuperClasses is the dual of EnlistSubClasses, walking SubClassOf
// from subject to object.
func EnlistSuperClasses(c *Class, cm *ClassModel) *ClassModel {
	result := NewClassModel()
	if c == nil {
		return result
	}
	fps := newFingerprintSet()
	visited := newFingerprintSet()
	visited.add(c.FP)
	enlistBySubjectRec(c.FP, cm.SubClassOf, func(fp Fingerprint) fingerprintSet { return EnlistEquivalentClassFPs(fp, cm) }, fps, visited)
	for fp := range fps {
		if cl := cm.Get(fp); cl != nil {
			result.Register(cl)
		}
	}
	return result
}

// EnlistSubProperties is the SubPropertyOf analog of EnlistSubClasses.
func EnlistSubProperties(p *Property, pm *PropertyModel) *PropertyModel {
	result := NewPropertyModel()
	if p == nil {
		return result
	}
	fps := newFingerprintSet()
	visited := newFingerprintSet()
	visited.add(p.FP)
	enlistByObjectRec(p.FP, pm.SubPropertyOf, func(fp Fingerprint) fingerprintSet { return EnlistEquivalentPropertyFPs(fp, pm) }, fps, visited)
	for fp := range fps {
		if pr := pm.Get(fp); pr != nil {
			result.Register(pr)
		}
	}
	return result
}

// EnlistSuperProperties is the SubPropertyOf analog of EnlistSuperClasses.
func EnlistSuperProperties(p *Property, pm *PropertyModel) *PropertyModel {
	result := NewPropertyModel()
	if p == nil {
		return result
	}
	fps := newFingerprintSet()
	visited := newFingerprintSet()
	visited.add(p.FP)
	enlistBySubjectRec(p.FP, pm.SubPropertyOf, func(fp Fingerprint) fingerprintSet { return EnlistEquivalentPropertyFPs(fp, pm) }, fps, visited)
	for fp := range fps {
		if pr := pm.Get(fp); pr != nil {
			result.Register(pr)
		}
	}
	return result
}

// EnlistInverseProperties returns the properties declared (directly or
// symmetrically) as the inverse of p, unioned with each inverse's
// equivalent properties.
func EnlistInverseProperties(p *Property, pm *PropertyModel) *PropertyModel {
	result := NewPropertyModel()
	if p == nil {
		return result
	}
	sym := symmetrize(pm.InverseOf)
	for _, e := range sym.BySubject(p.FP) {
		if inv := pm.Get(e.Object); inv != nil {
			result.Register(inv)
		}
		for fp := range EnlistEquivalentPropertyFPs(e.Object, pm) {
			if eq := pm.Get(fp); eq != nil {
				result.Register(eq)
			}
		}
	}
	return result
}

// EnlistDisjointClasses computes, with a shared visit context: (1) direct
// disjoints of c plus each disjoint's equivalent classes, (2) each
// disjoint's transitive subclasses, and (3) recursively, the disjoints of
// every superclass and equivalent of c (§4.4).
func EnlistDisjointClasses(c *Class, cm *ClassModel) *ClassModel {
	result := NewClassModel()
	if c == nil {
		return result
	}
	visited := newFingerprintSet()
	disjointClassesRec(c.FP, cm, result, visited)
	return result
}

func disjointClassesRec(fp Fingerprint, cm *ClassModel, result *ClassModel, visited fingerprintSet) {
	if visited.has(fp) {
		return
	}
	visited.add(fp)

	sym := symmetrize(cm.DisjointWith)
	for _, e := range sym.BySubject(fp) {
		d := e.Object
		if dc := cm.Get(d); dc != nil {
			result.Register(dc)
		}
		// equivalents of the disjoint class also count as disjoint.
		for eqFP := range EnlistEquivalentClassFPs(d, cm) {
			if eq := cm.Get(eqFP); eq != nil {
				result.Register(eq)
			}
		}
		// transitive subclasses of the disjoint class inherit disjointness.
		if dc := cm.Get(d); dc != nil {
			for _, sub := range EnlistSubClasses(dc, cm).Classes() {
				result.Register(sub)
			}
		}
	}

	// disjointness of every superclass and equivalent of fp also applies to fp.
	if self := cm.Get(fp); self != nil {
		for _, sup := range EnlistSuperClasses(self, cm).Classes() {
			disjointClassesRec(sup.FP, cm, result, visited)
		}
	}
	for eqFP := range EnlistEquivalentClassFPs(fp, cm) {
		disjointClassesRec(eqFP, cm, result, visited)
	}
}

// EnlistTransitiveAssertions computes the reachability set of f through
// p-typed assertions for a transitive object property p, with a visit
// context keyed on the subject fact fingerprint (§4.6). The caller is
// responsible for materializing the result into the Data taxonomy if
// desired; this function never mutates d.
func EnlistTransitiveAssertions(f *Fact, p *Property, d *Data) *Data {
	result := NewData()
	if f == nil || p == nil {
		return result
	}
	visited := newFingerprintSet()
	transitiveAssertionsRec(f.FP, p.FP, d, result, visited)
	return result
}

func transitiveAssertionsRec(fp, propFP Fingerprint, d *Data, result *Data, visited fingerprintSet) {
	if visited.has(fp) {
		return
	}
	visited.add(fp)
	for _, e := range d.Assertions.BySubject(fp) {
		if e.Predicate != propFP {
			continue
		}
		if d.IsLiteralObject(e.Object) {
			continue
		}
		if fact := d.GetFact(e.Object); fact != nil {
			result.RegisterFact(fact)
		}
		transitiveAssertionsRec(e.Object, propFP, d, result, visited)
	}
}
