package ontograph

// Union returns a new ontology combining the classes, properties, data and
// their taxonomies of both o and other. o and other are never mutated.
func (o *Ontology) Union(other *Ontology) *Ontology {
	result, _ := NewOntology(o.Name)
	mergeClassModelInto(result.Classes, o.Classes)
	mergeClassModelInto(result.Classes, other.Classes)
	mergePropertyModelInto(result.Properties, o.Properties)
	mergePropertyModelInto(result.Properties, other.Properties)
	mergeDataInto(result.Data, o.Data)
	mergeDataInto(result.Data, other.Data)
	return result
}

// Intersect returns a new ontology containing only the classes, properties
// and facts registered in both o and other, and only the taxonomy entries
// present in both.
func (o *Ontology) Intersect(other *Ontology) *Ontology {
	result, _ := NewOntology(o.Name)
	for _, c := range o.Classes.Classes() {
		if other.Classes.Has(c.FP) {
			result.Classes.Register(c)
		}
	}
	for _, p := range o.Properties.Properties() {
		if other.Properties.Has(p.FP) {
			result.Properties.Register(p)
		}
	}
	for _, f := range o.Data.Facts() {
		if other.Data.HasFact(f.FP) {
			result.Data.RegisterFact(f)
		}
	}
	for _, l := range o.Data.Literals() {
		if other.Data.IsLiteralObject(l.FP) {
			result.Data.RegisterLiteral(l)
		}
	}
	result.Classes.SubClassOf = o.Classes.SubClassOf.Intersection(other.Classes.SubClassOf)
	result.Classes.EquivalentClass = o.Classes.EquivalentClass.Intersection(other.Classes.EquivalentClass)
	result.Classes.DisjointWith = o.Classes.DisjointWith.Intersection(other.Classes.DisjointWith)
	result.Classes.UnionOf = o.Classes.UnionOf.Intersection(other.Classes.UnionOf)
	result.Classes.IntersectionOf = o.Classes.IntersectionOf.Intersection(other.Classes.IntersectionOf)
	result.Classes.ComplementOf = o.Classes.ComplementOf.Intersection(other.Classes.ComplementOf)
	result.Classes.OneOf = o.Classes.OneOf.Intersection(other.Classes.OneOf)
	result.Properties.SubPropertyOf = o.Properties.SubPropertyOf.Intersection(other.Properties.SubPropertyOf)
	result.Properties.EquivalentProperty = o.Properties.EquivalentProperty.Intersection(other.Properties.EquivalentProperty)
	result.Properties.InverseOf = o.Properties.InverseOf.Intersection(other.Properties.InverseOf)
	result.Data.ClassType = o.Data.ClassType.Intersection(other.Data.ClassType)
	result.Data.SameAs = o.Data.SameAs.Intersection(other.Data.SameAs)
	result.Data.DifferentFrom = o.Data.DifferentFrom.Intersection(other.Data.DifferentFrom)
	result.Data.Assertions = o.Data.Assertions.Intersection(other.Data.Assertions)
	return result
}

// Difference returns a new ontology containing o's classes/properties/facts
// and taxonomy entries that are not also present in other. Following §9's
// design note, the computation first unions o into a fresh empty result and
// only then subtracts other, rather than taking a naive set difference
// directly on o's own containers — this is replicated verbatim from the
// source behavior even though the observable result is the same, because a
// future caller-visible difference (e.g. around resource registration
// order) must stay reproducible.
func (o *Ontology) Difference(other *Ontology) *Ontology {
	empty, _ := NewOntology(o.Name)
	result := empty.Union(o)

	keepClasses := map[Fingerprint]*Class{}
	for _, c := range result.Classes.Classes() {
		if !other.Classes.Has(c.FP) {
			keepClasses[c.FP] = c
		}
	}
	result.Classes.classes = keepClasses

	keepProps := map[Fingerprint]*Property{}
	for _, p := range result.Properties.Properties() {
		if !other.Properties.Has(p.FP) {
			keepProps[p.FP] = p
		}
	}
	result.Properties.properties = keepProps

	keepFacts := map[Fingerprint]*Fact{}
	for _, f := range result.Data.Facts() {
		if !other.Data.HasFact(f.FP) {
			keepFacts[f.FP] = f
		}
	}
	result.Data.facts = keepFacts

	result.Classes.SubClassOf = result.Classes.SubClassOf.Difference(other.Classes.SubClassOf)
	result.Classes.EquivalentClass = result.Classes.EquivalentClass.Difference(other.Classes.EquivalentClass)
	result.Classes.DisjointWith = result.Classes.DisjointWith.Difference(other.Classes.DisjointWith)
	result.Classes.UnionOf = result.Classes.UnionOf.Difference(other.Classes.UnionOf)
	result.Classes.IntersectionOf = result.Classes.IntersectionOf.Difference(other.Classes.IntersectionOf)
	result.Classes.ComplementOf = result.Classes.ComplementOf.Difference(other.Classes.ComplementOf)
	result.Classes.OneOf = result.Classes.OneOf.Difference(other.Classes.OneOf)
	result.Properties.SubPropertyOf = result.Properties.SubPropertyOf.Difference(other.Properties.SubPropertyOf)
	result.Properties.EquivalentProperty = result.Properties.EquivalentProperty.Difference(other.Properties.EquivalentProperty)
	result.Properties.InverseOf = result.Properties.InverseOf.Difference(other.Properties.InverseOf)
	result.Data.ClassType = result.Data.ClassType.Difference(other.Data.ClassType)
	result.Data.SameAs = result.Data.SameAs.Difference(other.Data.SameAs)
	result.Data.DifferentFrom = result.Data.DifferentFrom.Difference(other.Data.DifferentFrom)
	result.Data.Assertions = result.Data.Assertions.Difference(other.Data.Assertions)
	return result
}

func mergeClassModelInto(dst, src *ClassModel) {
	for _, c := range src.Classes() {
		dst.Register(c)
	}
	dst.SubClassOf = dst.SubClassOf.Union(src.SubClassOf)
	dst.EquivalentClass = dst.EquivalentClass.Union(src.EquivalentClass)
	dst.DisjointWith = dst.DisjointWith.Union(src.DisjointWith)
	dst.UnionOf = dst.UnionOf.Union(src.UnionOf)
	dst.IntersectionOf = dst.IntersectionOf.Union(src.IntersectionOf)
	dst.ComplementOf = dst.ComplementOf.Union(src.ComplementOf)
	dst.OneOf = dst.OneOf.Union(src.OneOf)
}

func mergePropertyModelInto(dst, src *PropertyModel) {
	for _, p := range src.Properties() {
		dst.Register(p)
	}
	dst.SubPropertyOf = dst.SubPropertyOf.Union(src.SubPropertyOf)
	dst.EquivalentProperty = dst.EquivalentProperty.Union(src.EquivalentProperty)
	dst.InverseOf = dst.InverseOf.Union(src.InverseOf)
}

func mergeDataInto(dst, src *Data) {
	for _, f := range src.Facts() {
		dst.RegisterFact(f)
	}
	for _, l := range src.Literals() {
		dst.RegisterLiteral(l)
	}
	dst.ClassType = dst.ClassType.Union(src.ClassType)
	dst.SameAs = dst.SameAs.Union(src.SameAs)
	dst.DifferentFrom = dst.DifferentFrom.Union(src.DifferentFrom)
	dst.Assertions = dst.Assertions.Union(src.Assertions)
}
