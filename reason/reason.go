// Package reason exposes the core engine's closure and membership
// procedures as a small set of named entry points (§6), each delegating
// directly to the corresponding root-package function. It adds no logic of
// its own: callers who want the container types back (ClassModel,
// PropertyModel, Data) rather than the bare fingerprint sets use this
// package instead of reaching into ontograph's internals.
package reason

import "github.com/kahefi/ontograph"

// SubClassesOf returns the transitive closure of subclasses of c (§4.2).
func SubClassesOf(c *ontograph.Class, cm *ontograph.ClassModel) *ontograph.ClassModel {
	return ontograph.EnlistSubClasses(c, cm)
}

// SuperClassesOf returns the transitive closure of superclasses of c (§4.2).
func SuperClassesOf(c *ontograph.Class, cm *ontograph.ClassModel) *ontograph.ClassModel {
	return ontograph.EnlistSuperClasses(c, cm)
}

// EquivalentClassesOf returns the classes equivalent to c (§4.3).
func EquivalentClassesOf(c *ontograph.Class, cm *ontograph.ClassModel) *ontograph.ClassModel {
	return ontograph.EnlistEquivalentClasses(c, cm)
}

// DisjointClassesOf returns the classes disjoint with c (§4.4).
func DisjointClassesOf(c *ontograph.Class, cm *ontograph.ClassModel) *ontograph.ClassModel {
	return ontograph.EnlistDisjointClasses(c, cm)
}

// SubPropertiesOf returns the transitive closure of subproperties of p (§4.2).
func SubPropertiesOf(p *ontograph.Property, pm *ontograph.PropertyModel) *ontograph.PropertyModel {
	return ontograph.EnlistSubProperties(p, pm)
}

// SuperPropertiesOf returns the transitive closure of superproperties of p (§4.2).
func SuperPropertiesOf(p *ontograph.Property, pm *ontograph.PropertyModel) *ontograph.PropertyModel {
	return ontograph.EnlistSuperProperties(p, pm)
}

// EquivalentPropertiesOf returns the properties equivalent to p (§4.3).
func EquivalentPropertiesOf(p *ontograph.Property, pm *ontograph.PropertyModel) *ontograph.PropertyModel {
	return ontograph.EnlistEquivalentProperties(p, pm)
}

// InversePropertiesOf returns the properties declared as the inverse of p,
// unioned with their equivalents (§4.3).
func InversePropertiesOf(p *ontograph.Property, pm *ontograph.PropertyModel) *ontograph.PropertyModel {
	return ontograph.EnlistInverseProperties(p, pm)
}

// SameFactsAs returns the facts sameAs f (§4.5).
func SameFactsAs(f *ontograph.Fact, d *ontograph.Data) *ontograph.Data {
	return ontograph.EnlistSameFacts(f, d)
}

// DifferentFactsFrom returns the facts asserted or entailed to be different
// from f (§4.5).
func DifferentFactsFrom(f *ontograph.Fact, d *ontograph.Data) *ontograph.Data {
	return ontograph.EnlistDifferentFrom(f, d)
}

// TransitiveAssertionsOf returns the facts reachable from f through
// p-typed assertions, for a transitive object property p (§4.6).
func TransitiveAssertionsOf(f *ontograph.Fact, p *ontograph.Property, d *ontograph.Data) *ontograph.Data {
	return ontograph.EnlistTransitiveAssertions(f, p, d)
}

// MembersOf returns the facts and literals satisfying class c, dispatching
// across restriction, composite, enumerated, data-range and plain class
// membership (§4.7-§4.8).
func MembersOf(c *ontograph.Class, o *ontograph.Ontology) *ontograph.Data {
	return ontograph.MembersOf(c, o)
}
