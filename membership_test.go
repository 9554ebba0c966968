package ontograph_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	. "github.com/kahefi/ontograph"
)

var _ = Describe("Class membership", func() {
	var ont *Ontology

	BeforeEach(func() {
		var err error
		ont, err = NewOntology("http://membership.test/onto")
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("Restriction membership", func() {
		var hasChild *Property
		var parent, child1, child2 *Fact

		BeforeEach(func() {
			hasChild = ont.Properties.Register(NewProperty("http://membership.test/hasChild", PropertyObject))
			parent = ont.Data.RegisterFact(NewFact("http://membership.test/parent"))
			child1 = ont.Data.RegisterFact(NewFact("http://membership.test/child1"))
			child2 = ont.Data.RegisterFact(NewFact("http://membership.test/child2"))
			ont.Data.Assertions.Add(TaxonomyEntry{Subject: parent.FP, Predicate: hasChild.FP, Object: child1.FP})
			ont.Data.Assertions.Add(TaxonomyEntry{Subject: parent.FP, Predicate: hasChild.FP, Object: child2.FP})
		})

		It("enforces a minCardinality restriction", func() {
			r := ont.Classes.Register(NewBlankClass("atLeastTwoChildren"))
			r.Kind = ClassRestriction
			r.Restriction = &RestrictionInfo{OnProperty: hasChild.FP, Variant: VariantCardinality, MinCardinality: 2, MinActive: true}

			members := MembersOfRestriction(r, ont)
			Expect(members.HasFact(parent.FP)).To(BeTrue())

			r.Restriction.MinCardinality = 3
			Expect(MembersOfRestriction(r, ont).HasFact(parent.FP)).To(BeFalse())
		})

		It("enforces a maxCardinality restriction", func() {
			r := ont.Classes.Register(NewBlankClass("atMostOneChild"))
			r.Kind = ClassRestriction
			r.Restriction = &RestrictionInfo{OnProperty: hasChild.FP, Variant: VariantCardinality, MaxCardinality: 1, MaxActive: true}

			Expect(MembersOfRestriction(r, ont).HasFact(parent.FP)).To(BeFalse())
		})

		It("returns an empty Data for a non-restriction class", func() {
			plain := ont.Classes.Register(NewClass("http://membership.test/Plain"))
			Expect(MembersOfRestriction(plain, ont).Len()).To(Equal(0))
		})

		Describe("allValuesFrom", func() {
			var personClass *Class

			BeforeEach(func() {
				personClass = ont.Classes.Register(NewClass("http://membership.test/Person"))
				ont.Data.ClassType.Add(TaxonomyEntry{Subject: child1.FP, Predicate: NewIRIResource(RDFType).FP, Object: personClass.FP})
				ont.Data.ClassType.Add(TaxonomyEntry{Subject: child2.FP, Predicate: NewIRIResource(RDFType).FP, Object: personClass.FP})
			})

			It("admits a subject whose every value is in the target class", func() {
				r := ont.Classes.Register(NewBlankClass("onlyPersons"))
				r.Kind = ClassRestriction
				r.Restriction = &RestrictionInfo{OnProperty: hasChild.FP, Variant: VariantAllValuesFrom, TargetClass: personClass.FP}

				Expect(MembersOfRestriction(r, ont).HasFact(parent.FP)).To(BeTrue())
			})

			It("excludes a subject with one value outside the target class", func() {
				// A fresh subject/value pair where the value is typed only
				// as Other, never as Person.
				other := ont.Classes.Register(NewClass("http://membership.test/Other"))
				guardian := ont.Data.RegisterFact(NewFact("http://membership.test/guardian"))
				ward := ont.Data.RegisterFact(NewFact("http://membership.test/ward"))
				ont.Data.Assertions.Add(TaxonomyEntry{Subject: guardian.FP, Predicate: hasChild.FP, Object: ward.FP})
				ont.Data.ClassType.Add(TaxonomyEntry{Subject: ward.FP, Predicate: NewIRIResource(RDFType).FP, Object: other.FP})

				r := ont.Classes.Register(NewBlankClass("onlyPersons2"))
				r.Kind = ClassRestriction
				r.Restriction = &RestrictionInfo{OnProperty: hasChild.FP, Variant: VariantAllValuesFrom, TargetClass: personClass.FP}

				members := MembersOfRestriction(r, ont)
				Expect(members.HasFact(parent.FP)).To(BeTrue())
				Expect(members.HasFact(guardian.FP)).To(BeFalse())
			})
		})

		Describe("someValuesFrom", func() {
			It("admits a subject with at least one matching value", func() {
				personClass := ont.Classes.Register(NewClass("http://membership.test/Person"))
				ont.Data.ClassType.Add(TaxonomyEntry{Subject: child1.FP, Predicate: NewIRIResource(RDFType).FP, Object: personClass.FP})

				r := ont.Classes.Register(NewBlankClass("someChildIsPerson"))
				r.Kind = ClassRestriction
				r.Restriction = &RestrictionInfo{OnProperty: hasChild.FP, Variant: VariantSomeValuesFrom, TargetClass: personClass.FP}

				Expect(MembersOfRestriction(r, ont).HasFact(parent.FP)).To(BeTrue())
			})
		})

		Describe("hasValue", func() {
			It("admits subjects asserting the exact fact value", func() {
				r := ont.Classes.Register(NewBlankClass("hasChild1"))
				r.Kind = ClassRestriction
				r.Restriction = &RestrictionInfo{OnProperty: hasChild.FP, Variant: VariantHasValue, HasValueIsFact: true, HasValueResource: child1.FP}

				Expect(MembersOfRestriction(r, ont).HasFact(parent.FP)).To(BeTrue())
			})

			It("admits subjects asserting a literal equal to the restriction value", func() {
				hasAge := ont.Properties.Register(NewProperty("http://membership.test/hasAge", PropertyDatatype))
				ageLit := NewLiteral("42", XSDInteger, "")
				ont.Data.RegisterLiteral(ageLit)
				ont.Data.Assertions.Add(TaxonomyEntry{Subject: parent.FP, Predicate: hasAge.FP, Object: ageLit.FP})

				r := ont.Classes.Register(NewBlankClass("isFortyTwo"))
				r.Kind = ClassRestriction
				r.Restriction = &RestrictionInfo{OnProperty: hasAge.FP, Variant: VariantHasValue, HasValueLiteral: NewLiteral("42", XSDInteger, "")}

				Expect(MembersOfRestriction(r, ont).HasFact(parent.FP)).To(BeTrue())
			})
		})
	})

	Describe("Composite membership", func() {
		var young, student *Class
		var alice, bob, carl *Fact

		BeforeEach(func() {
			young = ont.Classes.Register(NewClass("http://membership.test/Young"))
			student = ont.Classes.Register(NewClass("http://membership.test/Student"))
			alice = ont.Data.RegisterFact(NewFact("http://membership.test/alice"))
			bob = ont.Data.RegisterFact(NewFact("http://membership.test/bob"))
			carl = ont.Data.RegisterFact(NewFact("http://membership.test/carl"))

			rdfTypeFP := NewIRIResource(RDFType).FP
			ont.Data.ClassType.Add(TaxonomyEntry{Subject: alice.FP, Predicate: rdfTypeFP, Object: young.FP})
			ont.Data.ClassType.Add(TaxonomyEntry{Subject: bob.FP, Predicate: rdfTypeFP, Object: student.FP})
			ont.Data.ClassType.Add(TaxonomyEntry{Subject: carl.FP, Predicate: rdfTypeFP, Object: young.FP})
			ont.Data.ClassType.Add(TaxonomyEntry{Subject: carl.FP, Predicate: rdfTypeFP, Object: student.FP})
		})

		It("unions members of every child class", func() {
			u := ont.Classes.Register(NewBlankClass("youngOrStudent"))
			u.Kind = ClassUnion
			ont.Classes.UnionOf.Add(TaxonomyEntry{Subject: u.FP, Object: young.FP})
			ont.Classes.UnionOf.Add(TaxonomyEntry{Subject: u.FP, Object: student.FP})

			members := MembersOf(u, ont)
			Expect(members.HasFact(alice.FP)).To(BeTrue())
			Expect(members.HasFact(bob.FP)).To(BeTrue())
			Expect(members.HasFact(carl.FP)).To(BeTrue())
		})

		It("intersects members of every child class", func() {
			i := ont.Classes.Register(NewBlankClass("youngAndStudent"))
			i.Kind = ClassIntersection
			ont.Classes.IntersectionOf.Add(TaxonomyEntry{Subject: i.FP, Object: young.FP})
			ont.Classes.IntersectionOf.Add(TaxonomyEntry{Subject: i.FP, Object: student.FP})

			members := MembersOf(i, ont)
			Expect(members.HasFact(carl.FP)).To(BeTrue())
			Expect(members.HasFact(alice.FP)).To(BeFalse())
			Expect(members.HasFact(bob.FP)).To(BeFalse())
		})

		It("complements the target class against all facts", func() {
			c := ont.Classes.Register(NewBlankClass("notYoung"))
			c.Kind = ClassComplement
			ont.Classes.ComplementOf.Add(TaxonomyEntry{Subject: c.FP, Object: young.FP})

			members := MembersOf(c, ont)
			Expect(members.HasFact(bob.FP)).To(BeTrue())
			Expect(members.HasFact(alice.FP)).To(BeFalse())
			Expect(members.HasFact(carl.FP)).To(BeFalse())
		})

		It("enlists oneOf facts for an enumerated class", func() {
			e := ont.Classes.Register(NewBlankClass("theTrio"))
			e.Kind = ClassEnumerate
			ont.Classes.OneOf.Add(TaxonomyEntry{Subject: e.FP, Object: alice.FP})
			ont.Classes.OneOf.Add(TaxonomyEntry{Subject: e.FP, Object: bob.FP})

			members := MembersOf(e, ont)
			Expect(members.HasFact(alice.FP)).To(BeTrue())
			Expect(members.HasFact(bob.FP)).To(BeTrue())
			Expect(members.HasFact(carl.FP)).To(BeFalse())
		})

		It("returns plain-class members including asserted type and its subclasses", func() {
			puppy := ont.Classes.Register(NewClass("http://membership.test/Puppy"))
			ont.Classes.SubClassOf.Add(TaxonomyEntry{Subject: puppy.FP, Object: young.FP})
			rex := ont.Data.RegisterFact(NewFact("http://membership.test/rex"))
			ont.Data.ClassType.Add(TaxonomyEntry{Subject: rex.FP, Predicate: NewIRIResource(RDFType).FP, Object: puppy.FP})

			members := MembersOf(young, ont)
			Expect(members.HasFact(alice.FP)).To(BeTrue())
			Expect(members.HasFact(rex.FP)).To(BeTrue())
		})
	})

	Describe("Literal-compatible class membership", func() {
		It("returns every literal for rdfs:Literal", func() {
			lit := NewLiteral("hello", XSDString, "")
			ont.Data.RegisterLiteral(lit)
			literalClass := ont.Classes.Register(NewClass(RDFSLiteral))

			members := MembersOf(literalClass, ont)
			Expect(members.Literals()).To(HaveLen(1))
		})

		It("returns only string-category literals for xsd:string", func() {
			strLit := NewLiteral("hello", XSDString, "")
			intLit := NewLiteral("42", XSDInteger, "")
			ont.Data.RegisterLiteral(strLit)
			ont.Data.RegisterLiteral(intLit)
			stringClass := ont.Classes.Register(NewClass(XSDString))

			members := MembersOf(stringClass, ont)
			Expect(members.Literals()).To(HaveLen(1))
			Expect(members.Literals()[0].FP).To(Equal(strLit.FP))
		})
	})
})
