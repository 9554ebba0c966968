package ontograph_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	. "github.com/kahefi/ontograph"
)

var _ = Describe("Taxonomic closures", func() {
	var ont *Ontology

	BeforeEach(func() {
		var err error
		ont, err = NewOntology("http://closures.test/onto")
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("EnlistSubClasses / EnlistSuperClasses", func() {
		var animal, mammal, dog, poodle *Class

		BeforeEach(func() {
			animal = ont.Classes.Register(NewClass("http://closures.test/Animal"))
			mammal = ont.Classes.Register(NewClass("http://closures.test/Mammal"))
			dog = ont.Classes.Register(NewClass("http://closures.test/Dog"))
			poodle = ont.Classes.Register(NewClass("http://closures.test/Poodle"))
			ont.Classes.SubClassOf.Add(TaxonomyEntry{Subject: mammal.FP, Object: animal.FP})
			ont.Classes.SubClassOf.Add(TaxonomyEntry{Subject: dog.FP, Object: mammal.FP})
			ont.Classes.SubClassOf.Add(TaxonomyEntry{Subject: poodle.FP, Object: dog.FP})
		})

		It("transitively collects every subclass", func() {
			subs := EnlistSubClasses(animal, ont.Classes)
			Expect(subs.Has(mammal.FP)).To(BeTrue())
			Expect(subs.Has(dog.FP)).To(BeTrue())
			Expect(subs.Has(poodle.FP)).To(BeTrue())
			Expect(subs.Has(animal.FP)).To(BeFalse())
		})

		It("transitively collects every superclass", func() {
			sups := EnlistSuperClasses(poodle, ont.Classes)
			Expect(sups.Has(dog.FP)).To(BeTrue())
			Expect(sups.Has(mammal.FP)).To(BeTrue())
			Expect(sups.Has(animal.FP)).To(BeTrue())
			Expect(sups.Has(poodle.FP)).To(BeFalse())
		})

		It("returns an empty model for a nil class", func() {
			Expect(EnlistSubClasses(nil, ont.Classes).Len()).To(Equal(0))
			Expect(EnlistSuperClasses(nil, ont.Classes).Len()).To(Equal(0))
		})

		When("the taxonomy contains a cycle", func() {
			BeforeEach(func() {
				// Close the loop: animal subClassOf poodle.
				ont.Classes.SubClassOf.Add(TaxonomyEntry{Subject: animal.FP, Object: poodle.FP})
			})

			It("still terminates and returns the full reachable set", func() {
				subs := EnlistSubClasses(animal, ont.Classes)
				Expect(subs.Has(mammal.FP)).To(BeTrue())
				Expect(subs.Has(dog.FP)).To(BeTrue())
				Expect(subs.Has(poodle.FP)).To(BeTrue())
			})
		})
	})

	Describe("EnlistEquivalentClasses", func() {
		It("is symmetric regardless of which direction was asserted", func() {
			a := ont.Classes.Register(NewClass("http://closures.test/A"))
			b := ont.Classes.Register(NewClass("http://closures.test/B"))
			ont.Classes.EquivalentClass.Add(TaxonomyEntry{Subject: a.FP, Object: b.FP})

			Expect(EnlistEquivalentClasses(a, ont.Classes).Has(b.FP)).To(BeTrue())
			Expect(EnlistEquivalentClasses(b, ont.Classes).Has(a.FP)).To(BeTrue())
		})

		It("propagates through a chain of equivalences", func() {
			a := ont.Classes.Register(NewClass("http://closures.test/A"))
			b := ont.Classes.Register(NewClass("http://closures.test/B"))
			c := ont.Classes.Register(NewClass("http://closures.test/C"))
			ont.Classes.EquivalentClass.Add(TaxonomyEntry{Subject: a.FP, Object: b.FP})
			ont.Classes.EquivalentClass.Add(TaxonomyEntry{Subject: b.FP, Object: c.FP})

			Expect(EnlistEquivalentClasses(a, ont.Classes).Has(c.FP)).To(BeTrue())
		})
	})

	Describe("EnlistDisjointClasses", func() {
		It("propagates disjointness down subclasses and across equivalents", func() {
			cat := ont.Classes.Register(NewClass("http://closures.test/Cat"))
			dog := ont.Classes.Register(NewClass("http://closures.test/Dog"))
			puppy := ont.Classes.Register(NewClass("http://closures.test/Puppy"))
			hound := ont.Classes.Register(NewClass("http://closures.test/Hound"))

			ont.Classes.DisjointWith.Add(TaxonomyEntry{Subject: cat.FP, Object: dog.FP})
			ont.Classes.SubClassOf.Add(TaxonomyEntry{Subject: puppy.FP, Object: dog.FP})
			ont.Classes.EquivalentClass.Add(TaxonomyEntry{Subject: hound.FP, Object: dog.FP})

			disjoint := EnlistDisjointClasses(cat, ont.Classes)
			Expect(disjoint.Has(dog.FP)).To(BeTrue())
			Expect(disjoint.Has(puppy.FP)).To(BeTrue())
			Expect(disjoint.Has(hound.FP)).To(BeTrue())
		})

		It("inherits disjointness from superclasses", func() {
			animal := ont.Classes.Register(NewClass("http://closures.test/Animal"))
			mineral := ont.Classes.Register(NewClass("http://closures.test/Mineral"))
			dog := ont.Classes.Register(NewClass("http://closures.test/Dog"))

			ont.Classes.DisjointWith.Add(TaxonomyEntry{Subject: animal.FP, Object: mineral.FP})
			ont.Classes.SubClassOf.Add(TaxonomyEntry{Subject: dog.FP, Object: animal.FP})

			Expect(EnlistDisjointClasses(dog, ont.Classes).Has(mineral.FP)).To(BeTrue())
		})
	})

	Describe("EnlistSameFacts / EnlistDifferentFrom", func() {
		var alice, ally, bob *Fact

		BeforeEach(func() {
			alice = ont.Data.RegisterFact(NewFact("http://closures.test/alice"))
			ally = ont.Data.RegisterFact(NewFact("http://closures.test/ally"))
			bob = ont.Data.RegisterFact(NewFact("http://closures.test/bob"))
			ont.Data.SameAs.Add(TaxonomyEntry{Subject: alice.FP, Object: ally.FP})
			ont.Data.DifferentFrom.Add(TaxonomyEntry{Subject: alice.FP, Object: bob.FP})
		})

		It("collects sameAs facts in both directions", func() {
			Expect(EnlistSameFacts(alice, ont.Data).HasFact(ally.FP)).To(BeTrue())
			Expect(EnlistSameFacts(ally, ont.Data).HasFact(alice.FP)).To(BeTrue())
		})

		It("propagates differentFrom across a sameAs closure", func() {
			diff := EnlistDifferentFrom(ally, ont.Data)
			Expect(diff.HasFact(bob.FP)).To(BeTrue())
		})
	})

	Describe("EnlistTransitiveAssertions", func() {
		It("follows only entries with a matching predicate", func() {
			locatedIn := ont.Properties.Register(NewProperty("http://closures.test/locatedIn", PropertyObject))
			ownedBy := ont.Properties.Register(NewProperty("http://closures.test/ownedBy", PropertyObject))
			room := ont.Data.RegisterFact(NewFact("http://closures.test/room"))
			building := ont.Data.RegisterFact(NewFact("http://closures.test/building"))
			city := ont.Data.RegisterFact(NewFact("http://closures.test/city"))
			owner := ont.Data.RegisterFact(NewFact("http://closures.test/owner"))

			ont.Data.Assertions.Add(TaxonomyEntry{Subject: room.FP, Predicate: locatedIn.FP, Object: building.FP})
			ont.Data.Assertions.Add(TaxonomyEntry{Subject: building.FP, Predicate: locatedIn.FP, Object: city.FP})
			ont.Data.Assertions.Add(TaxonomyEntry{Subject: room.FP, Predicate: ownedBy.FP, Object: owner.FP})

			reach := EnlistTransitiveAssertions(room, locatedIn, ont.Data)
			Expect(reach.HasFact(building.FP)).To(BeTrue())
			Expect(reach.HasFact(city.FP)).To(BeTrue())
			Expect(reach.HasFact(owner.FP)).To(BeFalse())
		})

		It("terminates on a cyclic chain of assertions", func() {
			next := ont.Properties.Register(NewProperty("http://closures.test/next", PropertyObject))
			a := ont.Data.RegisterFact(NewFact("http://closures.test/a"))
			b := ont.Data.RegisterFact(NewFact("http://closures.test/b"))
			ont.Data.Assertions.Add(TaxonomyEntry{Subject: a.FP, Predicate: next.FP, Object: b.FP})
			ont.Data.Assertions.Add(TaxonomyEntry{Subject: b.FP, Predicate: next.FP, Object: a.FP})

			reach := EnlistTransitiveAssertions(a, next, ont.Data)
			Expect(reach.HasFact(b.FP)).To(BeTrue())
			Expect(reach.Len()).To(Equal(2))
		})
	})
})
