package ontograph_test

import (
	"fmt"
	"time"

	"github.com/lithammer/shortuuid/v3"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	. "github.com/kahefi/ontograph"
)

var _ = Describe("Ontology", func() {
	var testUri string
	var ont *Ontology

	BeforeEach(func() {
		testUri = fmt.Sprintf("https://www.ontograph.com/test-%s", shortuuid.New())
		var err error
		ont, err = NewOntology(testUri)
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("Creating an ontology", func() {
		It("should reject an empty name", func() {
			_, err := NewOntology("")
			Expect(err).To(Equal(ErrEmptyOntologyName))
		})
		It("should expose the given name as its URI", func() {
			Expect(ont.GetURI()).To(Equal(testUri))
		})
	})

	Describe("Setting ontology labels and comments", func() {
		It("should have added the expected labels", func() {
			ont.SetLabel("label", "en")
			ont.SetLabel("should not appear", "de")
			ont.SetLabel("titel", "de")
			ont.SetLabel("42", "")
			Expect(ont.GetLabel("de")).To(Equal("titel"))
			Expect(ont.GetLabel("en")).To(Equal("label"))
			Expect(ont.GetLabel("")).To(Equal("42"))
		})
		It("should have added the expected comments", func() {
			ont.SetComment("comment", "en")
			ont.SetComment("should not appear", "de")
			ont.SetComment("kommentar", "de")
			ont.SetComment("42", "")
			Expect(ont.GetComment("de")).To(Equal("kommentar"))
			Expect(ont.GetComment("en")).To(Equal("comment"))
			Expect(ont.GetComment("")).To(Equal("42"))
		})
	})

	Describe("Retrieving the version of the ontology", func() {
		When("a version was set", func() {
			BeforeEach(func() {
				ont.SetVersion("0.42.1-get")
			})
			It("should return the expected version", func() {
				Expect(ont.GetVersion()).To(Equal("0.42.1-get"))
			})
		})
		When("no version was set", func() {
			It("should return an empty string", func() {
				Expect(ont.GetVersion()).To(Equal(""))
			})
		})
	})

	Describe("Setting the version of the ontology", func() {
		It("should replace any previously set version", func() {
			ont.SetVersion("0.1.0")
			ont.SetVersion("0.42.1-set")
			Expect(ont.GetVersion()).To(Equal("0.42.1-set"))
		})
	})

	Describe("Retrieving the imported ontologies", func() {
		When("imports have been defined", func() {
			var testImports []string
			BeforeEach(func() {
				testImports = []string{"http://abc-1.com", "https://abc-2.com", "http://test.de/42"}
				for _, uri := range testImports {
					ont.AddImport(uri)
				}
			})
			It("should return the expected list of URIs", func() {
				Expect(ont.GetImports()).To(ConsistOf(testImports))
			})
		})
		When("no imports have been defined", func() {
			It("should return an empty list", func() {
				Expect(ont.GetImports()).To(BeEmpty())
			})
		})
	})

	Describe("Adding an import to the ontology", func() {
		It("should have added the URI to the list of imports", func() {
			ont.AddImport("http://abc-1.com")
			Expect(ont.GetImports()).To(ContainElement("http://abc-1.com"))
		})
	})

	Describe("Registering and retrieving a class", func() {
		It("should return the same instance on repeated registration", func() {
			c := NewClass(testUri + "#class")
			c.Label[""] = "a label"
			registered := ont.Classes.Register(c)
			Expect(registered).To(Equal(c))

			reRegistered := ont.Classes.Register(NewClass(testUri + "#class"))
			Expect(reRegistered).To(Equal(registered))
			Expect(ont.Classes.Len()).To(Equal(1))
		})
		It("should be retrievable by URI and fingerprint", func() {
			c := NewClass(testUri + "#class")
			ont.Classes.Register(c)
			Expect(ont.Classes.GetByURI(testUri + "#class")).To(Equal(c))
			Expect(ont.Classes.Get(c.FP)).To(Equal(c))
			Expect(ont.Classes.Has(c.FP)).To(BeTrue())
		})
		It("should return nil for an unregistered class", func() {
			Expect(ont.Classes.GetByURI(testUri + "#missing")).To(BeNil())
		})
	})

	Describe("Registering a local class", func() {
		When("the class belongs to the ontology's namespace", func() {
			It("registers it and makes it requirable by URI", func() {
				registered, err := ont.RegisterLocalClass(NewClass(testUri + "#class"))
				Expect(err).NotTo(HaveOccurred())

				found, err := ont.RequireClassByURI(testUri + "#class")
				Expect(err).NotTo(HaveOccurred())
				Expect(found).To(Equal(registered))
			})
		})
		When("the class does not belong to the ontology's namespace", func() {
			It("rejects it and leaves it unresolvable", func() {
				_, err := ont.RegisterLocalClass(NewClass(testUri + "x#class"))
				Expect(err).To(Equal(ErrResourceDoesNotBelongToGraph))

				_, err = ont.RequireClassByURI(testUri + "x#class")
				Expect(err).To(Equal(ErrResourceNotFound))
			})
		})
	})

	Describe("Registering a local property", func() {
		When("the property belongs to the ontology's namespace", func() {
			It("registers it and makes it requirable by URI", func() {
				registered, err := ont.RegisterLocalProperty(NewProperty(testUri+"#prop", PropertyObject))
				Expect(err).NotTo(HaveOccurred())

				found, err := ont.RequirePropertyByURI(testUri + "#prop")
				Expect(err).NotTo(HaveOccurred())
				Expect(found).To(Equal(registered))
			})
		})
		When("the property does not belong to the ontology's namespace", func() {
			It("rejects it and leaves it unresolvable", func() {
				_, err := ont.RegisterLocalProperty(NewProperty(testUri+"x#prop", PropertyObject))
				Expect(err).To(Equal(ErrResourceDoesNotBelongToGraph))

				_, err = ont.RequirePropertyByURI(testUri + "x#prop")
				Expect(err).To(Equal(ErrResourceNotFound))
			})
		})
	})

	Describe("Registering and retrieving an object property", func() {
		It("should track the characteristics it was constructed with", func() {
			p := NewProperty(testUri+"#objectprop", PropertyObject)
			p.IsFunctional = true
			p.IsSymmetric = true
			p.IsTransitive = true
			ont.Properties.Register(p)

			retProp := ont.Properties.GetByURI(testUri + "#objectprop")
			Expect(retProp).To(Equal(p))
			Expect(retProp.CanCarryObjectCharacteristics()).To(BeTrue())
			Expect(retProp.IsFunctional).To(BeTrue())
			Expect(retProp.IsSymmetric).To(BeTrue())
			Expect(retProp.IsTransitive).To(BeTrue())
		})
	})

	Describe("Registering and retrieving a datatype property", func() {
		It("should not claim to carry object characteristics", func() {
			p := NewProperty(testUri+"#dataprop", PropertyDatatype)
			ont.Properties.Register(p)
			Expect(ont.Properties.GetByURI(testUri + "#dataprop").CanCarryObjectCharacteristics()).To(BeFalse())
		})
	})

	Describe("Registering and retrieving a fact", func() {
		It("should successfully add the fact to the data container", func() {
			f := NewFact(testUri + "#indiv")
			ont.Data.RegisterFact(f)
			Expect(ont.Data.GetFactByURI(testUri + "#indiv")).To(Equal(f))
			Expect(ont.Data.HasFact(f.FP)).To(BeTrue())
		})
		It("should track blank-node facts via their '_:' URI form", func() {
			f := NewBlankFact("b1")
			ont.Data.RegisterFact(f)
			Expect(f.GetURI()).To(Equal("_:b1"))
		})
	})

	Describe("Recording class-type assertions", func() {
		It("should be retrievable from the ClassType taxonomy", func() {
			f := ont.Data.RegisterFact(NewFact(testUri + "#indiv"))
			c := ont.Classes.Register(NewClass(testUri + "#class"))
			ont.Data.ClassType.Add(TaxonomyEntry{Subject: f.FP, Predicate: NewIRIResource(RDFType).FP, Object: c.FP})

			Expect(ont.Data.ClassType.Contains(f.FP, NewIRIResource(RDFType).FP, c.FP)).To(BeTrue())
			entries := ont.Data.ClassType.BySubject(f.FP)
			Expect(entries).To(HaveLen(1))
			Expect(entries[0].Object).To(Equal(c.FP))
		})
	})
})

var _ = Describe("Typed literal accessors", func() {
	Describe("xsd:string", func() {
		It("round-trips through ToLiteral/ToXSDString", func() {
			lit := XSDStringLiteral("hello").ToLiteral()
			Expect(lit.Datatype).To(Equal(XSDString))
			val, err := ToXSDString(lit)
			Expect(err).NotTo(HaveOccurred())
			Expect(val).To(Equal(XSDStringLiteral("hello")))
		})
		It("also accepts an untyped literal", func() {
			_, err := ToXSDString(NewLiteral("untyped", "", ""))
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Describe("xsd:integer", func() {
		It("round-trips through ToLiteral/ToXSDInteger", func() {
			lit := XSDIntegerLiteral(42).ToLiteral()
			val, err := ToXSDInteger(lit)
			Expect(err).NotTo(HaveOccurred())
			Expect(val).To(Equal(XSDIntegerLiteral(42)))
		})
		It("rejects a non-numeric datatype", func() {
			_, err := ToXSDInteger(NewLiteral("42", XSDString, ""))
			Expect(err).To(Equal(ErrLiteralTypeMismatch))
		})
	})

	Describe("xsd:decimal", func() {
		It("round-trips through ToLiteral/ToXSDDecimal", func() {
			lit := XSDDecimalLiteral(3.14).ToLiteral()
			val, err := ToXSDDecimal(lit)
			Expect(err).NotTo(HaveOccurred())
			Expect(float64(val)).To(BeNumerically("~", 3.14, 0.0001))
		})
	})

	Describe("xsd:boolean", func() {
		It("round-trips through ToLiteral/ToXSDBoolean", func() {
			lit := XSDBooleanLiteral(true).ToLiteral()
			val, err := ToXSDBoolean(lit)
			Expect(err).NotTo(HaveOccurred())
			Expect(bool(val)).To(BeTrue())
		})
		It("rejects a non-boolean datatype", func() {
			_, err := ToXSDBoolean(NewLiteral("true", XSDString, ""))
			Expect(err).To(Equal(ErrLiteralTypeMismatch))
		})
	})

	Describe("xsd:anyURI", func() {
		It("round-trips through ToLiteral/ToXSDAnyURI", func() {
			lit := XSDAnyURILiteral("http://abc.com/resource").ToLiteral()
			val, err := ToXSDAnyURI(lit)
			Expect(err).NotTo(HaveOccurred())
			Expect(val).To(Equal(XSDAnyURILiteral("http://abc.com/resource")))
		})
	})

	Describe("xsd:dateTime", func() {
		It("round-trips through ToLiteral/ToXSDDateTime", func() {
			now := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
			lit := XSDDateTimeLiteral(now).ToLiteral()
			val, err := ToXSDDateTime(lit)
			Expect(err).NotTo(HaveOccurred())
			Expect(time.Time(val).Equal(now)).To(BeTrue())
		})
		It("rejects a malformed lexical form", func() {
			_, err := ToXSDDateTime(NewLiteral("not-a-date", XSDDateTime, ""))
			Expect(err).To(HaveOccurred())
		})
	})
})
