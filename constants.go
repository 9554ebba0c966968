package ontograph

// Static URIs used in ontologies (RDF, RDFS, OWL, XSD and DC). Extends the
// original vocabulary constants with the full reserved-term surface the
// graph decoder needs (§6) and the XSD datatype categories used by literal
// comparison (§4.7).
const (
	RDFType     string = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"
	RDFFirst    string = "http://www.w3.org/1999/02/22-rdf-syntax-ns#first"
	RDFRest     string = "http://www.w3.org/1999/02/22-rdf-syntax-ns#rest"
	RDFNil      string = "http://www.w3.org/1999/02/22-rdf-syntax-ns#nil"
	RDFProperty string = "http://www.w3.org/1999/02/22-rdf-syntax-ns#Property"

	RDFSComment       string = "http://www.w3.org/2000/01/rdf-schema#comment"
	RDFSLabel         string = "http://www.w3.org/2000/01/rdf-schema#label"
	RDFSSubClassOf    string = "http://www.w3.org/2000/01/rdf-schema#subClassOf"
	RDFSSubPropertyOf string = "http://www.w3.org/2000/01/rdf-schema#subPropertyOf"
	RDFSDomain        string = "http://www.w3.org/2000/01/rdf-schema#domain"
	RDFSRange         string = "http://www.w3.org/2000/01/rdf-schema#range"
	RDFSSeeAlso       string = "http://www.w3.org/2000/01/rdf-schema#seeAlso"
	RDFSIsDefinedBy   string = "http://www.w3.org/2000/01/rdf-schema#isDefinedBy"
	RDFSDatatype      string = "http://www.w3.org/2000/01/rdf-schema#Datatype"
	RDFSLiteral       string = "http://www.w3.org/2000/01/rdf-schema#Literal"
	RDFSResource      string = "http://www.w3.org/2000/01/rdf-schema#Resource"
	RDFSClass         string = "http://www.w3.org/2000/01/rdf-schema#Class"

	OWLOntology                  string = "http://www.w3.org/2002/07/owl#Ontology"
	OWLVersionInfo               string = "http://www.w3.org/2002/07/owl#versionInfo"
	OWLVersionIRI                string = "http://www.w3.org/2002/07/owl#versionIRI"
	OWLPriorVersion              string = "http://www.w3.org/2002/07/owl#priorVersion"
	OWLBackwardCompatibleWith    string = "http://www.w3.org/2002/07/owl#backwardCompatibleWith"
	OWLIncompatibleWith          string = "http://www.w3.org/2002/07/owl#incompatibleWith"
	OWLImports                   string = "http://www.w3.org/2002/07/owl#imports"
	OWLInverseOf                 string = "http://www.w3.org/2002/07/owl#inverseOf"
	OWLClass                     string = "http://www.w3.org/2002/07/owl#Class"
	OWLDeprecatedClass           string = "http://www.w3.org/2002/07/owl#DeprecatedClass"
	OWLDeprecatedProperty        string = "http://www.w3.org/2002/07/owl#DeprecatedProperty"
	OWLRestriction               string = "http://www.w3.org/2002/07/owl#Restriction"
	OWLDataRange                 string = "http://www.w3.org/2002/07/owl#DataRange"
	OWLEquivalentClass           string = "http://www.w3.org/2002/07/owl#equivalentClass"
	OWLDisjointWith              string = "http://www.w3.org/2002/07/owl#disjointWith"
	OWLOnProperty                string = "http://www.w3.org/2002/07/owl#onProperty"
	OWLOneOf                     string = "http://www.w3.org/2002/07/owl#oneOf"
	OWLUnionOf                   string = "http://www.w3.org/2002/07/owl#unionOf"
	OWLIntersectionOf            string = "http://www.w3.org/2002/07/owl#intersectionOf"
	OWLComplementOf              string = "http://www.w3.org/2002/07/owl#complementOf"
	OWLAllValuesFrom             string = "http://www.w3.org/2002/07/owl#allValuesFrom"
	OWLSomeValuesFrom            string = "http://www.w3.org/2002/07/owl#someValuesFrom"
	OWLHasValue                  string = "http://www.w3.org/2002/07/owl#hasValue"
	OWLCardinality               string = "http://www.w3.org/2002/07/owl#cardinality"
	OWLMinCardinality            string = "http://www.w3.org/2002/07/owl#minCardinality"
	OWLMaxCardinality            string = "http://www.w3.org/2002/07/owl#maxCardinality"
	OWLObjectProperty            string = "http://www.w3.org/2002/07/owl#ObjectProperty"
	OWLDatatypeProperty          string = "http://www.w3.org/2002/07/owl#DatatypeProperty"
	OWLAnnotationProperty        string = "http://www.w3.org/2002/07/owl#AnnotationProperty"
	OWLFunctionalProperty        string = "http://www.w3.org/2002/07/owl#FunctionalProperty"
	OWLInverseFunctionalProperty string = "http://www.w3.org/2002/07/owl#InverseFunctionalProperty"
	OWLSymmetricProperty         string = "http://www.w3.org/2002/07/owl#SymmetricProperty"
	OWLAsymmetricProperty        string = "http://www.w3.org/2002/07/owl#AsymmetricProperty"
	OWLTransitiveProperty        string = "http://www.w3.org/2002/07/owl#TransitiveProperty"
	OWLReflexiveProperty         string = "http://www.w3.org/2002/07/owl#ReflexiveProperty"
	OWLIrreflexiveProperty       string = "http://www.w3.org/2002/07/owl#IrreflexiveProperty"
	OWLPropertyDisjointWith      string = "http://www.w3.org/2002/07/owl#propertyDisjointWith"
	OWLEquivalentProperty        string = "http://www.w3.org/2002/07/owl#equivalentProperty"
	OWLNamedIndividual           string = "http://www.w3.org/2002/07/owl#NamedIndividual"
	OWLSameAs                    string = "http://www.w3.org/2002/07/owl#sameAs"
	OWLDifferentFrom             string = "http://www.w3.org/2002/07/owl#differentFrom"
	OWLThing                     string = "http://www.w3.org/2002/07/owl#Thing"
	OWLNothing                   string = "http://www.w3.org/2002/07/owl#Nothing"

	XSDString             string = "http://www.w3.org/2001/XMLSchema#string"
	XSDNormalizedString   string = "http://www.w3.org/2001/XMLSchema#normalizedString"
	XSDToken              string = "http://www.w3.org/2001/XMLSchema#token"
	XSDInteger            string = "http://www.w3.org/2001/XMLSchema#integer"
	XSDNonNegativeInteger string = "http://www.w3.org/2001/XMLSchema#nonNegativeInteger"
	XSDPositiveInteger    string = "http://www.w3.org/2001/XMLSchema#positiveInteger"
	XSDNonPositiveInteger string = "http://www.w3.org/2001/XMLSchema#nonPositiveInteger"
	XSDNegativeInteger    string = "http://www.w3.org/2001/XMLSchema#negativeInteger"
	XSDLong               string = "http://www.w3.org/2001/XMLSchema#long"
	XSDInt                string = "http://www.w3.org/2001/XMLSchema#int"
	XSDShort              string = "http://www.w3.org/2001/XMLSchema#short"
	XSDByte               string = "http://www.w3.org/2001/XMLSchema#byte"
	XSDDouble             string = "http://www.w3.org/2001/XMLSchema#double"
	XSDFloat              string = "http://www.w3.org/2001/XMLSchema#float"
	XSDDecimal            string = "http://www.w3.org/2001/XMLSchema#decimal"
	XSDBoolean            string = "http://www.w3.org/2001/XMLSchema#boolean"
	XSDDate               string = "http://www.w3.org/2001/XMLSchema#date"
	XSDTime               string = "http://www.w3.org/2001/XMLSchema#time"
	XSDDateTime           string = "http://www.w3.org/2001/XMLSchema#dateTime"
	XSDAnyURI             string = "http://www.w3.org/2001/XMLSchema#anyURI"

	DCTitle       string = "http://purl.org/dc/elements/1.1/title"
	DCCreator     string = "http://purl.org/dc/elements/1.1/creator"
	DCDescription string = "http://purl.org/dc/elements/1.1/description"
	DCDate        string = "http://purl.org/dc/elements/1.1/date"
	DCSource      string = "http://purl.org/dc/elements/1.1/source"
)

// reservedTerms is the full reserved vocabulary surface of §6: predicates and
// classes the decoder treats as structural rather than user-defined.
var reservedTerms = map[string]bool{
	RDFType: true, RDFFirst: true, RDFRest: true, RDFNil: true,
	RDFSSubClassOf: true, RDFSSubPropertyOf: true, RDFSDomain: true, RDFSRange: true,
	RDFSComment: true, RDFSLabel: true, RDFSSeeAlso: true, RDFSIsDefinedBy: true, RDFSLiteral: true,
	OWLOntology: true, OWLClass: true, OWLDeprecatedClass: true, OWLRestriction: true, OWLDataRange: true,
	OWLAnnotationProperty: true, OWLDatatypeProperty: true, OWLObjectProperty: true,
	OWLSymmetricProperty: true, OWLTransitiveProperty: true, OWLFunctionalProperty: true, OWLInverseFunctionalProperty: true,
	OWLOnProperty: true, OWLOneOf: true, OWLUnionOf: true, OWLIntersectionOf: true, OWLComplementOf: true,
	OWLAllValuesFrom: true, OWLSomeValuesFrom: true, OWLHasValue: true,
	OWLCardinality: true, OWLMinCardinality: true, OWLMaxCardinality: true,
	OWLSameAs: true, OWLDifferentFrom: true, OWLEquivalentClass: true, OWLDisjointWith: true,
	OWLEquivalentProperty: true, OWLInverseOf: true,
	OWLVersionInfo: true, OWLVersionIRI: true, OWLPriorVersion: true,
	OWLBackwardCompatibleWith: true, OWLIncompatibleWith: true, OWLImports: true,
}

// isReservedTerm reports whether the given IRI is part of the reserved
// RDF/RDFS/OWL vocabulary surface.
func isReservedTerm(iri string) bool {
	return reservedTerms[iri]
}
