package ontograph

import (
	"errors"
	"strings"
)

// ErrEmptyOntologyName is a construction-precondition violation (§7.1):
// raised synchronously when an ontology is created without a name.
var ErrEmptyOntologyName = errors.New("ontology name must not be empty")

// Ontology is the aggregate of a class model, a property model, a data
// (A-Box) container and ontology-level annotations (version, imports,
// labels, comments and other custom annotation properties).
type Ontology struct {
	Name       string
	Classes    *ClassModel
	Properties *PropertyModel
	Data       *Data

	// annotations holds ontology-level annotation values keyed by the
	// annotation predicate's fingerprint. Literal-valued annotations
	// (versionInfo, label, comment, ...) and resource-valued annotations
	// (imports, seeAlso, ...) are tracked separately.
	annotations         map[Fingerprint][]Literal
	annotationResources map[Fingerprint][]Fingerprint

	expanded bool
}

// NewOntology creates a new, empty ontology with the given IRI. Creating an
// ontology with an empty name is a construction precondition violation and
// surfaces synchronously (§7.1).
func NewOntology(name string) (*Ontology, error) {
	if name == "" {
		return nil, ErrEmptyOntologyName
	}
	return &Ontology{
		Name:                name,
		Classes:             NewClassModel(),
		Properties:          NewPropertyModel(),
		Data:                NewData(),
		annotations:         map[Fingerprint][]Literal{},
		annotationResources: map[Fingerprint][]Fingerprint{},
	}, nil
}

// GetURI returns the IRI of the ontology.
func (o *Ontology) GetURI() string {
	return o.Name
}

// SetAnnotation records a literal-valued ontology annotation under the
// given predicate IRI, replacing any previous values (used for versionInfo
// where "all previous versions will be deleted when a new one is set").
func (o *Ontology) SetAnnotation(predicateIRI string, lit *Literal) {
	fp := NewIRIResource(predicateIRI).FP
	o.annotations[fp] = []Literal{*lit}
}

// AddAnnotation appends a literal-valued ontology annotation under the
// given predicate IRI.
func (o *Ontology) AddAnnotation(predicateIRI string, lit *Literal) {
	fp := NewIRIResource(predicateIRI).FP
	o.annotations[fp] = append(o.annotations[fp], *lit)
}

// GetAnnotations returns the literal-valued annotations recorded under the
// given predicate IRI.
func (o *Ontology) GetAnnotations(predicateIRI string) []Literal {
	return o.annotations[NewIRIResource(predicateIRI).FP]
}

// AddAnnotationResource appends a resource-valued ontology annotation
// (e.g. owl:imports, rdfs:seeAlso) under the given predicate IRI.
func (o *Ontology) AddAnnotationResource(predicateIRI string, targetIRI string) {
	fp := NewIRIResource(predicateIRI).FP
	o.annotationResources[fp] = append(o.annotationResources[fp], NewIRIResource(targetIRI).FP)
}

// GetVersion returns the version set for this ontology, or the empty
// string if none was set.
func (o *Ontology) GetVersion() string {
	vals := o.GetAnnotations(OWLVersionInfo)
	if len(vals) == 0 {
		return ""
	}
	return vals[0].Lexical
}

// SetVersion sets the version of this ontology. All previous versions are
// discarded, matching the teacher store's documented "last write wins"
// semantics for owl:versionInfo.
func (o *Ontology) SetVersion(version string) {
	o.SetAnnotation(OWLVersionInfo, NewLiteral(version, "", ""))
}

// GetImports returns the list of IRIs imported by this ontology.
func (o *Ontology) GetImports() []string {
	fps := o.annotationResources[NewIRIResource(OWLImports).FP]
	out := make([]string, 0, len(fps))
	for _, fp := range fps {
		if c := o.Classes.Get(fp); c != nil {
			out = append(out, c.IRI)
		}
	}
	return out
}

// AddImport records an imported ontology IRI.
func (o *Ontology) AddImport(iri string) {
	o.AddAnnotationResource(OWLImports, iri)
	// Keep a resolvable class record so GetImports can recover the IRI
	// from its fingerprint without a separate string table.
	o.Classes.Register(NewClass(iri))
}

// GetLabel returns the ontology's rdfs:label for the given language tag.
func (o *Ontology) GetLabel(lang string) string {
	for _, l := range o.GetAnnotations(RDFSLabel) {
		if l.Language == lang {
			return l.Lexical
		}
	}
	return ""
}

// SetLabel sets the ontology's rdfs:label for the given language tag,
// replacing any previous label with the same tag.
func (o *Ontology) SetLabel(value, lang string) {
	fp := NewIRIResource(RDFSLabel).FP
	kept := o.annotations[fp][:0]
	for _, l := range o.annotations[fp] {
		if l.Language != lang {
			kept = append(kept, l)
		}
	}
	o.annotations[fp] = append(kept, *NewLiteral(value, "", lang))
}

// OwnsIRI reports whether iri is rooted under this ontology's own namespace
// (its name followed by "#"), the same namespace test the teacher's
// UpsertResource used to decide whether a resource belongs to the graph.
func (o *Ontology) OwnsIRI(iri string) bool {
	return strings.HasPrefix(iri, o.Name+"#")
}

// RegisterLocalClass registers a class that is meant to be owned by this
// ontology, rejecting it with ErrResourceDoesNotBelongToGraph if its IRI is
// not rooted under the ontology's own namespace (§7.1).
func (o *Ontology) RegisterLocalClass(c *Class) (*Class, error) {
	if !o.OwnsIRI(c.GetURI()) {
		return nil, ErrResourceDoesNotBelongToGraph
	}
	return o.Classes.Register(c), nil
}

// RegisterLocalProperty registers a property that is meant to be owned by
// this ontology, rejecting it with ErrResourceDoesNotBelongToGraph if its
// IRI is not rooted under the ontology's own namespace (§7.1).
func (o *Ontology) RegisterLocalProperty(p *Property) (*Property, error) {
	if !o.OwnsIRI(p.GetURI()) {
		return nil, ErrResourceDoesNotBelongToGraph
	}
	return o.Properties.Register(p), nil
}

// RequireClassByURI resolves a class by IRI, returning ErrResourceNotFound
// when no class with that IRI is registered.
func (o *Ontology) RequireClassByURI(iri string) (*Class, error) {
	c := o.Classes.GetByURI(iri)
	if c == nil {
		return nil, ErrResourceNotFound
	}
	return c, nil
}

// RequirePropertyByURI resolves a property by IRI, returning
// ErrResourceNotFound when no property with that IRI is registered.
func (o *Ontology) RequirePropertyByURI(iri string) (*Property, error) {
	p := o.Properties.GetByURI(iri)
	if p == nil {
		return nil, ErrResourceNotFound
	}
	return p, nil
}

// GetComment returns the ontology's rdfs:comment for the given language tag.
func (o *Ontology) GetComment(lang string) string {
	for _, l := range o.GetAnnotations(RDFSComment) {
		if l.Language == lang {
			return l.Lexical
		}
	}
	return ""
}

// SetComment sets the ontology's rdfs:comment for the given language tag,
// replacing any previous comment with the same tag.
func (o *Ontology) SetComment(value, lang string) {
	fp := NewIRIResource(RDFSComment).FP
	kept := o.annotations[fp][:0]
	for _, l := range o.annotations[fp] {
		if l.Language != lang {
			kept = append(kept, l)
		}
	}
	o.annotations[fp] = append(kept, *NewLiteral(value, "", lang))
}
