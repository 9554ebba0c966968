package ontograph

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint is the deterministic 64-bit identity of a resource, used as hash
// key and equality witness throughout the taxonomy and reasoning layers.
type Fingerprint uint64

// ResourceKind discriminates the identity flavor of a Resource.
type ResourceKind uint8

const (
	// KindIRI identifies a named resource.
	KindIRI ResourceKind = iota
	// KindBlank identifies a blank node.
	KindBlank
	// KindLiteral identifies a literal value.
	KindLiteral
)

// Resource is the base of every identity-bearing value in the model: classes,
// properties, facts and literals all embed it. Resources are never mutated
// after construction; kind and identity are fixed at creation time.
type Resource struct {
	FP    Fingerprint
	Kind  ResourceKind
	IRI   string // set when Kind == KindIRI
	Blank string // set when Kind == KindBlank
}

// Fingerprint returns the resource's stable 64-bit identity.
func (r Resource) Fingerprint() Fingerprint {
	return r.FP
}

// GetURI returns the IRI of the resource, or its blank-node label prefixed
// with "_:" if it is a blank node.
func (r Resource) GetURI() string {
	if r.Kind == KindBlank {
		return "_:" + r.Blank
	}
	return r.IRI
}

// FingerprintString deterministically fingerprints an arbitrary canonical
// string form. Used by resource constructors and by literal/datatype
// canonicalization alike.
func FingerprintString(s string) Fingerprint {
	return Fingerprint(xxhash.Sum64String(s))
}

// NewIRIResource creates a resource identity for a named (IRI) term.
func NewIRIResource(iri string) Resource {
	return Resource{
		FP:  FingerprintString("I:" + iri),
		Kind: KindIRI,
		IRI: iri,
	}
}

// NewBlankResource creates a resource identity for a blank node with the
// given local label.
func NewBlankResource(label string) Resource {
	return Resource{
		FP:    FingerprintString("B:" + label),
		Kind:  KindBlank,
		Blank: label,
	}
}

// literalCanonicalForm builds the canonical string a literal's fingerprint is
// derived from: lexical form, datatype IRI and language tag.
func literalCanonicalForm(lexical, datatype, language string) string {
	return fmt.Sprintf("L:%s|%s|%s", lexical, datatype, language)
}
