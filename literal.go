package ontograph

import "strconv"

// Literal is an immutable plain or typed literal term: a resource carrying a
// lexical form plus an optional datatype IRI and/or language tag.
type Literal struct {
	Resource
	Lexical  string
	Datatype string // empty when untyped
	Language string // empty when no language tag
}

// NewLiteral constructs a Literal resource. Exactly one of datatype/language
// is expected to be non-empty in well-formed RDF, but both may be empty for a
// plain literal.
func NewLiteral(lexical, datatype, language string) *Literal {
	return &Literal{
		Resource: Resource{
			FP:   FingerprintString(literalCanonicalForm(lexical, datatype, language)),
			Kind: KindLiteral,
		},
		Lexical:  lexical,
		Datatype: datatype,
		Language: language,
	}
}

// GetURI returns an opaque N-Triple-ish rendering of the literal; literals
// have no IRI so this is only useful for logging/debugging.
func (l *Literal) GetURI() string {
	s := "\"" + l.Lexical + "\""
	if l.Language != "" {
		s += "@" + l.Language
	} else if l.Datatype != "" {
		s += "^^<" + l.Datatype + ">"
	}
	return s
}

// isNumericDatatype reports whether the datatype IRI denotes one of the
// numeric XSD categories used for ordering comparisons in hasValue (§4.7).
func isNumericDatatype(dt string) bool {
	switch dt {
	case XSDInteger, XSDDouble, XSDFloat, XSDDecimal, XSDLong, XSDInt, XSDShort, XSDByte,
		XSDNonNegativeInteger, XSDPositiveInteger, XSDNonPositiveInteger, XSDNegativeInteger:
		return true
	}
	return false
}

// isStringDatatype reports whether the datatype IRI denotes a string-like
// category (used by the "literal-compatible class" dispatch of §4.8).
func isStringDatatype(dt string) bool {
	switch dt {
	case "", XSDString, XSDAnyURI, XSDNormalizedString, XSDToken:
		return true
	}
	return false
}

// compareLiterals compares two literals under the query layer's RDF-term
// ordering referenced by §4.7 hasValue semantics: numeric datatypes compare
// as numbers, everything else compares as strings. Any parse failure is
// reported via ok=false so the caller can treat it as "not a match" without
// aborting iteration (§7.3).
func compareLiterals(a, b *Literal) (equal bool, ok bool) {
	if isNumericDatatype(a.Datatype) && isNumericDatatype(b.Datatype) {
		av, aerr := strconv.ParseFloat(a.Lexical, 64)
		bv, berr := strconv.ParseFloat(b.Lexical, 64)
		if aerr != nil || berr != nil {
			return false, false
		}
		return av == bv, true
	}
	if a.Language != b.Language {
		return false, true
	}
	return a.Lexical == b.Lexical, true
}
