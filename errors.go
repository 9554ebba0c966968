package ontograph

import "errors"

// Construction-precondition errors (§7.1): fatal, synchronous failures
// surfaced directly to the caller.
var (
	// ErrResourceNotFound is returned when a lookup by URI does not match
	// any registered resource.
	ErrResourceNotFound = errors.New("resource not found")
	// ErrResourceDoesNotBelongToGraph is returned when a resource's URI is
	// not rooted under the ontology's own namespace.
	ErrResourceDoesNotBelongToGraph = errors.New("resource does not belong to the ontology graph")
	// ErrInvalidCardinalityLiteral describes a cardinality literal that
	// cannot be parsed as a non-negative integer. FromGraph does not return
	// it: the decoder reports that case as a WarningInvalidCardinality.
	ErrInvalidCardinalityLiteral = errors.New("cardinality literal is not a non-negative integer")
)
