package ontograph

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// WarningKind discriminates the decode-warning categories of §7.2.
type WarningKind string

const (
	WarningUndefinedReference    WarningKind = "undefined_reference"
	WarningTypeMismatch          WarningKind = "type_mismatch"
	WarningInvalidCardinality    WarningKind = "invalid_cardinality"
	WarningReservedOnProperty    WarningKind = "reserved_on_property"
	WarningVariantConflict       WarningKind = "variant_conflict"
	WarningMissingListMember     WarningKind = "missing_list_member"
	WarningIncompatiblePropertyKind WarningKind = "incompatible_property_kind"
)

// Warning is a recoverable, reported decode anomaly (§7.2). The offending
// axiom is skipped; decoding continues.
type Warning struct {
	Kind    WarningKind
	Message string
	Subject string
}

// warningLog is the process-wide logger decode warnings are dispatched
// through, in addition to being returned to the caller as a []Warning.
var warningLog = logrus.New()

// warningHandlers holds process-wide subscribers to decode warnings.
// Handlers must be safe for concurrent use if a consumer introduces
// concurrency (§5).
var (
	warningHandlersMu sync.Mutex
	warningHandlers   []func(Warning)
)

// OnWarning registers a process-wide handler invoked for every decode
// warning dispatched via Dispatch.
func OnWarning(handler func(Warning)) {
	warningHandlersMu.Lock()
	defer warningHandlersMu.Unlock()
	warningHandlers = append(warningHandlers, handler)
}

// Dispatch emits a warning through the process-wide event channel and logs
// it at warn level.
func Dispatch(w Warning) {
	warningLog.WithFields(logrus.Fields{
		"kind":    w.Kind,
		"subject": w.Subject,
	}).Warn(w.Message)

	warningHandlersMu.Lock()
	handlers := append([]func(Warning){}, warningHandlers...)
	warningHandlersMu.Unlock()
	for _, h := range handlers {
		h(w)
	}
}

// traceSwallowedComparison logs a swallowed hasValue literal comparison
// failure at trace level (§4.7, §9): the comparison exception is caught and
// treated as a non-match, but the failure is still diagnosable.
func traceSwallowedComparison(subject string, err error) {
	warningLog.WithField("subject", subject).Tracef("hasValue literal comparison failed, treated as non-match: %v", err)
}
