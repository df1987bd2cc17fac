package observability

import (
	"errors"

	"github.com/randalmurphal/bpsync/pkg/bpsync/event"
)

// Violation kinds used as the "kind" attribute on logs and metrics.
const (
	KindOutOfRange         = "out_of_range"
	KindInvalidSetMutation = "invalid_set_mutation"
	KindUnsupported        = "unsupported_operation"
	KindAmbiguousRequest   = "ambiguous_request"
	KindNilMember          = "nil_member"
	KindOther              = "other"
)

// ViolationKind classifies an event-set error for logs and metrics.
func ViolationKind(err error) string {
	switch {
	case errors.Is(err, event.ErrOutOfRange):
		return KindOutOfRange
	case errors.Is(err, event.ErrInvalidSetMutation):
		return KindInvalidSetMutation
	case errors.Is(err, event.ErrUnsupportedOperation):
		return KindUnsupported
	case errors.Is(err, event.ErrAmbiguousRequest):
		return KindAmbiguousRequest
	case errors.Is(err, event.ErrNilMember):
		return KindNilMember
	default:
		return KindOther
	}
}
