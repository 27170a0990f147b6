package enumerator

import (
	"errors"
	"fmt"

	"github.com/aws/smithy-go"
)

type ErrorKind int

const (
	AuthError = ErrorKind(iota)
	ThrottleError
	TransportError
	OtherError
)

// APIError is any failure of a Route 53 list call. It aborts the whole run:
// the enumerator never retries beyond what the SDK's own retryer does and
// never produces partial results on this path.
type APIError struct {
	Op      string
	Zone    string
	wrapped error
}

func newAPIError(op, zoneID string, err error) *APIError {
	return &APIError{
		Op:      op,
		Zone:    zoneID,
		wrapped: err,
	}
}

func (e *APIError) Error() string {
	if e.Zone != "" {
		return fmt.Sprintf("%s failed for zone %s: %v", e.Op, e.Zone, e.wrapped)
	}
	return fmt.Sprintf("%s failed: %v", e.Op, e.wrapped)
}

func (e *APIError) Unwrap() error {
	return e.wrapped
}

func (e *APIError) Kind() ErrorKind {
	var apiErr smithy.APIError
	if !errors.As(e.wrapped, &apiErr) {
		return TransportError
	}

	switch apiErr.ErrorCode() {
	case "AccessDenied", "AccessDeniedException", "UnrecognizedClientException", "InvalidClientTokenId", "ExpiredToken":
		return AuthError
	case "Throttling", "ThrottlingException", "PriorRequestNotComplete":
		return ThrottleError
	default:
		return OtherError
	}
}
