package api

import "fmt"

// ErrorKind discriminates the failure source behind a normalized Error.
type ErrorKind string

const (
	// KindNetwork means the request never produced a response.
	KindNetwork ErrorKind = "network"
	// KindApplication means the server responded with a non-2xx status.
	KindApplication ErrorKind = "application"
	// KindUnexpected covers everything else, e.g. a malformed response body.
	KindUnexpected ErrorKind = "unexpected"
)

// Fallback messages used when the server provides none.
const (
	NetworkErrorMessage    = "network error"
	GenericErrorMessage    = "an error occurred"
	UnexpectedErrorMessage = "an unexpected error occurred"
)

// Error is the single error shape surfaced by the API client. Callers can
// branch on Kind (e.g. retry only network failures) or just display Message.
type Error struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	cause      error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
	}
	return e.Message
}

// Unwrap exposes the original transport or decode error for logging.
func (e *Error) Unwrap() error {
	return e.cause
}

// NewNetworkError reports a request that produced no response at all.
func NewNetworkError(cause error) *Error {
	return &Error{Kind: KindNetwork, Message: NetworkErrorMessage, cause: cause}
}

// NewApplicationError reports a non-2xx response. An empty message falls
// back to the generic message.
func NewApplicationError(statusCode int, message string, cause error) *Error {
	if message == "" {
		message = GenericErrorMessage
	}
	return &Error{Kind: KindApplication, StatusCode: statusCode, Message: message, cause: cause}
}

// NewUnexpectedError reports a failure that is neither a transport error nor
// a structured server rejection.
func NewUnexpectedError(cause error) *Error {
	return &Error{Kind: KindUnexpected, Message: UnexpectedErrorMessage, cause: cause}
}
