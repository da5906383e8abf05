package proptest

import "fmt"

// Kind identifies the category of a proptest error, mirroring the tagged
// error kinds a property-testing engine needs to distinguish from an
// ordinary counterexample.
type Kind int

const (
	// KindSuchThatExhausted means a SuchThat-style or distinct-collection
	// generator failed to satisfy its predicate within MaxTries attempts.
	// This is fatal for the run; the driver never catches it.
	KindSuchThatExhausted Kind = iota

	// KindPropertyException means the user's predicate panicked. The
	// recovered value becomes the TrialResult's Exception and triggers
	// shrinking exactly like a false result.
	KindPropertyException

	// KindInvalidArgument means a generator combinator was constructed
	// with invalid inputs (an empty OneOf, a non-positive Frequency
	// weight, an odd key/value count), caught eagerly at construction
	// time rather than at generation time.
	KindInvalidArgument
)

func (k Kind) String() string {
	switch k {
	case KindSuchThatExhausted:
		return "SuchThatExhausted"
	case KindPropertyException:
		return "PropertyException"
	case KindInvalidArgument:
		return "InvalidArgument"
	default:
		return "Unknown"
	}
}

// Error is the single error type raised by this package. It carries a Kind
// so callers can branch on category with errors.As, plus an optional
// wrapped cause.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("proptest: %s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("proptest: %s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause, for errors.As/errors.Is support.
func (e *Error) Unwrap() error { return e.Cause }

// New creates an Error of the given kind with a message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf creates an Error of the given kind with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an Error of the given kind wrapping an underlying cause.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// Wrapf creates an Error of the given kind wrapping a cause with a
// formatted message.
func Wrapf(kind Kind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// NewSuchThatExhausted creates a KindSuchThatExhausted error reporting how
// many attempts were made before giving up.
func NewSuchThatExhausted(what string, maxTries int) *Error {
	return Newf(KindSuchThatExhausted, "%s did not satisfy its predicate after %d attempts", what, maxTries)
}

// NewInvalidArgument creates a KindInvalidArgument error.
func NewInvalidArgument(format string, args ...any) *Error {
	return Newf(KindInvalidArgument, format, args...)
}
