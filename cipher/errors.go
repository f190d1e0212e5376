package cipher

import "github.com/pkg/errors"

// ErrorKind identifies one of the seven failure categories the engine must
// distinguish in its diagnostics.
type ErrorKind int

const (
	ErrInvalidKey ErrorKind = iota
	ErrInvalidIV
	ErrUnsupportedMode
	ErrInvalidSegmentSize
	ErrLengthConstraint
	ErrBadPadding
	ErrAllocation
)

func (k ErrorKind) String() string {
	switch k {
	case ErrInvalidKey:
		return "invalid key"
	case ErrInvalidIV:
		return "invalid iv"
	case ErrUnsupportedMode:
		return "unsupported mode"
	case ErrInvalidSegmentSize:
		return "invalid segment size"
	case ErrLengthConstraint:
		return "length constraint violation"
	case ErrBadPadding:
		return "bad padding"
	case ErrAllocation:
		return "allocation failure"
	default:
		return "unknown error"
	}
}

// CipherError is the structured diagnostic the engine reports on every
// failure: a stable Kind a caller can switch on, a human-readable Detail,
// and an optional wrapped Cause for a lower-level failure.
type CipherError struct {
	Kind   ErrorKind
	Detail string
	Cause  error
}

func (e *CipherError) Error() string {
	if e.Detail == "" {
		return e.Kind.String()
	}
	return e.Kind.String() + ": " + e.Detail
}

// Unwrap lets errors.Is/errors.As reach the wrapped Cause, if any.
func (e *CipherError) Unwrap() error { return e.Cause }

func newError(kind ErrorKind, detail string) *CipherError {
	return &CipherError{Kind: kind, Detail: detail}
}

func wrapError(kind ErrorKind, detail string, cause error) *CipherError {
	return &CipherError{Kind: kind, Detail: detail, Cause: errors.WithStack(cause)}
}

// ErrorSink receives a diagnostic for every failed construction, encrypt, or
// decrypt call. A nil sink is a documented no-op.
type ErrorSink func(*CipherError)

func (c *Context) report(err *CipherError) {
	if c != nil && c.sink != nil {
		c.sink(err)
	}
}
