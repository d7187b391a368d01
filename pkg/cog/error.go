package cog

// Error reasons are enumerated here to be used in the Err struct,
// the error type shared across all Cog APIs. A reason doubles as the
// process exit code when the CLI stops on an error.
const (
	ErrUnknown      = 0
	ErrSyntax       = 1
	ErrUndefined    = 3
	ErrNotCallable  = 4
	ErrNotSummable  = 5
	ErrTypeMismatch = 6
	ErrSystem       = 40
	ErrAssert       = 100
)

// Err constants represent possible errors that Cog interpreter
// binding functions may return.
type Err struct {
	reason  int
	message string
}

func (e Err) Error() string {
	return e.message
}

// Reason reports which kind of failure the error represents.
func (e Err) Reason() int {
	return e.reason
}

// Is matches any Err of the same reason, so callers can write
// errors.Is(err, cog.ErrKindUndefined).
func (e Err) Is(target error) bool {
	t, ok := target.(Err)
	return ok && t.reason == e.reason
}

// Sentinels for errors.Is matching against each error kind.
var (
	ErrKindSyntax       = Err{reason: ErrSyntax}
	ErrKindUndefined    = Err{reason: ErrUndefined}
	ErrKindNotCallable  = Err{reason: ErrNotCallable}
	ErrKindNotSummable  = Err{reason: ErrNotSummable}
	ErrKindTypeMismatch = Err{reason: ErrTypeMismatch}
	ErrKindSystem       = Err{reason: ErrSystem}
)

func reasonName(reason int) string {
	switch reason {
	case ErrSyntax:
		return "syntax error"
	case ErrUndefined:
		return "undefined name"
	case ErrNotCallable:
		return "not callable"
	case ErrNotSummable:
		return "not summable"
	case ErrTypeMismatch:
		return "type mismatch"
	case ErrSystem:
		return "system error"
	case ErrAssert:
		return "invariant violation"
	default:
		return "error"
	}
}
