// Package engineerr defines the engine's error kinds and a small
// EngineError type that carries one of them, following the teacher's
// fmt.Errorf("...: %w", err) wrapping idiom (see ga/ga.go's Validate
// and cmd/ga/main.go's loadCities) so callers can use errors.Is/As
// instead of matching on error strings.
package engineerr

import "fmt"

// Kind classifies why an engine operation failed.
type Kind int

const (
	// InvalidConfiguration covers builder misconfiguration: missing
	// codec/problem, population_size < 1, offspring_fraction out of
	// [0,1], max_age < 1. Reported at build time; fatal.
	InvalidConfiguration Kind = iota
	// InvalidScore marks a Score constructed with a NaN component.
	InvalidScore
	// EvaluationLost marks a worker that failed to produce a result
	// for a submitted genotype. Fatal for the step that observed it.
	EvaluationLost
	// InvariantViolation marks an assertion failure indicating a bug
	// in an operator: front size outside [min_size, max_size] after
	// clean, or population length drift after recombine.
	InvariantViolation
)

func (k Kind) String() string {
	switch k {
	case InvalidConfiguration:
		return "invalid configuration"
	case InvalidScore:
		return "invalid score"
	case EvaluationLost:
		return "evaluation lost"
	case InvariantViolation:
		return "invariant violation"
	default:
		return "unknown error"
	}
}

// EngineError is a Kind-tagged error that wraps an optional cause.
type EngineError struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *EngineError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *EngineError) Unwrap() error { return e.Err }

// New constructs an EngineError with no wrapped cause.
func New(kind Kind, msg string) error {
	return &EngineError{Kind: kind, Msg: msg}
}

// Newf constructs an EngineError with a formatted message.
func Newf(kind Kind, format string, args ...any) error {
	return &EngineError{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap constructs an EngineError carrying a wrapped cause.
func Wrap(kind Kind, msg string, err error) error {
	return &EngineError{Kind: kind, Msg: msg, Err: err}
}

// Is reports whether err is an EngineError of the given kind, so
// callers can write `errors.Is`-style kind checks without a type
// assertion at every call site.
func Is(err error, kind Kind) bool {
	var ee *EngineError
	for err != nil {
		if e, ok := err.(*EngineError); ok {
			ee = e
			break
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return ee != nil && ee.Kind == kind
}
