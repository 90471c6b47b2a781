package pattern

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownConstruct   = errors.New("unknown construct")
	ErrMalformedCapture   = errors.New("malformed capture")
	ErrMalformedCharClass = errors.New("malformed character class")
	ErrPatternTooLarge    = errors.New("pattern too large")
)

// CompileError is an error encountered while compiling an expression tree
// into a Pattern. Err is one of the sentinel errors above; Detail carries
// the offending construct's source text or other context for the caller to
// attach a source location to.
type CompileError struct {
	Err    error
	Detail string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("github.com/chronos-tachyon/go-pegc/pattern: %v: %s", e.Err, e.Detail)
}

func (e *CompileError) Unwrap() error {
	return e.Err
}

func tooLarge(n int) error {
	return &CompileError{
		Err:    ErrPatternTooLarge,
		Detail: fmt.Sprintf("%d instructions exceeds the limit of %d; raise pattern.MaxPattLen to compile larger patterns", n, MaxPattLen),
	}
}
