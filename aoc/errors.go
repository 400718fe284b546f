package aoc

import (
	"errors"
	"fmt"
)

// ErrSyntax is the generic malformed input error. Solvers either wrap it or a
// more specific sentinel of their own.
var ErrSyntax = errors.New("syntax error")

// ParseError records the input line a solver failed to parse.
type ParseError struct {
	Line int // 1-based
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// LineErr wraps err with the position of the offending line. ix is the
// 0-based index into Lines.
func LineErr(ix int, text string, err error) error {
	return &ParseError{Line: ix + 1, Text: text, Err: err}
}

// Syntaxf returns an error wrapping ErrSyntax.
func Syntaxf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrSyntax, fmt.Sprintf(format, args...))
}

func syntaxErr(err error) error {
	return fmt.Errorf("%w: %w", ErrSyntax, err)
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
