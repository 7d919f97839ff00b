package ast

import "fmt"

// ErrorKind tags the shape of a runtime failure.
type ErrorKind int

const (
	// ErrInvalidArguments marks a type mismatch in a builtin or special
	// form's arguments.
	ErrInvalidArguments ErrorKind = iota
	// ErrInvalidArgumentCount marks an arity mismatch.
	ErrInvalidArgumentCount
	// ErrInvalidFunction marks an attempt to call something that is not
	// callable (e.g. a bare Value::Variable).
	ErrInvalidFunction
	// ErrUnboundExpression marks a symbol lookup that found no binding.
	ErrUnboundExpression
	// ErrCondFailure marks a cond form whose clauses all evaluated false.
	ErrCondFailure
	// ErrFileError marks a load failure reading the source file.
	ErrFileError
	// ErrParserError marks a lex/parse failure encountered while loading
	// a file.
	ErrParserError
)

// kindNames backs RuntimeError.Error()'s kind label.
var kindNames = [...]string{
	ErrInvalidArguments:     "InvalidArguments",
	ErrInvalidArgumentCount: "InvalidArgumentCount",
	ErrInvalidFunction:      "InvalidFunction",
	ErrUnboundExpression:    "UnboundExpression",
	ErrCondFailure:          "CondFailure",
	ErrFileError:            "FileError",
	ErrParserError:          "ParserError",
}

// String returns the name of a runtime ErrorKind.
func (k ErrorKind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// RuntimeError is Lockjaw's single runtime error type; Kind selects which
// taxonomy member it represents. A single computation is aborted, not
// recovered, by a RuntimeError: it unwinds the active expression to the
// top-level driver.
type RuntimeError struct {
	Kind   ErrorKind
	Reason string
	Cause  error // populated for ErrFileError / ErrParserError
}

// Error implements the error interface.
func (e *RuntimeError) Error() string {
	if e.Reason == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
}

// Unwrap exposes Cause so errors.Is/errors.As can reach the wrapped
// lex/parse/I-O error of a load failure.
func (e *RuntimeError) Unwrap() error { return e.Cause }

// NewInvalidArguments builds an ErrInvalidArguments error with a
// descriptive, printf-formatted reason.
func NewInvalidArguments(format string, args ...any) *RuntimeError {
	return &RuntimeError{Kind: ErrInvalidArguments, Reason: fmt.Sprintf(format, args...)}
}

// NewInvalidArgumentCount builds an ErrInvalidArgumentCount error.
func NewInvalidArgumentCount(format string, args ...any) *RuntimeError {
	return &RuntimeError{Kind: ErrInvalidArgumentCount, Reason: fmt.Sprintf(format, args...)}
}

// NewInvalidFunction builds an ErrInvalidFunction error.
func NewInvalidFunction(format string, args ...any) *RuntimeError {
	return &RuntimeError{Kind: ErrInvalidFunction, Reason: fmt.Sprintf(format, args...)}
}

// ErrUnbound is the single UnboundExpression error value: the kind
// carries no further detail, so there's no need for a constructor that
// formats a reason.
var ErrUnbound = &RuntimeError{Kind: ErrUnboundExpression}

// ErrCond is the single CondFailure error value.
var ErrCond = &RuntimeError{Kind: ErrCondFailure}

// NewFileError wraps a file I/O failure from the load special form.
func NewFileError(cause error) *RuntimeError {
	return &RuntimeError{Kind: ErrFileError, Reason: cause.Error(), Cause: cause}
}

// NewParserError wraps a lex/parse failure encountered while loading a
// file, so the underlying diagnostic survives (errors from load are
// wrapped, not flattened).
func NewParserError(cause error) *RuntimeError {
	return &RuntimeError{Kind: ErrParserError, Reason: cause.Error(), Cause: cause}
}
