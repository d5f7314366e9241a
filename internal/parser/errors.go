package parser

import "fmt"

// ErrorKind classifies why a command line was rejected.
type ErrorKind int

const (
	// MissingField means a mandatory field was absent or empty after trimming.
	MissingField ErrorKind = iota + 1
	// MalformedValue means a field was present but failed a format check.
	MalformedValue
	// SemanticViolation means a field was well-formed but broke a business rule.
	SemanticViolation
	// UnknownCommand means the first token is not a recognized keyword.
	UnknownCommand
)

// String returns the kind name used in logs.
func (k ErrorKind) String() string {
	switch k {
	case MissingField:
		return "missing_field"
	case MalformedValue:
		return "malformed_value"
	case SemanticViolation:
		return "semantic_violation"
	case UnknownCommand:
		return "unknown_command"
	default:
		return fmt.Sprintf("error_kind(%d)", int(k))
	}
}

// Error is the single error returned by a failed parse. Message is shown to
// the user verbatim and usually ends with the usage line of the command.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is reports whether target is an *Error of the same kind, so callers can
// write errors.Is(err, parser.ErrMissingField).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Message == "" || t.Message == e.Message)
}

// Sentinels for errors.Is matching by kind.
var (
	ErrMissingField      = &Error{Kind: MissingField}
	ErrMalformedValue    = &Error{Kind: MalformedValue}
	ErrSemanticViolation = &Error{Kind: SemanticViolation}
	ErrUnknownCommand    = &Error{Kind: UnknownCommand}
)

func missing(msg string) error   { return &Error{Kind: MissingField, Message: msg} }
func malformed(msg string) error { return &Error{Kind: MalformedValue, Message: msg} }
func semantic(msg string) error  { return &Error{Kind: SemanticViolation, Message: msg} }
