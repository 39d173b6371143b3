package http

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a ParseError.
type ErrorKind uint8

const (
	// MalformedHeader: a header line has no colon or an empty name.
	MalformedHeader ErrorKind = iota + 1
	// MalformedRequestLine: the request line has a method but no target.
	MalformedRequestLine
	// NoRequestLine: the input holds no usable request line.
	NoRequestLine
)

// String returns the name of the kind.
func (k ErrorKind) String() string {
	switch k {
	case MalformedHeader:
		return "MalformedHeader"
	case MalformedRequestLine:
		return "MalformedRequestLine"
	case NoRequestLine:
		return "NoRequestLine"
	default:
		return fmt.Sprintf("ErrorKind(%d)", uint8(k))
	}
}

// Sentinel errors, one per ErrorKind. A *ParseError unwraps to the sentinel of
// its kind, so errors.Is(err, ErrMalformedHeader) works on any parse error.
var (
	ErrMalformedHeader      = errors.New("malformed header")
	ErrMalformedRequestLine = errors.New("malformed request line")
	ErrNoRequestLine        = errors.New("no request line")
)

// ParseError represents an error that occurred while parsing a request or header.
type ParseError struct {
	Kind    ErrorKind
	Message string // human-readable error message
	Line    int    // 1-indexed line number where error occurred (0 if unknown)
	Input   string // offending line, trimmed
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("http: parse error at line %d: %s", e.Line, e.Message)
	}
	return fmt.Sprintf("http: %s", e.Message)
}

// Unwrap returns the sentinel error for e.Kind.
func (e *ParseError) Unwrap() error {
	switch e.Kind {
	case MalformedHeader:
		return ErrMalformedHeader
	case MalformedRequestLine:
		return ErrMalformedRequestLine
	case NoRequestLine:
		return ErrNoRequestLine
	}
	return nil
}

func newParseError(kind ErrorKind, line int, input, format string, args ...interface{}) *ParseError {
	return &ParseError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Line:    line,
		Input:   input,
	}
}

// Diagnostic describes a header line that was dropped from a parsed request.
type Diagnostic struct {
	Line int    // 1-indexed line number
	Text string // the dropped line, trimmed
	Err  error  // always a *ParseError of kind MalformedHeader
}

// String formats d as "line N: reason".
func (d Diagnostic) String() string {
	var pe *ParseError
	if errors.As(d.Err, &pe) {
		return fmt.Sprintf("line %d: %s", d.Line, pe.Message)
	}
	return fmt.Sprintf("line %d: %v", d.Line, d.Err)
}
