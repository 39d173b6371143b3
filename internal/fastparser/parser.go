// Package fastparser implements the lexical half of request parsing: it splits
// raw request text into lines, a request line into raw fields, and a header
// line into a raw name and value. Classification happens in pkg/http.
package fastparser

import (
	"errors"
	"strings"

	"github.com/shapestone/shape-reqline/internal/tokenizer"
)

// CRLF is the only line terminator recognized by SplitLines.
const CRLF = "\r\n"

// Lexical errors. Callers map them onto their own error taxonomy.
var (
	ErrNoRequestLine = errors.New("no request line")
	ErrMissingTarget = errors.New("request line has no target")
	ErrNoColon       = errors.New("no colon")
	ErrEmptyName     = errors.New("empty header name")
)

// Line is one CRLF-delimited line of input with surrounding whitespace trimmed.
type Line struct {
	Number int // 1-indexed
	Text   string
}

// RequestLine holds the raw fields of a request line.
type RequestLine struct {
	Method  string
	Target  string
	Version string // third field if present, "" otherwise
}

// HeaderLine holds the raw, trimmed parts of a "Name: Value" line.
type HeaderLine struct {
	Name  string
	Value string
}

// SplitLines splits raw on CRLF and trims each resulting line.
// A trailing CRLF yields a final empty line, as does strings.Split.
func SplitLines(raw string) []Line {
	parts := strings.Split(raw, CRLF)
	lines := make([]Line, len(parts))
	for i, part := range parts {
		lines[i] = Line{Number: i + 1, Text: strings.TrimSpace(part)}
	}
	return lines
}

// ParseRequestLine splits text on runs of whitespace. The first field is the
// method and the second the request-target; a third, if any, is kept as the
// version. Further fields are ignored.
func ParseRequestLine(text string) (RequestLine, error) {
	fields := tokenizer.Fields(text)

	switch len(fields) {
	case 0:
		return RequestLine{}, ErrNoRequestLine
	case 1:
		return RequestLine{Method: fields[0]}, ErrMissingTarget
	}

	rl := RequestLine{Method: fields[0], Target: fields[1]}
	if len(fields) > 2 {
		rl.Version = fields[2]
	}
	return rl, nil
}

// ParseHeaderLine splits text on its first colon and trims both sides.
// Colons after the first belong to the value.
func ParseHeaderLine(text string) (HeaderLine, error) {
	colon := strings.IndexByte(text, ':')
	if colon < 0 {
		return HeaderLine{}, ErrNoColon
	}

	name := strings.TrimSpace(text[:colon])
	if name == "" {
		return HeaderLine{}, ErrEmptyName
	}

	return HeaderLine{
		Name:  name,
		Value: strings.TrimSpace(text[colon+1:]),
	}, nil
}

// LowerASCII lowercases the ASCII letters of s. Non-ASCII bytes are left as
// they are. s is returned unchanged, without allocating, if it has no
// uppercase ASCII letters.
func LowerASCII(s string) string {
	i := 0
	for i < len(s) {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			break
		}
		i++
	}
	if i == len(s) {
		return s
	}

	b := make([]byte, len(s))
	copy(b, s[:i])
	for ; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		b[i] = c
	}
	return string(b)
}

// EqualFoldASCII is a fast ASCII case-insensitive string comparison.
func EqualFoldASCII(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if ca >= 'A' && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if cb >= 'A' && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}
