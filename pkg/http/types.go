// Package http parses raw HTTP/1.x request text into a typed Request.
//
// A request is a classified Method, a verbatim request-target and an ordered
// list of headers whose names are classified against a small set of known
// names. Unknown methods and header names are kept as Extension and Custom
// variants carrying the original text.
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use by multiple goroutines.
// A Parser holds no mutable state and may be shared freely.
//
// # Parsing APIs
//
// The package provides several parsing paths:
//
//   - ParseRequest/ParseHeader - Typed parsing; malformed header lines are dropped
//   - ParseRequestDiagnostics - Same as ParseRequest, also reporting dropped lines
//   - Parse/ParseReader - AST-based output via shape-core
package http

import "github.com/shapestone/shape-reqline/internal/fastparser"

// MethodKind identifies the variant of a Method.
type MethodKind uint8

const (
	MethodKindInvalid MethodKind = iota // zero Method; never produced by parsing
	MethodKindOptions
	MethodKindGet
	MethodKindHead
	MethodKindPost
	MethodKindPut
	MethodKindDelete
	MethodKindTrace
	MethodKindExtension // unrecognized token, see Method.Extension
)

var methodKindNames = [...]string{
	MethodKindInvalid:   "",
	MethodKindOptions:   "OPTIONS",
	MethodKindGet:       "GET",
	MethodKindHead:      "HEAD",
	MethodKindPost:      "POST",
	MethodKindPut:       "PUT",
	MethodKindDelete:    "DELETE",
	MethodKindTrace:     "TRACE",
	MethodKindExtension: "extension",
}

// String returns the canonical method name for known kinds.
func (k MethodKind) String() string {
	if int(k) < len(methodKindNames) {
		return methodKindNames[k]
	}
	return "unknown"
}

// Method is a request method. Methods are comparable with ==.
type Method struct {
	kind  MethodKind
	token string // original token, set only for MethodKindExtension
}

// Known methods.
var (
	MethodOptions = Method{kind: MethodKindOptions}
	MethodGet     = Method{kind: MethodKindGet}
	MethodHead    = Method{kind: MethodKindHead}
	MethodPost    = Method{kind: MethodKindPost}
	MethodPut     = Method{kind: MethodKindPut}
	MethodDelete  = Method{kind: MethodKindDelete}
	MethodTrace   = Method{kind: MethodKindTrace}
)

// ExtensionMethod returns the Extension variant for token, kept exactly as given.
// It does not classify token; use ParseMethod for that.
func ExtensionMethod(token string) Method {
	return Method{kind: MethodKindExtension, token: token}
}

// Kind returns the variant of m.
func (m Method) Kind() MethodKind { return m.kind }

// Extension returns the original token and true if m is an Extension method.
func (m Method) Extension() (string, bool) {
	if m.kind != MethodKindExtension {
		return "", false
	}
	return m.token, true
}

// IsExtension reports whether m is an unrecognized method.
func (m Method) IsExtension() bool { return m.kind == MethodKindExtension }

// String returns "GET", "POST", etc., or the original token of an Extension method.
func (m Method) String() string {
	if m.kind == MethodKindExtension {
		return m.token
	}
	return m.kind.String()
}

// HeaderNameKind identifies the variant of a HeaderName.
type HeaderNameKind uint8

const (
	HeaderKindInvalid HeaderNameKind = iota // zero HeaderName; never produced by parsing
	HeaderKindAccept
	HeaderKindAcceptCharset
	HeaderKindAcceptEncoding
	HeaderKindHost
	HeaderKindReferer
	HeaderKindUserAgent
	HeaderKindCustom // unrecognized name, see HeaderName.Custom
)

var headerKindNames = [...]string{
	HeaderKindInvalid:        "",
	HeaderKindAccept:         "Accept",
	HeaderKindAcceptCharset:  "Accept-Charset",
	HeaderKindAcceptEncoding: "Accept-Encoding",
	HeaderKindHost:           "Host",
	HeaderKindReferer:        "Referer",
	HeaderKindUserAgent:      "User-Agent",
	HeaderKindCustom:         "custom",
}

// String returns the canonical header name for known kinds.
func (k HeaderNameKind) String() string {
	if int(k) < len(headerKindNames) {
		return headerKindNames[k]
	}
	return "unknown"
}

// HeaderName is a classified header field name. HeaderNames are comparable
// with ==; Custom names compare by exact text, see Matches for a
// case-insensitive comparison.
type HeaderName struct {
	kind HeaderNameKind
	name string // original name, set only for HeaderKindCustom
}

// Known header names.
var (
	HeaderAccept         = HeaderName{kind: HeaderKindAccept}
	HeaderAcceptCharset  = HeaderName{kind: HeaderKindAcceptCharset}
	HeaderAcceptEncoding = HeaderName{kind: HeaderKindAcceptEncoding}
	HeaderHost           = HeaderName{kind: HeaderKindHost}
	HeaderReferer        = HeaderName{kind: HeaderKindReferer}
	HeaderUserAgent      = HeaderName{kind: HeaderKindUserAgent}
)

// CustomHeaderName returns the Custom variant for name, kept exactly as given.
// It does not classify name; use ParseHeaderName for that.
func CustomHeaderName(name string) HeaderName {
	return HeaderName{kind: HeaderKindCustom, name: name}
}

// Kind returns the variant of n.
func (n HeaderName) Kind() HeaderNameKind { return n.kind }

// Custom returns the original name and true if n is a Custom header name.
func (n HeaderName) Custom() (string, bool) {
	if n.kind != HeaderKindCustom {
		return "", false
	}
	return n.name, true
}

// IsCustom reports whether n is an unrecognized header name.
func (n HeaderName) IsCustom() bool { return n.kind == HeaderKindCustom }

// String returns the canonical name ("Accept-Charset") or the original text of a Custom name.
func (n HeaderName) String() string {
	if n.kind == HeaderKindCustom {
		return n.name
	}
	return n.kind.String()
}

// Matches reports whether n and other name the same header.
// Custom names are compared ASCII case-insensitively.
func (n HeaderName) Matches(other HeaderName) bool {
	if n.kind != other.kind {
		return false
	}
	if n.kind == HeaderKindCustom {
		return fastparser.EqualFoldASCII(n.name, other.name)
	}
	return true
}

// Header is a single classified header with its trimmed value.
type Header struct {
	Name  HeaderName
	Value string
}

// Headers is an ordered, repeatable list of headers in input order.
type Headers []Header

// Get returns the first value for name, or "" if absent.
func (h Headers) Get(name HeaderName) string {
	for _, hdr := range h {
		if hdr.Name.Matches(name) {
			return hdr.Value
		}
	}
	return ""
}

// Has reports whether a header named name is present.
func (h Headers) Has(name HeaderName) bool {
	for _, hdr := range h {
		if hdr.Name.Matches(name) {
			return true
		}
	}
	return false
}

// Values returns all values for name, in order.
func (h Headers) Values(name HeaderName) []string {
	var vals []string
	for _, hdr := range h {
		if hdr.Name.Matches(name) {
			vals = append(vals, hdr.Value)
		}
	}
	return vals
}

// Lookup returns the first value whose header name text equals key
// (ASCII case-insensitive), whether the name is known or Custom.
func (h Headers) Lookup(key string) (string, bool) {
	for _, hdr := range h {
		if fastparser.EqualFoldASCII(hdr.Name.String(), key) {
			return hdr.Value, true
		}
	}
	return "", false
}

// Request is a parsed HTTP request line plus headers.
type Request struct {
	Method  Method
	Target  string  // request-target, verbatim
	Version string  // third request-line field, verbatim; "" if absent
	Headers Headers // successfully parsed headers, in input order
}

// ParseResult holds a request together with the header lines that were dropped.
type ParseResult struct {
	Request     *Request
	Diagnostics []Diagnostic
}

// Warnings returns the diagnostics as human-readable strings.
func (r *ParseResult) Warnings() []string {
	if len(r.Diagnostics) == 0 {
		return nil
	}
	warnings := make([]string, len(r.Diagnostics))
	for i, d := range r.Diagnostics {
		warnings[i] = d.String()
	}
	return warnings
}
