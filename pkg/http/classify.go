package http

import "github.com/shapestone/shape-reqline/internal/fastparser"

// Classification tables, keyed by the ASCII-lowercased token.
// LowerASCII does not allocate for input that is already lowercase.

var methods = map[string]Method{
	"options": MethodOptions,
	"get":     MethodGet,
	"head":    MethodHead,
	"header":  MethodHead, // accepted as HEAD
	"post":    MethodPost,
	"put":     MethodPut,
	"delete":  MethodDelete,
	"trace":   MethodTrace,
}

var headerNames = map[string]HeaderName{
	"accept":          HeaderAccept,
	"accept-charset":  HeaderAcceptCharset,
	"accept-encoding": HeaderAcceptEncoding,
	"host":            HeaderHost,
	"referer":         HeaderReferer,
	"user-agent":      HeaderUserAgent,
}

// ParseMethod classifies token case-insensitively. Unknown tokens become an
// Extension method holding token unchanged.
func ParseMethod(token string) Method {
	if m, ok := methods[fastparser.LowerASCII(token)]; ok {
		return m
	}
	return ExtensionMethod(token)
}

// ParseHeaderName classifies name case-insensitively. Unknown names become a
// Custom header name holding name unchanged.
func ParseHeaderName(name string) HeaderName {
	if n, ok := headerNames[fastparser.LowerASCII(name)]; ok {
		return n
	}
	return CustomHeaderName(name)
}
