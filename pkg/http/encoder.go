package http

import (
	"fmt"
	"strings"
	"unicode"
)

// appendRequest serializes a Request to wire format.
// It appends "METHOD TARGET[ VERSION]\r\n" followed by headers and an empty line.
func appendRequest(buf []byte, req *Request) ([]byte, error) {
	method := req.Method.String()
	if method == "" {
		return buf, fmt.Errorf("http: request method is empty")
	}
	if !isField(method) {
		return buf, fmt.Errorf("http: request method %q contains whitespace", method)
	}
	if req.Target == "" {
		return buf, fmt.Errorf("http: request target is empty")
	}
	if !isField(req.Target) {
		return buf, fmt.Errorf("http: request target %q contains whitespace", req.Target)
	}
	if req.Version != "" && !isField(req.Version) {
		return buf, fmt.Errorf("http: request version %q contains whitespace", req.Version)
	}

	buf = appendRequestLine(buf, method, req.Target, req.Version)

	var err error
	buf, err = appendHeaders(buf, req.Headers)
	if err != nil {
		return buf, err
	}

	return appendCRLF(buf), nil // empty line ends the header section
}

// appendHeaders appends all headers in "Name: Value\r\n" format.
func appendHeaders(buf []byte, headers Headers) ([]byte, error) {
	for _, h := range headers {
		name := h.Name.String()
		if strings.TrimSpace(name) == "" || strings.ContainsAny(name, ":\r\n") {
			return buf, fmt.Errorf("http: invalid header name %q", name)
		}
		if strings.ContainsAny(h.Value, "\r\n") {
			return buf, fmt.Errorf("http: header %s value contains a line break", name)
		}
		buf = append(buf, name...)
		buf = append(buf, ':', ' ')
		buf = append(buf, h.Value...)
		buf = appendCRLF(buf)
	}
	return buf, nil
}

// isField reports whether s can be written as one request-line field.
func isField(s string) bool {
	return strings.IndexFunc(s, unicode.IsSpace) < 0
}
