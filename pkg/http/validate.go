package http

import (
	"bytes"
	"io"
)

// Validate checks that input has a usable request line and returns the error
// ParseRequest would return. Malformed header lines do not make input invalid.
func Validate(input string) error {
	_, err := ParseRequest(input)
	return err
}

// ValidateStrict is Validate plus a check that every non-blank header line
// parses. The first dropped line is returned as its *ParseError.
func ValidateStrict(input string) error {
	result, err := ParseRequestDiagnostics(input)
	if err != nil {
		return err
	}
	if len(result.Diagnostics) > 0 {
		return result.Diagnostics[0].Err
	}
	return nil
}

// ValidateReader reads all data from r and validates it as a request.
// See Validate for the validation semantics.
func ValidateReader(r io.Reader) error {
	data, err := readAll(r)
	if err != nil {
		return err
	}
	return Validate(string(data))
}

// readAll reads all data from r.
func readAll(r io.Reader) ([]byte, error) {
	var buf bytes.Buffer
	_, err := buf.ReadFrom(r)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
