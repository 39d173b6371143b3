package http

import (
	"fmt"
	"io"
)

// Encoder writes requests to an output stream in wire format.
type Encoder struct {
	w io.Writer
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes the Marshal encoding of req to the stream. Nothing is
// written if req cannot be marshaled.
func (enc *Encoder) Encode(req *Request) error {
	data, err := Marshal(req)
	if err != nil {
		return err
	}
	if _, err := enc.w.Write(data); err != nil {
		return fmt.Errorf("http: encode: %w", err)
	}
	return nil
}
