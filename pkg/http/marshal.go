package http

import (
	"fmt"
	"sync"
)

// bufPool pools []byte slices for the encoder fast path.
var bufPool = sync.Pool{
	New: func() interface{} {
		b := make([]byte, 0, 1024)
		return &b
	},
}

// Marshal returns the wire-format encoding of req: the request line, one
// line per header, and the empty line that ends the header section.
//
// The version field is written only if req.Version is set. Marshal fails if
// the method or target is empty, or if any field would break the line
// structure (whitespace in the target, CR or LF in a value, and so on).
//
// Marshal uses a sync.Pool buffer internally.
func Marshal(req *Request) ([]byte, error) {
	if req == nil {
		return nil, fmt.Errorf("http: Marshal(nil)")
	}

	bp := bufPool.Get().(*[]byte)
	buf := (*bp)[:0]

	buf, err := appendRequest(buf, req)
	if err != nil {
		*bp = buf[:0]
		bufPool.Put(bp)
		return nil, err
	}

	result := make([]byte, len(buf))
	copy(result, buf)
	*bp = buf
	bufPool.Put(bp)
	return result, nil
}

// String returns the wire-format encoding of r, or "" if r cannot be marshaled.
func (r *Request) String() string {
	b, err := Marshal(r)
	if err != nil {
		return ""
	}
	return string(b)
}
