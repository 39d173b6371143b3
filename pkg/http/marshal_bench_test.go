package http

import (
	"bytes"
	"fmt"
	"testing"
)

func BenchmarkMarshal_SimpleRequest(b *testing.B) {
	req := &Request{
		Method:  MethodGet,
		Target:  "/api/users",
		Version: "HTTP/1.1",
		Headers: Headers{
			{Name: HeaderHost, Value: "example.com"},
			{Name: HeaderAccept, Value: "application/json"},
			{Name: HeaderUserAgent, Value: "shape-reqline/1.0"},
		},
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Marshal(req); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMarshal_LargeHeaders(b *testing.B) {
	headers := make(Headers, 50)
	for i := range headers {
		headers[i] = Header{
			Name:  CustomHeaderName(fmt.Sprintf("X-Custom-Header-%d", i)),
			Value: fmt.Sprintf("value-%d-with-some-padding", i),
		}
	}
	req := &Request{Method: MethodPost, Target: "/api/data", Version: "HTTP/1.1", Headers: headers}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Marshal(req); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEncoder_Browser(b *testing.B) {
	req, err := ParseRequest(browserRequest)
	if err != nil {
		b.Fatal(err)
	}
	var buf bytes.Buffer
	enc := NewEncoder(&buf)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Reset()
		if err := enc.Encode(req); err != nil {
			b.Fatal(err)
		}
	}
}
