package http

import (
	"testing"
)

var simpleRequest = "GET /api/users HTTP/1.1\r\nHost: example.com\r\nAccept: application/json\r\nUser-Agent: shape-reqline/1.0\r\n\r\n"

var browserRequest = "GET /index.html HTTP/1.1\r\n" +
	"Host: www.example.com\r\n" +
	"User-Agent: Mozilla/5.0 (X11; Linux x86_64; rv:120.0) Gecko/20100101 Firefox/120.0\r\n" +
	"Accept: text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8\r\n" +
	"Accept-Language: en-US,en;q=0.5\r\n" +
	"Accept-Encoding: gzip, deflate, br\r\n" +
	"Referer: https://www.example.com/\r\n" +
	"Connection: keep-alive\r\n" +
	"Upgrade-Insecure-Requests: 1\r\n\r\n"

func BenchmarkParseRequest_Simple(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := ParseRequest(simpleRequest)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParseRequest_Browser(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := ParseRequest(browserRequest)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParseRequestDiagnostics_Browser(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := ParseRequestDiagnostics(browserRequest)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParseHeader(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := ParseHeader("Accept-Encoding: gzip, deflate, br")
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMarshal_Browser(b *testing.B) {
	req, err := ParseRequest(browserRequest)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Marshal(req); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParse_AST(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := Parse(simpleRequest)
		if err != nil {
			b.Fatal(err)
		}
	}
}
