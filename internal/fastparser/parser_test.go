package fastparser

import (
	"errors"
	"testing"
)

func TestSplitLines_Simple(t *testing.T) {
	lines := SplitLines("GET /api/users HTTP/1.1\r\nHost: example.com\r\n")

	want := []Line{
		{Number: 1, Text: "GET /api/users HTTP/1.1"},
		{Number: 2, Text: "Host: example.com"},
		{Number: 3, Text: ""},
	}
	if len(lines) != len(want) {
		t.Fatalf("line count = %d, want %d: %q", len(lines), len(want), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("lines[%d] = %+v, want %+v", i, lines[i], want[i])
		}
	}
}

func TestSplitLines_TrimsEachLine(t *testing.T) {
	lines := SplitLines("  GET / HTTP/1.1 \r\n\tAccept: */* \t")
	if len(lines) != 2 {
		t.Fatalf("line count = %d, want 2", len(lines))
	}
	if lines[0].Text != "GET / HTTP/1.1" {
		t.Errorf("lines[0] = %q", lines[0].Text)
	}
	if lines[1].Text != "Accept: */*" {
		t.Errorf("lines[1] = %q", lines[1].Text)
	}
}

func TestSplitLines_BareLFIsNotATerminator(t *testing.T) {
	lines := SplitLines("GET / HTTP/1.1\nHost: example.com")
	if len(lines) != 1 {
		t.Fatalf("line count = %d, want 1", len(lines))
	}
}

func TestSplitLines_Empty(t *testing.T) {
	lines := SplitLines("")
	if len(lines) != 1 || lines[0].Text != "" {
		t.Errorf("SplitLines(\"\") = %+v, want one empty line", lines)
	}
}

func TestParseRequestLine(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    RequestLine
		wantErr error
	}{
		{"full", "GET /some/path HTTP/1.1", RequestLine{"GET", "/some/path", "HTTP/1.1"}, nil},
		{"no version", "GET /some/path", RequestLine{"GET", "/some/path", ""}, nil},
		{"extra fields ignored", "GET / HTTP/1.1 extra", RequestLine{"GET", "/", "HTTP/1.1"}, nil},
		{"whitespace runs", "POST \t /submit   HTTP/1.0", RequestLine{"POST", "/submit", "HTTP/1.0"}, nil},
		{"target kept verbatim", "GET /a%20b?x=1#frag HTTP/1.1", RequestLine{"GET", "/a%20b?x=1#frag", "HTTP/1.1"}, nil},
		{"method only", "GET", RequestLine{Method: "GET"}, ErrMissingTarget},
		{"empty", "", RequestLine{}, ErrNoRequestLine},
		{"blank", "   ", RequestLine{}, ErrNoRequestLine},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseRequestLine(tc.text)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("ParseRequestLine(%q) error = %v, want %v", tc.text, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("ParseRequestLine(%q) = %+v, want %+v", tc.text, got, tc.want)
			}
		})
	}
}

func TestParseHeaderLine(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    HeaderLine
		wantErr error
	}{
		{"simple", "Host: example.com", HeaderLine{"Host", "example.com"}, nil},
		{"colon in value", "Referer: http://example.com:8080/x", HeaderLine{"Referer", "http://example.com:8080/x"}, nil},
		{"whitespace around name", "  Accept  :text/html", HeaderLine{"Accept", "text/html"}, nil},
		{"whitespace around value", "X-Custom:  value  ", HeaderLine{"X-Custom", "value"}, nil},
		{"inner whitespace kept", "Accept: audio/*; q=0.2, audio/basic", HeaderLine{"Accept", "audio/*; q=0.2, audio/basic"}, nil},
		{"empty value", "X-Empty:", HeaderLine{"X-Empty", ""}, nil},
		{"no colon", "not a header", HeaderLine{}, ErrNoColon},
		{"empty line", "", HeaderLine{}, ErrNoColon},
		{"empty name", ": value", HeaderLine{}, ErrEmptyName},
		{"blank name", "   : value", HeaderLine{}, ErrEmptyName},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseHeaderLine(tc.text)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("ParseHeaderLine(%q) error = %v, want %v", tc.text, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("ParseHeaderLine(%q) = %+v, want %+v", tc.text, got, tc.want)
			}
		})
	}
}

func TestLowerASCII(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"get", "get"},
		{"GET", "get"},
		{"Accept-Charset", "accept-charset"},
		{"uSeR-aGeNt", "user-agent"},
		{"Ünicode-X", "Ünicode-x"},
	}
	for _, tc := range tests {
		if got := LowerASCII(tc.in); got != tc.want {
			t.Errorf("LowerASCII(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestEqualFoldASCII(t *testing.T) {
	if !EqualFoldASCII("X-Custom", "x-CUSTOM") {
		t.Error("expected X-Custom to equal x-CUSTOM")
	}
	if EqualFoldASCII("X-Custom", "X-Custom2") {
		t.Error("expected different lengths to differ")
	}
	if EqualFoldASCII("Host", "Hosx") {
		t.Error("expected Host and Hosx to differ")
	}
}
