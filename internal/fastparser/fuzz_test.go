package fastparser

import (
	"strings"
	"testing"
	"unicode"
)

// FuzzSplitLines checks that SplitLines numbers every line and that no
// returned line still contains a CRLF or surrounding whitespace.
func FuzzSplitLines(f *testing.F) {
	f.Add("GET / HTTP/1.1\r\nHost: example.com\r\n\r\n")
	f.Add("")
	f.Add("\r\n\r\n")
	f.Add("a\nb\r\nc")
	f.Add("\r\r\n\n")

	f.Fuzz(func(t *testing.T, raw string) {
		lines := SplitLines(raw)
		if want := strings.Count(raw, CRLF) + 1; len(lines) != want {
			t.Fatalf("SplitLines(%q) returned %d lines, want %d", raw, len(lines), want)
		}
		for i, l := range lines {
			if l.Number != i+1 {
				t.Errorf("lines[%d].Number = %d", i, l.Number)
			}
			if strings.Contains(l.Text, CRLF) || l.Text != strings.TrimSpace(l.Text) {
				t.Errorf("lines[%d].Text = %q is not a trimmed line", i, l.Text)
			}
		}
	})
}

// FuzzParseRequestLine checks that the fields returned by ParseRequestLine
// are non-empty and free of whitespace.
func FuzzParseRequestLine(f *testing.F) {
	f.Add("GET /some/path HTTP/1.1")
	f.Add("GET")
	f.Add("")
	f.Add("  PUT\t/x  ")
	f.Add("A B C D")

	f.Fuzz(func(t *testing.T, text string) {
		rl, err := ParseRequestLine(text)
		if err != nil {
			return
		}
		for _, field := range []string{rl.Method, rl.Target} {
			if field == "" || strings.ContainsFunc(field, unicode.IsSpace) {
				t.Errorf("ParseRequestLine(%q) = %+v", text, rl)
			}
		}
		if strings.ContainsFunc(rl.Version, unicode.IsSpace) {
			t.Errorf("ParseRequestLine(%q).Version = %q", text, rl.Version)
		}
	})
}

// FuzzParseHeaderLine checks that a successful split yields a trimmed,
// non-empty name without a colon and a trimmed value.
func FuzzParseHeaderLine(f *testing.F) {
	f.Add("Host: example.com")
	f.Add("X-Custom:  value  ")
	f.Add(":")
	f.Add("no colon")
	f.Add("Referer: http://a:8080/")

	f.Fuzz(func(t *testing.T, text string) {
		hl, err := ParseHeaderLine(text)
		if err != nil {
			return
		}
		if hl.Name == "" || strings.Contains(hl.Name, ":") || hl.Name != strings.TrimSpace(hl.Name) {
			t.Errorf("ParseHeaderLine(%q).Name = %q", text, hl.Name)
		}
		if hl.Value != strings.TrimSpace(hl.Value) {
			t.Errorf("ParseHeaderLine(%q).Value = %q", text, hl.Value)
		}
	})
}
