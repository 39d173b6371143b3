package tokenizer

import (
	"unicode"
	"unicode/utf8"

	"github.com/shapestone/shape-core/pkg/tokenizer"
)

// NewTokenizer creates a tokenizer for a single request line.
// Fields are separated by runs of whitespace, so only two matchers are needed:
// 1. Whitespace run (separator)
// 2. Word (everything up to the next whitespace)
//
// The default whitespace skipper is disabled because separators are emitted
// as tokens; Fields drops them afterwards.
func NewTokenizer() tokenizer.Tokenizer {
	return tokenizer.NewTokenizerWithoutWhitespace(
		SpaceMatcher(),
		WordMatcher(),
	)
}

// NewTokenizerWithStream creates a request-line tokenizer using a pre-configured stream.
func NewTokenizerWithStream(stream tokenizer.Stream) tokenizer.Tokenizer {
	tok := NewTokenizer()
	tok.InitializeFromStream(stream)
	return tok
}

// SpaceMatcher matches a run of Unicode whitespace, including SP, HTAB, CR and LF.
func SpaceMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		var value []rune

		for {
			r, ok := stream.PeekChar()
			if !ok || !unicode.IsSpace(r) {
				break
			}
			stream.NextChar()
			value = append(value, r)
		}

		if len(value) == 0 {
			return nil
		}

		return tokenizer.NewToken(TokenSpace, value)
	}
}

// WordMatcher matches any sequence of non-whitespace characters.
func WordMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		var value []rune

		for {
			r, ok := stream.PeekChar()
			if !ok || unicode.IsSpace(r) {
				break
			}
			stream.NextChar()
			value = append(value, r)
		}

		if len(value) == 0 {
			return nil
		}

		return tokenizer.NewToken(TokenWord, value)
	}
}

// Fields returns the whitespace-separated words of line, in order.
// Leading, trailing and repeated whitespace never produce empty fields.
// Each field is a slice of line, so its bytes are kept exactly, including
// bytes that are not valid UTF-8.
func Fields(line string) []string {
	tok := NewTokenizerWithStream(tokenizer.NewStream(line))

	// Tokenize stops at the first rune no matcher accepts; the words
	// before it are kept.
	tokens, _ := tok.Tokenize()

	starts := runeStarts(line)
	fields := make([]string, 0, 3)
	for _, t := range tokens {
		if t.Kind() != TokenWord {
			continue
		}
		first := t.Offset()
		last := first + len(t.Value())
		if first < 0 || last >= len(starts) {
			continue
		}
		fields = append(fields, line[starts[first]:starts[last]])
	}
	return fields
}

// runeStarts maps rune index to byte offset in s, with len(s) appended.
// Token offsets count runes, and an invalid byte counts as one rune, the
// same as a []rune conversion.
func runeStarts(s string) []int {
	starts := make([]int, 0, len(s)+1)
	for i := 0; i < len(s); {
		starts = append(starts, i)
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return append(starts, len(s))
}
