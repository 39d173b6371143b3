// Package tokenizer splits HTTP request lines into fields using Shape's tokenizer framework.
package tokenizer

// Token type constants for request-line tokenization.
const (
	TokenSpace = "Space" // run of one or more whitespace characters
	TokenWord  = "Word"  // method, request-target, version, or any other field
)
