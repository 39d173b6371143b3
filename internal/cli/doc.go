// Package cli implements the reqline command: a thin wrapper that reads raw
// request text from a file or stdin and prints the parsed request.
package cli
