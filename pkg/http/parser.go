package http

import (
	"errors"
	"io"
	"log/slog"

	"github.com/shapestone/shape-core/pkg/ast"
	"github.com/shapestone/shape-reqline/internal/fastparser"
)

// Parser parses request text. The zero value is not usable; use NewParser.
// A Parser is immutable and safe for concurrent use.
type Parser struct {
	logger *slog.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the logger that receives a Debug record for every header
// line dropped from a request. A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewParser creates a Parser. Without WithLogger, dropped lines are not logged.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var defaultParser = NewParser()

// ParseRequest parses raw request text using a default Parser.
// See Parser.ParseRequest.
func ParseRequest(raw string) (*Request, error) {
	return defaultParser.ParseRequest(raw)
}

// ParseRequestDiagnostics parses raw request text using a default Parser.
// See Parser.ParseRequestDiagnostics.
func ParseRequestDiagnostics(raw string) (*ParseResult, error) {
	return defaultParser.ParseRequestDiagnostics(raw)
}

// ParseHeader parses a single header line using a default Parser.
// See Parser.ParseHeader.
func ParseHeader(line string) (Header, error) {
	return defaultParser.ParseHeader(line)
}

// ParseHeader parses one "Name: Value" line.
//
// The line is split on its first colon and both parts are trimmed. The name
// is classified case-insensitively; the value is kept verbatim apart from the
// trimming. A line without a colon, or with an empty name, fails with a
// *ParseError of kind MalformedHeader.
func (p *Parser) ParseHeader(line string) (Header, error) {
	return parseHeaderAt(line, 0)
}

// ParseRequest parses raw, a block of CRLF-separated lines made of a request
// line followed by header lines.
//
// The request line must hold at least a method and a target; otherwise the
// parse fails with NoRequestLine or MalformedRequestLine. Header lines that
// fail to parse are dropped from the result and logged at Debug level; use
// ParseRequestDiagnostics to receive them.
func (p *Parser) ParseRequest(raw string) (*Request, error) {
	req, _, err := p.parse(raw, false)
	return req, err
}

// ParseRequestDiagnostics is ParseRequest plus a Diagnostic for every non-blank
// header line that was dropped.
func (p *Parser) ParseRequestDiagnostics(raw string) (*ParseResult, error) {
	req, diags, err := p.parse(raw, true)
	if err != nil {
		return nil, err
	}
	return &ParseResult{Request: req, Diagnostics: diags}, nil
}

func (p *Parser) parse(raw string, collect bool) (*Request, []Diagnostic, error) {
	lines := fastparser.SplitLines(raw)
	first := lines[0]

	rl, err := fastparser.ParseRequestLine(first.Text)
	if err != nil {
		return nil, nil, requestLineError(err, first)
	}

	req := &Request{
		Method:  ParseMethod(rl.Method),
		Target:  rl.Target,
		Version: rl.Version,
		Headers: make(Headers, 0, len(lines)-1),
	}

	var diags []Diagnostic
	for _, line := range lines[1:] {
		hdr, err := parseHeaderAt(line.Text, line.Number)
		if err != nil {
			// Blank lines separate headers from a body or end the input;
			// they are dropped without a report.
			if line.Text == "" {
				continue
			}
			p.logger.Debug("dropped malformed header line",
				slog.Int("line", line.Number),
				slog.String("text", line.Text),
				slog.String("error", err.Error()))
			if collect {
				diags = append(diags, Diagnostic{Line: line.Number, Text: line.Text, Err: err})
			}
			continue
		}
		req.Headers = append(req.Headers, hdr)
	}

	return req, diags, nil
}

func parseHeaderAt(text string, line int) (Header, error) {
	hl, err := fastparser.ParseHeaderLine(text)
	if err != nil {
		switch {
		case errors.Is(err, fastparser.ErrEmptyName):
			return Header{}, newParseError(MalformedHeader, line, text, "malformed header line (empty name): %q", text)
		default:
			return Header{}, newParseError(MalformedHeader, line, text, "malformed header line (no colon): %q", text)
		}
	}
	return Header{Name: ParseHeaderName(hl.Name), Value: hl.Value}, nil
}

func requestLineError(err error, line fastparser.Line) error {
	if errors.Is(err, fastparser.ErrMissingTarget) {
		return newParseError(MalformedRequestLine, line.Number, line.Text, "malformed request line (no target): %q", line.Text)
	}
	return newParseError(NoRequestLine, 0, line.Text, "missing request line")
}

// Parse parses raw request text into an AST.
//
// The returned ast.ObjectNode has the structure:
//
//	{ "type": "request", "method": "GET", "target": "/api",
//	  "version": "HTTP/1.1",
//	  "headers": [{"name": "Host", "value": "example.com"}, ...] }
//
// "version" is omitted when the request line has no third field.
func Parse(input string) (ast.SchemaNode, error) {
	req, err := ParseRequest(input)
	if err != nil {
		return nil, err
	}
	return RequestToNode(req), nil
}

// ParseReader reads all data from r and parses it as a request into an AST.
func ParseReader(r io.Reader) (ast.SchemaNode, error) {
	data, err := readAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(string(data))
}
