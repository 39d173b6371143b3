package http

import (
	"fmt"

	"github.com/shapestone/shape-core/pkg/ast"
)

// Render converts an AST node (from Parse) back to wire format bytes.
//
// The node must be an ObjectNode with a "type" property of "request",
// as produced by Parse() or ParseReader().
func Render(node ast.SchemaNode) ([]byte, error) {
	obj, ok := node.(*ast.ObjectNode)
	if !ok {
		return nil, fmt.Errorf("http: Render: expected ObjectNode, got %T", node)
	}

	msgType, ok := literalString(obj.Properties(), "type")
	if !ok {
		return nil, fmt.Errorf("http: Render: missing or non-string 'type' property")
	}
	if msgType != "request" {
		return nil, fmt.Errorf("http: Render: unknown message type %q", msgType)
	}

	req, err := NodeToRequest(node)
	if err != nil {
		return nil, fmt.Errorf("http: Render: %w", err)
	}
	return Marshal(req)
}
