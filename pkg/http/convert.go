package http

import (
	"fmt"

	"github.com/shapestone/shape-core/pkg/ast"
)

var zeroPos = ast.Position{}

// RequestToNode converts a Request to an AST ObjectNode. See Parse for the layout.
func RequestToNode(req *Request) ast.SchemaNode {
	props := map[string]ast.SchemaNode{
		"type":    ast.NewLiteralNode("request", zeroPos),
		"method":  ast.NewLiteralNode(req.Method.String(), zeroPos),
		"target":  ast.NewLiteralNode(req.Target, zeroPos),
		"headers": headersToNode(req.Headers),
	}
	if req.Version != "" {
		props["version"] = ast.NewLiteralNode(req.Version, zeroPos)
	}
	return ast.NewObjectNode(props, zeroPos)
}

// NodeToRequest converts an AST ObjectNode back to a Request.
// Method and header names are classified again from their text, so a node
// produced by RequestToNode converts back to an equal Request.
func NodeToRequest(node ast.SchemaNode) (*Request, error) {
	obj, ok := node.(*ast.ObjectNode)
	if !ok {
		return nil, fmt.Errorf("expected ObjectNode, got %T", node)
	}

	props := obj.Properties()
	req := &Request{}

	method, ok := literalString(props, "method")
	if !ok || method == "" {
		return nil, fmt.Errorf("missing 'method' property")
	}
	req.Method = ParseMethod(method)

	req.Target, ok = literalString(props, "target")
	if !ok || req.Target == "" {
		return nil, fmt.Errorf("missing 'target' property")
	}

	req.Version, _ = literalString(props, "version")

	if v, ok := props["headers"]; ok {
		hdrs, err := nodeToHeaders(v)
		if err != nil {
			return nil, err
		}
		req.Headers = hdrs
	}

	return req, nil
}

// NodeToInterface converts an AST node to native Go types.
func NodeToInterface(node ast.SchemaNode) interface{} {
	switch n := node.(type) {
	case *ast.LiteralNode:
		return n.Value()
	case *ast.ArrayDataNode:
		elements := n.Elements()
		arr := make([]interface{}, len(elements))
		for i, elem := range elements {
			arr[i] = NodeToInterface(elem)
		}
		return arr
	case *ast.ObjectNode:
		props := n.Properties()
		m := make(map[string]interface{}, len(props))
		for k, v := range props {
			m[k] = NodeToInterface(v)
		}
		return m
	default:
		return nil
	}
}

func headersToNode(headers Headers) ast.SchemaNode {
	elements := make([]ast.SchemaNode, len(headers))
	for i, h := range headers {
		elements[i] = ast.NewObjectNode(map[string]ast.SchemaNode{
			"name":  ast.NewLiteralNode(h.Name.String(), zeroPos),
			"value": ast.NewLiteralNode(h.Value, zeroPos),
		}, zeroPos)
	}
	return ast.NewArrayDataNode(elements, zeroPos)
}

func nodeToHeaders(node ast.SchemaNode) (Headers, error) {
	arr, ok := node.(*ast.ArrayDataNode)
	if !ok {
		return nil, fmt.Errorf("expected ArrayDataNode for headers, got %T", node)
	}

	elements := arr.Elements()
	headers := make(Headers, 0, len(elements))
	for i, elem := range elements {
		obj, ok := elem.(*ast.ObjectNode)
		if !ok {
			return nil, fmt.Errorf("headers[%d]: expected ObjectNode, got %T", i, elem)
		}
		props := obj.Properties()
		name, ok := literalString(props, "name")
		if !ok || name == "" {
			return nil, fmt.Errorf("headers[%d]: missing 'name' property", i)
		}
		value, _ := literalString(props, "value")
		headers = append(headers, Header{Name: ParseHeaderName(name), Value: value})
	}

	return headers, nil
}

// literalString returns the string value of the literal property key.
func literalString(props map[string]ast.SchemaNode, key string) (string, bool) {
	v, ok := props[key]
	if !ok {
		return "", false
	}
	lit, ok := v.(*ast.LiteralNode)
	if !ok {
		return "", false
	}
	s, ok := lit.Value().(string)
	return s, ok
}
