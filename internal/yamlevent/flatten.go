// Package yamlevent adapts github.com/goccy/go-yaml's parsed AST into the
// flat, pull-style sequence of events that yamlpath.Path.Filter consumes.
// It exists because the core filter is specified against a streaming
// event parser, while the library available to this module parses a
// whole document into a tree; flattening the tree once, document order
// preserved, gives the filter the same event sequence a true streaming
// parser would.
package yamlevent

import (
	"fmt"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
	"github.com/goccy/go-yaml/token"

	"github.com/jacobcolvin/yamlp/yamlpath"
)

// Flatten parses src as a YAML stream and returns the event sequence for
// it, bracketed by StreamStart/StreamEnd and one DocumentStart/DocumentEnd
// pair per document. An empty document (e.g. a bare "---") yields an
// adjacent DocumentStart/DocumentEnd pair with no content events.
func Flatten(src []byte) ([]yamlpath.Event, error) {
	f, err := parser.ParseBytes(src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	events := []yamlpath.Event{{Kind: yamlpath.StreamStart}}

	for _, doc := range f.Docs {
		events = append(events, yamlpath.Event{Kind: yamlpath.DocumentStart})
		if doc.Body != nil {
			events = appendNode(events, doc.Body)
		}
		events = append(events, yamlpath.Event{Kind: yamlpath.DocumentEnd})
	}

	events = append(events, yamlpath.Event{Kind: yamlpath.StreamEnd})

	return events, nil
}

// appendNode walks node depth-first, in document order, appending the
// events it represents to events.
func appendNode(events []yamlpath.Event, node ast.Node) []yamlpath.Event {
	anchorName := ""

	for {
		switch n := node.(type) {
		case *ast.AnchorNode:
			anchorName = n.Name.String()
			node = n.Value
			continue
		case *ast.TagNode:
			node = n.Value
			continue
		}
		break
	}

	switch n := node.(type) {
	case *ast.MappingNode:
		events = append(events, yamlpath.Event{Kind: yamlpath.MappingStart, Anchor: anchorName})
		for _, mv := range n.Values {
			events = appendNode(events, mv.Key)
			events = appendNode(events, mv.Value)
		}
		return append(events, yamlpath.Event{Kind: yamlpath.MappingEnd})

	case *ast.MappingValueNode:
		events = append(events, yamlpath.Event{Kind: yamlpath.MappingStart, Anchor: anchorName})
		events = appendNode(events, n.Key)
		events = appendNode(events, n.Value)
		return append(events, yamlpath.Event{Kind: yamlpath.MappingEnd})

	case *ast.SequenceNode:
		events = append(events, yamlpath.Event{Kind: yamlpath.SequenceStart, Anchor: anchorName})
		for _, v := range n.Values {
			events = appendNode(events, v)
		}
		return append(events, yamlpath.Event{Kind: yamlpath.SequenceEnd})

	case *ast.AliasNode:
		return append(events, yamlpath.Event{Kind: yamlpath.Alias, Value: n.Value.String()})

	default:
		value := n.String()
		if s, ok := n.(*ast.StringNode); ok {
			value = s.Value
		}
		return append(events, yamlpath.Event{
			Kind:   yamlpath.Scalar,
			Value:  value,
			Anchor: anchorName,
			Quoted: isQuotedScalar(n),
		})
	}
}

// isQuotedScalar reports whether node was written as a quoted or literal
// string in the source, as opposed to a plain scalar (number, bool, null, or
// an unquoted string).
func isQuotedScalar(node ast.Node) bool {
	switch n := node.(type) {
	case *ast.StringNode:
		return n.Token.Type == token.SingleQuoteType || n.Token.Type == token.DoubleQuoteType
	case *ast.LiteralNode:
		return true
	default:
		return false
	}
}
