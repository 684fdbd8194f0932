// Package yamlwrite turns a yamlpath-filtered event sequence back into
// well-formed YAML text. It is the emitter half of the driver: the core
// only ever returns a per-event decision, so reconstructing output text,
// including the synthetic nulls a dangling key or an empty selection
// require, is the driver's job.
package yamlwrite

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/jacobcolvin/yamlp/internal/yamlevent"
	"github.com/jacobcolvin/yamlp/yamlpath"
)

// Config controls how Write renders its output.
type Config struct {
	// ForceFlow renders every container in flow style ({...}/[...])
	// instead of the default block (indented) style.
	ForceFlow bool
	// Width is the emitter's target line-wrap width. Accepted for CLI
	// compatibility; Write does not fold lines, so Width has no effect on
	// the output.
	Width int
}

// Write pulls events from stream one at a time, drives path over each, and
// renders the resulting filtered sequence as YAML text. It mutates path's
// runtime state exactly as a direct sequence of Filter calls would.
func Write(stream *yamlevent.Stream, path *yamlpath.Path, cfg Config) (string, error) {
	kept := synthesize(stream, path)

	docs, err := buildDocs(kept)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for i, doc := range docs {
		if i > 0 {
			b.WriteString("---\n")
		}
		if doc == nil {
			b.WriteString("null\n")
			continue
		}
		if cfg.ForceFlow {
			renderFlow(&b, doc)
			b.WriteString("\n")
		} else {
			renderBlock(&b, doc, 0)
		}
	}

	return b.String(), nil
}

// synthesize pulls events from stream through path and returns the
// subsequence that should reach the emitter, with a synthetic null scalar
// spliced in wherever the filter's IN_DANGLING_KEY result or the
// empty-document rule requires one.
func synthesize(stream *yamlevent.Stream, path *yamlpath.Path) []yamlpath.Event {
	var kept []yamlpath.Event

	prevKind := yamlpath.NoEvent
	prevResult := yamlpath.Out
	havePrev := false

	for {
		ev, ok := stream.Next()
		if !ok {
			break
		}

		result := path.Filter(ev)
		if result == yamlpath.Out {
			continue
		}

		if havePrev {
			emptyDocument := prevKind == yamlpath.DocumentStart && ev.Kind == yamlpath.DocumentEnd
			danglingClose := prevResult == yamlpath.InDanglingKey &&
				(ev.Kind == yamlpath.MappingEnd || ev.Kind == yamlpath.SequenceEnd || result == yamlpath.InDanglingKey)
			if emptyDocument || danglingClose {
				reason := "dangling key"
				if emptyDocument {
					reason = "empty document"
				}
				slog.Debug("synthesizing null", "reason", reason)
				kept = append(kept, yamlpath.Event{Kind: yamlpath.Scalar, Value: "null"})
			}
		}

		kept = append(kept, ev)
		prevKind = ev.Kind
		prevResult = result
		havePrev = true
	}

	return kept
}

// node is a reconstructed output node, built from the kept event
// subsequence once filtering and null-synthesis are done.
type node struct {
	kind     yamlpath.EventKind // Scalar, Alias, MappingStart, SequenceStart
	value    string
	quoted   bool
	children []*node // MappingStart: alternating key, value, key, value, ...
}

type cursor struct {
	events []yamlpath.Event
	pos    int
}

func (c *cursor) atEnd() bool { return c.pos >= len(c.events) }

func (c *cursor) peekKind() yamlpath.EventKind {
	if c.atEnd() {
		return yamlpath.NoEvent
	}
	return c.events[c.pos].Kind
}

func (c *cursor) next() (yamlpath.Event, error) {
	if c.atEnd() {
		return yamlpath.Event{}, fmt.Errorf("yamlwrite: unexpected end of event stream")
	}
	ev := c.events[c.pos]
	c.pos++
	return ev, nil
}

// buildDocs parses a StreamStart/.../StreamEnd event sequence into one node
// tree per document (nil for an empty document).
func buildDocs(events []yamlpath.Event) ([]*node, error) {
	c := &cursor{events: events}

	start, err := c.next()
	if err != nil {
		return nil, err
	}
	if start.Kind != yamlpath.StreamStart {
		return nil, fmt.Errorf("yamlwrite: expected stream start, got %v", start.Kind)
	}

	var docs []*node
	for c.peekKind() == yamlpath.DocumentStart {
		if _, err := c.next(); err != nil {
			return nil, err
		}

		var doc *node
		if c.peekKind() != yamlpath.DocumentEnd {
			doc, err = c.buildNode()
			if err != nil {
				return nil, err
			}
		}

		end, err := c.next()
		if err != nil {
			return nil, err
		}
		if end.Kind != yamlpath.DocumentEnd {
			return nil, fmt.Errorf("yamlwrite: expected document end, got %v", end.Kind)
		}

		docs = append(docs, doc)
	}

	streamEnd, err := c.next()
	if err != nil {
		return nil, err
	}
	if streamEnd.Kind != yamlpath.StreamEnd {
		return nil, fmt.Errorf("yamlwrite: expected stream end, got %v", streamEnd.Kind)
	}

	return docs, nil
}

func (c *cursor) buildNode() (*node, error) {
	ev, err := c.next()
	if err != nil {
		return nil, err
	}

	switch ev.Kind {
	case yamlpath.Scalar:
		return &node{kind: yamlpath.Scalar, value: ev.Value, quoted: ev.Quoted}, nil

	case yamlpath.Alias:
		return &node{kind: yamlpath.Alias, value: ev.Value}, nil

	case yamlpath.MappingStart:
		var children []*node
		for c.peekKind() != yamlpath.MappingEnd {
			key, err := c.buildNode()
			if err != nil {
				return nil, err
			}
			val, err := c.buildNode()
			if err != nil {
				return nil, err
			}
			children = append(children, key, val)
		}
		if _, err := c.next(); err != nil {
			return nil, err
		}
		return &node{kind: yamlpath.MappingStart, children: children}, nil

	case yamlpath.SequenceStart:
		var children []*node
		for c.peekKind() != yamlpath.SequenceEnd {
			item, err := c.buildNode()
			if err != nil {
				return nil, err
			}
			children = append(children, item)
		}
		if _, err := c.next(); err != nil {
			return nil, err
		}
		return &node{kind: yamlpath.SequenceStart, children: children}, nil

	default:
		return nil, fmt.Errorf("yamlwrite: unexpected event %v while building output", ev.Kind)
	}
}

func formatScalar(n *node) string {
	if !n.quoted {
		return n.value
	}
	return "'" + strings.ReplaceAll(n.value, "'", "''") + "'"
}

// renderFlow writes n in flow style ({...}/[...]) with no line breaks.
func renderFlow(b *strings.Builder, n *node) {
	switch n.kind {
	case yamlpath.Scalar:
		b.WriteString(formatScalar(n))
	case yamlpath.Alias:
		b.WriteString("*" + n.value)
	case yamlpath.MappingStart:
		if len(n.children) == 0 {
			b.WriteString("{}")
			return
		}
		b.WriteString("{")
		for i := 0; i < len(n.children); i += 2 {
			if i > 0 {
				b.WriteString(", ")
			}
			renderFlow(b, n.children[i])
			b.WriteString(": ")
			renderFlow(b, n.children[i+1])
		}
		b.WriteString("}")
	case yamlpath.SequenceStart:
		if len(n.children) == 0 {
			b.WriteString("[]")
			return
		}
		b.WriteString("[")
		for i, child := range n.children {
			if i > 0 {
				b.WriteString(", ")
			}
			renderFlow(b, child)
		}
		b.WriteString("]")
	}
}

// renderBlock writes n in indented block style, at the given indent depth
// (2 spaces per level).
func renderBlock(b *strings.Builder, n *node, depth int) {
	switch n.kind {
	case yamlpath.Scalar, yamlpath.Alias:
		writeBlockScalar(b, n)
		b.WriteString("\n")
		return

	case yamlpath.MappingStart:
		if len(n.children) == 0 {
			b.WriteString("{}\n")
			return
		}
		for i := 0; i < len(n.children); i += 2 {
			key, val := n.children[i], n.children[i+1]
			writeIndent(b, depth)
			writeBlockScalar(b, key)
			b.WriteString(":")
			writeBlockValue(b, val, depth)
		}
		return

	case yamlpath.SequenceStart:
		if len(n.children) == 0 {
			b.WriteString("[]\n")
			return
		}
		for _, item := range n.children {
			writeIndent(b, depth)
			b.WriteString("-")
			writeBlockValue(b, item, depth)
		}
		return
	}
}

// writeBlockValue writes the ": value" or "- value" continuation of a
// mapping entry or sequence item, choosing inline vs nested-block form
// depending on whether val is a container.
func writeBlockValue(b *strings.Builder, val *node, depth int) {
	switch val.kind {
	case yamlpath.MappingStart, yamlpath.SequenceStart:
		if len(val.children) == 0 {
			b.WriteString(" ")
			renderBlock(b, val, depth+1)
			return
		}
		b.WriteString("\n")
		renderBlock(b, val, depth+1)
	default:
		b.WriteString(" ")
		writeBlockScalar(b, val)
		b.WriteString("\n")
	}
}

func writeBlockScalar(b *strings.Builder, n *node) {
	if n.kind == yamlpath.Alias {
		b.WriteString("*" + n.value)
		return
	}
	b.WriteString(formatScalar(n))
}

func writeIndent(b *strings.Builder, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
}
