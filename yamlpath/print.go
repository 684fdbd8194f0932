package yamlpath

import (
	"strconv"
	"strings"
)

// needsQuoting reports whether name must be printed in bracket-quoted form
// because it contains a character that would otherwise be ambiguous with
// path syntax.
func needsQuoting(name string) bool {
	return strings.ContainsAny(name, "[]().$&*")
}

// quoteKey renders name as a quoted bracket item: single-quoted unless the
// name itself contains a single quote, in which case double quotes are used.
func quoteKey(name string) string {
	if strings.Contains(name, "'") {
		return `"` + name + `"`
	}
	return "'" + name + "'"
}

func printSegment(b *strings.Builder, s *segment) {
	switch s.kind {
	case Root:
		b.WriteString("$")
	case Anchor:
		b.WriteString("&")
		b.WriteString(s.name)
	case Key:
		if needsQuoting(s.name) {
			b.WriteString("[")
			b.WriteString(quoteKey(s.name))
			b.WriteString("]")
		} else {
			b.WriteString(".")
			b.WriteString(s.name)
		}
	case Selection:
		if len(s.keys) == 0 {
			b.WriteString(".*")
			return
		}
		b.WriteString("[")
		for i, k := range s.keys {
			if i > 0 {
				b.WriteString(",")
			}
			b.WriteString(quoteKey(k))
		}
		b.WriteString("]")
	case Index:
		b.WriteString("[")
		b.WriteString(strconv.Itoa(s.index))
		b.WriteString("]")
	case Set:
		if len(s.indices) == 0 {
			b.WriteString("[:]")
			return
		}
		b.WriteString("[")
		for i, idx := range s.indices {
			if i > 0 {
				b.WriteString(",")
			}
			b.WriteString(strconv.Itoa(idx))
		}
		b.WriteString("]")
	}
}

// printSegments renders segs in their canonical textual form.
func printSegments(segs []*segment) string {
	var b strings.Builder
	for _, s := range segs {
		printSegment(&b, s)
	}
	return b.String()
}
