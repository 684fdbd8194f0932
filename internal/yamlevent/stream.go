package yamlevent

import "github.com/jacobcolvin/yamlp/yamlpath"

// Stream is a pull-style cursor over a flattened event sequence, mirroring
// the "driver pulls events from the parser" shape the core is specified
// against even though the underlying events were produced eagerly.
type Stream struct {
	events []yamlpath.Event
	pos    int
}

// NewStream parses src and returns a Stream over its flattened events.
func NewStream(src []byte) (*Stream, error) {
	events, err := Flatten(src)
	if err != nil {
		return nil, err
	}
	return &Stream{events: events}, nil
}

// StreamFromEvents wraps an already-flattened event slice in a Stream,
// letting a caller that holds a parsed document replay it without
// re-parsing the source bytes.
func StreamFromEvents(events []yamlpath.Event) *Stream {
	return &Stream{events: events}
}

// Next returns the next event and true, or a zero Event and false once the
// stream is exhausted.
func (s *Stream) Next() (yamlpath.Event, bool) {
	if s.pos >= len(s.events) {
		return yamlpath.Event{}, false
	}
	ev := s.events[s.pos]
	s.pos++
	return ev, true
}
