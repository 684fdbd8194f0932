package yamlpath

import (
	"log/slog"
	"slices"
)

// EventKind enumerates the parse-event classes the filter consumes.
type EventKind int

const (
	StreamStart EventKind = iota
	StreamEnd
	DocumentStart
	DocumentEnd
	MappingStart
	MappingEnd
	SequenceStart
	SequenceEnd
	Scalar
	Alias
	NoEvent
)

// Event is one unit emitted by a streaming YAML parser, as consumed by
// (*Path).Filter. Anchor is populated for Scalar/MappingStart/SequenceStart
// events that carry a YAML anchor; for Alias, Value carries the name of the
// anchor being referenced. Quoted records whether a Scalar was written in a
// quoted string style in the source, as opposed to a plain/numeric/bool/null
// style; it has no bearing on matching and exists only so an emitter can
// reproduce the scalar's style on output.
type Event struct {
	Kind   EventKind
	Value  string
	Anchor string
	Quoted bool
}

// FilterResult is the tri-valued decision (*Path).Filter returns for an event.
type FilterResult int

const (
	// Out means the event should be dropped.
	Out FilterResult = iota
	// In means the event should be forwarded unchanged.
	In
	// InDanglingKey means the event should be forwarded, and if the next
	// forwarded event is a closing container event or another
	// InDanglingKey result, the caller must emit a synthetic null scalar
	// before it.
	InDanglingKey
)

// currentSegmentLevel returns the segment at the path's current active
// level (nil if the stream is deeper than the path, or the path is not yet
// anchored) along with that level number.
func (p *Path) currentSegmentLevel() (*segment, int) {
	if p.startLevel == 0 {
		return nil, 0
	}
	level := p.currentLevel - p.startLevel + 1
	return p.segmentAtLevel(level), level
}

func (p *Path) segmentAtLevel(level int) *segment {
	idx := level - 1
	if idx < 0 || idx >= len(p.segments) {
		return nil
	}
	return p.segments[idx]
}

func (p *Path) isLastLevel(level int) bool {
	return level == len(p.segments)
}

func (p *Path) allValid() bool {
	for _, s := range p.segments {
		if !s.valid {
			return false
		}
	}
	return true
}

// precedingValid reports whether every segment at a level below the given
// one currently matches.
func (p *Path) precedingValid(level int) bool {
	for i := 0; i < level-1 && i < len(p.segments); i++ {
		if !p.segments[i].valid {
			return false
		}
	}
	return true
}

// Filter consumes one YAML parse event and returns the filter's decision
// for it, mutating the Path's runtime state as it goes. It never fails: a
// decision is returned for every event, including events that don't match
// any segment.
func (p *Path) Filter(ev Event) FilterResult {
	p.anchor(ev)

	cur, curLevel := p.currentSegmentLevel()
	if cur != nil {
		updateMatch(cur, ev)
	}

	switch ev.Kind {
	case StreamStart, StreamEnd, NoEvent:
		return In

	case DocumentStart:
		if p.startLevel == 1 {
			p.currentLevel++
		}
		return In

	case DocumentEnd:
		if p.startLevel == 1 {
			p.currentLevel--
		}
		return In

	case MappingStart, SequenceStart:
		return p.filterContainerStart(ev, cur, curLevel)

	case MappingEnd, SequenceEnd:
		return p.filterContainerEnd(cur, curLevel)

	case Scalar, Alias:
		return p.filterLeaf(cur, curLevel)

	default:
		return Out
	}
}

// anchor decides, once per Path, when the filter becomes active: on the
// first DocumentStart for a Root path, or on the first event carrying a
// matching anchor name for an Anchor path.
func (p *Path) anchor(ev Event) {
	if p.startLevel != 0 {
		return
	}

	first := p.segments[0]
	switch first.kind {
	case Root:
		if ev.Kind == DocumentStart {
			p.startLevel = 1
			first.valid = true
			slog.Debug("path anchored", "kind", "root", "start_level", p.startLevel)
		}
	case Anchor:
		if ev.Anchor != "" && ev.Anchor == first.name {
			p.startLevel = p.currentLevel
			slog.Debug("path anchored", "kind", "anchor", "name", first.name, "start_level", p.startLevel)
		}
	}
}

// updateMatch applies the per-event bookkeeping rule for the segment
// currently in play, for every content event (Scalar/Alias/MappingStart/
// SequenceStart), then advances its counter.
func updateMatch(cur *segment, ev Event) {
	switch ev.Kind {
	case Scalar, Alias, MappingStart, SequenceStart:
	default:
		return
	}

	switch cur.node {
	case noNode:
		switch cur.kind {
		case Root:
			// Root matches the whole document; once anchored it stays
			// valid for as long as it remains the current segment.
			cur.valid = true
		case Anchor:
			cur.valid = ev.Anchor == cur.name
		default:
			cur.valid = false
		}

	case mappingNode:
		switch cur.kind {
		case Key:
			if cur.counter%2 == 1 {
				cur.valid = cur.nextValid
				cur.nextValid = false
			} else {
				cur.nextValid = ev.Kind == Scalar && ev.Value == cur.name
				cur.valid = false
			}
		case Selection:
			if cur.counter%2 == 1 {
				cur.valid = cur.nextValid
				cur.nextValid = false
			} else {
				matched := len(cur.keys) == 0 || (ev.Kind == Scalar && slices.Contains(cur.keys, ev.Value))
				cur.nextValid = matched
				cur.valid = matched
			}
		default:
			cur.valid = false
		}

	case sequenceNode:
		switch cur.kind {
		case Index:
			cur.valid = cur.counter == cur.index
		case Set:
			cur.valid = len(cur.indices) == 0 || slices.Contains(cur.indices, cur.counter)
		default:
			cur.valid = false
		}
	}

	slog.Debug("segment match decision", "segment_kind", cur.kind, "valid", cur.valid, "counter", cur.counter)

	cur.counter++
}

func (p *Path) filterContainerStart(ev Event, cur *segment, curLevel int) FilterResult {
	res := Out

	switch {
	case cur != nil:
		if p.isLastLevel(curLevel) && p.allValid() {
			res = In
		}
	case p.currentLevel > p.startLevel:
		if p.allValid() {
			res = In
		}
	}

	p.currentLevel++
	newCur, newLevel := p.currentSegmentLevel()
	if newCur != nil {
		if ev.Kind == MappingStart {
			newCur.node = mappingNode
		} else {
			newCur.node = sequenceNode
		}
		newCur.counter = 0

		if newCur.isMandatoryContainer() && p.precedingValid(newLevel) {
			res = In
		}
	}

	return res
}

func (p *Path) filterContainerEnd(cur *segment, curLevel int) FilterResult {
	res := Out

	if cur != nil && cur.isMandatoryContainer() && p.precedingValid(curLevel) {
		res = In
	}

	p.currentLevel--
	newCur, newLevel := p.currentSegmentLevel()

	switch {
	case newCur != nil:
		if p.isLastLevel(newLevel) && p.allValid() {
			res = In
		}
	case p.currentLevel > p.startLevel:
		if p.allValid() {
			res = In
		}
	}

	return res
}

func (p *Path) filterLeaf(cur *segment, curLevel int) FilterResult {
	if cur == nil {
		if p.startLevel != 0 && p.currentLevel >= p.startLevel && p.allValid() {
			return In
		}
		return Out
	}

	if p.isLastLevel(curLevel) && p.allValid() {
		return In
	}

	// cur.counter was already advanced by updateMatch; an odd counter here
	// means the pre-increment counter was even, i.e. this event is the key
	// half of a mapping pair. A Selection (or Set) segment that isn't the
	// path's last segment still has to materialise its selected keys in
	// the output even though nothing deeper necessarily matches under
	// them, so a matched key is forwarded on its own; the writer is
	// responsible for supplying a null if nothing else follows before the
	// key's container closes or the next key is forwarded.
	if cur.valid && cur.node == mappingNode && cur.counter%2 == 1 &&
		cur.isMandatoryContainer() && p.precedingValid(curLevel) {
		return InDanglingKey
	}

	return Out
}
