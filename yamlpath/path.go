// Package yamlpath compiles a compact path expression and streams YAML
// parse events through it, deciding for each event whether it belongs to
// the selected subtree. It never builds a document tree: matching is a
// pure function of a small amount of per-segment runtime state, updated
// one event at a time in document order.
package yamlpath

// Path is a compiled path expression together with the runtime state the
// filter mutates while streaming. A Path is not safe for concurrent use;
// it is a single-threaded, synchronous transducer from event to decision.
type Path struct {
	segments []*segment

	currentLevel int
	startLevel   int

	err *Error
}

// New returns an empty Path with no segments. Parse returns a Path
// compiled from a path expression.
func New() *Path {
	return &Path{}
}

// Parse compiles text into a new Path. On success the error is nil; on
// failure it returns the Path together with an *Error, which the Path's
// Err also reports, and the Path has no segments.
func Parse(text string) (*Path, error) {
	p := New()
	if err := p.parse(text); err != nil {
		return p, err
	}
	return p, nil
}

func (p *Path) parse(text string) error {
	p.segments = nil
	p.err = nil
	p.currentLevel = 0
	p.startLevel = 0

	segs, err := parsePath(text)
	if err != nil {
		p.err = err
		return err
	}

	p.segments = segs
	return nil
}

// Err returns the error recorded by the most recent failed Parse, or nil
// if parsing succeeded (or has not been attempted).
func (p *Path) Err() *Error {
	return p.err
}

// String renders p in its canonical textual form.
func (p *Path) String() string {
	return printSegments(p.segments)
}

// AppendText appends p's canonical textual form to dst and returns the
// extended buffer, mirroring the "snprint into a caller buffer" shape of
// the original API without a fixed-size limit.
func (p *Path) AppendText(dst []byte) []byte {
	return append(dst, p.String()...)
}

// Reset clears the filter's runtime state (current_level, start_level, and
// every segment's counters and match flags) so the Path can be streamed
// against a new input without re-parsing. The compiled segments themselves
// are left untouched.
func (p *Path) Reset() {
	p.currentLevel = 0
	p.startLevel = 0
	for _, s := range p.segments {
		s.resetRuntime()
	}
}
