package yamlevent_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jacobcolvin/yamlp/internal/yamlevent"
	"github.com/jacobcolvin/yamlp/yamlpath"
)

func TestStream_Next(t *testing.T) {
	t.Parallel()

	stream, err := yamlevent.NewStream([]byte("a: 1\n"))
	require.NoError(t, err)

	var kinds []yamlpath.EventKind
	for {
		ev, ok := stream.Next()
		if !ok {
			break
		}
		kinds = append(kinds, ev.Kind)
	}

	assert.Equal(t, []yamlpath.EventKind{
		yamlpath.StreamStart,
		yamlpath.DocumentStart,
		yamlpath.MappingStart,
		yamlpath.Scalar,
		yamlpath.Scalar,
		yamlpath.MappingEnd,
		yamlpath.DocumentEnd,
		yamlpath.StreamEnd,
	}, kinds)

	_, ok := stream.Next()
	assert.False(t, ok, "a fully drained stream should keep reporting false, not panic")
}

func TestStreamFromEvents(t *testing.T) {
	t.Parallel()

	events, err := yamlevent.Flatten([]byte("x: 1\n"))
	require.NoError(t, err)

	stream := yamlevent.StreamFromEvents(events)

	count := 0
	for {
		_, ok := stream.Next()
		if !ok {
			break
		}
		count++
	}

	assert.Equal(t, len(events), count)
}

func TestNewStream_PropagatesParseError(t *testing.T) {
	t.Parallel()

	_, err := yamlevent.NewStream([]byte("a: [1, 2\n"))
	require.Error(t, err)
}
