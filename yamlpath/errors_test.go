package yamlpath_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jacobcolvin/yamlp/yamlpath"
)

func TestParse_ErrorsAreSentinelWrapped(t *testing.T) {
	t.Parallel()

	items := make([]string, 257)
	for i := range items {
		items[i] = fmt.Sprintf("'k%d'", i)
	}
	tooManyItems := "[" + strings.Join(items, ",") + "]"

	tcs := map[string]struct {
		path string
		want error
	}{
		"empty path is a parse error":              {path: "", want: yamlpath.ErrParse},
		"'$' followed by anything but '.' or '['":  {path: "$$", want: yamlpath.ErrSection},
		"too many items in a selection":             {path: tooManyItems, want: yamlpath.ErrSection},
		"unterminated quoted key is a parse error":   {path: "el[']", want: yamlpath.ErrParse},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := yamlpath.Parse(tc.path)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestError_UnwrapUnknownKindReturnsNil(t *testing.T) {
	t.Parallel()

	err := &yamlpath.Error{Kind: yamlpath.ErrorNone}
	assert.Nil(t, err.Unwrap())
}
