package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		err  error
		want int
	}{
		"exit error carries its own code": {
			err:  newExitError(exitBadPath, errors.New("bad path")),
			want: exitBadPath,
		},
		"wrapped exit error": {
			err:  errors.Join(errors.New("context"), newExitError(exitFilterFailure, errors.New("boom"))),
			want: exitFilterFailure,
		},
		"unrelated error falls back to bad flag": {
			err:  errors.New("unknown flag: --bogus"),
			want: exitBadFlag,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, exitCodeFor(tc.err))
		})
	}
}
