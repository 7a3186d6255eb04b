package optparse

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

type parseCase struct {
	args     []string
	err      error
	expected map[string]interface{}
}

func noErrorCase(expected map[string]interface{}, args ...string) parseCase {
	return parseCase{args: args, expected: expected}
}

func errorCase(err error, args ...string) parseCase {
	return parseCase{args: args, err: err}
}

func (me parseCase) Run(t *testing.T, newOpts func() *Options, parseOpts ...parseOpt) {
	t.Helper()
	r, err := Parse(newOpts(), me.args, parseOpts...)
	assert.EqualValues(t, me.err, err, "%q", me.args)
	if me.err != nil || err != nil {
		return
	}
	if diff := cmp.Diff(me.expected, r.ToMap(KeyFlag)); diff != "" {
		t.Errorf("%q: (-want +got)\n%s", me.args, diff)
	}
}

func RunCases(t *testing.T, cases []parseCase, newOpts func() *Options, parseOpts ...parseOpt) {
	for _, _case := range cases {
		_case.Run(t, newOpts, parseOpts...)
	}
}
