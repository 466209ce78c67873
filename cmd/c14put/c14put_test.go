package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseUint64Si(t *testing.T) {
	for _, spec := range []struct {
		s   string
		v   uint64
		bad bool
	}{
		{"0", 0, false},
		{"1", 1, false},
		{"4k", 4 * 1024, false},
		{"2M", 2 * 1024 * 1024, false},
		{"1g", 1 << 30, false},
		{"3t", 3 << 40, false},
		{"-1", 0, true},
		{"x", 0, true},
		{"", 0, true},
	} {
		v, err := parseUint64Si(spec.s)
		if spec.bad {
			require.Error(t, err, "input: %s", spec.s)
			continue
		}
		require.NoError(t, err, "input: %s", spec.s)
		require.Equal(t, spec.v, v, "input: %s", spec.s)
	}
}
