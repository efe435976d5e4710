package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOperations(t *testing.T) {
	testCases := []struct {
		op    string
		input string
		quote bool
		want  string
	}{
		{op: "trim", input: " café\u3000", quote: true, want: `"café"`},
		{op: "trim", input: " café\u3000", want: "café"},
		{op: "fields", input: " co-op  a\tb ", quote: true, want: `"co-op" "a" "b"`},
		{op: "fields", input: "   ", want: ""},
		{op: "digits", input: "2024", want: "true"},
		{op: "digits", input: "20-24", want: "false"},
		{op: "ignorable", input: " - ", want: "true"},
		{op: "ignorable", input: "", want: "true"},
		{op: "space", input: "ab cd", want: "2"},
		{op: "hyphen", input: "é\u00adx", want: "2"},
		{op: "period", input: "abc", want: "-1"},
		{op: "edges", input: " -x— ", want: "space=1,1 hyphen=0,0"},
		{op: "edges", input: "-x—", want: "space=0,0 hyphen=1,3"},
		{op: "runes", input: "a 1", want: "0:U+0061:other 1:U+0020:whitespace 2:U+0031:digit"},
		{op: "runes", input: "é\xff", want: "0:U+00E9:other 2:invalid"},
		{op: "runes", input: "a\xe2\x82", want: "0:U+0061:other 1:incomplete"},
	}

	for _, tc := range testCases {
		t.Run(tc.op+"_"+tc.want, func(t *testing.T) {
			op, ok := lookupOperation(tc.op)
			require.True(t, ok)
			require.Equal(t, tc.want, op.apply([]byte(tc.input), tc.quote))
		})
	}
}

func TestLookupOperation(t *testing.T) {
	op, ok := lookupOperation("TRIM")
	require.True(t, ok)
	require.Equal(t, "trim", op.name)

	_, ok = lookupOperation("tokenize")
	require.False(t, ok)

	for _, name := range strings.Split(operationNames(), ", ") {
		_, ok := lookupOperation(name)
		require.True(t, ok, name)
	}
}

func TestScan(t *testing.T) {
	op, ok := lookupOperation("space")
	require.True(t, ok)

	var out bytes.Buffer
	lines, err := scan(strings.NewReader("ab cd\nabcd\r\n\n x"), &out, op, true)
	require.NoError(t, err)
	require.Equal(t, 4, lines)
	require.Equal(t, "2\n-1\n-1\n0\n", out.String())
}

func TestScanLineTooLong(t *testing.T) {
	op, ok := lookupOperation("trim")
	require.True(t, ok)

	long := strings.Repeat("a", maxLine+1)
	_, err := scan(strings.NewReader(long), &bytes.Buffer{}, op, false)
	require.ErrorContains(t, err, "read input")
}

func TestNewLogger(t *testing.T) {
	logger, err := newLogger("debug")
	require.NoError(t, err)
	require.NotNil(t, logger)

	_, err = newLogger("loud")
	require.Error(t, err)
}
