package ascii

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareFold(t *testing.T) {
	testCases := []struct {
		name string
		a, b string
		n    int
		want int
	}{
		{name: "equal_mixed_case", a: "Hello", b: "hELLO", n: 5, want: 0},
		{name: "less", a: "apple", b: "Banana", n: 6, want: -1},
		{name: "greater", a: "Zeta", b: "alpha", n: 4, want: 1},
		{name: "prefix_sorts_first", a: "abc", b: "ABCD", n: 4, want: -1},
		{name: "longer_sorts_last", a: "abcd", b: "ABC", n: 4, want: 1},
		{name: "limit_hides_difference", a: "abcX", b: "ABCy", n: 3, want: 0},
		{name: "zero_limit", a: "a", b: "b", n: 0, want: 0},
		{name: "non_ascii_not_folded", a: "É", b: "é", n: 2, want: -1},
		{name: "empty", a: "", b: "", n: 3, want: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, CompareFoldN(tc.a, tc.b, tc.n))
		})
	}

	assert.Equal(t, 0, CompareFold("Content-Type", "content-type"))
	assert.Equal(t, -1, CompareFold("", "a"))
	assert.Equal(t, 1, CompareFold("b", "A"))
}

func TestCommonPrefixSuffix(t *testing.T) {
	assert.Equal(t, 3, CommonPrefix("foobar", "foox"))
	assert.Equal(t, 0, CommonPrefix("", "abc"))
	assert.Equal(t, 3, CommonPrefix("abc", "abc"))
	assert.Equal(t, 3, CommonSuffix("running", "jumping"))
	assert.Equal(t, 0, CommonSuffix("abc", "abd"))
	assert.Equal(t, 2, CommonSuffix("ab", "xab"))
}

func TestCase(t *testing.T) {
	assert.True(t, IsLower("hello world 42"))
	assert.False(t, IsLower("Hello"))
	// Only ASCII letters have a case here.
	assert.True(t, IsLower("École"))
	assert.True(t, IsUpper("HELLO-42"))
	assert.False(t, IsUpper("HELLo"))
	assert.True(t, IsLower(""))
	assert.True(t, IsUpper(""))

	b := []byte("Mixed Case é")
	ToLower(b)
	require.Equal(t, "mixed case é", string(b))
	ToUpper(b)
	require.Equal(t, "MIXED CASE é", string(b))
}

func TestReplaceByte(t *testing.T) {
	require.Equal(t, "a_b_c", ReplaceByte("a b c", ' ', '_'))
	require.Equal(t, "abc", ReplaceByte("abc", ' ', '_'))
	require.Equal(t, "", ReplaceByte("", ' ', '_'))
}

func TestReplace(t *testing.T) {
	testCases := []struct {
		name     string
		s        string
		old, new string
		want     string
	}{
		{name: "single", s: "St. Mark", old: "St.", new: "Saint", want: "Saint Mark"},
		{name: "many", s: "a-b-c", old: "-", new: " - ", want: "a - b - c"},
		{name: "non_overlapping", s: "aaaa", old: "aa", new: "b", want: "bb"},
		{name: "delete", s: "a, b, c", old: ", ", new: "", want: "abc"},
		{name: "absent", s: "abc", old: "x", new: "y", want: "abc"},
		{name: "empty_old", s: "abc", old: "", new: "y", want: "abc"},
		{name: "empty_input", s: "", old: "a", new: "b", want: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Replace(tc.s, tc.old, tc.new))

			dst := []byte("> ")
			dst = AppendReplace(dst, tc.s, tc.old, tc.new)
			require.Equal(t, "> "+tc.want, string(dst))
		})
	}
}

func TestTranslate(t *testing.T) {
	b := []byte("a.b,c;d")
	n := Translate(b, []byte(".,;"), []byte("   "))
	require.Equal(t, 3, n)
	require.Equal(t, "a b c d", string(b))

	b = []byte("aab")
	n = Translate(b, []byte("aa"), []byte("xy"))
	require.Equal(t, 2, n)
	require.Equal(t, "xxb", string(b))

	// Unpaired bytes in from are ignored.
	b = []byte("abc")
	n = Translate(b, []byte("abc"), []byte("A"))
	require.Equal(t, 1, n)
	require.Equal(t, "Abc", string(b))

	require.Zero(t, Translate(nil, []byte("a"), []byte("b")))
}
