// Package ascii provides byte-oriented string helpers that only understand
// ASCII. Bytes at or above 0x80 are compared and copied unchanged and never
// interpreted, so positions computed here may fall inside a multi-byte
// codepoint. Use the runescan package for anything that must respect
// codepoint boundaries.
package ascii

import "strings"

func isLower(c byte) bool { return 'a' <= c && c <= 'z' }
func isUpper(c byte) bool { return 'A' <= c && c <= 'Z' }

func toLower(c byte) byte {
	if isUpper(c) {
		return c + 'a' - 'A'
	}
	return c
}

func toUpper(c byte) byte {
	if isLower(c) {
		return c - 'a' + 'A'
	}
	return c
}

// CompareFold compares a and b byte by byte with ASCII letters folded to
// lower case. The result is 0 if a == b, -1 if a < b, and +1 if a > b. A
// string that is a prefix of the other sorts first.
func CompareFold(a, b string) int {
	return CompareFoldN(a, b, max(len(a), len(b)))
}

// CompareFoldN is like [CompareFold] but looks at no more than the first n
// bytes of each string. For n <= 0 the result is 0.
func CompareFoldN(a, b string, n int) int {
	for i := 0; i < n; i++ {
		switch {
		case i == len(a) && i == len(b):
			return 0
		case i == len(a):
			return -1
		case i == len(b):
			return 1
		}
		ca, cb := toLower(a[i]), toLower(b[i])
		if ca == cb {
			continue
		}
		if ca < cb {
			return -1
		}
		return 1
	}
	return 0
}

// CommonPrefix returns the number of leading bytes a and b share.
func CommonPrefix(a, b string) int {
	n := min(len(a), len(b))
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}

// CommonSuffix returns the number of trailing bytes a and b share.
func CommonSuffix(a, b string) int {
	n := min(len(a), len(b))
	i := 0
	for i < n && a[len(a)-1-i] == b[len(b)-1-i] {
		i++
	}
	return i
}

// IsLower reports whether s holds no upper case ASCII letter.
func IsLower(s string) bool {
	for i := 0; i < len(s); i++ {
		if isUpper(s[i]) {
			return false
		}
	}
	return true
}

// IsUpper reports whether s holds no lower case ASCII letter.
func IsUpper(s string) bool {
	for i := 0; i < len(s); i++ {
		if isLower(s[i]) {
			return false
		}
	}
	return true
}

// ToLower maps the ASCII letters of b to lower case in place.
func ToLower(b []byte) {
	for i, c := range b {
		b[i] = toLower(c)
	}
}

// ToUpper maps the ASCII letters of b to upper case in place.
func ToUpper(b []byte) {
	for i, c := range b {
		b[i] = toUpper(c)
	}
}

// ReplaceByte returns a copy of s with every old byte replaced by new. If s
// has no old byte, s itself is returned.
func ReplaceByte(s string, old, new byte) string {
	i := strings.IndexByte(s, old)
	if i < 0 {
		return s
	}
	b := []byte(s)
	for ; i < len(b); i++ {
		if b[i] == old {
			b[i] = new
		}
	}
	return string(b)
}

// AppendReplace appends s to dst with every non-overlapping occurrence of old
// replaced by new, and returns the extended buffer. If old is empty, s is
// appended unchanged.
func AppendReplace(dst []byte, s, old, new string) []byte {
	if old == "" {
		return append(dst, s...)
	}
	for {
		i := strings.Index(s, old)
		if i < 0 {
			break
		}
		dst = append(dst, s[:i]...)
		dst = append(dst, new...)
		s = s[i+len(old):]
	}
	return append(dst, s...)
}

// Replace returns s with every non-overlapping occurrence of old replaced by
// new. If old is empty or absent, s itself is returned.
func Replace(s, old, new string) string {
	if old == "" || !strings.Contains(s, old) {
		return s
	}
	return string(AppendReplace(make([]byte, 0, len(s)), s, old, new))
}

// Translate replaces, in place, every byte of b found in from with the byte at
// the same position in to, and returns the number of bytes replaced. Pairs
// beyond the shorter of from and to are ignored; if a byte occurs in from more
// than once, its first position wins.
func Translate(b []byte, from, to []byte) int {
	var (
		mapped [256]bool
		repl   [256]byte
	)
	for j := 0; j < min(len(from), len(to)); j++ {
		if !mapped[from[j]] {
			mapped[from[j]] = true
			repl[from[j]] = to[j]
		}
	}

	replaced := 0
	for i, c := range b {
		if mapped[c] {
			b[i] = repl[c]
			replaced++
		}
	}
	return replaced
}
