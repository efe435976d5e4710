package runescan

import "golang.org/x/text/runes"

// period is the codepoint searched for by IndexPeriod and ContainsPeriod.
const period = '.'

// single is the set holding one codepoint.
type single rune

func (s single) Contains(r rune) bool { return rune(s) == r }

// scanForward walks s one codepoint at a time from the start and stops at the
// first codepoint whose membership in set equals want. It returns the offset
// of that codepoint with statusOK, len(s) with statusEnd if there is none, or
// the offset of a malformed sequence with its failure status.
func scanForward[T Text, S runes.Set](s T, set S, want bool) (int, status) {
	for i := 0; i < len(s); {
		r, width, st := decode(s, i, Forward)
		if st != statusOK {
			return i, st
		}
		if set.Contains(r) == want {
			return i, statusOK
		}
		i += width
	}
	return len(s), statusEnd
}

// scanBackward is the mirror of scanForward. The returned offset is the
// exclusive end of the codepoint it stopped at, so len(s) minus the offset is
// the number of bytes walked.
func scanBackward[T Text, S runes.Set](s T, set S, want bool) (int, status) {
	for i := len(s); i > 0; {
		r, width, st := decode(s, i, Backward)
		if st != statusOK {
			return i, st
		}
		if set.Contains(r) == want {
			return i, statusOK
		}
		i -= width
	}
	return 0, statusEnd
}

// index is the shared body of the Index functions.
func index[T Text, S runes.Set](op string, s T, set S) int {
	offset, st := scanForward(s, set, true)
	switch {
	case st == statusOK:
		return offset
	case st.failed():
		traceStop(op, offset, st)
	}
	return -1
}

// IndexRune returns the byte offset of the first occurrence of r in s, or -1
// if r does not occur before the end of s or before the first malformed
// sequence.
func IndexRune[T Text](s T, r rune) int {
	return index("IndexRune", s, single(r))
}

// IndexSet returns the byte offset of the first codepoint in s contained in
// set, or -1. Like [IndexRune], the search ends at the first malformed
// sequence. A [Category] is a valid set:
//
//	IndexSet(b, Hyphen|Whitespace)
func IndexSet[T Text](s T, set runes.Set) int {
	return index("IndexSet", s, set)
}

// IndexWhitespace returns the byte offset of the first whitespace codepoint in
// s, or -1.
func IndexWhitespace[T Text](s T) int {
	return index("IndexWhitespace", s, Whitespace)
}

// IndexHyphen returns the byte offset of the first hyphen-like codepoint in s,
// or -1. For a multi-byte hyphen such as U+00AD the offset of its first byte
// is returned.
func IndexHyphen[T Text](s T) int {
	return index("IndexHyphen", s, Hyphen)
}

// IndexPeriod returns the byte offset of the first full stop (U+002E) in s,
// or -1.
func IndexPeriod[T Text](s T) int {
	return index("IndexPeriod", s, single(period))
}

// ContainsRune reports whether [IndexRune] finds r in s.
func ContainsRune[T Text](s T, r rune) bool {
	return IndexRune(s, r) >= 0
}

// ContainsHyphen reports whether [IndexHyphen] finds a hyphen in s.
func ContainsHyphen[T Text](s T) bool {
	return IndexHyphen(s) >= 0
}

// ContainsPeriod reports whether [IndexPeriod] finds a full stop in s.
func ContainsPeriod[T Text](s T) bool {
	return IndexPeriod(s) >= 0
}

// All reports whether every codepoint in s is contained in set. It returns
// true for an empty s and false if s holds a malformed sequence anywhere
// before the first codepoint outside set.
func All[T Text](s T, set runes.Set) bool {
	return all("All", s, set)
}

func all[T Text, S runes.Set](op string, s T, set S) bool {
	offset, st := scanForward(s, set, false)
	if st.failed() {
		traceStop(op, offset, st)
	}
	return st == statusEnd
}

// IsDigits reports whether s consists of decimal digits only, in any script.
// An empty s is all digits.
func IsDigits[T Text](s T) bool {
	return all("IsDigits", s, Digit)
}

// IsIgnorable reports whether s consists of [Ignorable] codepoints only, that
// is whitespace, hyphens and separators. An empty s is ignorable.
func IsIgnorable[T Text](s T) bool {
	return all("IsIgnorable", s, Ignorable)
}
