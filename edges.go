package runescan

// LeadingWhitespace returns the number of bytes taken by the whitespace
// codepoints at the start of s. The walk stops at the first codepoint that is
// not whitespace, at a malformed sequence, or at the end of s.
func LeadingWhitespace[T Text](s T) int {
	offset, st := scanForward(s, Whitespace, false)
	if st.failed() {
		traceStop("LeadingWhitespace", offset, st)
	}
	return offset
}

// TrailingWhitespace returns the number of bytes taken by the whitespace
// codepoints at the end of s, walking backward under the same rules as
// [LeadingWhitespace].
func TrailingWhitespace[T Text](s T) int {
	offset, st := scanBackward(s, Whitespace, false)
	if st.failed() {
		traceStop("TrailingWhitespace", offset, st)
	}
	return len(s) - offset
}

// LeadingHyphen returns the width in bytes of the first codepoint of s if it
// is hyphen-like, and 0 otherwise. Only one codepoint is inspected: for "--x"
// the result is 1.
func LeadingHyphen[T Text](s T) int {
	return edgeWidth("LeadingHyphen", s, 0, Forward, Hyphen)
}

// TrailingHyphen returns the width in bytes of the last codepoint of s if it
// is hyphen-like, and 0 otherwise.
func TrailingHyphen[T Text](s T) int {
	return edgeWidth("TrailingHyphen", s, len(s), Backward, Hyphen)
}

func edgeWidth[T Text](op string, s T, offset int, dir Direction, c Category) int {
	r, width, st := decode(s, offset, dir)
	if st != statusOK {
		traceStop(op, offset, st)
		return 0
	}
	if !c.Contains(r) {
		return 0
	}
	return width
}

// Trim returns the sub-slice of s without its leading and trailing whitespace.
// The result shares memory with s. If s is all whitespace the result is empty.
//
// Malformed bytes are never trimmed, they end the walk on either side:
//
//	Trim(" café ")   // "café"
//	Trim(" \xff ")   // "\xff"
func Trim[T Text](s T) T {
	start := LeadingWhitespace(s)
	if start == len(s) {
		return s[start:]
	}
	stop := len(s) - TrailingWhitespace(s)
	if stop < start {
		stop = start
	}
	return s[start:stop]
}
