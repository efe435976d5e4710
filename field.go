package runescan

// FirstField returns the first whitespace-delimited field in s and the rest of
// s starting at the field after it. Whitespace before the field and between
// the two fields is skipped. The field is empty only if s is empty or all
// whitespace.
//
// This function can be called continuously to extract all fields:
//
//	for len(b) > 0 {
//		field, b = runescan.FirstField(b)
//		...
//	}
//
// A malformed sequence cannot be told apart from field content, so a field
// holding one extends to the end of s.
func FirstField[T Text](s T) (field, rest T) {
	s = s[LeadingWhitespace(s):]
	end := IndexWhitespace(s)
	if end < 0 {
		return s, s[len(s):]
	}
	rest = s[end:]
	return s[:end], rest[LeadingWhitespace(rest):]
}
