package runescan

import (
	"errors"
	"strconv"
	"unicode/utf8"
)

// Text is the set of inputs accepted by the decoder and the scanners. Both
// forms are only indexed and sliced, never converted, so a scan over a string
// does not copy it.
type Text interface {
	~[]byte | ~string
}

// Direction selects which side of an offset [DecodeRune] decodes.
type Direction int

const (
	Forward  Direction = iota // The codepoint starting at the offset.
	Backward                  // The codepoint ending at the offset.
)

// String returns "forward" or "backward".
func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// Decode failures. They are always wrapped in a [*DecodeError] and can be
// matched with [errors.Is].
var (
	// ErrInvalid reports bytes that do not form a legal UTF-8 sequence:
	// stray continuation bytes, overlong encodings, surrogates, or values
	// above U+10FFFF.
	ErrInvalid = errors.New("runescan: invalid UTF-8 sequence")

	// ErrIncomplete reports a sequence cut short by the edge of the input.
	ErrIncomplete = errors.New("runescan: incomplete UTF-8 sequence")

	// ErrRange reports an offset outside [0, len(s)].
	ErrRange = errors.New("runescan: offset out of range")
)

// DecodeError describes a failed [DecodeRune] call.
type DecodeError struct {
	Offset    int       // The offset passed to DecodeRune.
	Direction Direction // The direction of the decode.
	Err       error     // One of ErrInvalid, ErrIncomplete, ErrRange.
}

func (e *DecodeError) Error() string {
	return e.Err.Error() + " at offset " + strconv.Itoa(e.Offset) + " (" + e.Direction.String() + ")"
}

func (e *DecodeError) Unwrap() error { return e.Err }

// status is the outcome of a single decode step. Scanners work with it
// directly so that a failed step costs no allocation.
type status uint8

const (
	statusOK         status = iota
	statusEnd               // Nothing left to decode in this direction.
	statusInvalid           // Malformed sequence.
	statusIncomplete        // Truncated sequence.
)

func (s status) String() string {
	switch s {
	case statusOK:
		return "ok"
	case statusEnd:
		return "end"
	case statusInvalid:
		return "invalid"
	default:
		return "incomplete"
	}
}

// failed reports whether the status ends a scan because of malformed input,
// as opposed to reaching the edge of the input.
func (s status) failed() bool {
	return s == statusInvalid || s == statusIncomplete
}

// DecodeRune decodes the codepoint on the given side of offset in s. With
// [Forward] it decodes the codepoint whose first byte is at offset; with
// [Backward] the codepoint whose last byte is at offset-1. It returns the
// codepoint and its width in bytes.
//
// On failure it returns [utf8.RuneError], a width of 0, and a [*DecodeError]
// wrapping [ErrInvalid], [ErrIncomplete] or [ErrRange]. Decoding forward at
// offset len(s), or backward at offset 0, reports [ErrIncomplete] since none
// of the needed bytes remain. Bytes outside s are never read.
func DecodeRune[T Text](s T, offset int, dir Direction) (r rune, width int, err error) {
	if offset < 0 || offset > len(s) {
		return utf8.RuneError, 0, &DecodeError{Offset: offset, Direction: dir, Err: ErrRange}
	}
	r, width, st := decode(s, offset, dir)
	switch st {
	case statusOK:
		return r, width, nil
	case statusInvalid:
		err = ErrInvalid
	default:
		err = ErrIncomplete
	}
	return utf8.RuneError, 0, &DecodeError{Offset: offset, Direction: dir, Err: err}
}

// decode locates the bytes of the codepoint on the dir side of offset and
// hands them to decodeWindow. The caller guarantees 0 <= offset <= len(s).
func decode[T Text](s T, offset int, dir Direction) (rune, int, status) {
	if dir == Forward {
		return decodeWindow(s, offset, len(s))
	}

	if offset == 0 {
		return utf8.RuneError, 0, statusEnd
	}
	if c := s[offset-1]; c < utf8.RuneSelf {
		return rune(c), 1, statusOK
	}

	// Walk back over at most three continuation bytes to the lead byte.
	start := offset - 1
	for start > 0 && offset-start < utf8.UTFMax && !utf8.RuneStart(s[start]) {
		start--
	}
	if !utf8.RuneStart(s[start]) {
		if start == 0 && offset < utf8.UTFMax {
			// The input begins in the middle of a sequence.
			return utf8.RuneError, 0, statusIncomplete
		}
		return utf8.RuneError, 0, statusInvalid
	}

	r, width, st := decodeWindow(s, start, offset)
	if st == statusOK && width != offset-start {
		// A complete codepoint followed by stray continuation bytes.
		return utf8.RuneError, 0, statusInvalid
	}
	return r, width, st
}

// leadMask keeps the payload bits of a lead byte, indexed by sequence width.
var leadMask = [utf8.UTFMax + 1]rune{0, 0x7f, 0x1f, 0x0f, 0x07}

// decodeWindow decodes the codepoint starting at s[start], reading no byte at
// or beyond end.
func decodeWindow[T Text](s T, start, end int) (rune, int, status) {
	if start >= end {
		return utf8.RuneError, 0, statusEnd
	}
	c := s[start]
	if c < utf8.RuneSelf {
		return rune(c), 1, statusOK
	}

	width, lo, hi := sequence(c)
	if width == 0 {
		return utf8.RuneError, 0, statusInvalid
	}
	r := rune(c) & leadMask[width]
	for i := 1; i < width; i++ {
		if start+i >= end {
			return utf8.RuneError, 0, statusIncomplete
		}
		c = s[start+i]
		if c < lo || c > hi {
			return utf8.RuneError, 0, statusInvalid
		}
		lo, hi = 0x80, 0xbf
		r = r<<6 | rune(c&0x3f)
	}
	return r, width, statusOK
}

// sequence returns the width of the sequence introduced by the non-ASCII lead
// byte c and the accepted range of the first continuation byte. The narrowed
// ranges exclude overlong forms (E0, F0), surrogates (ED) and values beyond
// U+10FFFF (F4). A width of 0 means c cannot start a sequence.
func sequence(c byte) (width int, lo, hi byte) {
	switch {
	case c < 0xc2:
		return 0, 0, 0
	case c < 0xe0:
		return 2, 0x80, 0xbf
	case c == 0xe0:
		return 3, 0xa0, 0xbf
	case c == 0xed:
		return 3, 0x80, 0x9f
	case c < 0xf0:
		return 3, 0x80, 0xbf
	case c == 0xf0:
		return 4, 0x90, 0xbf
	case c < 0xf4:
		return 4, 0x80, 0xbf
	case c == 0xf4:
		return 4, 0x80, 0x8f
	default:
		return 0, 0, 0
	}
}
