package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/scalecode-solutions/runescan"
	"github.com/scalecode-solutions/runescan/ascii"
)

// operation turns one input line into one output line.
type operation struct {
	name  string
	apply func(line []byte, quote bool) string
}

var operations = []operation{
	{"trim", func(line []byte, quote bool) string {
		return text(runescan.Trim(line), quote)
	}},
	{"fields", splitFields},
	{"digits", func(line []byte, _ bool) string {
		return strconv.FormatBool(runescan.IsDigits(line))
	}},
	{"ignorable", func(line []byte, _ bool) string {
		return strconv.FormatBool(runescan.IsIgnorable(line))
	}},
	{"space", func(line []byte, _ bool) string {
		return strconv.Itoa(runescan.IndexWhitespace(line))
	}},
	{"hyphen", func(line []byte, _ bool) string {
		return strconv.Itoa(runescan.IndexHyphen(line))
	}},
	{"period", func(line []byte, _ bool) string {
		return strconv.Itoa(runescan.IndexPeriod(line))
	}},
	{"edges", func(line []byte, _ bool) string {
		return fmt.Sprintf("space=%d,%d hyphen=%d,%d",
			runescan.LeadingWhitespace(line), runescan.TrailingWhitespace(line),
			runescan.LeadingHyphen(line), runescan.TrailingHyphen(line))
	}},
	{"runes", describeRunes},
}

// lookupOperation finds an operation by name, ignoring ASCII case.
func lookupOperation(name string) (operation, bool) {
	for _, op := range operations {
		if ascii.CompareFold(name, op.name) == 0 {
			return op, true
		}
	}
	return operation{}, false
}

func operationNames() string {
	names := make([]string, len(operations))
	for i, op := range operations {
		names[i] = op.name
	}
	return strings.Join(names, ", ")
}

func text(b []byte, quote bool) string {
	if quote {
		return strconv.Quote(string(b))
	}
	return string(b)
}

func splitFields(line []byte, quote bool) string {
	var fields []string
	for len(line) > 0 {
		var field []byte
		field, line = runescan.FirstField(line)
		if len(field) > 0 {
			fields = append(fields, text(field, quote))
		}
	}
	return strings.Join(fields, " ")
}

// describeRunes lists "offset:codepoint:category" for each codepoint and ends
// with "offset:invalid" or "offset:incomplete" at the first malformed sequence.
func describeRunes(line []byte, _ bool) string {
	var parts []string
	for i := 0; i < len(line); {
		r, width, err := runescan.DecodeRune(line, i, runescan.Forward)
		if err != nil {
			reason := "incomplete"
			if errors.Is(err, runescan.ErrInvalid) {
				reason = "invalid"
			}
			parts = append(parts, fmt.Sprintf("%d:%s", i, reason))
			break
		}
		parts = append(parts, fmt.Sprintf("%d:%U:%s", i, r, runescan.Classify(r)))
		i += width
	}
	return strings.Join(parts, " ")
}
