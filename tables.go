package runescan

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Codepoints added to the Unicode general categories below.
const (
	softHyphen     = 0x00ad // Format character marking a hyphenation point.
	minusSign      = 0x2212 // Math symbol, but written in place of a hyphen.
	zeroWidthSpace = 0x200b
	zeroWidthNJ    = 0x200c // Zero width non-joiner.
	zeroWidthJ     = 0x200d // Zero width joiner.
	wordJoiner     = 0x2060
	byteOrderMark  = 0xfeff // Zero width no-break space.
)

var (
	hyphenTable = rangetable.Merge(
		unicode.Pd,
		rangetable.New(softHyphen, minusSign),
	)

	separatorTable = rangetable.Merge(
		unicode.Z,
		rangetable.New(zeroWidthSpace, zeroWidthNJ, zeroWidthJ, wordJoiner, byteOrderMark),
	)
)

// categoryTables lists the source table of each class in order of precedence.
var categoryTables = []struct {
	category Category
	table    *unicode.RangeTable
}{
	{Digit, unicode.Nd},
	{Whitespace, unicode.White_Space},
	{Hyphen, hyphenTable},
	{Separator, separatorTable},
}
