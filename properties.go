package runescan

import (
	"slices"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/unicode/rangetable"
)

// Category is a set of codepoint classes. [Classify] assigns every codepoint
// exactly one class (or none, [Other]); unions of classes such as [Ignorable]
// serve as predicates through [Category.Contains].
//
// Category implements [runes.Set], so it can be passed anywhere a set is
// expected, including [IndexSet] and [All].
type Category uint8

// Codepoint classes, listed in order of precedence. A codepoint that would
// fall into more than one table is assigned the first.
const (
	Digit      Category = 1 << iota // Decimal digit (general category Nd).
	Whitespace                      // Unicode White_Space property.
	Hyphen                          // Dash punctuation, soft hyphen, minus sign.
	Separator                       // Separators (Z*) and zero-width joiners/spaces.
)

const (
	// Other is the class of codepoints in none of the tables.
	Other Category = 0

	// Ignorable covers text that is essentially empty for matching purposes.
	Ignorable = Whitespace | Hyphen | Separator
)

var _ runes.Set = Category(0)

// Contains reports whether the class of r is in c.
func (c Category) Contains(r rune) bool {
	return c&Classify(r) != 0
}

var categoryNames = []struct {
	category Category
	name     string
}{
	{Digit, "digit"},
	{Whitespace, "whitespace"},
	{Hyphen, "hyphen"},
	{Separator, "separator"},
}

// String returns the class names in c joined by "|", or "other".
func (c Category) String() string {
	if c == Other {
		return "other"
	}
	var b strings.Builder
	for _, n := range categoryNames {
		if c&n.category == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('|')
		}
		b.WriteString(n.name)
	}
	return b.String()
}

// Classify returns the class of r. Values that are not valid Unicode scalar
// values (surrogates, negative values, values above U+10FFFF) are [Other].
func Classify(r rune) Category {
	if r >= 0 && r < utf8.RuneSelf {
		return asciiCategories[r]
	}
	if !utf8.ValidRune(r) {
		return Other
	}
	return Category(propertySearch(categoryCodePoints, r)[2])
}

// categoryCodePoints maps codepoint ranges to their class. Each entry is
// [startCodePoint, endCodePoint, category], sorted by start.
var categoryCodePoints = buildCategoryTable()

// asciiCategories fast tracks the first 128 codepoints.
var asciiCategories [utf8.RuneSelf]Category

func init() {
	for r := range asciiCategories {
		asciiCategories[r] = Category(propertySearch(categoryCodePoints, rune(r))[2])
	}
}

// buildCategoryTable flattens the class tables into one sorted range table,
// resolving overlaps by precedence and merging adjacent codepoints of the
// same class.
func buildCategoryTable() [][3]int {
	assigned := make(map[rune]Category)
	for _, src := range categoryTables {
		rangetable.Visit(src.table, func(r rune) {
			if _, ok := assigned[r]; !ok {
				assigned[r] = src.category
			}
		})
	}

	points := make([]rune, 0, len(assigned))
	for r := range assigned {
		points = append(points, r)
	}
	slices.Sort(points)

	var table [][3]int
	for _, r := range points {
		c := int(assigned[r])
		if n := len(table); n > 0 && table[n-1][1] == int(r)-1 && table[n-1][2] == c {
			table[n-1][1] = int(r)
			continue
		}
		table = append(table, [3]int{int(r), int(r), c})
	}
	return table
}

// propertySearch performs a binary search on a sorted property table.
// Each entry is [startCodePoint, endCodePoint, property].
// Returns the matching entry, or zero-initialized entry if not found.
func propertySearch(dictionary [][3]int, r rune) (result [3]int) {
	from := 0
	to := len(dictionary)
	for to > from {
		middle := (from + to) / 2
		cpRange := dictionary[middle]
		if int(r) < cpRange[0] {
			to = middle
			continue
		}
		if int(r) > cpRange[1] {
			from = middle + 1
			continue
		}
		return cpRange
	}
	return
}
