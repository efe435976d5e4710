/*
Package runescan implements UTF-8 aware scanning over byte slices and strings:
codepoint decoding in both directions, codepoint classification, and the
boundary scans built on them (next whitespace, next hyphen, leading and
trailing whitespace, trimming).

All results are byte offsets or byte counts, ready to be used for slicing the
input. Nothing is allocated and the input is never modified, so every function
is safe for concurrent use.

# Overview

Using this package, you can:
  - Find the next codepoint, whitespace, hyphen or full stop in a buffer
  - Count the whitespace bytes at either edge of a buffer
  - Trim whitespace without copying
  - Check whether a buffer is all digits or essentially empty
  - Split a buffer into whitespace-delimited fields

Every function accepts a []byte or a string (see [Text]); the result type
follows the input.

# Getting Started

For searching:
  - [IndexRune], [IndexSet], [IndexWhitespace], [IndexHyphen], [IndexPeriod]
  - [ContainsRune], [ContainsHyphen], [ContainsPeriod]

For edges:
  - [LeadingWhitespace] / [TrailingWhitespace]
  - [LeadingHyphen] / [TrailingHyphen]
  - [Trim]

For whole-buffer checks:
  - [All], [IsDigits], [IsIgnorable]

For iteration:
  - [FirstField] - Whitespace tokenization
  - [DecodeRune] - Single codepoint, [Forward] or [Backward]

# Classification

[Classify] assigns each codepoint one [Category]:
  - [Digit]: decimal digits (Nd), such as "7" or "٣"
  - [Whitespace]: the Unicode White_Space property, such as " ", "\t", U+3000
  - [Hyphen]: dash punctuation (Pd) plus U+00AD SOFT HYPHEN and U+2212 MINUS SIGN
  - [Separator]: separators (Z) plus zero width spaces and joiners
  - [Other]: everything else

Categories combine with "|" and implement [golang.org/x/text/runes.Set], so
IndexSet(b, Hyphen|Whitespace) finds the next hyphen or whitespace.
[Ignorable] is the named union of whitespace, hyphens and separators.

# Malformed Input

Scans treat an invalid or truncated UTF-8 sequence as the end of the input:
a search returns -1, an edge count stops growing, and [All] reports false.
No error is returned. [DecodeRune] is the only function that reports the
failure, as [ErrInvalid] or [ErrIncomplete]. Bytes outside the input are
never read.

Use [SetLogger] to receive a debug entry whenever a scan stops early.

ASCII-only helpers that work on bytes rather than codepoints live in the
ascii subpackage.
*/
package runescan
