package generator

import (
	"unicode"
	"unicode/utf8"
)

// minCharsetSize is the smallest character set that can produce a random string.
const minCharsetSize = 2

// Charset is an ordered sequence of characters eligible for sampling.
type Charset []rune

// MaxBytes returns the UTF-8 size of the longest string of length characters
// that can be drawn from cs.
func (cs Charset) MaxBytes(length int) int {
	widest := 0
	for _, r := range cs {
		widest = max(widest, utf8.RuneLen(r))
	}

	return widest * length
}

// Normalize validates characters and, if deduplicate is set, collapses duplicates
// to their first occurrence.
func Normalize(characters string, deduplicate bool) (Charset, error) {
	if isBlank(characters) || !utf8.ValidString(characters) {
		return nil, ErrInvalidCharset
	}

	cs := Charset(characters)
	if deduplicate {
		cs = dedupe(cs)
	}

	if len(cs) < minCharsetSize {
		return nil, ErrInsufficientCharsetSize
	}

	return cs, nil
}

// isBlank reports whether s is empty or consists only of whitespace.
func isBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}

	return true
}

// dedupe keeps the first occurrence of every rune, in order.
func dedupe(cs Charset) Charset {
	seen := make(map[rune]struct{}, len(cs))
	out := make(Charset, 0, len(cs))

	for _, r := range cs {
		if _, ok := seen[r]; ok {
			continue
		}

		seen[r] = struct{}{}
		out = append(out, r)
	}

	return out
}
