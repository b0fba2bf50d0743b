// Package generator generates cryptographically secure random strings from a
// caller-supplied character set.
//
// A request is validated in a fixed order: length first, then the presence of
// the character set, then its size after optional deduplication. Characters are
// handled as runes. Sampling is unbiased: random values that would skew the
// modulo reduction are rejected and drawn again.
//
// Example usage:
//
//	s, err := generator.GenerateRandomString("abc", 5, true)
//	// s is e.g. "bacab"
package generator
