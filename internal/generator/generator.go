package generator

import (
	"crypto/rand"
	"io"
)

// Request holds the parameters of a single generation.
type Request struct {
	Characters       string
	Length           int
	IgnoreDuplicates bool
}

// Validate checks the request and returns the normalized character set.
// Checks run in a fixed order: length, charset presence, charset size.
func (r Request) Validate() (Charset, error) {
	if r.Length < 1 {
		return nil, ErrInvalidLength
	}

	return Normalize(r.Characters, r.IgnoreDuplicates)
}

// Generate validates the request and returns a random string of r.Length characters.
func (r Request) Generate() (string, error) {
	return r.generate(rand.Reader)
}

func (r Request) generate(reader io.Reader) (string, error) {
	cs, err := r.Validate()
	if err != nil {
		return "", err
	}

	return sample(reader, cs, r.Length)
}

// FromCharset returns a random string of length characters drawn from cs, which
// must come from Normalize or Request.Validate.
func FromCharset(cs Charset, length int) (string, error) {
	return sample(rand.Reader, cs, length)
}

func sample(reader io.Reader, cs Charset, length int) (string, error) {
	return withSource(reader, func(src *Source) (string, error) {
		return src.Sample(cs, length)
	})
}

// GenerateRandomString returns a random string of length characters drawn from characters
// using crypto/rand. With ignoreDuplicates set, repeated characters are collapsed to their
// first occurrence before sampling; otherwise every occurrence adds weight to its character.
func GenerateRandomString(characters string, length int, ignoreDuplicates bool) (string, error) {
	return Request{
		Characters:       characters,
		Length:           length,
		IgnoreDuplicates: ignoreDuplicates,
	}.Generate()
}

// Generate is GenerateRandomString with duplicates ignored.
func Generate(characters string, length int) (string, error) {
	return GenerateRandomString(characters, length, true)
}
