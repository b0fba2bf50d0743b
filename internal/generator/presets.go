package generator

import (
	"maps"
	"slices"
	"strings"
)

const (
	// StdLen is a standard length of a random string to achieve ~95 bits of entropy
	// with StdChars.
	StdLen = 16
	// UUIDLen is a length to achieve ~119 bits of entropy with StdChars, closest
	// to what can be losslessly converted to UUIDv4 (122 bits).
	UUIDLen = 20

	// StdChars is the standard alphanumeric character set.
	StdChars = upperChars + lowerChars + digitChars
)

const (
	upperChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowerChars  = "abcdefghijklmnopqrstuvwxyz"
	digitChars  = "0123456789"
	symbolChars = "!#$%&()*+,-./:;<=>?@[]^_{|}~"
)

// Preset names.
const (
	PresetAlphanumeric = "alphanumeric"
	PresetAlpha        = "alpha"
	PresetLower        = "lower"
	PresetUpper        = "upper"
	PresetNumeric      = "numeric"
	PresetHex          = "hex"
	PresetBase32       = "base32"
	PresetURLSafe      = "urlsafe"
	PresetSymbols      = "symbols"
)

var presets = map[string]string{ //nolint:gochecknoglobals
	PresetAlphanumeric: StdChars,
	PresetAlpha:        upperChars + lowerChars,
	PresetLower:        lowerChars,
	PresetUpper:        upperChars,
	PresetNumeric:      digitChars,
	PresetHex:          digitChars + "abcdef",
	PresetBase32:       upperChars + "234567", // RFC 4648
	PresetURLSafe:      StdChars + "-_",
	PresetSymbols:      StdChars + symbolChars,
}

// PresetChars returns the characters of the named preset. Names are case-insensitive.
func PresetChars(name string) (string, error) {
	chars, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", ErrUnknownPreset
	}

	return chars, nil
}

// PresetNames returns the sorted preset names.
func PresetNames() []string {
	return slices.Sorted(maps.Keys(presets))
}

// Presets returns a copy of all presets keyed by name.
func Presets() map[string]string {
	return maps.Clone(presets)
}

// NewLen returns a new random string of the provided length, consisting of
// standard characters.
func NewLen(length int) (string, error) {
	return Generate(StdChars, length)
}
