package generator

import "errors"

var (
	// ErrInvalidLength is returned when the requested length is smaller than 1.
	ErrInvalidLength = errors.New("length must be at least 1")

	// ErrInvalidCharset is returned when the character set is empty, consists only of
	// whitespace or is not valid UTF-8.
	ErrInvalidCharset = errors.New("character set must not be empty or whitespace only")

	// ErrInsufficientCharsetSize is returned when fewer than 2 characters remain after
	// optional deduplication.
	ErrInsufficientCharsetSize = errors.New("character set must contain at least 2 characters")

	// ErrResourceDisposed is returned when a Source is used after it was closed.
	ErrResourceDisposed = errors.New("random source has been disposed")

	// ErrUnknownPreset is returned when a preset name is not known.
	ErrUnknownPreset = errors.New("unknown charset preset")
)

// Error kinds reported by Kind.
const (
	KindInvalidLength           = "invalid_length"
	KindInvalidCharset          = "invalid_charset"
	KindInsufficientCharsetSize = "insufficient_charset_size"
	KindResourceDisposed        = "resource_disposed"
	KindUnknownPreset           = "unknown_preset"
	KindInternal                = "internal"
)

// Kind maps err to a stable error kind. It returns an empty string for a nil error
// and KindInternal for errors not produced by validation, like random source failures.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidLength):
		return KindInvalidLength
	case errors.Is(err, ErrInvalidCharset):
		return KindInvalidCharset
	case errors.Is(err, ErrInsufficientCharsetSize):
		return KindInsufficientCharsetSize
	case errors.Is(err, ErrResourceDisposed):
		return KindResourceDisposed
	case errors.Is(err, ErrUnknownPreset):
		return KindUnknownPreset
	default:
		return KindInternal
	}
}

// IsInputError reports whether err was caused by invalid caller input.
func IsInputError(err error) bool {
	switch Kind(err) {
	case KindInvalidLength, KindInvalidCharset, KindInsufficientCharsetSize, KindUnknownPreset:
		return true
	default:
		return false
	}
}
