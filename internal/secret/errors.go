package secret

import "errors"

var (
	// ErrUnknownAlgorithm is returned for an unsupported hash algorithm name.
	ErrUnknownAlgorithm = errors.New("unknown hash algorithm")

	// ErrUnknownHashFormat is returned by Verify when the hash format is not recognised.
	ErrUnknownHashFormat = errors.New("unknown hash format")

	// ErrValueTooLong is returned when a value exceeds the input limit of the algorithm.
	ErrValueTooLong = errors.New("value is too long for the hash algorithm")
)
