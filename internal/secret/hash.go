package secret

import (
	"strings"

	"github.com/alexedwards/argon2id"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// Algorithm is a password hashing algorithm.
type Algorithm string

const (
	// Argon2id hashes with argon2id.DefaultParams.
	Argon2id Algorithm = "argon2id"
	// Bcrypt hashes with bcrypt.DefaultCost.
	Bcrypt Algorithm = "bcrypt"
)

const argon2idPrefix = "$argon2id$"

// MaxBcryptBytes is the largest input bcrypt accepts.
const MaxBcryptBytes = 72

var bcryptPrefixes = []string{"$2a$", "$2b$", "$2y$"} //nolint:gochecknoglobals

// ParseAlgorithm returns the Algorithm named s. Names are case-insensitive.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch a := Algorithm(strings.ToLower(strings.TrimSpace(s))); a {
	case Argon2id, Bcrypt:
		return a, nil
	default:
		return "", errors.Wrapf(ErrUnknownAlgorithm, "%q", s)
	}
}

// CheckLength returns ErrValueTooLong if values of up to maxBytes bytes can not be
// hashed with algo.
func CheckLength(algo Algorithm, maxBytes int) error {
	if algo == Bcrypt && maxBytes > MaxBcryptBytes {
		return errors.Wrapf(ErrValueTooLong, "%s accepts at most %d bytes, got up to %d", algo, MaxBcryptBytes, maxBytes)
	}

	return nil
}

// Hash returns the encoded hash of value.
func Hash(value string, algo Algorithm) (string, error) {
	switch algo {
	case Argon2id:
		h, err := argon2id.CreateHash(value, argon2id.DefaultParams)
		if err != nil {
			return "", errors.Wrap(err, "failed to create argon2id hash")
		}

		return h, nil
	case Bcrypt:
		if err := CheckLength(algo, len(value)); err != nil {
			return "", err
		}

		h, err := bcrypt.GenerateFromPassword([]byte(value), bcrypt.DefaultCost)
		if err != nil {
			return "", errors.Wrap(err, "failed to create bcrypt hash")
		}

		return string(h), nil
	default:
		return "", errors.Wrapf(ErrUnknownAlgorithm, "%q", algo)
	}
}

// Verify reports whether value matches hash. The algorithm is taken from the hash prefix.
func Verify(value, hash string) (bool, error) {
	if strings.HasPrefix(hash, argon2idPrefix) {
		match, err := argon2id.ComparePasswordAndHash(value, hash)
		if err != nil {
			return false, errors.Wrap(err, "failed to compare argon2id hash")
		}

		return match, nil
	}

	for _, prefix := range bcryptPrefixes {
		if !strings.HasPrefix(hash, prefix) {
			continue
		}

		err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(value))
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}

		if err != nil {
			return false, errors.Wrap(err, "failed to compare bcrypt hash")
		}

		return true, nil
	}

	return false, ErrUnknownHashFormat
}
