package secret

import (
	"github.com/pkg/errors"
	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"

	"github.com/GoRandomString/GoRandomString/internal/generator"
)

// DefaultTOTPSecretLength is the number of random characters used as raw TOTP secret.
const DefaultTOTPSecretLength = generator.UUIDLen

// TOTPOptions configures NewTOTPKey.
type TOTPOptions struct {
	Issuer       string
	AccountName  string
	SecretLength int // defaults to DefaultTOTPSecretLength
}

// NewTOTPKey returns a TOTP enrollment key whose raw secret is a random
// alphanumeric string.
func NewTOTPKey(opts TOTPOptions) (*otp.Key, error) {
	if opts.SecretLength == 0 {
		opts.SecretLength = DefaultTOTPSecretLength
	}

	raw, err := generator.NewLen(opts.SecretLength)
	if err != nil {
		return nil, err
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      opts.Issuer,
		AccountName: opts.AccountName,
		Secret:      []byte(raw),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate totp key")
	}

	return key, nil
}
