// Package secret turns generated random strings into credentials: password hashes
// (Argon2id or bcrypt) and TOTP enrollment keys.
package secret
