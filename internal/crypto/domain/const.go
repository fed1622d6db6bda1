// Package domain defines the value formats and parameters of the encryption service.
package domain

// Key derivation and cipher parameters.
//
// Changing any of these values, AssociatedData in particular, makes every previously
// stored payload or password hash unreadable.
const (
	// KDFIterations is the PBKDF2-HMAC-SHA512 iteration count for keys and password hashes.
	KDFIterations = 100_000

	// KeySize is the AES-256 key length derived from a password.
	KeySize = 32

	// SaltSize is the random salt length embedded in every encrypted payload.
	SaltSize = 64

	// IVSize is the GCM nonce length embedded in every encrypted payload.
	IVSize = 16

	// TagSize is the GCM authentication tag length.
	TagSize = 16

	// PasswordSaltSize is the random salt length of a hashed password.
	PasswordSaltSize = 16

	// PasswordHashSize is the derived hash length of a hashed password.
	PasswordHashSize = 64

	// DefaultRandomStringLength is the number of random bytes drawn when no length is given.
	DefaultRandomStringLength = 32

	// AssociatedData is bound to every ciphertext so payloads cannot be replayed in another context.
	AssociatedData = "greensupia-secure-data"

	// fieldSeparator joins the hex fields of payloads and hashes.
	fieldSeparator = ":"
)

// HashAlgorithm names the hasher used for admin credentials.
type HashAlgorithm string

const (
	// PBKDF2 produces "salt:hash" hex strings.
	PBKDF2 HashAlgorithm = "pbkdf2"

	// Argon2id produces PHC strings ("$argon2id$...").
	Argon2id HashAlgorithm = "argon2id"
)

// ParseHashAlgorithm converts a configuration value to a HashAlgorithm.
func ParseHashAlgorithm(value string) (HashAlgorithm, error) {
	switch HashAlgorithm(value) {
	case PBKDF2:
		return PBKDF2, nil
	case Argon2id:
		return Argon2id, nil
	default:
		return "", ErrUnsupportedHashAlgorithm
	}
}
