package domain

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// EncryptedPayload is the stored form of an encrypted value.
//
// It serializes to "salt:iv:tag:ciphertext" with every field hex-encoded. The string is
// persisted verbatim and must be decrypted with the same AssociatedData it was sealed with.
type EncryptedPayload struct {
	Salt       []byte
	IV         []byte
	Tag        []byte
	Ciphertext []byte
}

// ParseEncryptedPayload decodes the four-field payload format.
//
// Returns ErrInvalidPayloadFormat when the segment count is not exactly four, when a
// field is not valid hex, or when salt, IV or tag have the wrong length. The ciphertext
// may be empty (an encrypted empty string).
func ParseEncryptedPayload(content string) (EncryptedPayload, error) {
	parts := strings.Split(content, fieldSeparator)
	if len(parts) != 4 {
		return EncryptedPayload{}, fmt.Errorf(
			"%w: expected 4 segments, got %d",
			ErrInvalidPayloadFormat,
			len(parts),
		)
	}

	fields := make([][]byte, len(parts))
	for i, part := range parts {
		decoded, err := hex.DecodeString(part)
		if err != nil {
			return EncryptedPayload{}, fmt.Errorf("%w: segment %d is not hex", ErrInvalidPayloadFormat, i)
		}
		fields[i] = decoded
	}

	payload := EncryptedPayload{
		Salt:       fields[0],
		IV:         fields[1],
		Tag:        fields[2],
		Ciphertext: fields[3],
	}

	switch {
	case len(payload.Salt) != SaltSize:
		return EncryptedPayload{}, fmt.Errorf("%w: salt must be %d bytes", ErrInvalidPayloadFormat, SaltSize)
	case len(payload.IV) != IVSize:
		return EncryptedPayload{}, fmt.Errorf("%w: iv must be %d bytes", ErrInvalidPayloadFormat, IVSize)
	case len(payload.Tag) != TagSize:
		return EncryptedPayload{}, fmt.Errorf("%w: tag must be %d bytes", ErrInvalidPayloadFormat, TagSize)
	}

	return payload, nil
}

// String serializes the payload as "salt:iv:tag:ciphertext" hex.
func (p EncryptedPayload) String() string {
	return strings.Join([]string{
		hex.EncodeToString(p.Salt),
		hex.EncodeToString(p.IV),
		hex.EncodeToString(p.Tag),
		hex.EncodeToString(p.Ciphertext),
	}, fieldSeparator)
}
