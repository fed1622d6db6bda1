package service

import (
	"context"
	"encoding/base64"
	"fmt"

	"gocloud.dev/secrets"

	cryptoDomain "github.com/memoriz2/greensupia-sub000/internal/crypto/domain"

	// Register all KMS provider drivers
	_ "gocloud.dev/secrets/awskms"
	_ "gocloud.dev/secrets/azurekeyvault"
	_ "gocloud.dev/secrets/gcpkms"
	_ "gocloud.dev/secrets/hashivault"
	_ "gocloud.dev/secrets/localsecrets"
)

// kmsService implements KMSService using gocloud.dev/secrets.
type kmsService struct{}

// NewKMSService creates a new KMS service instance.
func NewKMSService() KMSService {
	return &kmsService{}
}

// OpenKeeper opens a secrets.Keeper for the configured KMS provider using the keyURI.
// Supports: gcpkms://, awskms://, azurekeyvault://, hashivault://, base64key://
// Returns a KMSKeeper which *secrets.Keeper implements.
func (k *kmsService) OpenKeeper(ctx context.Context, keyURI string) (cryptoDomain.KMSKeeper, error) {
	keeper, err := secrets.OpenKeeper(ctx, keyURI)
	if err != nil {
		return nil, fmt.Errorf("failed to open KMS keeper: %w", err)
	}
	return keeper, nil
}

// Seal encrypts plaintext with the keeper at keyURI and returns standard base64.
func (k *kmsService) Seal(ctx context.Context, keyURI, plaintext string) (string, error) {
	keeper, err := k.OpenKeeper(ctx, keyURI)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = keeper.Close()
	}()

	ciphertext, err := keeper.Encrypt(ctx, []byte(plaintext))
	if err != nil {
		return "", fmt.Errorf("failed to seal secret: %w", err)
	}
	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

// Unseal decodes base64 sealed and decrypts it with the keeper at keyURI.
func (k *kmsService) Unseal(ctx context.Context, keyURI, sealed string) (string, error) {
	ciphertext, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return "", fmt.Errorf("failed to decode sealed secret: %w", err)
	}

	keeper, err := k.OpenKeeper(ctx, keyURI)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = keeper.Close()
	}()

	plaintext, err := keeper.Decrypt(ctx, ciphertext)
	if err != nil {
		return "", fmt.Errorf("failed to unseal secret: %w", err)
	}
	defer cryptoDomain.Zero(plaintext)

	return string(plaintext), nil
}
