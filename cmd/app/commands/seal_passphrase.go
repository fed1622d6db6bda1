package commands

import (
	"context"
	"fmt"

	cryptoService "github.com/memoriz2/greensupia-sub000/internal/crypto/service"
)

// RunSealPassphrase seals the application passphrase with the keeper at keyURI and
// prints the environment variables that make the server unseal it at startup.
//
// Never use a base64key:// keeper in production.
func RunSealPassphrase(
	ctx context.Context,
	kmsService cryptoService.KMSService,
	io IOTuple,
	keyURI string,
	passphrase string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}
	if keyURI == "" {
		return fmt.Errorf("--kms-key-uri is required (e.g. hashivault://mykey or base64key://<32-byte-base64-key>)")
	}

	passphrase, err := readValue(io, passphrase, "Passphrase")
	if err != nil {
		return err
	}

	sealed, err := kmsService.Seal(ctx, keyURI, passphrase)
	if err != nil {
		return fmt.Errorf("failed to seal passphrase: %w", err)
	}

	if format == "json" {
		return writeResult(io.Writer, format, nil, map[string]any{
			"kms_key_uri":                  keyURI,
			"app_secret_passphrase_sealed": sealed,
		})
	}

	_, _ = fmt.Fprintln(io.Writer, "# Copy these environment variables to your .env file or secrets manager")
	_, _ = fmt.Fprintf(io.Writer, "KMS_KEY_URI=%q\n", keyURI)
	_, _ = fmt.Fprintf(io.Writer, "APP_SECRET_PASSPHRASE_SEALED=%q\n", sealed)
	return nil
}
