package app

import (
	"context"
	"fmt"
	"sync"

	cryptoDomain "github.com/memoriz2/greensupia-sub000/internal/crypto/domain"
	cryptoHTTP "github.com/memoriz2/greensupia-sub000/internal/crypto/http"
	cryptoService "github.com/memoriz2/greensupia-sub000/internal/crypto/service"
	cryptoUseCase "github.com/memoriz2/greensupia-sub000/internal/crypto/usecase"
)

// cryptoComponents groups the lazily built crypto dependencies.
type cryptoComponents struct {
	encryptionService cryptoService.EncryptionService
	passwordHasher    cryptoService.PasswordHasher
	kmsService        cryptoService.KMSService
	passphrase        string
	cryptoUseCase     cryptoUseCase.CryptoUseCase

	encryptionServiceInit sync.Once
	passwordHasherInit    sync.Once
	kmsServiceInit        sync.Once
	passphraseInit        sync.Once
	cryptoUseCaseInit     sync.Once
}

// EncryptionService returns the AES-256-GCM/PBKDF2 encryption service.
func (c *Container) EncryptionService() cryptoService.EncryptionService {
	c.encryptionServiceInit.Do(func() {
		c.encryptionService = cryptoService.NewEncryptionService()
	})
	return c.encryptionService
}

// KMSService returns the KMS service used to seal and unseal the application passphrase.
func (c *Container) KMSService() cryptoService.KMSService {
	c.kmsServiceInit.Do(func() {
		c.kmsService = cryptoService.NewKMSService()
	})
	return c.kmsService
}

// PasswordHasher returns the admin credential hasher for PASSWORD_HASH_ALGORITHM.
func (c *Container) PasswordHasher() (cryptoService.PasswordHasher, error) {
	c.passwordHasherInit.Do(func() {
		algorithm, err := cryptoDomain.ParseHashAlgorithm(c.config.PasswordHashAlgorithm)
		if err != nil {
			c.setResult("passwordHasher", fmt.Errorf("invalid password hash algorithm: %w", err))
			return
		}
		hasher, err := cryptoService.NewPasswordHasher(algorithm, c.EncryptionService())
		if err != nil {
			c.setResult("passwordHasher", fmt.Errorf("failed to create password hasher: %w", err))
			return
		}
		c.passwordHasher = hasher
	})
	if err := c.initError("passwordHasher"); err != nil {
		return nil, err
	}
	return c.passwordHasher, nil
}

// Passphrase returns the application passphrase used for inquiry secrets.
// A sealed passphrase takes precedence and is unsealed through KMS_KEY_URI.
// An empty result is not an error: the inquiry endpoints then answer 503.
func (c *Container) Passphrase() (string, error) {
	c.passphraseInit.Do(func() {
		passphrase, err := c.initPassphrase(c.runCtx)
		c.setResult("passphrase", err)
		c.passphrase = passphrase
	})
	if err := c.initError("passphrase"); err != nil {
		return "", err
	}
	return c.passphrase, nil
}

// CryptoUseCase returns the bounded crypto use case, wrapped with metrics when enabled.
func (c *Container) CryptoUseCase() (cryptoUseCase.CryptoUseCase, error) {
	c.cryptoUseCaseInit.Do(func() {
		useCase, err := c.initCryptoUseCase()
		c.setResult("cryptoUseCase", err)
		c.cryptoUseCase = useCase
	})
	if err := c.initError("cryptoUseCase"); err != nil {
		return nil, err
	}
	return c.cryptoUseCase, nil
}

// CryptoHandler creates the HTTP handler for the /v1/crypto routes.
func (c *Container) CryptoHandler(useCase cryptoUseCase.CryptoUseCase) *cryptoHTTP.CryptoHandler {
	return cryptoHTTP.NewCryptoHandler(useCase, c.Logger())
}

// InquiryHandler creates the HTTP handler for the /v1/inquiries routes.
func (c *Container) InquiryHandler(useCase cryptoUseCase.CryptoUseCase) *cryptoHTTP.InquiryHandler {
	return cryptoHTTP.NewInquiryHandler(useCase, c.Logger())
}

func (c *Container) initPassphrase(ctx context.Context) (string, error) {
	if c.config.AppSecretPassphraseSealed == "" {
		if c.config.AppSecretPassphrase == "" {
			c.Logger().Warn("application passphrase is not configured, inquiry endpoints are disabled")
		}
		return c.config.AppSecretPassphrase, nil
	}

	if c.config.KMSKeyURI == "" {
		return "", fmt.Errorf("KMS_KEY_URI is required to unseal APP_SECRET_PASSPHRASE_SEALED")
	}

	passphrase, err := c.KMSService().Unseal(ctx, c.config.KMSKeyURI, c.config.AppSecretPassphraseSealed)
	if err != nil {
		return "", fmt.Errorf("failed to unseal application passphrase: %w", err)
	}
	return passphrase, nil
}

func (c *Container) initCryptoUseCase() (cryptoUseCase.CryptoUseCase, error) {
	passphrase, err := c.Passphrase()
	if err != nil {
		return nil, err
	}

	baseUseCase := cryptoUseCase.NewCryptoUseCase(
		c.EncryptionService(),
		c.config.CryptoMaxConcurrentKDF,
		passphrase,
		c.Logger(),
	)

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for crypto use case: %w", err)
		}
		return cryptoUseCase.NewCryptoUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}
