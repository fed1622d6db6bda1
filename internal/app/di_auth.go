package app

import (
	"fmt"
	"sync"

	authHTTP "github.com/memoriz2/greensupia-sub000/internal/auth/http"
	authRepository "github.com/memoriz2/greensupia-sub000/internal/auth/repository"
	authService "github.com/memoriz2/greensupia-sub000/internal/auth/service"
	authUseCase "github.com/memoriz2/greensupia-sub000/internal/auth/usecase"
	"github.com/memoriz2/greensupia-sub000/internal/database"
)

// sessionSecretLength is the byte length of the per-process session key generated
// when AUTH_SESSION_SECRET is empty.
const sessionSecretLength = 32

// authComponents groups the lazily built admin authentication dependencies.
type authComponents struct {
	sessionService  authService.SessionService
	adminRepository authUseCase.AdminRepository
	adminUseCase    authUseCase.AdminUseCase

	sessionServiceInit  sync.Once
	adminRepositoryInit sync.Once
	adminUseCaseInit    sync.Once
}

// SessionService returns the JWT session service.
func (c *Container) SessionService() (authService.SessionService, error) {
	c.sessionServiceInit.Do(func() {
		service, err := c.initSessionService()
		c.setResult("sessionService", err)
		c.sessionService = service
	})
	if err := c.initError("sessionService"); err != nil {
		return nil, err
	}
	return c.sessionService, nil
}

// AdminRepository returns the admin repository for the configured database driver.
func (c *Container) AdminRepository() (authUseCase.AdminRepository, error) {
	c.adminRepositoryInit.Do(func() {
		repo, err := c.initAdminRepository()
		c.setResult("adminRepository", err)
		c.adminRepository = repo
	})
	if err := c.initError("adminRepository"); err != nil {
		return nil, err
	}
	return c.adminRepository, nil
}

// AdminUseCase returns the admin use case, wrapped with metrics when enabled.
func (c *Container) AdminUseCase() (authUseCase.AdminUseCase, error) {
	c.adminUseCaseInit.Do(func() {
		useCase, err := c.initAdminUseCase()
		c.setResult("adminUseCase", err)
		c.adminUseCase = useCase
	})
	if err := c.initError("adminUseCase"); err != nil {
		return nil, err
	}
	return c.adminUseCase, nil
}

// AdminHandler creates the HTTP handler for the /v1/auth routes.
func (c *Container) AdminHandler(useCase authUseCase.AdminUseCase) *authHTTP.AdminHandler {
	return authHTTP.NewAdminHandler(useCase, c.Logger())
}

func (c *Container) initSessionService() (authService.SessionService, error) {
	secret := c.config.AuthSessionSecret
	if secret == "" {
		generated, err := c.EncryptionService().GenerateRandomString(sessionSecretLength)
		if err != nil {
			return nil, fmt.Errorf("failed to generate session secret: %w", err)
		}
		c.Logger().Warn("AUTH_SESSION_SECRET is empty, sessions will not survive a restart")
		secret = generated
	}

	service, err := authService.NewSessionService(secret, c.config.AuthSessionExpiration)
	if err != nil {
		return nil, fmt.Errorf("failed to create session service: %w", err)
	}
	return service, nil
}

func (c *Container) initAdminRepository() (authUseCase.AdminRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for admin repository: %w", err)
	}

	switch c.config.DBDriver {
	case database.DriverPostgres:
		return authRepository.NewPostgreSQLAdminRepository(db), nil
	case database.DriverMySQL:
		return authRepository.NewMySQLAdminRepository(db), nil
	default:
		return nil, database.ValidateDriver(c.config.DBDriver)
	}
}

func (c *Container) initAdminUseCase() (authUseCase.AdminUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for admin use case: %w", err)
	}

	adminRepository, err := c.AdminRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get admin repository for admin use case: %w", err)
	}

	hasher, err := c.PasswordHasher()
	if err != nil {
		return nil, fmt.Errorf("failed to get password hasher for admin use case: %w", err)
	}

	sessionService, err := c.SessionService()
	if err != nil {
		return nil, fmt.Errorf("failed to get session service for admin use case: %w", err)
	}

	baseUseCase := authUseCase.NewAdminUseCase(txManager, adminRepository, hasher, sessionService, c.Logger())

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for admin use case: %w", err)
		}
		return authUseCase.NewAdminUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}
