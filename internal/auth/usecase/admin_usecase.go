package usecase

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	authDomain "github.com/memoriz2/greensupia-sub000/internal/auth/domain"
	authService "github.com/memoriz2/greensupia-sub000/internal/auth/service"
	cryptoService "github.com/memoriz2/greensupia-sub000/internal/crypto/service"
	"github.com/memoriz2/greensupia-sub000/internal/database"
	apperrors "github.com/memoriz2/greensupia-sub000/internal/errors"
)

// decoyPassword is hashed once to give unknown usernames the same verification cost
// as known ones.
const decoyPassword = "greensupia-decoy-credential"

// adminUseCase implements AdminUseCase.
type adminUseCase struct {
	txManager      database.TxManager
	adminRepo      AdminRepository
	hasher         cryptoService.PasswordHasher
	sessionService authService.SessionService
	logger         *slog.Logger
	now            func() time.Time

	decoyOnce sync.Once
	decoyHash string
}

// NewAdminUseCase creates a new AdminUseCase with the provided dependencies.
func NewAdminUseCase(
	txManager database.TxManager,
	adminRepo AdminRepository,
	hasher cryptoService.PasswordHasher,
	sessionService authService.SessionService,
	logger *slog.Logger,
) AdminUseCase {
	return &adminUseCase{
		txManager:      txManager,
		adminRepo:      adminRepo,
		hasher:         hasher,
		sessionService: sessionService,
		logger:         logger,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

// Create hashes password and persists a new admin.
func (a *adminUseCase) Create(ctx context.Context, username, password string) (*authDomain.Admin, error) {
	if authDomain.NormalizeUsername(username) == "" {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "username is required")
	}
	if password == "" {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "password is required")
	}

	hash, err := a.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	admin := authDomain.NewAdmin(username, hash, a.now())
	if err := a.adminRepo.Create(ctx, admin); err != nil {
		return nil, err
	}

	a.logger.Info("admin created",
		slog.String("admin_id", admin.ID.String()),
		slog.String("username", admin.Username),
		slog.String("hash_algorithm", string(a.hasher.Algorithm())),
	)
	return admin, nil
}

// Login authenticates the admin and issues a session token.
func (a *adminUseCase) Login(ctx context.Context, username, password string) (*authDomain.Session, error) {
	admin, err := a.adminRepo.GetByUsername(ctx, authDomain.NormalizeUsername(username))
	if err != nil {
		if errors.Is(err, authDomain.ErrAdminNotFound) {
			a.hasher.Verify(password, a.decoy())
			return nil, authDomain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !a.hasher.Verify(password, admin.PasswordHash) {
		a.logger.Warn("admin login failed", slog.String("admin_id", admin.ID.String()))
		return nil, authDomain.ErrInvalidCredentials
	}

	if !admin.IsActive {
		return nil, authDomain.ErrAdminInactive
	}

	now := a.now()
	err = a.txManager.WithTx(ctx, func(ctx context.Context) error {
		if a.hasher.NeedsRehash(admin.PasswordHash) {
			hash, err := a.hasher.Hash(password)
			if err != nil {
				return err
			}
			if err := a.adminRepo.UpdatePasswordHash(ctx, admin.ID, hash, now); err != nil {
				return err
			}
			a.logger.Info("admin password rehashed",
				slog.String("admin_id", admin.ID.String()),
				slog.String("hash_algorithm", string(a.hasher.Algorithm())),
			)
		}
		return a.adminRepo.UpdateLastLogin(ctx, admin.ID, now)
	})
	if err != nil {
		return nil, err
	}

	return a.sessionService.Issue(admin.ID)
}

// decoy returns a hash in the configured algorithm that no submitted password is
// expected to match. It is computed on first use.
func (a *adminUseCase) decoy() string {
	a.decoyOnce.Do(func() {
		hash, err := a.hasher.Hash(decoyPassword)
		if err != nil {
			a.logger.Error("failed to compute decoy password hash", slog.Any("error", err))
			return
		}
		a.decoyHash = hash
	})
	return a.decoyHash
}

// Authenticate parses the session token and loads the admin it belongs to.
func (a *adminUseCase) Authenticate(ctx context.Context, token string) (*authDomain.Admin, error) {
	adminID, err := a.sessionService.Parse(token)
	if err != nil {
		return nil, err
	}

	admin, err := a.adminRepo.GetByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, authDomain.ErrAdminNotFound) {
			return nil, authDomain.ErrInvalidSession
		}
		return nil, err
	}

	if !admin.IsActive {
		return nil, authDomain.ErrAdminInactive
	}
	return admin, nil
}
