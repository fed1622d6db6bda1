package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	authDomain "github.com/memoriz2/greensupia-sub000/internal/auth/domain"
	apperrors "github.com/memoriz2/greensupia-sub000/internal/errors"
)

// SessionIssuer is the iss claim written into and required from every session token.
const SessionIssuer = "greensupia"

// claims are the JWT claims of a session token. The subject holds the admin ID.
type claims struct {
	jwt.RegisteredClaims
}

// sessionService implements SessionService with HS256 signed JWTs.
type sessionService struct {
	secret     []byte
	expiration time.Duration
	now        func() time.Time
}

// NewSessionService creates a SessionService signing tokens with secret.
func NewSessionService(secret string, expiration time.Duration) (SessionService, error) {
	if secret == "" {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "session secret is required")
	}
	if expiration <= 0 {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "session expiration must be positive")
	}
	return &sessionService{
		secret:     []byte(secret),
		expiration: expiration,
		now:        time.Now,
	}, nil
}

// Issue signs a session token for adminID.
func (s *sessionService) Issue(adminID uuid.UUID) (*authDomain.Session, error) {
	now := s.now().UTC()
	expiresAt := now.Add(s.expiration)

	tokenClaims := claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    SessionIssuer,
			Subject:   adminID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to sign session token")
	}

	return &authDomain.Session{
		Token:     signed,
		AdminID:   adminID,
		ExpiresAt: expiresAt,
	}, nil
}

// Parse validates token and returns the admin ID from its subject.
func (s *sessionService) Parse(token string) (uuid.UUID, error) {
	if token == "" {
		return uuid.Nil, authDomain.ErrInvalidSession
	}

	tokenClaims := &claims{}
	parsed, err := jwt.ParseWithClaims(
		token,
		tokenClaims,
		func(t *jwt.Token) (any, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(SessionIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !parsed.Valid {
		return uuid.Nil, authDomain.ErrInvalidSession
	}

	adminID, err := uuid.Parse(tokenClaims.Subject)
	if err != nil {
		return uuid.Nil, authDomain.ErrInvalidSession
	}

	return adminID, nil
}

// Expiration returns the configured session lifetime.
func (s *sessionService) Expiration() time.Duration {
	return s.expiration
}
