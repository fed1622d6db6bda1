package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/memoriz2/greensupia-sub000/internal/config"
	cryptoDomain "github.com/memoriz2/greensupia-sub000/internal/crypto/domain"
	cryptoService "github.com/memoriz2/greensupia-sub000/internal/crypto/service"
	"github.com/memoriz2/greensupia-sub000/internal/metrics"
)

// testKeyURI is a fixed local keeper so sealed values can be opened again.
const testKeyURI = "base64key://smGbjm71Nxd1Ig5FS0wj9SlbzAIrnolCz9bQQ6uAhl4="

func newTestConfig() *config.Config {
	return &config.Config{
		LogLevel:                 "error",
		DBDriver:                 "postgres",
		ServerHost:               "localhost",
		ServerPort:               0,
		MetricsPort:              0,
		MetricsNamespace:         "greensupia_test",
		AuthSessionExpiration:    time.Hour,
		PasswordHashAlgorithm:    "pbkdf2",
		CryptoMaxConcurrentKDF:   2,
		RateLimitEnabled:         true,
		RateLimitMaxRequests:     10,
		RateLimitWindow:          time.Minute,
		RateLimitBlockDuration:   time.Minute,
		RateLimitCleanupInterval: time.Minute,
	}
}

// withMockDB injects a sqlmock connection so no database is dialed.
func withMockDB(t *testing.T, c *Container) sqlmock.Sqlmock {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	c.dbInit.Do(func() { c.db = db })
	return mock
}

func TestNewContainer(t *testing.T) {
	cfg := newTestConfig()

	container := NewContainer(cfg)

	require.NotNil(t, container)
	assert.Same(t, cfg, container.Config())
}

func TestContainer_Logger(t *testing.T) {
	t.Run("Success_Singleton", func(t *testing.T) {
		container := NewContainer(&config.Config{LogLevel: "debug"})
		assert.Nil(t, container.logger)

		logger := container.Logger()

		require.NotNil(t, logger)
		assert.Same(t, logger, container.Logger())
	})

	t.Run("Success_UnknownLevelDefaultsToInfo", func(t *testing.T) {
		container := NewContainer(&config.Config{LogLevel: "invalid"})

		logger := container.Logger()

		assert.True(t, logger.Enabled(context.Background(), 0))
		assert.False(t, logger.Enabled(context.Background(), -4))
	})
}

func TestContainer_DB_ErrorIsCached(t *testing.T) {
	container := NewContainer(&config.Config{DBDriver: "invalid_driver"})

	_, err := container.DB()
	require.Error(t, err)

	_, err2 := container.DB()
	assert.Equal(t, err, err2)

	_, err = container.TxManager()
	assert.Error(t, err)
}

func TestContainer_AdminRepository_UnsupportedDriver(t *testing.T) {
	cfg := newTestConfig()
	cfg.DBDriver = "sqlite"
	container := NewContainer(cfg)
	withMockDB(t, container)
	defer func() { _ = container.Shutdown(context.Background()) }()

	_, err := container.AdminRepository()

	assert.ErrorContains(t, err, "unsupported database driver: sqlite")
}

func TestContainer_PasswordHasher(t *testing.T) {
	t.Run("Success_Argon2id", func(t *testing.T) {
		cfg := newTestConfig()
		cfg.PasswordHashAlgorithm = "argon2id"

		hasher, err := NewContainer(cfg).PasswordHasher()

		require.NoError(t, err)
		assert.Equal(t, cryptoDomain.Argon2id, hasher.Algorithm())
	})

	t.Run("Error_UnknownAlgorithm", func(t *testing.T) {
		cfg := newTestConfig()
		cfg.PasswordHashAlgorithm = "md5"

		_, err := NewContainer(cfg).PasswordHasher()

		assert.Error(t, err)
	})
}

func TestContainer_Passphrase(t *testing.T) {
	t.Run("Success_Plaintext", func(t *testing.T) {
		cfg := newTestConfig()
		cfg.AppSecretPassphrase = "inquiry-passphrase"

		passphrase, err := NewContainer(cfg).Passphrase()

		require.NoError(t, err)
		assert.Equal(t, "inquiry-passphrase", passphrase)
	})

	t.Run("Success_SealedTakesPrecedence", func(t *testing.T) {
		sealed, err := cryptoService.NewKMSService().Seal(context.Background(), testKeyURI, "sealed-passphrase")
		require.NoError(t, err)

		cfg := newTestConfig()
		cfg.AppSecretPassphrase = "ignored"
		cfg.AppSecretPassphraseSealed = sealed
		cfg.KMSKeyURI = testKeyURI

		passphrase, err := NewContainer(cfg).Passphrase()

		require.NoError(t, err)
		assert.Equal(t, "sealed-passphrase", passphrase)
	})

	t.Run("Error_SealedWithoutKeyURI", func(t *testing.T) {
		cfg := newTestConfig()
		cfg.AppSecretPassphraseSealed = "c2VhbGVk"

		_, err := NewContainer(cfg).Passphrase()

		assert.ErrorContains(t, err, "KMS_KEY_URI")
	})

	t.Run("Success_EmptyIsAllowed", func(t *testing.T) {
		passphrase, err := NewContainer(newTestConfig()).Passphrase()

		require.NoError(t, err)
		assert.Empty(t, passphrase)
	})
}

func TestContainer_SessionService(t *testing.T) {
	t.Run("Success_ConfiguredSecret", func(t *testing.T) {
		cfg := newTestConfig()
		cfg.AuthSessionSecret = "session-secret"
		container := NewContainer(cfg)

		sessionService, err := container.SessionService()
		require.NoError(t, err)

		session, err := sessionService.Issue(uuid.New())
		require.NoError(t, err)
		assert.NotEmpty(t, session.Token)
	})

	t.Run("Success_GeneratedSecretPerContainer", func(t *testing.T) {
		first, err := NewContainer(newTestConfig()).SessionService()
		require.NoError(t, err)
		second, err := NewContainer(newTestConfig()).SessionService()
		require.NoError(t, err)

		session, err := first.Issue(uuid.New())
		require.NoError(t, err)

		_, err = second.Parse(session.Token)
		assert.Error(t, err)
	})

	t.Run("Error_NonPositiveExpiration", func(t *testing.T) {
		cfg := newTestConfig()
		cfg.AuthSessionExpiration = 0

		_, err := NewContainer(cfg).SessionService()

		assert.Error(t, err)
	})
}

func TestContainer_MetricsDisabled(t *testing.T) {
	container := NewContainer(newTestConfig())

	provider, err := container.MetricsProvider()
	require.NoError(t, err)
	assert.Nil(t, provider)

	metricsServer, err := container.MetricsServer()
	require.NoError(t, err)
	assert.Nil(t, metricsServer)

	businessMetrics, err := container.BusinessMetrics()
	require.NoError(t, err)
	assert.IsType(t, &metrics.NoOpBusinessMetrics{}, businessMetrics)

	rateLimitMetrics, err := container.RateLimitMetrics()
	require.NoError(t, err)
	assert.IsType(t, &metrics.NoOpRateLimitMetrics{}, rateLimitMetrics)

	assert.NoError(t, container.Shutdown(context.Background()))
}

func TestContainer_RateLimiter(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	cfg := newTestConfig()
	cfg.RateLimitMaxRequests = 3
	container := NewContainer(cfg)

	limiter := container.RateLimiter()

	assert.Same(t, limiter, container.RateLimiter())
	assert.Equal(t, 3, limiter.Limit())

	require.NoError(t, container.Shutdown(context.Background()))
}

func TestContainer_HTTPServer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := newTestConfig()
	cfg.MetricsEnabled = true
	cfg.AuthSessionSecret = "session-secret"
	container := NewContainer(cfg)
	sqlMock := withMockDB(t, container)
	defer func() { _ = container.Shutdown(context.Background()) }()

	server, err := container.HTTPServer()
	require.NoError(t, err)

	again, err := container.HTTPServer()
	require.NoError(t, err)
	assert.Same(t, server, again)

	sqlMock.ExpectPing()
	w := httptest.NewRecorder()
	server.GetHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	server.GetHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/auth/me", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	metricsServer, err := container.MetricsServer()
	require.NoError(t, err)
	require.NotNil(t, metricsServer)

	w = httptest.NewRecorder()
	metricsServer.GetHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "greensupia_test_ratelimit_tracked_ips")
}

func TestContainer_ShutdownWithoutInitialization(t *testing.T) {
	container := NewContainer(newTestConfig())

	assert.NoError(t, container.Shutdown(context.Background()))
}
