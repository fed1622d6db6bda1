package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTestDSN(t *testing.T) {
	tests := []struct {
		name   string
		envKey string
		get    func() string
		def    string
	}{
		{name: "postgres", envKey: "TEST_POSTGRES_DSN", get: GetPostgresTestDSN, def: defaultPostgresTestDSN},
		{name: "mysql", envKey: "TEST_MYSQL_DSN", get: GetMySQLTestDSN, def: defaultMySQLTestDSN},
	}

	for _, tt := range tests {
		t.Run(tt.name+" default", func(t *testing.T) {
			t.Setenv(tt.envKey, "")
			assert.Equal(t, tt.def, tt.get())
		})

		t.Run(tt.name+" from env", func(t *testing.T) {
			t.Setenv(tt.envKey, "custom-dsn")
			assert.Equal(t, "custom-dsn", tt.get())
		})
	}
}

func TestGetMigrationsPath(t *testing.T) {
	for _, dbType := range []string{"postgresql", "mysql"} {
		t.Run(dbType, func(t *testing.T) {
			got, err := getMigrationsPath(dbType)
			require.NoError(t, err)

			_, statErr := os.Stat(filepath.Join(got, "000001_create_admins_table.up.sql"))
			assert.NoError(t, statErr)
		})
	}

	t.Run("non-existent database type", func(t *testing.T) {
		got, err := getMigrationsPath("nonexistent")
		assert.Error(t, err)
		assert.Empty(t, got)
	})
}

func TestUuidToDriverValue(t *testing.T) {
	id := uuid.Must(uuid.NewV7())

	value, err := uuidToDriverValue(id, "postgres")
	require.NoError(t, err)
	assert.Equal(t, id, value)

	value, err = uuidToDriverValue(id, "mysql")
	require.NoError(t, err)
	assert.Len(t, value, 16)
}

func TestTeardownDBWithNilDB(t *testing.T) {
	assert.NotPanics(t, func() {
		TeardownDB(t, nil)
	})
}

func TestCreateTestAdmin(t *testing.T) {
	t.Run("postgres", func(t *testing.T) {
		SkipIfNoPostgres(t)
		db := SetupPostgresDB(t)
		defer TeardownDB(t, db)

		id := CreateTestAdmin(t, db, "postgres", "operator", "salt:hash", true)

		assert.NotEqual(t, uuid.Nil, id)
		assert.Equal(t, 1, CountAdmins(t, db))

		CleanupPostgresDB(t, db)
		assert.Equal(t, 0, CountAdmins(t, db))
	})

	t.Run("mysql", func(t *testing.T) {
		SkipIfNoMySQL(t)
		db := SetupMySQLDB(t)
		defer TeardownDB(t, db)

		id := CreateTestAdmin(t, db, "mysql", "operator", "salt:hash", true)

		assert.NotEqual(t, uuid.Nil, id)
		assert.Equal(t, 1, CountAdmins(t, db))

		CleanupMySQLDB(t, db)
		assert.Equal(t, 0, CountAdmins(t, db))
	})
}
