package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"

	authDomain "github.com/memoriz2/greensupia-sub000/internal/auth/domain"
	"github.com/memoriz2/greensupia-sub000/internal/database"
	apperrors "github.com/memoriz2/greensupia-sub000/internal/errors"
)

// mysqlDuplicateEntry is the MySQL error number for duplicate keys.
const mysqlDuplicateEntry = 1062

// MySQLAdminRepository implements Admin persistence for MySQL using BINARY(16) UUIDs.
// The DSN must enable parseTime so DATETIME columns scan into time.Time.
type MySQLAdminRepository struct {
	db *sql.DB
}

// NewMySQLAdminRepository creates a new MySQL Admin repository.
func NewMySQLAdminRepository(db *sql.DB) *MySQLAdminRepository {
	return &MySQLAdminRepository{db: db}
}

// Create inserts a new Admin. Returns ErrAdminAlreadyExists when the username is taken.
func (m *MySQLAdminRepository) Create(ctx context.Context, admin *authDomain.Admin) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO admins (id, username, password_hash, is_active, last_login_at, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?)`

	id, err := admin.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal admin id")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
		admin.Username,
		admin.PasswordHash,
		admin.IsActive,
		admin.LastLoginAt,
		admin.CreatedAt,
		admin.UpdatedAt,
	)
	if err != nil {
		if isMySQLUniqueViolation(err) {
			return authDomain.ErrAdminAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create admin")
	}
	return nil
}

// GetByID retrieves an Admin by ID.
func (m *MySQLAdminRepository) GetByID(ctx context.Context, id uuid.UUID) (*authDomain.Admin, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, username, password_hash, is_active, last_login_at, created_at, updated_at
			  FROM admins WHERE id = ?`

	idBytes, err := id.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal admin id")
	}

	return m.scanAdmin(querier.QueryRowContext(ctx, query, idBytes), "failed to get admin by id")
}

// GetByUsername retrieves an Admin by its normalized username.
func (m *MySQLAdminRepository) GetByUsername(ctx context.Context, username string) (*authDomain.Admin, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, username, password_hash, is_active, last_login_at, created_at, updated_at
			  FROM admins WHERE username = ?`

	return m.scanAdmin(querier.QueryRowContext(ctx, query, username), "failed to get admin by username")
}

// UpdatePasswordHash replaces the stored credential of an Admin.
func (m *MySQLAdminRepository) UpdatePasswordHash(
	ctx context.Context,
	id uuid.UUID,
	passwordHash string,
	updatedAt time.Time,
) error {
	querier := database.GetTx(ctx, m.db)

	idBytes, err := id.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal admin id")
	}

	query := `UPDATE admins SET password_hash = ?, updated_at = ? WHERE id = ?`

	result, err := querier.ExecContext(ctx, query, passwordHash, updatedAt, idBytes)
	if err != nil {
		return apperrors.Wrap(err, "failed to update admin password hash")
	}
	return requireAffected(result)
}

// UpdateLastLogin records a successful login.
func (m *MySQLAdminRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	querier := database.GetTx(ctx, m.db)

	idBytes, err := id.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal admin id")
	}

	query := `UPDATE admins SET last_login_at = ?, updated_at = ? WHERE id = ?`

	result, err := querier.ExecContext(ctx, query, at, at, idBytes)
	if err != nil {
		return apperrors.Wrap(err, "failed to update admin last login")
	}
	return requireAffected(result)
}

func (m *MySQLAdminRepository) scanAdmin(row *sql.Row, failure string) (*authDomain.Admin, error) {
	var admin authDomain.Admin
	var idBytes []byte
	var lastLoginAt sql.NullTime

	err := row.Scan(
		&idBytes,
		&admin.Username,
		&admin.PasswordHash,
		&admin.IsActive,
		&lastLoginAt,
		&admin.CreatedAt,
		&admin.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, authDomain.ErrAdminNotFound
		}
		return nil, apperrors.Wrap(err, failure)
	}

	if err := admin.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal admin id")
	}
	if lastLoginAt.Valid {
		admin.LastLoginAt = &lastLoginAt.Time
	}
	return &admin, nil
}

// isMySQLUniqueViolation checks if the error is a MySQL duplicate entry error.
func isMySQLUniqueViolation(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry
}
