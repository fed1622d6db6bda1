// Package repository implements data persistence for admin accounts.
//
// Provides PostgreSQL and MySQL implementations with transaction support via database.GetTx().
// PostgreSQL uses native UUID types, MySQL uses BINARY(16) types.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	authDomain "github.com/memoriz2/greensupia-sub000/internal/auth/domain"
	"github.com/memoriz2/greensupia-sub000/internal/database"
	apperrors "github.com/memoriz2/greensupia-sub000/internal/errors"
)

// pgUniqueViolation is the SQLSTATE reported for unique constraint violations.
const pgUniqueViolation = "23505"

// PostgreSQLAdminRepository implements Admin persistence for PostgreSQL.
type PostgreSQLAdminRepository struct {
	db *sql.DB
}

// NewPostgreSQLAdminRepository creates a new PostgreSQL Admin repository.
func NewPostgreSQLAdminRepository(db *sql.DB) *PostgreSQLAdminRepository {
	return &PostgreSQLAdminRepository{db: db}
}

// Create inserts a new Admin. Returns ErrAdminAlreadyExists when the username is taken.
func (p *PostgreSQLAdminRepository) Create(ctx context.Context, admin *authDomain.Admin) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO admins (id, username, password_hash, is_active, last_login_at, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := querier.ExecContext(
		ctx,
		query,
		admin.ID,
		admin.Username,
		admin.PasswordHash,
		admin.IsActive,
		admin.LastLoginAt,
		admin.CreatedAt,
		admin.UpdatedAt,
	)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return authDomain.ErrAdminAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create admin")
	}
	return nil
}

// GetByID retrieves an Admin by ID.
func (p *PostgreSQLAdminRepository) GetByID(ctx context.Context, id uuid.UUID) (*authDomain.Admin, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, username, password_hash, is_active, last_login_at, created_at, updated_at
			  FROM admins WHERE id = $1`

	return p.scanAdmin(querier.QueryRowContext(ctx, query, id), "failed to get admin by id")
}

// GetByUsername retrieves an Admin by its normalized username.
func (p *PostgreSQLAdminRepository) GetByUsername(
	ctx context.Context,
	username string,
) (*authDomain.Admin, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, username, password_hash, is_active, last_login_at, created_at, updated_at
			  FROM admins WHERE username = $1`

	return p.scanAdmin(querier.QueryRowContext(ctx, query, username), "failed to get admin by username")
}

// UpdatePasswordHash replaces the stored credential of an Admin.
func (p *PostgreSQLAdminRepository) UpdatePasswordHash(
	ctx context.Context,
	id uuid.UUID,
	passwordHash string,
	updatedAt time.Time,
) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE admins SET password_hash = $1, updated_at = $2 WHERE id = $3`

	result, err := querier.ExecContext(ctx, query, passwordHash, updatedAt, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to update admin password hash")
	}
	return requireAffected(result)
}

// UpdateLastLogin records a successful login.
func (p *PostgreSQLAdminRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE admins SET last_login_at = $1, updated_at = $1 WHERE id = $2`

	result, err := querier.ExecContext(ctx, query, at, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to update admin last login")
	}
	return requireAffected(result)
}

func (p *PostgreSQLAdminRepository) scanAdmin(row *sql.Row, failure string) (*authDomain.Admin, error) {
	var admin authDomain.Admin
	var lastLoginAt sql.NullTime

	err := row.Scan(
		&admin.ID,
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

	if lastLoginAt.Valid {
		admin.LastLoginAt = &lastLoginAt.Time
	}
	return &admin, nil
}

// isPostgreSQLUniqueViolation checks if the error is a PostgreSQL unique constraint violation.
func isPostgreSQLUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation
}

// requireAffected maps an update that touched no rows to ErrAdminNotFound.
func requireAffected(result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to read affected rows")
	}
	if rows == 0 {
		return authDomain.ErrAdminNotFound
	}
	return nil
}
