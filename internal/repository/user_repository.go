package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"users-api/internal/customerrors"
	"users-api/internal/entities"
)

//go:generate mockgen -destination=mocks/user_repository_mock.go -package=mocks users-api/internal/repository UserRepository

// uniqueViolation is the PostgreSQL SQLSTATE for unique_violation
const uniqueViolation = pq.ErrorCode("23505")

const userColumns = "id, email, name, password_hash, created_at"

// DBTX is the subset of *sql.DB the repository needs
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// UserRepository defines the interface for user database operations
type UserRepository interface {
	Create(ctx context.Context, id, email, name string, passwordHash *string) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	FindByID(ctx context.Context, id string) (*entities.User, error)
	List(ctx context.Context) ([]*entities.User, error)
	DeleteByID(ctx context.Context, id string) (*entities.User, error)
}

type userRepository struct {
	db DBTX
}

// NewUserRepository creates a new user repository over a request-scoped connection
func NewUserRepository(db DBTX) UserRepository {
	return &userRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*entities.User, error) {
	var user entities.User
	var passwordHash sql.NullString
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&passwordHash,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if passwordHash.Valid {
		user.PasswordHash = &passwordHash.String
	}
	return &user, nil
}

// Create inserts a new user. passwordHash may be nil.
func (r *userRepository) Create(ctx context.Context, id, email, name string, passwordHash *string) (*entities.User, error) {
	query := `
		INSERT INTO users (id, email, name, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + userColumns

	user, err := scanUser(r.db.QueryRowContext(ctx, query, id, email, name, passwordHash))
	if err != nil {
		if isEmailConflict(err) {
			return nil, customerrors.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// FindByEmail finds a user by email
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, email))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, customerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}

// FindByID finds a user by ID
func (r *userRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, customerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}

// List returns every user, newest first
func (r *userRepository) List(ctx context.Context) ([]*entities.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := []*entities.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}

// DeleteByID deletes a user and returns the deleted row. The delete itself
// decides whether the user existed; there is no prior existence check.
func (r *userRepository) DeleteByID(ctx context.Context, id string) (*entities.User, error) {
	query := `DELETE FROM users WHERE id = $1 RETURNING ` + userColumns

	user, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, customerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to delete user: %w", err)
	}

	return user, nil
}

// isEmailConflict reports whether err is a unique violation on the email column.
// A primary key collision is not a client error and falls through.
func isEmailConflict(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != uniqueViolation {
		return false
	}
	return pqErr.Constraint == "" || strings.Contains(pqErr.Constraint, "email")
}
