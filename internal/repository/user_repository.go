package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"luxestate/internal/models"
)

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

// CreateUser inserts user. Email uniqueness is enforced by the users_email_key
// constraint; a violation is reported as models.ErrConflict.
func (r *userRepository) CreateUser(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = models.Now()
	}

	query := `
		INSERT INTO users (id, email, name, role, password_hash, created_at)
		VALUES (:id, :email, :name, :role, :password_hash, :created_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: email %s is already registered", models.ErrConflict, user.Email)
		}
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

// UpsertUser inserts user or, when the email exists, replaces its name, role
// and password hash. ID and CreatedAt are refreshed from the stored row.
func (r *userRepository) UpsertUser(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = models.Now()
	}

	query := `
		INSERT INTO users (id, email, name, role, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (email) DO UPDATE SET
			name = EXCLUDED.name,
			role = EXCLUDED.role,
			password_hash = EXCLUDED.password_hash
		RETURNING id, created_at
	`

	err := r.db.QueryRowxContext(ctx, query,
		user.ID, user.Email, user.Name, user.Role, user.PasswordHash, user.CreatedAt,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		return fmt.Errorf("upsert user: %w", err)
	}

	return nil
}

func (r *userRepository) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	var user models.User

	query := `SELECT id, email, name, role, password_hash, created_at FROM users WHERE id = $1`

	err := r.db.GetContext(ctx, &user, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user %s: %w", userID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}

	return &user, nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User

	query := `SELECT id, email, name, role, password_hash, created_at FROM users WHERE email = $1`

	err := r.db.GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user with email %s: %w", email, models.ErrNotFound)
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}

	return &user, nil
}

// ListUsers never reads password hashes.
func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	users := []models.User{}

	query := `SELECT id, email, name, role, created_at FROM users ORDER BY created_at LIMIT $1`

	if err := r.db.SelectContext(ctx, &users, query, listLimit); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return users, nil
}
