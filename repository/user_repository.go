package repository

import (
	"context"

	"lawbandhu-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const userColumns = `id, email, phone, name, role, photo_url, created_at, updated_at`

// UserRepository handles database operations for users
type UserRepository struct {
	db DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db DB) *UserRepository {
	return &UserRepository{db: db}
}

// UpsertByEmail returns the user owning email, creating it on first sign-in
func (r *UserRepository) UpsertByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		INSERT INTO users (email, name)
		VALUES ($1, split_part($1, '@', 1))
		ON CONFLICT (email) DO UPDATE SET updated_at = NOW()
		RETURNING ` + userColumns

	return scanUser(r.db.QueryRow(ctx, query, email))
}

// UpsertByPhone returns the user owning phone, creating it on first sign-in
func (r *UserRepository) UpsertByPhone(ctx context.Context, phone string) (*models.User, error) {
	query := `
		INSERT INTO users (phone, name)
		VALUES ($1, $1)
		ON CONFLICT (phone) DO UPDATE SET updated_at = NOW()
		RETURNING ` + userColumns

	return scanUser(r.db.QueryRow(ctx, query, phone))
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	u, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, translate(err)
	}
	return u, nil
}

// SetRole stores the user's chosen role
func (r *UserRepository) SetRole(ctx context.Context, id uuid.UUID, role models.UserRole) (*models.User, error) {
	query := `
		UPDATE users SET role = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns

	u, err := scanUser(r.db.QueryRow(ctx, query, id, role))
	if err != nil {
		return nil, translate(err)
	}
	return u, nil
}

func scanUser(row pgx.Row) (*models.User, error) {
	u := &models.User{}
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.Phone,
		&u.Name,
		&u.Role,
		&u.PhotoURL,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return u, nil
}
