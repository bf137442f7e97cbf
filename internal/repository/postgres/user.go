package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/cityhail/ride-backend/internal/domain/user"
)

// UserRepository is a PostgreSQL implementation of user.Repository.
type UserRepository struct {
	q Querier
}

// NewUserRepository creates a new PostgreSQL user repository.
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{q: db}
}

// Create persists a new user.
func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	query := `
		INSERT INTO users (id, name, contact, role, is_blocked, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.q.ExecContext(ctx, query,
		u.ID,
		u.Name,
		u.Contact,
		u.Role,
		u.IsBlocked,
		u.CreatedAt,
	)
	return err
}

// GetByID retrieves a user by ID.
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	query := `
		SELECT id, name, contact, role, is_blocked, created_at
		FROM users WHERE id = $1
	`

	var u user.User
	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&u.ID,
		&u.Name,
		&u.Contact,
		&u.Role,
		&u.IsBlocked,
		&u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, user.ErrNotFound
		}
		return nil, err
	}

	return &u, nil
}

// GetAll retrieves all users in natural store order.
func (r *UserRepository) GetAll(ctx context.Context) ([]*user.User, error) {
	query := `
		SELECT id, name, contact, role, is_blocked, created_at
		FROM users
	`

	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*user.User
	for rows.Next() {
		var u user.User
		if err := rows.Scan(
			&u.ID,
			&u.Name,
			&u.Contact,
			&u.Role,
			&u.IsBlocked,
			&u.CreatedAt,
		); err != nil {
			return nil, err
		}
		users = append(users, &u)
	}
	return users, rows.Err()
}
