package user

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Role is the function a user plays in the system. Immutable after
// registration: no update endpoint exists.
type Role string

const (
	RolePassenger Role = "passenger"
	RoleDriver    Role = "driver"
)

// Valid reports whether r is one of the recognized roles.
func (r Role) Valid() bool {
	return r == RolePassenger || r == RoleDriver
}

// User is an identity record. Users are never deleted or mutated by
// this service.
type User struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Contact   string    `json:"contact"`
	Role      Role      `json:"role"`
	IsBlocked bool      `json:"isBlocked"`
	CreatedAt time.Time `json:"createdAt"`
}

// Repository defines the persistence operations for users.
type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetAll(ctx context.Context) ([]*User, error)
}

// ErrNotFound is returned when no user exists with the given ID.
var ErrNotFound = errors.New("user not found")
