package users

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/cityhail/ride-backend/internal/domain/user"
	apperrors "github.com/cityhail/ride-backend/pkg/errors"
)

// Service handles user registration and listing.
type Service struct {
	repo user.Repository
}

// NewService creates a new user service.
func NewService(repo user.Repository) *Service {
	return &Service{repo: repo}
}

// RegisterInput contains the parameters for registering a user.
type RegisterInput struct {
	Name    string
	Contact string
	Role    string
}

// Register creates a user with the given identity fields. No
// duplicate detection is performed: contact is not unique.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*user.User, error) {
	if in.Name == "" || in.Contact == "" || in.Role == "" {
		return nil, apperrors.Validation("Missing required user fields", nil)
	}

	role := user.Role(in.Role)
	if !role.Valid() {
		return nil, apperrors.Validation("Role must be passenger or driver", nil)
	}

	u := &user.User{
		ID:        uuid.New(),
		Name:      in.Name,
		Contact:   in.Contact,
		Role:      role,
		IsBlocked: false,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return nil, apperrors.Internal("Failed to register user", err)
	}

	return u, nil
}

// List returns all users, unfiltered and unpaginated.
func (s *Service) List(ctx context.Context) ([]*user.User, error) {
	users, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, apperrors.Internal("Failed to list users", err)
	}
	return users, nil
}
