package users

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cityhail/ride-backend/internal/domain/user"
	apperrors "github.com/cityhail/ride-backend/pkg/errors"
)

type mockUserRepository struct {
	mu        sync.RWMutex
	users     map[uuid.UUID]*user.User
	createErr error
	getAllErr error
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{users: make(map[uuid.UUID]*user.User)}
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	cp := *u
	m.users[u.ID] = &cp
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.users[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *mockUserRepository) GetAll(ctx context.Context) ([]*user.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.getAllErr != nil {
		return nil, m.getAllErr
	}
	out := make([]*user.User, 0, len(m.users))
	for _, u := range m.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func TestRegister_MissingFields(t *testing.T) {
	repo := newMockUserRepository()
	svc := NewService(repo)

	testCases := []struct {
		name  string
		input RegisterInput
	}{
		{"missing name", RegisterInput{Contact: "555-0100", Role: "passenger"}},
		{"missing contact", RegisterInput{Name: "Ann", Role: "passenger"}},
		{"missing role", RegisterInput{Name: "Ann", Contact: "555-0100"}},
		{"all missing", RegisterInput{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tc.input)
			require.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, apperrors.GetAppError(err).Status)
			assert.Empty(t, repo.users, "no user may be persisted")
		})
	}
}

func TestRegister_InvalidRole(t *testing.T) {
	repo := newMockUserRepository()
	svc := NewService(repo)

	_, err := svc.Register(context.Background(), RegisterInput{
		Name:    "Ann",
		Contact: "555-0100",
		Role:    "admin",
	})

	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperrors.GetAppError(err).Status)
	assert.Empty(t, repo.users)
}

func TestRegister_Passenger(t *testing.T) {
	repo := newMockUserRepository()
	svc := NewService(repo)

	u, err := svc.Register(context.Background(), RegisterInput{
		Name:    "Ann",
		Contact: "555-0100",
		Role:    "passenger",
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, u.ID)
	assert.Equal(t, "Ann", u.Name)
	assert.Equal(t, user.RolePassenger, u.Role)
	assert.False(t, u.IsBlocked)
	assert.False(t, u.CreatedAt.IsZero())

	stored, err := repo.GetByID(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.ID, stored.ID)
}

func TestRegister_Driver(t *testing.T) {
	svc := NewService(newMockUserRepository())

	u, err := svc.Register(context.Background(), RegisterInput{
		Name:    "Dan",
		Contact: "555-0200",
		Role:    "driver",
	})

	require.NoError(t, err)
	assert.Equal(t, user.RoleDriver, u.Role)
}

func TestRegister_RepositoryError(t *testing.T) {
	repo := newMockUserRepository()
	repo.createErr = errors.New("connection refused")
	svc := NewService(repo)

	_, err := svc.Register(context.Background(), RegisterInput{
		Name:    "Ann",
		Contact: "555-0100",
		Role:    "passenger",
	})

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, apperrors.GetAppError(err).Status)
}

func TestList_Empty(t *testing.T) {
	svc := NewService(newMockUserRepository())

	users, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestList_AfterRegister(t *testing.T) {
	svc := NewService(newMockUserRepository())

	registered, err := svc.Register(context.Background(), RegisterInput{
		Name:    "Ann",
		Contact: "555-0100",
		Role:    "passenger",
	})
	require.NoError(t, err)

	users, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, registered.ID, users[0].ID)
	assert.Equal(t, "Ann", users[0].Name)
}

func TestList_RepositoryError(t *testing.T) {
	repo := newMockUserRepository()
	repo.getAllErr = errors.New("connection refused")
	svc := NewService(repo)

	_, err := svc.List(context.Background())

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, apperrors.GetAppError(err).Status)
}
