package rides

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/cityhail/ride-backend/internal/domain/ride"
	"github.com/cityhail/ride-backend/internal/domain/user"
)

// mockUserRepository is an in-memory user.Repository.
type mockUserRepository struct {
	mu    sync.RWMutex
	users map[uuid.UUID]*user.User

	getErr error
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{users: make(map[uuid.UUID]*user.User)}
}

func (m *mockUserRepository) add(u *user.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[u.ID] = u
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	m.add(u)
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
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
	result := make([]*user.User, 0, len(m.users))
	for _, u := range m.users {
		cp := *u
		result = append(result, &cp)
	}
	return result, nil
}

// mockRideRepository is an in-memory ride.Repository. The conditional
// updates hold the mutex across check and mutation, mirroring the
// atomicity of the real single-statement UPDATE.
type mockRideRepository struct {
	mu    sync.Mutex
	rides map[uuid.UUID]*ride.Ride
	names map[uuid.UUID]string // user id -> name, for ListWithNames

	createErr error
}

func newMockRideRepository() *mockRideRepository {
	return &mockRideRepository{
		rides: make(map[uuid.UUID]*ride.Ride),
		names: make(map[uuid.UUID]string),
	}
}

func (m *mockRideRepository) add(r *ride.Ride) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rides[r.ID] = r
}

func (m *mockRideRepository) get(id uuid.UUID) *ride.Ride {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rides[id]
	if !ok {
		return nil
	}
	cp := *r
	return &cp
}

func (m *mockRideRepository) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rides)
}

func (m *mockRideRepository) Create(ctx context.Context, r *ride.Ride) error {
	if m.createErr != nil {
		return m.createErr
	}
	cp := *r
	m.add(&cp)
	return nil
}

func (m *mockRideRepository) GetByID(ctx context.Context, id uuid.UUID) (*ride.Ride, error) {
	r := m.get(id)
	if r == nil {
		return nil, ride.ErrNotFound
	}
	return r, nil
}

func (m *mockRideRepository) AcceptPending(ctx context.Context, rideID, driverID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rides[rideID]
	if !ok || r.Status != ride.StatusPending {
		return ride.ErrNotFound
	}
	now := nowRef()
	r.Status = ride.StatusAccepted
	r.AcceptedBy = &driverID
	r.AcceptedAt = &now
	return nil
}

func (m *mockRideRepository) CompleteAccepted(ctx context.Context, rideID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rides[rideID]
	if !ok || r.Status != ride.StatusAccepted {
		return ride.ErrNotFound
	}
	now := nowRef()
	r.Status = ride.StatusCompleted
	r.CompletedAt = &now
	return nil
}

func (m *mockRideRepository) ListWithNames(ctx context.Context) ([]*ride.WithNames, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []*ride.WithNames
	for _, r := range m.rides {
		wn := &ride.WithNames{Ride: *r}
		wn.PassengerName = m.names[r.PassengerID]
		if r.AcceptedBy != nil {
			name := m.names[*r.AcceptedBy]
			wn.DriverName = &name
		}
		result = append(result, wn)
	}
	return result, nil
}
