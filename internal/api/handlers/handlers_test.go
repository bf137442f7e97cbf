package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/cityhail/ride-backend/internal/domain/ride"
	"github.com/cityhail/ride-backend/internal/domain/user"
	"github.com/cityhail/ride-backend/internal/service/rides"
	"github.com/cityhail/ride-backend/internal/service/users"
	"github.com/cityhail/ride-backend/pkg/logger"
	"github.com/cityhail/ride-backend/pkg/monitoring"
	"github.com/cityhail/ride-backend/pkg/websocket"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubUserService struct {
	registerFn func(ctx context.Context, in users.RegisterInput) (*user.User, error)
	listFn     func(ctx context.Context) ([]*user.User, error)
}

func (s *stubUserService) Register(ctx context.Context, in users.RegisterInput) (*user.User, error) {
	return s.registerFn(ctx, in)
}

func (s *stubUserService) List(ctx context.Context) ([]*user.User, error) {
	return s.listFn(ctx)
}

type stubRideService struct {
	requestFn  func(ctx context.Context, in rides.RequestInput) (*ride.Ride, error)
	acceptFn   func(ctx context.Context, rideID, driverID string) error
	completeFn func(ctx context.Context, rideID string) error
	listFn     func(ctx context.Context) ([]*ride.WithNames, error)
}

func (s *stubRideService) Request(ctx context.Context, in rides.RequestInput) (*ride.Ride, error) {
	return s.requestFn(ctx, in)
}

func (s *stubRideService) Accept(ctx context.Context, rideID, driverID string) error {
	return s.acceptFn(ctx, rideID, driverID)
}

func (s *stubRideService) Complete(ctx context.Context, rideID string) error {
	return s.completeFn(ctx, rideID)
}

func (s *stubRideService) List(ctx context.Context) ([]*ride.WithNames, error) {
	return s.listFn(ctx)
}

// newTestRouter wires the handlers onto a bare gin engine with the
// same paths the real route setup uses. Monitoring is a disabled App
// and the hub is never run: Broadcast buffers and drops, so handlers
// stay non-blocking in tests.
func newTestRouter(userSvc UserService, rideSvc RideService) *gin.Engine {
	log := logger.NewNop()
	h := NewHandlers(userSvc, rideSvc, log, websocket.NewHub(log), &monitoring.App{})

	r := gin.New()
	r.POST("/users", h.RegisterUser)
	r.GET("/users", h.ListUsers)
	r.POST("/rides/request", h.RequestRide)
	r.GET("/rides", h.ListRides)
	r.PATCH("/rides/:id/accept", h.AcceptRide)
	r.PATCH("/rides/:id/complete", h.CompleteRide)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
