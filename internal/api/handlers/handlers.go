package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/cityhail/ride-backend/internal/api/dto"
	"github.com/cityhail/ride-backend/internal/domain/ride"
	"github.com/cityhail/ride-backend/internal/domain/user"
	"github.com/cityhail/ride-backend/internal/service/rides"
	"github.com/cityhail/ride-backend/internal/service/users"
	apperrors "github.com/cityhail/ride-backend/pkg/errors"
	"github.com/cityhail/ride-backend/pkg/logger"
	"github.com/cityhail/ride-backend/pkg/monitoring"
	"github.com/cityhail/ride-backend/pkg/websocket"
)

// UserService is the handler-facing contract of the user service.
type UserService interface {
	Register(ctx context.Context, in users.RegisterInput) (*user.User, error)
	List(ctx context.Context) ([]*user.User, error)
}

// RideService is the handler-facing contract of the ride service.
type RideService interface {
	Request(ctx context.Context, in rides.RequestInput) (*ride.Ride, error)
	Accept(ctx context.Context, rideID, driverID string) error
	Complete(ctx context.Context, rideID string) error
	List(ctx context.Context) ([]*ride.WithNames, error)
}

// Handlers holds all handler dependencies.
type Handlers struct {
	Users      UserService
	Rides      RideService
	Logger     *logger.Logger
	Hub        *websocket.Hub
	Monitoring *monitoring.App
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(userSvc UserService, rideSvc RideService, log *logger.Logger, hub *websocket.Hub, mon *monitoring.App) *Handlers {
	return &Handlers{
		Users:      userSvc,
		Rides:      rideSvc,
		Logger:     log,
		Hub:        hub,
		Monitoring: mon,
	}
}

// respondError maps any error to its HTTP response at the handler
// boundary; no error propagates past here. Unexpected failures leak
// the underlying message in details, which is acceptable only because
// this service has no security boundary.
func (h *Handlers) respondError(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)

	body := dto.ErrorResponse{Error: appErr.Message}
	if appErr.Status >= 500 {
		h.Logger.Error("Request failed",
			logger.String("path", c.FullPath()),
			logger.Err(err),
		)
		if appErr.Err != nil {
			body.Details = appErr.Err.Error()
		}
	}

	c.JSON(appErr.Status, body)
}
