package rides

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/cityhail/ride-backend/internal/domain/ride"
	"github.com/cityhail/ride-backend/internal/domain/user"
	apperrors "github.com/cityhail/ride-backend/pkg/errors"
)

// Service handles the ride lifecycle: request, accept, complete, list.
// All state-transition safety comes from the repository's conditional
// write primitives; the service never reads a ride before mutating it.
type Service struct {
	rides ride.Repository
	users user.Repository
}

// NewService creates a new ride service.
func NewService(rides ride.Repository, users user.Repository) *Service {
	return &Service{rides: rides, users: users}
}

// RequestInput contains the parameters for requesting a ride.
type RequestInput struct {
	PassengerID string
	Pickup      string
	Destination string
}

// Request creates a pending ride for a passenger. The passenger
// reference is resolved at write time so no ride can point at a
// non-existent or misrolled user.
func (s *Service) Request(ctx context.Context, in RequestInput) (*ride.Ride, error) {
	if in.PassengerID == "" || in.Pickup == "" || in.Destination == "" {
		return nil, apperrors.Validation("Missing required fields", nil)
	}

	passengerID, err := uuid.Parse(in.PassengerID)
	if err != nil {
		return nil, apperrors.Validation("Invalid passenger id", err)
	}

	passenger, err := s.users.GetByID(ctx, passengerID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, apperrors.ErrPassengerNotFound
		}
		return nil, apperrors.Internal("Failed to resolve passenger", err)
	}
	if passenger.Role != user.RolePassenger {
		return nil, apperrors.ErrPassengerNotFound
	}

	r := &ride.Ride{
		ID:          uuid.New(),
		PassengerID: passengerID,
		Pickup:      in.Pickup,
		Destination: in.Destination,
		Status:      ride.StatusPending,
		AcceptedBy:  nil,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.rides.Create(ctx, r); err != nil {
		return nil, apperrors.Internal("Failed to create ride request", err)
	}

	return r, nil
}

// Accept lets a driver claim a pending ride. The driver reference is
// resolved first; the claim itself is a single conditional write, so
// of two concurrent drivers exactly one succeeds and the other sees
// the not-acceptable conflict.
func (s *Service) Accept(ctx context.Context, rideID, driverID string) error {
	if driverID == "" {
		return apperrors.Validation("Driver id is required", nil)
	}

	rID, err := uuid.Parse(rideID)
	if err != nil {
		return apperrors.Validation("Invalid ride id", err)
	}
	dID, err := uuid.Parse(driverID)
	if err != nil {
		return apperrors.Validation("Invalid driver id", err)
	}

	driver, err := s.users.GetByID(ctx, dID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return apperrors.ErrDriverNotFound
		}
		return apperrors.Internal("Failed to resolve driver", err)
	}
	if driver.Role != user.RoleDriver {
		return apperrors.ErrDriverNotFound
	}

	if err := s.rides.AcceptPending(ctx, rID, dID); err != nil {
		if errors.Is(err, ride.ErrNotFound) {
			return apperrors.ErrRideNotAcceptable
		}
		return apperrors.Internal("Failed to accept ride", err)
	}

	return nil
}

// Complete finishes an accepted ride. No identity check is performed:
// any caller may complete any accepted ride, there is no
// authentication layer in this service.
func (s *Service) Complete(ctx context.Context, rideID string) error {
	rID, err := uuid.Parse(rideID)
	if err != nil {
		return apperrors.Validation("Invalid ride id", err)
	}

	if err := s.rides.CompleteAccepted(ctx, rID); err != nil {
		if errors.Is(err, ride.ErrNotFound) {
			return apperrors.ErrRideNotCompletable
		}
		return apperrors.Internal("Failed to complete ride", err)
	}

	return nil
}

// List returns all rides with passenger and driver names resolved.
func (s *Service) List(ctx context.Context) ([]*ride.WithNames, error) {
	ridesList, err := s.rides.ListWithNames(ctx)
	if err != nil {
		return nil, apperrors.Internal("Failed to list rides", err)
	}
	return ridesList, nil
}
