package ride

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Status represents ride status. The only transitions are
// pending -> accepted -> completed; there is no cancellation and no
// way out of completed.
type Status string

const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusCompleted Status = "completed"
)

// Ride is a transportation request. AcceptedBy is nil exactly while
// the ride is pending.
type Ride struct {
	ID          uuid.UUID  `json:"id"`
	PassengerID uuid.UUID  `json:"passengerId"`
	Pickup      string     `json:"pickup"`
	Destination string     `json:"destination"`
	Status      Status     `json:"status"`
	AcceptedBy  *uuid.UUID `json:"acceptedBy"`
	CreatedAt   time.Time  `json:"createdAt"`
	AcceptedAt  *time.Time `json:"acceptedAt,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// WithNames is a ride augmented with resolved user names for list
// reads. DriverName is nil while AcceptedBy is nil.
type WithNames struct {
	Ride
	PassengerName string  `json:"passengerName"`
	DriverName    *string `json:"driverName"`
}

// Repository defines the persistence operations for rides.
//
// AcceptPending and CompleteAccepted are single conditional writes:
// the status precondition and the mutation are one atomic statement
// against the store. Implementations must never read-then-write, or
// two concurrent drivers could both claim one pending ride. Both
// return ErrNotFound when zero records were affected, which covers an
// absent ride as well as one in the wrong state.
type Repository interface {
	Create(ctx context.Context, r *Ride) error
	GetByID(ctx context.Context, id uuid.UUID) (*Ride, error)
	AcceptPending(ctx context.Context, rideID, driverID uuid.UUID) error
	CompleteAccepted(ctx context.Context, rideID uuid.UUID) error
	ListWithNames(ctx context.Context) ([]*WithNames, error)
}

// ErrNotFound is returned when a lookup misses or a conditional
// update affected zero records.
var ErrNotFound = errors.New("ride not found")
