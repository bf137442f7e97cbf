package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/cityhail/ride-backend/internal/domain/ride"
)

// RideRepository is a PostgreSQL implementation of ride.Repository.
type RideRepository struct {
	q Querier
}

// NewRideRepository creates a new PostgreSQL ride repository.
func NewRideRepository(db *sql.DB) *RideRepository {
	return &RideRepository{q: db}
}

// Create persists a new ride.
func (r *RideRepository) Create(ctx context.Context, rd *ride.Ride) error {
	query := `
		INSERT INTO rides (id, passenger_id, pickup, destination, status, accepted_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	var acceptedBy sql.NullString
	if rd.AcceptedBy != nil {
		acceptedBy = sql.NullString{String: rd.AcceptedBy.String(), Valid: true}
	}

	_, err := r.q.ExecContext(ctx, query,
		rd.ID,
		rd.PassengerID,
		rd.Pickup,
		rd.Destination,
		rd.Status,
		acceptedBy,
		rd.CreatedAt,
	)
	return err
}

// GetByID retrieves a ride by ID.
func (r *RideRepository) GetByID(ctx context.Context, id uuid.UUID) (*ride.Ride, error) {
	query := `
		SELECT id, passenger_id, pickup, destination, status, accepted_by, created_at, accepted_at, completed_at
		FROM rides WHERE id = $1
	`

	rd, err := scanRide(r.q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ride.ErrNotFound
		}
		return nil, err
	}
	return rd, nil
}

// AcceptPending transitions a ride from pending to accepted in one
// conditional UPDATE. The status check in the WHERE clause makes the
// claim atomic: of two concurrent drivers, exactly one statement
// affects a row. Zero affected rows means the ride is absent or no
// longer pending, reported uniformly as ride.ErrNotFound.
func (r *RideRepository) AcceptPending(ctx context.Context, rideID, driverID uuid.UUID) error {
	query := `
		UPDATE rides
		SET status = $1, accepted_by = $2, accepted_at = NOW()
		WHERE id = $3 AND status = $4
	`

	result, err := r.q.ExecContext(ctx, query, ride.StatusAccepted, driverID, rideID, ride.StatusPending)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ride.ErrNotFound
	}

	return nil
}

// CompleteAccepted transitions a ride from accepted to completed,
// with the same conditional-update contract as AcceptPending.
func (r *RideRepository) CompleteAccepted(ctx context.Context, rideID uuid.UUID) error {
	query := `
		UPDATE rides
		SET status = $1, completed_at = NOW()
		WHERE id = $2 AND status = $3
	`

	result, err := r.q.ExecContext(ctx, query, ride.StatusCompleted, rideID, ride.StatusAccepted)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ride.ErrNotFound
	}

	return nil
}

// ListWithNames retrieves all rides with passenger and driver names
// resolved in a single read-side join. No ORDER BY: callers get the
// store's natural order.
func (r *RideRepository) ListWithNames(ctx context.Context) ([]*ride.WithNames, error) {
	query := `
		SELECT r.id, r.passenger_id, r.pickup, r.destination, r.status,
		       r.accepted_by, r.created_at, r.accepted_at, r.completed_at,
		       p.name AS passenger_name, d.name AS driver_name
		FROM rides r
		JOIN users p ON r.passenger_id = p.id
		LEFT JOIN users d ON r.accepted_by = d.id
	`

	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rides []*ride.WithNames
	for rows.Next() {
		var (
			rd          ride.WithNames
			acceptedBy  sql.NullString
			acceptedAt  sql.NullTime
			completedAt sql.NullTime
			driverName  sql.NullString
		)

		if err := rows.Scan(
			&rd.ID,
			&rd.PassengerID,
			&rd.Pickup,
			&rd.Destination,
			&rd.Status,
			&acceptedBy,
			&rd.CreatedAt,
			&acceptedAt,
			&completedAt,
			&rd.PassengerName,
			&driverName,
		); err != nil {
			return nil, err
		}

		if acceptedBy.Valid {
			id, err := uuid.Parse(acceptedBy.String)
			if err != nil {
				return nil, err
			}
			rd.AcceptedBy = &id
		}
		if acceptedAt.Valid {
			rd.AcceptedAt = &acceptedAt.Time
		}
		if completedAt.Valid {
			rd.CompletedAt = &completedAt.Time
		}
		if driverName.Valid {
			rd.DriverName = &driverName.String
		}

		rides = append(rides, &rd)
	}
	return rides, rows.Err()
}

// scanRide scans a single ride row with its nullable columns.
func scanRide(row *sql.Row) (*ride.Ride, error) {
	var (
		rd          ride.Ride
		acceptedBy  sql.NullString
		acceptedAt  sql.NullTime
		completedAt sql.NullTime
	)

	err := row.Scan(
		&rd.ID,
		&rd.PassengerID,
		&rd.Pickup,
		&rd.Destination,
		&rd.Status,
		&acceptedBy,
		&rd.CreatedAt,
		&acceptedAt,
		&completedAt,
	)
	if err != nil {
		return nil, err
	}

	if acceptedBy.Valid {
		id, err := uuid.Parse(acceptedBy.String)
		if err != nil {
			return nil, err
		}
		rd.AcceptedBy = &id
	}
	if acceptedAt.Valid {
		rd.AcceptedAt = &acceptedAt.Time
	}
	if completedAt.Valid {
		rd.CompletedAt = &completedAt.Time
	}

	return &rd, nil
}
