package dto

import "github.com/google/uuid"

// RegisterUserRequest represents a request to register a user.
type RegisterUserRequest struct {
	Name    string `json:"name" binding:"required"`
	Contact string `json:"contact" binding:"required"`
	Role    string `json:"role" binding:"required,oneof=passenger driver"`
}

// RequestRideRequest represents a passenger requesting a ride.
type RequestRideRequest struct {
	PassengerID string `json:"passengerId" binding:"required"`
	Pickup      string `json:"pickup" binding:"required"`
	Destination string `json:"destination" binding:"required"`
}

// AcceptRideRequest represents a driver claiming a pending ride.
type AcceptRideRequest struct {
	DriverID string `json:"driverId" binding:"required"`
}

// CreatedResponse carries the identifier of a newly created record.
type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

// MessageResponse carries a confirmation message with no data.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every failure response. Details is
// set only for unexpected failures.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
