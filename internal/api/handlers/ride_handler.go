package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cityhail/ride-backend/internal/api/dto"
	"github.com/cityhail/ride-backend/internal/domain/ride"
	"github.com/cityhail/ride-backend/internal/service/rides"
	"github.com/cityhail/ride-backend/pkg/logger"
	"github.com/cityhail/ride-backend/pkg/websocket"
)

// RequestRide handles POST /rides/request
func (h *Handlers) RequestRide(c *gin.Context) {
	var req dto.RequestRideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Missing required fields",
			Details: err.Error(),
		})
		return
	}

	r, err := h.Rides.Request(c.Request.Context(), rides.RequestInput{
		PassengerID: req.PassengerID,
		Pickup:      req.Pickup,
		Destination: req.Destination,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.Logger.Info("Ride requested",
		logger.String("ride_id", r.ID.String()),
		logger.String("passenger_id", r.PassengerID.String()),
	)
	h.Monitoring.RecordRideRequested(r.ID.String())
	h.Hub.Broadcast(websocket.Message{Type: websocket.EventRideRequested, Data: r})

	c.JSON(http.StatusCreated, dto.CreatedResponse{ID: r.ID})
}

// AcceptRide handles PATCH /rides/:id/accept
func (h *Handlers) AcceptRide(c *gin.Context) {
	rideID := c.Param("id")

	var req dto.AcceptRideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Driver id is required",
			Details: err.Error(),
		})
		return
	}

	if err := h.Rides.Accept(c.Request.Context(), rideID, req.DriverID); err != nil {
		h.respondError(c, err)
		return
	}

	h.Logger.Info("Ride accepted",
		logger.String("ride_id", rideID),
		logger.String("driver_id", req.DriverID),
	)
	h.Monitoring.RecordRideAccepted(rideID, req.DriverID)
	h.Hub.Broadcast(websocket.Message{Type: websocket.EventRideAccepted, Data: gin.H{
		"rideId":   rideID,
		"driverId": req.DriverID,
	}})

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Ride accepted successfully"})
}

// CompleteRide handles PATCH /rides/:id/complete
func (h *Handlers) CompleteRide(c *gin.Context) {
	rideID := c.Param("id")

	if err := h.Rides.Complete(c.Request.Context(), rideID); err != nil {
		h.respondError(c, err)
		return
	}

	h.Logger.Info("Ride completed", logger.String("ride_id", rideID))
	h.Monitoring.RecordRideCompleted(rideID)
	h.Hub.Broadcast(websocket.Message{Type: websocket.EventRideCompleted, Data: gin.H{
		"rideId": rideID,
	}})

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Ride completed successfully"})
}

// ListRides handles GET /rides
func (h *Handlers) ListRides(c *gin.Context) {
	list, err := h.Rides.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	if list == nil {
		list = []*ride.WithNames{}
	}
	c.JSON(http.StatusOK, list)
}
