package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"github.com/cityhail/ride-backend/internal/api/handlers"
	"github.com/cityhail/ride-backend/internal/api/middleware"
)

// Setup registers all routes. The paths and status codes are the
// external contract; there is no versioned prefix.
func Setup(r *gin.Engine, h *handlers.Handlers, nrApp *newrelic.Application, redisClient *redis.Client) {
	r.Use(middleware.CORS())

	if nrApp != nil {
		r.Use(nrgin.Middleware(nrApp))
	}

	if redisClient != nil {
		r.Use(middleware.Idempotency(redisClient))
	}

	// Health check.
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Real-time ride events.
	r.GET("/ws", h.HandleWebSocket)

	// User endpoints.
	r.POST("/users", h.RegisterUser)
	r.GET("/users", h.ListUsers)

	// Ride endpoints.
	rides := r.Group("/rides")
	{
		rides.POST("/request", h.RequestRide)
		rides.GET("", h.ListRides)
		rides.PATCH("/:id/accept", h.AcceptRide)
		rides.PATCH("/:id/complete", h.CompleteRide)
	}
}
