package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cityhail/ride-backend/internal/api/dto"
	"github.com/cityhail/ride-backend/internal/domain/user"
	"github.com/cityhail/ride-backend/internal/service/users"
	"github.com/cityhail/ride-backend/pkg/logger"
)

// RegisterUser handles POST /users
func (h *Handlers) RegisterUser(c *gin.Context) {
	var req dto.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Missing required user fields",
			Details: err.Error(),
		})
		return
	}

	u, err := h.Users.Register(c.Request.Context(), users.RegisterInput{
		Name:    req.Name,
		Contact: req.Contact,
		Role:    req.Role,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.Logger.Info("User registered",
		logger.String("user_id", u.ID.String()),
		logger.String("role", string(u.Role)),
	)
	h.Monitoring.RecordUserRegistered(string(u.Role))

	c.JSON(http.StatusCreated, dto.CreatedResponse{ID: u.ID})
}

// ListUsers handles GET /users
func (h *Handlers) ListUsers(c *gin.Context) {
	list, err := h.Users.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	if list == nil {
		list = []*user.User{}
	}
	c.JSON(http.StatusOK, list)
}
