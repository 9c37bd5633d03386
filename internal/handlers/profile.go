package handlers

import (
	"net/http"

	"expense_tracker/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type profileUpdateRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Username  string `json:"username" binding:"required"`
}

// @Summary      Get user by user ID
// @Tags         user
// @Produce      json
// @Param        userID  path  string  true  "User ID"
// @Success      200  {object}  models.User
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /auth/user/{userID}/profile [get]
// @Security     BearerAuth
func (h *Handler) getProfile(c *gin.Context) {
	targetID := c.Param("userID")
	if _, err := uuid.Parse(targetID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid user ID"})
		return
	}

	u, err := h.services.GetProfile(c.Request.Context(), authedUserID(c), targetID)
	if err != nil {
		h.serviceError(c, err, "profile_get_failed", "target", targetID)
		return
	}

	c.JSON(http.StatusOK, u)
}

// @Summary      Update user
// @Description  This can only be done by the logged in user. Email stays unchanged.
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        userID  path  string                true  "User ID"
// @Param        body    body  profileUpdateRequest  true  "Profile fields"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /auth/user/{userID}/profile [put]
// @Security     BearerAuth
func (h *Handler) updateProfile(c *gin.Context) {
	targetID := c.Param("userID")
	if _, err := uuid.Parse(targetID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid user ID"})
		return
	}

	var req profileUpdateRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	_, err := h.services.UpdateProfile(c.Request.Context(), authedUserID(c), targetID, service.ProfileUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
	})
	if err != nil {
		h.serviceError(c, err, "profile_update_failed", "target", targetID)
		return
	}

	c.JSON(http.StatusOK, gin.H{"detail": "User details updated successfully!"})
}
