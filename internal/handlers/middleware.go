package handlers

import (
	"errors"
	"net/http"
	"strings"

	"expense_tracker/internal/service"

	"github.com/gin-gonic/gin"
)

const userCtxKey = "userId"

// authMiddleware resolves the bearer access token to a live user id and
// stores it in the Gin context. Missing, malformed, expired and orphaned
// tokens all answer 401; failures looking the user up answer 500.
func (h *Handler) authMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "missing Authorization header",
		})
		return
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid Authorization header format",
		})
		return
	}

	userID, err := h.services.Authenticate(c.Request.Context(), parts[1])
	if err != nil {
		// A user-store failure is not an auth failure; don't report it as one.
		if !errors.Is(err, service.ErrInvalidToken) {
			if h.log != nil {
				h.log.Errorw("auth_middleware_failed", "err", err)
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error": "internal server error",
			})
			return
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid or expired token",
		})
		return
	}

	c.Set(userCtxKey, userID)
	c.Next()
}

// authedUserID returns the user id placed in the context by authMiddleware.
func authedUserID(c *gin.Context) string {
	id, _ := c.Get(userCtxKey)
	s, _ := id.(string)
	return s
}
