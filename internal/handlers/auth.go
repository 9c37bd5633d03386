package handlers

import (
	"errors"
	"net/http"

	"expense_tracker/internal/service"

	"github.com/gin-gonic/gin"
)

type signUpRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
}

type logInRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type refreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

// @Summary      Register user
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body  signUpRequest  true  "New account"
// @Success      201  {object}  map[string]string  "id, email, message"
// @Failure      400  {object}  map[string]string
// @Router       /auth/signup [post]
func (h *Handler) signUp(c *gin.Context) {
	var req signUpRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	u, err := h.services.SignUp(c.Request.Context(), service.SignUpInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		h.serviceError(c, err, "auth_sign_up_failed", "email", req.Email)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":      u.ID,
		"email":   u.Email,
		"message": "User created successfully",
	})
}

// @Summary      Logs user into the system
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body  logInRequest  true  "Credentials"
// @Success      200  {object}  map[string]interface{}  "data: id, email, tokens"
// @Failure      401  {object}  map[string]string
// @Router       /auth/login [post]
func (h *Handler) logIn(c *gin.Context) {
	var req logInRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	u, pair, err := h.services.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if h.log != nil {
			h.log.Infow("auth_log_in_failed", "email", req.Email)
		}
		h.serviceError(c, err, "auth_log_in_failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"id":    u.ID,
			"email": u.Email,
			"tokens": gin.H{
				"access_token":  pair.AccessToken,
				"refresh_token": pair.RefreshToken,
			},
		},
	})
}

// @Summary      Logs out current logged in user
// @Description  Blacklists the presented refresh token. Logging out twice with the same token is a no-op.
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body  refreshRequest  true  "Refresh token"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /auth/logout [post]
// @Security     BearerAuth
func (h *Handler) logOut(c *gin.Context) {
	var req refreshRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	if err := h.services.Logout(c.Request.Context(), authedUserID(c), req.Refresh); err != nil {
		// A refresh token that doesn't verify or belongs to someone else
		// is a client error. Anything else (e.g. the blacklist store being
		// down) is not the client's fault and goes through serviceError.
		if errors.Is(err, service.ErrInvalidToken) {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid refresh token"})
			return
		}
		h.serviceError(c, err, "auth_log_out_failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"detail": "User logged out successfully"})
}

// @Summary      Refresh token pair
// @Description  Rotates the refresh token: the presented token is revoked and a new pair is issued.
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body  refreshRequest  true  "Refresh token"
// @Success      200  {object}  service.TokenPair
// @Failure      401  {object}  map[string]string
// @Router       /auth/token/refresh [post]
func (h *Handler) refreshToken(c *gin.Context) {
	var req refreshRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	pair, err := h.services.Refresh(c.Request.Context(), req.Refresh)
	if err != nil {
		h.serviceError(c, err, "auth_refresh_failed")
		return
	}

	c.JSON(http.StatusOK, pair)
}
