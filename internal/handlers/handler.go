package handlers

import (
	"errors"
	"net/http"

	"expense_tracker/internal/logger"
	"expense_tracker/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	h.registerAuthRoutes(router)
	h.registerFinanceRoutes(router)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/signup", h.signUp)
		auth.POST("/login", h.logIn)
		auth.POST("/token/refresh", h.refreshToken)

		auth.POST("/logout", h.authMiddleware, h.logOut)
		auth.GET("/user/:userID/profile", h.authMiddleware, h.getProfile)
		auth.PUT("/user/:userID/profile", h.authMiddleware, h.updateProfile)
	}
}

func (h *Handler) registerFinanceRoutes(r *gin.Engine) {
	user := r.Group("/user", h.authMiddleware)
	{
		income := user.Group("/income")
		{
			income.GET("", h.listIncome)
			income.POST("", h.createIncome)
			income.GET("/:id", h.getIncome)
			income.PUT("/:id", h.updateIncome)
			income.DELETE("/:id", h.deleteIncome)
		}
		expenditure := user.Group("/expenditure")
		{
			expenditure.GET("", h.listExpenditure)
			expenditure.POST("", h.createExpenditure)
			expenditure.GET("/:id", h.getExpenditure)
			expenditure.PUT("/:id", h.updateExpenditure)
			expenditure.DELETE("/:id", h.deleteExpenditure)
		}
	}
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// bindJSONOrBadRequest tries to bind the request body into dst and writes a 400 JSON on failure.
// Returns false if the request was already handled, true otherwise.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("bad_request_body", "path", c.FullPath(), "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// serviceError translates domain errors into HTTP responses. Anything outside
// the known taxonomy is logged and hidden behind a generic 500.
func (h *Handler) serviceError(c *gin.Context, err error, logKey string, kv ...interface{}) {
	switch {
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
	default:
		if h.log != nil {
			fields := append([]interface{}{"err", err}, kv...)
			h.log.Errorw(logKey, fields...)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
