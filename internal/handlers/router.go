package handlers

import (
	"logistics_dashboard/internal/obs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// RequestID reuses the caller's X-Request-ID or assigns a new one, and stores
// it on the request context for obs.Time.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Request = c.Request.WithContext(obs.WithRequestID(c.Request.Context(), id))
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// NewRouter wires every dashboard endpoint onto a gin engine.
func NewRouter(h *APIHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), RequestID())

	api := router.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/dashboard", h.Dashboard)

		api.GET("/orders", h.ListOrders)
		api.GET("/orders/:id", h.GetOrder)

		api.GET("/inventory", h.ListInventory)
		api.GET("/inventory/:id", h.GetInventoryItem)

		api.GET("/routes", h.ListRoutes)
		api.GET("/routes/:id", h.GetRoute)

		api.POST("/auth/signup", h.SignUp)
		api.POST("/auth/login", h.Login)
		api.POST("/auth/logout", h.Logout)
		api.GET("/profile", h.Profile)
	}

	return router
}
