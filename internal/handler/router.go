package handler

import (
	"github.com/gin-gonic/gin"
)

// Handlers groups the route handlers mounted by RegisterRoutes.
type Handlers struct {
	Pages  *PageHandler
	Rooms  *RoomHandler
	Login  *LoginHandler
	Health *HealthHandler
}

// RegisterRoutes mounts the browser routes at the root and the JSON API under
// apiPrefix. The engine must already have the view templates loaded.
func RegisterRoutes(r *gin.Engine, apiPrefix string, h Handlers) {
	r.GET("/health", h.Health.Health)
	r.GET("/ready", h.Health.Ready)
	r.GET("/metrics", h.Health.Prometheus)

	r.GET("/", h.Pages.Index)
	r.GET("/search-room", h.Rooms.SearchPage)
	r.POST("/login", h.Login.Login)

	api := r.Group(apiPrefix)
	{
		rooms := api.Group("/rooms")
		rooms.GET("/available", h.Rooms.Available)
		rooms.GET("/available/export", h.Rooms.Export)

		api.POST("/auth/login", h.Login.LoginAPI)
	}

	r.NoRoute(h.Pages.Static)
}
