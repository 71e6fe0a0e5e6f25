package http

import (
	"insight-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/accounts")
	api.Use(mw.Auth())
	{
		api.GET("/:account_id/dashboard", h.GetDashboard)
		api.GET("/:account_id/media", h.GetMediaList)
		api.GET("/:account_id/media/:media_id/insights", h.GetMediaInsights)
		api.GET("/:account_id/top-content", h.GetTopContent)
		api.POST("/:account_id/sync", h.RequestSync)
	}
}
