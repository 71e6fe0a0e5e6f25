package http

import (
	"insight-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/accounts")
	api.Use(mw.Auth())
	{
		api.GET("/:account_id/insights/summary", h.GetSummary)
	}
}
