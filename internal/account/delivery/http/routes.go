package http

import (
	"insight-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/accounts")
	api.Use(mw.Auth())
	{
		api.POST("", h.Connect)
		api.GET("", h.GetList)
		api.GET("/:account_id", h.GetDetail)
		api.POST("/:account_id/refresh", h.RefreshProfile)
		api.DELETE("/:account_id", h.Disconnect)
	}
}
