package http

import (
	"insight-srv/internal/comparison"
	"insight-srv/internal/middleware"
	"insight-srv/pkg/discord"
	"insight-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - Interface for the comparison HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      comparison.UseCase
	discord discord.IDiscord
}

// New - Factory
func New(l log.Logger, uc comparison.UseCase, discord discord.IDiscord) Handler {
	return &handler{l: l, uc: uc, discord: discord}
}
