package middleware

import (
	"insight-srv/pkg/locale"

	"github.com/gin-gonic/gin"
)

// Locale extracts the locale from the request header and stores it in context.
func (m Middleware) Locale() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := locale.ParseLang(c.GetHeader("lang"))

		ctx := c.Request.Context()
		ctx = locale.SetLocaleToContext(ctx, lang)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
