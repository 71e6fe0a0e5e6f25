package response

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"insight-srv/pkg/discord"
	pkgErrors "insight-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

// OK writes a 200 response with the standard envelope.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: 0,
		Message:   "Success",
		Data:      data,
	})
}

// Error writes an error response. HTTPError values keep their status code
// and message; anything else becomes a 500 and is reported to Discord
// when a webhook is configured.
func Error(c *gin.Context, err error, d discord.IDiscord) {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		c.JSON(httpErr.StatusCode, Resp{
			ErrorCode: httpErr.StatusCode,
			Message:   httpErr.Message,
		})
		return
	}

	if d != nil {
		_ = d.SendError(context.Background(), "Internal Server Error",
			fmt.Sprintf("%s %s", c.Request.Method, c.Request.URL.Path), err)
	}

	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   "Internal server error",
	})
}

// ErrorWithMap resolves err through the mapping before writing the response.
func ErrorWithMap(c *gin.Context, err error, mapping ErrorMapping, d discord.IDiscord) {
	for domainErr, httpErr := range mapping {
		if errors.Is(err, domainErr) {
			Error(c, httpErr, d)
			return
		}
	}
	Error(c, err, d)
}

// Unauthorized writes a 401 response.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Resp{
		ErrorCode: http.StatusUnauthorized,
		Message:   "Unauthorized",
	})
}

// PanicError writes a 500 response for a recovered panic and reports it.
func PanicError(c *gin.Context, recovered any, d discord.IDiscord) {
	if d != nil {
		_ = d.SendError(context.Background(), "Panic Recovered",
			fmt.Sprintf("%s %s", c.Request.Method, c.Request.URL.Path),
			fmt.Errorf("%v", recovered))
	}
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   "Internal server error",
	})
}
