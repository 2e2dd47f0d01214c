package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/sanctumos/clawedroad/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

var internalError = httperr.New(http.StatusInternalServerError, httperr.CodeInternal, "Internal server error")

// ErrorHandler renders errors that a handler recorded without writing a
// response. The newest public error wins.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}
		for i := len(c.Errors) - 1; i >= 0; i-- {
			if resp, ok := c.Errors[i].Meta.(httperr.Response); ok && c.Errors[i].IsType(gin.ErrorTypePublic) {
				c.JSON(resp.Status, resp)
				return
			}
		}

		slog.Error("handler error without response",
			"errors", c.Errors.String(),
			"request_id", GetRequestID(c))
		c.JSON(internalError.Status, internalError)
	}
}

// CustomRecovery turns a panic into a 500 with the standard error body. It
// must be the outermost middleware.
func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			slog.Error("recovered from panic",
				"panic", fmt.Sprint(rec),
				"route", c.FullPath(),
				"path", c.Request.URL.Path,
				"request_id", GetRequestID(c),
				"stack", string(debug.Stack()))
			if !c.Writer.Written() {
				c.JSON(internalError.Status, internalError)
			}
			c.Abort()
		}()
		c.Next()
	}
}
