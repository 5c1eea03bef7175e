package middleware

import (
	"log/slog"
	"net/http"

	"entitlement-engine/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler logs the cause behind every public error body and writes a
// body for handlers that recorded an error without responding.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Newest error wins
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]
			if !err.IsType(gin.ErrorTypePublic) {
				continue
			}
			resp, ok := err.Meta.(httperr.Response)
			if !ok {
				continue
			}

			logPublicError(c, resp, err.Err)
			if !c.Writer.Written() {
				c.JSON(resp.Status, resp)
			}
			return
		}

		if c.Writer.Written() {
			return
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		if len(c.Errors) > 0 {
			slog.Error("unhandled request error", "error", c.Errors.Last().Err, "request_id", GetRequestID(c))
			c.JSON(http.StatusInternalServerError, httperr.Internal())
		}
	}
}

func logPublicError(c *gin.Context, resp httperr.Response, cause error) {
	attrs := []any{
		"code", resp.Error.Code,
		"status", resp.Status,
		"path", c.FullPath(),
		"request_id", GetRequestID(c),
	}
	if resp.Status >= http.StatusInternalServerError {
		slog.Error("request failed", append(attrs, "error", cause)...)
		return
	}
	slog.Debug("request rejected", append(attrs, "error", cause)...)
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("recovered from panic",
					"error", rec,
					"path", c.Request.URL.Path,
					"request_id", GetRequestID(c),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, httperr.Internal())
			}
		}()
		c.Next()
	}
}
