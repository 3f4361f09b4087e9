package router

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mlefevre/boutique-api/pkg/global"
)

// RequestID tags every request with an id, honoring one supplied by the
// caller, and echoes it back in the X-Request-ID header.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// ErrorHandler converts errors attached by handlers into the JSON error
// body. An *global.HTTPError answers with its own status; anything else
// is logged and answered with a generic 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var httpErr *global.HTTPError
		if errors.As(err, &httpErr) {
			c.JSON(httpErr.Status, httpErr)
			return
		}

		log.Printf("unhandled error on %s %s (request %s): %v",
			c.Request.Method, c.Request.URL.Path, c.GetString("request_id"), err)
		c.JSON(http.StatusInternalServerError, global.Internal("internal server error"))
	}
}
