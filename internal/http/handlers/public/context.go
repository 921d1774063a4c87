package public

import (
	"github.com/shopmono/shopmono/internal/http/response"

	"github.com/gin-gonic/gin"
)

// getUserID reads the authenticated user id the middleware stored on
// the context. A missing or mistyped value aborts with 401.
func getUserID(c *gin.Context) (uint, bool) {
	value, ok := c.Get("user_id")
	if !ok {
		response.Unauthorized(c, "authentication required")
		return 0, false
	}
	uid, ok := value.(uint)
	if !ok || uid == 0 {
		response.Unauthorized(c, "authentication required")
		return 0, false
	}
	return uid, true
}
