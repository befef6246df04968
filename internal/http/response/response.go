package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// RespondError writes an error body whose shape mirrors the empty
// success shape: the defaults carry every key a successful response
// would, so clients never need a separate error-shape branch.
func RespondError(c *gin.Context, status int, message string, defaults gin.H) {
	body := gin.H{"error": message}
	for k, v := range defaults {
		body[k] = v
	}
	c.JSON(status, body)
}
