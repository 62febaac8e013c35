// README: Base handler utilities (JSON helpers, error envelope).
package handlers

import "github.com/gin-gonic/gin"

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

// writeError reports a client-facing failure. Only input errors ever reach
// here; upstream failures are absorbed before the handler sees them.
func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Success: false, Error: msg})
}
