package controller

import (
	"github.com/gin-gonic/gin"
)

// jsonError writes the uniform failure body {"error": msg} with the given
// status.
func jsonError(c *gin.Context, statusCode int, msg string) {
	c.JSON(statusCode, gin.H{"error": msg})
}
