package response

import (
	"github.com/gin-gonic/gin"
)

// Wire shapes match what the admin client expects:
// errors are {"message": ...}, auth failures carry {"success": false}.

// Message writes a plain {"message": ...} body.
func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"message": message})
}

// BadRequest writes a 400 with a descriptive message.
func BadRequest(c *gin.Context, message string) {
	Message(c, 400, message)
}

// Unauthorized writes a 401 {"success": false, "message": ...} and aborts.
func Unauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(401, gin.H{
		"success": false,
		"message": message,
	})
}

// InternalServerError writes a 500 with a generic message.
func InternalServerError(c *gin.Context, message string) {
	Message(c, 500, message)
}
