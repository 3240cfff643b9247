package response

import "github.com/gin-gonic/gin"

// Success writes the uniform envelope with a data payload.
func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

// SuccessMessage writes the uniform envelope with a message and optional data.
func SuccessMessage(c *gin.Context, statusCode int, message string, data interface{}) {
	body := gin.H{
		"success": true,
		"message": message,
	}
	if data != nil {
		body["data"] = data
	}
	c.JSON(statusCode, body)
}

func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"message": message,
	})
}

// ErrorWithCause includes the underlying error text for operator diagnosis.
func ErrorWithCause(c *gin.Context, statusCode int, message string, err error) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"message": message,
		"error":   err.Error(),
	})
}
