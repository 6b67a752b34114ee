package utils

import "github.com/gin-gonic/gin"

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func JSONError(c *gin.Context, code int, errCode string, message string) {
	c.JSON(code, gin.H{
		"success": false,
		"error": gin.H{
			"code":    errCode,
			"message": message,
		},
	})
}

// JSONWarning carries an advisory result: the operation is permitted but
// needs explicit operator confirmation before resubmission.
func JSONWarning(c *gin.Context, code int, warnCode string, message string, details interface{}) {
	c.JSON(code, gin.H{
		"success": false,
		"warning": gin.H{
			"code":    warnCode,
			"message": message,
			"details": details,
		},
	})
}
