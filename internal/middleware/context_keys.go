package middleware

import "github.com/gin-gonic/gin"

const userIDKey = contextKey("userID")
const adminKey = contextKey("isAdmin")

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userIDVal := c.Request.Context().Value(userIDKey)
	if userIDVal == nil {
		return "", false
	}
	userID, ok := userIDVal.(string)
	if !ok {
		return "", false
	}
	return userID, true
}

// IsAdminFromContext reports whether the authenticated user carries the
// admin claim.
func IsAdminFromContext(c *gin.Context) bool {
	adminVal := c.Request.Context().Value(adminKey)
	admin, ok := adminVal.(bool)
	return ok && admin
}
