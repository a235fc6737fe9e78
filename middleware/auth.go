package middleware

import (
	"net/http"
	"strings"

	"evently/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthMiddleware validates the bearer token and stores the requester's
// staff id and role on the context. Token issuance belongs to the identity
// service; this core only verifies.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.APIResponse{
				Success: false,
				Error:   "Missing or invalid Authorization header",
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.APIResponse{
				Success: false,
				Error:   "Invalid or expired token",
			})
			return
		}

		c.Set("staffID", claims.StaffID)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// AdminOnly rejects requests whose token does not carry the admin role. Must
// run after JWTAuthMiddleware.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get("role")
		if r, ok := role.(string); !ok || r != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, utils.APIResponse{
				Success: false,
				Error:   "Admin access required",
			})
			return
		}
		c.Next()
	}
}
