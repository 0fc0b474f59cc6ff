// middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	"wellnest/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by JWTAuthMiddleware.
const (
	ContextUserID         = "userID"
	ContextRole           = "role"
	ContextProfessionalID = "professionalID"
)

// JWTAuthMiddleware validates the bearer token and, when roles are given,
// requires the token's role to be one of them.
func JWTAuthMiddleware(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		if len(roles) > 0 && !hasRole(claims.Role, roles) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextRole, claims.Role)
		c.Set(ContextProfessionalID, claims.ProfessionalID)
		c.Next()
	}
}

func hasRole(role string, allowed []string) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}

// ProfessionalOwnerMiddleware lets a professional reach only their own
// resources under :paramName. Admins pass through.
func ProfessionalOwnerMiddleware(paramName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextRole) == utils.RoleAdmin {
			c.Next()
			return
		}
		if c.GetString(ContextProfessionalID) == "" || c.GetString(ContextProfessionalID) != c.Param(paramName) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access to this professional is not allowed"})
			return
		}
		c.Next()
	}
}
