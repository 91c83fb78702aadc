package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminChecker answers whether an identity currently holds the admin
// role. Implementations must fail closed: any lookup error reports
// false.
type AdminChecker interface {
	IsAdmin(userID string) bool
}

// RequireAdmin guards administrative routes. The token's role claim is
// a fast pre-filter; the authoritative check re-reads the role
// assignment from the store on every request, so a revoked admin loses
// access as soon as their role row is deleted, not when their token
// expires.
func RequireAdmin(checker AdminChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
			c.Abort()
			return
		}

		role, exists := c.Get("userRole")
		if !exists {
			c.JSON(http.StatusForbidden, gin.H{"error": "User role not found in token"})
			c.Abort()
			return
		}

		userRole, ok := role.(string)
		if !ok || userRole != "admin" {
			c.JSON(http.StatusForbidden, gin.H{
				"error":         "Insufficient permissions",
				"required_role": "admin",
				"user_role":     role,
			})
			c.Abort()
			return
		}

		id, ok := userID.(string)
		if !ok || !checker.IsAdmin(id) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin role no longer assigned"})
			c.Abort()
			return
		}

		c.Next()
	}
}
