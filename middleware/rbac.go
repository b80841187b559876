package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Role names. Staff roles are a closed set checked by membership, not
// hierarchy.
const (
	RoleDevotee = "devotee"
	RoleEO      = "EO"
	RoleClerk   = "Clerk"
	RoleCashier = "Cashier"
	RolePriest  = "Priest"
)

var staffRoles = map[string]bool{
	RoleEO:      true,
	RoleClerk:   true,
	RoleCashier: true,
	RolePriest:  true,
}

// IsStaffRole reports whether the role belongs to the admin side.
func IsStaffRole(role string) bool {
	return staffRoles[role]
}

// RequireDevotee gates routes that need an authenticated devotee.
func RequireDevotee() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := GetClaims(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated", "code": "UNAUTHENTICATED"})
			return
		}
		if claims.Role != RoleDevotee {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "not a devotee", "code": "FORBIDDEN"})
			return
		}
		c.Next()
	}
}

// RequireStaff gates admin routes on the closed staff role set.
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := GetClaims(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated", "code": "UNAUTHENTICATED"})
			return
		}
		if !IsStaffRole(claims.Role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "not an admin", "code": "FORBIDDEN"})
			return
		}
		c.Next()
	}
}
