package authorization

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fieldserve/internal/shared/constants"
	"fieldserve/internal/shared/utils"
)

// RoleFromContext extracts the authenticated user's role set by the auth middleware.
func RoleFromContext(c *gin.Context) UserRole {
	raw, ok := c.Get(constants.ContextKeyUserRole)
	if !ok {
		return ""
	}
	s, ok := raw.(string)
	if !ok {
		return ""
	}
	return UserRole(s)
}

// RequireAdmin rejects the request unless the authenticated user is an admin.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !RoleFromContext(c).IsAdmin() {
			utils.ErrorResponse(c, http.StatusForbidden, "admin access required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireManager rejects the request unless the user is an admin or manager.
func RequireManager() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !RoleFromContext(c).CanManage() {
			utils.ErrorResponse(c, http.StatusForbidden, "manager access required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireRoles rejects the request unless the user has one of the given roles.
// Admins always pass.
func RequireRoles(roles ...UserRole) gin.HandlerFunc {
	allowed := make(map[UserRole]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		role := RoleFromContext(c)
		if role.IsAdmin() || allowed[role] {
			c.Next()
			return
		}
		utils.ErrorResponse(c, http.StatusForbidden, "insufficient role")
		c.Abort()
	}
}
