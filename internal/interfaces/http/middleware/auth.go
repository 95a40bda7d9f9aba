package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fieldserve/internal/application/user/usecases"
	"fieldserve/internal/shared/constants"
	"fieldserve/internal/shared/logger"
	"fieldserve/internal/shared/utils"
)

// AuthMiddleware validates bearer tokens and stores the authenticated
// identity in the request context.
type AuthMiddleware struct {
	tokens usecases.TokenService
	logger logger.Interface
}

func NewAuthMiddleware(tokens usecases.TokenService, log logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		tokens: tokens,
		logger: log.Named("auth"),
	}
}

// RequireAuth rejects requests without a valid Authorization header.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "authorization header required")
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := m.tokens.ValidateToken(parts[1])
		if err != nil {
			m.logger.Warnw("token validation failed", "error", err, "path", c.Request.URL.Path)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, claims.UserID)
		c.Set(constants.ContextKeyUserRole, claims.Role)
		c.Next()
	}
}

// UserIDFromContext extracts the authenticated user ID set by RequireAuth.
func UserIDFromContext(c *gin.Context) (uint, bool) {
	raw, ok := c.Get(constants.ContextKeyUserID)
	if !ok {
		return 0, false
	}
	id, ok := raw.(uint)
	return id, ok
}
