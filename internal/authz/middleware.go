package authz

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/learnloop/academy/internal/auth"
)

// RequireAdmin must run after auth.Authenticator.Required. It answers 401
// without identity and 403 for a non-admin, never reaching the handler.
func RequireAdmin(p Policy) gin.HandlerFunc {
	log := zap.S().Named("authz")

	return func(c *gin.Context) {
		learner, ok := auth.FromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		isAdmin, err := p.IsAdmin(c.Request.Context(), learner.UserID)
		if err != nil {
			log.Errorw("admin lookup failed", "user_id", learner.UserID, "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		if !isAdmin {
			log.Infow("admin access denied", "user_id", learner.UserID, "path", c.FullPath())
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}

		c.Next()
	}
}
