package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lilad25/intranet-portal/internal/core/domain"
	"github.com/lilad25/intranet-portal/internal/core/routing"
)

// AccountResolver resolves an account id to its account. Satisfied by the
// auth service facade.
type AccountResolver interface {
	AccountByID(ctx context.Context, accountID string) (*domain.Account, error)
}

// AdminRequired gates admin-only routes. It must run after AuthMiddleware.
// Non-admin sessions get the same denial message the navigation resolver
// produces.
func AdminRequired(resolver AccountResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		accountID, ok := GetAccountIDFromContext(c)
		if !ok {
			logger.Error("Account ID not found in context on admin route")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		account, err := resolver.AccountByID(c.Request.Context(), accountID)
		if err != nil {
			logger.Warn("Session account no longer exists")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		if account.Role != domain.RoleAdmin {
			logger.Warn("Non-admin account on admin route")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": routing.AccessDeniedMessage})
			return
		}

		c.Next()
	}
}
