package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/smsdesk/smsdesk/internal/auth"
	"github.com/smsdesk/smsdesk/internal/cache"
	"github.com/smsdesk/smsdesk/internal/domain/user"
	"github.com/smsdesk/smsdesk/internal/logger"
	"github.com/smsdesk/smsdesk/internal/types"
)

const userCachePrefix = "auth:user:"

func unauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, types.NewFailureResult(message, "/login"))
}

// AuthenticateMiddleware validates the bearer token and puts the caller's
// user id and roles in the request context for downstream handlers.
func AuthenticateMiddleware(
	provider auth.Provider,
	users user.Repository,
	userCache *cache.InMemoryCache,
	logger *logger.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(types.HeaderAuthorization)
		if authHeader == "" {
			unauthorized(c, "Unauthorized")
			return
		}

		// Check if the authorization header is in the correct format
		if !strings.HasPrefix(authHeader, "Bearer ") {
			unauthorized(c, "Invalid authorization header format")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := provider.ValidateToken(c.Request.Context(), tokenString)
		if err != nil {
			logger.Debugw("failed to validate token", "error", err)
			unauthorized(c, "Invalid token")
			return
		}

		if claims == nil || claims.UserID == "" {
			unauthorized(c, "Invalid token claims")
			return
		}

		u, err := loadUser(c.Request.Context(), users, userCache, claims.UserID)
		if err != nil {
			logger.Debugw("token user not found", "user_id", claims.UserID, "error", err)
			unauthorized(c, "Invalid token")
			return
		}

		ctx := c.Request.Context()
		ctx = types.SetUserID(ctx, u.ID)
		ctx = types.SetRoles(ctx, u.Roles())
		ctx = types.SetJWT(ctx, tokenString)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func loadUser(ctx context.Context, users user.Repository, userCache *cache.InMemoryCache, id string) (*user.User, error) {
	key := userCachePrefix + id
	if v, ok := userCache.Get(ctx, key); ok {
		if u, ok := v.(*user.User); ok {
			return u, nil
		}
	}

	u, err := users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	userCache.Set(ctx, key, u)
	return u, nil
}
