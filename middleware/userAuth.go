package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	accountRepo "samvidhansetu/database/repository/account"
	"samvidhansetu/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// JWTAuthUserMiddleware authenticates requests with a bearer token. The
// token's hash must match the cached hash for the account; on a cache miss
// the account must still hold an active session, otherwise it has logged out
// and the token is dead even if its signature is valid.
func JWTAuthUserMiddleware(repo accountRepo.AccountRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
					"code":  500,
				})
			}
		}()

		ctx := context.Background()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}

		computedHash := utils.HashToken(tokenString)
		cacheKey := utils.AuthCachePrefix + userID

		authCache := utils.GetAuthCacheClient()
		if authCache == nil {
			zap.L().Warn("Auth cache client not available; falling back to account lookup")
			if acct, err := repo.GetByID(ctx, userID); err != nil || acct == nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error": "Authentication error",
					"code":  0,
				})
				return
			}
			c.Set("userID", userID)
			c.Next()
			return
		}

		cachedHash, err := authCache.Get(ctx, cacheKey).Result()
		if err == nil {
			if cachedHash != computedHash {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error": "Token mismatch",
					"code":  0,
				})
				return
			}
			_ = authCache.Expire(ctx, cacheKey, time.Hour).Err()
			c.Set("userID", userID)
			c.Next()
			return
		}
		if err != redis.Nil {
			zap.L().Warn("Error reading auth cache key", zap.Error(err))
		}

		// Cache miss. The token is only honored while a session is open;
		// logout deletes the session, which revokes every issued token.
		session, sessErr := utils.GetSession(authCache, userID)
		if sessErr != nil || session == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Session expired",
				"code":  0,
			})
			return
		}

		_ = authCache.Set(ctx, cacheKey, computedHash, time.Hour).Err()

		c.Set("userID", userID)
		c.Next()
	}
}
