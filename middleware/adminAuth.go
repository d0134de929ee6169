package middleware

import (
	"net/http"

	accountRepo "samvidhansetu/database/repository/account"

	"github.com/gin-gonic/gin"
)

// AdminRoleMiddleware gates a route group to admin accounts. It must run
// after JWTAuthUserMiddleware, which sets the userID in context.
func AdminRoleMiddleware(repo accountRepo.AccountRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("userID")
		userID, ok := userIDVal.(string)
		if !exists || !ok || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}

		account, err := repo.GetByID(c.Request.Context(), userID)
		if err != nil || account == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication error",
				"code":  0,
			})
			return
		}
		if !account.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Admin access required",
				"code":  0,
			})
			return
		}

		c.Next()
	}
}
