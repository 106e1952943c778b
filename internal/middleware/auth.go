package middleware

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/librarium-dev/librarium/internal/auth"
	"github.com/librarium-dev/librarium/internal/types"
	"gorm.io/gorm"
)

// AuthMiddleware resolves the bearer token to a user through the token
// directory. The is_active flag is re-checked on every request, so blocking
// a user cuts off their existing tokens immediately.
func AuthMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")

		if authHeader == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization token is required"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)

		if len(parts) != 2 || parts[0] != "Bearer" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		user, err := auth.ResolveToken(db, parts[1])

		if err != nil {
			if errors.Is(err, auth.ErrUnauthenticated) {
				ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Could not validate credentials"})
				return
			}
			log.Printf("Database error when resolving token: %v", err)
			ctx.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		if !user.IsActive {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Inactive user"})
			return
		}

		ctx.Set(types.ContextUserKey, user)
		ctx.Next()
	}
}
