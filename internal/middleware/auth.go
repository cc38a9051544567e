package middleware

import (
	"net/http"
	"strings"

	"github.com/decklab-dev/decklab/internal/auth"
	"github.com/decklab-dev/decklab/internal/types"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the Bearer token and stores the owner identifier in
// the request context. Nothing downstream runs without one: an absent or
// invalid identity means deny all, never a default identifier.
func AuthMiddleware() gin.HandlerFunc {
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

		ownerID, err := auth.VerifyJWT(parts[1])

		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		ctx.Set(types.ContextOwnerKey, ownerID)
		ctx.Next()
	}
}
