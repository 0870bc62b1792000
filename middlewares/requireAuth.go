package middlewares

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	msgAuthRequired   = "Authentication required"
	msgSessionExpired = "Session expired. Please log in again."
)

// RequireAuth validates the bearer token and stores its claims under "user"
// and the numeric user id under "userId".
func RequireAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString, found := strings.CutPrefix(ctx.GetHeader("Authorization"), "Bearer ")
		if !found || strings.TrimSpace(tokenString) == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msgAuthRequired})
			return
		}

		token, err := jwt.Parse(strings.TrimSpace(tokenString), func(token *jwt.Token) (any, error) {
			return []byte(os.Getenv("JWT_SECRET")), nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msgSessionExpired})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msgSessionExpired})
			return
		}
		userID, ok := claims["user_id"].(float64)
		if !ok || userID < 1 {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msgSessionExpired})
			return
		}

		ctx.Set("user", claims)
		ctx.Set("userId", uint(userID))
		ctx.Next()
	}
}
