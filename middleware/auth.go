package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/cheruvugattu/temple-booking-backend/config"
)

// TokenClaims is what the Identity Gate asserts: who is asking, with what role.
type TokenClaims struct {
	Subject string
	Name    string
	Mobile  string
	Role    string
}

func parseBearerToken(c *gin.Context, secret string) (*TokenClaims, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, jwt.ErrTokenMalformed
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, jwt.ErrTokenMalformed
	}

	token, err := jwt.Parse(parts[1], func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}

	tc := &TokenClaims{}
	if sub, ok := claims["sub"].(string); ok {
		tc.Subject = sub
	}
	if name, ok := claims["name"].(string); ok {
		tc.Name = name
	}
	if mobile, ok := claims["mobile"].(string); ok {
		tc.Mobile = mobile
	}
	if role, ok := claims["role"].(string); ok {
		tc.Role = role
	}
	if tc.Subject == "" || tc.Role == "" {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return tc, nil
}

// AuthMiddleware verifies the bearer token and stores the claims in context.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := parseBearerToken(c, cfg.JWTSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid token", "code": "UNAUTHENTICATED"})
			return
		}
		c.Set("claims", claims)
		c.Next()
	}
}

// OptionalAuth parses a token when one is present but never rejects the
// request. Donations accept anonymous contributors.
func OptionalAuth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, err := parseBearerToken(c, cfg.JWTSecret); err == nil {
			c.Set("claims", claims)
		}
		c.Next()
	}
}

// GetClaims returns the verified claims set by AuthMiddleware, if any.
func GetClaims(c *gin.Context) (*TokenClaims, bool) {
	val, exists := c.Get("claims")
	if !exists {
		return nil, false
	}
	claims, ok := val.(*TokenClaims)
	return claims, ok
}
