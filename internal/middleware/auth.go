package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"docvault/internal/config"
	"docvault/internal/domain"
)

// ContextKeyPrincipal is the gin context key holding the authenticated
// principal identifier.
const ContextKeyPrincipal = "principal"

// Auth returns Gin middleware that verifies the bearer token issued by the
// upstream identity source and injects the subject principal into the
// request context. The registry itself never issues tokens.
func Auth(cfg config.JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   gin.H{"code": "UNAUTHORIZED", "message": "missing or invalid authorization header"},
			})
			return
		}

		principal, err := VerifyToken(strings.TrimPrefix(authHeader, "Bearer "), cfg)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   gin.H{"code": "UNAUTHORIZED", "message": "invalid or expired token"},
			})
			return
		}

		c.Set(ContextKeyPrincipal, principal)
		c.Next()
	}
}

// VerifyToken validates the token signature, issuer, and expiry, returning
// the subject principal.
func VerifyToken(tokenString string, cfg config.JWTConfig) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(cfg.Secret), nil
	}, jwt.WithIssuer(cfg.Issuer), jwt.WithExpirationRequired())
	if err != nil {
		return "", fmt.Errorf("parsing token: %w", err)
	}

	subject, err := token.Claims.GetSubject()
	if err != nil || subject == "" {
		return "", fmt.Errorf("token has no subject principal")
	}
	return subject, nil
}

// GetPrincipal extracts the authenticated principal from the Gin context.
func GetPrincipal(c *gin.Context) (string, error) {
	val, exists := c.Get(ContextKeyPrincipal)
	if !exists {
		return "", domain.ErrUnauthorized
	}
	principal, ok := val.(string)
	if !ok || principal == "" {
		return "", domain.ErrUnauthorized
	}
	return principal, nil
}
