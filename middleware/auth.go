package middleware

import (
	"errors"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func parseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

// Identify resolves the caller to exactly one identity: an authenticated
// user (Authorization JWT) or an anonymous session (X-Session-ID header).
// Requests carrying neither are rejected.
func Identify(c *gin.Context) {
	if tokenString := c.GetHeader("Authorization"); tokenString != "" {
		claims, err := parseToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}
		role, _ := claims["role"].(string)
		if role != "" {
			c.Set("role", role)
		}
		if userID, _ := claims["user_id"].(string); userID != "" {
			c.Set("user_id", userID)
			c.Next()
			return
		}
		// Admin tokens carry no user_id but still identify the caller.
		if role == "admin" || role == "super-admin" {
			if adminID, ok := claims["admin_id"].(float64); ok {
				c.Set("admin_id", uint(adminID))
			}
			c.Next()
			return
		}
	}
	if sessionID := c.GetHeader("X-Session-ID"); sessionID != "" {
		c.Set("session_id", sessionID)
		c.Next()
		return
	}
	c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header or X-Session-ID is required"})
	c.Abort()
}

// Identity returns the resolved (userID, sessionID) pair; exactly one is set.
func Identity(c *gin.Context) (string, string) {
	return c.GetString("user_id"), c.GetString("session_id")
}

// ValidateToken guards user-only endpoints.
func ValidateToken(c *gin.Context) {
	tokenString := c.GetHeader("Authorization")
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
		c.Abort()
		return
	}
	claims, err := parseToken(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		c.Abort()
		return
	}
	userID, _ := claims["user_id"].(string)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
		c.Abort()
		return
	}
	c.Set("user_id", userID)
	if role, _ := claims["role"].(string); role != "" {
		c.Set("role", role)
	}
	c.Next()
}

// RequireAdmin guards admin endpoints; super-admins pass too.
func RequireAdmin(c *gin.Context) {
	requireRole(c, "admin", "super-admin")
}

// RequireSuperAdmin guards the admin-management endpoints.
func RequireSuperAdmin(c *gin.Context) {
	requireRole(c, "super-admin")
}

func requireRole(c *gin.Context, roles ...string) {
	tokenString := c.GetHeader("Authorization")
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
		c.Abort()
		return
	}
	claims, err := parseToken(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		c.Abort()
		return
	}
	role, _ := claims["role"].(string)
	for _, allowed := range roles {
		if role == allowed {
			if adminID, ok := claims["admin_id"].(float64); ok {
				c.Set("admin_id", uint(adminID))
			}
			c.Set("role", role)
			c.Next()
			return
		}
	}
	c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient role"})
	c.Abort()
}
