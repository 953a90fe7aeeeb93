package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateUserToken signs a customer token. The role claim lets shared
// middleware distinguish customers from admins.
func GenerateUserToken(userID, secret string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    "customer",
		"exp":     time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// GenerateAdminToken signs an admin token carrying the admin's role
// (admin or super-admin).
func GenerateAdminToken(adminID uint, role, secret string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"admin_id": adminID,
		"role":     role,
		"exp":      time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
