package utils

import (
	"errors"
	"strings"
	"time"

	"courseportal/backend/config"
	"courseportal/backend/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

var ErrInvalidToken = errors.New("invalid token")

// TokenClaims is the identity a verified token resolves to.
type TokenClaims struct {
	UserID   uint
	Username string
	Role     string
}

func GenerateJWTToken(user *models.User, cfg *config.Config) (string, error) {
	claims := jwt.MapClaims{
		"id":       user.ID,
		"username": user.Username,
		"role":     user.Role,
		"exp":      time.Now().Add(cfg.JWTExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}

// ExtractToken pulls the raw bearer credential from the request. Both the
// Authorization and X-Access-Token headers are accepted, with or without a
// "Bearer " prefix.
func ExtractToken(c *fiber.Ctx) string {
	token := c.Get("X-Access-Token")
	if token == "" {
		token = c.Get("Authorization")
	}
	return strings.TrimPrefix(token, "Bearer ")
}

// ParseJWTToken verifies signature and expiry and decodes the identity
// claims. Any failure collapses to ErrInvalidToken.
func ParseJWTToken(tokenString string, cfg *config.Config) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	userID, ok := claims["id"].(float64)
	if !ok {
		return nil, ErrInvalidToken
	}
	username, _ := claims["username"].(string)
	role, _ := claims["role"].(string)

	return &TokenClaims{
		UserID:   uint(userID),
		Username: username,
		Role:     role,
	}, nil
}
