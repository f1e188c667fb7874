package utils

import (
	"testing"
	"time"

	"courseportal/backend/config"
	"courseportal/backend/models"

	"github.com/stretchr/testify/assert"
)

func testConfig(expiry time.Duration) *config.Config {
	return &config.Config{
		JWTSecret: "testsecret",
		JWTExpiry: expiry,
	}
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("testpassword123")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "testpassword123", hash)
}

func TestComparePassword(t *testing.T) {
	hash, err := HashPassword("testpassword123")
	assert.NoError(t, err)

	assert.True(t, ComparePassword("testpassword123", hash))
	assert.False(t, ComparePassword("wrongpassword", hash))
	assert.False(t, ComparePassword("testpassword123", "not-a-bcrypt-hash"))
}

func TestGenerateJWTToken(t *testing.T) {
	cfg := testConfig(time.Hour)
	user := models.User{Username: "testuser", Role: models.RoleStudent}
	user.ID = 1

	token, err := GenerateJWTToken(&user, cfg)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ParseJWTToken(token, cfg)
	assert.NoError(t, err)
	assert.Equal(t, uint(1), claims.UserID)
	assert.Equal(t, "testuser", claims.Username)
	assert.Equal(t, models.RoleStudent, claims.Role)
}

func TestParseJWTTokenWrongSecret(t *testing.T) {
	user := models.User{Username: "testuser", Role: models.RoleTeacher}
	user.ID = 2

	token, err := GenerateJWTToken(&user, testConfig(time.Hour))
	assert.NoError(t, err)

	other := &config.Config{JWTSecret: "othersecret", JWTExpiry: time.Hour}
	_, err = ParseJWTToken(token, other)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseJWTTokenExpired(t *testing.T) {
	cfg := testConfig(-time.Minute)
	user := models.User{Username: "testuser", Role: models.RoleStudent}
	user.ID = 3

	token, err := GenerateJWTToken(&user, cfg)
	assert.NoError(t, err)

	_, err = ParseJWTToken(token, cfg)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseJWTTokenGarbage(t *testing.T) {
	_, err := ParseJWTToken("not.a.token", testConfig(time.Hour))
	assert.ErrorIs(t, err, ErrInvalidToken)
}
