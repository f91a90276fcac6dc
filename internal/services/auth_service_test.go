package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"takeaway/internal/models"
	"takeaway/internal/repositories"
	"takeaway/internal/services"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testJWTSecret = "test_jwt_secret"

func notFound(what string) error {
	return fmt.Errorf("user %s: %w", what, repositories.ErrNotFound)
}

func TestAuthService_EnsureAdmin(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret)

	mockRepo.On("GetByUsername", "admin").Return(nil, notFound("admin")).Once()
	mockRepo.On("Create", mock.MatchedBy(func(u *models.User) bool {
		return u.Username == "admin" &&
			u.Email == "admin@example.com" &&
			bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("hunter22")) == nil
	})).Return(nil).Once()

	require.NoError(t, authService.EnsureAdmin(context.Background(), "admin", "admin@example.com", "hunter22"))

	// Second run finds the account and leaves it alone.
	mockRepo.On("GetByUsername", "admin").Return(&models.User{ID: "1", Username: "admin"}, nil).Once()
	require.NoError(t, authService.EnsureAdmin(context.Background(), "admin", "admin@example.com", "other"))

	mockRepo.AssertExpectations(t)
	mockRepo.AssertNumberOfCalls(t, "Create", 1)
}

func TestAuthService_LoginUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret)

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{
		ID:       "user-123",
		Username: "admin",
		Password: string(hashedPassword),
	}

	mockRepo.On("GetByUsername", "admin").Return(user, nil).Once()
	token, err := authService.LoginUser(context.Background(), "admin", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := authService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims["user_id"])
	assert.Equal(t, "admin", claims["username"])

	// Wrong password
	mockRepo.On("GetByUsername", "admin").Return(user, nil).Once()
	_, err = authService.LoginUser(context.Background(), "admin", "wrongpassword")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	// Unknown user gets the same answer
	mockRepo.On("GetByUsername", "nobody").Return(nil, notFound("nobody")).Once()
	_, err = authService.LoginUser(context.Background(), "nobody", "password123")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	mockRepo.AssertExpectations(t)
}

func TestAuthService_ValidateToken(t *testing.T) {
	authService := services.NewAuthService(new(MockUserRepository), testJWTSecret)

	_, err := authService.ValidateToken("invalid.token.string")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid token")

	expiredToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  "user-123",
		"username": "admin",
		"exp":      time.Now().Add(-time.Hour).Unix(),
	})
	expiredTokenString, _ := expiredToken.SignedString([]byte(testJWTSecret))
	_, err = authService.ValidateToken(expiredTokenString)
	assert.Error(t, err)

	foreignToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "user-123",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	foreignTokenString, _ := foreignToken.SignedString([]byte("someone_elses_secret"))
	_, err = authService.ValidateToken(foreignTokenString)
	assert.Error(t, err)
}
