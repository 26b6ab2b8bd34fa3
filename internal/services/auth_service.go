// auth_service.go
//
// Ecclesia parish tithe and membership management service.

package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/ecclesiabr/ecclesia/internal/config"
	"github.com/ecclesiabr/ecclesia/internal/models"
	"github.com/ecclesiabr/ecclesia/internal/types"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AccessClaims is the JWT payload issued at login.
type AccessClaims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}

// CreateUserInput carries the fields for registering a new user.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     models.Role
	Active   bool
}

// HashPassword produces a bcrypt hash of the password.
func HashPassword(password string) (string, error) {
	// bcrypt only considers the first 72 bytes
	raw := []byte(password)
	if len(raw) > 72 {
		raw = raw[:72]
	}
	hash, err := bcrypt.GenerateFromPassword(raw, bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether the password matches the stored hash.
func VerifyPassword(password, hash string) bool {
	raw := []byte(password)
	if len(raw) > 72 {
		raw = raw[:72]
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), raw) == nil
}

// AuthenticateUser looks up a user by email and checks the password.
// Returns nil without error when the credentials do not match; bad
// credentials are an expected outcome, not a failure.
func AuthenticateUser(db *gorm.DB, email, password string) (*models.User, error) {
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if !VerifyPassword(password, user.PasswordHash) {
		return nil, nil
	}
	return &user, nil
}

// CreateUser registers a new user with a hashed password. A duplicate email
// surfaces as a conflict error.
func CreateUser(db *gorm.DB, input CreateUserInput) (*models.User, error) {
	hash, err := HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         input.Role,
		Active:       input.Active,
	}
	if err := db.Create(&user).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, types.NewConflictError("email is already registered")
		}
		return nil, err
	}
	return &user, nil
}

// CreateAccessToken issues a signed HS256 bearer token for the user.
func CreateAccessToken(cfg *config.Config, user *models.User) (string, error) {
	now := time.Now()
	claims := AccessClaims{
		UserID: user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(cfg.AccessTokenMinutes) * time.Minute)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.SecretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, nil
}

// ParseAccessToken validates a bearer token and returns its claims.
func ParseAccessToken(cfg *config.Config, tokenString string) (*AccessClaims, error) {
	claims := &AccessClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(cfg.SecretKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("invalid access token: %w", err)
	}
	return claims, nil
}
