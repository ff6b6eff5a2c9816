package services

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/alexchen-dev/portfolio-backend/models"
)

// ErrInvalidCredentials is returned for unknown emails and wrong
// passwords alike, so login attempts cannot probe which emails exist.
var ErrInvalidCredentials = errors.New("invalid email or password")

// AdminAuthService handles admin authentication operations
type AdminAuthService struct {
	db *gorm.DB
}

// NewAdminAuthService creates a new admin auth service
func NewAdminAuthService(db *gorm.DB) *AdminAuthService {
	return &AdminAuthService{db: db}
}

// HashPassword hashes a password using bcrypt
func (s *AdminAuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword checks if a password matches its bcrypt hash
func (s *AdminAuthService) VerifyPassword(hash, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// ValidatePassword checks if a password meets minimum requirements.
// Minimum 8 characters.
func (s *AdminAuthService) ValidatePassword(password string) bool {
	return len(password) >= 8
}

// Login verifies credentials and returns a signed JWT for the admin.
func (s *AdminAuthService) Login(ctx context.Context, email, password string) (string, *models.Admin, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var admin models.Admin
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !s.VerifyPassword(admin.PasswordHash, password) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := GetJWTService().GenerateAdminJWT(admin.ID.String(), admin.Email)
	if err != nil {
		return "", nil, err
	}
	return token, &admin, nil
}
