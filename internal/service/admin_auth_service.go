package service

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AdminAuthService issues tokens for the fleet management endpoints. The
// single admin account comes from the environment, which keeps the engine
// free of any user storage.
type AdminAuthService struct {
	email        string
	passwordHash string
	secret       []byte
}

func NewAdminAuthService(email, passwordHash string, secret []byte) *AdminAuthService {
	return &AdminAuthService{email: email, passwordHash: passwordHash, secret: secret}
}

func NewAdminAuthServiceFromEnv() (*AdminAuthService, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET not set")
	}
	email := os.Getenv("ADMIN_EMAIL")
	hash := os.Getenv("ADMIN_PASSWORD_HASH")
	if email == "" || hash == "" {
		return nil, errors.New("ADMIN_EMAIL or ADMIN_PASSWORD_HASH not set")
	}
	return NewAdminAuthService(email, hash, []byte(secret)), nil
}

// Login checks the credentials against the configured bcrypt hash and
// returns a signed token valid for one hour.
func (s *AdminAuthService) Login(email, password string) (string, error) {
	if email != s.email {
		return "", errors.New("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		return "", errors.New("invalid credentials")
	}

	claims := jwt.MapClaims{
		"email": email,
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
