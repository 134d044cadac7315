package service

import (
	"errors"

	"artistry/config"
	"artistry/internal/auth"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidPassword = errors.New("invalid password")

// AuthService verifies the shared admin password and issues session tokens.
type AuthService struct {
	cfg  *config.Config
	hash []byte
}

func NewAuthService(cfg *config.Config) (*AuthService, error) {
	hash := []byte(cfg.Admin.PasswordHash)
	if len(hash) == 0 {
		// Dev mode: hash the configured plaintext at startup so the login
		// path is identical either way.
		h, err := bcrypt.GenerateFromPassword([]byte(cfg.Admin.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hash = h
	}
	return &AuthService{cfg: cfg, hash: hash}, nil
}

// Login checks the password against the bcrypt hash and returns a signed
// token on success.
func (s *AuthService) Login(password string) (string, error) {
	if err := bcrypt.CompareHashAndPassword(s.hash, []byte(password)); err != nil {
		return "", ErrInvalidPassword
	}
	return auth.GenerateAdminToken(&s.cfg.Admin)
}
