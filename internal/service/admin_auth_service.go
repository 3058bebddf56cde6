package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"sesamebooking/internal/repository"
)

// AdminAuthService guards the teacher view. The original front-end kept
// a cleartext password in local storage; here only a bcrypt hash is
// persisted and sessions are carried by signed tokens.
type AdminAuthService interface {
	Login(password string) (string, error)
	SetPassword(password string) error
	// Bootstrap stores the initial password when none is configured
	// yet. A no-op if a hash already exists or password is empty.
	Bootstrap(password string) error
}

type adminAuthService struct {
	repo   repository.AdminAuthRepository
	secret string
}

func NewAdminAuthService(repo repository.AdminAuthRepository, secret string) AdminAuthService {
	return &adminAuthService{repo: repo, secret: secret}
}

func (s *adminAuthService) Login(password string) (string, error) {
	hash, err := s.repo.PasswordHash()
	if err != nil {
		return "", err
	}
	if hash == "" {
		return "", errors.New("no admin password configured")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return "", errors.New("invalid credentials")
	}

	claims := jwt.MapClaims{
		"role": "teacher",
		"exp":  time.Now().Add(12 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}

func (s *adminAuthService) SetPassword(password string) error {
	if password == "" {
		return errors.New("password cannot be empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.repo.SavePasswordHash(string(hash))
}

func (s *adminAuthService) Bootstrap(password string) error {
	if password == "" {
		return nil
	}
	hash, err := s.repo.PasswordHash()
	if err != nil {
		return err
	}
	if hash != "" {
		return nil
	}
	return s.SetPassword(password)
}
