package service

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"familycookbook/internal/config"
)

const RoleAdmin = "admin"

var ErrInvalidCredentials = errors.New("неверное имя пользователя или пароль")

type AuthService interface {
	Login(username, password string) (string, error)
	ValidateToken(tokenString string) (*jwt.Token, error)
	ClassifyRole(tokenString string) string
}

type authService struct {
	cfg *config.Config
}

func NewAuthService(cfg *config.Config) AuthService {
	return &authService{cfg: cfg}
}

// Login checks the shared admin credential and issues a signed token with
// the admin role claim.
func (s *authService) Login(username, password string) (string, error) {
	if subtle.ConstantTimeCompare([]byte(username), []byte(s.cfg.Admin.Username)) != 1 {
		return "", ErrInvalidCredentials
	}

	if err := s.verifyPassword(password); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.generateAccessToken(username)
}

func (s *authService) verifyPassword(password string) error {
	if s.cfg.Admin.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(s.cfg.Admin.PasswordHash), []byte(password))
	}

	// plaintext fallback for local setups without a precomputed hash
	if s.cfg.Admin.Password == "" {
		return ErrInvalidCredentials
	}
	if subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.Admin.Password)) != 1 {
		return ErrInvalidCredentials
	}
	return nil
}

func (s *authService) generateAccessToken(username string) (string, error) {
	claims := jwt.MapClaims{
		"username": username,
		"role":     RoleAdmin,
		"exp":      time.Now().Add(s.cfg.AccessTokenDuration).Unix(),
		"iat":      time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.cfg.JWTSecretKey))
	if err != nil {
		return "", fmt.Errorf("ошибка подписи токена: %w", err)
	}

	return tokenString, nil
}

func (s *authService) ValidateToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("неожиданный метод подписи: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecretKey), nil
	})

	if err != nil {
		return nil, fmt.Errorf("ошибка парсинга токена: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("недействительный токен")
	}

	return token, nil
}

// ClassifyRole maps a bearer credential to a caller role. Anything that is
// not a verifiable admin token classifies as public (empty role); this is
// the only place the workflow learns who is calling.
func (s *authService) ClassifyRole(tokenString string) string {
	token, err := s.ValidateToken(tokenString)
	if err != nil {
		return ""
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}

	role, ok := claims["role"].(string)
	if !ok || role != RoleAdmin {
		return ""
	}

	return RoleAdmin
}
