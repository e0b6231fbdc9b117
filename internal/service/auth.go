package service

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/pageza/homebar/backend/internal/types"
)

// ErrInvalidCredentials is returned when the bar password does not match.
var ErrInvalidCredentials = errors.New("invalid credentials")

// tokenSubject identifies the single owner of the bar.
const tokenSubject = "bar-owner"

// AuthService gates mutating endpoints behind the shared bar password.
// This is a convenience lock, not a security boundary: one password, one
// implicit user, 24h tokens.
type AuthService struct {
	passwordHash []byte
	jwtSecret    string
}

// NewAuthService creates a new AuthService instance. The configured
// password may be plaintext (hashed here at startup) or a bcrypt hash.
func NewAuthService(barPassword, jwtSecret string) (*AuthService, error) {
	hash := []byte(barPassword)
	if !strings.HasPrefix(barPassword, "$2") {
		var err error
		hash, err = bcrypt.GenerateFromPassword([]byte(barPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
	}
	return &AuthService{
		passwordHash: hash,
		jwtSecret:    jwtSecret,
	}, nil
}

// Login checks the bar password and returns a signed token.
func (s *AuthService) Login(password string) (string, error) {
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return s.generateToken()
}

func (s *AuthService) generateToken() (string, error) {
	claims := jwt.MapClaims{
		"sub": tokenSubject,
		"exp": time.Now().Add(time.Hour * 24).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// ValidateToken parses and verifies a token, returning its claims.
func (s *AuthService) ValidateToken(tokenString string) (*types.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, errors.New("missing subject claim")
	}

	return &types.TokenClaims{Subject: sub}, nil
}
