package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	domain "ngo-backoffice/internal/domain/user"
	useruc "ngo-backoffice/internal/usecase/user"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrRoleNotAllowed     = errors.New("only an admin may assign this role")
	ErrWeakPassword       = errors.New("password must be at least 6 characters")
	ErrInvalidRole        = errors.New("invalid role")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

const minPasswordLen = 6

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     domain.Role // empty means AGENT
}

// Claims is the JWT payload. Subject carries the user id.
type Claims struct {
	Role domain.Role `json:"role"`
	jwt.RegisteredClaims
}

type TokenDTO struct {
	AccessToken string         `json:"access_token"`
	TokenType   string         `json:"token_type"`
	ExpiresAt   time.Time      `json:"expires_at"`
	User        useruc.UserDTO `json:"user"`
}
