package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"ngo-backoffice/internal/domain/access"
	domain "ngo-backoffice/internal/domain/user"
	useruc "ngo-backoffice/internal/usecase/user"
)

type Usecase struct {
	users  domain.Repository
	secret []byte
	ttl    time.Duration
	cost   int
	now    func() time.Time
}

type Option func(*Usecase)

// WithCost overrides the bcrypt cost. Tests use bcrypt.MinCost.
func WithCost(cost int) Option {
	return func(u *Usecase) { u.cost = cost }
}

func NewUsecase(users domain.Repository, secret string, ttl time.Duration, opts ...Option) *Usecase {
	u := &Usecase{
		users:  users,
		secret: []byte(secret),
		ttl:    ttl,
		cost:   bcrypt.DefaultCost,
		now:    time.Now,
	}
	for _, o := range opts {
		o(u)
	}
	return u
}

// Register creates an account. Without an admin actor only the AGENT role can
// be requested; actor may be nil for anonymous sign-up.
func (u *Usecase) Register(ctx context.Context, in RegisterInput, actor *access.Principal) (*useruc.UserDTO, error) {
	role := in.Role
	if role == "" {
		role = domain.RoleAgent
	}
	if !role.Valid() {
		return nil, ErrInvalidRole
	}
	if role != domain.RoleAgent && (actor == nil || !actor.Can(access.ActionUserAssignRole)) {
		return nil, ErrRoleNotAllowed
	}
	if utf8.RuneCountInString(in.Password) < minPasswordLen {
		return nil, ErrWeakPassword
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	if _, err := u.users.GetByEmail(ctx, email); err == nil {
		return nil, domain.ErrDuplicateEmail
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	hash, err := HashPassword(in.Password, u.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	usr := &domain.User{
		Name:     strings.TrimSpace(in.Name),
		Email:    email,
		Password: hash,
		Role:     role,
	}
	if err := u.users.Create(ctx, usr); err != nil {
		return nil, err
	}
	dto := useruc.ToDTO(usr)
	return &dto, nil
}

func (u *Usecase) Login(ctx context.Context, email, password string) (*TokenDTO, error) {
	usr, err := u.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !CheckPasswordHash(password, usr.Password) {
		return nil, ErrInvalidCredentials
	}

	now := u.now()
	exp := now.Add(u.ttl)
	claims := Claims{
		Role: usr.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(usr.ID, 10),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(u.secret)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	return &TokenDTO{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresAt:   exp.UTC(),
		User:        useruc.ToDTO(usr),
	}, nil
}

// ParseToken validates signature and expiry and returns the caller.
func (u *Usecase) ParseToken(raw string) (access.Principal, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return u.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(u.now),
	)
	if err != nil {
		return access.Principal{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || id == 0 || !claims.Role.Valid() {
		return access.Principal{}, ErrInvalidToken
	}
	return access.Principal{UserID: id, Role: claims.Role}, nil
}
