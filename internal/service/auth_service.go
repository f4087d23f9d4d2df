package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"go-produtos-api/internal/model"
	"go-produtos-api/pkg/apierror"
)

const passwordHashCost = 8

type userRepository interface {
	FindByID(ctx context.Context, id int64) (model.User, error)
	FindByLogin(ctx context.Context, login string) (model.User, error)
	Create(ctx context.Context, u model.User) (int64, error)
}

type AuthService struct {
	users     userRepository
	jwtSecret []byte
	tokenTTL  time.Duration
	now       func() time.Time
}

// tokenClaims carries the user id as its only application claim.
type tokenClaims struct {
	ID int64 `json:"id"`
	jwt.RegisteredClaims
}

func NewAuthService(jwtSecret string, tokenTTL time.Duration, users userRepository) (*AuthService, error) {
	if strings.TrimSpace(jwtSecret) == "" {
		return nil, errors.New("jwt secret is required")
	}
	if tokenTTL <= 0 {
		return nil, errors.New("token ttl must be positive")
	}

	return &AuthService{
		users:     users,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
		now:       time.Now,
	}, nil
}

func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (int64, error) {
	login := strings.TrimSpace(req.Login)
	if login == "" || req.Senha == "" {
		return 0, apierror.New("BAD_REQUEST", "login e senha são obrigatórios.", "", http.StatusBadRequest)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Senha), passwordHashCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return 0, apierror.New("BAD_REQUEST", "senha deve ter no máximo 72 bytes.", "", http.StatusBadRequest)
	}
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	return s.users.Create(ctx, model.User{
		Nome:  req.Nome,
		Login: login,
		Senha: string(hash),
		Email: req.Email,
	})
}

func (s *AuthService) Login(ctx context.Context, login string, senha string) (model.LoginResponse, error) {
	user, err := s.users.FindByLogin(ctx, strings.TrimSpace(login))
	if errors.Is(err, model.ErrUserNotFound) {
		return model.LoginResponse{}, model.ErrInvalidCredentials
	}
	if err != nil {
		return model.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Senha), []byte(senha)); err != nil {
		return model.LoginResponse{}, model.ErrInvalidCredentials
	}

	token, err := s.IssueToken(user.ID)
	if err != nil {
		return model.LoginResponse{}, err
	}

	return model.LoginResponse{
		ID:    user.ID,
		Login: user.Login,
		Nome:  user.Nome,
		Roles: user.Roles,
		Token: token,
	}, nil
}

func (s *AuthService) IssueToken(userID int64) (string, error) {
	now := s.now().UTC()
	claims := tokenClaims{
		ID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// ValidateToken checks signature and expiry and returns the embedded user id.
func (s *AuthService) ValidateToken(tokenString string) (int64, error) {
	claims := &tokenClaims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
		return s.jwtSecret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid {
		return 0, fmt.Errorf("%w: %v", model.ErrInvalidToken, err)
	}

	if claims.ID <= 0 {
		return 0, fmt.Errorf("%w: missing id claim", model.ErrInvalidToken)
	}

	return claims.ID, nil
}

func (s *AuthService) GetUserByID(ctx context.Context, id int64) (model.User, error) {
	return s.users.FindByID(ctx, id)
}

// EnsureAdmin creates an ADMIN account for login unless one already exists
// under that login. Existing accounts are left untouched.
func (s *AuthService) EnsureAdmin(ctx context.Context, login string, senha string) error {
	login = strings.TrimSpace(login)
	if login == "" || senha == "" {
		return errors.New("admin login and password are required")
	}

	existing, err := s.users.FindByLogin(ctx, login)
	if err == nil {
		if !existing.HasRole(model.RoleAdmin) {
			slog.Warn("bootstrap admin login already taken by a non-admin user", "login", login, "user_id", existing.ID)
		}
		return nil
	}
	if !errors.Is(err, model.ErrUserNotFound) {
		return fmt.Errorf("lookup bootstrap admin: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(senha), passwordHashCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	id, err := s.users.Create(ctx, model.User{
		Login: login,
		Senha: string(hash),
		Roles: model.RoleUser + model.RoleDelimiter + model.RoleAdmin,
	})
	if err != nil {
		return fmt.Errorf("create bootstrap admin: %w", err)
	}

	slog.Info("bootstrap admin created", "login", login, "user_id", id)
	return nil
}
