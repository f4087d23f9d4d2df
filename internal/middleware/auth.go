package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"go-produtos-api/internal/model"
)

const (
	msgTokenRequired = "Token de acesso requerida."
	msgAccessDenied  = "Acesso Negado."
	msgUserNotFound  = "Usuário não encontrado."
)

type tokenValidator interface {
	ValidateToken(tokenString string) (int64, error)
}

type userFinder interface {
	GetUserByID(ctx context.Context, id int64) (model.User, error)
}

type contextKey string

const userIDContextKey contextKey = "usuario_id"

type AuthMiddleware struct {
	validator tokenValidator
	users     userFinder
}

func NewAuthMiddleware(validator tokenValidator, users userFinder) *AuthMiddleware {
	return &AuthMiddleware{validator: validator, users: users}
}

// RequireAuth verifies the bearer token and stores the user id in the request context.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			writeMessage(w, http.StatusUnauthorized, "UNAUTHORIZED", msgTokenRequired)
			return
		}

		_, token, _ := strings.Cut(header, " ")
		userID, err := m.validator.ValidateToken(strings.TrimSpace(token))
		if err != nil {
			slog.Debug("token rejected", "error", err)
			writeMessage(w, http.StatusUnauthorized, "UNAUTHORIZED", msgAccessDenied)
			return
		}

		ctx := context.WithValue(r.Context(), userIDContextKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole loads the authenticated user and checks role membership.
// It must run after RequireAuth.
func (m *AuthMiddleware) RequireRole(role string) func(http.Handler) http.Handler {
	forbidden := "Role de " + role + " requerida"

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := UserIDFromContext(r.Context())
			if !ok {
				writeMessage(w, http.StatusUnauthorized, "UNAUTHORIZED", msgTokenRequired)
				return
			}

			user, err := m.users.GetUserByID(r.Context(), userID)
			if errors.Is(err, model.ErrUserNotFound) {
				writeMessage(w, http.StatusForbidden, "FORBIDDEN", msgUserNotFound)
				return
			}
			if err != nil {
				slog.Error("role lookup failed", "user_id", userID, "error", err)
				writeMessage(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Erro ao verificar roles de usuário - "+err.Error())
				return
			}

			if !user.HasRole(role) {
				writeMessage(w, http.StatusForbidden, "FORBIDDEN", forbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDContextKey).(int64)
	return id, ok
}

// WithUserID is the inverse of UserIDFromContext.
func WithUserID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, userIDContextKey, id)
}
