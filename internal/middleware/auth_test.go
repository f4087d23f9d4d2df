package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"go-produtos-api/internal/model"
)

type stubValidator struct {
	tokens map[string]int64
	seen   []string
}

func (s *stubValidator) ValidateToken(token string) (int64, error) {
	s.seen = append(s.seen, token)
	id, ok := s.tokens[token]
	if !ok {
		return 0, model.ErrInvalidToken
	}
	return id, nil
}

type stubUsers struct {
	users map[int64]model.User
	err   error
}

func (s stubUsers) GetUserByID(_ context.Context, id int64) (model.User, error) {
	if s.err != nil {
		return model.User{}, s.err
	}
	u, ok := s.users[id]
	if !ok {
		return model.User{}, model.ErrUserNotFound
	}
	return u, nil
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) model.MessageResponse {
	t.Helper()

	var body model.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRequireAuth(t *testing.T) {
	validator := &stubValidator{tokens: map[string]int64{"good": 7}}
	mw := NewAuthMiddleware(validator, stubUsers{})

	var gotID int64
	reached := false
	handler := mw.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		gotID, _ = UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	t.Run("missing header stops the chain", func(t *testing.T) {
		reached = false
		validator.seen = nil
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/produtos", nil))

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, "Token de acesso requerida.", decodeMessage(t, rec).Message)
		require.False(t, reached)
		require.Empty(t, validator.seen, "token must not be verified when the header is absent")
	})

	t.Run("invalid token", func(t *testing.T) {
		reached = false
		req := httptest.NewRequest(http.MethodGet, "/produtos", nil)
		req.Header.Set("Authorization", "Bearer forged")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, "Acesso Negado.", decodeMessage(t, rec).Message)
		require.False(t, reached)
	})

	t.Run("header without space", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/produtos", nil)
		req.Header.Set("Authorization", "good")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		reached = false
		req := httptest.NewRequest(http.MethodGet, "/produtos", nil)
		req.Header.Set("Authorization", "Bearer good")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusNoContent, rec.Code)
		require.True(t, reached)
		require.Equal(t, int64(7), gotID)
	})
}

func TestRequireRole(t *testing.T) {
	users := stubUsers{users: map[int64]model.User{
		1: {ID: 1, Login: "root", Roles: "USER;ADMIN"},
		2: {ID: 2, Login: "ana1", Roles: "USER"},
	}}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	serve := func(mw *AuthMiddleware, ctx context.Context) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/produtos", nil).WithContext(ctx)
		rec := httptest.NewRecorder()
		mw.RequireRole(model.RoleAdmin)(next).ServeHTTP(rec, req)
		return rec
	}

	mw := NewAuthMiddleware(&stubValidator{}, users)

	rec := serve(mw, WithUserID(context.Background(), 1))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = serve(mw, WithUserID(context.Background(), 2))
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Equal(t, "Role de ADMIN requerida", decodeMessage(t, rec).Message)

	rec = serve(mw, WithUserID(context.Background(), 99))
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Equal(t, "Usuário não encontrado.", decodeMessage(t, rec).Message)

	rec = serve(mw, context.Background())
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	failing := NewAuthMiddleware(&stubValidator{}, stubUsers{err: errors.New("too many connections")})
	rec = serve(failing, WithUserID(context.Background(), 1))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, "Erro ao verificar roles de usuário - too many connections", decodeMessage(t, rec).Message)
}
