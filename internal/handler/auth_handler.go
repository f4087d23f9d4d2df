package handler

import (
	"errors"
	"net/http"

	"go-produtos-api/internal/model"
	"go-produtos-api/internal/service"
	"go-produtos-api/pkg/apierror"
)

type AuthHandler struct {
	service *service.AuthService
}

func NewAuthHandler(service *service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	payload, err := decodeRegister(w, r)
	if err != nil {
		writeRequestError(w, r, err)
		return
	}

	id, err := h.service.Register(r.Context(), payload)
	if err != nil {
		var apiErr *apierror.APIError
		if errors.As(err, &apiErr) {
			writeRequestError(w, r, err)
			return
		}
		writeStorageError(w, r, "Erro ao registrar usuário", err)
		return
	}

	writeJSON(w, http.StatusOK, model.RegisterResponse{ID: id})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	payload, err := decodeLogin(w, r)
	if err != nil {
		writeRequestError(w, r, err)
		return
	}

	resp, err := h.service.Login(r.Context(), payload.Login, payload.Senha)
	if errors.Is(err, model.ErrInvalidCredentials) {
		writeMessage(w, http.StatusUnauthorized, "Login ou senha incorretos.")
		return
	}
	if err != nil {
		writeStorageError(w, r, "Erro ao verificar login", err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
