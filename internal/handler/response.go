package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"go-produtos-api/internal/model"
	"go-produtos-api/pkg/apierror"
)

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, model.MessageResponse{Message: message})
}

// writeStorageError reports a failed database call. The driver message is
// part of the response body.
func writeStorageError(w http.ResponseWriter, r *http.Request, prefix string, err error) {
	slog.Error("storage error", "method", r.Method, "path", r.URL.Path, "error", err)
	writeJSON(w, http.StatusInternalServerError, model.MessageResponse{
		Code:    "STORAGE_ERROR",
		Message: prefix + " - " + err.Error(),
	})
}

// writeRequestError renders an *apierror.APIError; anything else is a 500.
func writeRequestError(w http.ResponseWriter, r *http.Request, err error) {
	var apiErr *apierror.APIError
	if errors.As(err, &apiErr) {
		writeJSON(w, apiErr.HTTPStatus, model.MessageResponse{Code: apiErr.Code, Message: apiErr.Message})
		return
	}

	slog.Error("unhandled error", "method", r.Method, "path", r.URL.Path, "error", err)
	writeJSON(w, http.StatusInternalServerError, model.MessageResponse{
		Code:    "INTERNAL_ERROR",
		Message: "Erro inesperado no servidor.",
	})
}
