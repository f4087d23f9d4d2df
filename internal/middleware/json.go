package middleware

import (
	"encoding/json"
	"net/http"

	"go-produtos-api/internal/model"
)

func writeMessage(w http.ResponseWriter, status int, code string, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(model.MessageResponse{Code: code, Message: message})
}
