package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"go-produtos-api/internal/model"
)

const defaultRequestTimeout = 30 * time.Second

var timeoutBody = mustJSON(model.MessageResponse{
	Code:    "REQUEST_TIMEOUT",
	Message: "Tempo limite da requisição excedido.",
})

// Timeout bounds API handlers. The request context is cancelled at the
// deadline, so pending pgx queries return early; the client gets a 503.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	return func(next http.Handler) http.Handler {
		return http.TimeoutHandler(next, timeout, timeoutBody)
	}
}

func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(b)
}
