package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/rs/cors"
)

// Browser clients send the bearer token in Authorization and read the
// request id and rate-limit hints back.
var (
	corsMethods        = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete}
	corsRequestHeaders = []string{"Authorization", "Content-Type", requestIDHeader}
	corsExposedHeaders = []string{requestIDHeader, "Retry-After"}
)

func CORS(origins []string) func(http.Handler) http.Handler {
	allowed := make([]string, 0, len(origins))
	for _, origin := range origins {
		if origin = strings.TrimSpace(origin); origin != "" {
			allowed = append(allowed, origin)
		}
	}
	if len(allowed) == 0 {
		allowed = []string{"*"}
	}

	return cors.New(cors.Options{
		AllowedOrigins: allowed,
		AllowedMethods: corsMethods,
		AllowedHeaders: corsRequestHeaders,
		ExposedHeaders: corsExposedHeaders,
		MaxAge:         int(time.Hour / time.Second),
	}).Handler
}
