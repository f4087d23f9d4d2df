package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"go-produtos-api/internal/config"
	"go-produtos-api/internal/handler"
	"go-produtos-api/internal/middleware"
	"go-produtos-api/internal/model"
)

// Mounts lists the prefixes that expose the same API routes.
var Mounts = []string{"/api", "/seguranca"}

func New(
	cfg *config.Config,
	authMiddleware *middleware.AuthMiddleware,
	authHandler *handler.AuthHandler,
	productHandler *handler.ProductHandler,
	healthHandler *handler.HealthHandler,
) http.Handler {
	r := chi.NewRouter()
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(cfg.RateLimitRPM, cfg.AuthRateLimitRPM)

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.SecurityHeaders)
	r.Use(rateLimitMiddleware.Handler)

	r.Get("/", handler.Welcome)
	r.Get("/health", healthHandler.Health)

	if cfg.StaticDir != "" {
		static := http.StripPrefix("/app", http.FileServer(http.Dir(cfg.StaticDir)))
		r.Handle("/app", http.RedirectHandler("/app/", http.StatusMovedPermanently))
		r.Handle("/app/*", static)
	}

	api := apiRouter(cfg, authMiddleware, authHandler, productHandler)
	for _, prefix := range Mounts {
		r.Mount(prefix, api)
	}

	return r
}

func apiRouter(
	cfg *config.Config,
	authMiddleware *middleware.AuthMiddleware,
	authHandler *handler.AuthHandler,
	productHandler *handler.ProductHandler,
) http.Handler {
	api := chi.NewRouter()
	api.Use(middleware.Timeout(cfg.RequestTimeout))

	api.Post("/register", authHandler.Register)
	api.Post("/login", authHandler.Login)

	api.Group(func(protected chi.Router) {
		protected.Use(authMiddleware.RequireAuth)

		protected.Get("/produtos", productHandler.List)
		protected.Get("/produtos/{id}", productHandler.Get)

		protected.With(authMiddleware.RequireRole(model.RoleAdmin)).Post("/produtos", productHandler.Create)
		protected.With(authMiddleware.RequireRole(model.RoleAdmin)).Put("/produtos/{id}", productHandler.Update)
		protected.With(authMiddleware.RequireRole(model.RoleAdmin)).Delete("/produtos/{id}", productHandler.Delete)
	})

	return api
}
